package handler

import (
	"errors"
	"net/http"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/apierror"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/dto"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/service"

	"github.com/gin-gonic/gin"
)

// DocumentsHandler reads the saved document archive. Documents are immutable,
// so the surface is list, get, and voucher download only.
type DocumentsHandler struct{ svc service.DocumentService }

func NewDocumentsHandler(svc service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

// List godoc
// @Summary List saved documents
// @Tags documents
// @Produce json
// @Param type query string false "Document type filter"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Success 200 {object} dto.DocumentListResponse
// @Router /v1/documents [get]
func (h *DocumentsHandler) List(c *gin.Context) {
	var filter dto.DocumentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid filter"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list documents"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DocumentsHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Document not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch document"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Voucher streams the rendered PDF. Returns 409 while the background worker
// has not produced it yet so clients can poll.
func (h *DocumentsHandler) Voucher(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.VoucherPath(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, apierror.New("Document not found"))
		case errors.Is(err, service.ErrVoucherNotReady):
			c.JSON(http.StatusConflict, apierror.New("Voucher not rendered yet"))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch voucher"))
		}
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
