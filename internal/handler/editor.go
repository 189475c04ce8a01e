package handler

import (
	"errors"
	"net/http"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/apierror"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/docedit"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/dto"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/middleware"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EditorHandler exposes the document editing sessions. Every mutation returns
// the full refreshed session state.
type EditorHandler struct{ svc service.EditorService }

func NewEditorHandler(svc service.EditorService) *EditorHandler {
	return &EditorHandler{svc: svc}
}

// Open godoc
// @Summary Open a new document editing session
// @Tags editor
// @Accept json
// @Produce json
// @Param body body dto.OpenSessionRequest true "Document type"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/editor/sessions [post]
func (h *EditorHandler) Open(c *gin.Context) {
	var req dto.OpenSessionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Open(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EditorHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EditorHandler) Discard(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Discard(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Lines ─────────────────────────────────────────────────────────────────────

func (h *EditorHandler) AddLine(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.AddLine(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EditorHandler) RemoveLine(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := uuidParam(c, "lineId")
	if !ok {
		return
	}
	resp, err := h.svc.RemoveLine(c.Request.Context(), id, lineID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PatchLine godoc
// @Summary Patch one field of a line (quantity, unit price, or unit)
// @Tags editor
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param lineId path string true "Line id"
// @Param body body dto.PatchLineRequest true "Fields to change"
// @Success 200 {object} dto.SessionResponse
// @Router /v1/editor/sessions/{id}/lines/{lineId} [patch]
func (h *EditorHandler) PatchLine(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := uuidParam(c, "lineId")
	if !ok {
		return
	}
	var req dto.PatchLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PatchLine(c.Request.Context(), id, lineID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EditorHandler) SelectProduct(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	lineID, ok := uuidParam(c, "lineId")
	if !ok {
		return
	}
	var req dto.SelectProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid product_id"))
		return
	}
	resp, err := h.svc.SelectProduct(c.Request.Context(), id, lineID, productID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Header ────────────────────────────────────────────────────────────────────

func (h *EditorHandler) PatchHeader(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req dto.PatchHeaderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PatchHeader(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Save ──────────────────────────────────────────────────────────────────────

// Save godoc
// @Summary Validate the session and persist it as an immutable document
// @Tags editor
// @Produce json
// @Param id path string true "Session id"
// @Success 201 {object} dto.SaveResponse
// @Failure 422 {object} apierror.DocumentError
// @Router /v1/editor/sessions/{id}/save [post]
func (h *EditorHandler) Save(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Malformed token"))
		return
	}

	resp, err := h.svc.Save(c.Request.Context(), id, userID)
	if err != nil {
		var verr *docedit.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, apierror.NewDocument(string(verr.Reason), verr.Field, verr.Message))
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EditorHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Session not found"))
		return
	}
	c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
}
