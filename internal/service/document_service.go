package service

import (
	"context"
	"errors"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/dto"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/model"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrVoucherNotReady  = errors.New("voucher not rendered yet")
)

// DocumentService reads the saved, immutable documents. There is no update
// or delete surface here on purpose.
type DocumentService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error)
	List(ctx context.Context, filter dto.DocumentFilter) (*dto.DocumentListResponse, error)
	VoucherPath(ctx context.Context, id uuid.UUID) (string, error)
}

type documentService struct {
	repo repository.DocumentRepository
}

func NewDocumentService(repo repository.DocumentRepository) DocumentService {
	return &documentService{repo: repo}
}

func (s *documentService) GetByID(ctx context.Context, id uuid.UUID) (*dto.DocumentResponse, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return documentToResponse(doc), nil
}

func (s *documentService) List(ctx context.Context, filter dto.DocumentFilter) (*dto.DocumentListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	docs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		items = append(items, *documentToResponse(&docs[i]))
	}
	return &dto.DocumentListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// VoucherPath returns the filesystem path of the rendered voucher, or
// ErrVoucherNotReady while the background worker has not produced it.
func (s *documentService) VoucherPath(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrDocumentNotFound
		}
		return "", err
	}
	if doc.VoucherPath == nil || *doc.VoucherPath == "" {
		return "", ErrVoucherNotReady
	}
	return *doc.VoucherPath, nil
}

func documentToResponse(doc *model.StockDocument) *dto.DocumentResponse {
	var supplierID *string
	supplierName := ""
	if doc.SupplierID != nil {
		v := doc.SupplierID.String()
		supplierID = &v
	}
	if doc.Supplier != nil {
		supplierName = doc.Supplier.Name
	}

	lines := make([]dto.DocumentLineResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, dto.DocumentLineResponse{
			ProductID:   l.ProductID.String(),
			DisplayName: l.DisplayName,
			Unit:        l.Unit,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}

	return &dto.DocumentResponse{
		ID:                  doc.ID.String(),
		DocumentNumber:      doc.DocumentNumber,
		Type:                doc.Type,
		Date:                doc.Date.Format("2006-01-02"),
		SourceLocation:      doc.SourceLocation,
		DestinationLocation: doc.DestinationLocation,
		Location:            doc.Location,
		SupplierID:          supplierID,
		SupplierName:        supplierName,
		DiscountPercent:     doc.DiscountPercent,
		TaxPercent:          doc.TaxPercent,
		FreightAmount:       doc.FreightAmount,
		Subtotal:            doc.Subtotal,
		DiscountAmount:      doc.DiscountAmount,
		TaxAmount:           doc.TaxAmount,
		GrandTotal:          doc.GrandTotal,
		TotalQuantity:       doc.TotalQuantity,
		Notes:               doc.Notes,
		Lines:               lines,
		CreatedAt:           doc.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
