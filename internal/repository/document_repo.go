package repository

import (
	"context"
	"time"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/dto"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository persists saved stock documents. Documents are append-only:
// there is no update path — corrections are new documents.
type DocumentRepository interface {
	// NextSequence returns the next per-type sequence within the calendar
	// year, used for the document number.
	NextSequence(ctx context.Context, docType string, year int) (int64, error)
	Append(ctx context.Context, doc *model.StockDocument) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.StockDocument, error)
	List(ctx context.Context, filter dto.DocumentFilter) ([]model.StockDocument, int64, error)
	SetVoucherPath(ctx context.Context, id uuid.UUID, path string) error
	// ListMissingVouchers returns documents saved before cutoff whose voucher
	// was never rendered, for the background re-render pass.
	ListMissingVouchers(ctx context.Context, cutoff time.Time, limit int) ([]model.StockDocument, error)
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) DocumentRepository { return &documentRepo{db: db} }

// NextSequence counts existing documents of the type within the calendar year
// and returns count+1. Two concurrent saves can race between the count and
// the insert; the unique index on document_number turns that race into a
// constraint error instead of a silent duplicate number.
func (r *documentRepo) NextSequence(ctx context.Context, docType string, year int) (int64, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	var count int64
	err := r.db.WithContext(ctx).Model(&model.StockDocument{}).
		Where("type = ? AND date >= ? AND date < ?", docType, from, to).
		Count(&count).Error
	return count + 1, err
}

func (r *documentRepo) Append(ctx context.Context, doc *model.StockDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.StockDocument, error) {
	var doc model.StockDocument
	err := r.db.WithContext(ctx).
		Preload("Lines").Preload("Supplier").
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) List(ctx context.Context, filter dto.DocumentFilter) ([]model.StockDocument, int64, error) {
	var docs []model.StockDocument
	var total int64

	q := r.db.WithContext(ctx).Model(&model.StockDocument{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.DateFrom != "" {
		q = q.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("date <= ?", filter.DateTo)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Lines").Preload("Supplier").
		Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&docs).Error
	return docs, total, err
}

func (r *documentRepo) SetVoucherPath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.StockDocument{}).
		Where("id = ?", id).Update("voucher_path", path).Error
}

func (r *documentRepo) ListMissingVouchers(ctx context.Context, cutoff time.Time, limit int) ([]model.StockDocument, error) {
	var docs []model.StockDocument
	err := r.db.WithContext(ctx).
		Where("voucher_path IS NULL AND created_at < ?", cutoff).
		Order("created_at ASC").Limit(limit).Find(&docs).Error
	return docs, err
}
