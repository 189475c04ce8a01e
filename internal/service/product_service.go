package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/dto"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/model"
	"github.com/talhasonu918-ctrl/CRM-Superadmin-sub002/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService defines the business logic contract for the catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		CostPrice:   req.CostPrice,
		RetailPrice: req.RetailPrice,
		Active:      true,
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category_id: %w", err)
		}
		p.CategoryID = &cid
	}
	for _, u := range req.Units {
		p.Units = append(p.Units, model.ProductUnit{
			Unit:             u.Unit,
			ConversionFactor: u.ConversionFactor,
			IsDefault:        u.IsDefault,
		})
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByIDWithUnits(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	p.Name = req.Name
	p.Description = req.Description
	p.CostPrice = req.CostPrice
	p.RetailPrice = req.RetailPrice
	p.CategoryID = nil
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category_id: %w", err)
		}
		p.CategoryID = &cid
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	// Unit declarations are replaced wholesale — partial unit edits are not
	// a thing the console offers.
	if req.Units != nil {
		units := make([]model.ProductUnit, 0, len(req.Units))
		for _, u := range req.Units {
			units = append(units, model.ProductUnit{
				ProductID:        id,
				Unit:             u.Unit,
				ConversionFactor: u.ConversionFactor,
				IsDefault:        u.IsDefault,
			})
		}
		if err := s.repo.ReplaceUnits(ctx, id, units); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	var catID *string
	catName := ""
	if p.CategoryID != nil {
		v := p.CategoryID.String()
		catID = &v
	}
	if p.Category != nil {
		catName = p.Category.Name
	}
	units := make([]dto.ProductUnitResponse, 0, len(p.Units))
	for _, u := range p.Units {
		units = append(units, dto.ProductUnitResponse{
			Unit:             u.Unit,
			ConversionFactor: u.ConversionFactor,
			IsDefault:        u.IsDefault,
		})
	}
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  catID,
		Category:    catName,
		CostPrice:   p.CostPrice,
		RetailPrice: p.RetailPrice,
		Units:       units,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
