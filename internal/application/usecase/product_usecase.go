package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de venta.
type ProductUseCase struct {
	repo  repository.ProductRepository
	audit *audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, rec *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, audit: rec}
}

// Create crea un producto nuevo. La unicidad del barcode (cuando viene) la
// garantiza el índice parcial de la DB; aquí solo validamos la entrada.
func (uc *ProductUseCase) Create(actorID string, in dto.CreateProductRequest, meta dto.RequestMeta) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Barcode:     in.Barcode,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Visible:     in.Visible,
		Promo:       in.Promo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, fmt.Sprintf("creó el producto %s", product.Name), entity.ActivityCategoryProduct, meta)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetByBarcode búsqueda exacta por código de barras (escáner del cajero).
// Un barcode vacío nunca matchea: vacío significa "sin código".
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	if barcode == "" {
		return nil, nil
	}
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update modifica los campos presentes en la request (semántica PATCH).
func (uc *ProductUseCase) Update(actorID, id string, in dto.UpdateProductRequest, meta dto.RequestMeta) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Visible != nil {
		product.Visible = *in.Visible
	}
	if in.Promo != nil {
		product.Promo = *in.Promo
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, fmt.Sprintf("actualizó el producto %s", product.Name), entity.ActivityCategoryProduct, meta)
	return toProductResponse(product), nil
}

// AdjustQuantity suma delta a las existencias (recepción o merma).
func (uc *ProductUseCase) AdjustQuantity(actorID, id string, delta int, meta dto.RequestMeta) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.Quantity+delta < 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.AdjustQuantity(id, delta); err != nil {
		return err
	}
	uc.audit.Record(actorID, fmt.Sprintf("ajustó existencias de %s en %+d", product.Name, delta), entity.ActivityCategoryProduct, meta)
	return nil
}

// List lista el catálogo completo (vista de back-office).
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(products, page), nil
}

// ListVisible lista solo el catálogo público (visible = true).
func (uc *ProductUseCase) ListVisible(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.ListVisible(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(products, page), nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(actorID, id string, meta dto.RequestMeta) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actorID, fmt.Sprintf("eliminó el producto %s", id), entity.ActivityCategoryProduct, meta)
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Barcode:     p.Barcode,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Visible:     p.Visible,
		Promo:       p.Promo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductList(products []*entity.Product, page dto.PageRequest) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
