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

// SupplierUseCase CRUD de proveedores (destinatarios de cotizaciones).
type SupplierUseCase struct {
	repo  repository.SupplierRepository
	audit *audit.Recorder
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, rec *audit.Recorder) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, audit: rec}
}

// Create alta de proveedor. El email es obligatorio: sin email no hay a
// dónde enviar cotizaciones.
func (uc *SupplierUseCase) Create(actorID string, in dto.CreateSupplierRequest, meta dto.RequestMeta) (*dto.SupplierResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, fmt.Sprintf("creó el proveedor %s", supplier.Name), entity.ActivityCategoryQuotation, meta)
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update modifica los campos presentes (semántica PATCH).
func (uc *SupplierUseCase) Update(actorID, id string, in dto.UpdateSupplierRequest, meta dto.RequestMeta) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	uc.audit.Record(actorID, fmt.Sprintf("actualizó el proveedor %s", supplier.Name), entity.ActivityCategoryQuotation, meta)
	return toSupplierResponse(supplier), nil
}

// List lista proveedores paginados.
func (uc *SupplierUseCase) List(page dto.PageRequest) (*dto.SupplierListResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete baja de proveedor.
func (uc *SupplierUseCase) Delete(actorID, id string, meta dto.RequestMeta) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actorID, fmt.Sprintf("eliminó el proveedor %s", id), entity.ActivityCategoryQuotation, meta)
	return nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
