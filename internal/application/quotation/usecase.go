package quotation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// UseCase flujo de cotizaciones a proveedores.
//
// El acoplamiento correo-estado es deliberado: una cotización solo queda
// approved si el correo al proveedor salió, y el correo solo cuenta si el
// cambio de estado quedó persistido. Ambos ocurren dentro de la misma
// transacción; un fallo SMTP la revierte completa.
type UseCase struct {
	quotationRepo repository.QuotationRepository
	supplierRepo  repository.SupplierRepository
	tx            TxRunner
	mailer        Mailer
	audit         *audit.Recorder
}

// NewUseCase construye el caso de uso de cotizaciones.
func NewUseCase(
	quotationRepo repository.QuotationRepository,
	supplierRepo repository.SupplierRepository,
	tx TxRunner,
	mailer Mailer,
	rec *audit.Recorder,
) *UseCase {
	return &UseCase{
		quotationRepo: quotationRepo,
		supplierRepo:  supplierRepo,
		tx:            tx,
		mailer:        mailer,
		audit:         rec,
	}
}

// Create alta de cotización. Sin SendEmail queda pending; con SendEmail el
// insert, el correo y el paso a approved comparten una transacción: si el
// SMTP falla no queda NINGUNA fila.
func (uc *UseCase) Create(ctx context.Context, creatorID string, in dto.CreateQuotationRequest, meta dto.RequestMeta) (*dto.QuotationResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Name == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.QuotationItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, entity.QuotationItem{Name: item.Name, Quantity: item.Quantity})
	}
	now := time.Now()
	q := &entity.Quotation{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		CreatedBy:  creatorID,
		Items:      items,
		Notes:      in.Notes,
		Status:     entity.QuotationStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if !in.SendEmail {
		if err := uc.quotationRepo.Create(q); err != nil {
			return nil, err
		}
		uc.audit.Record(creatorID, fmt.Sprintf("creó la cotización %s para %s", q.ID, supplier.Name), entity.ActivityCategoryQuotation, meta)
		return toQuotationResponse(q, supplier.Name), nil
	}

	err = uc.tx.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
		if err := repo.Create(q); err != nil {
			return err
		}
		if err := uc.mailer.SendQuotationEmail(supplier.Email, supplier.Name, q); err != nil {
			return fmt.Errorf("enviar cotización por correo: %w", err)
		}
		affected, err := repo.Approve(q.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	q.Status = entity.QuotationStatusApproved

	uc.audit.Record(creatorID, fmt.Sprintf("creó y envió la cotización %s a %s", q.ID, supplier.Name), entity.ActivityCategoryQuotation, meta)
	return toQuotationResponse(q, supplier.Name), nil
}

// Send envía una cotización pending existente. pending → approved es
// terminal: reenviar una approved falla con ErrAlreadyApproved ANTES de
// tocar el SMTP (el UPDATE condicional dentro de la tx es el árbitro).
func (uc *UseCase) Send(ctx context.Context, actorID, id string, meta dto.RequestMeta) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(q.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	err = uc.tx.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
		affected, err := repo.Approve(id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrAlreadyApproved
		}
		if err := uc.mailer.SendQuotationEmail(supplier.Email, supplier.Name, q); err != nil {
			return fmt.Errorf("enviar cotización por correo: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	q.Status = entity.QuotationStatusApproved

	uc.audit.Record(actorID, fmt.Sprintf("envió la cotización %s a %s", id, supplier.Name), entity.ActivityCategoryQuotation, meta)
	return toQuotationResponse(q, supplier.Name), nil
}

// GetByID devuelve la cotización con el nombre del proveedor resuelto.
func (uc *UseCase) GetByID(id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	supplierName := ""
	if supplier, err := uc.supplierRepo.GetByID(q.SupplierID); err == nil && supplier != nil {
		supplierName = supplier.Name
	}
	return toQuotationResponse(q, supplierName), nil
}

// List lista todas las cotizaciones (vista del shop manager).
func (uc *UseCase) List(page dto.PageRequest) (*dto.QuotationListResponse, error) {
	page.DefaultPage()
	list, err := uc.quotationRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return uc.toQuotationList(list, page), nil
}

// ListBySupplier lista las cotizaciones dirigidas a un proveedor (vista del
// usuario con rol supplier).
func (uc *UseCase) ListBySupplier(supplierID string, page dto.PageRequest) (*dto.QuotationListResponse, error) {
	page.DefaultPage()
	list, err := uc.quotationRepo.ListBySupplier(supplierID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return uc.toQuotationList(list, page), nil
}

// Delete borra la cotización en cualquier estado, sin restricción.
func (uc *UseCase) Delete(actorID, id string, meta dto.RequestMeta) error {
	if err := uc.quotationRepo.Delete(id); err != nil {
		return err
	}
	uc.audit.Record(actorID, fmt.Sprintf("eliminó la cotización %s", id), entity.ActivityCategoryQuotation, meta)
	return nil
}

func (uc *UseCase) toQuotationList(list []*entity.Quotation, page dto.PageRequest) *dto.QuotationListResponse {
	// Resolver nombres de proveedor sin N consultas por página.
	names := map[string]string{}
	items := make([]dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		name, ok := names[q.SupplierID]
		if !ok {
			if supplier, err := uc.supplierRepo.GetByID(q.SupplierID); err == nil && supplier != nil {
				name = supplier.Name
			}
			names[q.SupplierID] = name
		}
		items = append(items, *toQuotationResponse(q, name))
	}
	return &dto.QuotationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

func toQuotationResponse(q *entity.Quotation, supplierName string) *dto.QuotationResponse {
	items := make([]dto.QuotationItemDTO, 0, len(q.Items))
	for _, item := range q.Items {
		items = append(items, dto.QuotationItemDTO{Name: item.Name, Quantity: item.Quantity})
	}
	return &dto.QuotationResponse{
		ID:           q.ID,
		SupplierID:   q.SupplierID,
		SupplierName: supplierName,
		CreatedBy:    q.CreatedBy,
		Items:        items,
		Notes:        q.Notes,
		Status:       q.Status,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}
