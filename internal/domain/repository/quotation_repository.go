package repository

import "github.com/jhoicas/pos-retail-api/internal/domain/entity"

// QuotationRepository define el puerto de persistencia para Quotation (DIP).
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error)
	// Approve pasa status a 'approved' solo si el actual es 'pending' o NULL.
	// Devuelve las filas afectadas: 0 = ya aprobada o inexistente.
	Approve(id string) (int64, error)
	List(limit, offset int) ([]*entity.Quotation, error)
	ListBySupplier(supplierID string, limit, offset int) ([]*entity.Quotation, error)
	// Delete borra sin restricción de estado (una cotización en cualquier
	// estado puede eliminarse).
	Delete(id string) error
}
