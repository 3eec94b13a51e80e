package quotation

import (
	"context"

	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// TxRunner frontera de atomicidad del envío de cotizaciones: el cambio de
// estado y el envío SMTP comparten transacción. Si el correo falla, el
// Rollback deja la fila ausente (creación con envío) o el status intacto.
type TxRunner interface {
	RunQuotation(ctx context.Context, fn func(
		quotationRepo repository.QuotationRepository,
	) error) error
}

// Mailer envía la cotización al proveedor.
type Mailer interface {
	SendQuotationEmail(toEmail, supplierName string, q *entity.Quotation) error
}
