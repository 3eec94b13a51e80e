package entity

import "time"

// Estados de una cotización. El flujo es pending → approved, terminal:
// una cotización aprobada no vuelve a pending ni se re-aprueba.
const (
	QuotationStatusPending  = "pending"
	QuotationStatusApproved = "approved"
)

// QuotationItem par (nombre, cantidad) de texto libre. Es un snapshot
// deliberadamente desacoplado del catálogo: sin FK a products y sin precio,
// porque la cotización pide precio al proveedor, no lo fija.
type QuotationItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Quotation solicitud del shop manager a un proveedor.
// Items se persiste serializado (JSONB) como lista de QuotationItem.
type Quotation struct {
	ID         string
	SupplierID string
	CreatedBy  string // user id del shop manager
	Items      []QuotationItem
	Notes      string
	Status     string // pending | approved
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
