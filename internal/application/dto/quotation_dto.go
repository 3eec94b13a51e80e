package dto

import "time"

// QuotationItemDTO par (nombre, cantidad) de texto libre, sin FK al catálogo.
type QuotationItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateQuotationRequest alta de cotización. Si SendEmail es true, el insert,
// el envío SMTP y el paso a approved comparten una transacción.
type CreateQuotationRequest struct {
	SupplierID string             `json:"supplier_id"`
	Items      []QuotationItemDTO `json:"items"`
	Notes      string             `json:"notes"`
	SendEmail  bool               `json:"send_email"`
}

// QuotationResponse proyección de una cotización.
type QuotationResponse struct {
	ID           string             `json:"id"`
	SupplierID   string             `json:"supplier_id"`
	SupplierName string             `json:"supplier_name,omitempty"`
	CreatedBy    string             `json:"created_by"`
	Items        []QuotationItemDTO `json:"items"`
	Notes        string             `json:"notes,omitempty"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// QuotationListResponse página de cotizaciones.
type QuotationListResponse struct {
	Items []QuotationResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
