package entity

import "time"

// Categorías del registro de actividad.
const (
	ActivityCategoryAuth      = "auth"
	ActivityCategoryUser      = "user"
	ActivityCategoryProduct   = "product"
	ActivityCategoryOrder     = "order"
	ActivityCategoryQuotation = "quotation"
	ActivityCategorySettings  = "settings"
)

// ActivityLog entrada append-only del rastro de auditoría.
// Nunca se actualiza ni se borra; un fallo al escribirla no debe abortar
// la operación principal.
type ActivityLog struct {
	ID        string
	UserID    string
	Action    string // texto legible: "creó la orden X", "aprobó la cotización Y"
	Category  string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}
