package entity

import "time"

// Supplier proveedor al que el shop manager dirige cotizaciones.
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
