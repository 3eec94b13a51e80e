package entity

import "time"

// Notification aviso dirigido a un usuario (campana del dashboard).
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}
