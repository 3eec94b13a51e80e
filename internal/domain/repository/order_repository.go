package repository

import "github.com/jhoicas/pos-retail-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y OrderItem (DIP).
// OrderItem no tiene Update: las líneas son inmutables una vez insertadas.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	GetItems(orderID string) ([]*entity.OrderItem, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	// ConfirmPayment pasa status a 'confirmed' solo si el actual es 'pending'.
	// Devuelve las filas afectadas: 0 = ya confirmada o inexistente.
	ConfirmPayment(id string) (int64, error)
}
