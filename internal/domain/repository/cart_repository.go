package repository

import "github.com/jhoicas/pos-retail-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para el carrito (DIP).
type CartRepository interface {
	GetLine(userID, productID string) (*entity.CartLine, error)
	Insert(line *entity.CartLine) error
	// SetQuantity fija la cantidad de forma absoluta (no incrementa).
	SetQuantity(userID, productID string, quantity int) error
	DeleteLine(userID, productID string) error
	// ListPriced lee las líneas del usuario con el precio vigente del catálogo
	// (join contra products); es la fuente del snapshot al crear la orden.
	ListPriced(userID string) ([]entity.PricedCartLine, error)
	// ClearByUser borra todas las líneas del usuario. Solo debe ejecutarse
	// dentro de la transacción que crea la orden correspondiente.
	ClearByUser(userID string) error
}
