package repository

import "github.com/jhoicas/pos-retail-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustQuantity suma delta (positivo o negativo) a las existencias.
	AdjustQuantity(productID string, delta int) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListVisible lista solo el catálogo público (visible = true).
	ListVisible(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
