package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

// Métodos de pago aceptados al crear una orden.
var validPaymentMethods = map[string]bool{
	"cash":     true,
	"card":     true,
	"transfer": true,
}

// UseCase flujo carrito → orden → confirmación de pago.
type UseCase struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	tx          TxRunner
	receipts    ReceiptGenerator
	audit       *audit.Recorder
}

// NewUseCase construye el caso de uso de órdenes.
func NewUseCase(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	tx TxRunner,
	receipts ReceiptGenerator,
	rec *audit.Recorder,
) *UseCase {
	return &UseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		tx:          tx,
		receipts:    receipts,
		audit:       rec,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

// AddToCart agrega cantidad a la línea (user, product). Si la línea ya existe
// INCREMENTA; contrastar con UpdateCartItem, que fija la cantidad absoluta.
func (uc *UseCase) AddToCart(userID string, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Visible {
		return nil, domain.ErrNotFound
	}
	line, err := uc.cartRepo.GetLine(userID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		now := time.Now()
		err = uc.cartRepo.Insert(&entity.CartLine{
			UserID:    userID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			CreatedAt: now,
			UpdatedAt: now,
		})
	} else {
		err = uc.cartRepo.SetQuantity(userID, in.ProductID, line.Quantity+in.Quantity)
	}
	if err != nil {
		return nil, err
	}
	return uc.GetCart(userID)
}

// UpdateCartItem fija la cantidad absoluta de la línea. Cantidad ≤ 0 elimina
// la línea (no hay líneas con cantidad cero).
func (uc *UseCase) UpdateCartItem(userID, productID string, in dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	if in.Quantity <= 0 {
		if err := uc.cartRepo.DeleteLine(userID, productID); err != nil {
			return nil, err
		}
		return uc.GetCart(userID)
	}
	line, err := uc.cartRepo.GetLine(userID, productID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.cartRepo.SetQuantity(userID, productID, in.Quantity); err != nil {
		return nil, err
	}
	return uc.GetCart(userID)
}

// RemoveCartItem elimina una línea del carrito.
func (uc *UseCase) RemoveCartItem(userID, productID string) (*dto.CartResponse, error) {
	if err := uc.cartRepo.DeleteLine(userID, productID); err != nil {
		return nil, err
	}
	return uc.GetCart(userID)
}

// GetCart devuelve el carrito con el precio vigente del catálogo por línea.
// El total que se muestra aquí es una proyección: el total definitivo se
// congela recién al crear la orden.
func (uc *UseCase) GetCart(userID string) (*dto.CartResponse, error) {
	lines, err := uc.cartRepo.ListPriced(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CartLineResponse, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		ext := l.Extension()
		total = total.Add(ext)
		items = append(items, dto.CartLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Extension:   ext,
		})
	}
	return &dto.CartResponse{Items: items, Total: total}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Órdenes
// ──────────────────────────────────────────────────────────────────────────────

// CreateOrder convierte el carrito en una orden pending.
//
// El carrito se lee ANTES de abrir la transacción: esa lectura fija el
// snapshot de precios. Dentro de la tx se insertan orden y líneas y se vacía
// el carrito; cualquier fallo revierte todo y el carrito queda intacto.
// Un carrito vacío no genera escritura alguna.
func (uc *UseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest, meta dto.RequestMeta) (*dto.OrderResponse, error) {
	if !validPaymentMethods[in.PaymentMethod] {
		return nil, domain.ErrInvalidInput
	}
	lines, err := uc.cartRepo.ListPriced(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Extension())
	}
	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		Status:        entity.OrderStatusPending,
		PaymentMethod: in.PaymentMethod,
		Total:         total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	items := make([]*entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, &entity.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	err = uc.tx.RunOrder(ctx, func(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) error {
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, item := range items {
			if err := orderRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return cartRepo.ClearByUser(userID)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(userID, fmt.Sprintf("creó la orden %s por %s", order.ID, total.StringFixed(2)), entity.ActivityCategoryOrder, meta)
	return toOrderResponse(order, items), nil
}

// ConfirmPayment marca la orden como confirmed solo si sigue pending.
// Es idempotente por diseño: la segunda confirmación no falla, devuelve
// Confirmed=false (cero filas afectadas) y no toca la fila.
func (uc *UseCase) ConfirmPayment(actorID, orderID string, meta dto.RequestMeta) (*dto.ConfirmPaymentResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	affected, err := uc.orderRepo.ConfirmPayment(orderID)
	if err != nil {
		return nil, err
	}
	confirmed := affected == 1
	if confirmed {
		uc.audit.Record(actorID, fmt.Sprintf("confirmó el pago de la orden %s", orderID), entity.ActivityCategoryOrder, meta)
	}
	return &dto.ConfirmPaymentResponse{Success: true, Confirmed: confirmed}, nil
}

// GetOrder devuelve una orden con sus líneas. requesterID/requesterRole
// acotan la visibilidad: un customer solo ve sus propias órdenes.
func (uc *UseCase) GetOrder(orderID, requesterID string, requesterRole entity.Role) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if requesterRole == entity.RoleCustomer && order.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// ListByUser lista las órdenes propias del usuario.
func (uc *UseCase) ListByUser(userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, page), nil
}

// List lista todas las órdenes (vista de cajero/manager).
func (uc *UseCase) List(page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, page), nil
}

// Receipt genera el comprobante PDF de la orden.
func (uc *UseCase) Receipt(orderID, requesterID string, requesterRole entity.Role) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if requesterRole == entity.RoleCustomer && order.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, err
	}
	lines := make([]ReceiptLine, 0, len(items))
	for _, item := range items {
		description := item.ProductID
		if product, err := uc.productRepo.GetByID(item.ProductID); err == nil && product != nil {
			description = product.Name
		}
		lines = append(lines, ReceiptLine{
			Description: description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	customerName := order.UserID
	if user, err := uc.userRepo.GetByID(order.UserID); err == nil && user != nil {
		customerName = user.Name
	}
	return uc.receipts.Receipt(order, lines, customerName)
}

func toOrderResponse(o *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	itemDTOs := make([]dto.OrderItemResponse, 0, len(items))
	for _, i := range items {
		itemDTOs = append(itemDTOs, dto.OrderItemResponse{
			ID:        i.ID,
			ProductID: i.ProductID,
			Quantity:  i.Quantity,
			UnitPrice: i.UnitPrice,
			Extension: i.Extension(),
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Total:         o.Total,
		Items:         itemDTOs,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toOrderList(orders []*entity.Order, page dto.PageRequest) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o, nil))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
