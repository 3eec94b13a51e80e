package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/application/order"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
	"github.com/jhoicas/pos-retail-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type lineKey struct{ userID, productID string }

// fakeStore estado compartido: productos, carrito y órdenes en maps.
type fakeStore struct {
	products map[string]*entity.Product
	cart     map[lineKey]*entity.CartLine
	orders   map[string]*entity.Order
	items    map[string][]*entity.OrderItem // por order ID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*entity.Product{},
		cart:     map[lineKey]*entity.CartLine{},
		orders:   map[string]*entity.Order{},
		items:    map[string][]*entity.OrderItem{},
	}
}

// clone copia profunda para simular el snapshot de una transacción.
func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.cart {
		cp := *v
		c.cart[k] = &cp
	}
	for k, v := range s.orders {
		cp := *v
		c.orders[k] = &cp
	}
	for k, v := range s.items {
		c.items[k] = append([]*entity.OrderItem(nil), v...)
	}
	return c
}

func (s *fakeStore) restore(from *fakeStore) {
	s.products = from.products
	s.cart = from.cart
	s.orders = from.orders
	s.items = from.items
}

// fakeProductRepo sobre el store.
type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.store.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.store.products[id], nil
}
func (r *fakeProductRepo) GetByBarcode(b string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                 { return nil }
func (r *fakeProductRepo) AdjustQuantity(id string, delta int) error      { return nil }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListVisible(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Delete(id string) error { return nil }

// fakeCartRepo sobre el store.
type fakeCartRepo struct {
	store     *fakeStore
	failClear bool // fuerza el fallo dentro de la tx
}

func (r *fakeCartRepo) GetLine(userID, productID string) (*entity.CartLine, error) {
	return r.store.cart[lineKey{userID, productID}], nil
}
func (r *fakeCartRepo) Insert(l *entity.CartLine) error {
	r.store.cart[lineKey{l.UserID, l.ProductID}] = l
	return nil
}
func (r *fakeCartRepo) SetQuantity(userID, productID string, q int) error {
	if l, ok := r.store.cart[lineKey{userID, productID}]; ok {
		l.Quantity = q
	}
	return nil
}
func (r *fakeCartRepo) DeleteLine(userID, productID string) error {
	delete(r.store.cart, lineKey{userID, productID})
	return nil
}
func (r *fakeCartRepo) ListPriced(userID string) ([]entity.PricedCartLine, error) {
	var out []entity.PricedCartLine
	for k, l := range r.store.cart {
		if k.userID != userID {
			continue
		}
		p := r.store.products[l.ProductID]
		out = append(out, entity.PricedCartLine{
			ProductID:   l.ProductID,
			ProductName: p.Name,
			Quantity:    l.Quantity,
			UnitPrice:   p.Price,
		})
	}
	return out, nil
}
func (r *fakeCartRepo) ClearByUser(userID string) error {
	if r.failClear {
		return errors.New("fallo simulado al vaciar el carrito")
	}
	for k := range r.store.cart {
		if k.userID == userID {
			delete(r.store.cart, k)
		}
	}
	return nil
}

// fakeOrderRepo sobre el store.
type fakeOrderRepo struct{ store *fakeStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error { r.store.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) CreateItem(i *entity.OrderItem) error {
	r.store.items[i.OrderID] = append(r.store.items[i.OrderID], i)
	return nil
}
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return r.store.orders[id], nil }
func (r *fakeOrderRepo) GetItems(orderID string) ([]*entity.OrderItem, error) {
	return r.store.items[orderID], nil
}
func (r *fakeOrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.store.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.store.orders {
		out = append(out, o)
	}
	return out, nil
}

// ConfirmPayment replica el UPDATE condicional: solo pending → confirmed.
func (r *fakeOrderRepo) ConfirmPayment(id string) (int64, error) {
	o, ok := r.store.orders[id]
	if !ok || o.Status != entity.OrderStatusPending {
		return 0, nil
	}
	o.Status = entity.OrderStatusConfirmed
	o.UpdatedAt = time.Now()
	return 1, nil
}

// fakeUserRepo mínimo (solo GetByID se usa aquí).
type fakeUserRepo struct{ users map[string]*entity.User }

func (r *fakeUserRepo) Create(u *entity.User) error                   { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)       { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(e string) (*entity.User, error)     { return nil, nil }
func (r *fakeUserRepo) GetByRememberToken(t string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByResetToken(t string) (*entity.User, error)    { return nil, nil }
func (r *fakeUserRepo) Update(u *entity.User) error                   { return nil }
func (r *fakeUserRepo) TouchLastActive(id string) error               { return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Delete(id string) error                        { return nil }

// fakeTxRunner simula la atomicidad: clona el store antes del callback y
// lo restaura si el callback falla (equivalente a un Rollback).
type fakeTxRunner struct {
	store     *fakeStore
	failClear bool
}

func (t *fakeTxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
) error) error {
	snapshot := t.store.clone()
	err := fn(&fakeOrderRepo{store: t.store}, &fakeCartRepo{store: t.store, failClear: t.failClear})
	if err != nil {
		t.store.restore(snapshot)
		return err
	}
	return nil
}

// fakeActivityRepo acumula entradas de auditoría.
type fakeActivityRepo struct{ entries []*entity.ActivityLog }

func (r *fakeActivityRepo) Create(l *entity.ActivityLog) error { r.entries = append(r.entries, l); return nil }
func (r *fakeActivityRepo) ListRecent(limit, offset int) ([]*entity.ActivityLog, error) {
	return r.entries, nil
}
func (r *fakeActivityRepo) ListByUser(userID string, limit, offset int) ([]*entity.ActivityLog, error) {
	return r.entries, nil
}

// fakeReceipts genera un PDF trivial.
type fakeReceipts struct{}

func (fakeReceipts) Receipt(o *entity.Order, lines []order.ReceiptLine, customerName string) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "user-1"

var testMeta = dto.RequestMeta{IP: "10.0.0.1", UserAgent: "go-test"}

type fixture struct {
	store    *fakeStore
	tx       *fakeTxRunner
	activity *fakeActivityRepo
	uc       *order.UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFakeStore()
	tx := &fakeTxRunner{store: store}
	activity := &fakeActivityRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := order.NewUseCase(
		&fakeOrderRepo{store: store},
		&fakeCartRepo{store: store},
		&fakeProductRepo{store: store},
		&fakeUserRepo{users: map[string]*entity.User{
			testUserID: {ID: testUserID, Name: "Cliente Uno"},
		}},
		tx,
		fakeReceipts{},
		audit.NewRecorder(activity, log),
	)
	return &fixture{store: store, tx: tx, activity: activity, uc: uc}
}

func (f *fixture) seedProduct(id, name string, price int64, visible bool) {
	f.store.products[id] = &entity.Product{
		ID:      id,
		Name:    name,
		Price:   decimal.NewFromInt(price),
		Visible: visible,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToCart_NuevaLineaYLuegoIncrementa(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("p1", "Café 500g", 1000, true)

	cart, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// Segundo add del mismo producto: INCREMENTA, no reemplaza.
	cart, err = f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddToCart_ProductoOcultoONulo(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("oculto", "Descontinuado", 500, false)

	_, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "oculto", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "un producto no visible no entra al carrito")

	_, err = f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCartItem_FijaCantidadAbsoluta(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("p1", "Café 500g", 1000, true)

	_, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)

	// A diferencia de AddToCart, update fija el valor: 5 → 2, no 5+2.
	cart, err := f.uc.UpdateCartItem(testUserID, "p1", dto.UpdateCartItemRequest{Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestUpdateCartItem_CantidadCeroEliminaLaLinea(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("p1", "Café 500g", 1000, true)

	_, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 5})
	require.NoError(t, err)

	cart, err := f.uc.UpdateCartItem(testUserID, "p1", dto.UpdateCartItemRequest{Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, cart.Items, "cantidad ≤ 0 elimina la línea en vez de dejarla en cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_TotalYSnapshot(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("p1", "Café 500g", 1000, true)
	f.seedProduct("p2", "Azúcar 1kg", 250, true)

	_, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	_, err = f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p2", Quantity: 2})
	require.NoError(t, err)

	resp, err := f.uc.CreateOrder(context.Background(), testUserID, dto.CreateOrderRequest{PaymentMethod: "cash"}, testMeta)
	require.NoError(t, err)

	// 2×1000 + 2×250 = 2500
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(2500)), "total esperado 2500, fue %s", resp.Total)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Len(t, resp.Items, 2)

	// El carrito quedó vacío dentro de la misma transacción.
	cart, err := f.uc.GetCart(testUserID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

// El precio de la línea es snapshot: cambiar el catálogo después no altera la orden.
func TestCreateOrder_PrecioInmutableAnteCambiosDeCatalogo(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("p1", "Café 500g", 1000, true)

	_, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	resp, err := f.uc.CreateOrder(context.Background(), testUserID, dto.CreateOrderRequest{PaymentMethod: "card"}, testMeta)
	require.NoError(t, err)

	// Sube el precio del catálogo.
	f.store.products["p1"].Price = decimal.NewFromInt(9999)

	got, err := f.uc.GetOrder(resp.ID, testUserID, entity.RoleCustomer)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].UnitPrice.Equal(decimal.NewFromInt(1000)), "la línea conserva el precio al momento de compra")
	assert.True(t, got.Total.Equal(decimal.NewFromInt(1000)))
}

func TestCreateOrder_CarritoVacioNoEscribeNada(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateOrder(context.Background(), testUserID, dto.CreateOrderRequest{PaymentMethod: "cash"}, testMeta)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, f.store.orders, "un carrito vacío no debe producir escrituras")
	assert.Empty(t, f.activity.entries)
}

func TestCreateOrder_MetodoDePagoInvalido(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("p1", "Café 500g", 1000, true)
	_, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	_, err = f.uc.CreateOrder(context.Background(), testUserID, dto.CreateOrderRequest{PaymentMethod: "bitcoin"}, testMeta)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si algo falla dentro de la transacción, la orden no existe y el carrito
// queda intacto: atomicidad carrito+orden.
func TestCreateOrder_RollbackDejaElCarritoIntacto(t *testing.T) {
	f := newFixture(t)
	f.tx.failClear = true
	f.seedProduct("p1", "Café 500g", 1000, true)

	_, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)

	resp, err := f.uc.CreateOrder(context.Background(), testUserID, dto.CreateOrderRequest{PaymentMethod: "cash"}, testMeta)
	assert.Nil(t, resp)
	require.Error(t, err)

	assert.Empty(t, f.store.orders, "el rollback debe revertir la orden")
	cart, err := f.uc.GetCart(testUserID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity, "el carrito sobrevive al rollback")
}

// ──────────────────────────────────────────────────────────────────────────────
// ConfirmPayment
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmPayment_IdempotentePorFilasAfectadas(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("p1", "Café 500g", 1000, true)
	_, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	created, err := f.uc.CreateOrder(context.Background(), testUserID, dto.CreateOrderRequest{PaymentMethod: "cash"}, testMeta)
	require.NoError(t, err)

	first, err := f.uc.ConfirmPayment("cashier-1", created.ID, testMeta)
	require.NoError(t, err)
	assert.True(t, first.Confirmed)

	// Segunda confirmación: sin error, sin efecto.
	second, err := f.uc.ConfirmPayment("cashier-1", created.ID, testMeta)
	require.NoError(t, err)
	assert.False(t, second.Confirmed, "la segunda confirmación no afecta filas")
	assert.Equal(t, entity.OrderStatusConfirmed, f.store.orders[created.ID].Status)
}

func TestConfirmPayment_OrdenInexistente(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.ConfirmPayment("cashier-1", "no-existe", testMeta)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrder_CustomerNoVeOrdenesAjenas(t *testing.T) {
	f := newFixture(t)
	f.seedProduct("p1", "Café 500g", 1000, true)
	_, err := f.uc.AddToCart(testUserID, dto.AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	created, err := f.uc.CreateOrder(context.Background(), testUserID, dto.CreateOrderRequest{PaymentMethod: "cash"}, testMeta)
	require.NoError(t, err)

	_, err = f.uc.GetOrder(created.ID, "otro-cliente", entity.RoleCustomer)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Un cajero sí puede consultar cualquier orden.
	got, err := f.uc.GetOrder(created.ID, "cashier-1", entity.RoleCashier)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
