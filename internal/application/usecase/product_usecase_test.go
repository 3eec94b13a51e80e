package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/application/usecase"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
	"github.com/jhoicas/pos-retail-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products       map[string]*entity.Product
	barcodeQueries int
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	f.barcodeQueries++
	for _, p := range f.products {
		if p.Barcode != "" && p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) AdjustQuantity(id string, delta int) error {
	f.products[id].Quantity += delta
	return nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) ListVisible(limit, offset int) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, p := range f.products {
		if p.Visible {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

type fakeActivityRepo struct {
	entries []*entity.ActivityLog
}

var _ repository.ActivityLogRepository = (*fakeActivityRepo)(nil)

func (f *fakeActivityRepo) Create(e *entity.ActivityLog) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeActivityRepo) ListRecent(limit, offset int) ([]*entity.ActivityLog, error) {
	return f.entries, nil
}

func (f *fakeActivityRepo) ListByUser(userID string, limit, offset int) ([]*entity.ActivityLog, error) {
	return f.entries, nil
}

func buildProductUseCase() (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := newFakeProductRepo()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	rec := audit.NewRecorder(&fakeActivityRepo{}, log)
	return usecase.NewProductUseCase(repo, rec), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Un producto creado con barcode se recupera por ese barcode con el mismo
// nombre, precio y código (flujo del escáner del cajero).
func TestProductUseCase_BarcodeIdaYVuelta(t *testing.T) {
	uc, _ := buildProductUseCase()

	created, err := uc.Create("admin-1", dto.CreateProductRequest{
		Name:     "Café molido 500g",
		Category: "abarrotes",
		Barcode:  "7701234567890",
		Price:    decimal.NewFromInt(8500),
		Quantity: 12,
		Visible:  true,
	}, dto.RequestMeta{})
	require.NoError(t, err)
	require.NotNil(t, created)

	found, err := uc.GetByBarcode("7701234567890")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "7701234567890", found.Barcode)
	assert.Equal(t, "Café molido 500g", found.Name)
	assert.True(t, decimal.NewFromInt(8500).Equal(found.Price), "el precio debe conservarse exacto")
}

// Barcode vacío significa "sin código": nunca matchea, ni siquiera contra
// productos que tampoco tienen código, y no toca el repositorio.
func TestProductUseCase_BarcodeVacioNuncaMatchea(t *testing.T) {
	uc, repo := buildProductUseCase()

	_, err := uc.Create("admin-1", dto.CreateProductRequest{
		Name:     "Producto sin código",
		Price:    decimal.NewFromInt(1000),
		Quantity: 1,
	}, dto.RequestMeta{})
	require.NoError(t, err)

	found, err := uc.GetByBarcode("")
	require.NoError(t, err)
	assert.Nil(t, found)
	assert.Zero(t, repo.barcodeQueries, "con barcode vacío no se consulta la DB")
}

func TestProductUseCase_BarcodeInexistente(t *testing.T) {
	uc, _ := buildProductUseCase()

	found, err := uc.GetByBarcode("0000000000000")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProductUseCase_CreateInvalido(t *testing.T) {
	uc, _ := buildProductUseCase()

	cases := []dto.CreateProductRequest{
		{Name: "", Price: decimal.NewFromInt(100), Quantity: 1},
		{Name: "Precio negativo", Price: decimal.NewFromInt(-1), Quantity: 1},
		{Name: "Stock negativo", Price: decimal.NewFromInt(100), Quantity: -1},
	}
	for _, in := range cases {
		_, err := uc.Create("admin-1", in, dto.RequestMeta{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Las existencias nunca quedan negativas: el ajuste que las dejaría bajo
// cero se rechaza sin tocar el stock.
func TestProductUseCase_AjusteNoDejaStockNegativo(t *testing.T) {
	uc, repo := buildProductUseCase()

	created, err := uc.Create("admin-1", dto.CreateProductRequest{
		Name:     "Leche entera",
		Price:    decimal.NewFromInt(3200),
		Quantity: 3,
	}, dto.RequestMeta{})
	require.NoError(t, err)

	err = uc.AdjustQuantity("admin-1", created.ID, -5, dto.RequestMeta{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 3, repo.products[created.ID].Quantity)

	require.NoError(t, uc.AdjustQuantity("admin-1", created.ID, -3, dto.RequestMeta{}))
	assert.Equal(t, 0, repo.products[created.ID].Quantity)
}
