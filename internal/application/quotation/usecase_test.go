package quotation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-retail-api/internal/application/audit"
	"github.com/jhoicas/pos-retail-api/internal/application/dto"
	"github.com/jhoicas/pos-retail-api/internal/application/quotation"
	"github.com/jhoicas/pos-retail-api/internal/domain"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
	"github.com/jhoicas/pos-retail-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeQuotationRepo struct {
	quotations map[string]*entity.Quotation
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{quotations: map[string]*entity.Quotation{}}
}

func (r *fakeQuotationRepo) clone() map[string]*entity.Quotation {
	c := map[string]*entity.Quotation{}
	for k, v := range r.quotations {
		cp := *v
		c[k] = &cp
	}
	return c
}

func (r *fakeQuotationRepo) Create(q *entity.Quotation) error {
	cp := *q
	r.quotations[q.ID] = &cp
	return nil
}

func (r *fakeQuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	q, ok := r.quotations[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

// Approve replica el UPDATE condicional: solo pending (o NULL) → approved.
func (r *fakeQuotationRepo) Approve(id string) (int64, error) {
	q, ok := r.quotations[id]
	if !ok {
		return 0, nil
	}
	if q.Status != entity.QuotationStatusPending && q.Status != "" {
		return 0, nil
	}
	q.Status = entity.QuotationStatusApproved
	q.UpdatedAt = time.Now()
	return 1, nil
}

func (r *fakeQuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	var out []*entity.Quotation
	for _, q := range r.quotations {
		out = append(out, q)
	}
	return out, nil
}

func (r *fakeQuotationRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Quotation, error) {
	var out []*entity.Quotation
	for _, q := range r.quotations {
		if q.SupplierID == supplierID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuotationRepo) Delete(id string) error {
	delete(r.quotations, id)
	return nil
}

type fakeSupplierRepo struct{ suppliers map[string]*entity.Supplier }

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error                    { return nil }
func (r *fakeSupplierRepo) Delete(id string) error                             { return nil }

// fakeTxRunner clona el estado antes del callback y lo restaura si falla,
// simulando el Rollback de la transacción real.
type fakeTxRunner struct{ repo *fakeQuotationRepo }

func (t *fakeTxRunner) RunQuotation(ctx context.Context, fn func(repository.QuotationRepository) error) error {
	snapshot := t.repo.clone()
	if err := fn(t.repo); err != nil {
		t.repo.quotations = snapshot
		return err
	}
	return nil
}

// fakeMailer cuenta envíos; puede forzarse a fallar.
type fakeMailer struct {
	sent   int
	lastTo string
	fail   bool
}

func (m *fakeMailer) SendQuotationEmail(toEmail, supplierName string, q *entity.Quotation) error {
	if m.fail {
		return errors.New("smtp caído")
	}
	m.sent++
	m.lastTo = toEmail
	return nil
}

type fakeActivityRepo struct{ entries []*entity.ActivityLog }

func (r *fakeActivityRepo) Create(l *entity.ActivityLog) error {
	r.entries = append(r.entries, l)
	return nil
}
func (r *fakeActivityRepo) ListRecent(limit, offset int) ([]*entity.ActivityLog, error) {
	return r.entries, nil
}
func (r *fakeActivityRepo) ListByUser(userID string, limit, offset int) ([]*entity.ActivityLog, error) {
	return r.entries, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testManagerID  = "manager-1"
	testSupplierID = "supplier-1"
)

var testMeta = dto.RequestMeta{IP: "10.0.0.1", UserAgent: "go-test"}

type fixture struct {
	repo   *fakeQuotationRepo
	mailer *fakeMailer
	uc     *quotation.UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newFakeQuotationRepo()
	mailer := &fakeMailer{}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		testSupplierID: {ID: testSupplierID, Name: "Distribuidora Andina", Email: "ventas@andina.co"},
	}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := quotation.NewUseCase(repo, suppliers, &fakeTxRunner{repo: repo}, mailer, audit.NewRecorder(&fakeActivityRepo{}, log))
	return &fixture{repo: repo, mailer: mailer, uc: uc}
}

func validRequest(sendEmail bool) dto.CreateQuotationRequest {
	return dto.CreateQuotationRequest{
		SupplierID: testSupplierID,
		Items: []dto.QuotationItemDTO{
			{Name: "Café en grano 10kg", Quantity: 4},
			{Name: "Filtros papel", Quantity: 20},
		},
		Notes:     "Entrega en bodega norte",
		SendEmail: sendEmail,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_SinEnvioQuedaPending(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Create(context.Background(), testManagerID, validRequest(false), testMeta)
	require.NoError(t, err)

	assert.Equal(t, entity.QuotationStatusPending, resp.Status)
	assert.Equal(t, "Distribuidora Andina", resp.SupplierName)
	assert.Zero(t, f.mailer.sent, "sin send_email no debe salir correo")
	assert.Len(t, resp.Items, 2)
}

func TestCreate_ConEnvioQuedaApproved(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Create(context.Background(), testManagerID, validRequest(true), testMeta)
	require.NoError(t, err)

	assert.Equal(t, entity.QuotationStatusApproved, resp.Status)
	assert.Equal(t, 1, f.mailer.sent)
	assert.Equal(t, "ventas@andina.co", f.mailer.lastTo)

	stored, _ := f.repo.GetByID(resp.ID)
	require.NotNil(t, stored)
	assert.Equal(t, entity.QuotationStatusApproved, stored.Status)
}

// El acoplamiento correo-estado: si el SMTP falla durante la creación con
// envío, la transacción se revierte y NO queda fila alguna.
func TestCreate_FalloSMTPNoDejaFila(t *testing.T) {
	f := newFixture(t)
	f.mailer.fail = true

	resp, err := f.uc.Create(context.Background(), testManagerID, validRequest(true), testMeta)
	assert.Nil(t, resp)
	require.Error(t, err)

	assert.Empty(t, f.repo.quotations, "el rollback debe dejar la tabla sin la fila")
}

func TestCreate_ProveedorInexistente(t *testing.T) {
	f := newFixture(t)
	req := validRequest(false)
	req.SupplierID = "no-existe"

	resp, err := f.uc.Create(context.Background(), testManagerID, req, testMeta)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ItemsInvalidos(t *testing.T) {
	f := newFixture(t)

	req := validRequest(false)
	req.Items = nil
	_, err := f.uc.Create(context.Background(), testManagerID, req, testMeta)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin items no hay cotización")

	req = validRequest(false)
	req.Items = []dto.QuotationItemDTO{{Name: "Café", Quantity: 0}}
	_, err = f.uc.Create(context.Background(), testManagerID, req, testMeta)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero es inválida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Send
// ──────────────────────────────────────────────────────────────────────────────

func TestSend_PendingPasaAApprovedYEnviaCorreo(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), testManagerID, validRequest(false), testMeta)
	require.NoError(t, err)

	resp, err := f.uc.Send(context.Background(), testManagerID, created.ID, testMeta)
	require.NoError(t, err)

	assert.Equal(t, entity.QuotationStatusApproved, resp.Status)
	assert.Equal(t, 1, f.mailer.sent)
}

// pending → approved es terminal: el segundo envío falla rápido, sin tocar
// el SMTP ni la fila.
func TestSend_ReenvioFallaSinTocarSMTP(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), testManagerID, validRequest(false), testMeta)
	require.NoError(t, err)

	_, err = f.uc.Send(context.Background(), testManagerID, created.ID, testMeta)
	require.NoError(t, err)
	require.Equal(t, 1, f.mailer.sent)

	resp, err := f.uc.Send(context.Background(), testManagerID, created.ID, testMeta)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrAlreadyApproved)
	assert.Equal(t, 1, f.mailer.sent, "el reenvío no debe llegar al SMTP")

	stored, _ := f.repo.GetByID(created.ID)
	assert.Equal(t, entity.QuotationStatusApproved, stored.Status)
}

// Si el SMTP falla en el envío de una pending, el status se revierte: la
// cotización sigue pending y puede reintentarse.
func TestSend_FalloSMTPRevierteElStatus(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), testManagerID, validRequest(false), testMeta)
	require.NoError(t, err)

	f.mailer.fail = true
	resp, err := f.uc.Send(context.Background(), testManagerID, created.ID, testMeta)
	assert.Nil(t, resp)
	require.Error(t, err)

	stored, _ := f.repo.GetByID(created.ID)
	assert.Equal(t, entity.QuotationStatusPending, stored.Status, "el rollback debe conservar pending")

	// Reintento con el SMTP recuperado.
	f.mailer.fail = false
	resp, err = f.uc.Send(context.Background(), testManagerID, created.ID, testMeta)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusApproved, resp.Status)
}

func TestSend_CotizacionInexistente(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Send(context.Background(), testManagerID, "no-existe", testMeta)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete y listados
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_BorraEnCualquierEstado(t *testing.T) {
	f := newFixture(t)
	created, err := f.uc.Create(context.Background(), testManagerID, validRequest(true), testMeta)
	require.NoError(t, err)
	require.Equal(t, entity.QuotationStatusApproved, created.Status)

	require.NoError(t, f.uc.Delete(testManagerID, created.ID, testMeta))

	got, err := f.uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListBySupplier_SoloLasDelProveedor(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(context.Background(), testManagerID, validRequest(false), testMeta)
	require.NoError(t, err)

	list, err := f.uc.ListBySupplier(testSupplierID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	empty, err := f.uc.ListBySupplier("otro-proveedor", dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
}
