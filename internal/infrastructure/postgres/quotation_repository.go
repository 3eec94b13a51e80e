package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/pos-retail-api/internal/domain/entity"
	"github.com/jhoicas/pos-retail-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación del puerto QuotationRepository sobre PostgreSQL (usable con pool o tx).
// Items se guarda serializado en JSONB: es un snapshot de texto libre sin FK al catálogo.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador de cotizaciones. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create persiste una cotización con los items serializados.
func (r *QuotationRepo) Create(qt *entity.Quotation) error {
	items, err := json.Marshal(qt.Items)
	if err != nil {
		return fmt.Errorf("marshal quotation items: %w", err)
	}
	query := `
		INSERT INTO quotations (id, supplier_id, created_by, items, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		qt.ID, qt.SupplierID, qt.CreatedBy, items, qt.Notes, qt.Status,
		qt.CreatedAt, qt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	query := `
		SELECT id, supplier_id, created_by, items, notes, status, created_at, updated_at
		FROM quotations WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *QuotationRepo) scanOne(row pgx.Row) (*entity.Quotation, error) {
	var qt entity.Quotation
	var items []byte
	err := row.Scan(&qt.ID, &qt.SupplierID, &qt.CreatedBy, &items, &qt.Notes, &qt.Status,
		&qt.CreatedAt, &qt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &qt.Items); err != nil {
			return nil, fmt.Errorf("unmarshal quotation items: %w", err)
		}
	}
	return &qt, nil
}

// Approve aprueba de forma condicional: solo si el status actual es 'pending'
// o NULL (filas antiguas sin status). 0 filas afectadas = ya aprobada.
func (r *QuotationRepo) Approve(id string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET status = $2, updated_at = now()
		 WHERE id = $1 AND (status = $3 OR status IS NULL)`,
		id, entity.QuotationStatusApproved, entity.QuotationStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("approve quotation: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// List lista cotizaciones con paginación (vista de shop manager).
func (r *QuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	query := `
		SELECT id, supplier_id, created_by, items, notes, status, created_at, updated_at
		FROM quotations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	return collectQuotations(rows)
}

// ListBySupplier lista las cotizaciones dirigidas a un proveedor.
func (r *QuotationRepo) ListBySupplier(supplierID string, limit, offset int) ([]*entity.Quotation, error) {
	query := `
		SELECT id, supplier_id, created_by, items, notes, status, created_at, updated_at
		FROM quotations WHERE supplier_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations by supplier: %w", err)
	}
	return collectQuotations(rows)
}

func collectQuotations(rows pgx.Rows) ([]*entity.Quotation, error) {
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var qt entity.Quotation
		var items []byte
		if err := rows.Scan(&qt.ID, &qt.SupplierID, &qt.CreatedBy, &items, &qt.Notes,
			&qt.Status, &qt.CreatedAt, &qt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &qt.Items); err != nil {
				return nil, fmt.Errorf("unmarshal quotation items: %w", err)
			}
		}
		list = append(list, &qt)
	}
	return list, rows.Err()
}

// Delete elimina una cotización por ID, en cualquier estado.
func (r *QuotationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	return nil
}
