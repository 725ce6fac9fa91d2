package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

// Create persiste una factura nueva. La tabla completa id (secuencia),
// paid (false), add_date (CURRENT_DATE) y paid_date (NULL).
func (r *InvoiceRepo) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	query := `
		INSERT INTO invoices (comp_code, amt) VALUES ($1, $2)
		RETURNING ` + invoiceColumns
	var inv entity.Invoice
	err := r.pool.QueryRow(ctx, query, compCode, amt).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return &inv, nil
}

// GetByID obtiene una factura por id. (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetWithCompany obtiene la factura junto con su empresa en un solo JOIN.
// Si la empresa fue eliminada (factura huérfana) el join no produce fila
// y se devuelve (nil, nil, nil).
func (r *InvoiceRepo) GetWithCompany(ctx context.Context, id int64) (*entity.Invoice, *entity.Company, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices i
		JOIN companies c ON i.comp_code = c.code
		WHERE i.id = $1`
	var inv entity.Invoice
	var comp entity.Company
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
		&comp.Code, &comp.Name, &comp.Description,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get invoice with company: %w", err)
	}
	return &inv, &comp, nil
}

// Update reemplaza amt, paid y paid_date. Devuelve la fila resultante.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error) {
	query := `
		UPDATE invoices SET amt = $2, paid = $3, paid_date = $4
		WHERE id = $1
		RETURNING ` + invoiceColumns
	var inv entity.Invoice
	err := r.pool.QueryRow(ctx, query, invoice.ID, invoice.Amt, invoice.Paid, invoice.PaidDate).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return &inv, nil
}

// List devuelve todas las facturas (id, comp_code) en el orden del almacén.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, comp_code FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// ListByCompany devuelve las facturas de una empresa para el ensamblado
// de la respuesta anidada.
func (r *InvoiceRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE comp_code = $1`
	rows, err := r.pool.Query(ctx, query, compCode)
	if err != nil {
		return nil, fmt.Errorf("list invoices by company: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Delete elimina una factura por id.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
