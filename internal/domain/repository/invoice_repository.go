package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Create y Update devuelven la fila resultante (RETURNING) porque el
// almacén completa id, add_date y los defaults de paid/paid_date.
type InvoiceRepository interface {
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error)
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// GetWithCompany devuelve la factura junto con su empresa (JOIN).
	// (nil, nil, nil) si el join no produce fila.
	GetWithCompany(ctx context.Context, id int64) (*entity.Invoice, *entity.Company, error)
	Update(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error)
	Delete(ctx context.Context, id int64) error
}
