package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// InvoiceUseCase orquesta el pipeline de facturas: validación, resolución
// de la empresa dueña y la transición de paid/paid_date.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
}

// NewInvoiceUseCase construye el caso de uso con los puertos de persistencia.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, companies repository.CompanyRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, companies: companies}
}

// List devuelve todas las facturas (id, comp_code).
func (uc *InvoiceUseCase) List(ctx context.Context) ([]dto.InvoiceSummary, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, domain.Internal(err)
	}
	items := make([]dto.InvoiceSummary, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	return items, nil
}

// Get devuelve la factura con su empresa anidada. Una factura huérfana
// (empresa eliminada, sin cascada) no produce fila en el JOIN y responde
// NotFound, igual que un id inexistente.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceDetail, error) {
	invoice, company, err := uc.invoices.GetWithCompany(ctx, id)
	if err != nil {
		return nil, wrap(err)
	}
	if invoice == nil {
		return nil, invoiceNotFound(id)
	}
	return &dto.InvoiceDetail{
		ID:       invoice.ID,
		Amt:      invoice.Amt,
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate,
		PaidDate: invoice.PaidDate,
		Company:  *dto.FromCompany(company),
	}, nil
}

// Create valida comp_code y amt, resuelve la empresa dueña (chequeo
// referencial en el pipeline, no delegado al almacén) e inserta. El
// almacén completa id, paid=false, add_date=hoy y paid_date=null.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CompCode == nil || *in.CompCode == "" || in.Amt == nil {
		return nil, domain.InvalidInput("Cannot create/replace because missing comp_code and/or amt data")
	}
	company, err := uc.companies.GetByCode(ctx, *in.CompCode)
	if err != nil {
		return nil, wrap(err)
	}
	if company == nil {
		return nil, domain.NotFound("Cannot find company with code of %s", *in.CompCode)
	}
	invoice, err := uc.invoices.Create(ctx, company.Code, decimal.NewFromFloat(*in.Amt))
	if err != nil {
		return nil, wrap(err)
	}
	return dto.FromInvoice(invoice), nil
}

// Replace reemplaza amt y, si viene, paid. paid_date solo cambia cuando
// paid transiciona: false→true lo fija a hoy, true→false lo anula; si paid
// no cambia (o no viene) la fecha existente se conserva.
func (uc *InvoiceUseCase) Replace(ctx context.Context, id int64, in dto.InvoiceRequest) (*dto.InvoiceResponse, error) {
	current, err := uc.resolveInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Amt == nil {
		return nil, domain.IncompleteUpdate("Cannot replace because missing amt and/or paid data")
	}

	next := &entity.Invoice{
		ID:       current.ID,
		CompCode: current.CompCode,
		Amt:      decimal.NewFromFloat(*in.Amt),
		Paid:     current.Paid,
		PaidDate: current.PaidDate,
	}
	if in.Paid != nil && *in.Paid != current.Paid {
		next.Paid = *in.Paid
		if *in.Paid {
			today := time.Now()
			next.PaidDate = &today
		} else {
			next.PaidDate = nil
		}
	}

	updated, err := uc.invoices.Update(ctx, next)
	if err != nil {
		return nil, wrap(err)
	}
	if updated == nil {
		return nil, invoiceNotFound(id)
	}
	return dto.FromInvoice(updated), nil
}

// Delete elimina una factura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.resolveInvoice(ctx, id); err != nil {
		return err
	}
	if err := uc.invoices.Delete(ctx, id); err != nil {
		return wrap(err)
	}
	return nil
}

// resolveInvoice carga la factura por id o corta con NotFound.
func (uc *InvoiceUseCase) resolveInvoice(ctx context.Context, id int64) (*entity.Invoice, error) {
	invoice, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, wrap(err)
	}
	if invoice == nil {
		return nil, invoiceNotFound(id)
	}
	return invoice, nil
}

func invoiceNotFound(id int64) *domain.Error {
	return domain.NotFound("Cannot find invoice with id of %d", id)
}
