package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria: sustituyen el almacén real para aislar los casos
// de uso (mismo contrato que los adaptadores de postgres, incluido el
// Conflict ante inserciones que violarían el constraint único).
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	companies    []*entity.Company
	industries   []*entity.Industry
	invoices     []*entity.Invoice
	nextID       int64
	associations map[[2]string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, associations: map[[2]string]bool{}}
}

func (s *fakeStore) addCompany(code, name string, description *string) *entity.Company {
	c := &entity.Company{Code: code, Name: name, Description: description}
	s.companies = append(s.companies, c)
	return c
}

func (s *fakeStore) addInvoice(compCode string, amt int64, paid bool, paidDate *time.Time) *entity.Invoice {
	inv := &entity.Invoice{
		ID:       s.nextID,
		CompCode: compCode,
		Amt:      decimal.NewFromInt(amt),
		Paid:     paid,
		AddDate:  time.Now(),
		PaidDate: paidDate,
	}
	s.nextID++
	s.invoices = append(s.invoices, inv)
	return inv
}

func (s *fakeStore) addIndustry(code, name string) *entity.Industry {
	ind := &entity.Industry{Code: code, Name: name}
	s.industries = append(s.industries, ind)
	return ind
}

// ─── CompanyRepository ────────────────────────────────────────────────────────

type fakeCompanyRepo struct{ s *fakeStore }

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func (r *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) error {
	for _, c := range r.s.companies {
		if c.Code == company.Code || c.Name == company.Name {
			return domain.Conflict("Cannot create because company code and/or name already exists")
		}
	}
	r.s.companies = append(r.s.companies, company)
	return nil
}

func (r *fakeCompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entity.Company) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.Code == company.Code {
			c.Name = company.Name
			c.Description = company.Description
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	return r.s.companies, nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, code string) error {
	out := r.s.companies[:0]
	for _, c := range r.s.companies {
		if c.Code != code {
			out = append(out, c)
		}
	}
	r.s.companies = out
	return nil
}

// ─── InvoiceRepository ────────────────────────────────────────────────────────

type fakeInvoiceRepo struct{ s *fakeStore }

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func (r *fakeInvoiceRepo) Create(_ context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	inv := &entity.Invoice{
		ID:       r.s.nextID,
		CompCode: compCode,
		Amt:      amt,
		Paid:     false,
		AddDate:  time.Now(),
	}
	r.s.nextID++
	r.s.invoices = append(r.s.invoices, inv)
	return inv, nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	for _, inv := range r.s.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetWithCompany(ctx context.Context, id int64) (*entity.Invoice, *entity.Company, error) {
	inv, _ := r.GetByID(ctx, id)
	if inv == nil {
		return nil, nil, nil
	}
	for _, c := range r.s.companies {
		if c.Code == inv.CompCode {
			return inv, c, nil
		}
	}
	// Factura huérfana: sin empresa el join no produce fila
	return nil, nil, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error) {
	current, _ := r.GetByID(ctx, invoice.ID)
	if current == nil {
		return nil, nil
	}
	current.Amt = invoice.Amt
	current.Paid = invoice.Paid
	current.PaidDate = invoice.PaidDate
	return current, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	return r.s.invoices, nil
}

func (r *fakeInvoiceRepo) ListByCompany(_ context.Context, compCode string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.CompCode == compCode {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id int64) error {
	out := r.s.invoices[:0]
	for _, inv := range r.s.invoices {
		if inv.ID != id {
			out = append(out, inv)
		}
	}
	r.s.invoices = out
	return nil
}

// ─── IndustryRepository ───────────────────────────────────────────────────────

type fakeIndustryRepo struct{ s *fakeStore }

var _ repository.IndustryRepository = (*fakeIndustryRepo)(nil)

func (r *fakeIndustryRepo) Create(_ context.Context, industry *entity.Industry) error {
	for _, ind := range r.s.industries {
		if ind.Code == industry.Code || ind.Name == industry.Name {
			return domain.Conflict("Cannot create because industry code and/or name already exists")
		}
	}
	r.s.industries = append(r.s.industries, industry)
	return nil
}

func (r *fakeIndustryRepo) GetByCode(_ context.Context, code string) (*entity.Industry, error) {
	for _, ind := range r.s.industries {
		if ind.Code == code {
			return ind, nil
		}
	}
	return nil, nil
}

func (r *fakeIndustryRepo) GetByName(_ context.Context, name string) (*entity.Industry, error) {
	for _, ind := range r.s.industries {
		if ind.Name == name {
			return ind, nil
		}
	}
	return nil, nil
}

func (r *fakeIndustryRepo) List(_ context.Context) ([]*entity.Industry, error) {
	return r.s.industries, nil
}

func (r *fakeIndustryRepo) NamesForCompany(_ context.Context, compCode string) ([]string, error) {
	var names []string
	for _, ind := range r.s.industries {
		if r.s.associations[[2]string{compCode, ind.Code}] {
			names = append(names, ind.Name)
		}
	}
	return names, nil
}

func (r *fakeIndustryRepo) AssociationExists(_ context.Context, compCode, industryCode string) (bool, error) {
	return r.s.associations[[2]string{compCode, industryCode}], nil
}

func (r *fakeIndustryRepo) Associate(_ context.Context, compCode, industryCode string) error {
	key := [2]string{compCode, industryCode}
	if r.s.associations[key] {
		return domain.Conflict("Cannot create because association already exists")
	}
	r.s.associations[key] = true
	return nil
}
