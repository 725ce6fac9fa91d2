package usecase

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
	"github.com/tu-usuario/biztime-api/pkg/slug"
)

// CompanyUseCase orquesta el pipeline de empresas: validación, derivación
// de código, chequeo de duplicados, resolución y ensamblado de respuesta.
type CompanyUseCase struct {
	companies  repository.CompanyRepository
	invoices   repository.InvoiceRepository
	industries repository.IndustryRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	invoices repository.InvoiceRepository,
	industries repository.IndustryRepository,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices, industries: industries}
}

// List devuelve todas las empresas (code, name).
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanySummary, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, domain.Internal(err)
	}
	items := make([]dto.CompanySummary, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanySummary{Code: c.Code, Name: c.Name})
	}
	return items, nil
}

// Get ensambla la respuesta anidada de una empresa: sus campos propios,
// sus facturas proyectadas y los nombres de sus industrias asociadas.
// Las tres lecturas son independientes sobre el mismo almacén.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetail, error) {
	company, err := uc.resolveCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	return uc.assemble(ctx, company)
}

// Create deriva el código del nombre, verifica duplicados por código y por
// nombre (dos consultas independientes, cualquiera descalifica) e inserta.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if err := validateCompanyCreate(in); err != nil {
		return nil, err
	}
	code := slug.Derive(*in.Name)
	if err := uc.checkDuplicate(ctx, code, *in.Name); err != nil {
		return nil, err
	}
	company := &entity.Company{Code: code, Name: *in.Name, Description: in.Description}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, wrap(err)
	}
	return dto.FromCompany(company), nil
}

// Replace reemplaza los campos mutables de una empresa existente. El código
// no cambia; una descripción ausente queda en null (reemplazo completo).
// Los duplicados no se chequean en esta ruta.
func (uc *CompanyUseCase) Replace(ctx context.Context, code string, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if _, err := uc.resolveCompany(ctx, code); err != nil {
		return nil, err
	}
	if err := validateCompanyReplace(in); err != nil {
		return nil, err
	}
	updated, err := uc.companies.Update(ctx, &entity.Company{
		Code:        code,
		Name:        *in.Name,
		Description: in.Description,
	})
	if err != nil {
		return nil, wrap(err)
	}
	if updated == nil {
		return nil, companyNotFound(code)
	}
	return dto.FromCompany(updated), nil
}

// Delete elimina una empresa. Sin cascada: sus facturas quedan huérfanas.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) error {
	if _, err := uc.resolveCompany(ctx, code); err != nil {
		return err
	}
	if err := uc.companies.Delete(ctx, code); err != nil {
		return wrap(err)
	}
	return nil
}

// AddIndustry asocia una industria existente a una empresa existente y
// devuelve la empresa ensamblada. La respuesta se escribe una sola vez,
// después de completar las lecturas anidadas.
func (uc *CompanyUseCase) AddIndustry(ctx context.Context, code string, in dto.AssociationRequest) (*dto.CompanyDetail, error) {
	if in.IndustryCode == nil || *in.IndustryCode == "" {
		return nil, domain.InvalidInput("Cannot add association because missing industry code data")
	}
	company, err := uc.resolveCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	industryCode := *in.IndustryCode
	industry, err := uc.industries.GetByCode(ctx, industryCode)
	if err != nil {
		return nil, wrap(err)
	}
	if industry == nil {
		return nil, domain.NotFound("Cannot find industry with code of %s", industryCode)
	}
	exists, err := uc.industries.AssociationExists(ctx, code, industryCode)
	if err != nil {
		return nil, wrap(err)
	}
	if exists {
		return nil, domain.Conflict("Cannot create because association already exists")
	}
	if err := uc.industries.Associate(ctx, code, industryCode); err != nil {
		return nil, wrap(err)
	}
	return uc.assemble(ctx, company)
}

// resolveCompany carga la empresa por código o corta con NotFound.
func (uc *CompanyUseCase) resolveCompany(ctx context.Context, code string) (*entity.Company, error) {
	company, err := uc.companies.GetByCode(ctx, code)
	if err != nil {
		return nil, wrap(err)
	}
	if company == nil {
		return nil, companyNotFound(code)
	}
	return company, nil
}

// checkDuplicate rechaza la creación si el código o el nombre candidato ya
// existen. No es atómico con el INSERT; el constraint único de la tabla es
// el árbitro final ante carreras.
func (uc *CompanyUseCase) checkDuplicate(ctx context.Context, code, name string) error {
	byCode, err := uc.companies.GetByCode(ctx, code)
	if err != nil {
		return wrap(err)
	}
	byName, err := uc.companies.GetByName(ctx, name)
	if err != nil {
		return wrap(err)
	}
	if byCode != nil || byName != nil {
		return domain.Conflict("Cannot create because company code and/or name already exists")
	}
	return nil
}

func (uc *CompanyUseCase) assemble(ctx context.Context, company *entity.Company) (*dto.CompanyDetail, error) {
	invoices, err := uc.invoices.ListByCompany(ctx, company.Code)
	if err != nil {
		return nil, wrap(err)
	}
	industries, err := uc.industries.NamesForCompany(ctx, company.Code)
	if err != nil {
		return nil, wrap(err)
	}
	lines := make([]dto.InvoiceLine, 0, len(invoices))
	for _, inv := range invoices {
		lines = append(lines, dto.ToInvoiceLine(inv))
	}
	if industries == nil {
		industries = []string{}
	}
	return &dto.CompanyDetail{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Invoices:    lines,
		Industries:  industries,
	}, nil
}

func validateCompanyCreate(in dto.CompanyRequest) error {
	if in.Name == nil || *in.Name == "" {
		return domain.InvalidInput("Cannot create/replace because missing code and/or name data")
	}
	return nil
}

func validateCompanyReplace(in dto.CompanyRequest) error {
	if in.Name == nil || *in.Name == "" {
		return domain.IncompleteUpdate("Cannot replace because missing name data")
	}
	return nil
}

func companyNotFound(code string) *domain.Error {
	return domain.NotFound("Cannot find company with code of %s", code)
}
