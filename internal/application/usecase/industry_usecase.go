package usecase

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
	"github.com/tu-usuario/biztime-api/pkg/slug"
)

// IndustryUseCase orquesta el pipeline de industrias. A diferencia de las
// empresas, el código lo aporta el cliente y solo se normaliza (sin la
// regla de corte en el primer espacio).
type IndustryUseCase struct {
	industries repository.IndustryRepository
}

// NewIndustryUseCase construye el caso de uso con el puerto de persistencia.
func NewIndustryUseCase(industries repository.IndustryRepository) *IndustryUseCase {
	return &IndustryUseCase{industries: industries}
}

// List devuelve todas las industrias.
func (uc *IndustryUseCase) List(ctx context.Context) ([]dto.IndustryResponse, error) {
	list, err := uc.industries.List(ctx)
	if err != nil {
		return nil, domain.Internal(err)
	}
	items := make([]dto.IndustryResponse, 0, len(list))
	for _, ind := range list {
		items = append(items, dto.IndustryResponse{Code: ind.Code, Name: ind.Name})
	}
	return items, nil
}

// Create valida, normaliza el código y verifica duplicados por código y
// por nombre antes de insertar.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.IndustryRequest) (*dto.IndustryResponse, error) {
	if in.Code == nil || *in.Code == "" || in.Name == nil || *in.Name == "" {
		return nil, domain.InvalidInput("Cannot create because missing code and/or name data")
	}
	code := slug.Normalize(*in.Code)
	if err := uc.checkDuplicate(ctx, code, *in.Name); err != nil {
		return nil, err
	}
	industry := &entity.Industry{Code: code, Name: *in.Name}
	if err := uc.industries.Create(ctx, industry); err != nil {
		return nil, wrap(err)
	}
	return &dto.IndustryResponse{Code: industry.Code, Name: industry.Name}, nil
}

func (uc *IndustryUseCase) checkDuplicate(ctx context.Context, code, name string) error {
	byCode, err := uc.industries.GetByCode(ctx, code)
	if err != nil {
		return wrap(err)
	}
	byName, err := uc.industries.GetByName(ctx, name)
	if err != nil {
		return wrap(err)
	}
	if byCode != nil || byName != nil {
		return domain.Conflict("Cannot create because industry code and/or name already exists")
	}
	return nil
}
