package repository

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry y la
// tabla de asociación companies_industries (N:N, sin ciclo de vida propio).
type IndustryRepository interface {
	Create(ctx context.Context, industry *entity.Industry) error
	GetByCode(ctx context.Context, code string) (*entity.Industry, error)
	GetByName(ctx context.Context, name string) (*entity.Industry, error)
	List(ctx context.Context) ([]*entity.Industry, error)
	// NamesForCompany devuelve los nombres de industria asociados a la
	// empresa, en el orden que entrega el almacén.
	NamesForCompany(ctx context.Context, compCode string) ([]string, error)
	AssociationExists(ctx context.Context, compCode, industryCode string) (bool, error)
	Associate(ctx context.Context, compCode, industryCode string) error
}
