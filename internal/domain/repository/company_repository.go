package repository

import (
	"context"

	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los lookups devuelven
// (nil, nil) cuando la fila no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	Delete(ctx context.Context, code string) error
}
