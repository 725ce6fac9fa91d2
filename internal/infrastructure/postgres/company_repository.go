package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa. Si el INSERT pierde la carrera contra
// otra creación idéntica, el constraint único de la tabla responde 23505 y
// se devuelve el mismo conflicto que el chequeo previo de duplicados.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `INSERT INTO companies (code, name, description) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, company.Code, company.Name, company.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Cannot create because company code and/or name already exists")
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByCode obtiene una empresa por código. (nil, nil) si no existe.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	query := `SELECT code, name, description FROM companies WHERE code = $1`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, code).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una empresa por nombre. (nil, nil) si no existe.
func (r *CompanyRepo) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	query := `SELECT code, name, description FROM companies WHERE name = $1`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, name).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name: %w", err)
	}
	return &c, nil
}

// Update reemplaza los campos mutables (name, description); el código es
// inmutable. Devuelve la fila resultante.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	query := `
		UPDATE companies SET name = $2, description = $3
		WHERE code = $1
		RETURNING code, name, description`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, company.Code, company.Name, company.Description).
		Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &c, nil
}

// List devuelve todas las empresas (code, name) en el orden del almacén.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa por código. Sin cascada: sus facturas quedan
// huérfanas a propósito (política documentada en DESIGN.md).
func (r *CompanyRepo) Delete(ctx context.Context, code string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
