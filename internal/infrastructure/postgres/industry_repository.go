package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/biztime-api/internal/domain"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
	"github.com/tu-usuario/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación del puerto IndustryRepository sobre PostgreSQL.
// Cubre la tabla industries y la de asociación companies_industries.
type IndustryRepo struct {
	pool *pgxpool.Pool
}

// NewIndustryRepository construye el adaptador de persistencia para industrias.
func NewIndustryRepository(pool *pgxpool.Pool) *IndustryRepo {
	return &IndustryRepo{pool: pool}
}

// Create persiste una industria nueva. El constraint único respalda el
// chequeo previo de duplicados ante carreras.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	query := `INSERT INTO industries (code, name) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, industry.Code, industry.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Cannot create because industry code and/or name already exists")
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// GetByCode obtiene una industria por código. (nil, nil) si no existe.
func (r *IndustryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	query := `SELECT code, name FROM industries WHERE code = $1`
	var ind entity.Industry
	err := r.pool.QueryRow(ctx, query, code).Scan(&ind.Code, &ind.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get industry: %w", err)
	}
	return &ind, nil
}

// GetByName obtiene una industria por nombre. (nil, nil) si no existe.
func (r *IndustryRepo) GetByName(ctx context.Context, name string) (*entity.Industry, error) {
	query := `SELECT code, name FROM industries WHERE name = $1`
	var ind entity.Industry
	err := r.pool.QueryRow(ctx, query, name).Scan(&ind.Code, &ind.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get industry by name: %w", err)
	}
	return &ind, nil
}

// List devuelve todas las industrias en el orden del almacén.
func (r *IndustryRepo) List(ctx context.Context) ([]*entity.Industry, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name FROM industries`)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	var list []*entity.Industry
	for rows.Next() {
		var ind entity.Industry
		if err := rows.Scan(&ind.Code, &ind.Name); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		list = append(list, &ind)
	}
	return list, rows.Err()
}

// NamesForCompany devuelve los nombres de industria asociados a una empresa
// vía companies_industries, en el orden que entrega el almacén.
func (r *IndustryRepo) NamesForCompany(ctx context.Context, compCode string) ([]string, error) {
	query := `
		SELECT i.name
		FROM industries i
		JOIN companies_industries ci ON i.code = ci.industry_code
		WHERE ci.comp_code = $1`
	rows, err := r.pool.Query(ctx, query, compCode)
	if err != nil {
		return nil, fmt.Errorf("list industry names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan industry name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// AssociationExists informa si el par (comp_code, industry_code) ya está registrado.
func (r *IndustryRepo) AssociationExists(ctx context.Context, compCode, industryCode string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM companies_industries
			 WHERE comp_code = $1 AND industry_code = $2
		)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, compCode, industryCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("check association: %w", err)
	}
	return exists, nil
}

// Associate registra el par (comp_code, industry_code).
func (r *IndustryRepo) Associate(ctx context.Context, compCode, industryCode string) error {
	query := `INSERT INTO companies_industries (comp_code, industry_code) VALUES ($1, $2)`
	_, err := r.pool.Exec(ctx, query, compCode, industryCode)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("Cannot create because association already exists")
		}
		return fmt.Errorf("insert association: %w", err)
	}
	return nil
}
