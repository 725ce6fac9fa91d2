package dto

import "github.com/tu-usuario/biztime-api/internal/domain/entity"

// CompanyRequest entrada para crear o reemplazar una empresa. Los campos
// son punteros para distinguir "ausente" de "vacío"; un tipo incorrecto
// se rechaza al decodificar el cuerpo, antes de llegar aquí.
type CompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CompanySummary elemento del listado de empresas.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyResponse salida de una empresa (creación/reemplazo).
type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyDetail empresa con sus colecciones anidadas (lectura individual
// y respuesta del endpoint de asociación).
type CompanyDetail struct {
	Code        string        `json:"code"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Invoices    []InvoiceLine `json:"invoices"`
	Industries  []string      `json:"industries"`
}

// FromCompany mapea la entidad a su respuesta plana.
func FromCompany(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{Code: c.Code, Name: c.Name, Description: c.Description}
}
