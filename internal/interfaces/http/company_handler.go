package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// companyTypeErrMsg mensajes 422 para campos con tipo incorrecto, según
// el verbo (el contrato observado distingue POST de PUT).
func companyTypeErrMsg(method string) func(field string) string {
	return func(field string) string {
		switch field {
		case "name", "description":
			if method == fiber.MethodPut {
				return "Please enter code and/or name as text"
			}
			return "Please enter name and/or description as text"
		}
		return ""
	}
}

// List GET /companies → 200 {companies:[{code,name}]}
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"companies": companies})
}

// Get GET /companies/:code → 200 {company:{...,invoices,industries}}
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.uc.Get(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"company": company})
}

// Create POST /companies → 201 {company:{code,name,description}}
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CompanyRequest
	if err := parseBody(c, &in, companyTypeErrMsg(c.Method())); err != nil {
		return err
	}
	company, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"company": company})
}

// Replace PUT /companies/:code → 201 {company:{code,name,description}}
func (h *CompanyHandler) Replace(c *fiber.Ctx) error {
	var in dto.CompanyRequest
	if err := parseBody(c, &in, companyTypeErrMsg(c.Method())); err != nil {
		return err
	}
	company, err := h.uc.Replace(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"company": company})
}

// Delete DELETE /companies/:code → 202 {status:"deleted"}
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("code")); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.StatusResponse{Status: "deleted"})
}

// AddIndustry POST /companies/:code/industries → 200 {company:{...}}
func (h *CompanyHandler) AddIndustry(c *fiber.Ctx) error {
	var in dto.AssociationRequest
	if err := parseBody(c, &in, nil); err != nil {
		return err
	}
	company, err := h.uc.AddIndustry(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"company": company})
}
