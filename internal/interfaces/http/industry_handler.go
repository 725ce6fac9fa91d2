package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
)

// IndustryHandler maneja las peticiones HTTP para el recurso Industry.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler inyectando el caso de uso.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

func industryTypeErrMsg(field string) string {
	switch field {
	case "code", "name":
		return "Please enter code and/or name as text"
	}
	return ""
}

// List GET /industries → 200 {industries:[{code,name}]}
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	industries, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"industries": industries})
}

// Create POST /industries → 201 {industry:{code,name}}
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.IndustryRequest
	if err := parseBody(c, &in, industryTypeErrMsg); err != nil {
		return err
	}
	industry, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"industry": industry})
}
