package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/biztime-api/internal/application/dto"
	"github.com/tu-usuario/biztime-api/internal/application/usecase"
	"github.com/tu-usuario/biztime-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP para el recurso Invoice.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler inyectando el caso de uso.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

func invoiceTypeErrMsg(field string) string {
	switch field {
	case "amt":
		return "Please enter amt as a number"
	case "paid":
		return "Please enter paid as a boolean"
	}
	return ""
}

// invoiceID convierte el parámetro de ruta. Un id no numérico no puede
// existir en la secuencia, así que responde el mismo NotFound.
func invoiceID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NotFound("Cannot find invoice with id of %s", raw)
	}
	return id, nil
}

// List GET /invoices → 200 {invoices:[{id,comp_code}]}
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"invoices": invoices})
}

// Get GET /invoices/:id → 200 {invoice:{...,company:{...}}}
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	invoice, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"invoice": invoice})
}

// Create POST /invoices → 201 {invoice:{...}}
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := parseBody(c, &in, invoiceTypeErrMsg); err != nil {
		return err
	}
	invoice, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invoice": invoice})
}

// Replace PUT /invoices/:id → 201 {invoice:{...}}
func (h *InvoiceHandler) Replace(c *fiber.Ctx) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	var in dto.InvoiceRequest
	if err := parseBody(c, &in, invoiceTypeErrMsg); err != nil {
		return err
	}
	invoice, err := h.uc.Replace(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invoice": invoice})
}

// Delete DELETE /invoices/:id → 202 {status:"deleted"}
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := invoiceID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.StatusResponse{Status: "deleted"})
}
