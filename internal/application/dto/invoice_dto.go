package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/biztime-api/internal/domain/entity"
)

// InvoiceRequest entrada para crear o reemplazar una factura. Punteros para
// separar ausencia de valor cero; el decode rechaza tipos incorrectos
// (amt no numérico, paid no booleano) antes de la validación de presencia.
type InvoiceRequest struct {
	CompCode *string  `json:"comp_code"`
	Amt      *float64 `json:"amt"`
	Paid     *bool    `json:"paid"`
}

// InvoiceSummary elemento del listado de facturas.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceLine factura proyectada dentro de una empresa (sin comp_code,
// ya implícito en el padre).
type InvoiceLine struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceResponse salida de una factura (creación/reemplazo).
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceDetail factura con su empresa anidada (lectura individual).
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// FromInvoice mapea la entidad a su respuesta plana.
func FromInvoice(inv *entity.Invoice) *InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}

// ToInvoiceLine proyecta la entidad para el detalle de empresa.
func ToInvoiceLine(inv *entity.Invoice) InvoiceLine {
	return InvoiceLine{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}
