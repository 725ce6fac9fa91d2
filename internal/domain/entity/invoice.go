package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura de una empresa. El ID lo genera la
// secuencia de la tabla; AddDate lo fija el almacén en la creación.
// PaidDate es nulo si y solo si Paid es falso; cambia únicamente cuando
// Paid transiciona, nunca en actualizaciones ajenas.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}
