package usecase

import (
	"errors"

	"github.com/tu-usuario/biztime-api/internal/domain"
)

// wrap deja pasar los errores de dominio (p.ej. el Conflict que emite el
// adaptador ante un 23505) y envuelve cualquier otro fallo como Internal.
func wrap(err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return de
	}
	return domain.Internal(err)
}
