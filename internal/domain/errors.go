package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores de dominio. Los handlers HTTP mapean por
// etiqueta, nunca por contenido del mensaje.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindInvalidInput     Kind = "invalid_input"
	KindIncompleteUpdate Kind = "incomplete_update"
	KindBadRequest       Kind = "bad_request"
	KindInternal         Kind = "internal"
)

// Error es el error de dominio cerrado: etiqueta + status HTTP + mensaje
// visible para el cliente. Err (opcional) conserva la causa interna.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound indica que no existe la entidad buscada por clave.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Status: 404, Message: fmt.Sprintf(format, args...)}
}

// Conflict indica código/nombre/asociación duplicados.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Status: 409, Message: message}
}

// InvalidInput indica un campo requerido ausente o con tipo incorrecto.
func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Status: 422, Message: message}
}

// IncompleteUpdate indica un PUT sin un campo obligatorio. Conserva el
// status 304 del contrato observado; corregirlo es cambiar solo esta línea.
func IncompleteUpdate(message string) *Error {
	return &Error{Kind: KindIncompleteUpdate, Status: 304, Message: message}
}

// BadRequest indica un cuerpo que no respeta el formato JSON del endpoint.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Status: 400, Message: message}
}

// Internal envuelve un fallo inesperado (almacén u otro) como 500.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: 500, Message: "internal server error", Err: err}
}

// KindOf devuelve la etiqueta del error, o KindInternal si no es un *Error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
