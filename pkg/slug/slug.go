package slug

import "strings"

// Normalize convierte un texto libre en un código slug estable:
// minúsculas y solo [a-z0-9]; todo lo demás (espacios, tildes, símbolos)
// se descarta. Es idempotente: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// Derive obtiene el código de una empresa a partir de su nombre:
// elimina el carácter '$', corta en el primer espacio y normaliza.
// Solo aplica a la creación de empresas; los códigos de industria
// llegan del cliente y pasan únicamente por Normalize.
func Derive(name string) string {
	code := strings.ReplaceAll(name, "$", "")
	if i := strings.IndexByte(code, ' '); i >= 0 {
		code = code[:i]
	}
	return Normalize(code)
}
