package entity

// Company representa una empresa. El código es un slug derivado del nombre
// al crearla y actúa como clave primaria; nombre y código son únicos.
type Company struct {
	Code        string
	Name        string
	Description *string // nullable
}
