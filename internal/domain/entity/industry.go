package entity

// Industry representa una industria. El código llega del cliente y se
// normaliza a slug; código y nombre son únicos.
type Industry struct {
	Code string
	Name string
}
