package dto

// IndustryRequest entrada para crear una industria.
type IndustryRequest struct {
	Code *string `json:"code"`
	Name *string `json:"name"`
}

// AssociationRequest entrada del endpoint de asociación empresa-industria.
type AssociationRequest struct {
	IndustryCode *string `json:"industry_code"`
}

// IndustryResponse salida de una industria.
type IndustryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
