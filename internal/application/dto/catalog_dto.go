package dto

// CatalogItemRequest body para crear tipos de producto y tallas.
type CatalogItemRequest struct {
	Nombre string `json:"nombre"`
}

// CatalogItemResponse tipo de producto o talla.
type CatalogItemResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
