package dto

import "time"

// CustomerRequest body para crear/actualizar clientes.
type CustomerRequest struct {
	PrimerApellido  string `json:"primerApellido"`
	SegundoApellido string `json:"segundoApellido"`
	Nombre          string `json:"nombre"`
	Telefono        string `json:"telefono"`
	Correo          string `json:"correo"`
	Direccion       string `json:"direccion"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID              int64     `json:"id"`
	PrimerApellido  string    `json:"primerApellido"`
	SegundoApellido string    `json:"segundoApellido"`
	Nombre          string    `json:"nombre"`
	NombreCompleto  string    `json:"nombreCompleto"`
	Telefono        string    `json:"telefono"`
	Correo          string    `json:"correo"`
	Direccion       string    `json:"direccion"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SupplierRequest body para crear/actualizar proveedores.
type SupplierRequest struct {
	RazonSocial        string `json:"razonSocial"`
	Identificacion     string `json:"identificacion"`
	TipoIdentificacion string `json:"tipoIdentificacion"`
	NombreContacto     string `json:"nombreContacto"`
	Telefono           string `json:"telefono"`
	Correo             string `json:"correo"`
	Direccion          string `json:"direccion"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID                 int64     `json:"id"`
	RazonSocial        string    `json:"razonSocial"`
	Identificacion     string    `json:"identificacion"`
	TipoIdentificacion string    `json:"tipoIdentificacion"`
	NombreContacto     string    `json:"nombreContacto"`
	Telefono           string    `json:"telefono"`
	Correo             string    `json:"correo"`
	Direccion          string    `json:"direccion"`
	CreatedAt          time.Time `json:"createdAt"`
}
