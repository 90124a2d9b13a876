// Package docs registra la especificación OpenAPI de la API para swag y el middleware de Swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Iniciar sesión",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/inventory": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["inventory"],
                "summary": "Listar inventario",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.InventoryItemResponse"}}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["inventory"],
                "summary": "Crear producto",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateProductRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CreatedResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/inventory/movements": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["inventory"],
                "summary": "Registrar movimiento manual",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterMovementRequest"}}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/sales": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["sales"],
                "summary": "Listar ventas",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["sales"],
                "summary": "Registrar venta",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateSaleRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CreateSaleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/sales/{id}": {
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["sales"],
                "summary": "Anular venta",
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "error": {"type": "string"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "dto.CreatedResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "id": {"type": "integer"}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "properties": {"usuario": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "usuario": {"type": "string"}, "role": {"type": "string"}}
        },
        "dto.InventoryItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "codigo": {"type": "string"}, "nombre": {"type": "string"},
                "talla": {"type": "string"}, "color": {"type": "string"}, "tipo": {"type": "string"},
                "cantidad": {"type": "integer"}, "precio": {"type": "string"},
                "stockMinimo": {"type": "integer"}, "stockMaximo": {"type": "integer"}, "estado": {"type": "string"}
            }
        },
        "dto.CreateProductRequest": {
            "type": "object",
            "properties": {
                "codigo": {"type": "string"}, "nombre": {"type": "string"},
                "idTipo": {"type": "integer"}, "idTalla": {"type": "integer"}, "color": {"type": "string"},
                "precio": {"type": "string"}, "cantidad": {"type": "integer"},
                "stockMinimo": {"type": "integer"}, "stockMaximo": {"type": "integer"}
            }
        },
        "dto.RegisterMovementRequest": {
            "type": "object",
            "properties": {
                "idProducto": {"type": "integer"}, "tipo": {"type": "string", "enum": ["ENTRY", "EXIT", "ADJUSTMENT"]},
                "cantidad": {"type": "integer"}, "motivo": {"type": "string"}
            }
        },
        "dto.SaleItemRequest": {
            "type": "object",
            "properties": {"idProducto": {"type": "integer"}, "cantidad": {"type": "integer"}, "precioUnitario": {"type": "string"}}
        },
        "dto.CreateSaleRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.SaleItemRequest"}},
                "vendedor": {"type": "string"},
                "idCliente": {"type": "integer"}
            }
        },
        "dto.CreateSaleResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "id": {"type": "integer"}, "itemsCount": {"type": "integer"}, "total": {"type": "string"}}
        }
    }
}`

// SwaggerInfo metadatos exportados de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GIOR API",
	Description:      "Ventas, inventario y compras de la tienda con stock consistente.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
