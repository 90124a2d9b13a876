package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Motor de ventas y libro de stock.
	ErrMissingCustomer   = errors.New("Cliente es requerido")
	ErrEmptyCart         = errors.New("La venta debe contener al menos un producto")
	ErrInvalidLineItem   = errors.New("línea de venta inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser un entero positivo")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrSaleNotFound      = errors.New("Venta no encontrada")
	ErrCustomerNotFound  = errors.New("cliente no encontrado")
	ErrSupplierNotFound  = errors.New("proveedor no encontrado")
	ErrProductInUse      = errors.New("el producto tiene ventas o movimientos asociados")
	ErrStorageFailure    = errors.New("falla de almacenamiento")
)

// taxonomy errores que cruzan la frontera de la transacción sin envolver.
var taxonomy = []error{
	ErrNotFound, ErrInvalidInput, ErrDuplicate, ErrUnauthorized, ErrForbidden, ErrConflict,
	ErrMissingCustomer, ErrEmptyCart, ErrInvalidLineItem, ErrInvalidQuantity,
	ErrProductNotFound, ErrInsufficientStock, ErrSaleNotFound,
	ErrCustomerNotFound, ErrSupplierNotFound, ErrProductInUse, ErrStorageFailure,
}

// EntityError error de dominio asociado a una entidad concreta (producto, venta, cliente, línea).
// errors.Is(err, Kind) sigue funcionando gracias a Unwrap.
type EntityError struct {
	Kind error
	ID   int64
}

// NewEntityError construye un EntityError para el tipo y el ID indicados.
func NewEntityError(kind error, id int64) *EntityError {
	return &EntityError{Kind: kind, ID: id}
}

func (e *EntityError) Error() string {
	switch e.Kind {
	case ErrProductNotFound:
		return fmt.Sprintf("Producto ID %d no encontrado en stock", e.ID)
	case ErrInsufficientStock:
		return fmt.Sprintf("Stock insuficiente para producto ID %d", e.ID)
	case ErrSaleNotFound:
		return fmt.Sprintf("Venta ID %d no encontrada", e.ID)
	case ErrCustomerNotFound:
		return fmt.Sprintf("Cliente ID %d no encontrado", e.ID)
	case ErrSupplierNotFound:
		return fmt.Sprintf("Proveedor ID %d no encontrado", e.ID)
	case ErrInvalidLineItem:
		return fmt.Sprintf("Línea %d inválida: la cantidad debe ser mayor a 0 y el precio no puede ser negativo", e.ID)
	case ErrProductInUse:
		return fmt.Sprintf("Producto ID %d tiene ventas o movimientos asociados", e.ID)
	default:
		return fmt.Sprintf("%s (ID %d)", e.Kind.Error(), e.ID)
	}
}

func (e *EntityError) Unwrap() error { return e.Kind }

// IsDomainError indica si err pertenece a la taxonomía de errores del dominio.
func IsDomainError(err error) bool {
	for _, kind := range taxonomy {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// StorageFailure envuelve errores de infraestructura como ErrStorageFailure.
// Los errores del dominio se devuelven sin cambios.
func StorageFailure(err error) error {
	if err == nil || IsDomainError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageFailure, err)
}
