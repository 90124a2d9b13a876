package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gior-api/internal/domain"
)

func TestEntityError_MensajeNombraElProducto(t *testing.T) {
	err := domain.NewEntityError(domain.ErrInsufficientStock, 42)

	assert.Equal(t, "Stock insuficiente para producto ID 42", err.Error())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)
}

func TestEntityError_ProductoNoEncontrado(t *testing.T) {
	var err error = domain.NewEntityError(domain.ErrProductNotFound, 7)

	assert.Equal(t, "Producto ID 7 no encontrado en stock", err.Error())

	var entityErr *domain.EntityError
	assert.True(t, errors.As(err, &entityErr))
	assert.Equal(t, int64(7), entityErr.ID)
}

func TestStorageFailure_EnvuelveErroresDeInfraestructura(t *testing.T) {
	raw := errors.New("connection reset by peer")
	err := domain.StorageFailure(raw)

	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.ErrorIs(t, err, raw)
}

func TestStorageFailure_NoEnvuelveErroresDeDominio(t *testing.T) {
	orig := fmt.Errorf("venta: %w", domain.NewEntityError(domain.ErrSaleNotFound, 3))
	err := domain.StorageFailure(orig)

	assert.Same(t, orig, err)
	assert.NotErrorIs(t, err, domain.ErrStorageFailure)
	assert.Nil(t, domain.StorageFailure(nil))
}
