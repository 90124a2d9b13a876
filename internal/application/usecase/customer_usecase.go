package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un nuevo cliente. Nombre y primer apellido son obligatorios.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	in = trimCustomer(in)
	if in.Nombre == "" || in.PrimerApellido == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		FirstSurname:  in.PrimerApellido,
		SecondSurname: in.SegundoApellido,
		Name:          in.Nombre,
		Phone:         in.Telefono,
		Email:         in.Correo,
		Address:       in.Direccion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, domain.StorageFailure(err)
	}
	return toCustomerResponse(customer), nil
}

// Update reemplaza los datos del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	in = trimCustomer(in)
	if in.Nombre == "" || in.PrimerApellido == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	if customer == nil {
		return nil, domain.NewEntityError(domain.ErrCustomerNotFound, id)
	}
	customer.FirstSurname = in.PrimerApellido
	customer.SecondSurname = in.SegundoApellido
	customer.Name = in.Nombre
	customer.Phone = in.Telefono
	customer.Email = in.Correo
	customer.Address = in.Direccion
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, domain.StorageFailure(err)
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	if customer == nil {
		return nil, domain.NewEntityError(domain.ErrCustomerNotFound, id)
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes.
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func trimCustomer(in dto.CustomerRequest) dto.CustomerRequest {
	in.PrimerApellido = strings.TrimSpace(in.PrimerApellido)
	in.SegundoApellido = strings.TrimSpace(in.SegundoApellido)
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Telefono = strings.TrimSpace(in.Telefono)
	in.Correo = strings.ToLower(strings.TrimSpace(in.Correo))
	in.Direccion = strings.TrimSpace(in.Direccion)
	return in
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:              c.ID,
		PrimerApellido:  c.FirstSurname,
		SegundoApellido: c.SecondSurname,
		Nombre:          c.Name,
		NombreCompleto:  c.FullName(),
		Telefono:        c.Phone,
		Correo:          c.Email,
		Direccion:       c.Address,
		CreatedAt:       c.CreatedAt,
	}
}
