package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
	"github.com/jhoicas/gior-api/pkg/taxid"
)

// SupplierUseCase casos de uso para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. La identificación es única (ErrDuplicate).
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	in = trimSupplier(in)
	if err := validateSupplier(in); err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.Supplier{
		BusinessName: in.RazonSocial,
		TaxID:        in.Identificacion,
		TaxIDType:    in.TipoIdentificacion,
		ContactName:  in.NombreContacto,
		Phone:        in.Telefono,
		Email:        in.Correo,
		Address:      in.Direccion,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, domain.StorageFailure(err)
	}
	return toSupplierResponse(s), nil
}

// Update reemplaza los datos del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	in = trimSupplier(in)
	if err := validateSupplier(in); err != nil {
		return nil, err
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	if s == nil {
		return nil, domain.NewEntityError(domain.ErrSupplierNotFound, id)
	}
	s.BusinessName = in.RazonSocial
	s.TaxID = in.Identificacion
	s.TaxIDType = in.TipoIdentificacion
	s.ContactName = in.NombreContacto
	s.Phone = in.Telefono
	s.Email = in.Correo
	s.Address = in.Direccion
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, domain.StorageFailure(err)
	}
	return toSupplierResponse(s), nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	if s == nil {
		return nil, domain.NewEntityError(domain.ErrSupplierNotFound, id)
	}
	return toSupplierResponse(s), nil
}

// List lista proveedores.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.SupplierResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// validateSupplier exige razón social e identificación; un NIT debe traer dígito de verificación válido.
func validateSupplier(in dto.SupplierRequest) error {
	if in.RazonSocial == "" || in.Identificacion == "" {
		return domain.ErrInvalidInput
	}
	if in.TipoIdentificacion == taxid.TypeNIT {
		if err := taxid.ValidateNIT(in.Identificacion); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
	}
	return nil
}

func trimSupplier(in dto.SupplierRequest) dto.SupplierRequest {
	in.RazonSocial = strings.TrimSpace(in.RazonSocial)
	in.Identificacion = strings.TrimSpace(in.Identificacion)
	in.TipoIdentificacion = strings.ToUpper(strings.TrimSpace(in.TipoIdentificacion))
	in.NombreContacto = strings.TrimSpace(in.NombreContacto)
	in.Telefono = strings.TrimSpace(in.Telefono)
	in.Correo = strings.ToLower(strings.TrimSpace(in.Correo))
	in.Direccion = strings.TrimSpace(in.Direccion)
	return in
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:                 s.ID,
		RazonSocial:        s.BusinessName,
		Identificacion:     s.TaxID,
		TipoIdentificacion: s.TaxIDType,
		NombreContacto:     s.ContactName,
		Telefono:           s.Phone,
		Correo:             s.Email,
		Direccion:          s.Address,
		CreatedAt:          s.CreatedAt,
	}
}
