package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
)

// CatalogUseCase tipos de producto y tallas.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (uc *CatalogUseCase) ListProductTypes(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	list, err := uc.repo.ListProductTypes(ctx)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	out := make([]dto.CatalogItemResponse, 0, len(list))
	for _, pt := range list {
		out = append(out, dto.CatalogItemResponse{ID: pt.ID, Nombre: pt.Name})
	}
	return out, nil
}

func (uc *CatalogUseCase) CreateProductType(ctx context.Context, in dto.CatalogItemRequest) (*dto.CatalogItemResponse, error) {
	name := strings.TrimSpace(in.Nombre)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	pt := &entity.ProductType{Name: name}
	if err := uc.repo.CreateProductType(ctx, pt); err != nil {
		return nil, domain.StorageFailure(err)
	}
	return &dto.CatalogItemResponse{ID: pt.ID, Nombre: pt.Name}, nil
}

func (uc *CatalogUseCase) ListSizes(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	list, err := uc.repo.ListSizes(ctx)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	out := make([]dto.CatalogItemResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.CatalogItemResponse{ID: s.ID, Nombre: s.Name})
	}
	return out, nil
}

func (uc *CatalogUseCase) CreateSize(ctx context.Context, in dto.CatalogItemRequest) (*dto.CatalogItemResponse, error) {
	name := strings.ToUpper(strings.TrimSpace(in.Nombre))
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	size := &entity.Size{Name: name}
	if err := uc.repo.CreateSize(ctx, size); err != nil {
		return nil, domain.StorageFailure(err)
	}
	return &dto.CatalogItemResponse{ID: size.ID, Nombre: size.Name}, nil
}
