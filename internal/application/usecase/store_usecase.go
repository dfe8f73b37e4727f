package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una nueva tienda.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	store := &entity.Store{
		Name:      in.Name,
		Address:   in.Address,
		Email:     strings.ToLower(in.Email),
		LegalInfo: in.LegalInfo,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(ctx context.Context, id int64) (*dto.StoreResponse, error) {
	store, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// List lista tiendas con paginación.
func (uc *StoreUseCase) List(ctx context.Context, limit, offset int) ([]*dto.StoreResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toStoreResponse(s))
	}
	return out, nil
}

// Update actualiza una tienda.
func (uc *StoreUseCase) Update(ctx context.Context, id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	store, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	if in.Email != nil {
		store.Email = strings.ToLower(*in.Email)
	}
	if in.LegalInfo != nil {
		store.LegalInfo = *in.LegalInfo
	}
	if err := uc.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete elimina una tienda sin facturas.
func (uc *StoreUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *StoreUseCase) get(ctx context.Context, id int64) (*entity.Store, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.StoreNotFound(id)
	}
	return store, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Email:     s.Email,
		LegalInfo: s.LegalInfo,
		CreatedAt: s.CreatedAt,
	}
}
