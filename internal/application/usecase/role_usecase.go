package usecase

import (
	"context"

	"github.com/jhoicas/ordenes-api/internal/application/dto"
	"github.com/jhoicas/ordenes-api/internal/domain"
	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

// RoleUseCase casos de uso CRUD para roles.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	role := &entity.Role{Type: in.Type, Description: in.Description}
	if err := uc.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (uc *RoleUseCase) GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	role, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

func (uc *RoleUseCase) List(ctx context.Context, limit, offset int) ([]*dto.RoleResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRoleResponse(r))
	}
	return out, nil
}

func (uc *RoleUseCase) Update(ctx context.Context, id int64, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	role, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Type != nil {
		role.Type = *in.Type
	}
	if in.Description != nil {
		role.Description = *in.Description
	}
	if err := uc.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Delete elimina un rol sin usuarios asignados.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *RoleUseCase) get(ctx context.Context, id int64) (*entity.Role, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	role, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.RoleNotFound(id)
	}
	return role, nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{ID: r.ID, Type: r.Type, Description: r.Description}
}
