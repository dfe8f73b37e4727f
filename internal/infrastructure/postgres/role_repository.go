package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO roles (tipo, descripcion) VALUES ($1, $2) RETURNING id`,
		role.Type, role.Description,
	).Scan(&role.ID)
	return dbError("insert rol", err)
}

func (r *RoleRepo) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	var role entity.Role
	err := r.q.QueryRow(ctx, `SELECT id, tipo, descripcion FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Type, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get rol", err)
	}
	return &role, nil
}

func (r *RoleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Role, error) {
	rows, err := r.q.Query(ctx, `SELECT id, tipo, descripcion FROM roles ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, dbError("list roles", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Type, &role.Description); err != nil {
			return nil, dbError("scan rol", err)
		}
		list = append(list, &role)
	}
	return list, dbError("list roles", rows.Err())
}

func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) error {
	_, err := r.q.Exec(ctx, `UPDATE roles SET tipo = $2, descripcion = $3 WHERE id = $1`,
		role.ID, role.Type, role.Description)
	return dbError("update rol", err)
}

func (r *RoleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	return dbError("delete rol", err)
}
