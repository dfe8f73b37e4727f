package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ordenes-api/internal/domain/entity"
	"github.com/jhoicas/ordenes-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador (pool o tx).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, nombre, direccion, correo, informacion_legal, fecha_creacion`

func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	query := `
		INSERT INTO tiendas (nombre, direccion, correo, informacion_legal, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, s.Name, s.Address, s.Email, s.LegalInfo, s.CreatedAt).Scan(&s.ID)
	return dbError("insert tienda", err)
}

func (r *StoreRepo) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM tiendas WHERE id = $1`
	s, err := scanStore(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get tienda", err)
	}
	return s, nil
}

func (r *StoreRepo) List(ctx context.Context, limit, offset int) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM tiendas ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, dbError("list tiendas", err)
	}
	defer rows.Close()

	var list []*entity.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, dbError("scan tienda", err)
		}
		list = append(list, s)
	}
	return list, dbError("list tiendas", rows.Err())
}

func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	query := `
		UPDATE tiendas SET nombre = $2, direccion = $3, correo = $4, informacion_legal = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Address, s.Email, s.LegalInfo)
	return dbError("update tienda", err)
}

func (r *StoreRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM tiendas WHERE id = $1`, id)
	return dbError("delete tienda", err)
}

func scanStore(row pgx.Row) (*entity.Store, error) {
	var s entity.Store
	if err := row.Scan(&s.ID, &s.Name, &s.Address, &s.Email, &s.LegalInfo, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
