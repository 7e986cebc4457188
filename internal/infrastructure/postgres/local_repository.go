package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/repository"
)

var _ repository.LocalRepository = (*LocalRepo)(nil)

// LocalRepo implementación de solo lectura del puerto LocalRepository.
type LocalRepo struct {
	pool *pgxpool.Pool
}

// NewLocalRepository construye el adaptador de lectura de locales.
func NewLocalRepository(pool *pgxpool.Pool) *LocalRepo {
	return &LocalRepo{pool: pool}
}

// GetByID obtiene un local por su ID. Devuelve (nil, nil) si no existe.
func (r *LocalRepo) GetByID(localID string) (*entity.Local, error) {
	query := `SELECT local_id, name, address FROM locales WHERE local_id = $1`
	var l entity.Local
	err := r.pool.QueryRow(context.Background(), query, localID).Scan(
		&l.LocalID, &l.Name, &l.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get local: %w", err)
	}
	return &l, nil
}
