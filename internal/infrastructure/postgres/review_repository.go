package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
// La calificación se guarda como NUMERIC y viaja como shopspring/decimal
// gracias al codec registrado en el pool.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

// NewReviewRepository construye el adaptador de persistencia para reseñas.
func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

// Create persiste una reseña ya validada.
func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (local_id, resena_id, pedido_id, cocinero_dni, despachador_dni,
			repartidor_dni, resena, calificacion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		review.LocalID, review.ResenaID, review.PedidoID,
		review.CocineroDNI, review.DespachadorDNI, review.RepartidorDNI,
		review.Resena, review.Calificacion, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// ListByLocal lista las reseñas de un local (query por partición).
func (r *ReviewRepo) ListByLocal(localID string) ([]*entity.Review, error) {
	query := `
		SELECT local_id, resena_id, pedido_id, cocinero_dni, despachador_dni,
			repartidor_dni, resena, calificacion, created_at
		FROM reviews WHERE local_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, localID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.LocalID, &rv.ResenaID, &rv.PedidoID, &rv.CocineroDNI,
			&rv.DespachadorDNI, &rv.RepartidorDNI, &rv.Resena, &rv.Calificacion, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}

// Delete elimina una reseña por clave compuesta.
func (r *ReviewRepo) Delete(localID, resenaID string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM reviews WHERE local_id = $1 AND resena_id = $2`, localID, resenaID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
