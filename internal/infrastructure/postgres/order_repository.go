package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de solo lectura del puerto OrderRepository.
// El historial de estados vive en una columna JSONB append-only que escribe
// el subsistema de pedidos; aquí solo se decodifica.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de lectura de pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetByLocalAndPedido obtiene un pedido con su historial. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByLocalAndPedido(localID, pedidoID string) (*entity.Order, error) {
	query := `
		SELECT local_id, pedido_id, status_history, created_at
		FROM orders WHERE local_id = $1 AND pedido_id = $2`
	var (
		o       entity.Order
		history []byte
	)
	err := r.pool.QueryRow(context.Background(), query, localID, pedidoID).Scan(
		&o.LocalID, &o.PedidoID, &history, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &o.StatusHistory); err != nil {
			return nil, fmt.Errorf("decode status_history: %w", err)
		}
	}
	return &o, nil
}
