package repository

import "github.com/tu-usuario/chinawok-ops/internal/domain/entity"

// OrderRepository puerto de solo lectura sobre pedidos (pertenecen al
// subsistema de pedidos; aquí solo se consultan para validar reseñas).
type OrderRepository interface {
	GetByLocalAndPedido(localID, pedidoID string) (*entity.Order, error)
}
