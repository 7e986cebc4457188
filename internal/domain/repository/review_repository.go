package repository

import "github.com/tu-usuario/chinawok-ops/internal/domain/entity"

// ReviewRepository puerto de persistencia para Review, con clave compuesta
// (local, resena_id). No hay unicidad por pedido: un pedido admite varias reseñas.
type ReviewRepository interface {
	Create(r *entity.Review) error
	ListByLocal(localID string) ([]*entity.Review, error)
	Delete(localID, resenaID string) error
}
