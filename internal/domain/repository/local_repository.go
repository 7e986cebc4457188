package repository

import "github.com/tu-usuario/chinawok-ops/internal/domain/entity"

// LocalRepository puerto de solo lectura sobre locales: este servicio solo
// verifica existencia, el alta pertenece al subsistema administrativo.
type LocalRepository interface {
	GetByID(localID string) (*entity.Local, error)
}
