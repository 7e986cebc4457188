package repository

import "github.com/tu-usuario/chinawok-ops/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La clave del registro es el correo normalizado.
type UserRepository interface {
	Create(user *entity.User) error
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Delete(email string) error
}
