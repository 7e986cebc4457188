package usecase

import (
	"fmt"

	"github.com/tu-usuario/chinawok-ops/internal/application/dto"
	"github.com/tu-usuario/chinawok-ops/internal/domain"
	"github.com/tu-usuario/chinawok-ops/internal/domain/access"
	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/repository"
)

// UserUseCase operaciones sobre cuentas gobernadas por la política de access.
// El caso de uso consulta el store solo cuando la decisión lo exige: el caso
// "sí mismo" y la denegación a Clientes sobre terceros se resuelven sin lookup.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Get devuelve la información de una cuenta. Con targetEmail vacío devuelve la
// del propio actor. Para no filtrar existencia, un caller sin privilegio sobre
// terceros recibe el mismo ErrForbidden exista o no el objetivo; solo Admin y
// el propio usuario distinguen el 404.
func (uc *UserUseCase) Get(actor access.Identity, targetEmail string) (*dto.UserResponse, error) {
	target := access.NormalizeEmail(targetEmail)
	if target == "" {
		target = access.NormalizeEmail(actor.Email)
	}
	self := access.NormalizeEmail(actor.Email) == target

	if !self && actor.Role == access.RoleCliente {
		return nil, fmt.Errorf("%w: solo puedes ver tu propia información", domain.ErrForbidden)
	}

	user, err := uc.repo.GetByEmail(target)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if self || actor.Role == access.RoleAdmin {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: Gerente solo puede ver información de Clientes", domain.ErrForbidden)
	}

	d := access.Decide(actor, target, access.ParseRole(user.Role), access.OpRead)
	if !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}
	return userToResponse(user), nil
}

// List enumera todas las cuentas. Operación sin objetivo único: solo Admin,
// sin excepción de "sí mismo".
func (uc *UserUseCase) List(actor access.Identity) ([]dto.UserResponse, error) {
	if d := access.Decide(actor, "", access.RoleCliente, access.OpList); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *userToResponse(u))
	}
	return out, nil
}

// Delete elimina una cuenta. Cualquier usuario puede eliminarse a sí mismo;
// sobre terceros aplica la misma política (y la misma uniformidad 403/404) que Get.
func (uc *UserUseCase) Delete(actor access.Identity, targetEmail string) error {
	target := access.NormalizeEmail(targetEmail)
	if target == "" {
		return fmt.Errorf("%w: correo es obligatorio", domain.ErrInvalidInput)
	}
	self := access.NormalizeEmail(actor.Email) == target

	if !self && actor.Role == access.RoleCliente {
		return fmt.Errorf("%w: no tienes permiso para eliminar este usuario", domain.ErrForbidden)
	}

	user, err := uc.repo.GetByEmail(target)
	if err != nil {
		return err
	}
	if user == nil {
		if self || actor.Role == access.RoleAdmin {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("%w: no tienes permiso para eliminar este usuario", domain.ErrForbidden)
	}

	d := access.Decide(actor, target, access.ParseRole(user.Role), access.OpDelete)
	if !d.Allowed {
		return fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}
	return uc.repo.Delete(target)
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Correo:    u.Email,
		Nombre:    u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
