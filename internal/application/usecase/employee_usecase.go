package usecase

import (
	"fmt"
	"time"

	"github.com/tu-usuario/chinawok-ops/internal/application/dto"
	"github.com/tu-usuario/chinawok-ops/internal/domain"
	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/repository"
	"github.com/tu-usuario/chinawok-ops/internal/domain/review"
)

// EmployeeUseCase operaciones sobre empleados de un local.
type EmployeeUseCase struct {
	employeeRepo repository.EmployeeRepository
	localRepo    repository.LocalRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(employeeRepo repository.EmployeeRepository, localRepo repository.LocalRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employeeRepo: employeeRepo, localRepo: localRepo}
}

// Create registra un empleado en un local existente. El rol debe ser uno de
// los tres que participan en el ciclo del pedido.
func (uc *EmployeeUseCase) Create(localID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	switch in.Rol {
	case review.RolCocinero, review.RolDespachador, review.RolRepartidor:
	default:
		return nil, fmt.Errorf("%w: rol %q no reconocido", domain.ErrInvalidInput, in.Rol)
	}
	local, err := uc.localRepo.GetByID(localID)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, fmt.Errorf("%w: local %s", domain.ErrNotFound, localID)
	}
	emp := &entity.Employee{
		LocalID:   localID,
		DNI:       in.DNI,
		Name:      in.Nombre,
		Role:      in.Rol,
		CreatedAt: time.Now(),
	}
	if err := uc.employeeRepo.Create(emp); err != nil {
		return nil, err
	}
	return employeeToResponse(emp), nil
}

// Get obtiene un empleado por (local, dni).
func (uc *EmployeeUseCase) Get(localID, dni string) (*dto.EmployeeResponse, error) {
	emp, err := uc.employeeRepo.GetByLocalAndDNI(localID, dni)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return employeeToResponse(emp), nil
}

// ListByLocal lista los empleados de un local.
func (uc *EmployeeUseCase) ListByLocal(localID string) ([]dto.EmployeeResponse, error) {
	emps, err := uc.employeeRepo.ListByLocal(localID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, *employeeToResponse(e))
	}
	return out, nil
}

// Delete elimina un empleado. Igual que aguas arriba, borrar una clave
// inexistente no es error.
func (uc *EmployeeUseCase) Delete(localID, dni string) error {
	return uc.employeeRepo.Delete(localID, dni)
}

func employeeToResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		LocalID:   e.LocalID,
		DNI:       e.DNI,
		Nombre:    e.Name,
		Rol:       e.Role,
		CreatedAt: e.CreatedAt,
	}
}
