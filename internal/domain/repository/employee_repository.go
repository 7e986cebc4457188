package repository

import "github.com/tu-usuario/chinawok-ops/internal/domain/entity"

// EmployeeRepository puerto de persistencia para Employee, con clave compuesta (local, dni).
type EmployeeRepository interface {
	Create(emp *entity.Employee) error
	GetByLocalAndDNI(localID, dni string) (*entity.Employee, error)
	ListByLocal(localID string) ([]*entity.Employee, error)
	Delete(localID, dni string) error
}
