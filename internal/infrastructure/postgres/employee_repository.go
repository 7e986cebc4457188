package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/chinawok-ops/internal/domain"
	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create persiste un empleado.
func (r *EmployeeRepo) Create(emp *entity.Employee) error {
	query := `
		INSERT INTO employees (local_id, dni, name, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		emp.LocalID, emp.DNI, emp.Name, emp.Role, emp.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByLocalAndDNI obtiene un empleado por su clave compuesta. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByLocalAndDNI(localID, dni string) (*entity.Employee, error) {
	query := `
		SELECT local_id, dni, name, role, created_at
		FROM employees WHERE local_id = $1 AND dni = $2`
	var e entity.Employee
	err := r.pool.QueryRow(context.Background(), query, localID, dni).Scan(
		&e.LocalID, &e.DNI, &e.Name, &e.Role, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// ListByLocal lista los empleados de un local (query por partición).
func (r *EmployeeRepo) ListByLocal(localID string) ([]*entity.Employee, error) {
	query := `
		SELECT local_id, dni, name, role, created_at
		FROM employees WHERE local_id = $1 ORDER BY dni`
	rows, err := r.pool.Query(context.Background(), query, localID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.LocalID, &e.DNI, &e.Name, &e.Role, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un empleado por clave compuesta.
func (r *EmployeeRepo) Delete(localID, dni string) error {
	_, err := r.pool.Exec(context.Background(),
		`DELETE FROM employees WHERE local_id = $1 AND dni = $2`, localID, dni)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
