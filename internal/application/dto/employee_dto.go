package dto

import "time"

// CreateEmployeeRequest alta de un empleado en un local.
type CreateEmployeeRequest struct {
	DNI    string `json:"dni" validate:"required"`
	Nombre string `json:"nombre" validate:"required,min=1,max=200"`
	Rol    string `json:"rol" validate:"required,oneof=cocinero despachador repartidor"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	LocalID   string    `json:"local_id"`
	DNI       string    `json:"dni"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}
