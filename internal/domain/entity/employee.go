package entity

import "time"

// Employee empleado de un local, identificado por (LocalID, DNI).
type Employee struct {
	LocalID   string
	DNI       string
	Name      string
	Role      string // cocinero, despachador, repartidor
	CreatedAt time.Time
}
