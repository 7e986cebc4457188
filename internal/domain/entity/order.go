package entity

import "time"

// EmployeeRef atribución de un cambio de estado al empleado que lo realizó.
type EmployeeRef struct {
	Role string `json:"rol"`
	DNI  string `json:"dni"`
}

// StatusEvent una transición en el ciclo de vida del pedido. El historial es
// append-only aguas arriba; aquí solo se lee.
type StatusEvent struct {
	Status   string       `json:"estado"`
	Employee *EmployeeRef `json:"empleado,omitempty"`
}

// Order pedido de un local. Pertenece al subsistema de pedidos; este servicio
// lo consume para validar reseñas contra su historial de estados.
type Order struct {
	LocalID       string
	PedidoID      string
	StatusHistory []StatusEvent
	CreatedAt     time.Time
}
