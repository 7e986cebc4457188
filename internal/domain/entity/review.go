package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review reseña de un pedido. Solo se construye después de que el validador de
// elegibilidad resolvió los tres empleados del historial y verificó el rango
// de la calificación; nunca se persiste una reseña parcial.
type Review struct {
	LocalID        string
	ResenaID       string // UUID v4, generado al registrar
	PedidoID       string
	CocineroDNI    string
	DespachadorDNI string
	RepartidorDNI  string
	Resena         string          // comentario, puede ser vacío
	Calificacion   decimal.Decimal // [0, 5], decimal exacto
	CreatedAt      time.Time
}
