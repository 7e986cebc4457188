package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateReviewRequest solicitud de registro de reseña. La calificación llega
// como json.Number y se entrega cruda al validador de elegibilidad, que la
// parsea como decimal exacto (el chequeo 0/5 no debe pasar por float64).
type CreateReviewRequest struct {
	LocalID      string      `json:"local_id" validate:"required"`
	PedidoID     string      `json:"pedido_id" validate:"required"`
	Calificacion json.Number `json:"calificacion" validate:"required"`
	Resena       string      `json:"resena" validate:"omitempty,max=2000"`
}

// ReviewResponse salida de una reseña registrada.
type ReviewResponse struct {
	LocalID        string          `json:"local_id"`
	ResenaID       string          `json:"resena_id"`
	PedidoID       string          `json:"pedido_id"`
	CocineroDNI    string          `json:"cocinero_dni"`
	DespachadorDNI string          `json:"despachador_dni"`
	RepartidorDNI  string          `json:"repartidor_dni"`
	Resena         string          `json:"resena"`
	Calificacion   decimal.Decimal `json:"calificacion"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CreateReviewResponse confirmación de registro.
type CreateReviewResponse struct {
	Message string         `json:"message"`
	Resena  ReviewResponse `json:"resena"`
}

// ReviewListResponse reseñas de un local con su total.
type ReviewListResponse struct {
	LocalID      string           `json:"local_id"`
	TotalResenas int              `json:"total_resenas"`
	Resenas      []ReviewResponse `json:"resenas"`
}

// ReviewRejectionResponse rechazo por historial incompleto: indica qué roles
// se resolvieron y cuáles faltan, sin persistir nada parcial.
type ReviewRejectionResponse struct {
	Code        string            `json:"code"`
	Message     string            `json:"message"`
	Faltantes   []string          `json:"faltantes,omitempty"`
	Encontrados map[string]string `json:"encontrados,omitempty"`
}
