package reviews

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/chinawok-ops/internal/application/dto"
	"github.com/tu-usuario/chinawok-ops/internal/domain"
	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/repository"
	"github.com/tu-usuario/chinawok-ops/internal/domain/review"
)

// ReviewUseCase registro y consulta de reseñas. El caso de uso hace las
// verificaciones de existencia (local, pedido) y delega la elegibilidad al
// validador puro; solo una solicitud elegible llega a persistirse.
//
// No hay restricción de unicidad por pedido: un mismo pedido admite varias
// reseñas y el resena_id es un UUID aleatorio.
type ReviewUseCase struct {
	localRepo  repository.LocalRepository
	orderRepo  repository.OrderRepository
	reviewRepo repository.ReviewRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(localRepo repository.LocalRepository, orderRepo repository.OrderRepository, reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{localRepo: localRepo, orderRepo: orderRepo, reviewRepo: reviewRepo}
}

// Register valida y persiste una reseña.
//
// Errores:
//   - domain.ErrNotFound (envuelto) si el local o el pedido no existen.
//   - *review.RejectionError si la solicitud no es elegible (campos,
//     historial incompleto, calificación fuera de rango).
func (uc *ReviewUseCase) Register(in dto.CreateReviewRequest) (*dto.CreateReviewResponse, error) {
	localID := strings.TrimSpace(in.LocalID)
	pedidoID := strings.TrimSpace(in.PedidoID)

	sub := review.Submission{
		LocalID:      localID,
		PedidoID:     pedidoID,
		Calificacion: in.Calificacion.String(),
		Resena:       in.Resena,
	}

	// Campos requeridos primero: una solicitud incompleta no gasta lookups.
	// Validate chequea los campos antes de tocar el pedido, así que aquí
	// puede recibir nil.
	if localID == "" || pedidoID == "" || sub.Calificacion == "" {
		_, err := review.Validate(nil, sub)
		return nil, err
	}

	local, err := uc.localRepo.GetByID(localID)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, fmt.Errorf("%w: local %s no encontrado", domain.ErrNotFound, localID)
	}

	order, err := uc.orderRepo.GetByLocalAndPedido(localID, pedidoID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: pedido %s no encontrado", domain.ErrNotFound, pedidoID)
	}

	elig, err := review.Validate(order, sub)
	if err != nil {
		return nil, err
	}

	r := &entity.Review{
		LocalID:        localID,
		ResenaID:       uuid.New().String(),
		PedidoID:       pedidoID,
		CocineroDNI:    elig.CocineroDNI,
		DespachadorDNI: elig.DespachadorDNI,
		RepartidorDNI:  elig.RepartidorDNI,
		Resena:         in.Resena,
		Calificacion:   elig.Calificacion,
		CreatedAt:      time.Now(),
	}
	if err := uc.reviewRepo.Create(r); err != nil {
		return nil, err
	}
	return &dto.CreateReviewResponse{
		Message: "Reseña registrada exitosamente",
		Resena:  *reviewToResponse(r),
	}, nil
}

// ListByLocal devuelve las reseñas de un local con su total.
func (uc *ReviewUseCase) ListByLocal(localID string) (*dto.ReviewListResponse, error) {
	list, err := uc.reviewRepo.ListByLocal(localID)
	if err != nil {
		return nil, err
	}
	out := &dto.ReviewListResponse{
		LocalID:      localID,
		TotalResenas: len(list),
		Resenas:      make([]dto.ReviewResponse, 0, len(list)),
	}
	for _, r := range list {
		out.Resenas = append(out.Resenas, *reviewToResponse(r))
	}
	return out, nil
}

// Delete elimina una reseña por clave compuesta.
func (uc *ReviewUseCase) Delete(localID, resenaID string) error {
	return uc.reviewRepo.Delete(localID, resenaID)
}

func reviewToResponse(r *entity.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		LocalID:        r.LocalID,
		ResenaID:       r.ResenaID,
		PedidoID:       r.PedidoID,
		CocineroDNI:    r.CocineroDNI,
		DespachadorDNI: r.DespachadorDNI,
		RepartidorDNI:  r.RepartidorDNI,
		Resena:         r.Resena,
		Calificacion:   r.Calificacion,
		CreatedAt:      r.CreatedAt,
	}
}
