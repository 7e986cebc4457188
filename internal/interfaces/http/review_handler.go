package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/chinawok-ops/internal/application/dto"
	"github.com/tu-usuario/chinawok-ops/internal/application/reviews"
	"github.com/tu-usuario/chinawok-ops/internal/domain"
	"github.com/tu-usuario/chinawok-ops/internal/domain/review"
)

// ReviewHandler maneja registro, consulta y reporte de reseñas.
type ReviewHandler struct {
	uc     *reviews.ReviewUseCase
	report *reviews.ReportUseCase
}

// NewReviewHandler construye el handler.
func NewReviewHandler(uc *reviews.ReviewUseCase, report *reviews.ReportUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc, report: report}
}

// Create godoc
// @Summary      Registrar una reseña de pedido
// @Tags         resenas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReviewRequest  true  "local_id, pedido_id, calificacion, resena?"
// @Success      201   {object}  dto.CreateReviewResponse
// @Failure      400   {object}  dto.ReviewRejectionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/resenas [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		var rej *review.RejectionError
		if errors.As(err, &rej) {
			// Rechazo local de validación: nunca se persistió nada parcial.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ReviewRejectionResponse{
				Code:        "NOT_ELIGIBLE",
				Message:     rej.Reason,
				Faltantes:   rej.Missing,
				Encontrados: rej.Resolved,
			})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/locales/:local_id/resenas
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByLocal(c.Params("local_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete DELETE /api/locales/:local_id/resenas/:resena_id
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("local_id"), c.Params("resena_id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Reseña eliminada"})
}

// Report GET /api/locales/:local_id/resenas/reporte.pdf
func (h *ReviewHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.report.DownloadLocalReport(c.Context(), c.Params("local_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Local no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
