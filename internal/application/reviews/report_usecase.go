package reviews

import (
	"context"
	"fmt"

	"github.com/tu-usuario/chinawok-ops/internal/domain"
	"github.com/tu-usuario/chinawok-ops/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF de reseñas de un local.
type ReportUseCase struct {
	localRepo  repository.LocalRepository
	reviewRepo repository.ReviewRepository
	generator  ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando el generador.
func NewReportUseCase(localRepo repository.LocalRepository, reviewRepo repository.ReviewRepository, generator ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{localRepo: localRepo, reviewRepo: reviewRepo, generator: generator}
}

// DownloadLocalReport recupera el local y sus reseñas y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el local no existe.
func (uc *ReportUseCase) DownloadLocalReport(ctx context.Context, localID string) (pdfBytes []byte, filename string, err error) {
	local, err := uc.localRepo.GetByID(localID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener local: %w", err)
	}
	if local == nil {
		return nil, "", domain.ErrNotFound
	}

	list, err := uc.reviewRepo.ListByLocal(localID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar reseñas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateReviewReport(ctx, local, list)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("resenas_%s.pdf", localID)
	return pdfBytes, filename, nil
}
