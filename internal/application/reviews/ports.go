package reviews

import (
	"context"

	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
)

// ReportPDFGenerator genera el reporte PDF de reseñas de un local.
// Lo implementa internal/infrastructure/pdf.
type ReportPDFGenerator interface {
	GenerateReviewReport(ctx context.Context, local *entity.Local, reviews []*entity.Review) ([]byte, error)
}
