package reviews_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/chinawok-ops/internal/application/dto"
	"github.com/tu-usuario/chinawok-ops/internal/application/reviews"
	"github.com/tu-usuario/chinawok-ops/internal/domain"
	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/review"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeLocalRepo struct {
	locales map[string]*entity.Local
}

func (r *fakeLocalRepo) GetByID(localID string) (*entity.Local, error) {
	return r.locales[localID], nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (r *fakeOrderRepo) GetByLocalAndPedido(localID, pedidoID string) (*entity.Order, error) {
	return r.orders[localID+"/"+pedidoID], nil
}

type fakeReviewRepo struct {
	created []*entity.Review
}

func (r *fakeReviewRepo) Create(rev *entity.Review) error {
	r.created = append(r.created, rev)
	return nil
}

func (r *fakeReviewRepo) ListByLocal(localID string) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, rev := range r.created {
		if rev.LocalID == localID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Delete(localID, resenaID string) error {
	for i, rev := range r.created {
		if rev.LocalID == localID && rev.ResenaID == resenaID {
			r.created = append(r.created[:i], r.created[i+1:]...)
			return nil
		}
	}
	return nil
}

func historialEntregado() []entity.StatusEvent {
	return []entity.StatusEvent{
		{Status: "placed"},
		{Status: "cooked", Employee: &entity.EmployeeRef{Role: "cocinero", DNI: "11111111"}},
		{Status: "dispatched", Employee: &entity.EmployeeRef{Role: "despachador", DNI: "22222222"}},
		{Status: "delivered", Employee: &entity.EmployeeRef{Role: "repartidor", DNI: "33333333"}},
	}
}

func fixture() (*reviews.ReviewUseCase, *fakeReviewRepo) {
	localRepo := &fakeLocalRepo{locales: map[string]*entity.Local{
		"L1": {LocalID: "L1", Name: "ChinaWok San Isidro"},
	}}
	orderRepo := &fakeOrderRepo{orders: map[string]*entity.Order{
		"L1/P1": {LocalID: "L1", PedidoID: "P1", StatusHistory: historialEntregado()},
		"L1/P2": {LocalID: "L1", PedidoID: "P2", StatusHistory: historialEntregado()[:2]},
	}}
	reviewRepo := &fakeReviewRepo{}
	return reviews.NewReviewUseCase(localRepo, orderRepo, reviewRepo), reviewRepo
}

func peticion(localID, pedidoID, calificacion string) dto.CreateReviewRequest {
	return dto.CreateReviewRequest{
		LocalID:      localID,
		PedidoID:     pedidoID,
		Calificacion: json.Number(calificacion),
		Resena:       "Muy buen arroz chaufa",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_PersisteConEmpleadosResueltos(t *testing.T) {
	uc, repo := fixture()

	out, err := uc.Register(peticion("L1", "P1", "4.5"))
	require.NoError(t, err)

	assert.Equal(t, "Reseña registrada exitosamente", out.Message)
	require.Len(t, repo.created, 1)

	rev := repo.created[0]
	assert.Equal(t, "L1", rev.LocalID)
	assert.Equal(t, "P1", rev.PedidoID)
	assert.Equal(t, "11111111", rev.CocineroDNI)
	assert.Equal(t, "22222222", rev.DespachadorDNI)
	assert.Equal(t, "33333333", rev.RepartidorDNI)
	assert.True(t, rev.Calificacion.Equal(decimal.RequireFromString("4.5")))

	_, err = uuid.Parse(rev.ResenaID)
	assert.NoError(t, err, "resena_id debe ser un UUID")
}

func TestRegister_PedidosRepetidosGeneranResenasDistintas(t *testing.T) {
	uc, repo := fixture()

	first, err := uc.Register(peticion("L1", "P1", "4"))
	require.NoError(t, err)
	second, err := uc.Register(peticion("L1", "P1", "2"))
	require.NoError(t, err)

	assert.Len(t, repo.created, 2)
	assert.NotEqual(t, first.Resena.ResenaID, second.Resena.ResenaID)
}

func TestRegister_LocalInexistente(t *testing.T) {
	uc, repo := fixture()

	_, err := uc.Register(peticion("L9", "P1", "4"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.created)
}

func TestRegister_PedidoInexistente(t *testing.T) {
	uc, repo := fixture()

	_, err := uc.Register(peticion("L1", "P9", "4"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.created)
}

func TestRegister_HistorialIncompletoNoPersiste(t *testing.T) {
	uc, repo := fixture()

	// P2 solo llegó hasta cooked: faltan despachador y repartidor.
	_, err := uc.Register(peticion("L1", "P2", "4"))

	var rej *review.RejectionError
	require.ErrorAs(t, err, &rej)
	assert.ElementsMatch(t, []string{review.RolDespachador, review.RolRepartidor}, rej.Missing)
	assert.Empty(t, repo.created, "un rechazo no debe persistir nada")
}

func TestRegister_CamposFaltantesSinLookups(t *testing.T) {
	uc, repo := fixture()

	cases := []dto.CreateReviewRequest{
		{PedidoID: "P1", Calificacion: json.Number("4")},
		{LocalID: "L1", Calificacion: json.Number("4")},
		{LocalID: "L1", PedidoID: "P1"},
	}
	for _, in := range cases {
		_, err := uc.Register(in)
		var rej *review.RejectionError
		assert.ErrorAs(t, err, &rej)
	}
	assert.Empty(t, repo.created)
}

func TestRegister_CalificacionFueraDeRango(t *testing.T) {
	uc, repo := fixture()

	for _, c := range []string{"-0.01", "5.01"} {
		_, err := uc.Register(peticion("L1", "P1", c))
		var rej *review.RejectionError
		assert.ErrorAs(t, err, &rej, "calificacion=%s", c)
	}
	assert.Empty(t, repo.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListByLocal / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestListByLocal_TotalYContenido(t *testing.T) {
	uc, _ := fixture()

	_, err := uc.Register(peticion("L1", "P1", "5"))
	require.NoError(t, err)
	_, err = uc.Register(peticion("L1", "P1", "3"))
	require.NoError(t, err)

	out, err := uc.ListByLocal("L1")
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalResenas)
	assert.Len(t, out.Resenas, 2)

	vacio, err := uc.ListByLocal("L9")
	require.NoError(t, err)
	assert.Zero(t, vacio.TotalResenas)
}

func TestDelete_EliminaPorClaveCompuesta(t *testing.T) {
	uc, repo := fixture()

	out, err := uc.Register(peticion("L1", "P1", "5"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete("L1", out.Resena.ResenaID))
	assert.Empty(t, repo.created)

	// Eliminar una reseña inexistente no es error.
	assert.NoError(t, uc.Delete("L1", "no-existe"))
}
