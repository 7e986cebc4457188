package review_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
	"github.com/tu-usuario/chinawok-ops/internal/domain/review"
)

// historialCompleto devuelve el historial del escenario de referencia:
// placed → cooked(E1) → dispatched(E2) → delivered(E3).
func historialCompleto() []entity.StatusEvent {
	return []entity.StatusEvent{
		{Status: "placed"},
		{Status: "cooked", Employee: &entity.EmployeeRef{Role: "Cocinero", DNI: "E1"}},
		{Status: "dispatched", Employee: &entity.EmployeeRef{Role: "Despachador", DNI: "E2"}},
		{Status: "delivered", Employee: &entity.EmployeeRef{Role: "Repartidor", DNI: "E3"}},
	}
}

func pedidoCon(history []entity.StatusEvent) *entity.Order {
	return &entity.Order{LocalID: "L1", PedidoID: "P1", StatusHistory: history}
}

func solicitud(calificacion string) review.Submission {
	return review.Submission{LocalID: "L1", PedidoID: "P1", Calificacion: calificacion}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de empleados del historial
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_HistorialCompleto_ResuelveTresRoles(t *testing.T) {
	elig, err := review.Validate(pedidoCon(historialCompleto()), solicitud("4.5"))
	require.NoError(t, err)

	assert.Equal(t, "E1", elig.CocineroDNI)
	assert.Equal(t, "E2", elig.DespachadorDNI)
	assert.Equal(t, "E3", elig.RepartidorDNI)
	assert.True(t, elig.Calificacion.Equal(decimal.RequireFromString("4.5")))
}

func TestValidate_PrimeraAtribucionGana(t *testing.T) {
	// El pedido pasó dos veces por cocinero (reasignación): se acredita al primero.
	history := []entity.StatusEvent{
		{Status: "cooked", Employee: &entity.EmployeeRef{Role: "cocinero", DNI: "E1"}},
		{Status: "re-cooked", Employee: &entity.EmployeeRef{Role: "cocinero", DNI: "E9"}},
		{Status: "dispatched", Employee: &entity.EmployeeRef{Role: "despachador", DNI: "E2"}},
		{Status: "delivered", Employee: &entity.EmployeeRef{Role: "repartidor", DNI: "E3"}},
	}
	elig, err := review.Validate(pedidoCon(history), solicitud("3"))
	require.NoError(t, err)
	assert.Equal(t, "E1", elig.CocineroDNI, "debe ganar la primera atribución, no la última")
}

func TestValidate_RolesNoDistinguenMayusculas(t *testing.T) {
	history := []entity.StatusEvent{
		{Status: "cooked", Employee: &entity.EmployeeRef{Role: "COCINERO", DNI: "E1"}},
		{Status: "dispatched", Employee: &entity.EmployeeRef{Role: "Despachador", DNI: "E2"}},
		{Status: "delivered", Employee: &entity.EmployeeRef{Role: "repartidor", DNI: "E3"}},
	}
	_, err := review.Validate(pedidoCon(history), solicitud("5"))
	assert.NoError(t, err)
}

func TestValidate_EtiquetasDesconocidasSeIgnoran(t *testing.T) {
	history := append([]entity.StatusEvent{
		{Status: "audited", Employee: &entity.EmployeeRef{Role: "auditor", DNI: "E7"}},
	}, historialCompleto()...)
	elig, err := review.Validate(pedidoCon(history), solicitud("4"))
	require.NoError(t, err, "una etiqueta de rol desconocida no es error")
	assert.Equal(t, "E1", elig.CocineroDNI)
}

func TestValidate_HistorialIncompleto_IndicaFaltantes(t *testing.T) {
	// Escenario: falta el evento del repartidor.
	history := historialCompleto()[:3]
	_, err := review.Validate(pedidoCon(history), solicitud("4.5"))

	var rej *review.RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, []string{review.RolRepartidor}, rej.Missing)
	assert.Equal(t, "E1", rej.Resolved[review.RolCocinero])
	assert.Equal(t, "E2", rej.Resolved[review.RolDespachador])
}

func TestValidate_HistorialVacio_FaltanTodos(t *testing.T) {
	_, err := review.Validate(pedidoCon(nil), solicitud("4"))

	var rej *review.RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, []string{review.RolCocinero, review.RolDespachador, review.RolRepartidor}, rej.Missing)
	assert.Empty(t, rej.Resolved)
}

func TestValidate_EventoSinEmpleadoSeIgnora(t *testing.T) {
	history := []entity.StatusEvent{
		{Status: "placed"},
		{Status: "cooked", Employee: &entity.EmployeeRef{Role: "cocinero"}}, // sin DNI
		{Status: "dispatched", Employee: &entity.EmployeeRef{Role: "despachador", DNI: "E2"}},
		{Status: "delivered", Employee: &entity.EmployeeRef{Role: "repartidor", DNI: "E3"}},
	}
	_, err := review.Validate(pedidoCon(history), solicitud("4"))

	var rej *review.RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Contains(t, rej.Missing, review.RolCocinero, "una atribución sin DNI no resuelve el rol")
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos requeridos y rango de calificación
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_CamposRequeridos(t *testing.T) {
	cases := []struct {
		name string
		sub  review.Submission
	}{
		{"local_id", review.Submission{PedidoID: "P1", Calificacion: "4"}},
		{"pedido_id", review.Submission{LocalID: "L1", Calificacion: "4"}},
		{"calificacion", review.Submission{LocalID: "L1", PedidoID: "P1"}},
	}
	for _, tc := range cases {
		_, err := review.Validate(pedidoCon(historialCompleto()), tc.sub)
		var rej *review.RejectionError
		require.ErrorAs(t, err, &rej, "campo %s", tc.name)
		assert.Contains(t, rej.Reason, tc.name)
	}
}

func TestValidate_RangoDeCalificacion(t *testing.T) {
	cases := []struct {
		calificacion string
		ok           bool
	}{
		{"0", true},
		{"5", true},
		{"4.5", true},
		{"0.00", true},
		{"-0.01", false},
		{"5.01", false},
		{"cinco", false},
	}
	for _, tc := range cases {
		_, err := review.Validate(pedidoCon(historialCompleto()), solicitud(tc.calificacion))
		if tc.ok {
			assert.NoError(t, err, "calificacion=%s debe aceptarse", tc.calificacion)
		} else {
			assert.Error(t, err, "calificacion=%s debe rechazarse", tc.calificacion)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Idempotencia: sin estado oculto entre invocaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_EsIdempotente(t *testing.T) {
	order := pedidoCon(historialCompleto())
	sub := solicitud("4.5")

	first, err1 := review.Validate(order, sub)
	second, err2 := review.Validate(order, sub)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "dos invocaciones con las mismas entradas dan el mismo resultado")
}
