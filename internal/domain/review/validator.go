// Package review implementa la validación de elegibilidad de reseñas:
// reconstruye qué empleados (cocinero, despachador, repartidor) participaron
// en un pedido recorriendo su historial de estados, y verifica los campos de
// la solicitud antes de que el handler construya la reseña. Es código puro:
// recibe el pedido ya materializado y no hace I/O.
package review

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/tu-usuario/chinawok-ops/internal/domain/entity"
)

// Roles de empleado requeridos para aceptar una reseña.
const (
	RolCocinero    = "cocinero"
	RolDespachador = "despachador"
	RolRepartidor  = "repartidor"
)

// Límites del rango de calificación (intervalo cerrado).
var (
	ratingMin = decimal.Zero
	ratingMax = decimal.NewFromInt(5)
)

// Submission campos de la solicitud de reseña tal como llegan del transporte.
// Calificacion viaja cruda y se parsea aquí como decimal exacto, para que el
// chequeo de frontera 0/5 no dependa de una aproximación flotante.
type Submission struct {
	LocalID      string
	PedidoID     string
	Calificacion string
	Resena       string
}

// Eligibility DNIs resueltos del historial, uno por rol requerido, más la
// calificación ya parseada para que el caller no vuelva a interpretarla.
type Eligibility struct {
	CocineroDNI    string
	DespachadorDNI string
	RepartidorDNI  string
	Calificacion   decimal.Decimal
}

// RejectionError rechazo local y no reintentable de una solicitud de reseña.
// Resolved/Missing acompañan al rechazo por historial incompleto para que el
// caller pueda indicar qué roles faltan sin persistir nada parcial.
type RejectionError struct {
	Reason   string
	Missing  []string          // roles sin resolver, en orden canónico
	Resolved map[string]string // rol -> dni ya resuelto
}

func (e *RejectionError) Error() string { return e.Reason }

// reject construye un rechazo simple (sin diagnóstico de roles).
func reject(format string, args ...interface{}) *RejectionError {
	return &RejectionError{Reason: fmt.Sprintf(format, args...)}
}

// Validate aplica las reglas de elegibilidad en orden:
//
//  1. Campos requeridos: local_id, pedido_id, calificacion.
//  2. Recorrido del historial en orden original: el primer DNI visto por rol
//     gana (si el pedido pasó dos veces por un rol, se acredita al primero).
//     Etiquetas de rol desconocidas se ignoran, no son error.
//  3. Los tres roles deben quedar resueltos.
//  4. Calificación como decimal exacto dentro de [0, 5].
//
// Sin estado oculto: dos llamadas con las mismas entradas dan el mismo resultado.
func Validate(order *entity.Order, sub Submission) (*Eligibility, error) {
	for _, f := range []struct{ name, value string }{
		{"local_id", sub.LocalID},
		{"pedido_id", sub.PedidoID},
		{"calificacion", sub.Calificacion},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, reject("Falta el campo %s", f.name)
		}
	}
	if order == nil {
		return nil, reject("pedido sin historial de estados")
	}

	resolved := map[string]string{}
	fold := cases.Fold()
	for _, ev := range order.StatusHistory {
		if ev.Employee == nil || ev.Employee.DNI == "" {
			continue
		}
		rol := fold.String(strings.TrimSpace(ev.Employee.Role))
		switch rol {
		case RolCocinero, RolDespachador, RolRepartidor:
			if _, ok := resolved[rol]; !ok {
				resolved[rol] = ev.Employee.DNI
			}
		}
	}

	var missing []string
	for _, rol := range []string{RolCocinero, RolDespachador, RolRepartidor} {
		if _, ok := resolved[rol]; !ok {
			missing = append(missing, rol)
		}
	}
	if len(missing) > 0 {
		return nil, &RejectionError{
			Reason:   "No se encontraron todos los empleados requeridos en el historial del pedido",
			Missing:  missing,
			Resolved: resolved,
		}
	}

	cal, err := decimal.NewFromString(strings.TrimSpace(sub.Calificacion))
	if err != nil {
		return nil, reject("La calificación debe ser un número")
	}
	if cal.LessThan(ratingMin) || cal.GreaterThan(ratingMax) {
		return nil, reject("La calificación debe estar entre 0 y 5")
	}

	return &Eligibility{
		CocineroDNI:    resolved[RolCocinero],
		DespachadorDNI: resolved[RolDespachador],
		RepartidorDNI:  resolved[RolRepartidor],
		Calificacion:   cal,
	}, nil
}
