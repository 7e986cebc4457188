// Package access centraliza la política RBAC sobre cuentas de usuario.
// Es una función de decisión pura: recibe la identidad del actor (ya
// autenticada aguas arriba), el objetivo y la operación, y responde
// Allow/Deny sin tocar ningún colaborador. Los handlers son responsables
// de ejecutar u omitir la mutación según la decisión.
package access

import (
	"strings"

	"golang.org/x/text/cases"
)

// Role rol de una cuenta. El orden importa: a mayor valor, mayor privilegio.
type Role int

const (
	RoleCliente Role = iota
	RoleGerente
	RoleAdmin
)

// ParseRole interpreta un rol textual sin distinguir mayúsculas. Un rol
// ausente o desconocido se trata como Cliente (mínimo privilegio), nunca
// como error: la confianza jamás es implícita.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "gerente":
		return RoleGerente
	default:
		return RoleCliente
	}
}

// String devuelve el nombre canónico del rol.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleGerente:
		return "Gerente"
	default:
		return "Cliente"
	}
}

// Op tipo de operación sobre cuentas.
type Op int

const (
	OpRead Op = iota
	OpDelete
	OpList
)

// Identity identidad del actor entregada por el authorizer aguas arriba.
type Identity struct {
	Email string
	Role  Role
}

// Decision resultado de la política. Deny lleva siempre un motivo legible,
// sin detalle interno.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow decisión positiva.
func Allow() Decision { return Decision{Allowed: true} }

// Deny decisión negativa con motivo.
func Deny(reason string) Decision { return Decision{Reason: reason} }

// NormalizeEmail aplica case folding Unicode y recorta espacios, de modo que
// la comparación actor/objetivo y las claves de persistencia coincidan.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// Decide aplica la política por operación:
//
//   - List: solo Admin, sin excepción de "sí mismo" (listar no tiene objetivo único).
//   - Read/Delete sobre la propia cuenta: siempre permitido.
//   - Admin: permitido sobre cualquier objetivo.
//   - Gerente: permitido solo si el objetivo es Cliente.
//   - Cliente o rol desconocido: denegado sobre terceros.
func Decide(actor Identity, targetEmail string, targetRole Role, op Op) Decision {
	if op == OpList {
		if actor.Role == RoleAdmin {
			return Allow()
		}
		return Deny("solo Admin puede listar usuarios")
	}

	self := NormalizeEmail(actor.Email)
	if self != "" && self == NormalizeEmail(targetEmail) {
		return Allow()
	}

	switch actor.Role {
	case RoleAdmin:
		return Allow()
	case RoleGerente:
		if targetRole == RoleCliente {
			return Allow()
		}
		return Deny("Gerente solo puede operar sobre Clientes")
	default:
		return Deny("solo puedes operar sobre tu propia cuenta")
	}
}
