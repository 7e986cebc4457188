package entity

// Local un restaurante de la cadena. Solo lectura desde este servicio:
// el alta de locales pertenece al subsistema administrativo.
type Local struct {
	LocalID string
	Name    string
	Address string
}
