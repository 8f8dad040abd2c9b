// Package sequence genera identificadores únicos, enteros y crecientes.
// Cada tipo de entidad (items, movimientos) usa su propio Allocator; no hay
// estado global, el dueño del Allocator lo inyecta donde haga falta.
package sequence

// Allocator contador monótono. El valor inicial es 1.
type Allocator struct {
	next int
}

// NewAllocator construye un allocator que entregará 1 como primer id.
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Next devuelve el valor actual y avanza el contador.
func (a *Allocator) Next() int {
	id := a.next
	a.next++
	return id
}

// AdvanceTo mueve el contador a n solo si n es estrictamente mayor que el
// valor actual. Nunca retrocede: tras recargar desde disco se llama con
// max(id)+1 para que los ids nuevos no colisionen con los leídos.
func (a *Allocator) AdvanceTo(n int) {
	if n > a.next {
		a.next = n
	}
}
