package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/modulo-estoque/internal/domain/sequence"
)

func TestAllocator_NextEsMonotono(t *testing.T) {
	a := sequence.NewAllocator()

	assert.Equal(t, 1, a.Next())
	assert.Equal(t, 2, a.Next())
	assert.Equal(t, 3, a.Next())
}

func TestAllocator_AdvanceToAvanza(t *testing.T) {
	a := sequence.NewAllocator()

	a.AdvanceTo(8)
	assert.Equal(t, 8, a.Next(), "tras avanzar a 8, el próximo id debe ser 8")
	assert.Equal(t, 9, a.Next())
}

func TestAllocator_AdvanceToNuncaRetrocede(t *testing.T) {
	a := sequence.NewAllocator()
	a.AdvanceTo(10)

	a.AdvanceTo(4)
	assert.Equal(t, 10, a.Next(), "avanzar a un valor menor no debe mover el contador")

	a.AdvanceTo(11)
	assert.Equal(t, 11, a.Next(), "avanzar al valor actual exacto tampoco lo mueve")
}

func TestAllocator_InstanciasIndependientes(t *testing.T) {
	items := sequence.NewAllocator()
	movements := sequence.NewAllocator()

	items.Next()
	items.Next()

	assert.Equal(t, 1, movements.Next(), "cada allocator lleva su propio contador")
}
