package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/modulo-estoque/internal/domain"
	"github.com/tu-usuario/modulo-estoque/internal/domain/entity"
)

func TestProduct_EtiquetaYDetalle(t *testing.T) {
	p := entity.NewProduct(1, "Parafuso", "Parafuso M4", 100, "http://example.com", "Ferragens")

	assert.Equal(t, "PRODUTO", p.Type())
	assert.Equal(t, "Ferragens", p.Detail())
	assert.Equal(t, 1, p.ID())
	assert.Equal(t, 100, p.Quantity())
}

func TestRawMaterial_EtiquetaYDetalle(t *testing.T) {
	m := entity.NewRawMaterial(2, "Madeira", "Madeira tratada", 50, "http://example.com", "Serraria Sul")

	assert.Equal(t, "MATERIA", m.Type())
	assert.Equal(t, "Serraria Sul", m.Detail())
}

func TestItem_AddQuantity(t *testing.T) {
	p := entity.NewProduct(1, "Parafuso", "Parafuso M4", 10, "", "Ferragens")

	require.NoError(t, p.AddQuantity(5))
	assert.Equal(t, 15, p.Quantity())

	err := p.AddQuantity(0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	err = p.AddQuantity(-3)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 15, p.Quantity(), "una cantidad inválida no toca el stock")
}

func TestItem_RemoveQuantity(t *testing.T) {
	p := entity.NewProduct(1, "Parafuso", "Parafuso M4", 10, "", "Ferragens")

	require.NoError(t, p.RemoveQuantity(4))
	assert.Equal(t, 6, p.Quantity())

	err := p.RemoveQuantity(0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	err = p.RemoveQuantity(7)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 6, p.Quantity(), "stock insuficiente deja la cantidad intacta")

	require.NoError(t, p.RemoveQuantity(6))
	assert.Equal(t, 0, p.Quantity(), "retirar el stock completo es válido")
}

func TestItem_UpdateSoloCamposMutables(t *testing.T) {
	m := entity.NewRawMaterial(3, "Madeira", "Madeira tratada", 50, "http://a", "Serraria Sul")

	m.Update("Madeira Pinho", "Pinho tratado", "http://b")

	assert.Equal(t, "Madeira Pinho", m.Name())
	assert.Equal(t, "Pinho tratado", m.Description())
	assert.Equal(t, "http://b", m.Link())
	assert.Equal(t, 3, m.ID(), "el id no se toca")
	assert.Equal(t, 50, m.Quantity(), "la cantidad no se toca")
	assert.Equal(t, "Serraria Sul", m.Detail(), "el detalle específico no se toca")
}

func TestItem_SummaryPorVariante(t *testing.T) {
	p := entity.NewProduct(1, "Parafuso", "Parafuso M4", 100, "http://example.com", "Ferragens")
	m := entity.NewRawMaterial(2, "Madeira", "Madeira tratada", 50, "http://example.com", "Serraria Sul")

	assert.Contains(t, p.Summary(), "ID: 1 (PRODUTO)")
	assert.Contains(t, p.Summary(), "Categoria: Ferragens")
	assert.Contains(t, m.Summary(), "ID: 2 (MATERIA)")
	assert.Contains(t, m.Summary(), "Fornecedor: Serraria Sul")
	assert.Contains(t, m.Summary(), "Quantidade: 50")
}
