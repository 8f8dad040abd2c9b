package entity

// RawMaterial item de tipo materia prima; su detalle específico es el
// proveedor.
type RawMaterial struct {
	ItemBase
	supplier string
}

// NewRawMaterial construye una materia prima con el id ya asignado por el allocator.
func NewRawMaterial(id int, name, description string, quantity int, link, supplier string) *RawMaterial {
	return &RawMaterial{
		ItemBase: newItemBase(id, name, description, quantity, link),
		supplier: supplier,
	}
}

func (m *RawMaterial) Type() string   { return TypeRawMaterial }
func (m *RawMaterial) Detail() string { return m.supplier }

func (m *RawMaterial) Summary() string {
	return m.summary(TypeRawMaterial, "Fornecedor", m.supplier)
}
