package entity

// Product item de tipo producto terminado; su detalle específico es la
// categoría comercial.
type Product struct {
	ItemBase
	category string
}

// NewProduct construye un producto con el id ya asignado por el allocator.
func NewProduct(id int, name, description string, quantity int, link, category string) *Product {
	return &Product{
		ItemBase: newItemBase(id, name, description, quantity, link),
		category: category,
	}
}

func (p *Product) Type() string   { return TypeProduct }
func (p *Product) Detail() string { return p.category }

func (p *Product) Summary() string {
	return p.summary(TypeProduct, "Categoria", p.category)
}
