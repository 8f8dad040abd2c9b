package entity

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/modulo-estoque/internal/domain"
)

// Etiquetas de tipo de item. Se usan como discriminante en el archivo
// persistido y en el resumen en pantalla.
const (
	TypeProduct     = "PRODUTO"
	TypeRawMaterial = "MATERIA"
)

// Item vista polimórfica de un registro de stock. Las dos variantes
// (Product, RawMaterial) difieren solo en la etiqueta de tipo y en el
// detalle específico (categoría o proveedor).
type Item interface {
	ID() int
	Name() string
	Description() string
	Quantity() int
	Link() string

	// AddQuantity suma qty al stock. qty debe ser > 0 (ErrInvalidQuantity).
	AddQuantity(qty int) error
	// RemoveQuantity resta qty del stock. qty debe ser > 0
	// (ErrInvalidQuantity) y <= stock actual (ErrInsufficientStock).
	RemoveQuantity(qty int) error
	// Update sobrescribe los tres campos mutables de texto. No toca id,
	// cantidad, tipo ni el detalle específico.
	Update(name, description, link string)

	// Type devuelve la etiqueta de la variante (PRODUTO o MATERIA).
	Type() string
	// Detail devuelve el campo específico de la variante.
	Detail() string
	// Summary devuelve el bloque legible multilínea del item.
	Summary() string
}

// ItemBase estado común de las dos variantes. El id es inmutable y la
// cantidad solo se toca vía AddQuantity/RemoveQuantity, por eso los campos
// no están exportados.
type ItemBase struct {
	id          int
	name        string
	description string
	quantity    int
	link        string
}

func newItemBase(id int, name, description string, quantity int, link string) ItemBase {
	return ItemBase{
		id:          id,
		name:        name,
		description: description,
		quantity:    quantity,
		link:        link,
	}
}

func (b *ItemBase) ID() int             { return b.id }
func (b *ItemBase) Name() string        { return b.name }
func (b *ItemBase) Description() string { return b.description }
func (b *ItemBase) Quantity() int       { return b.quantity }
func (b *ItemBase) Link() string        { return b.link }

// AddQuantity suma qty al stock; sin tope superior.
func (b *ItemBase) AddQuantity(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("agregar %d: %w", qty, domain.ErrInvalidQuantity)
	}
	b.quantity += qty
	return nil
}

// RemoveQuantity resta qty del stock; nunca deja la cantidad negativa.
func (b *ItemBase) RemoveQuantity(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("retirar %d: %w", qty, domain.ErrInvalidQuantity)
	}
	if qty > b.quantity {
		return fmt.Errorf("retirar %d con stock %d: %w", qty, b.quantity, domain.ErrInsufficientStock)
	}
	b.quantity -= qty
	return nil
}

// Update sobrescribe nombre, descripción y link sin condiciones.
func (b *ItemBase) Update(name, description, link string) {
	b.name = name
	b.description = description
	b.link = link
}

// summary arma el bloque legible compartido; la variante aporta su etiqueta
// de tipo y la línea del detalle específico.
func (b *ItemBase) summary(typeTag, detailLabel, detail string) string {
	var sb strings.Builder
	sb.WriteString("---------------------------------\n")
	fmt.Fprintf(&sb, "ID: %d (%s)\n", b.id, typeTag)
	fmt.Fprintf(&sb, "Nome: %s\n", b.name)
	fmt.Fprintf(&sb, "Descricao: %s\n", b.description)
	fmt.Fprintf(&sb, "%s: %s\n", detailLabel, detail)
	fmt.Fprintf(&sb, "Quantidade: %d\n", b.quantity)
	fmt.Fprintf(&sb, "Link: %s\n", b.link)
	sb.WriteString("---------------------------------")
	return sb.String()
}
