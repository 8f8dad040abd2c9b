package entity

import (
	"fmt"
	"time"
)

// Tipos de movimiento de stock, tal como se persisten.
type MovementType string

const (
	MovementInbound  MovementType = "ENTRADA"
	MovementOutbound MovementType = "SAIDA"
)

// DateLayout formato de fecha de los movimientos: hora local, precisión de
// segundos, reproducible tal cual al recargar.
const DateLayout = "2006-01-02 15:04:05"

// Movement registro inmutable de un cambio de cantidad. ItemID e ItemName
// son una foto del item al momento del movimiento, no una referencia viva:
// el historial sigue teniendo sentido aunque el item se edite o se borre
// después (desnormalización deliberada).
type Movement struct {
	ID       int
	Date     string
	Type     MovementType
	Quantity int
	ItemID   int
	ItemName string
}

// NewMovement crea el registro de un movimiento recién ocurrido, con fecha
// actual y la identidad del item copiada.
func NewMovement(id int, movType MovementType, quantity int, item Item) *Movement {
	return &Movement{
		ID:       id,
		Date:     time.Now().Format(DateLayout),
		Type:     movType,
		Quantity: quantity,
		ItemID:   item.ID(),
		ItemName: item.Name(),
	}
}

// Summary devuelve el resumen de una línea usado por el historial.
func (m *Movement) Summary() string {
	return fmt.Sprintf("[%d] %s - %s - qtd: %d - item: %s (ID:%d)",
		m.ID, m.Date, m.Type, m.Quantity, m.ItemName, m.ItemID)
}
