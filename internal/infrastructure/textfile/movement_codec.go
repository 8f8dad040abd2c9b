package textfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/modulo-estoque/internal/domain"
	"github.com/tu-usuario/modulo-estoque/internal/domain/entity"
)

// Formato de movimiento: ID;TIMESTAMP;KIND;QUANTITY;ITEM_ID;ITEM_NAME
const movementFieldCount = 6

func encodeMovement(m *entity.Movement) string {
	return strings.Join([]string{
		strconv.Itoa(m.ID),
		m.Date,
		string(m.Type),
		strconv.Itoa(m.Quantity),
		strconv.Itoa(m.ItemID),
		m.ItemName,
	}, fieldSep)
}

// decodeMovement reconstruye un movimiento verbatim: id y fecha se toman del
// archivo, no se regeneran.
func decodeMovement(line string) (*entity.Movement, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != movementFieldCount {
		return nil, fmt.Errorf("%w: %d campos, se esperaban %d", domain.ErrMalformedRecord, len(fields), movementFieldCount)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: id %q no numérico", domain.ErrMalformedRecord, fields[0])
	}
	quantity, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: cantidad %q no numérica", domain.ErrMalformedRecord, fields[3])
	}
	itemID, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: item id %q no numérico", domain.ErrMalformedRecord, fields[4])
	}

	movType := entity.MovementType(fields[2])
	if movType != entity.MovementInbound && movType != entity.MovementOutbound {
		return nil, fmt.Errorf("%w: tipo de movimiento %q desconocido", domain.ErrMalformedRecord, fields[2])
	}

	return &entity.Movement{
		ID:       id,
		Date:     fields[1],
		Type:     movType,
		Quantity: quantity,
		ItemID:   itemID,
		ItemName: fields[5],
	}, nil
}
