package textfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tu-usuario/modulo-estoque/internal/domain"
	"github.com/tu-usuario/modulo-estoque/internal/domain/entity"
)

// Formato de item: TYPE;ID;NAME;DESCRIPTION;QUANTITY;LINK;DETAIL
const itemFieldCount = 7

// encodeItem serializa un item en una línea. La etiqueta de tipo y el
// detalle los resuelve la variante.
func encodeItem(it entity.Item) string {
	return strings.Join([]string{
		it.Type(),
		strconv.Itoa(it.ID()),
		it.Name(),
		it.Description(),
		strconv.Itoa(it.Quantity()),
		it.Link(),
		it.Detail(),
	}, fieldSep)
}

// decodeItem reconstruye un item desde una línea persistida, conservando su
// id tal como fue guardado.
func decodeItem(line string) (entity.Item, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != itemFieldCount {
		return nil, fmt.Errorf("%w: %d campos, se esperaban %d", domain.ErrMalformedRecord, len(fields), itemFieldCount)
	}

	typeTag := fields[0]
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: id %q no numérico", domain.ErrMalformedRecord, fields[1])
	}
	quantity, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: cantidad %q no numérica", domain.ErrMalformedRecord, fields[4])
	}
	name, description, link, detail := fields[2], fields[3], fields[5], fields[6]

	switch typeTag {
	case entity.TypeProduct:
		return entity.NewProduct(id, name, description, quantity, link, detail), nil
	case entity.TypeRawMaterial:
		return entity.NewRawMaterial(id, name, description, quantity, link, detail), nil
	default:
		return nil, fmt.Errorf("%w: tipo %q desconocido", domain.ErrMalformedRecord, typeTag)
	}
}
