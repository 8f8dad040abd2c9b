// Package textfile implementa InventoryRepository sobre dos archivos de
// texto planos, un registro por línea con campos separados por ";".
//
// Limitación documentada: los campos no se escapan; un valor que contenga
// el separador corrompe los límites de la fila. El formato se mantiene así
// por compatibilidad con los archivos existentes.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tu-usuario/modulo-estoque/internal/domain"
	"github.com/tu-usuario/modulo-estoque/internal/domain/entity"
	"github.com/tu-usuario/modulo-estoque/internal/domain/repository"
	"github.com/tu-usuario/modulo-estoque/pkg/logger"
)

const fieldSep = ";"

var _ repository.InventoryRepository = (*Repository)(nil)

// Repository adaptador de persistencia en archivos de texto.
type Repository struct {
	itemsPath     string
	movementsPath string
	log           *logger.Logger
}

// NewRepository construye el adaptador con las rutas de los dos archivos.
func NewRepository(itemsPath, movementsPath string, log *logger.Logger) *Repository {
	return &Repository{
		itemsPath:     itemsPath,
		movementsPath: movementsPath,
		log:           log,
	}
}

// SaveItems reescribe el archivo de items completo.
func (r *Repository) SaveItems(items []entity.Item) error {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, encodeItem(it))
	}
	return r.writeLines(r.itemsPath, lines)
}

// LoadItems lee el archivo de items. Archivo ausente no es error (primer
// arranque); las líneas ilegibles se descartan con un warning.
func (r *Repository) LoadItems() ([]entity.Item, error) {
	var items []entity.Item
	err := r.readLines(r.itemsPath, func(n int, line string) {
		it, err := decodeItem(line)
		if err != nil {
			r.log.Warn().Str("archivo", r.itemsPath).Int("linea", n).Err(err).
				Msg("línea de item descartada")
			return
		}
		items = append(items, it)
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SaveMovements reescribe el archivo de movimientos completo.
func (r *Repository) SaveMovements(movements []*entity.Movement) error {
	lines := make([]string, 0, len(movements))
	for _, m := range movements {
		lines = append(lines, encodeMovement(m))
	}
	return r.writeLines(r.movementsPath, lines)
}

// LoadMovements lee el archivo de movimientos con la misma tolerancia que
// LoadItems.
func (r *Repository) LoadMovements() ([]*entity.Movement, error) {
	var movements []*entity.Movement
	err := r.readLines(r.movementsPath, func(n int, line string) {
		m, err := decodeMovement(line)
		if err != nil {
			r.log.Warn().Str("archivo", r.movementsPath).Int("linea", n).Err(err).
				Msg("línea de movimiento descartada")
			return
		}
		movements = append(movements, m)
	})
	if err != nil {
		return nil, err
	}
	return movements, nil
}

// writeLines reescribe path con las líneas dadas, terminadas en "\n".
// Cualquier falla de E/S se reporta como domain.ErrPersistence.
func (r *Repository) writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: abrir %s: %v", domain.ErrPersistence, path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("%w: escribir %s: %v", domain.ErrPersistence, path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrPersistence, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: cerrar %s: %v", domain.ErrPersistence, path, err)
	}
	r.log.Debug().Str("archivo", path).Int("registros", len(lines)).Msg("archivo guardado")
	return nil
}

// readLines recorre path línea por línea. Archivo ausente devuelve nil.
func (r *Repository) readLines(path string, fn func(n int, line string)) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Debug().Str("archivo", path).Msg("archivo ausente, colección vacía")
			return nil
		}
		return fmt.Errorf("%w: abrir %s: %v", domain.ErrPersistence, path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if line == "" {
			continue
		}
		fn(n, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: leer %s: %v", domain.ErrPersistence, path, err)
	}
	return nil
}
