package usecase

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tu-usuario/modulo-estoque/internal/domain"
	"github.com/tu-usuario/modulo-estoque/internal/domain/entity"
	"github.com/tu-usuario/modulo-estoque/internal/domain/repository"
	"github.com/tu-usuario/modulo-estoque/internal/domain/sequence"
	"github.com/tu-usuario/modulo-estoque/pkg/logger"
)

// InventoryUseCase dueño único del estoque: la colección de items en orden
// de inserción, el historial de movimientos (solo-apéndice) y los dos
// allocators de ids. Uso estrictamente secuencial, un solo llamador; no hay
// locking porque no hay acceso concurrente.
//
// La búsqueda es lineal a propósito: las colecciones son chicas y no se
// mantiene ningún índice.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	log  *logger.Logger

	items     []entity.Item
	movements []*entity.Movement
	itemSeq   *sequence.Allocator
	movSeq    *sequence.Allocator
}

// NewInventoryUseCase construye el caso de uso y carga el estado persistido.
// Archivos ausentes o líneas corruptas no hacen fallar la carga; solo una
// falla real de E/S devuelve error.
func NewInventoryUseCase(repo repository.InventoryRepository, log *logger.Logger) (*InventoryUseCase, error) {
	uc := &InventoryUseCase{
		repo:    repo,
		log:     log,
		itemSeq: sequence.NewAllocator(),
		movSeq:  sequence.NewAllocator(),
	}
	if err := uc.load(); err != nil {
		return nil, err
	}
	return uc, nil
}

// AddItem agrega un item ya construido a la colección. Un item nil se
// ignora, igual que cualquier otro no-op.
func (uc *InventoryUseCase) AddItem(item entity.Item) {
	if item == nil {
		return
	}
	uc.items = append(uc.items, item)
	uc.log.Debug().Int("id", item.ID()).Str("tipo", item.Type()).Msg("item agregado")
}

// CreateProduct asigna un id nuevo, construye el producto y lo agrega.
func (uc *InventoryUseCase) CreateProduct(name, description string, quantity int, link, category string) *entity.Product {
	p := entity.NewProduct(uc.itemSeq.Next(), name, description, quantity, link, category)
	uc.AddItem(p)
	return p
}

// CreateRawMaterial asigna un id nuevo, construye la materia prima y la agrega.
func (uc *InventoryUseCase) CreateRawMaterial(name, description string, quantity int, link, supplier string) *entity.RawMaterial {
	m := entity.NewRawMaterial(uc.itemSeq.Next(), name, description, quantity, link, supplier)
	uc.AddItem(m)
	return m
}

// FindByID busca un item por id.
func (uc *InventoryUseCase) FindByID(id int) (entity.Item, error) {
	for _, it := range uc.items {
		if it.ID() == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("item con id %d: %w", id, domain.ErrNotFound)
}

// FindByName busca el primer item cuyo nombre coincide exactamente.
func (uc *InventoryUseCase) FindByName(name string) (entity.Item, error) {
	for _, it := range uc.items {
		if it.Name() == name {
			return it, nil
		}
	}
	return nil, fmt.Errorf("item con nombre %q: %w", name, domain.ErrNotFound)
}

// RemoveByID saca el item de la colección. Su historial de movimientos se
// conserva: las entradas del ledger llevan foto de id y nombre.
func (uc *InventoryUseCase) RemoveByID(id int) error {
	for i, it := range uc.items {
		if it.ID() == id {
			uc.items = append(uc.items[:i], uc.items[i+1:]...)
			uc.log.Debug().Int("id", id).Msg("item removido")
			return nil
		}
	}
	return fmt.Errorf("item con id %d: %w", id, domain.ErrNotFound)
}

// EditFields actualiza los campos de texto mutables del item. Un valor en
// blanco conserva el valor actual de ese campo.
func (uc *InventoryUseCase) EditFields(id int, name, description, link string) error {
	it, err := uc.FindByID(id)
	if err != nil {
		return err
	}
	if name == "" {
		name = it.Name()
	}
	if description == "" {
		description = it.Description()
	}
	if link == "" {
		link = it.Link()
	}
	it.Update(name, description, link)
	return nil
}

// RegisterInbound suma quantity al stock del item y registra el movimiento
// ENTRADA en el historial. Si la validación falla no se registra nada.
func (uc *InventoryUseCase) RegisterInbound(id, quantity int) (*entity.Movement, error) {
	it, err := uc.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := it.AddQuantity(quantity); err != nil {
		return nil, err
	}
	mov := entity.NewMovement(uc.movSeq.Next(), entity.MovementInbound, quantity, it)
	uc.movements = append(uc.movements, mov)
	uc.log.Info().Int("item", id).Int("cantidad", quantity).Msg("entrada registrada")
	return mov, nil
}

// RegisterOutbound resta quantity del stock del item y registra el
// movimiento SAIDA. Con stock insuficiente la cantidad queda intacta y no
// se agrega nada al historial.
func (uc *InventoryUseCase) RegisterOutbound(id, quantity int) (*entity.Movement, error) {
	it, err := uc.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := it.RemoveQuantity(quantity); err != nil {
		return nil, err
	}
	mov := entity.NewMovement(uc.movSeq.Next(), entity.MovementOutbound, quantity, it)
	uc.movements = append(uc.movements, mov)
	uc.log.Info().Int("item", id).Int("cantidad", quantity).Msg("salida registrada")
	return mov, nil
}

// Items devuelve una secuencia perezosa y re-iterable de los items en orden
// de inserción.
func (uc *InventoryUseCase) Items() iter.Seq[entity.Item] {
	return slices.Values(uc.items)
}

// History devuelve una secuencia perezosa y re-iterable del historial en
// orden de registro.
func (uc *InventoryUseCase) History() iter.Seq[*entity.Movement] {
	return slices.Values(uc.movements)
}

// ItemCount cantidad de items actuales.
func (uc *InventoryUseCase) ItemCount() int { return len(uc.items) }

// MovementCount cantidad de movimientos en el historial.
func (uc *InventoryUseCase) MovementCount() int { return len(uc.movements) }

// ItemLink devuelve el link de información del item. Accesor de solo
// lectura para el comando "buscar en internet" del shell.
func (uc *InventoryUseCase) ItemLink(id int) (string, error) {
	it, err := uc.FindByID(id)
	if err != nil {
		return "", err
	}
	return it.Link(), nil
}

// Save persiste las dos colecciones, items primero. Los archivos son
// independientes: una falla corta el guardado pero el estado en memoria
// sigue válido y se puede reintentar.
func (uc *InventoryUseCase) Save() error {
	if err := uc.repo.SaveItems(uc.items); err != nil {
		return err
	}
	if err := uc.repo.SaveMovements(uc.movements); err != nil {
		return err
	}
	uc.log.Info().Int("items", len(uc.items)).Int("movimientos", len(uc.movements)).Msg("estoque guardado")
	return nil
}

// load puebla las colecciones desde el repositorio y avanza los allocators
// a max(id)+1 para que los ids nuevos nunca colisionen con los cargados.
func (uc *InventoryUseCase) load() error {
	items, err := uc.repo.LoadItems()
	if err != nil {
		return err
	}
	uc.items = items
	maxID := 0
	for _, it := range items {
		if it.ID() > maxID {
			maxID = it.ID()
		}
	}
	uc.itemSeq.AdvanceTo(maxID + 1)

	movements, err := uc.repo.LoadMovements()
	if err != nil {
		return err
	}
	uc.movements = movements
	maxID = 0
	for _, m := range movements {
		if m.ID > maxID {
			maxID = m.ID
		}
	}
	uc.movSeq.AdvanceTo(maxID + 1)

	uc.log.Info().Int("items", len(items)).Int("movimientos", len(movements)).Msg("estoque cargado")
	return nil
}
