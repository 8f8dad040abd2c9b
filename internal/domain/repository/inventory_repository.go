package repository

import "github.com/tu-usuario/modulo-estoque/internal/domain/entity"

// InventoryRepository puerto de persistencia del estoque: dos colecciones,
// cada una en su propio archivo. Los Load* toleran archivo ausente (primer
// arranque devuelve slice vacío, sin error) y descartan líneas ilegibles
// una por una; nunca fallan por datos corruptos. Los Save* reescriben el
// archivo completo y envuelven fallas de apertura en domain.ErrPersistence.
type InventoryRepository interface {
	SaveItems(items []entity.Item) error
	LoadItems() ([]entity.Item, error)
	SaveMovements(movements []*entity.Movement) error
	LoadMovements() ([]*entity.Movement, error)
}
