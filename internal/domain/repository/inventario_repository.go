package repository

import "github.com/olivarmoveis/contagem-api/internal/domain/entity"

// InventarioRepository define o porto de persistência das sessões de contagem.
type InventarioRepository interface {
	Create(inv *entity.Inventario) error
	GetByID(id string) (*entity.Inventario, error)
	List() ([]*entity.Inventario, error)
	// Update persiste status e data_fim (fechamento).
	Update(inv *entity.Inventario) error
	Delete(id string) error
}
