package repository

import "github.com/olivarmoveis/contagem-api/internal/domain/entity"

// ItemInventarioRepository define o porto do livro de leituras (append-only).
type ItemInventarioRepository interface {
	// Create insere a leitura. Violação da constraint única
	// (inventario_id, cod_barra_ord) retorna domain.ErrItemDuplicado.
	Create(item *entity.ItemInventario) error
	// ListByInventario retorna as leituras ordenadas por timestamp e id
	// decrescentes (ordem total, determinística).
	ListByInventario(inventarioID string) ([]*entity.ItemInventario, error)
	DeleteByInventario(inventarioID string) error
}
