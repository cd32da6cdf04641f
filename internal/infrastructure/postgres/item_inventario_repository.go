package postgres

import (
	"context"
	"fmt"

	"github.com/olivarmoveis/contagem-api/internal/domain"
	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
)

var _ repository.ItemInventarioRepository = (*ItemInventarioRepo)(nil)

// ItemInventarioRepo implementação de ItemInventarioRepository sobre
// PostgreSQL (usável com pool ou tx).
type ItemInventarioRepo struct {
	q Querier
}

// NewItemInventarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewItemInventarioRepository(q Querier) *ItemInventarioRepo {
	return &ItemInventarioRepo{q: q}
}

// Create insere a leitura. A constraint única (inventario_id, cod_barra_ord)
// é o guarda autoritativo contra leituras concorrentes do mesmo código:
// violação vira domain.ErrItemDuplicado, idêntico a um pré-check.
func (r *ItemInventarioRepo) Create(item *entity.ItemInventario) error {
	query := `
		INSERT INTO itens_inventario
			(id, inventario_id, cod_barra_ord, cod_item, etiq_id, tmasc_item_id, desc_tecnica, mascara, quantidade, "timestamp")
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InventarioID, item.CodBarraOrd, item.CodItem, item.EtiqID,
		item.TmascItemID, item.DescTecnica, item.Mascara, item.Quantidade, item.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrItemDuplicado
		}
		return fmt.Errorf("insert item inventario: %w", err)
	}
	return nil
}

// ListByInventario lista as leituras do inventário em ordem total e
// determinística: timestamp decrescente com desempate por id.
func (r *ItemInventarioRepo) ListByInventario(inventarioID string) ([]*entity.ItemInventario, error) {
	query := `
		SELECT id, inventario_id, cod_barra_ord, cod_item, etiq_id, tmasc_item_id, desc_tecnica, mascara, quantidade, "timestamp"
		FROM itens_inventario
		WHERE inventario_id = $1
		ORDER BY "timestamp" DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, inventarioID)
	if err != nil {
		return nil, fmt.Errorf("list itens inventario: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemInventario
	for rows.Next() {
		var it entity.ItemInventario
		if err := rows.Scan(&it.ID, &it.InventarioID, &it.CodBarraOrd, &it.CodItem, &it.EtiqID,
			&it.TmascItemID, &it.DescTecnica, &it.Mascara, &it.Quantidade, &it.Timestamp); err != nil {
			return nil, fmt.Errorf("scan item inventario: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteByInventario apaga todas as leituras do inventário (cascata da exclusão).
func (r *ItemInventarioRepo) DeleteByInventario(inventarioID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM itens_inventario WHERE inventario_id = $1`, inventarioID)
	if err != nil {
		return fmt.Errorf("delete itens inventario: %w", err)
	}
	return nil
}
