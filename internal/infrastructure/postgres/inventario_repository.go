package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementação de InventarioRepository sobre PostgreSQL
// (usável com pool ou tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

// Create persiste um novo inventário.
func (r *InventarioRepo) Create(inv *entity.Inventario) error {
	query := `
		INSERT INTO inventarios (id, nome, status, data_inicio, data_fim, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Nome, inv.Status, inv.DataInicio, inv.DataFim, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventario: %w", err)
	}
	return nil
}

// GetByID obtém um inventário por ID. Retorna (nil, nil) se não existir.
func (r *InventarioRepo) GetByID(id string) (*entity.Inventario, error) {
	query := `
		SELECT id, nome, status, data_inicio, data_fim, created_at
		FROM inventarios WHERE id = $1`
	var inv entity.Inventario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.Nome, &inv.Status, &inv.DataInicio, &inv.DataFim, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return &inv, nil
}

// List lista todos os inventários, mais recentes primeiro.
func (r *InventarioRepo) List() ([]*entity.Inventario, error) {
	query := `
		SELECT id, nome, status, data_inicio, data_fim, created_at
		FROM inventarios ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventario
	for rows.Next() {
		var inv entity.Inventario
		if err := rows.Scan(&inv.ID, &inv.Nome, &inv.Status, &inv.DataInicio, &inv.DataFim, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update persiste status e data_fim (fechamento).
func (r *InventarioRepo) Update(inv *entity.Inventario) error {
	query := `UPDATE inventarios SET status = $2, data_fim = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, inv.ID, inv.Status, inv.DataFim)
	if err != nil {
		return fmt.Errorf("update inventario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventario %s: nenhuma linha afetada", inv.ID)
	}
	return nil
}

// Delete remove o inventário. As leituras são removidas antes, na mesma tx
// (ver TxRunner).
func (r *InventarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventario: %w", err)
	}
	return nil
}
