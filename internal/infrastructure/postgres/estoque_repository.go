package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
)

var _ repository.EstoqueRepository = (*EstoqueRepo)(nil)

// EstoqueRepo implementação de EstoqueRepository sobre PostgreSQL.
// Mantém o pool (e não um Querier) porque ReplaceAll abre a própria transação.
type EstoqueRepo struct {
	pool *pgxpool.Pool
}

// NewEstoqueRepository constrói o adaptador do snapshot de estoque.
func NewEstoqueRepository(pool *pgxpool.Pool) *EstoqueRepo {
	return &EstoqueRepo{pool: pool}
}

// ReplaceAll troca o snapshot inteiro: DELETE de tudo e insert em lote dos
// registros recebidos, na mesma transação. Leitores com isolamento read
// committed nunca observam a tabela no estado intermediário vazio.
func (r *EstoqueRepo) ReplaceAll(registros []*entity.Estoque) (int, error) {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM estoque`); err != nil {
		return 0, fmt.Errorf("limpar estoque: %w", err)
	}

	if len(registros) > 0 {
		batch := &pgx.Batch{}
		query := `
			INSERT INTO estoque (cod_emp, cod_item, mascara, tmasc_item_id, quantidade, desc_tecnica)
			VALUES ($1, $2, $3, $4, $5, $6)`
		for _, e := range registros {
			batch.Queue(query, e.CodEmp, e.CodItem, e.Mascara, e.TmascItemID, e.Quantidade, e.DescTecnica)
		}
		br := tx.SendBatch(ctx, batch)
		for range registros {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return 0, fmt.Errorf("insert estoque: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return 0, fmt.Errorf("fechar batch estoque: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return len(registros), nil
}

// ListAll retorna o snapshot completo.
func (r *EstoqueRepo) ListAll() ([]*entity.Estoque, error) {
	query := `
		SELECT cod_emp, cod_item, mascara, tmasc_item_id, quantidade, desc_tecnica
		FROM estoque`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list estoque: %w", err)
	}
	defer rows.Close()
	var list []*entity.Estoque
	for rows.Next() {
		var e entity.Estoque
		if err := rows.Scan(&e.CodEmp, &e.CodItem, &e.Mascara, &e.TmascItemID, &e.Quantidade, &e.DescTecnica); err != nil {
			return nil, fmt.Errorf("scan estoque: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
