package repository

import "github.com/olivarmoveis/contagem-api/internal/domain/entity"

// EstoqueRepository define o porto do snapshot de estoque.
type EstoqueRepository interface {
	// ReplaceAll apaga o snapshot inteiro e insere os registros recebidos,
	// tudo em uma única transação — leitores concorrentes nunca observam a
	// tabela parcialmente vazia. Retorna o total inserido.
	ReplaceAll(registros []*entity.Estoque) (int, error)
	ListAll() ([]*entity.Estoque, error)
}
