package contagem

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
)

// EtiquetaResolvida é o resultado da resolução de um código de barras no ERP.
// Qtde é ponteiro porque o ERP pode devolver a etiqueta sem quantidade — isso
// é uma falha de validação dura, distinta de etiqueta não encontrada.
type EtiquetaResolvida struct {
	CodEmp      int
	EtiqID      int64
	CodBarraOrd string
	CodItem     string
	DescTecnica string
	Mascara     string
	TmascItemID int64
	Qtde        *decimal.Decimal
}

// CodigoBarrasResolver resolve um código de barras contra o catálogo do ERP.
// Deve ser idempotente por código; retorna domain.ErrCodigoNaoEncontrado
// quando a etiqueta não existe.
type CodigoBarrasResolver interface {
	ResolverCodigoBarras(ctx context.Context, codigo string) (*EtiquetaResolvida, error)
}

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade da exclusão em cascata.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventarioRepository,
		itemRepo repository.ItemInventarioRepository,
	) error) error
}
