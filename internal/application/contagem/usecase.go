package contagem

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/olivarmoveis/contagem-api/internal/domain"
	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
	"github.com/olivarmoveis/contagem-api/internal/domain/repository"
)

// UseCase casos de uso do ciclo de vida do inventário: criar, listar,
// fechar e deletar (com cascata sobre as leituras).
type UseCase struct {
	invRepo  repository.InventarioRepository
	txRunner TxRunner
}

// NewUseCase constrói o caso de uso.
func NewUseCase(invRepo repository.InventarioRepository, txRunner TxRunner) *UseCase {
	return &UseCase{invRepo: invRepo, txRunner: txRunner}
}

// Criar abre uma nova sessão de contagem com o nome informado.
func (uc *UseCase) Criar(ctx context.Context, nome string) (*entity.Inventario, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	inv := &entity.Inventario{
		ID:         uuid.New().String(),
		Nome:       nome,
		Status:     entity.StatusAberto,
		DataInicio: now,
		CreatedAt:  now,
	}
	if err := uc.invRepo.Create(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Listar retorna todos os inventários.
func (uc *UseCase) Listar(ctx context.Context) ([]*entity.Inventario, error) {
	return uc.invRepo.List()
}

// Fechar encerra o inventário: status Fechado e data_fim preenchida, uma
// única vez. Segunda chamada retorna ErrInventarioJaFechado sem alterar
// status nem data_fim. Não existe caminho de reabertura.
func (uc *UseCase) Fechar(ctx context.Context, id string) (*entity.Inventario, error) {
	inv, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status == entity.StatusFechado {
		return nil, domain.ErrInventarioJaFechado
	}
	now := time.Now()
	inv.Status = entity.StatusFechado
	inv.DataFim = &now
	if err := uc.invRepo.Update(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Deletar remove o inventário e todas as suas leituras na mesma transação.
// Permitido em qualquer status; não é uma transição de estado.
func (uc *UseCase) Deletar(ctx context.Context, id string) error {
	inv, err := uc.invRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventarioRepository,
		itemRepo repository.ItemInventarioRepository,
	) error {
		if err := itemRepo.DeleteByInventario(id); err != nil {
			return err
		}
		return invRepo.Delete(id)
	})
}
