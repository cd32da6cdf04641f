package comparativo

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/olivarmoveis/contagem-api/internal/domain/entity"
)

// Status do comparativo por item.
const (
	StatusOK    = "ok"    // quantidade lida bate com o sistema
	StatusFalta = "falta" // lido menos do que consta no sistema
	StatusSobra = "sobra" // lido mais do que consta no sistema
)

// Item é uma linha do comparativo leitura × estoque. Derivado, nunca persistido.
type Item struct {
	CodItem     string          `json:"cod_item"`
	TmascItemID int64           `json:"tmasc_item_id"`
	Mascara     string          `json:"mascara"`
	Descricao   string          `json:"descricao"`
	QtdLida     decimal.Decimal `json:"qtd_lida"`
	QtdSistema  decimal.Decimal `json:"qtd_sistema"`
	Diferenca   decimal.Decimal `json:"diferenca"`
	Status      string          `json:"status"`
}

// chave composta do agrupamento: item + máscara.
type chave struct {
	codItem     string
	tmascItemID int64
}

// Calcular agrupa as leituras por (cod_item, tmasc_item_id), cruza com o
// snapshot de estoque pela mesma chave e calcula a diferença assinada
// (lido − sistema) de cada grupo. Serviço de dominio puro: mesma entrada,
// mesma saída, na mesma ordem.
//
// Regras:
//   - só entram no resultado chaves que foram lidas; estoque nunca lido fica fora
//   - qtd_sistema = 0 quando a chave não existe no snapshot
//   - descrição prefere a do estoque quando presente, senão a da leitura
//   - máscara vem do estoque (vazia quando não há casamento)
//   - ordenação: diferenças ≠ 0 primeiro, depois cod_item crescente
//
// Os campos descritivos do grupo vêm do primeiro item na ordem recebida, por
// isso a ordem de `itens` deve ser estável entre chamadas (o repositório
// ordena por timestamp e id).
func Calcular(itens []*entity.ItemInventario, estoque []*entity.Estoque) []Item {
	grupos := make(map[chave]*Item)
	ordem := make([]chave, 0, len(itens))

	for _, it := range itens {
		k := chave{codItem: it.CodItem, tmascItemID: it.TmascItemID}
		g, ok := grupos[k]
		if !ok {
			g = &Item{
				CodItem:     it.CodItem,
				TmascItemID: it.TmascItemID,
				Descricao:   it.DescTecnica,
				QtdLida:     decimal.Zero,
			}
			grupos[k] = g
			ordem = append(ordem, k)
		}
		g.QtdLida = g.QtdLida.Add(it.Quantidade)
	}

	// Última linha do feed vence em caso de chave duplicada no snapshot.
	porChave := make(map[chave]*entity.Estoque, len(estoque))
	for _, e := range estoque {
		porChave[chave{codItem: e.CodItem, tmascItemID: e.TmascItemID}] = e
	}

	resultado := make([]Item, 0, len(ordem))
	for _, k := range ordem {
		g := grupos[k]
		if e, ok := porChave[k]; ok {
			g.QtdSistema = decimal.NewFromInt(e.Quantidade)
			g.Mascara = e.Mascara
			if e.DescTecnica != "" {
				g.Descricao = e.DescTecnica
			}
		} else {
			g.QtdSistema = decimal.Zero
		}
		g.Diferenca = g.QtdLida.Sub(g.QtdSistema)
		switch {
		case g.Diferenca.IsZero():
			g.Status = StatusOK
		case g.Diferenca.IsNegative():
			g.Status = StatusFalta
		default:
			g.Status = StatusSobra
		}
		resultado = append(resultado, *g)
	}

	// Divergências primeiro para revisão do operador; dentro de cada partição,
	// cod_item crescente com desempate por tmasc_item_id.
	sort.SliceStable(resultado, func(i, j int) bool {
		di, dj := resultado[i].Diferenca.IsZero(), resultado[j].Diferenca.IsZero()
		if di != dj {
			return !di
		}
		if resultado[i].CodItem != resultado[j].CodItem {
			return resultado[i].CodItem < resultado[j].CodItem
		}
		return resultado[i].TmascItemID < resultado[j].TmascItemID
	})
	return resultado
}
