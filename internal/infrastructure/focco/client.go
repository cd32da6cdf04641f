package focco

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"
	"github.com/olivarmoveis/contagem-api/internal/application/contagem"
	"github.com/olivarmoveis/contagem-api/internal/application/estoque"
	"github.com/olivarmoveis/contagem-api/internal/domain"
	"github.com/olivarmoveis/contagem-api/pkg/logger"
)

var _ contagem.CodigoBarrasResolver = (*Client)(nil)
var _ estoque.FeedEstoque = (*Client)(nil)

// Config parâmetros do integrador Focco ERP.
type Config struct {
	BaseURL   string
	Token     string
	Chave     string
	CacheSize int
	Timeout   time.Duration
	// HTTPClient opcional, para injeção em testes.
	HTTPClient *http.Client
}

// Client consome a API de exportação do Focco ERP: resolução de etiquetas
// por código de barras e feed completo de estoque. Mantém um cache LRU de
// capacidade fixa por instância (nada de estado global de processo), com
// invalidação manual no caminho de retry.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	chave   string
	cache   *lru.Cache[string, *contagem.EtiquetaResolvida]
	log     *logger.Logger
}

// NewClient constrói o cliente. CacheSize <= 0 usa 512.
func NewClient(cfg Config, log *logger.Logger) (*Client, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = 512
	}
	cache, err := lru.New[string, *contagem.EtiquetaResolvida](size)
	if err != nil {
		return nil, fmt.Errorf("criar cache de etiquetas: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		http:    httpClient,
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		chave:   cfg.Chave,
		cache:   cache,
		log:     log,
	}, nil
}

// LimparCache esvazia o cache de etiquetas (para testes).
func (c *Client) LimparCache() {
	c.cache.Purge()
}

// ResolverCodigoBarras resolve um código de barras no catálogo do ERP,
// servindo do cache quando possível. Em não-encontrado a entrada é
// invalidada e a consulta repetida exatamente uma vez antes de devolver
// ErrCodigoNaoEncontrado: um registro corrigido no ERP entre as tentativas
// resolve envenenamento transitório do cache.
func (c *Client) ResolverCodigoBarras(ctx context.Context, codigo string) (*contagem.EtiquetaResolvida, error) {
	if et, ok := c.cache.Get(codigo); ok {
		return et, nil
	}

	et, err := c.buscarEtiqueta(ctx, codigo)
	if errors.Is(err, domain.ErrCodigoNaoEncontrado) {
		c.cache.Remove(codigo)
		et, err = c.buscarEtiqueta(ctx, codigo)
	}
	if err != nil {
		return nil, err
	}
	c.cache.Add(codigo, et)
	return et, nil
}

// etiquetaDTO linha da resposta de dados_etiquetas.
type etiquetaDTO struct {
	CodEmp      int              `json:"cod_emp"`
	EtiqID      int64            `json:"etiq_id"`
	CodBarraOrd string           `json:"cod_barra_ord"`
	CodItem     string           `json:"cod_item"`
	DescTecnica string           `json:"desc_tecnica"`
	Mascara     string           `json:"mascara"`
	TmascItemID int64            `json:"tmasc_item_id"`
	Qtde        *decimal.Decimal `json:"qtde"`
}

func (c *Client) buscarEtiqueta(ctx context.Context, codigo string) (*contagem.EtiquetaResolvida, error) {
	params := url.Values{}
	params.Set("Chave", c.chave)
	params.Set("CodBarra", codigo)

	var payload struct {
		Value []etiquetaDTO `json:"value"`
	}
	if err := c.get(ctx, "dados_etiquetas", params, &payload); err != nil {
		return nil, err
	}
	for _, e := range payload.Value {
		if e.CodBarraOrd == codigo {
			return &contagem.EtiquetaResolvida{
				CodEmp:      e.CodEmp,
				EtiqID:      e.EtiqID,
				CodBarraOrd: e.CodBarraOrd,
				CodItem:     e.CodItem,
				DescTecnica: e.DescTecnica,
				Mascara:     e.Mascara,
				TmascItemID: e.TmascItemID,
				Qtde:        e.Qtde,
			}, nil
		}
	}
	return nil, domain.ErrCodigoNaoEncontrado
}

// registroEstoqueDTO linha da resposta de dados_estoque. A quantidade pode
// vir em `qtde` ou, em extrações antigas, em `saldo`; ausentes as duas,
// vale zero. Valores fracionários são truncados para inteiro.
type registroEstoqueDTO struct {
	CodEmp      int      `json:"cod_emp"`
	CodItem     string   `json:"cod_item"`
	Mascara     string   `json:"mascara"`
	TmascItemID int64    `json:"tmasc_item_id"`
	DescTecnica string   `json:"desc_tecnica"`
	Qtde        *float64 `json:"qtde"`
	Saldo       *float64 `json:"saldo"`
}

func (r registroEstoqueDTO) quantidade() int64 {
	if r.Qtde != nil {
		return int64(*r.Qtde)
	}
	if r.Saldo != nil {
		return int64(*r.Saldo)
	}
	return 0
}

// BuscarEstoque baixa o feed completo de estoque do ERP.
func (c *Client) BuscarEstoque(ctx context.Context) ([]estoque.RegistroFeed, error) {
	params := url.Values{}
	params.Set("Chave", c.chave)

	var payload struct {
		Value []registroEstoqueDTO `json:"value"`
	}
	if err := c.get(ctx, "dados_estoque", params, &payload); err != nil {
		return nil, err
	}

	registros := make([]estoque.RegistroFeed, 0, len(payload.Value))
	for _, linha := range payload.Value {
		registros = append(registros, estoque.RegistroFeed{
			CodEmp:      linha.CodEmp,
			CodItem:     linha.CodItem,
			Mascara:     linha.Mascara,
			TmascItemID: linha.TmascItemID,
			Quantidade:  linha.quantidade(),
			DescTecnica: linha.DescTecnica,
		})
	}
	return registros, nil
}

// get executa GET {base}/api/v1/Exportacao/{endpoint}?{params} com Bearer
// token e decodifica o JSON em out. Transporte ou status não-2xx viram
// domain.ErrUpstream embrulhado com detalhe para diagnóstico.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := fmt.Sprintf("%s/api/v1/Exportacao/%s?%s", c.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: montar request %s: %v", domain.ErrUpstream, endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrUpstream, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Error().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("resposta não-2xx do ERP")
		return fmt.Errorf("%w: %s retornou %d: %s", domain.ErrUpstream, endpoint, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar %s: %v", domain.ErrUpstream, endpoint, err)
	}
	return nil
}
