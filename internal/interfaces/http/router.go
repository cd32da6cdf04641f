package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/olivarmoveis/contagem-api/internal/application/auth"
	appcomp "github.com/olivarmoveis/contagem-api/internal/application/comparativo"
	"github.com/olivarmoveis/contagem-api/internal/application/contagem"
	"github.com/olivarmoveis/contagem-api/internal/application/estoque"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ContagemUC    *contagem.UseCase
	LeituraUC     *contagem.RegistrarLeituraUseCase
	ComparativoUC *appcomp.UseCase
	SincronizarUC *estoque.SincronizarUseCase
	Resolver      contagem.CodigoBarrasResolver
	AuthUC        *auth.UseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Inventários e leituras
	inventarios := protected.Group("/inventarios")
	inventarioHandler := NewInventarioHandler(deps.ContagemUC, deps.LeituraUC)
	inventarios.Post("/", inventarioHandler.Criar)
	inventarios.Get("/", inventarioHandler.Listar)
	inventarios.Put("/:id/fechar", inventarioHandler.Fechar)
	inventarios.Delete("/:id", inventarioHandler.Deletar)
	inventarios.Post("/:id/itens", inventarioHandler.RegistrarLeitura)
	inventarios.Get("/:id/itens", inventarioHandler.ListarLeituras)

	// Comparativo e exportação
	comparativoHandler := NewComparativoHandler(deps.ComparativoUC)
	inventarios.Get("/:id/comparativo", comparativoHandler.Gerar)
	inventarios.Get("/:id/comparativo/exportar", comparativoHandler.Exportar)

	// Estoque
	estoqueGroup := protected.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.SincronizarUC)
	estoqueGroup.Post("/sincronizar", estoqueHandler.Sincronizar)

	// Catálogo (pré-validação do coletor)
	catalogoHandler := NewCatalogoHandler(deps.Resolver)
	protected.Get("/validar-codigo-barras", catalogoHandler.ValidarCodigoBarras)
}
