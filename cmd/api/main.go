package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/olivarmoveis/contagem-api/internal/application/auth"
	appcomp "github.com/olivarmoveis/contagem-api/internal/application/comparativo"
	"github.com/olivarmoveis/contagem-api/internal/application/contagem"
	"github.com/olivarmoveis/contagem-api/internal/application/estoque"
	"github.com/olivarmoveis/contagem-api/internal/infrastructure/excel"
	"github.com/olivarmoveis/contagem-api/internal/infrastructure/focco"
	"github.com/olivarmoveis/contagem-api/internal/infrastructure/postgres"
	httpRouter "github.com/olivarmoveis/contagem-api/internal/interfaces/http"
	"github.com/olivarmoveis/contagem-api/pkg/config"
	"github.com/olivarmoveis/contagem-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	invRepo := postgres.NewInventarioRepository(pool)
	itemRepo := postgres.NewItemInventarioRepository(pool)
	estoqueRepo := postgres.NewEstoqueRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	foccoClient, err := focco.NewClient(focco.Config{
		BaseURL:   cfg.Focco.BaseURL,
		Token:     cfg.Focco.Token,
		Chave:     cfg.Focco.Chave,
		CacheSize: cfg.Focco.CacheSize,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente Focco")
	}

	contagemUC := contagem.NewUseCase(invRepo, txRunner)
	leituraUC := contagem.NewRegistrarLeituraUseCase(invRepo, itemRepo, foccoClient)
	sincronizarUC := estoque.NewSincronizarUseCase(foccoClient, estoqueRepo, log)
	comparativoUC := appcomp.NewUseCase(invRepo, itemRepo, estoqueRepo, excel.NewComparativoExporter())
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Contagem de Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ContagemUC:    contagemUC,
		LeituraUC:     leituraUC,
		ComparativoUC: comparativoUC,
		SincronizarUC: sincronizarUC,
		Resolver:      foccoClient,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
