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

	"github.com/bnsant/estoque-api/internal/application/auth"
	"github.com/bnsant/estoque-api/internal/application/estoque"
	"github.com/bnsant/estoque-api/internal/application/usecase"
	"github.com/bnsant/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/bnsant/estoque-api/internal/interfaces/http"
	"github.com/bnsant/estoque-api/pkg/config"
	"github.com/bnsant/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	produtoRepo := postgres.NewProdutoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registrarMovimentacaoUC := estoque.NewRegistrarMovimentacaoUseCase(txRunner, log)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	relatorioUC := usecase.NewRelatorioUseCase(relatorioRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProdutoUC:     produtoUC,
		CategoriaUC:   categoriaUC,
		RelatorioUC:   relatorioUC,
		Registrador:   registrarMovimentacaoUC,
		Movimentacoes: movRepo,
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

	log.Info().Msg("encerrando aplicação")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown do servidor HTTP")
	}
}
