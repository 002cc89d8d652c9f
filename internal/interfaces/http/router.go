package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bnsant/estoque-api/internal/application/auth"
	"github.com/bnsant/estoque-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ProdutoUC     *usecase.ProdutoUseCase
	CategoriaUC   *usecase.CategoriaUseCase
	RelatorioUC   *usecase.RelatorioUseCase
	Registrador   RegistradorMovimentacao
	Movimentacoes ListadorMovimentacao
	AuthUC        *auth.AuthUseCase
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

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Post("/reajuste-precos", produtoHandler.ReajustarPrecos)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/categorias", produtoHandler.ListarCategorias)
	produtos.Get("/nome/:nome", produtoHandler.BuscarPorNome)
	produtos.Get("/:id", produtoHandler.BuscarPorID)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Patch("/:id/preco", produtoHandler.AtualizarPreco)
	produtos.Delete("/:id", produtoHandler.Excluir)

	// Categorias
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Criar)
	categorias.Get("/", categoriaHandler.Listar)
	categorias.Get("/:id", categoriaHandler.BuscarPorID)
	categorias.Put("/:id", categoriaHandler.Atualizar)
	categorias.Delete("/:id", categoriaHandler.Excluir)

	// Movimentações (livro append-only: só POST e leitura)
	movGroup := protected.Group("/movimentacoes")
	movHandler := NewMovimentacaoHandler(deps.Registrador, deps.Movimentacoes)
	movGroup.Post("/", movHandler.Registrar)
	movGroup.Get("/", movHandler.Listar)
	movGroup.Get("/produto/:id", movHandler.ListarPorProduto)

	// Relatórios
	relGroup := protected.Group("/relatorios")
	relHandler := NewRelatorioHandler(deps.RelatorioUC, deps.ProdutoUC)
	relGroup.Get("/valor-total", relHandler.ValorTotal)
	relGroup.Get("/contagem-categorias", relHandler.ContagemCategorias)
	relGroup.Get("/estoque-baixo", relHandler.EstoqueBaixo)
	relGroup.Get("/mais-movimentado", relHandler.MaisMovimentado)
}
