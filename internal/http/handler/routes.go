package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"moneyapi/internal/auth"
	"moneyapi/internal/config"
	"moneyapi/internal/event"
	"moneyapi/internal/repository"
	"moneyapi/internal/service"
)

// MetricsPath serves the Prometheus exposition.
const MetricsPath = "/metrics"

const (
	roleCadastrarCategoria  = "ROLE_CADASTRAR_CATEGORIA"
	rolePesquisarCategoria  = "ROLE_PESQUISAR_CATEGORIA"
	roleCadastrarLancamento = "ROLE_CADASTRAR_LANCAMENTO"
	rolePesquisarLancamento = "ROLE_PESQUISAR_LANCAMENTO"
	roleRemoverLancamento   = "ROLE_REMOVER_LANCAMENTO"

	scopeRead  = "read"
	scopeWrite = "write"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	DB          *sql.DB
	Categorias  repository.CategoriaRepository
	Lancamentos repository.LancamentoRepository
	Service     service.LancamentoService
	Events      *event.Publisher
	Guard       *auth.Guard
	Security    config.SecurityConfig
	ContextPath string
	Gatherer    prometheus.Gatherer
	Clock       Clock
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Operational
// endpoints live at the root, the API under ContextPath.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Guard == nil {
		d.Guard = auth.NewGuard("")
	}
	if d.Events == nil {
		d.Events = event.NewPublisher()
	}

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	var api fiber.Router = app
	if d.ContextPath != "" {
		api = app.Group(d.ContextPath)
	}
	g := d.Guard

	categorias := api.Group("/categorias")
	categorias.Get("/", g.Require(rolePesquisarCategoria), ListCategorias(d.Categorias))
	categorias.Post("/", g.Require(roleCadastrarCategoria), CreateCategoria(d.Categorias, d.Events))
	categorias.Get("/:codigo", g.Require(rolePesquisarCategoria), GetCategoria(d.Categorias))

	lancamentos := api.Group("/lancamentos")
	lancamentos.Post("/anexo", g.Require(roleCadastrarLancamento, scopeWrite), UploadAnexo(d.Service))
	lancamentos.Get("/relatorios/por-pessoa", g.Require(rolePesquisarLancamento, scopeRead), RelatorioPorPessoa(d.Service))
	lancamentos.Get("/estatisticas/por-categoria", g.Require(rolePesquisarLancamento, scopeRead), EstatisticasPorCategoria(d.Lancamentos, d.Clock))
	lancamentos.Get("/estatisticas/por-dia", g.Require(rolePesquisarLancamento, scopeRead), EstatisticasPorDia(d.Lancamentos, d.Clock))
	lancamentos.Get("/", searchGuard(g), SearchLancamentos(d.Lancamentos))
	lancamentos.Get("/:codigo", g.Require(rolePesquisarLancamento, scopeRead), GetLancamento(d.Service))
	lancamentos.Post("/", g.Require(roleCadastrarLancamento), CreateLancamento(d.Service, d.Events))
	lancamentos.Put("/:codigo", g.Require(roleCadastrarLancamento), UpdateLancamento(d.Service))
	lancamentos.Delete("/:codigo", g.Require(roleRemoverLancamento, scopeWrite), DeleteLancamento(d.Lancamentos))

	tokens := api.Group("/tokens")
	tokens.Delete("/revoke", RevokeToken(d.Security, d.ContextPath))
}

// searchGuard applies the read scope to full searches only; the summary
// projection needs just the authority.
func searchGuard(g *auth.Guard) fiber.Handler {
	full := g.Require(rolePesquisarLancamento, scopeRead)
	resumo := g.Require(rolePesquisarLancamento)
	return func(c *fiber.Ctx) error {
		if isResumo(c) {
			return resumo(c)
		}
		return full(c)
	}
}
