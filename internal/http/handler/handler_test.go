package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"moneyapi/internal/auth"
	"moneyapi/internal/config"
	"moneyapi/internal/event"
	"moneyapi/internal/model"
	"moneyapi/internal/repository"
	repoMocks "moneyapi/internal/repository/mocks"
	"moneyapi/internal/service"
	serviceMocks "moneyapi/internal/service/mocks"
)

type testDeps struct {
	categorias  *repoMocks.MockCategoriaRepository
	lancamentos *repoMocks.MockLancamentoRepository
	svc         *serviceMocks.MockLancamentoService
}

func newTestApp(t *testing.T, guard *auth.Guard, contextPath string) (*fiber.App, testDeps) {
	t.Helper()
	logger, _ := test.NewNullLogger()

	deps := testDeps{
		categorias:  new(repoMocks.MockCategoriaRepository),
		lancamentos: new(repoMocks.MockLancamentoRepository),
		svc:         new(serviceMocks.MockLancamentoService),
	}
	events := event.NewPublisher()
	events.Subscribe(event.SetLocation)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	RegisterRoutes(app, Dependencies{
		Categorias:  deps.categorias,
		Lancamentos: deps.lancamentos,
		Service:     deps.svc,
		Events:      events,
		Guard:       guard,
		ContextPath: contextPath,
		Clock:       func() time.Time { return time.Date(2017, time.June, 15, 10, 0, 0, 0, time.UTC) },
	})
	return app, deps
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return b
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCategorias(t *testing.T) {
	app, deps := newTestApp(t, nil, "")

	t.Run("list", func(t *testing.T) {
		deps.categorias.On("FindAll", mock.Anything).Return([]model.Categoria{{Codigo: 1, Nome: "Lazer"}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/categorias", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result []model.Categoria
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, []model.Categoria{{Codigo: 1, Nome: "Lazer"}}, result)
	})

	t.Run("create", func(t *testing.T) {
		deps.categorias.On("Save", mock.Anything, &model.Categoria{Nome: "Lazer"}).
			Return(&model.Categoria{Codigo: 6, Nome: "Lazer"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/categorias", `{"nome":"Lazer"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.True(t, strings.HasSuffix(resp.Header.Get("Location"), "/categorias/6"), resp.Header.Get("Location"))
		var result model.Categoria
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, model.Categoria{Codigo: 6, Nome: "Lazer"}, result)
	})

	t.Run("create with short name", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/categorias", `{"nome":"ab"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
		require.Len(t, res.Error.Fields, 1)
		assert.Equal(t, "nome", res.Error.Fields[0].Field)
	})

	t.Run("create with malformed body", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/categorias", `{"nome":`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("get", func(t *testing.T) {
		deps.categorias.On("FindByID", mock.Anything, int64(1)).Return(&model.Categoria{Codigo: 1, Nome: "Lazer"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/categorias/1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("get absent", func(t *testing.T) {
		deps.categorias.On("FindByID", mock.Anything, int64(9999)).Return(nil, repository.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/categorias/9999", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, readBody(t, resp))
	})

	t.Run("get invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/categorias/abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("repository error", func(t *testing.T) {
		deps.categorias.On("FindAll", mock.Anything).Return(nil, errors.New("db down")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/categorias", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		assert.NotContains(t, res.Error.Message, "db down")
	})

	deps.categorias.AssertExpectations(t)
}

const lancamentoJSON = `{
	"descricao": "Salário mensal",
	"dataVencimento": "2017-06-10",
	"valor": 6500.00,
	"tipo": "RECEITA",
	"categoria": {"codigo": 1},
	"pessoa": {"codigo": 1}
}`

func TestLancamentos_CRUD(t *testing.T) {
	app, deps := newTestApp(t, nil, "")
	isLancamento := mock.AnythingOfType("*model.Lancamento")

	t.Run("create", func(t *testing.T) {
		deps.svc.On("Salvar", mock.Anything, mock.MatchedBy(func(l *model.Lancamento) bool {
			return l.Descricao == "Salário mensal" &&
				l.Valor.Equal(decimal.NewFromInt(6500)) &&
				l.DataVencimento.Equal(model.NewDate(2017, time.June, 10).Time)
		})).Return(&model.Lancamento{Codigo: 42, Descricao: "Salário mensal"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/lancamentos", lancamentoJSON))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.True(t, strings.HasSuffix(resp.Header.Get("Location"), "/lancamentos/42"))
		var result model.Lancamento
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, int64(42), result.Codigo)
	})

	t.Run("create with inactive pessoa", func(t *testing.T) {
		deps.svc.On("Salvar", mock.Anything, isLancamento).Return(nil, service.ErrPessoaInexistenteOuInativa).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/lancamentos", lancamentoJSON))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "PESSOA_INEXISTENTE_OU_INATIVA", decodeError(t, resp).Error.Code)
		assert.Empty(t, resp.Header.Get("Location"))
	})

	t.Run("create with unknown categoria", func(t *testing.T) {
		deps.svc.On("Salvar", mock.Anything, isLancamento).Return(nil, repository.ErrInvalidReference).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/lancamentos", lancamentoJSON))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_REFERENCE", decodeError(t, resp).Error.Code)
	})

	t.Run("create without required fields", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/lancamentos", `{"descricao":"x"}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
		assert.NotEmpty(t, res.Error.Fields)
	})

	t.Run("get with attachment url", func(t *testing.T) {
		deps.svc.On("Buscar", mock.Anything, int64(3)).
			Return(&model.Lancamento{Codigo: 3, Anexo: "a_b.pdf", URLAnexo: "https://s3/a_b.pdf"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/lancamentos/3", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "https://s3/a_b.pdf", body["urlAnexo"])
	})

	t.Run("get absent", func(t *testing.T) {
		deps.svc.On("Buscar", mock.Anything, int64(9999)).Return(nil, repository.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/lancamentos/9999", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, readBody(t, resp))
	})

	t.Run("update", func(t *testing.T) {
		deps.svc.On("Atualizar", mock.Anything, int64(3), isLancamento).Return(&model.Lancamento{Codigo: 3}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/lancamentos/3", lancamentoJSON))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("update absent", func(t *testing.T) {
		deps.svc.On("Atualizar", mock.Anything, int64(9999), isLancamento).Return(nil, service.ErrInvalidArgument).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/lancamentos/9999", lancamentoJSON))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, readBody(t, resp))
	})

	t.Run("delete", func(t *testing.T) {
		deps.lancamentos.On("Delete", mock.Anything, int64(9999)).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/lancamentos/9999", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("delete invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/lancamentos/-1", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	deps.svc.AssertExpectations(t)
	deps.lancamentos.AssertExpectations(t)
}

func TestLancamentos_Search(t *testing.T) {
	app, deps := newTestApp(t, nil, "")

	t.Run("full projection", func(t *testing.T) {
		de := model.NewDate(2017, time.June, 1)
		wantFilter := model.LancamentoFilter{Descricao: "sal", DataVencimentoDe: &de}
		deps.lancamentos.On("Filter", mock.Anything, wantFilter, repository.PageQuery{Page: 1, Size: 5}).
			Return(&repository.PageResult[model.Lancamento]{Items: []model.Lancamento{{Codigo: 1}}, Total: 6}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/lancamentos?descricao=sal&dataVencimentoDe=2017-06-01&page=1&size=5", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var page repository.Page[model.Lancamento]
		json.NewDecoder(resp.Body).Decode(&page)
		assert.Equal(t, 6, page.TotalElements)
		assert.Equal(t, 2, page.TotalPages)
		assert.True(t, page.Last)
	})

	t.Run("summary projection", func(t *testing.T) {
		deps.lancamentos.On("Summarize", mock.Anything, model.LancamentoFilter{}, repository.PageQuery{Page: 0, Size: repository.DefaultPageSize}).
			Return(&repository.PageResult[model.ResumoLancamento]{Items: []model.ResumoLancamento{{Codigo: 1, Categoria: "Lazer"}}, Total: 1}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/lancamentos?resumo", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var page repository.Page[model.ResumoLancamento]
		json.NewDecoder(resp.Body).Decode(&page)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "Lazer", page.Content[0].Categoria)
	})

	t.Run("invalid date", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/lancamentos?dataVencimentoAte=10/06/2017", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_DATE", decodeError(t, resp).Error.Code)
	})

	deps.lancamentos.AssertExpectations(t)
}

func TestLancamentos_Estatisticas(t *testing.T) {
	app, deps := newTestApp(t, nil, "")
	ref := model.NewDate(2017, time.June, 15)

	deps.lancamentos.On("StatsByCategoria", mock.Anything, ref).
		Return([]model.LancamentoEstatisticaCategoria{{Categoria: model.Categoria{Codigo: 1, Nome: "Lazer"}, Total: decimal.NewFromInt(10)}}, nil).Once()
	deps.lancamentos.On("StatsByDia", mock.Anything, ref).
		Return([]model.LancamentoEstatisticaDia{}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/lancamentos/estatisticas/por-categoria", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var porCategoria []map[string]any
	json.NewDecoder(resp.Body).Decode(&porCategoria)
	require.Len(t, porCategoria, 1)
	assert.Equal(t, float64(10), porCategoria[0]["total"])

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/lancamentos/estatisticas/por-dia", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", string(readBody(t, resp)))

	deps.lancamentos.AssertExpectations(t)
}

func TestLancamentos_Relatorio(t *testing.T) {
	app, deps := newTestApp(t, nil, "")

	t.Run("pdf", func(t *testing.T) {
		deps.svc.On("RelatorioPorPessoa", mock.Anything, model.NewDate(2017, time.January, 1), model.NewDate(2017, time.December, 31)).
			Return([]byte("%PDF-1.3 fake"), nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/lancamentos/relatorios/por-pessoa?inicio=2017-01-01&fim=2017-12-31", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, "%PDF-1.3 fake", string(readBody(t, resp)))
	})

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing fim", query: "?inicio=2017-01-01"},
		{name: "malformed inicio", query: "?inicio=01-01-2017&fim=2017-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/lancamentos/relatorios/por-pessoa"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "INVALID_DATE", decodeError(t, resp).Error.Code)
		})
	}

	deps.svc.AssertExpectations(t)
}

func TestUploadAnexo(t *testing.T) {
	app, deps := newTestApp(t, nil, "")

	t.Run("success", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("anexo", "recibo.pdf")
		part.Write([]byte("hello world"))
		writer.Close()

		deps.svc.On("UploadAnexo", mock.Anything, mock.Anything, "recibo.pdf", mock.Anything, int64(11)).
			Return(&model.Anexo{Nome: "uuid_recibo.pdf", URL: "https://s3/uuid_recibo.pdf"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/lancamentos/anexo", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Anexo
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "uuid_recibo.pdf", result.Nome)
		assert.Equal(t, "https://s3/uuid_recibo.pdf", result.URL)
	})

	t.Run("no file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/lancamentos/anexo", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("anexo", "recibo.pdf")
		part.Write([]byte("hello"))
		writer.Close()

		deps.svc.On("UploadAnexo", mock.Anything, mock.Anything, "recibo.pdf", mock.Anything, int64(5)).
			Return(nil, errors.New("upload failed")).Once()

		req := httptest.NewRequest(http.MethodPost, "/lancamentos/anexo", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	deps.svc.AssertExpectations(t)
}

func TestRevokeToken(t *testing.T) {
	tests := []struct {
		name        string
		secure      bool
		contextPath string
		wantPath    string
	}{
		{name: "plain http", wantPath: "/oauth/token"},
		{name: "https behind context path", secure: true, contextPath: "/api", wantPath: "/api/oauth/token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Delete("/tokens/revoke", RevokeToken(config.SecurityConfig{EnableHTTPS: tt.secure}, tt.contextPath))

			req := httptest.NewRequest(http.MethodDelete, "/tokens/revoke", nil)
			req.AddCookie(&http.Cookie{Name: refreshTokenCookie, Value: "abc"})
			resp, _ := app.Test(req)

			assert.Equal(t, http.StatusNoContent, resp.StatusCode)

			var cookie *http.Cookie
			for _, c := range resp.Cookies() {
				if c.Name == refreshTokenCookie {
					cookie = c
				}
			}
			require.NotNil(t, cookie)
			assert.Empty(t, cookie.Value)
			assert.Equal(t, tt.wantPath, cookie.Path)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, tt.secure, cookie.Secure)
			assert.True(t, cookie.Expires.Before(time.Now()))
		})
	}
}

func TestRouting(t *testing.T) {
	app, _ := newTestApp(t, nil, "")

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// health only answers GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})
}

func TestRouting_ContextPath(t *testing.T) {
	app, deps := newTestApp(t, nil, "/api")
	deps.categorias.On("FindAll", mock.Anything).Return([]model.Categoria{}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/categorias", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/categorias", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	deps.categorias.AssertExpectations(t)
}

func TestRouting_Authorization(t *testing.T) {
	const secret = "test-secret"
	app, deps := newTestApp(t, auth.NewGuard(secret), "")

	token := func(scope string, authorities ...string) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"authorities": authorities,
			"scope":       scope,
			"exp":         time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte(secret))
		require.NoError(t, err)
		return "Bearer " + s
	}

	deps.lancamentos.On("Summarize", mock.Anything, mock.Anything, mock.Anything).
		Return(&repository.PageResult[model.ResumoLancamento]{}, nil)
	deps.lancamentos.On("Delete", mock.Anything, int64(1)).Return(nil)

	tests := []struct {
		name   string
		method string
		target string
		auth   string
		want   int
		code   string
	}{
		{name: "no token", method: http.MethodGet, target: "/lancamentos?resumo", want: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "summary needs no scope", method: http.MethodGet, target: "/lancamentos?resumo", auth: token("", "ROLE_PESQUISAR_LANCAMENTO"), want: http.StatusOK},
		{name: "full search needs read", method: http.MethodGet, target: "/lancamentos", auth: token("", "ROLE_PESQUISAR_LANCAMENTO"), want: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "delete needs write", method: http.MethodDelete, target: "/lancamentos/1", auth: token("read", "ROLE_REMOVER_LANCAMENTO"), want: http.StatusForbidden, code: "FORBIDDEN"},
		{name: "delete allowed", method: http.MethodDelete, target: "/lancamentos/1", auth: token("read write", "ROLE_REMOVER_LANCAMENTO"), want: http.StatusNoContent},
		{name: "revoke is public", method: http.MethodDelete, target: "/tokens/revoke", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.auth != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.auth)
			}
			resp, _ := app.Test(req)

			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, resp).Error.Code)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	logger, hook := test.NewNullLogger()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger)})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("request_id", "rid-1")
		return c.Next()
	})
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("pq: connection refused") })

	t.Run("other client errors keep their status", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))

		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "REQUEST_REJECTED", res.Error.Code)
		assert.Equal(t, "rid-1", res.RequestID)
		assert.Nil(t, hook.LastEntry())
	})

	t.Run("internal errors are logged not leaked", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		assert.NotContains(t, res.Error.Message, "connection refused")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "rid-1", entry.Data["request_id"])
		assert.EqualError(t, entry.Data["error"].(error), "pq: connection refused")
	})
}
