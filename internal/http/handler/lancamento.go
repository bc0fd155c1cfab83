package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"moneyapi/internal/event"
	"moneyapi/internal/model"
	"moneyapi/internal/repository"
	"moneyapi/internal/service"
)

// Clock returns the current time. Statistics are anchored at its month.
type Clock func() time.Time

const anexoField = "anexo"

// dateQuery parses an optional yyyy-MM-dd query parameter.
func dateQuery(c *fiber.Ctx, key string) (*model.Date, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := model.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func filterQuery(c *fiber.Ctx) (model.LancamentoFilter, error) {
	de, err := dateQuery(c, "dataVencimentoDe")
	if err != nil {
		return model.LancamentoFilter{}, err
	}
	ate, err := dateQuery(c, "dataVencimentoAte")
	if err != nil {
		return model.LancamentoFilter{}, err
	}
	return model.LancamentoFilter{
		Descricao:         c.Query("descricao"),
		DataVencimentoDe:  de,
		DataVencimentoAte: ate,
		CodigoCategoria:   int64(c.QueryInt("codigoCategoria", 0)),
	}, nil
}

func pageQuery(c *fiber.Ctx) repository.PageQuery {
	return repository.NewPageQuery(c.QueryInt("page", 0), c.QueryInt("size", repository.DefaultPageSize))
}

// UploadAnexo godoc
// @Summary Upload an entry attachment
// @Description Stores a temporary file; it becomes permanent when an entry references it.
// @Tags lancamentos
// @Accept mpfd
// @Produce json
// @Param anexo formData file true "attachment"
// @Success 200 {object} model.Anexo
// @Failure 400 {object} errorPayload
// @Router /lancamentos/anexo [post]
func UploadAnexo(svc service.LancamentoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile(anexoField)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		anexo, err := svc.UploadAnexo(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return err
		}
		return c.JSON(anexo)
	}
}

// RelatorioPorPessoa godoc
// @Summary Per-person report
// @Tags lancamentos
// @Produce application/pdf
// @Param inicio query string true "first day (yyyy-MM-dd)"
// @Param fim query string true "last day (yyyy-MM-dd)"
// @Success 200 {file} binary
// @Failure 400 {object} errorPayload
// @Router /lancamentos/relatorios/por-pessoa [get]
func RelatorioPorPessoa(svc service.LancamentoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio, errInicio := dateQuery(c, "inicio")
		fim, errFim := dateQuery(c, "fim")
		if errInicio != nil || errFim != nil || inicio == nil || fim == nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "inicio and fim must be dates in yyyy-MM-dd format")
		}

		pdf, err := svc.RelatorioPorPessoa(c.UserContext(), *inicio, *fim)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send(pdf)
	}
}

// EstatisticasPorCategoria godoc
// @Summary Current month totals per category
// @Tags lancamentos
// @Produce json
// @Success 200 {array} model.LancamentoEstatisticaCategoria
// @Router /lancamentos/estatisticas/por-categoria [get]
func EstatisticasPorCategoria(repo repository.LancamentoRepository, now Clock) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := repo.StatsByCategoria(c.UserContext(), model.DateOf(now()))
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}
}

// EstatisticasPorDia godoc
// @Summary Current month totals per type and day
// @Tags lancamentos
// @Produce json
// @Success 200 {array} model.LancamentoEstatisticaDia
// @Router /lancamentos/estatisticas/por-dia [get]
func EstatisticasPorDia(repo repository.LancamentoRepository, now Clock) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := repo.StatsByDia(c.UserContext(), model.DateOf(now()))
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}
}

// SearchLancamentos godoc
// @Summary Search entries
// @Description With the resumo query parameter the summary projection is returned.
// @Tags lancamentos
// @Produce json
// @Param descricao query string false "description contains"
// @Param dataVencimentoDe query string false "due on or after (yyyy-MM-dd)"
// @Param dataVencimentoAte query string false "due on or before (yyyy-MM-dd)"
// @Param page query int false "zero-based page"
// @Param size query int false "page size"
// @Param resumo query string false "summary projection"
// @Success 200 {object} repository.Page[model.Lancamento]
// @Failure 400 {object} errorPayload
// @Router /lancamentos [get]
func SearchLancamentos(repo repository.LancamentoRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := filterQuery(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "dates must be in yyyy-MM-dd format")
		}
		pq := pageQuery(c)

		if isResumo(c) {
			res, err := repo.Summarize(c.UserContext(), f, pq)
			if err != nil {
				return err
			}
			return c.JSON(repository.NewPage(res, pq))
		}

		res, err := repo.Filter(c.UserContext(), f, pq)
		if err != nil {
			return err
		}
		return c.JSON(repository.NewPage(res, pq))
	}
}

func isResumo(c *fiber.Ctx) bool {
	return c.Context().QueryArgs().Has("resumo")
}

// GetLancamento godoc
// @Summary Fetch an entry
// @Tags lancamentos
// @Produce json
// @Param codigo path int true "entry id"
// @Success 200 {object} model.Lancamento
// @Failure 404
// @Router /lancamentos/{codigo} [get]
func GetLancamento(svc service.LancamentoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codigo, ok := codigoParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		l, err := svc.Buscar(c.UserContext(), codigo)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c)
			}
			return err
		}
		return c.JSON(l)
	}
}

// CreateLancamento godoc
// @Summary Create an entry
// @Tags lancamentos
// @Accept json
// @Produce json
// @Param lancamento body model.Lancamento true "entry"
// @Success 201 {object} model.Lancamento
// @Failure 400 {object} errorPayload
// @Router /lancamentos [post]
func CreateLancamento(svc service.LancamentoService, events *event.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Lancamento
		if ok, err := parseBody(c, &in); !ok {
			return err
		}

		saved, err := svc.Salvar(c.UserContext(), &in)
		if err != nil {
			return businessError(c, err)
		}

		events.Publish(event.ResourceCreated{Ctx: c, Codigo: saved.Codigo})
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// DeleteLancamento godoc
// @Summary Delete an entry
// @Description Answers 204 whether or not the entry existed.
// @Tags lancamentos
// @Param codigo path int true "entry id"
// @Success 204
// @Router /lancamentos/{codigo} [delete]
func DeleteLancamento(repo repository.LancamentoRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codigo, ok := codigoParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := repo.Delete(c.UserContext(), codigo); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpdateLancamento godoc
// @Summary Update an entry
// @Tags lancamentos
// @Accept json
// @Produce json
// @Param codigo path int true "entry id"
// @Param lancamento body model.Lancamento true "entry"
// @Success 200 {object} model.Lancamento
// @Failure 400 {object} errorPayload
// @Failure 404
// @Router /lancamentos/{codigo} [put]
func UpdateLancamento(svc service.LancamentoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codigo, ok := codigoParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.Lancamento
		if ok, err := parseBody(c, &in); !ok {
			return err
		}

		updated, err := svc.Atualizar(c.UserContext(), codigo, &in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidArgument) {
				return notFound(c)
			}
			return businessError(c, err)
		}
		return c.JSON(updated)
	}
}
