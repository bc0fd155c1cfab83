package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"moneyapi/internal/event"
	"moneyapi/internal/model"
	"moneyapi/internal/repository"
)

// codigoParam parses the :codigo path parameter.
func codigoParam(c *fiber.Ctx) (int64, bool) {
	codigo, err := strconv.ParseInt(c.Params("codigo"), 10, 64)
	if err != nil || codigo <= 0 {
		return 0, false
	}
	return codigo, true
}

// ListCategorias godoc
// @Summary List categories
// @Tags categorias
// @Produce json
// @Success 200 {array} model.Categoria
// @Router /categorias [get]
func ListCategorias(repo repository.CategoriaRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categorias, err := repo.FindAll(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(categorias)
	}
}

// CreateCategoria godoc
// @Summary Create a category
// @Tags categorias
// @Accept json
// @Produce json
// @Param categoria body model.Categoria true "category"
// @Success 201 {object} model.Categoria
// @Failure 400 {object} errorPayload
// @Router /categorias [post]
func CreateCategoria(repo repository.CategoriaRepository, events *event.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Categoria
		if ok, err := parseBody(c, &in); !ok {
			return err
		}

		saved, err := repo.Save(c.UserContext(), &in)
		if err != nil {
			return err
		}

		events.Publish(event.ResourceCreated{Ctx: c, Codigo: saved.Codigo})
		return c.Status(fiber.StatusCreated).JSON(saved)
	}
}

// GetCategoria godoc
// @Summary Fetch a category
// @Tags categorias
// @Produce json
// @Param codigo path int true "category id"
// @Success 200 {object} model.Categoria
// @Failure 404
// @Router /categorias/{codigo} [get]
func GetCategoria(repo repository.CategoriaRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		codigo, ok := codigoParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		categoria, err := repo.FindByID(c.UserContext(), codigo)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return notFound(c)
			}
			return err
		}
		return c.JSON(categoria)
	}
}
