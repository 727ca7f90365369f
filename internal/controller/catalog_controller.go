package controller

import (
	"project-composer-be/internal/pkg/serverutils"
	"project-composer-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	GetCatalog(ctx *fiber.Ctx) error
	GetRoadmap(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{service: catalogService}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("", c.GetCatalog)
	h.Get("/roadmap", c.GetRoadmap)
}

func (c *catalogController) GetCatalog(ctx *fiber.Ctx) error {
	query := ctx.Query("q")

	res, err := c.service.GetCatalog(ctx.Context(), query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Template catalog", res))
}

func (c *catalogController) GetRoadmap(ctx *fiber.Ctx) error {
	res, err := c.service.GetRoadmap(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Implementation roadmap", res))
}
