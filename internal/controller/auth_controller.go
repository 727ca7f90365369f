package controller

import (
	"project-composer-be/internal/dto"
	"project-composer-be/internal/pkg/serverutils"
	"project-composer-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SignInAnonymously(ctx *fiber.Ctx) error
	SignInWithToken(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	SignOut(ctx *fiber.Ctx) error
}

type authController struct {
	service     service.IAuthService
	syncService service.ISyncService
}

func NewAuthController(authService service.IAuthService, syncService service.ISyncService) IAuthController {
	return &authController{service: authService, syncService: syncService}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("/anonymous", c.SignInAnonymously)
	h.Post("/token", c.SignInWithToken)

	protected := h.Group("", serverutils.JwtMiddleware)
	protected.Get("/me", c.Me)
	protected.Post("/signout", c.SignOut)
}

func (c *authController) SignInAnonymously(ctx *fiber.Ctx) error {
	res, err := c.service.SignInAnonymously(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Signed in anonymously", res))
}

func (c *authController) SignInWithToken(ctx *fiber.Ctx) error {
	var req dto.TokenSignInRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SignInWithToken(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Signed in", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.service.Me(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

func (c *authController) SignOut(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	c.syncService.Teardown(userId)

	return ctx.JSON(serverutils.SuccessResponse[any]("Signed out", nil))
}
