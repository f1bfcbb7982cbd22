package controller

import (
	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/pkg/serverutils"
	"matchmaker-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISwipeController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Swipe(ctx *fiber.Ctx) error
}

type swipeController struct {
	swipeService service.ISwipeService
}

func NewSwipeController(swipeService service.ISwipeService) ISwipeController {
	return &swipeController{
		swipeService: swipeService,
	}
}

func (c *swipeController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Post("/swipe", auth, c.Swipe)
}

func (c *swipeController) Swipe(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.SwipeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &dto.ValidationError{Reason: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.swipeService.Swipe(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	message := "Swipe recorded"
	if res.IsMatch {
		message = "It's a match"
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}
