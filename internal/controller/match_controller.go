package controller

import (
	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/mapper"
	"matchmaker-be/internal/pkg/serverutils"
	"matchmaker-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMatchController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
}

type matchController struct {
	matchService service.IMatchService
	chatService  service.IChatService
}

func NewMatchController(matchService service.IMatchService, chatService service.IChatService) IMatchController {
	return &matchController{
		matchService: matchService,
		chatService:  chatService,
	}
}

func (c *matchController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/matches", auth)
	h.Get("", c.List)
	h.Get("/:matchId/messages", c.History)
	h.Post("/:matchId/messages", c.Send)
}

func (c *matchController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.matchService.ListMatches(ctx.UserContext(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list matches", res))
}

func (c *matchController) History(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	matchId, err := matchIdParam(ctx)
	if err != nil {
		return err
	}

	page := dto.MessageHistoryQuery{
		Limit:  ctx.QueryInt("limit", 0),
		Offset: ctx.QueryInt("offset", 0),
	}

	messages, err := c.chatService.History(ctx.UserContext(), matchId, userId, page)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get messages", mapper.ToMessageResponses(messages)))
}

func (c *matchController) Send(ctx *fiber.Ctx) error {
	userId, err := serverutils.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	matchId, err := matchIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return &dto.ValidationError{Reason: "invalid request body"}
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	message, err := c.chatService.Send(ctx.UserContext(), matchId, userId, req.Content)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message sent", mapper.ToMessageResponse(message)))
}

func matchIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	matchId, err := uuid.Parse(ctx.Params("matchId"))
	if err != nil {
		return uuid.Nil, &dto.ValidationError{Field: "matchId", Reason: "invalid match id"}
	}
	return matchId, nil
}
