package publicapi

import (
	"hr-screening-bot/controllers"
	"hr-screening-bot/lib/screening"
	apimodels "hr-screening-bot/models/api"
	screeningapimodels "hr-screening-bot/models/api/screening"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type publicScreeningApiController struct {
	controllers.BaseAPIController
}

func InitPublicScreeningApiRouters(app *fiber.App) {
	controller := publicScreeningApiController{}
	app.Route("screening", func(router fiber.Router) {
		router.Post("", controller.startSession)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Post("message", controller.sendMessage)
			idRoute.Get("progress", controller.getProgress)
		})
	})
}

// @Summary Начало сессии скрининга
// @Tags Скрининг кандидата
// @Description Создание сессии, в ответе приветствие и первый вопрос анкеты
// @Success 200 {object} apimodels.Response{data=screeningapimodels.MessageView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/screening [post]
func (c *publicScreeningApiController) startSession(ctx *fiber.Ctx) error {
	view, err := screening.Instance.StartSession(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сессии скрининга")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Сообщение кандидата
// @Tags Скрининг кандидата
// @Description Один ход диалога, в ответе реплики бота
// @Param   id          		path    string  true         "ID сессии"
// @Param	body body	 screeningapimodels.MessageRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.MessageView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/screening/{id}/message [post]
func (c *publicScreeningApiController) sendMessage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload screeningapimodels.MessageRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := screening.Instance.ProcessMessage(ctx.UserContext(), id, payload.Text)
	if err != nil {
		if errors.Is(err, screening.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		logger := log.WithField("session_id", id)
		return c.SendError(ctx, logger, err, "Ошибка обработки сообщения кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Текущее состояние сессии
// @Tags Скрининг кандидата
// @Description Принятые поля анкеты и заданные вопросы на текущий момент
// @Param   id          		path    string  true         "ID сессии"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.ProgressView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/screening/{id}/progress [get]
func (c *publicScreeningApiController) getProgress(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	view, err := screening.Instance.GetProgress(id)
	if err != nil {
		if errors.Is(err, screening.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		logger := log.WithField("session_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения состояния сессии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
