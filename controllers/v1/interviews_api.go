package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"hr-screening-bot/controllers"
	"hr-screening-bot/db"
	xlsexport "hr-screening-bot/lib/export/xls"
	filestorage "hr-screening-bot/lib/file-storage"
	interviewstore "hr-screening-bot/lib/screening/store"
	apimodels "hr-screening-bot/models/api"
	screeningapimodels "hr-screening-bot/models/api/screening"
)

type interviewApiController struct {
	controllers.BaseAPIController
	store interviewstore.Provider
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{
		store: interviewstore.NewInstance(db.DB),
	}
	app.Route("interviews", func(router fiber.Router) {
		router.Put("list", controller.list)
		router.Put("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getByID)
			idRoute.Get("transcript", controller.transcript)
		})
	})
}

// @Summary Список завершённых скринингов
// @Tags Скрининги
// @Description Список завершённых скринингов, контакты кандидатов маскируются
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]screeningapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/interviews/list [put]
func (c *interviewApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := payload.GetPage()
	list, rowCount, err := c.store.List(page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка скринингов")
	}
	result := make([]screeningapimodels.InterviewView, 0, len(list))
	for _, rec := range list {
		result = append(result, screeningapimodels.ToInterviewView(rec, false))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(result, rowCount))
}

// @Summary Карточка скрининга
// @Tags Скрининги
// @Description Скрининг с вопросами и ответами кандидата
// @Param   id          		path    string  true         "ID скрининга"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/interviews/{id} [get]
func (c *interviewApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	rec, err := c.store.GetByID(id)
	if err != nil {
		logger := log.WithField("interview_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения скрининга")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("скрининг не найден"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(screeningapimodels.ToInterviewView(*rec, true)))
}

// @Summary Выгрузка скринингов в Excel
// @Tags Скрининги
// @Description Выгрузка всех завершённых скринингов в xlsx
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/interviews/export [put]
func (c *interviewApiController) export(ctx *fiber.Ctx) error {
	list, err := c.store.ListAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка скринингов для выгрузки в Excel")
	}
	data, err := xlsexport.Instance.ExportInterviewList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования выгрузки в Excel")
	}
	fileName := fmt.Sprintf("interviews-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Стенограмма скрининга
// @Tags Скрининги
// @Description Полная стенограмма скрининга из архива в формате json
// @Param   id          		path    string  true         "ID скрининга"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin_panel/interviews/{id}/transcript [get]
func (c *interviewApiController) transcript(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if filestorage.Instance == nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("хранилище стенограмм не настроено"))
	}

	data, err := filestorage.Instance.GetTranscript(ctx.UserContext(), id)
	if err != nil {
		logger := log.WithField("interview_id", id)
		return c.SendError(ctx, logger, err, "Ошибка получения стенограммы скрининга")
	}
	ctx.Set("Content-Type", "application/json")
	return ctx.Send(data)
}
