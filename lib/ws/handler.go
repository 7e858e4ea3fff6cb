package ws

import (
	wsclient "hr-screening-bot/lib/ws/client"
	connectionhub "hr-screening-bot/lib/ws/hub/connection-hub"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		return ctx.Next()
	})
	app.Get("/:id", websocket.New(chatHandler))
}

// @Summary Чат скрининга
// @Tags Websocket Чат скрининга
// @Description Диалог с ботом по открытой сессии скрининга
// @Param   id		path		string		true		"ID сессии"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 500
// @router /ws/screening/{id} [get]
func chatHandler(c *websocket.Conn) {
	sessionID := c.Params("id")
	client := wsclient.NewClient(sessionID, c)
	connectionhub.Instance.AddClient(sessionID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(sessionID)
	}()
	client.Dispatch()
}
