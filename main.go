package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"hr-screening-bot/config"
	apiv1 "hr-screening-bot/controllers/v1"
	publicapi "hr-screening-bot/controllers/v1/public"
	_ "hr-screening-bot/docs"
	"hr-screening-bot/fiberlog"
	"hr-screening-bot/initializers"
	"hr-screening-bot/lib/ws"
)

// @title HR Screening Bot API
// @version 1.0
// @description Сервис первичного скрининга кандидатов: анкета, технические вопросы по стеку, итог для рекрутёра
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//кандидатский контур
	public := fiber.New()
	apiV1.Mount("/public", public)
	publicapi.InitPublicScreeningApiRouters(public)

	//админка
	adminPanel := fiber.New()
	apiV1.Mount("/admin_panel", adminPanel)
	apiv1.InitInterviewApiRouters(adminPanel)

	//websocket чат
	wsApp := fiber.New()
	app.Mount("/ws/screening", wsApp)
	ws.InitWs(wsApp)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
