package initializers

import (
	"context"

	"hr-screening-bot/config"
	"hr-screening-bot/fiberlog"
	dadataproxy "hr-screening-bot/lib/dadata"
	csvexport "hr-screening-bot/lib/export/csv"
	xlsexport "hr-screening-bot/lib/export/xls"
	filestorage "hr-screening-bot/lib/file-storage"
	gpthandler "hr-screening-bot/lib/gpt"
	"hr-screening-bot/lib/questions"
	"hr-screening-bot/lib/questions/kb"
	"hr-screening-bot/lib/screening"
	expireworker "hr-screening-bot/lib/screening/expire-worker"
	"hr-screening-bot/lib/utils/lock"
	connectionhub "hr-screening-bot/lib/ws/hub/connection-hub"
	s3client "hr-screening-bot/s3"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	if s3client.Client != nil {
		filestorage.NewInstance(s3client.Client)
	}
	if err := kb.Init(config.Conf.Screening.KBOverlayPath); err != nil {
		log.WithError(err).Error("Ошибка загрузки базы знаний с вопросами")
	}
	lock.InitResourceLock(ctx)
	gpthandler.NewHandler()
	questions.NewHandler()
	dadataproxy.NewHandler()
	csvexport.NewHandler(config.Conf.Export.CsvPath)
	xlsexport.NewHandler()
	screening.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача завершения просроченных сессий скрининга
	expireworker.StartWorker(ctx)
}
