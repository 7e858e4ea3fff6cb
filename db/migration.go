package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "hr-screening-bot/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.AiLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AiLog")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
