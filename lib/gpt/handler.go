package gpthandler

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-screening-bot/config"
	"hr-screening-bot/db"
	ailogstore "hr-screening-bot/lib/gpt/store"
	yagptclient "hr-screening-bot/lib/gpt/yagpt-client"
	initchecker "hr-screening-bot/lib/utils/init-checker"
	"hr-screening-bot/lib/utils/lock"
	dbmodels "hr-screening-bot/models/db"
)

type Provider interface {
	// GenerateTechQuestions запрашивает у ИИ count вопросов по технологии.
	// exclude содержит уже использованные вопросы, их повторять нельзя
	GenerateTechQuestions(ctx context.Context, sessionID, technology string, count int, exclude []string) ([]string, error)
	GenerateAcknowledgement(ctx context.Context, sessionID, fieldLabel, value string) (string, error)
	GenerateFarewell(ctx context.Context, sessionID, candidateName string) (string, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		aiLogStore: ailogstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"aiLogStore", instance.aiLogStore,
	)
	Instance = instance
}

type impl struct {
	aiLogStore ailogstore.Provider
}

const (
	acknowledgementSysPromt = "Ты — дружелюбный HR-ассистент, ведёшь первичный скрининг кандидата. Отвечай на русском одной короткой фразой, без встречных вопросов."
	acknowledgementTemplate = "Кандидат указал «%v»: «%v». Поблагодари одной нейтральной фразой и подтверди, что данные записаны."

	farewellSysPromt = "Ты — дружелюбный HR-ассистент, завершаешь первичный скрининг кандидата. Отвечай на русском, два-три предложения."
	farewellTemplate = "Кандидата зовут «%v». Поблагодари за уделённое время и сообщи, что рекрутер свяжется с ним в течение нескольких рабочих дней."
)

func (i impl) GenerateAcknowledgement(ctx context.Context, sessionID, fieldLabel, value string) (string, error) {
	client, err := i.getYaClient()
	if err != nil {
		return "", err
	}
	if !lock.Resource.Acquire(ctx, "GenerateAcknowledgement") {
		return "", errors.New("ошибка доступа к ресурсам - контекст завершен")
	}
	defer lock.Resource.Release("GenerateAcknowledgement")
	userPromt := fmt.Sprintf(acknowledgementTemplate, fieldLabel, value)
	answer, err := client.GenerateByPromtAndText(ctx, acknowledgementSysPromt, userPromt)
	if err != nil {
		log.
			WithField("session_id", sessionID).
			WithError(err).
			Error("ошибка генерации подтверждающей фразы через GPT")
		return "", err
	}
	i.saveLog(sessionID, acknowledgementSysPromt, userPromt, answer, dbmodels.AiAcknowledgementType)
	return answer, nil
}

func (i impl) GenerateFarewell(ctx context.Context, sessionID, candidateName string) (string, error) {
	client, err := i.getYaClient()
	if err != nil {
		return "", err
	}
	if !lock.Resource.Acquire(ctx, "GenerateFarewell") {
		return "", errors.New("ошибка доступа к ресурсам - контекст завершен")
	}
	defer lock.Resource.Release("GenerateFarewell")
	userPromt := fmt.Sprintf(farewellTemplate, candidateName)
	answer, err := client.GenerateByPromtAndText(ctx, farewellSysPromt, userPromt)
	if err != nil {
		log.
			WithField("session_id", sessionID).
			WithError(err).
			Error("ошибка генерации прощальной фразы через GPT")
		return "", err
	}
	i.saveLog(sessionID, farewellSysPromt, userPromt, answer, dbmodels.AiFarewellType)
	return answer, nil
}

func (i impl) getYaClient() (yagptclient.Provider, error) {
	if config.Conf.YandexGPT.IAMToken == "" || config.Conf.YandexGPT.CatalogID == "" {
		return nil, errors.New("не заданы настройки подключения к YandexGPT")
	}
	return yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID), nil
}

func (i impl) saveLog(sessionID, sysPromt, userPromt, answer string, reqType dbmodels.AiReqestType) {
	rec := dbmodels.AiLog{
		SysPromt:   sysPromt,
		UserPromt:  userPromt,
		Answer:     answer,
		SessionID:  sessionID,
		ReqestType: reqType,
		AiName:     dbmodels.AiYaGptType,
	}
	if _, err := i.aiLogStore.Save(rec); err != nil {
		log.
			WithField("session_id", sessionID).
			WithError(err).
			Error("ошибка сохранения лога запроса к ИИ")
	}
}
