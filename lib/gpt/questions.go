package gpthandler

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hr-screening-bot/lib/utils/lock"
	dbmodels "hr-screening-bot/models/db"
)

const (
	techQuestionsSysPromt = "Ты — технический интервьюер IT-компании. Составляешь вопросы для первичного скрининга кандидатов. Вопросы короткие, на русском, без вводных слов."
	techQuestionsTemplate = `Составь %v вопросов для собеседования по технологии "%v".
Верни только нумерованный список вопросов, по одному вопросу в строке, без пояснений и заголовков.`
	extraTechQuestionsTemplate = `Составь %v новых вопросов для собеседования по технологии "%v".
Эти вопросы уже заданы, не повторяй их:
%v
Верни только нумерованный список вопросов, по одному вопросу в строке, без пояснений и заголовков.`
)

func (i impl) GenerateTechQuestions(ctx context.Context, sessionID, technology string, count int, exclude []string) ([]string, error) {
	client, err := i.getYaClient()
	if err != nil {
		return nil, err
	}
	userPromt := fmt.Sprintf(techQuestionsTemplate, count, technology)
	reqType := dbmodels.AiTechQuestionsType
	if len(exclude) != 0 {
		userPromt = fmt.Sprintf(extraTechQuestionsTemplate, count, technology, "- "+strings.Join(exclude, "\n- "))
		reqType = dbmodels.AiExtraTechQuestionsType
	}
	if !lock.Resource.Acquire(ctx, "GenerateTechQuestions") {
		return nil, errors.New("ошибка доступа к ресурсам - контекст завершен")
	}
	defer lock.Resource.Release("GenerateTechQuestions")
	answer, err := client.GenerateByPromtAndText(ctx, techQuestionsSysPromt, userPromt)
	if err != nil {
		log.
			WithField("session_id", sessionID).
			WithField("technology", technology).
			WithError(err).
			Error("ошибка генерации вопросов через GPT")
		return nil, err
	}
	i.saveLog(sessionID, techQuestionsSysPromt, userPromt, answer, reqType)
	return parseNumberedList(answer, count), nil
}

var numberedLineRe = regexp.MustCompile(`^\d+[\.\)\:]\s*`)

// минимальная длина осмысленного вопроса в символах
const minQuestionLen = 15

// parseNumberedList извлекает вопросы из нумерованного списка в ответе ИИ.
// Если нумерации нет, берутся строки, оканчивающиеся вопросительным знаком
func parseNumberedList(text string, limit int) []string {
	result := make([]string, 0, limit)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !numberedLineRe.MatchString(line) {
			continue
		}
		question := strings.TrimSpace(numberedLineRe.ReplaceAllString(line, ""))
		question = strings.Trim(question, `"«»`)
		if utf8.RuneCountInString(question) <= minQuestionLen {
			continue
		}
		result = append(result, question)
		if len(result) == limit {
			return result
		}
	}
	if len(result) != 0 {
		return result
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		if !strings.HasSuffix(line, "?") || utf8.RuneCountInString(line) <= minQuestionLen {
			continue
		}
		result = append(result, line)
		if len(result) == limit {
			break
		}
	}
	return result
}
