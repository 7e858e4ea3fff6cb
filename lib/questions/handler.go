package questions

import (
	"context"

	gpthandler "hr-screening-bot/lib/gpt"
	"hr-screening-bot/lib/questions/kb"
	initchecker "hr-screening-bot/lib/utils/init-checker"
	"hr-screening-bot/models"
)

// Question вопрос для кандидата с пометкой источника
type Question struct {
	Text   string
	Origin models.QuestionOrigin
}

// QuestionSet подобранные вопросы по одной технологии.
// Degraded означает, что генерация была недоступна или вернула
// меньше запрошенного. Это статус, а не ошибка: диалог продолжается
type QuestionSet struct {
	Questions []Question
	Degraded  bool
}

type Generator interface {
	GenerateTechQuestions(ctx context.Context, sessionID, technology string, count int, exclude []string) ([]string, error)
}

type Provider interface {
	GetQuestions(ctx context.Context, sessionID, technology string, desiredCount int) QuestionSet
}

var Instance Provider

func NewHandler() {
	instance := impl{
		kb:  kb.Instance,
		gen: gpthandler.Instance,
	}
	initchecker.CheckInit(
		"kb", instance.kb,
		"gen", instance.gen,
	)
	Instance = instance
}

// NewInstance позволяет подменить источники, используется в тестах
func NewInstance(kbProvider kb.Provider, gen Generator) Provider {
	return impl{
		kb:  kbProvider,
		gen: gen,
	}
}

type impl struct {
	kb  kb.Provider
	gen Generator
}

// GetQuestions сперва берёт вопросы из базы знаний, недостающие добирает
// генерацией. Вопросы из базы всегда идут раньше сгенерированных
func (i impl) GetQuestions(ctx context.Context, sessionID, technology string, desiredCount int) QuestionSet {
	result := QuestionSet{Questions: []Question{}}
	if desiredCount <= 0 {
		return result
	}
	for _, text := range i.kb.Get(technology) {
		result.Questions = append(result.Questions, Question{Text: text, Origin: models.OriginRetrieved})
	}
	result.Questions = dedupe(result.Questions)
	if len(result.Questions) >= desiredCount {
		result.Questions = result.Questions[:desiredCount]
		return result
	}

	// вопросов из базы не хватает, добираем генерацией
	shortfall := desiredCount - len(result.Questions)
	generated, err := i.gen.GenerateTechQuestions(ctx, sessionID, technology, shortfall, nil)
	if err != nil {
		result.Degraded = true
		return result
	}
	result.Questions = appendGenerated(result.Questions, generated)
	if len(result.Questions) >= desiredCount {
		result.Questions = result.Questions[:desiredCount]
		return result
	}

	// после дедупликации всё ещё неполный набор, единственная добивочная генерация
	shortfall = desiredCount - len(result.Questions)
	exclude := make([]string, 0, len(result.Questions))
	for _, q := range result.Questions {
		exclude = append(exclude, q.Text)
	}
	extra, err := i.gen.GenerateTechQuestions(ctx, sessionID, technology, shortfall, exclude)
	if err != nil {
		result.Degraded = true
		return result
	}
	result.Questions = appendGenerated(result.Questions, extra)
	if len(result.Questions) > desiredCount {
		result.Questions = result.Questions[:desiredCount]
	}
	if len(result.Questions) < desiredCount {
		result.Degraded = true
	}
	return result
}

func appendGenerated(list []Question, generated []string) []Question {
	for _, text := range generated {
		list = append(list, Question{Text: text, Origin: models.OriginGenerated})
	}
	return dedupe(list)
}

// дубликаты ищутся без учёта регистра и лишних пробелов, остаётся первый
func dedupe(list []Question) []Question {
	seen := make(map[string]struct{}, len(list))
	result := make([]Question, 0, len(list))
	for _, q := range list {
		key := kb.Normalize(q.Text)
		if _, found := seen[key]; found {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, q)
	}
	return result
}
