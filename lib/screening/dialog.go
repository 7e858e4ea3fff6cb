package screening

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hr-screening-bot/lib/questions"
	"hr-screening-bot/lib/questions/kb"
	"hr-screening-bot/lib/screening/validation"
	"hr-screening-bot/lib/utils/helpers"
	"hr-screening-bot/models"
)

// Dialog состояние одной сессии скрининга. Владение монопольное:
// все изменения идут через session.mu в реестре
type Dialog struct {
	ID           string
	State        models.DialogState
	FieldIdx     int
	Attempts     int
	Fields       []AcceptedField
	Techs        []string
	TechIdx      int
	QuestionIdx  int
	Sets         []TechQuestionSet
	Degraded     bool
	Completed    bool // кандидат дошёл до итога
	TermReason   models.TerminationReason
	StartedAt    time.Time
	LastActivity time.Time
}

// AcceptedField принятое значение анкетного поля, ровно одно на поле
type AcceptedField struct {
	Spec     FieldSpec
	Value    string
	Reason   models.AcceptReason
	Attempts int
}

// TechQuestionSet заданные вопросы по одной технологии
type TechQuestionSet struct {
	Technology string
	Questions  []AskedQuestion
}

type AskedQuestion struct {
	questions.Question
	Answer string
}

func (d *Dialog) fieldValue(key models.FieldKey) string {
	for _, f := range d.Fields {
		if f.Spec.Key == key {
			return f.Value
		}
	}
	return ""
}

func (d *Dialog) questionCount() (asked, answered int) {
	for _, set := range d.Sets {
		for _, q := range set.Questions {
			asked++
			if q.Answer != "" {
				answered++
			}
		}
	}
	return asked, answered
}

func isExitWord(input string) bool {
	value := strings.ToLower(helpers.CollapseSpaces(input))
	for _, word := range exitWords {
		if value == word {
			return true
		}
	}
	return false
}

// parseTechList разбирает перечисление стека на отдельные технологии:
// разделители запятая, точка с запятой и перенос строки, дубли отбрасываются
func parseTechList(raw string, limit int) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	result := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		tech := kb.Normalize(part)
		if tech == "" {
			continue
		}
		if _, found := seen[tech]; found {
			continue
		}
		seen[tech] = struct{}{}
		result = append(result, tech)
		if len(result) == limit {
			break
		}
	}
	return result
}

// advance выполняет один шаг диалога: одно сообщение кандидата,
// одна или несколько реплик в ответ. Слово выхода проверяется
// раньше любой другой обработки
func (i impl) advance(ctx context.Context, d *Dialog, input string) (replies []string) {
	if d.State == models.StateTerminated {
		return []string{terminatedReplyText}
	}
	if isExitWord(input) {
		return i.terminate(ctx, d, models.TerminationExitWord)
	}
	switch d.State {
	case models.StateCollecting:
		return i.collectField(ctx, d, input)
	case models.StateCollectingQuestion:
		return i.collectAnswer(ctx, d, input)
	default:
		return []string{summarizingReplyText}
	}
}

func (i impl) collectField(ctx context.Context, d *Dialog, input string) (replies []string) {
	spec := screeningFields[d.FieldIdx]
	d.Attempts++
	verdict := validation.Check(spec.Kind, input, i.settings.Rules)
	if !verdict.Ok && d.Attempts < i.settings.MaxAttempts {
		// есть ещё попытки, переспрашиваем с подсказкой
		return []string{verdict.Hint}
	}
	accepted := AcceptedField{
		Spec:     spec,
		Value:    helpers.CollapseSpaces(input),
		Reason:   models.AcceptValid,
		Attempts: d.Attempts,
	}
	if !verdict.Ok {
		// попытки исчерпаны, значение принимается как есть,
		// дальше с ним разберётся рекрутер
		accepted.Reason = models.AcceptMaxAttemptsExhausted
	}
	d.Fields = append(d.Fields, accepted)
	replies = append(replies, i.acknowledge(ctx, d, accepted))

	d.FieldIdx++
	d.Attempts = 0
	if d.FieldIdx < len(screeningFields) {
		return append(replies, screeningFields[d.FieldIdx].Prompt)
	}

	// анкета собрана, переходим к техническим вопросам
	d.Techs = parseTechList(d.fieldValue(models.FieldTechStack), i.settings.MaxTechnologies)
	d.State = models.StateCollectingQuestion
	question := i.fetchNextSet(ctx, d)
	if question == "" {
		replies = append(replies, noQuestionsText)
		return append(replies, i.summarize(ctx, d)...)
	}
	replies = append(replies, questionsIntroText)
	return append(replies, question)
}

func (i impl) collectAnswer(ctx context.Context, d *Dialog, input string) (replies []string) {
	set := &d.Sets[len(d.Sets)-1]
	set.Questions[d.QuestionIdx].Answer = strings.TrimSpace(input)
	d.QuestionIdx++
	if d.QuestionIdx < len(set.Questions) {
		return []string{formatQuestion(*set, d.QuestionIdx)}
	}
	d.TechIdx++
	d.QuestionIdx = 0
	if question := i.fetchNextSet(ctx, d); question != "" {
		return []string{question}
	}
	return i.summarize(ctx, d)
}

// fetchNextSet подбирает вопросы для очередной технологии из стека.
// Технологии без единого вопроса пропускаются. Пустая строка
// означает, что вопросы закончились
func (i impl) fetchNextSet(ctx context.Context, d *Dialog) (firstQuestion string) {
	for ; d.TechIdx < len(d.Techs); d.TechIdx++ {
		tech := d.Techs[d.TechIdx]
		set := i.questions.GetQuestions(ctx, d.ID, tech, i.settings.QuestionsPerTech)
		if set.Degraded {
			d.Degraded = true
		}
		if len(set.Questions) == 0 {
			continue
		}
		asked := TechQuestionSet{Technology: tech}
		for _, q := range set.Questions {
			asked.Questions = append(asked.Questions, AskedQuestion{Question: q})
		}
		d.Sets = append(d.Sets, asked)
		d.QuestionIdx = 0
		return formatQuestion(asked, 0)
	}
	return ""
}

func formatQuestion(set TechQuestionSet, idx int) string {
	return fmt.Sprintf("Вопрос по %v (%v/%v): %v", set.Technology, idx+1, len(set.Questions), set.Questions[idx].Text)
}

func (i impl) acknowledge(ctx context.Context, d *Dialog, accepted AcceptedField) string {
	if accepted.Reason == models.AcceptMaxAttemptsExhausted {
		return acceptedAsIsText
	}
	phrase, err := i.acks.GenerateAcknowledgement(ctx, d.ID, accepted.Spec.Label, accepted.Value)
	if err != nil || strings.TrimSpace(phrase) == "" {
		return ackFallbackText
	}
	return strings.TrimSpace(phrase)
}

func (i impl) farewell(ctx context.Context, d *Dialog) string {
	phrase, err := i.acks.GenerateFarewell(ctx, d.ID, d.fieldValue(models.FieldName))
	if err != nil || strings.TrimSpace(phrase) == "" {
		return farewellFallbackText
	}
	return strings.TrimSpace(phrase)
}

// summarize показывает итог и оставляет сессию открытой для
// финальных вопросов кандидата
func (i impl) summarize(ctx context.Context, d *Dialog) (replies []string) {
	d.State = models.StateSummarizing
	d.Completed = true
	replies = append(replies, buildSummary(d))
	return append(replies, i.farewell(ctx, d))
}

// terminate переводит диалог в конечное состояние из любого другого.
// При досрочном выходе показывается частичный итог
func (i impl) terminate(ctx context.Context, d *Dialog, reason models.TerminationReason) (replies []string) {
	fromSummary := d.State == models.StateSummarizing
	if fromSummary && reason == models.TerminationExitWord {
		reason = models.TerminationCompleted
	}
	d.State = models.StateTerminated
	d.TermReason = reason
	if fromSummary {
		// итог уже показан при переходе в Summarizing
		return []string{byeText}
	}
	replies = append(replies, buildSummary(d))
	return append(replies, i.farewell(ctx, d))
}

func buildSummary(d *Dialog) string {
	b := strings.Builder{}
	b.WriteString(summaryIntroText)
	for _, f := range d.Fields {
		b.WriteString(fmt.Sprintf("\n- %v: %v", f.Spec.Label, f.Value))
	}
	asked, answered := d.questionCount()
	if asked > 0 {
		b.WriteString(fmt.Sprintf("\nТехнических вопросов задано: %v, ответов получено: %v.", asked, answered))
	}
	if d.Degraded {
		b.WriteString("\nЧасть технических вопросов подготовить не удалось, рекрутер задаст их при разговоре.")
	}
	return b.String()
}
