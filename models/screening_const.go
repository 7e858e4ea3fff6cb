package models

// Ключи анкетных полей, порядок опроса задаётся в lib/screening/fields.go
type FieldKey string

const (
	FieldName       FieldKey = "name"
	FieldEmail      FieldKey = "email"
	FieldPhone      FieldKey = "phone"
	FieldExperience FieldKey = "experience"
	FieldPosition   FieldKey = "position"
	FieldLocation   FieldKey = "location"
	FieldTechStack  FieldKey = "tech_stack"
)

type FieldKind string

const (
	KindName       FieldKind = "name"
	KindEmail      FieldKind = "email"
	KindPhone      FieldKind = "phone"
	KindExperience FieldKind = "experience"
	KindFreeText   FieldKind = "free_text"
)

// Причина принятия значения поля
type AcceptReason string

const (
	// значение прошло валидацию
	AcceptValid AcceptReason = "valid"
	// попытки исчерпаны, значение принято как есть
	AcceptMaxAttemptsExhausted AcceptReason = "max_attempts_exhausted"
)

type DialogState string

const (
	// сбор анкетных полей
	StateCollecting DialogState = "collecting"
	// технические вопросы по стеку
	StateCollectingQuestion DialogState = "collecting_question"
	// итог показан, ждём финальных вопросов кандидата
	StateSummarizing DialogState = "summarizing"
	// диалог завершён
	StateTerminated DialogState = "terminated"
)

type QuestionOrigin string

const (
	// вопрос из базы знаний
	OriginRetrieved QuestionOrigin = "retrieved"
	// вопрос сгенерирован ИИ
	OriginGenerated QuestionOrigin = "generated"
)

// Причина завершения диалога
type TerminationReason string

const (
	TerminationCompleted TerminationReason = "completed"
	TerminationExitWord  TerminationReason = "exit_word"
	TerminationExpired   TerminationReason = "expired"
)
