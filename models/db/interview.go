package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"hr-screening-bot/models"
	"time"
)

// Завершённый (в том числе частично) скрининг кандидата
type Interview struct {
	BaseModel
	CandidateName     string                   `gorm:"type:varchar(255);index"`
	Email             string                   `gorm:"type:varchar(255)"`
	Phone             string                   `gorm:"type:varchar(64)"`
	Position          string                   `gorm:"type:varchar(255)"`
	Location          string                   `gorm:"type:varchar(255)"` // Локация со слов кандидата, как есть
	LocationResolved  string                   `gorm:"type:varchar(255)"` // Адрес, нормализованный через DaData
	Fields            InterviewFields          `gorm:"type:jsonb"`
	Questions         InterviewQuestions       `gorm:"type:jsonb"`
	TerminationReason models.TerminationReason `gorm:"type:varchar(32)"`
	Degraded          bool                     // генерация вопросов была недоступна
	FinishedAt        time.Time
}

func (j InterviewFields) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *InterviewFields) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

// Принятые значения анкетных полей
type InterviewFields struct {
	Fields []InterviewField `json:"fields"`
}

type InterviewField struct {
	Key      models.FieldKey     `json:"key"`      // Ключ поля
	Value    string              `json:"value"`    // Принятое значение
	Reason   models.AcceptReason `json:"reason"`   // Причина принятия
	Attempts int                 `json:"attempts"` // Использовано попыток
}

func (j InterviewQuestions) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *InterviewQuestions) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

// Заданные вопросы с ответами кандидата, в порядке диалога
type InterviewQuestions struct {
	Questions []InterviewQuestion `json:"questions"`
}

type InterviewQuestion struct {
	Technology string                `json:"technology"` // Технология из стека
	Text       string                `json:"text"`       // Текст вопроса
	Origin     models.QuestionOrigin `json:"origin"`     // Источник вопроса
	Answer     string                `json:"answer"`     // Ответ кандидата
}

func (j InterviewFields) Get(key models.FieldKey) string {
	for _, f := range j.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}
