package screeningapimodels

import (
	"strings"

	"github.com/pkg/errors"

	"hr-screening-bot/lib/utils/helpers"
	"hr-screening-bot/models"
	dbmodels "hr-screening-bot/models/db"
)

// MessageRequest одно сообщение кандидата
type MessageRequest struct {
	Text string `json:"text"` // текст сообщения
}

func (r MessageRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("сообщение не должно быть пустым")
	}
	return nil
}

// MessageView реплики бота в ответ на один ход диалога
type MessageView struct {
	SessionID string             `json:"session_id"`
	Replies   []string           `json:"replies"`
	State     models.DialogState `json:"state"`
	Done      bool               `json:"done"` // диалог завершён, новые сообщения не принимаются
}

// ProgressView собранные данные сессии на текущий момент
type ProgressView struct {
	SessionID string             `json:"session_id"`
	State     models.DialogState `json:"state"`
	Fields    []FieldView        `json:"fields"`
	Questions []QuestionView     `json:"questions"`
	Degraded  bool               `json:"degraded"`
}

type FieldView struct {
	Key      models.FieldKey     `json:"key"`      // ключ поля
	Label    string              `json:"label"`    // подпись поля
	Value    string              `json:"value"`    // принятое значение
	Reason   models.AcceptReason `json:"reason"`   // причина принятия
	Attempts int                 `json:"attempts"` // использовано попыток
}

type QuestionView struct {
	Technology string                `json:"technology"` // технология из стека
	Text       string                `json:"text"`       // текст вопроса
	Origin     models.QuestionOrigin `json:"origin"`     // источник вопроса
	Answer     string                `json:"answer,omitempty"`
}

// InterviewView завершённый скрининг для админского списка,
// контакты кандидата маскируются
type InterviewView struct {
	ID                string                   `json:"id"`
	CandidateName     string                   `json:"candidate_name"`
	Email             string                   `json:"email"`
	Phone             string                   `json:"phone"`
	Position          string                   `json:"position"`
	Location          string                   `json:"location"`
	LocationResolved  string                   `json:"location_resolved,omitempty"` // адрес по справочнику DaData
	Experience        string                   `json:"experience"`
	TechStack         string                   `json:"tech_stack"`
	QuestionCount     int                      `json:"question_count"`
	TerminationReason models.TerminationReason `json:"termination_reason"`
	Degraded          bool                     `json:"degraded"`
	FinishedAt        string                   `json:"finished_at"`
	Questions         []QuestionView           `json:"questions,omitempty"`
}

func ToInterviewView(rec dbmodels.Interview, withQuestions bool) InterviewView {
	view := InterviewView{
		ID:                rec.ID,
		CandidateName:     rec.CandidateName,
		Email:             helpers.MaskEmail(rec.Email),
		Phone:             helpers.MaskPhone(rec.Phone),
		Position:          rec.Position,
		Location:          rec.Fields.Get(models.FieldLocation),
		LocationResolved:  rec.LocationResolved,
		Experience:        rec.Fields.Get(models.FieldExperience),
		TechStack:         rec.Fields.Get(models.FieldTechStack),
		QuestionCount:     len(rec.Questions.Questions),
		TerminationReason: rec.TerminationReason,
		Degraded:          rec.Degraded,
		FinishedAt:        rec.FinishedAt.Format("02.01.2006 15:04:05"),
	}
	if withQuestions {
		for _, q := range rec.Questions.Questions {
			view.Questions = append(view.Questions, QuestionView{
				Technology: q.Technology,
				Text:       q.Text,
				Origin:     q.Origin,
				Answer:     q.Answer,
			})
		}
	}
	return view
}
