package wsmodels

import (
	"hr-screening-bot/models"
)

// ServerMessage реплики бота, отправляемые в сокет кандидата
type ServerMessage struct {
	SessionID string             `json:"-"`
	Time      string             `json:"time"`    // время события
	Replies   []string           `json:"replies"` // реплики бота
	State     models.DialogState `json:"state"`   // состояние диалога
	Done      bool               `json:"done"`    // диалог завершён
}

// ClientMessage одно сообщение кандидата из сокета
type ClientMessage struct {
	Text string `json:"text"`
}
