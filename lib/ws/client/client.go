package wsclient

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	"hr-screening-bot/lib/screening"
	connectionhub "hr-screening-bot/lib/ws/hub/connection-hub"
	wsmodels "hr-screening-bot/models/ws"
)

func NewClient(sessionID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:      c,
		sessionID: sessionID,
	}
}

type WsClient struct {
	conn      *websocket.Conn
	sessionID string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch читает сообщения кандидата до закрытия сокета,
// ответы уходят через общий хаб соединений
func (c *WsClient) Dispatch() {
	logger := log.WithField("session_id", c.sessionID)
	for {
		if c.conn == nil {
			return
		}
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Error("ошибка получения сообщения")
			}
			break
		}
		text := parseText(data)
		if text == "" {
			continue
		}
		view, err := screening.Instance.ProcessMessage(context.Background(), c.sessionID, text)
		if err != nil {
			logger.WithError(err).Error("ошибка обработки сообщения кандидата")
			connectionhub.Instance.SendClose(c.sessionID)
			break
		}
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			SessionID: c.sessionID,
			Time:      time.Now().Format("02.01.2006 15:04:05"),
			Replies:   view.Replies,
			State:     view.State,
			Done:      view.Done,
		})
		if view.Done {
			connectionhub.Instance.SendClose(c.sessionID)
			break
		}
	}
}

// parseText принимает и json {"text":...}, и сырую строку
func parseText(data []byte) string {
	msg := wsmodels.ClientMessage{}
	if err := json.Unmarshal(data, &msg); err == nil {
		return strings.TrimSpace(msg.Text)
	}
	return strings.TrimSpace(string(data))
}
