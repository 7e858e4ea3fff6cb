package botnotify

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"hr-screening-bot/config"
)

// SendScreeningResult уведомляет бота рекрутёров о завершённом скрининге
func SendScreeningResult(sessionID, candidateName, reason string, logger *logrus.Entry) {
	if config.Conf == nil || config.Conf.NotifyBot.Addr == "" {
		return
	}
	payload := fmt.Sprintf(
		`{"session_id":%q,"candidate":%q,"termination_reason":%q}`,
		sessionID, candidateName, reason)
	resp, err := http.Post(config.Conf.NotifyBot.Addr, "application/json", strings.NewReader(payload))
	if err != nil {
		logger.WithError(err).Errorf("error sending screening notification to telegram, resp %+v", resp)
		return
	}
	resp.Body.Close()
}
