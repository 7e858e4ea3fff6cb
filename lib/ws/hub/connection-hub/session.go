package connectionhub

import (
	"context"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type clientSession struct {
	conn *websocket.Conn

	// исходящие сообщения, запись в сокет только из одной горутины
	sendCh chan any
	stop   func()
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.TODO())
	sess := clientSession{
		stop:   cancelFn,
		conn:   conn,
		sendCh: make(chan any, 1), // buffered
	}
	go sess.startSend(ctx)
	return sess
}

func (s clientSession) startSend(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case msg, opened := <-s.sendCh:
			if !opened {
				return
			}
			err := s.send(msg)
			if err != nil {
				log.WithError(err).Error("ошибка отправки сообщения в сокет")
			}
		}
	}
}

func (s clientSession) send(msg interface{}) error {
	if s.conn.Conn == nil {
		return nil
	}
	return s.conn.WriteJSON(msg)
}

func (s clientSession) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Millisecond))
	if err != nil {
		log.WithError(err).Error("cant close")
	}
}
