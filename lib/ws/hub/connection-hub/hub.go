package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"

	wsmodels "hr-screening-bot/models/ws"
)

type Provider interface {
	AddClient(sessionID string, conn *websocket.Conn)
	DeleteClient(sessionID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(sessionID string)
	IsConnected(sessionID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[sessionID]
}

func (i *impl) DeleteClient(sessionID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[sessionID]
	if !ok {
		return
	}
	delete(i.clients, sessionID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(sessionID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	oldSess, ok := i.clients[sessionID]
	if ok {
		oldSess.stop()
	}
	i.clients[sessionID] = newSession(conn)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	sess, ok := i.clients[msg.SessionID]
	i.mu.Unlock()
	if ok {
		sess.sendCh <- msg
	}
}

func (i *impl) SendClose(sessionID string) {
	i.mu.Lock()
	sess, ok := i.clients[sessionID]
	i.mu.Unlock()
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(sessionID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[sessionID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
