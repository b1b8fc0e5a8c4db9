package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"blog-server/entities"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// sendBuffer is how many events may queue for one subscriber before it is
	// considered too slow and dropped.
	sendBuffer = 32
	writeWait  = 10 * time.Second
)

var (
	ErrNotConnected   = errors.New("subscriber not connected")
	ErrSubscriberSlow = errors.New("subscriber send buffer full")
)

// Manager keeps track of live feed subscribers and fans change events out to them.
// Publishing never waits on the network; each subscriber has its own writer.
type Manager struct {
	mu          sync.RWMutex
	connections map[string]*subscriber // subscriberID -> conn
	log         *logrus.Logger
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

func NewManager(log *logrus.Logger) *Manager {
	return &Manager{connections: make(map[string]*subscriber), log: log}
}

// Register registers a subscriber connection, replacing any existing one, and
// starts its writer.
func (m *Manager) Register(id string, conn *websocket.Conn) {
	sub := &subscriber{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}

	m.mu.Lock()
	if old, ok := m.connections[id]; ok {
		old.stop()
	}
	m.connections[id] = sub
	m.mu.Unlock()

	go sub.writePump(m.log.WithField("subscriber", id))
}

// Unregister removes a subscriber connection.
func (m *Manager) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sub, ok := m.connections[id]; ok {
		sub.stop()
		delete(m.connections, id)
	}
}

// Send queues a text message for one subscriber without blocking.
func (m *Manager) Send(id string, payload []byte) error {
	m.mu.RLock()
	sub, ok := m.connections[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotConnected
	}

	select {
	case <-sub.done:
		return ErrNotConnected
	default:
	}
	select {
	case sub.send <- payload:
		return nil
	default:
		return ErrSubscriberSlow
	}
}

// Publish broadcasts event to every subscriber. Subscribers that cannot take
// it are dropped.
func (m *Manager) Publish(event entities.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		m.log.WithError(err).Error("marshal change event")
		return
	}

	for _, id := range m.List() {
		if err := m.Send(id, payload); err != nil {
			m.log.WithError(err).WithField("subscriber", id).Warn("dropping live feed subscriber")
			m.Unregister(id)
		}
	}
}

// List returns a copy of current subscriber IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}

// stop is called with the manager lock held, at most once per subscriber.
func (s *subscriber) stop() {
	close(s.done)
	_ = s.conn.Close()
}

// writePump is the only writer on the connection. A write that exceeds
// writeWait closes the connection, which ends the handler's read loop.
func (s *subscriber) writePump(log *logrus.Entry) {
	defer func() { _ = s.conn.Close() }()
	for {
		select {
		case <-s.done:
			return
		case msg := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.WithError(err).Debug("live feed write failed")
				return
			}
		}
	}
}
