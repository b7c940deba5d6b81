package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 64 << 10
	sendQueueSize  = 64
)

// client owns one websocket connection. Send is safe to call from any goroutine and
// never blocks, so a slow reader cannot stall the game loop.
type client struct {
	id     string
	ws     *websocket.Conn
	logger *zap.Logger

	send chan []byte
	done chan struct{}
	once sync.Once
}

func newClient(id string, ws *websocket.Conn, logger *zap.Logger) *client {
	return &client{
		id:     id,
		ws:     ws,
		logger: logger.With(zap.String("session", id)),
		send:   make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
	}
}

func (that *client) Send(data []byte) {
	select {
	case <-that.done:
		return
	default:
	}

	select {
	case that.send <- data:
	case <-that.done:
	default:
		that.logger.Warn("send queue full, dropping message")
	}
}

func (that *client) close() {
	that.once.Do(func() {
		close(that.done)
		_ = that.ws.Close()
	})
}

func (that *client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = that.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return

		case <-that.done:
			return

		case data := <-that.send:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				that.logger.Debug("failed to write message", zap.Error(err))
				return
			}

		case <-ticker.C:
			_ = that.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				that.logger.Debug("failed to write ping", zap.Error(err))
				return
			}
		}
	}
}

// readPump returns once the peer goes away or the connection breaks.
func (that *client) readPump(handle func(data []byte)) {
	defer that.close()

	that.ws.SetReadLimit(maxMessageSize)
	_ = that.ws.SetReadDeadline(time.Now().Add(pongWait))
	that.ws.SetPongHandler(func(string) error {
		return that.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := that.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				that.logger.Warn("connection closed unexpectedly", zap.Error(err))
			}
			return
		}

		handle(data)
	}
}
