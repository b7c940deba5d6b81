package websocket

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rocketscienceinc/gamehub-backend/internal/entity"
	"github.com/rocketscienceinc/gamehub-backend/internal/pkg"
	"github.com/rocketscienceinc/gamehub-backend/internal/protocol"
)

const shutdownTimeout = 5 * time.Second

type events interface {
	Connect(ctx context.Context, id string, conn entity.Sender) error
	Deliver(ctx context.Context, id string, msg protocol.Inbound) error
	Disconnect(ctx context.Context, id string) error
}

type Server struct {
	logger   *zap.Logger
	events   events
	upgrader websocket.Upgrader
	newID    func() string
}

func New(logger *zap.Logger, events events) *Server {
	return &Server{
		logger: logger.With(zap.String("component", "websocket")),
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		newID: pkg.GenerateClientID,
	}
}

// Handler serves websocket upgrades on / and /ws. Connections are closed when ctx ends.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	serve := func(w http.ResponseWriter, r *http.Request) {
		that.serveConn(ctx, w, r)
	}

	mux.HandleFunc("/", serve)
	mux.HandleFunc("/ws", serve)

	return mux
}

// Start - starts WebSocket server and blocks until ctx is canceled or listening fails.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", zap.Error(err))
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveConn(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With(zap.String("method", "serveConn"), zap.String("remote", r.RemoteAddr))

	ws, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", zap.Error(err))
		return
	}

	conn := newClient(that.newID(), ws, that.logger)

	if err = that.events.Connect(ctx, conn.id, conn); err != nil {
		log.Error("failed to register connection", zap.Error(err))
		conn.close()
		return
	}

	go conn.writePump(ctx)

	conn.readPump(func(data []byte) {
		msg, err := protocol.Decode(data)
		if err != nil {
			conn.logger.Debug("dropping malformed message", zap.Error(err))
			return
		}

		if err := that.events.Deliver(ctx, conn.id, msg); err != nil {
			conn.logger.Warn("failed to deliver message", zap.String("type", msg.Type()), zap.Error(err))
		}
	})

	// the session must be released even while shutting down
	if err = that.events.Disconnect(context.WithoutCancel(ctx), conn.id); err != nil {
		log.Warn("failed to report disconnect", zap.String("session", conn.id), zap.Error(err))
	}
}
