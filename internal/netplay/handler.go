package netplay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dungeon-kernel/internal/game"
	"dungeon-kernel/internal/logger"
	"dungeon-kernel/internal/render"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Handler upgrades requests to WebSocket and runs one independent game
// per connection.
type Handler struct {
	cfg      game.Config
	palette  render.Palette
	upgrader websocket.Upgrader
}

// NewHandler returns a handler whose games are built from cfg.
func NewHandler(cfg game.Config, pal render.Palette) *Handler {
	return &Handler{
		cfg:     cfg,
		palette: pal,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log := logger.Log.WithField("remote", r.RemoteAddr)
	engine, err := game.NewEngine(h.cfg)
	if err != nil {
		log.WithError(err).Error("new engine")
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "engine"), time.Now().Add(writeWait))
		return
	}
	log = log.WithField("seed", engine.Config().Seed)
	log.Info("websocket game started")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go keepAlive(ctx, conn)

	err = h.play(ctx, conn, engine)
	log.WithFields(logrus.Fields{"turns": engine.Turns(), "reason": err}).Info("websocket game ended")
}

// play runs the read-advance-write loop until the client leaves.
func (h *Handler) play(ctx context.Context, conn *websocket.Conn, engine *game.Engine) error {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	if err := engine.Advance(ctx, game.ActionNone); err != nil {
		return err
	}
	if err := h.writeFrame(conn, engine); err != nil {
		return err
	}

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ErrorMessage{Type: "error", Error: "malformed message"}); err != nil {
					return err
				}
				continue
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		act := game.NamedKeyToAction(msg.Key)
		if act == game.ActionQuit {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "quit"), time.Now().Add(writeWait))
			return nil
		}
		if !engine.PlayerDead() {
			if err := engine.Advance(ctx, act); err != nil {
				return err
			}
		}
		if err := h.writeFrame(conn, engine); err != nil {
			return err
		}
	}
}

func (h *Handler) writeFrame(conn *websocket.Conn, engine *game.Engine) error {
	frame := render.Snapshot(engine.World(), h.palette, engine.Config().LogVisible)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(NewFrameMessage(frame, engine.State().String(), engine.Turns()))
}

// keepAlive pings the client until ctx ends.
func keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
