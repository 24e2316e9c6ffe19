// Package live upgrades the directory page's websocket into a live session.
package live

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"employee-directory/internal/session"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// 連線保活：瀏覽器必須在 pongWait 內回應 ping，否則讀取逾時並結束 session
var (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = int64(64 << 10)
)

var newSession = func(conn session.Conn, cfg session.Config) (runner, error) {
	return session.New(conn, cfg)
}

type runner interface {
	ID() string
	Run(ctx context.Context) error
}

// LiveHandler 將請求升級為 websocket 並執行 live session 直到連線關閉
// @Summary     Live page session
// @Description 瀏覽器送出 DOM 事件 (load/input/search/delete/confirm/dismiss)，伺服器回傳 DOM 更新指令
// @Tags        pages
// @Success     101
// @Failure     400
// @Router      /live [get]
func LiveHandler(cfg session.Config) echo.HandlerFunc {
	if cfg.Log == nil {
		cfg.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			// Upgrade has already answered with an HTTP error.
			cfg.Log.WithError(err).Debug("websocket upgrade failed")
			return nil
		}

		stopPing := keepAlive(conn)
		defer stopPing()

		s, err := newSession(conn, cfg)
		if err != nil {
			cfg.Log.WithError(err).Error("start live session")
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "session unavailable"))
			_ = conn.Close()
			return nil
		}

		log := cfg.Log.WithField("session", s.ID())
		err = s.Run(c.Request().Context())
		switch {
		case err == nil, errors.Is(err, io.EOF),
			websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived):
			log.Debug("live session closed")
		case isTimeout(err):
			log.Debug("live session timed out waiting for pong")
		default:
			log.WithError(err).Warn("live session ended with error")
		}
		return nil
	}
}

// keepAlive caps inbound messages and drops half-open peers: the read deadline
// only moves forward when a pong arrives. The returned func stops the pinger.
func keepAlive(conn *websocket.Conn) func() {
	wait, period, deadline := pongWait, pingPeriod, writeWait
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(wait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wait))
	})

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(deadline)); err != nil {
					return
				}
			}
		}
	}()
	return func() { close(done) }
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
