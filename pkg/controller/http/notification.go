package http

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/secmon-lab/offboarding/pkg/service/notification"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
	"github.com/secmon-lab/offboarding/pkg/utils/safe"
)

const (
	wsWriteTimeout = 5 * time.Second
	wsPongTimeout  = 60 * time.Second
	wsPingInterval = 30 * time.Second
)

func getNotificationHandler(n *notification.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, toNotificationResponse(n.Current()))
	}
}

func hideNotificationHandler(n *notification.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		n.Hide(ctx)
		writeJSON(ctx, w, http.StatusOK, toNotificationResponse(n.Current()))
	}
}

// notificationStreamHandler pushes the current slot on connect and every
// change after it. Updates a slow client cannot take are dropped.
func notificationStreamHandler(n *notification.Notifier, upgrader *websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.From(ctx)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client
			logger.Warn("websocket upgrade failed", "error", err)
			return
		}
		defer safe.Close(ctx, conn)

		updates, cancel := n.Subscribe()
		defer cancel()

		// Reader: handles pongs and detects close
		closed := make(chan struct{})
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
		})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		write := func(v any) bool {
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(v); err != nil {
				logger.Debug("websocket write failed", "error", err)
				return false
			}
			return true
		}

		if !write(toNotificationResponse(n.Current())) {
			return
		}

		ping := time.NewTicker(wsPingInterval)
		defer ping.Stop()

		for {
			select {
			case <-closed:
				return
			case <-ctx.Done():
				return
			case msg, ok := <-updates:
				if !ok {
					return
				}
				if !write(toNotificationResponse(msg)) {
					return
				}
			case <-ping.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
					return
				}
			}
		}
	}
}
