package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// upgrader для апгрейда HTTP-соединения до websocket.
// Origin не проверяется: дашборд обслуживается с другого origin (demo).
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// @Summary Live incident event stream
// @Description Upgrade to a websocket carrying server-push {type, payload} change events. No client messages are expected.
// @Tags System
// @Success 101 "Switching Protocols"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	log := h.logger.WithField("method", "serveWS")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}

	clientID := uuid.NewString()
	h.hub.Register(clientID, conn)

	// Читаем соединение только чтобы заметить отключение клиента;
	// входящие сообщения не являются частью контракта и игнорируются.
	go func() {
		defer func() {
			h.hub.Unregister(clientID)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
