package handlers

import (
	"net/http"

	"blog-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// WSHandler serves the live change feed
type WSHandler struct {
	mgr *ws.Manager
	log *logrus.Logger
}

func NewWSHandler(mgr *ws.Manager, log *logrus.Logger) *WSHandler {
	return &WSHandler{mgr: mgr, log: log}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleFeed upgrades to websocket and streams change events until the client
// goes away. Anything the client sends is discarded.
// GET /ws
func (h *WSHandler) HandleFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	id := uuid.New().String()
	h.mgr.Register(id, conn)
	h.log.WithField("subscriber", id).Info("live feed subscriber connected")

	defer func() {
		h.mgr.Unregister(id)
		h.log.WithField("subscriber", id).Info("live feed subscriber disconnected")
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithError(err).Debug("live feed read ended")
			}
			return
		}
	}
}

// GetSubscribers lists connected subscriber IDs
// GET /ws/subscribers
func (h *WSHandler) GetSubscribers(c *gin.Context) {
	ids := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{
		"data":  ids,
		"count": len(ids),
	})
}
