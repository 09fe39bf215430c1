package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const watchInterval = time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin policy is enforced by the CORS layer for the REST
		// routes; the stream mirrors it by allowing all origins.
		return true
	},
}

// handleWatch upgrades the connection and pushes state snapshots on an
// interval until the client goes away. A push-flavored stand-in for
// polling the state route.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, msgGameNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("watch upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	logger := s.logger.With(zap.String("game_id", sess.ID()))
	logger.Debug("watch stream opened")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	if err := conn.WriteJSON(sess.State()); err != nil {
		return
	}
	for {
		select {
		case <-done:
			logger.Debug("watch stream closed by client")
			return
		case <-ticker.C:
			if err := conn.WriteJSON(sess.State()); err != nil {
				logger.Debug("watch stream write failed", zap.Error(err))
				return
			}
		}
	}
}
