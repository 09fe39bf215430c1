// Package api exposes the game operations over HTTP. The boundary
// contract follows the legacy service: expected failures (unknown
// game, insufficient balance) come back as a 200 with an error field
// in the body, not as a transport-level status.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/nk-nigeria/blackjack-solo/usecase/engine"
	"github.com/nk-nigeria/blackjack-solo/usecase/session"
	"go.uber.org/zap"
)

const (
	msgReady               = "Blackjack API Ready"
	msgGameNotFound        = "Game not found"
	msgInsufficientBalance = "Insufficient balance"
)

type Server struct {
	store          session.Store
	logger         *zap.Logger
	router         *mux.Router
	allowedOrigins []string
}

type betRequest struct {
	Amount float64 `json:"amount"`
}

type gameAction struct {
	Action string `json:"action"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func NewServer(store session.Store, logger *zap.Logger, allowedOrigins []string) *Server {
	s := &Server{
		store:          store,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	api.HandleFunc("/game/new", s.handleNewGame).Methods(http.MethodPost)
	api.HandleFunc("/game/{id}/bet", s.handlePlaceBet).Methods(http.MethodPost)
	api.HandleFunc("/game/{id}/action", s.handleAction).Methods(http.MethodPost)
	api.HandleFunc("/game/{id}/watch", s.handleWatch).Methods(http.MethodGet)
	api.HandleFunc("/game/{id}", s.handleGetState).Methods(http.MethodGet)
	return r
}

// Handler wraps the routes with the cross-origin policy the legacy
// frontend relies on.
func (s *Server) Handler() http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(s.allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)(s.router)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, messageResponse{Message: msgReady})
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Create()
	state := sess.State()
	s.logger.Info("game created", zap.String("game_id", state.ID))
	s.writeJSON(w, state)
}

func (s *Server) handlePlaceBet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req betRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "Invalid request body")
		return
	}

	state, err := sess.PlaceBet(req.Amount)
	if err != nil {
		s.logger.Debug("bet rejected",
			zap.String("game_id", sess.ID()),
			zap.Float64("amount", req.Amount),
			zap.Error(err))
		if errors.Is(err, engine.ErrInsufficientBalance) {
			s.writeError(w, msgInsufficientBalance)
		} else {
			s.writeError(w, err.Error())
		}
		return
	}
	s.writeJSON(w, state)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var req gameAction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "Invalid request body")
		return
	}

	state, err := sess.Action(req.Action)
	if err != nil {
		s.logger.Debug("action rejected",
			zap.String("game_id", sess.ID()),
			zap.String("action", req.Action),
			zap.Error(err))
		s.writeError(w, err.Error())
		return
	}
	s.writeJSON(w, state)
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, sess.State())
}

// lookup resolves the game id from the path; on a miss it writes the
// not-found payload and reports false.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := mux.Vars(r)["id"]
	sess, err := s.store.Get(id)
	if err != nil {
		s.logger.Debug("unknown game", zap.String("game_id", id))
		s.writeError(w, msgGameNotFound)
		return nil, false
	}
	return sess, true
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, msg string) {
	s.writeJSON(w, errorResponse{Error: msg})
}
