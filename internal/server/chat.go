package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/finlab/finance-lab/internal/domain"
	"github.com/finlab/finance-lab/internal/faq"
	"github.com/finlab/finance-lab/internal/metrics"
)

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Messages []domain.Message `json:"messages"`
}

type topic struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

// ListTopics returns the FAQ tags in display order
func (s *Server) ListTopics(w http.ResponseWriter, _ *http.Request) {
	labels := s.Responder.Topics()
	topics := make([]topic, 0, len(labels))
	for i, l := range labels {
		topics = append(topics, topic{Index: i, Label: l})
	}
	writeJSON(w, s.Logger, http.StatusOK, topics)
}

// Chat answers a free-text question. Each request is its own session; a blank
// question is ignored with 204.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	logger := s.Logger.With(zap.String("method", "Chat"))

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, logger, http.StatusBadRequest, "invalid request body")
		return
	}

	session := faq.NewSession(s.Responder, s.Config.Chat)
	msgs, err := session.Ask(r.Context(), req.Question)
	if err != nil {
		logger.Info("chat reply cancelled", zap.Error(err))
		writeError(w, logger, http.StatusServiceUnavailable, "reply cancelled")
		return
	}
	if len(msgs) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	kind := metrics.ReplyFallback
	if _, ok := s.Responder.Match(req.Question); ok {
		kind = metrics.ReplyMatched
	}
	s.Metrics.ChatReply(kind)
	writeJSON(w, logger, http.StatusOK, chatResponse{Messages: msgs})
}

// SelectTopic answers a FAQ tag click, identified by its position
func (s *Server) SelectTopic(w http.ResponseWriter, r *http.Request) {
	logger := s.Logger.With(zap.String("method", "SelectTopic"))

	labels := s.Responder.Topics()
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || i < 0 || i >= len(labels) {
		writeError(w, logger, http.StatusNotFound, faq.ErrUnknownTopic.Error())
		return
	}

	session := faq.NewSession(s.Responder, s.Config.Chat)
	msgs, err := session.SelectTopic(r.Context(), labels[i])
	switch {
	case errors.Is(err, faq.ErrUnknownTopic):
		writeError(w, logger, http.StatusNotFound, err.Error())
		return
	case err != nil:
		logger.Info("topic reply cancelled", zap.Error(err))
		writeError(w, logger, http.StatusServiceUnavailable, "reply cancelled")
		return
	}
	s.Metrics.ChatReply(metrics.ReplyTopic)
	writeJSON(w, logger, http.StatusOK, chatResponse{Messages: msgs})
}
