package faq

import (
	"context"
	"strings"
	"time"

	"github.com/finlab/finance-lab/internal/domain"
)

// Transcript is the append-only list of chat messages
type Transcript struct {
	messages []domain.Message
}

// Append adds a message at the end of the transcript and returns it
func (t *Transcript) Append(from domain.Sender, text string) domain.Message {
	msg := domain.Message{ID: newID(), From: from, Text: text, At: nowFunc()}
	t.messages = append(t.messages, msg)
	return msg
}

// Messages returns a copy of the transcript
func (t *Transcript) Messages() []domain.Message {
	return append([]domain.Message(nil), t.messages...)
}

// Len returns the number of messages
func (t *Transcript) Len() int { return len(t.messages) }

// Session is one conversation with the chatbot. It is not safe for concurrent use.
type Session struct {
	responder  *Responder
	transcript *Transcript
	replyDelay time.Duration
	tagDelay   time.Duration
}

// NewSession creates a session. Delays are cosmetic; zero answers immediately.
func NewSession(responder *Responder, cfg domain.ChatConfig) *Session {
	return &Session{
		responder:  responder,
		transcript: &Transcript{},
		replyDelay: cfg.ReplyDelay,
		tagDelay:   cfg.TagDelay,
	}
}

// Transcript returns the session transcript
func (s *Session) Transcript() *Transcript { return s.transcript }

// Ask records a free-text question and the bot reply. Blank questions are ignored and
// return no messages. If ctx ends during the reply delay, only the question is recorded.
func (s *Session) Ask(ctx context.Context, question string) ([]domain.Message, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return nil, nil
	}
	asked := s.transcript.Append(domain.SenderUser, q)
	if err := wait(ctx, s.replyDelay); err != nil {
		return []domain.Message{asked}, err
	}
	reply := s.transcript.Append(domain.SenderBot, s.responder.Answer(q))
	return []domain.Message{asked, reply}, nil
}

// SelectTopic records a topic tag click: the label as the user message, its answer as the reply.
func (s *Session) SelectTopic(ctx context.Context, label string) ([]domain.Message, error) {
	answer, err := s.responder.Topic(label)
	if err != nil {
		return nil, err
	}
	asked := s.transcript.Append(domain.SenderUser, label)
	if err := wait(ctx, s.tagDelay); err != nil {
		return []domain.Message{asked}, err
	}
	reply := s.transcript.Append(domain.SenderBot, answer)
	return []domain.Message{asked, reply}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
