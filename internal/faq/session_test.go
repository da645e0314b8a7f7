package faq

import (
	"context"
	"testing"
	"time"

	"github.com/finlab/finance-lab/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) time.Time {
	t.Helper()
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	SetNowFunc(func() time.Time { return at })
	t.Cleanup(func() { SetNowFunc(time.Now) })
	return at
}

func TestSession_Ask(t *testing.T) {
	at := fixedClock(t)
	s := NewSession(DefaultResponder(), domain.ChatConfig{})

	msgs, err := s.Ask(context.Background(), "  bonjour  ")
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, domain.SenderUser, msgs[0].From)
	assert.Equal(t, "bonjour", msgs[0].Text)
	assert.Equal(t, domain.SenderBot, msgs[1].From)
	assert.Equal(t, Fallback, msgs[1].Text)
	assert.Equal(t, at, msgs[1].At)
	assert.NotEqual(t, uuid.Nil, msgs[0].ID)
	assert.NotEqual(t, msgs[0].ID, msgs[1].ID)

	assert.Equal(t, 2, s.Transcript().Len())
}

func TestSession_BlankQuestionIgnored(t *testing.T) {
	s := NewSession(DefaultResponder(), domain.ChatConfig{})

	msgs, err := s.Ask(context.Background(), "   ")
	assert.NoError(t, err)
	assert.Nil(t, msgs)
	assert.Zero(t, s.Transcript().Len())
}

func TestSession_TranscriptIsAppendOnly(t *testing.T) {
	s := NewSession(DefaultResponder(), domain.ChatConfig{})
	ctx := context.Background()

	_, err := s.Ask(ctx, "place de la crypto ?")
	require.NoError(t, err)
	_, err = s.SelectTopic(ctx, "Horizon de placement")
	require.NoError(t, err)

	msgs := s.Transcript().Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, "Horizon de placement", msgs[2].Text)
	assert.Equal(t, Entries[3].Answer, msgs[3].Text)

	// mutating the copy leaves the transcript untouched
	msgs[0].Text = "changed"
	assert.Equal(t, "place de la crypto ?", s.Transcript().Messages()[0].Text)
}

func TestSession_SelectUnknownTopic(t *testing.T) {
	s := NewSession(DefaultResponder(), domain.ChatConfig{})

	msgs, err := s.SelectTopic(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnknownTopic)
	assert.Nil(t, msgs)
	assert.Zero(t, s.Transcript().Len())
}

func TestSession_ReplyDelay(t *testing.T) {
	s := NewSession(DefaultResponder(), domain.ChatConfig{ReplyDelay: 20 * time.Millisecond})

	start := time.Now()
	msgs, err := s.Ask(context.Background(), "horizon ?")
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSession_CancelDuringDelay(t *testing.T) {
	s := NewSession(DefaultResponder(), domain.ChatConfig{ReplyDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msgs, err := s.Ask(ctx, "horizon ?")
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, msgs, 1)
	assert.Equal(t, domain.SenderUser, msgs[0].From)
	assert.Equal(t, 1, s.Transcript().Len())
}
