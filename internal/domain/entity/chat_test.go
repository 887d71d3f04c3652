package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatID_OrderIndependent(t *testing.T) {
	for range 50 {
		a, b := uuid.New(), uuid.New()
		assert.Equal(t, NewChatID(a, b), NewChatID(b, a))
	}
}

func TestParseChatID(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	id := NewChatID(a, b)

	parsed, participants, ok := ParseChatID(id.String())
	require.True(t, ok)
	assert.Equal(t, id, parsed)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, participants[:])

	t.Run("rejects non canonical order", func(t *testing.T) {
		first, second := participants[0].String(), participants[1].String()
		_, _, ok := ParseChatID(second + "_" + first)
		assert.False(t, ok)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "abc_def", a.String()} {
			_, _, ok := ParseChatID(raw)
			assert.False(t, ok, raw)
		}
	})
}

func TestChat_Participants(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	chat := NewChat(a, b, time.Now())

	assert.True(t, chat.HasParticipant(a))
	assert.True(t, chat.HasParticipant(b))
	assert.False(t, chat.HasParticipant(uuid.New()))
	assert.Equal(t, b, chat.Counterpart(a))
	assert.Equal(t, a, chat.Counterpart(b))
	assert.Equal(t, NewChat(b, a, time.Now()).Participants, chat.Participants)
}
