package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, waited := poolWait(prev, prev)
	assert.False(t, waited)

	level, attrs, waited := poolWait(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, slog.Duration("avgWait", 10*time.Millisecond), attrs[2])

	level, _, _ = poolWait(prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.Equal(t, slog.LevelWarn, level)
}
