package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"makan/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(t *testing.T, cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l, ok := newGormSlogLogger(base, cfg).(*gormSlogLogger)
	assert.True(t, ok)

	return l, &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 3 }
}

func TestGormSlogLogger_Levels(t *testing.T) {
	cfg := &config.Config{Store: &config.StoreConfig{SlowQuery: 50 * time.Millisecond}}
	l, buf := newBufferedGormLogger(t, cfg)
	ctx := context.Background()

	l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
	assert.Empty(t, buf.String(), "fast queries stay quiet outside debug")

	l.Trace(ctx, time.Now(), sqlFn("SELECT * FROM recipes"), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(ctx, time.Now(), sqlFn("INSERT INTO reviews"), errors.New("duplicate key"))
	assert.Contains(t, buf.String(), `msg="SQL query failed"`)
	assert.Contains(t, buf.String(), `error="duplicate key"`)
	assert.Contains(t, buf.String(), "component=gorm")

	buf.Reset()
	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT * FROM chats"), nil)
	assert.Contains(t, buf.String(), `msg="Slow SQL query"`)
	assert.Contains(t, buf.String(), "slow_query=50ms")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l, buf := newBufferedGormLogger(t, cfg)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Contains(t, buf.String(), `msg="SQL query"`)
	assert.Contains(t, buf.String(), "rows=3")

	buf.Reset()
	l.LogMode(logger.Silent).(*gormSlogLogger).Info(context.Background(), "ignored %d", 1)
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_TruncatesLongSQL(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l, buf := newBufferedGormLogger(t, cfg)

	l.Trace(context.Background(), time.Now(), sqlFn(strings.Repeat("x", maxLoggedSQL+100)), nil)
	assert.Contains(t, buf.String(), strings.Repeat("x", maxLoggedSQL)+"...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", maxLoggedSQL+1))
}
