package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewAndRunWithSQLite(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("LOG_MODE", "test")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "erp.db"))
	t.Setenv("PORT", "0")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("OTEL_ENABLED", "false")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "1")

	a, err := New(context.Background())
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Store.Ping(context.Background()))
	require.True(t, a.DB.Migrator().HasTable("order_line_items"))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.NoError(t, a.Run(ctx))
}
