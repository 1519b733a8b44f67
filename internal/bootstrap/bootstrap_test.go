package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobHunter_Go/internal/config"
	"github.com/osse101/JobHunter_Go/internal/domain"
	"github.com/osse101/JobHunter_Go/internal/sse"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		LogLevel:              "info",
		LogFormat:             "text",
		Environment:           "dev",
		DBPath:                filepath.Join(dir, "tracker.db"),
		TasksFile:             "",
		Timezone:              "UTC",
		DailyResetHour:        0,
		FollowUpCheckInterval: time.Hour,
		WorkerCount:           1,
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2024-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2024-01-01_00-00-00.log")
	assert.Contains(t, names, "session_2024-01-12_00-00-00.log")
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	t.Cleanup(func() { _ = f.Close() })

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingJobHunter)
}

func TestInitializeTracker_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	hub := sse.NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	bus, err := InitializeEventSystem(hub)
	require.NoError(t, err)

	storage, err := InitializeStorage(cfg)
	require.NoError(t, err)
	svc, err := InitializeTracker(ctx, cfg, storage, bus)
	require.NoError(t, err)

	out := svc.AddJob(ctx, domain.NewJob{Company: "Acme", Position: "Engineer"})
	require.True(t, out.Changed)
	require.NoError(t, storage.DB.Close())

	reopened, err := InitializeStorage(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.DB.Close() })
	restored, err := InitializeTracker(ctx, cfg, reopened, nil)
	require.NoError(t, err)

	st := restored.Snapshot(ctx)
	require.Len(t, st.Jobs, 1)
	assert.Equal(t, "Acme", st.Jobs[0].Company)
	assert.Equal(t, int64(150), st.XP)
}

func TestInitializeTracker_BadCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.TasksFile = filepath.Join(t.TempDir(), "tasks.yaml")
	require.NoError(t, os.WriteFile(cfg.TasksFile, []byte("tasks: []\n"), 0o600))

	storage, err := InitializeStorage(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.DB.Close() })

	_, err = InitializeTracker(context.Background(), cfg, storage, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestStartWorkersAndShutdown(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	hub := sse.NewHub()
	hub.Start()
	storage, err := InitializeStorage(cfg)
	require.NoError(t, err)
	svc, err := InitializeTracker(ctx, cfg, storage, nil)
	require.NoError(t, err)

	workers := StartWorkers(cfg, svc, hub)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Scheduler:        workers.Scheduler,
		Pool:             workers.Pool,
		DailyResetWorker: workers.DailyReset,
		Hub:              hub,
		Storage:          storage,
	})

	assert.Error(t, storage.DB.Ping(ctx))
}
