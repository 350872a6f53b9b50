// internal/workers/cleanup_processor_test.go
package workers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinkerhq/pos-be/test/helpers"
)

func TestCleanupProcessor_CleanupExports(t *testing.T) {
	ctx := context.Background()
	store := newFakeStorage()
	cfg := helpers.LoadTestConfig()
	cfg.Export.RetentionDays = 7

	oldDay := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
	freshDay := time.Now().Format("2006-01-02")

	store.objects["exports/"+oldDay+"/bills_old.xlsx"] = []byte("old")
	store.objects["exports/"+freshDay+"/bills_new.xlsx"] = []byte("new")
	store.objects["exports/garbage.xlsx"] = []byte("unparseable key")

	processor := NewCleanupProcessor(store, cfg, helpers.TestLogger())

	err := processor.CleanupExports(ctx, asynq.NewTask(TypeCleanupExports, nil))
	require.NoError(t, err)

	_, oldKept := store.objects["exports/"+oldDay+"/bills_old.xlsx"]
	assert.False(t, oldKept, "expired export must be deleted")

	_, freshKept := store.objects["exports/"+freshDay+"/bills_new.xlsx"]
	assert.True(t, freshKept, "export inside the retention window must survive")

	_, garbageKept := store.objects["exports/garbage.xlsx"]
	assert.True(t, garbageKept, "objects with unexpected keys are left alone")
}

func TestCleanupProcessor_CleanupTempFiles(t *testing.T) {
	ctx := context.Background()
	cfg := helpers.LoadTestConfig()
	cfg.Export.TempDir = t.TempDir()

	stale := filepath.Join(cfg.Export.TempDir, "stale.xlsx")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	fresh := filepath.Join(cfg.Export.TempDir, "fresh.xlsx")
	require.NoError(t, os.WriteFile(fresh, []byte("fresh"), 0o644))

	processor := NewCleanupProcessor(newFakeStorage(), cfg, helpers.TestLogger())

	err := processor.CleanupTempFiles(ctx, asynq.NewTask(TypeCleanupTempFiles, nil))
	require.NoError(t, err)

	_, err = os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale temp file must be removed")

	_, err = os.Stat(fresh)
	assert.NoError(t, err, "fresh temp file must survive")
}
