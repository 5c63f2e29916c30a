package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-toolbox/internal/watch"
)

func TestWatcher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	watched := filepath.Join(dir, "watched.tpl")
	other := filepath.Join(dir, "other.tpl")
	require.NoError(t, os.WriteFile(watched, []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(other, []byte("a"), 0o600))

	wtc, err := watch.New(20*time.Millisecond, nil)
	require.NoError(t, err)
	defer wtc.Close()

	require.NoError(t, wtc.Add(watched))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan struct{}, 10)
	done := make(chan error, 1)

	go func() {
		done <- wtc.Run(ctx, func(ctx context.Context) error {
			changes <- struct{}{}

			return assert.AnError
		})
	}()

	// changes of an other file of the same directory are ignored
	require.NoError(t, os.WriteFile(other, []byte("b"), 0o600))

	select {
	case <-changes:
		t.Fatal("unexpected change")
	case <-time.After(100 * time.Millisecond):
	}

	// rapid writes are grouped
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(watched, []byte{byte('b' + i)}, 0o600))
	}

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("change not detected")
	}

	select {
	case <-changes:
		t.Fatal("changes were not grouped")
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
