package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadBasic(t *testing.T) {
	path := writeSnapshot(t, `# Directed graph snapshot
# FromNodeId ToNodeId
0	1
1	2
2	0
`)

	st, stats, err := Load(context.Background(), path, WithLogger(discardLogger()))
	require.NoError(t, err)

	assert.Equal(t, 3, st.NodeCount())
	assert.Equal(t, 3, st.EdgeCount())
	assert.Equal(t, 5, stats.Lines)
	assert.Equal(t, 2, stats.Comments)
	assert.Equal(t, 3, stats.Edges)
	assert.Zero(t, stats.Skipped)
	assert.Zero(t, stats.Malformed)
}

func TestLoadMaterializesIndexRange(t *testing.T) {
	// Node 20 implies nodes 0..20 exist even though only two indices
	// ever appear.
	path := writeSnapshot(t, "10 20\n")

	st, _, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 21, st.NodeCount())
	assert.Equal(t, 1, st.EdgeCount())
}

func TestLoadKeepsParallelEdges(t *testing.T) {
	path := writeSnapshot(t, "0 1\n0 1\n")

	st, _, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, st.EdgeCount())
	assert.Len(t, st.OutNeighbors(0), 2)
}

func TestLoadSkipsWrongTokenCount(t *testing.T) {
	path := writeSnapshot(t, "0 1\n0 1 2\nsingleton\n\n1 0\n")

	st, stats, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, st.EdgeCount())
	assert.Equal(t, 3, stats.Skipped)
	assert.Zero(t, stats.Malformed)
}

func TestLoadLenientSkipsMalformed(t *testing.T) {
	path := writeSnapshot(t, "0 1\nfoo 2\n3 -4\n1 0\n")

	st, stats, err := Load(context.Background(), path, WithLogger(discardLogger()))
	require.NoError(t, err)
	assert.Equal(t, 2, st.EdgeCount())
	assert.Equal(t, 2, stats.Malformed)
	assert.Equal(t, 2, st.NodeCount())
}

func TestLoadStrictAbortsOnMalformed(t *testing.T) {
	path := writeSnapshot(t, "0 1\nfoo 2\n1 0\n")

	_, _, err := Load(context.Background(), path, WithStrict())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedToken))
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadEmptyInput(t *testing.T) {
	path := writeSnapshot(t, "# nothing but comments\n")

	st, stats, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, st.NodeCount())
	assert.Zero(t, st.EdgeCount())
	assert.Equal(t, 1, stats.Comments)
}

func TestLoadCanceledContext(t *testing.T) {
	// Enough lines to hit the amortized cancellation check.
	content := ""
	for i := 0; i < 5000; i++ {
		content += "0 1\n"
	}
	path := writeSnapshot(t, content)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Load(ctx, path)
	require.ErrorIs(t, err, context.Canceled)
}
