package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriteSearchRecords(t *testing.T) {
	w := &Writer{baseDir: t.TempDir()}
	records := []SearchRecord{
		{Position: 0, Depth: 3, Algorithm: "minimax", Move: "(2,3)", Score: 1, Nodes: 120, Duration: 2 * time.Millisecond},
		{Position: 0, Depth: 3, Algorithm: "alphabeta", Move: "(2,3)", Score: 1, Nodes: 45, Duration: time.Millisecond},
	}

	require.NoError(t, w.WriteSearchRecords(records))

	f, err := os.Open(filepath.Join(w.Dir(), "search_records.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")
	require.Equal(t, []string{"position", "depth", "algorithm", "move", "score", "nodes", "duration"}, rows[0])
	require.Equal(t, []string{"0", "3", "minimax", "(2,3)", "1", "120", "2ms"}, rows[1])
	require.Equal(t, []string{"0", "3", "alphabeta", "(2,3)", "1", "45", "1ms"}, rows[2])
}
