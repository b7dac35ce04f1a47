// SPDX-License-Identifier: MIT

package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ternclique/metrics"
)

func TestRecorder(t *testing.T) {
	r := metrics.NewRecorder()
	r.Loaded(10, 2)
	r.Graph(17)
	r.Clique(3)
	r.Clique(1)
	r.Shortfall(4)
	r.Time(metrics.StageCover)()

	want := `
# HELP ternclique_cliques_total Cliques extracted (dictionary entries)
# TYPE ternclique_cliques_total counter
ternclique_cliques_total 2
# HELP ternclique_graph_edges Edges of the compatibility graph before pruning
# TYPE ternclique_graph_edges gauge
ternclique_graph_edges 17
# HELP ternclique_malformed_records_total Input records skipped as malformed
# TYPE ternclique_malformed_records_total counter
ternclique_malformed_records_total 2
# HELP ternclique_shortfall Requested entries that could not be produced
# TYPE ternclique_shortfall gauge
ternclique_shortfall 4
# HELP ternclique_vectors_total Vectors loaded from the input
# TYPE ternclique_vectors_total counter
ternclique_vectors_total 10
`
	err := testutil.GatherAndCompare(r.Registry(), strings.NewReader(want),
		"ternclique_cliques_total", "ternclique_graph_edges", "ternclique_malformed_records_total",
		"ternclique_shortfall", "ternclique_vectors_total")
	require.NoError(t, err)

	n, err := testutil.GatherAndCount(r.Registry(), "ternclique_stage_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.Clique(5)
	path := filepath.Join(t.TempDir(), "ternclique.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ternclique_cliques_total 1")
	assert.Contains(t, string(data), `ternclique_clique_size_bucket{le="8"} 1`)
}
