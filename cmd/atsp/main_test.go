// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fourCity = `4
-1 10 15 20
 5 -1  9 10
 6 13 -1 12
 8  8  9 -1
`

func writeInstance(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_SolvesAndWritesMetrics(t *testing.T) {
	inst := writeInstance(t, "four.txt", fourCity)
	prom := filepath.Join(t.TempDir(), "atsp.prom")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{
		"-log-level", "error", "-verify", "-metrics-file", prom, inst,
	}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, "four: cost 35 tour [1 2 4 3 1]\n", stdout.String())

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(data), `atsp_solves_total{status="optimal"} 1`)
}

func TestRun_StartVertex(t *testing.T) {
	inst := writeInstance(t, "four.txt", fourCity)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-log-level", "error", "-start", "2", inst}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, "four: cost 35 tour [3 1 2 4 3]\n", stdout.String())
}

func TestRun_Infeasible(t *testing.T) {
	// Two disjoint 2-cycles: no Hamiltonian cycle exists.
	inst := writeInstance(t, "split.txt", "4\n-1 1 -1 -1\n1 -1 -1 -1\n-1 -1 -1 1\n-1 -1 1 -1\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-log-level", "error", inst}, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
}

func TestRun_BadInput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.Equal(t, 2, run(context.Background(), nil, &stdout, &stderr), "no instance")
	require.Equal(t, 2, run(context.Background(), []string{"-bogus"}, &stdout, &stderr))
	require.Equal(t, 1, run(context.Background(), []string{"-log-level", "loud", "x"}, &stdout, &stderr))
	require.Equal(t, 1, run(context.Background(), []string{"-log-level", "error", filepath.Join(t.TempDir(), "none")}, &stdout, &stderr))
}

func TestOneBased(t *testing.T) {
	require.Equal(t, []int{1, 3, 2, 1}, oneBased([]int{0, 2, 1, 0}))
}
