// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ternclique/config"
)

const eightBit = "11XXXXXX 1X0XXXXX X100XXXX 0011XXXX\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vectors.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRoot_WritesDictionary(t *testing.T) {
	in := writeFile(t, eightBit)
	out := filepath.Join(t.TempDir(), "dict.txt")

	stdout, err := execute(t, in, "2", "8", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Clique 1: 1100XXXX\nClique 2: 0011XXXX\n", string(got))
}

func TestRoot_Shortfall(t *testing.T) {
	in := writeFile(t, eightBit)
	out := filepath.Join(t.TempDir(), "dict.txt")

	stdout, err := execute(t, in, "5", "8", out)
	require.NoError(t, err)
	assert.Equal(t, "Only 2 dictionary entries are possible\n", stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Clique 1: 1100XXXX\nClique 2: 0011XXXX\n", string(got))
}

func TestRoot_MembersFormat(t *testing.T) {
	in := writeFile(t, eightBit)
	out := filepath.Join(t.TempDir(), "dict.txt")

	_, err := execute(t, "--format", "members", in, "2", "8", out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Clique 1: {1, 2, 3}\nClique 2: {4}\n", string(got))
}

func TestRoot_ConfigFile(t *testing.T) {
	in := writeFile(t, "11XXXXXX\n1X0XXXXX\nbogus\n")
	out := filepath.Join(t.TempDir(), "dict.txt")
	cfgPath := filepath.Join(t.TempDir(), "ternclique.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("on_malformed: skip\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, in, "1", "8", out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Clique 1: 110XXXXX\n", string(got))
}

func TestRoot_RejectsBeforeIO(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dict.txt")
	missing := filepath.Join(t.TempDir(), "nope.txt")

	cases := []struct {
		name string
		args []string
		want error
	}{
		{"length not allowed", []string{missing, "2", "7", out}, config.ErrInvalidLength},
		{"length not a number", []string{missing, "2", "eight", out}, config.ErrInvalidLength},
		{"negative cap", []string{missing, "-1", "8", out}, config.ErrNegativeCap},
		{"cap not a number", []string{missing, "two", "8", out}, config.ErrNegativeCap},
		{"unknown strategy", []string{"--strategy", "random", missing, "2", "8", out}, config.ErrUnknownStrategy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.ErrorIs(t, err, tc.want)
			assert.NoFileExists(t, out)
		})
	}
}

func TestRoot_NonIntegerCapMessage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dict.txt")
	_, err := execute(t, writeFile(t, eightBit), "two", "8", out)
	require.ErrorIs(t, err, config.ErrNegativeCap)
	assert.Contains(t, err.Error(), "non-negative integer")
	assert.Contains(t, err.Error(), `"two"`)
}

func TestRoot_BadLogLevelFromConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dict.txt")
	cfgPath := filepath.Join(t.TempDir(), "ternclique.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: trace\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, writeFile(t, eightBit), "2", "8", out)
	require.ErrorIs(t, err, config.ErrUnknownLogLevel)
	assert.NoFileExists(t, out)
}

// TestRoot_MaxDegreeMembers writes the star around the highest-degree vector
// as a member list, even though its outer members conflict.
func TestRoot_MaxDegreeMembers(t *testing.T) {
	in := writeFile(t, "0X XX 1X\n")
	out := filepath.Join(t.TempDir(), "dict.txt")
	cfgPath := filepath.Join(t.TempDir(), "ternclique.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("allowed_lengths: [2]\n"), 0o644))

	stdout, err := execute(t, "--config", cfgPath, "--strategy", "max-degree", "--format", "members", in, "3", "2", out)
	require.NoError(t, err)
	assert.Equal(t, "Only 1 dictionary entries are possible\n", stdout)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Clique 1: {2, 1, 3}\n", string(got))
}

func TestRoot_WrongArgCount(t *testing.T) {
	_, err := execute(t, "a", "b")
	require.Error(t, err)
}

func TestGraph_Stats(t *testing.T) {
	in := writeFile(t, eightBit)

	stdout, err := execute(t, "graph", "--matrix", in, "8")
	require.NoError(t, err)
	assert.Contains(t, stdout, "edges:      3\n")
	assert.Contains(t, stdout, "components: 2\n")
	assert.Contains(t, stdout, "isolated:   1\n")
	assert.Contains(t, stdout, "0 1 1 0")
}
