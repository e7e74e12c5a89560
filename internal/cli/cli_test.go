package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{Algorithm: "kmp", Color: false, Workers: 1}
}

func runCommand(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := NewApp(testConfig(), strings.NewReader(in), &out, &errOut)
	root := NewRootCommand(app)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBordersCommand(t *testing.T) {
	got, err := runCommand(t, "", "borders", "abracadabra")
	require.NoError(t, err)
	assert.Contains(t, got, "border: [0 0 0 1 0 1 0 1 2 3 4]")
	assert.Contains(t, got, "strict: [0 0 0 1 0 1 0 0 0 0 4]")
	assert.Contains(t, got, "z:      [0 0 0 1 0 1 0 4 0 0 1]")
}

func TestSearchCommandStdin(t *testing.T) {
	got, err := runCommand(t, "abracadabra", "search", "abr")
	require.NoError(t, err)
	assert.Equal(t, "stdin:0\nstdin:7\n", got)
}

func TestSearchCommandCount(t *testing.T) {
	got, err := runCommand(t, "aaaaa", "search", "--count", "aa")
	require.NoError(t, err)
	assert.Equal(t, "stdin: 4\n", got)
}

func TestSearchCommandStats(t *testing.T) {
	got, err := runCommand(t, "abracadabra", "search", "--stats", "abr")
	require.NoError(t, err)
	assert.Contains(t, got, "comparisons")
	assert.Contains(t, got, "occurrences")
}

func TestSearchCommandFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("abracadabra"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("no matches here"), 0o600))

	got, err := runCommand(t, "", "search", "abr", first, second)
	require.NoError(t, err)
	assert.Contains(t, got, first+":0")
	assert.Contains(t, got, first+":7")
	assert.NotContains(t, got, second+":")
}

func TestSearchCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "", "search", "abr", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestSearchCommandUnknownAlgorithm(t *testing.T) {
	_, err := runCommand(t, "abracadabra", "search", "-a", "nope", "abr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
}

func TestSearchCommandEveryAlgorithm(t *testing.T) {
	for _, algo := range []string{"naive", "border", "kmp", "bmh"} {
		got, err := runCommand(t, "abracadabra", "search", "-a", algo, "abr")
		require.NoError(t, err, "algorithm %s", algo)
		assert.Equal(t, "stdin:0\nstdin:7\n", got, "algorithm %s", algo)
	}
}

func TestDrawCommand(t *testing.T) {
	dotFile := filepath.Join(t.TempDir(), "out.dot")
	got, err := runCommand(t, "", "draw", "abab", "-o", dotFile)
	require.NoError(t, err)
	assert.Contains(t, got, "wrote "+dotFile)

	content, err := os.ReadFile(dotFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "strict digraph")
}

func TestAlgorithmByName(t *testing.T) {
	for _, name := range []string{"naive", "border", "kmp", "bmh"} {
		algo, err := algorithmByName(name)
		require.NoError(t, err)
		assert.NotNil(t, algo)
	}
	_, err := algorithmByName("suffix")
	assert.Error(t, err)
}
