package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

func TestValidateSnapshot(t *testing.T) {
	a := assert.New(t)
	dir := chdir(t)

	obj := map[string]int{"pot": 200}
	ValidateSnapshot(t, obj, 0)
	ValidateSnapshot(t, obj, 0)

	first, err := os.ReadFile(filepath.Join(dir, "testdata", "snapshot.TestValidateSnapshot-0.json"))
	require.NoError(t, err)
	a.Equal("{\n  \"pot\": 200\n}\n", string(first))

	_, err = os.Stat(filepath.Join(dir, "testdata", "snapshot.TestValidateSnapshot-1.json"))
	a.NoError(err)

	// a third call compares against the file written by the first
	require.NoError(t, os.Rename(
		filepath.Join(dir, "testdata", "snapshot.TestValidateSnapshot-0.json"),
		filepath.Join(dir, "testdata", "snapshot.TestValidateSnapshot-2.json"),
	))
	ValidateSnapshot(t, obj, 0)
}
