package yaml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNormalizesAliases(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nicknames.yaml")
	content := "aliases:\n  Sho: Shohei Ohtani\n  \"Big Papi\": David Ortiz\n  \"Vlad Jr.\": Vladimir Guerrero Jr.\n  empty: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, store.Len())

	name, ok := store.Expand("sho")
	assert.True(t, ok)
	assert.Equal(t, "Shohei Ohtani", name)

	name, ok = store.Expand("BIG  papi")
	assert.True(t, ok)
	assert.Equal(t, "David Ortiz", name)

	name, ok = store.Expand("vlad jr")
	assert.True(t, ok)
	assert.Equal(t, "Vladimir Guerrero Jr.", name)

	_, ok = store.Expand("empty")
	assert.False(t, ok)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Zero(t, store.Len())
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nicknames.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases: [unterminated"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "decode nicknames file")
}

func TestOpenUsesConfiguredPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nicknames.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases:\n  kid: Ken Griffey Jr.\n"), 0o600))
	config := viper.New()
	config.Set(NicknamesPathKey, path)

	store, err := Open(config)
	require.NoError(t, err)

	name, ok := store.Expand("Kid")
	assert.True(t, ok)
	assert.Equal(t, "Ken Griffey Jr.", name)
}
