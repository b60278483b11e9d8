package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
game:
  towns_file: data/towns.json
  starting_town: Hutchinson
  seed: 42
journal:
  backend: sqlite
  path: journal.db
api:
  addr: ":9999"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/towns.json", cfg.Game.TownsFile)
	assert.Equal(t, "Hutchinson", cfg.Game.StartingTown)
	assert.Equal(t, "Hutchinson", cfg.Game.FallbackTown)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "sqlite", cfg.Journal.Backend)
	assert.Equal(t, ":9999", cfg.API.Addr)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"game":{"starting_town":"Glencoe"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Glencoe", cfg.Game.StartingTown)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `api: {}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "towns.json", cfg.Game.TownsFile)
	assert.Equal(t, "Glencoe", cfg.Game.StartingTown)
	assert.Equal(t, "jsonl", cfg.Journal.Backend)
	assert.Equal(t, "journal.log", cfg.Journal.Path)
	assert.Equal(t, ":9090", cfg.Metrics.PromAddr)
	assert.Equal(t, ":8080", cfg.API.Addr)
	assert.Equal(t, "savegame.json", cfg.Persist.LocalPath)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", `game: {starting_town: Glencoe}`)
	t.Setenv("PDT_GAME__STARTING_TOWN", "Willmar")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Willmar", cfg.Game.StartingTown)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.toml", `x = 1`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidJournalBackend(t *testing.T) {
	path := writeConfig(t, "config.yaml", `journal: {backend: mongo}`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown backend")
}

func TestMQTTValidate(t *testing.T) {
	cfg := MQTTConfig{}
	assert.NoError(t, cfg.Validate())

	cfg.Enabled = true
	assert.ErrorContains(t, cfg.Validate(), "broker")

	cfg.Client.Broker = "tcp://localhost:1883"
	assert.ErrorContains(t, cfg.Validate(), "client_id")

	cfg.Client.ClientID = "tycoon"
	assert.NoError(t, cfg.Validate())
}
