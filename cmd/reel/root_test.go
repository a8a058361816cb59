package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/store"
)

func TestForgetClearsSavedFocus(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	stateDir := filepath.Join(dir, "state")
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("store:\n  path: "+stateDir+"\n"), 0644))

	cat, err := adapter.SampleCatalog(nil)
	require.NoError(t, err)
	require.NotEmpty(t, cat.Items)

	fs, err := store.NewFocusStore(stateDir)
	require.NoError(t, err)
	require.NoError(t, fs.SaveFocus(cat.Name, cat.Items[0].ID))
	require.NoError(t, fs.Close())

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", configPath, "forget"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), cat.Name)

	fs, err = store.NewFocusStore(stateDir)
	require.NoError(t, err)
	defer fs.Close()
	_, ok := fs.GetFocus(cat.Name)
	assert.False(t, ok)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "reel "+Version+"\n", out.String())
}
