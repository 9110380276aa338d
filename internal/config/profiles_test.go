package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surj/an-import/internal/core"
)

const sampleProfiles = `profiles:
  "SURJ Action": "aaaa1111"
  "SURJ Bay Area": "bbbb2222"
`

func TestParseProfiles(t *testing.T) {
	p, err := ParseProfiles(strings.NewReader(sampleProfiles))
	require.NoError(t, err)

	tok, err := p.Token("SURJ Bay Area")
	require.NoError(t, err)
	assert.Equal(t, "bbbb2222", tok)
	assert.Equal(t, []string{"SURJ Action", "SURJ Bay Area"}, p.Names())
}

func TestProfilesToken_Unknown(t *testing.T) {
	p, err := ParseProfiles(strings.NewReader(sampleProfiles))
	require.NoError(t, err)

	_, err = p.Token("SURJ Nowhere")
	require.Error(t, err)
	assert.True(t, core.IsConfigurationError(err))
	assert.Equal(t, "SURJ Nowhere: API Token not found", err.Error())
	assert.Equal(t, "CFG001", core.MapError(err).Code)
}

func TestParseProfiles_Empty(t *testing.T) {
	p, err := ParseProfiles(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, p.Names())
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "an_profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleProfiles), 0o600))

	p, err := LoadProfiles(path)
	require.NoError(t, err)
	assert.Len(t, p.Names(), 2)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("profiles: [unclosed"), 0o600))
	_, err = LoadProfiles(bad)
	assert.True(t, core.IsConfigurationError(err))

	_, err = LoadProfiles(filepath.Join(dir, "missing.yaml"))
	assert.True(t, core.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "missing.yaml")
}
