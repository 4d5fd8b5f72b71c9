package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFilesPresent(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsKDLFile(t *testing.T) {
	dir := t.TempDir()
	kdl := "scorm2004 {\n    validate-xsd true\n}\nparser {\n    strict-mode true\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(kdl), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, cfg.ValidateXMLAgainstSchema)
	assert.True(t, cfg.StrictMode)
}

func TestLoadEnvOverridesKDL(t *testing.T) {
	dir := t.TempDir()
	kdl := "scorm2004 {\n    validate-xsd true\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(kdl), 0o644))

	t.Setenv(EnvValidateXSD, "false")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.ValidateXMLAgainstSchema)
}

func TestValidatorRejectsNilConfig(t *testing.T) {
	v := NewValidator()
	assert.Error(t, v.ValidateAndSetDefaults(nil))
}

func TestLoadRemoteProfilesMissingFile(t *testing.T) {
	dir := t.TempDir()
	profiles, err := LoadRemoteProfiles(dir)
	require.NoError(t, err)
	_, ok := profiles.Profile("default")
	assert.False(t, ok)
}

func TestLoadRemoteProfilesParsesTOML(t *testing.T) {
	dir := t.TempDir()
	toml := "[profiles.default]\nbucket = \"elearning-packages\"\nprefix = \"incoming/\"\nregion = \"us-east-1\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultRemoteFileName), []byte(toml), 0o644))

	profiles, err := LoadRemoteProfiles(dir)
	require.NoError(t, err)
	cfg, ok := profiles.Profile("default")
	require.True(t, ok)
	assert.Equal(t, "elearning-packages", cfg.Bucket)
	assert.Equal(t, "incoming/", cfg.Prefix)
	assert.Equal(t, "us-east-1", cfg.Region)
}
