package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/elearning-parser/internal/fileaccess"
)

// DefaultRemoteFileName is the TOML profile file RemoteProfiles looks
// for alongside DefaultFileName.
const DefaultRemoteFileName = ".elearning.remote.toml"

// RemoteProfile is one named S3-like connection profile, the source
// fileaccess.RemoteConfig is built from (spec's supplemented Remote
// FileAccess variant, see SPEC_FULL.md Domain Stack). Field names are
// lowercase to match typical TOML key casing; toml.Unmarshal matches
// them case-insensitively against the struct tags below.
type RemoteProfile struct {
	Bucket   string `toml:"bucket"`
	Prefix   string `toml:"prefix"`
	Region   string `toml:"region"`
	Endpoint string `toml:"endpoint"`
}

// RemoteProfiles is a TOML document of named profiles:
//
//	[profiles.default]
//	bucket = "elearning-packages"
//	prefix = "incoming/"
//	region = "us-east-1"
//
//	[profiles.staging]
//	bucket = "elearning-packages-staging"
//	prefix = "incoming/"
//	region = "us-west-2"
//	endpoint = "https://minio.internal:9000"
type RemoteProfiles struct {
	Profiles map[string]RemoteProfile `toml:"profiles"`
}

// LoadRemoteProfiles reads DefaultRemoteFileName from dir. A missing
// file returns an empty RemoteProfiles, not an error — callers that
// never use the Remote FileAccess variant should not need this file
// to exist.
func LoadRemoteProfiles(dir string) (*RemoteProfiles, error) {
	path := dir + string(os.PathSeparator) + DefaultRemoteFileName
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RemoteProfiles{Profiles: map[string]RemoteProfile{}}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", DefaultRemoteFileName, err)
	}

	var profiles RemoteProfiles
	if err := toml.Unmarshal(content, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", DefaultRemoteFileName, err)
	}
	return &profiles, nil
}

// Profile looks up a named profile and converts it to the
// fileaccess.RemoteConfig the Remote FileAccess constructor expects.
func (p *RemoteProfiles) Profile(name string) (fileaccess.RemoteConfig, bool) {
	prof, ok := p.Profiles[name]
	if !ok {
		return fileaccess.RemoteConfig{}, false
	}
	return fileaccess.RemoteConfig{
		Bucket:   prof.Bucket,
		Prefix:   prof.Prefix,
		Region:   prof.Region,
		Endpoint: prof.Endpoint,
	}, true
}
