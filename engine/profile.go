package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"pkgup/core"
)

// Step is one unit of scripted engine work.
type Step struct {
	Name    string `yaml:"name"`
	Message string `yaml:"message,omitempty"`
}

// Profile describes a scripted engine run: the steps to execute on the
// event loop and the status to report when they finish.
type Profile struct {
	Name   string `yaml:"name"`
	Steps  []Step `yaml:"steps"`
	Status int    `yaml:"status"`
}

// LoadProfile reads and parses a YAML profile. Failure modes map onto the
// recognized domain error kinds so the exit resolver can report them with
// their one-line contracts:
//
//   - unreadable due to permissions -> permission-denied (EACCES)
//   - path is a directory           -> is-a-directory (EISDIR)
//   - malformed YAML                -> parse error
//
// Any other failure (for example a missing file) is returned as-is and
// reported as unclassified.
func LoadProfile(path string) (*Profile, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, core.ErrPermissionDenied(path)
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, core.ErrIsADirectory(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, core.ErrPermissionDenied(path)
		}
		return nil, err
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, core.ErrParse(fmt.Sprintf("invalid profile %s: %v", path, err))
	}
	return &profile, nil
}
