package common

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Set at build time via -ldflags; the defaults mark an untagged dev build.
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

func GetVersion() string   { return Version }
func GetBuild() string     { return Build }
func GetGitCommit() string { return GitCommit }

// LoadVersionFromFile fills in Version and Build from a `.version` file next
// to the binary. A value is only taken when the corresponding ldflags default
// is still in place, so stamped builds win over the file. Lines are
// `key: value`; blanks and `#` comments are skipped.
func LoadVersionFromFile() {
	exe, err := os.Executable()
	if err != nil {
		return
	}

	f, err := os.Open(filepath.Join(filepath.Dir(exe), ".version"))
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		switch strings.TrimSpace(key) {
		case "version":
			if Version == "dev" {
				Version = strings.TrimSpace(val)
			}
		case "build":
			if Build == "unknown" {
				Build = strings.TrimSpace(val)
			}
		}
	}
}
