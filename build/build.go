// Package build reports what binary is running: the version stamped in with
// -ldflags plus the VCS details the Go toolchain embeds.
package build

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Info contains build metadata for the running binary.
type Info struct {
	Version   string
	GoVersion string
	Revision  string
	Time      string
	Modified  bool
}

// Current returns the Info of the running binary. version is the value
// stamped with -ldflags; when empty or "dev" the module version is used.
func Current(version string) Info {
	info := Info{Version: version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	return fromBuildInfo(version, bi)
}

func fromBuildInfo(version string, bi *debug.BuildInfo) Info {
	info := Info{
		Version:   version,
		GoVersion: bi.GoVersion,
	}

	if (info.Version == "" || info.Version == "dev") && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.time":
			info.Time = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}

	return info
}

// String renders the version followed by whatever VCS details are known,
// e.g. "v1.2.0 (3f2a9c1, 2025-06-01T10:00:00Z, go1.25.0)".
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "unknown"
	}

	var details []string

	if i.Revision != "" {
		rev := i.Revision
		if len(rev) > 7 { //nolint:mnd
			rev = rev[:7]
		}

		if i.Modified {
			rev += "-dirty"
		}

		details = append(details, rev)
	}

	if i.Time != "" {
		details = append(details, i.Time)
	}

	if i.GoVersion != "" {
		details = append(details, i.GoVersion)
	}

	if len(details) == 0 {
		return version
	}

	return fmt.Sprintf("%s (%s)", version, strings.Join(details, ", "))
}
