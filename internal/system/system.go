// Package system reads the small set of host facts the pro client
// depends on: the Ubuntu release series the machine runs and whether the
// current process has root privileges.
package system

import (
	"os"
	"strings"
)

// osReleasePath is a variable so tests can point it at a fixture.
var osReleasePath = "/etc/os-release"

// geteuid is a variable so tests can simulate root and non-root callers.
var geteuid = os.Geteuid

// Series returns the Ubuntu release series the machine runs (for example
// "jammy"). It reads VERSION_CODENAME from /etc/os-release. An unreadable
// or incomplete file yields an empty series; callers treat that as "no
// availability information".
func Series() string {
	data, err := os.ReadFile(osReleasePath)
	if err != nil {
		return ""
	}
	return parseSeries(string(data))
}

func parseSeries(osRelease string) string {
	for _, line := range strings.Split(osRelease, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "VERSION_CODENAME=") {
			continue
		}
		value := strings.TrimPrefix(line, "VERSION_CODENAME=")
		return strings.Trim(value, `"`)
	}
	return ""
}

// IsRoot reports whether the process runs with effective uid 0.
func IsRoot() bool {
	return geteuid() == 0
}
