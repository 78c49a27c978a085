package domain

import "strings"

// HostClass selects between command syntax variants.
type HostClass int

const (
	// HostPosix is any POSIX-like host.
	HostPosix HostClass = iota
	// HostWindows is a Windows host, including MinGW, MSYS and Cygwin environments.
	HostWindows
)

var windowsMarkers = []string{"windows", "mswin", "mingw", "cygwin", "msys"}

// ClassifyHost maps an operating system identifier to a host class.
func ClassifyHost(id string) HostClass {
	lower := strings.ToLower(id)
	for _, marker := range windowsMarkers {
		if strings.Contains(lower, marker) {
			return HostWindows
		}
	}
	return HostPosix
}

// String returns a human-readable name for the host class.
func (h HostClass) String() string {
	if h == HostWindows {
		return "windows"
	}
	return "posix"
}
