// Package detector probes the host: platform identifier, processor count and
// whether output goes to an interactive terminal.
package detector

import (
	"os"
	"runtime"
	"strings"

	"go.trai.ch/zerr"
)

// Host implements ports.HostProbe for the running process.
type Host struct {
	goos   string
	getenv func(string) string
	numCPU func() int
}

// NewHost creates a Host probe for the current process.
func NewHost() *Host {
	return &Host{
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		numCPU: runtime.NumCPU,
	}
}

// HostID returns the operating system identifier.
// MSYS2, MinGW and Cygwin shells announce themselves through MSYSTEM and
// OSTYPE; those values are appended so they classify as Windows-like.
func (h *Host) HostID() string {
	parts := []string{h.goos}
	for _, key := range []string{"MSYSTEM", "OSTYPE"} {
		if v := strings.TrimSpace(h.getenv(key)); v != "" {
			parts = append(parts, strings.ToLower(v))
		}
	}
	return strings.Join(parts, "-")
}

// ProcessorCount returns the number of logical CPUs usable by the process.
func (h *Host) ProcessorCount() (int, error) {
	n := h.numCPU()
	if n < 1 {
		return 0, zerr.With(zerr.New("invalid processor count"), "count", n)
	}
	return n, nil
}
