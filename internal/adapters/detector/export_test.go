package detector

// NewHostWith creates a Host with injected probes for testing.
func NewHostWith(goos string, env map[string]string, numCPU int) *Host {
	return &Host{
		goos:   goos,
		getenv: func(key string) string { return env[key] },
		numCPU: func() int { return numCPU },
	}
}
