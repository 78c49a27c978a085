package ports

//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

// HostProbe exposes facts about the machine kiln runs on.
type HostProbe interface {
	// HostID returns the operating system identifier used for host classification.
	HostID() string

	// ProcessorCount returns the number of logical processors.
	ProcessorCount() (int, error)
}
