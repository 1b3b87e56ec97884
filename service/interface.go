package service

// Service is a process-level collaborator of the simulation that owns something
// the ECS world cannot: the beep speaker or the spectator websocket listener.
// The hub drives every service through Init, then Start, and finally Stop in
// reverse start order when antigen exits.
type Service interface {
	// Name is the key the hub uses for lookup and dependency edges ("audio", "network")
	Name() string

	// Dependencies lists service names whose Init must complete first
	Dependencies() []string

	// Init receives the config section for the service plus any simulation
	// handle it needs; the accepted arg shapes are documented per service
	Init(args ...any) error

	// Start opens the speaker or listener; runs only after every Init succeeded
	Start() error

	// Stop closes the speaker or drains peers; the hub may call it more than once
	Stop() error
}

// ResourcePublisher hands a resource pointer (e.g. *engine.AudioResource) to the
// world's resource registry
type ResourcePublisher func(resource any)

// ResourceContributor marks a service that exposes a handle to systems.
// Audio publishes its player and network publishes its peer status.
type ResourceContributor interface {
	Contribute(publish ResourcePublisher)
}
