package filesystem

type platformConfig struct {
	pending *PendingRegistry
}

// PlatformOption configures the platform returned by NewPlatform.
type PlatformOption func(*platformConfig)

// WithPendingRegistry makes the platform record deferred deletions in r on
// systems that have no native delete-at-reboot facility.
func WithPendingRegistry(r *PendingRegistry) PlatformOption {
	return func(c *platformConfig) {
		c.pending = r
	}
}
