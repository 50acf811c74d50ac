package packaging

// SystemdController abstracts systemd unit management for testability.
// All methods that modify state must be idempotent: repeating an operation
// that is already applied returns nil.
type SystemdController interface {
	// IsAvailable returns true if systemd is the running init system and
	// systemctl is on PATH.
	IsAvailable() bool

	// DaemonReload executes systemctl daemon-reload to reload unit file changes.
	DaemonReload() error

	// Enable enables the named unit to start on boot.
	Enable(unit string) error

	// Disable disables the named unit from starting on boot.
	Disable(unit string) error

	// Start starts the named unit.
	Start(unit string) error

	// Stop stops the named unit. Returns nil if the unit is not running.
	Stop(unit string) error

	// IsActive returns true if the named unit is currently active.
	IsActive(unit string) bool

	// IsEnabled returns true if the named unit is enabled.
	IsEnabled(unit string) bool
}

// RootChecker abstracts privilege checking for testability.
type RootChecker interface {
	// IsRoot returns true if the current process has root privileges.
	IsRoot() bool
}
