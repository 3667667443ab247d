package tensor

// Config controls per-tensor behavior.
//
// Every tensor owns its own copy; configs are plain values and are never
// shared mutable state. The zero value disables both capabilities — use
// DefaultConfig for the permissive default.
type Config struct {
	// Broadcastable allows this tensor to participate in broadcast
	// expansion when a binary operation sees mismatched shapes. Both
	// operands must allow it.
	Broadcastable bool

	// Freezable allows Freeze to succeed on this tensor.
	Freezable bool
}

// DefaultConfig returns the standard configuration: broadcastable and
// freezable.
func DefaultConfig() Config {
	return Config{Broadcastable: true, Freezable: true}
}
