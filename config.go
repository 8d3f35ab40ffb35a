package qsphere

// Config holds registry settings
type Config struct {
	Palette []string
}

// NewConfig returns the default configuration. The palette colors are
// assigned round-robin to newly added qubits.
func NewConfig() *Config {
	return &Config{
		Palette: []string{
			"#ffd700",
			"#00e5ff",
			"#ff4d6d",
			"#7cfc00",
			"#ff8c00",
			"#da70d6",
		},
	}
}
