package aes256

// cipherConfig holds configuration for a Cipher.
type cipherConfig struct {
	observer Observer
}

// Option configures a Cipher.
type Option func(*cipherConfig)

// WithObserver sets an observer that is called after every transformation
// of every block encrypted by the cipher. A nil observer disables tracing.
func WithObserver(obs Observer) Option {
	return func(c *cipherConfig) {
		c.observer = obs
	}
}
