package aes256

// Cipher is an AES-256 block encrypter bound to one expanded key.
//
// A Cipher is immutable after New returns, so Encrypt may be called from
// multiple goroutines at once on distinct blocks, provided the configured
// observer (if any) is itself safe for concurrent use.
type Cipher struct {
	schedule Schedule
	observer Observer
}

// New expands key and returns a Cipher that encrypts with it. The key is
// copied; later changes to it do not affect the Cipher.
func New(key *Key, opts ...Option) *Cipher {
	cfg := &cipherConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cipher{observer: cfg.observer}
	ExpandKey(key, &c.schedule)
	return c
}

// Encrypt encrypts state in place.
func (c *Cipher) Encrypt(state *Block) {
	encrypt(state, &c.schedule, c.observer)
}

// Schedule returns a copy of the expanded key schedule.
func (c *Cipher) Schedule() Schedule {
	return c.schedule
}

// BlockSize returns the cipher's block size in bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}
