package aes256

// Step identifies which elementary transformation produced a traced state.
type Step uint8

const (
	// StepInput is the plaintext before any transformation.
	StepInput Step = iota
	// StepSubBytes follows the S-box substitution.
	StepSubBytes
	// StepShiftRows follows the row rotation.
	StepShiftRows
	// StepMixColumns follows the column mixing. It never occurs in the
	// final round.
	StepMixColumns
	// StepAddRoundKey follows the round key XOR.
	StepAddRoundKey
)

// String returns the short label used in trace output.
func (s Step) String() string {
	switch s {
	case StepInput:
		return "input"
	case StepSubBytes:
		return "sub"
	case StepShiftRows:
		return "shift"
	case StepMixColumns:
		return "mix"
	case StepAddRoundKey:
		return "add key"
	default:
		return "unknown"
	}
}

// Observer receives the intermediate state after every transformation of
// an encryption. Round 0 is the initial key whitening and round Rounds is
// the final round. The state is a copy; changing it has no effect on the
// encryption.
type Observer interface {
	Observe(round int, step Step, state Block)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(round int, step Step, state Block)

// Observe calls f(round, step, state).
func (f ObserverFunc) Observe(round int, step Step, state Block) {
	f(round, step, state)
}

func observe(obs Observer, round int, step Step, state *Block) {
	if obs != nil {
		obs.Observe(round, step, *state)
	}
}
