package aes256

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// Rounds is the number of AES-256 encryption rounds.
	Rounds = 14
	// ScheduleSize is the size of the expanded key schedule in bytes: one
	// round key per round plus the initial whitening key.
	ScheduleSize = (Rounds + 1) * BlockSize
)

// Key is a 256-bit AES key.
type Key [KeySize]byte

// Block is a single 128-bit AES block, stored column-major.
type Block [BlockSize]byte

// Schedule is the expanded AES-256 key: fifteen consecutive 16-byte round
// keys. Use ExpandKey to fill it.
type Schedule [ScheduleSize]byte

// RoundKey returns round key i, 0 <= i <= Rounds. The returned array
// aliases the schedule and must not be written to.
func (s *Schedule) RoundKey(i int) *[BlockSize]byte {
	return (*[BlockSize]byte)(s[i*BlockSize : (i+1)*BlockSize])
}

// EncryptBlock encrypts state in place using an expanded key schedule.
func EncryptBlock(state *Block, schedule *Schedule) {
	encrypt(state, schedule, nil)
}

// encrypt runs the initial key whitening, 13 full rounds and the final
// round without MixColumns. The control flow never depends on the data.
func encrypt(state *Block, schedule *Schedule, obs Observer) {
	observe(obs, 0, StepInput, state)
	addRoundKey(state, schedule.RoundKey(0))
	observe(obs, 0, StepAddRoundKey, state)

	for round := 1; round < Rounds; round++ {
		subBytes(state)
		observe(obs, round, StepSubBytes, state)
		shiftRows(state)
		observe(obs, round, StepShiftRows, state)
		mixColumns(state)
		observe(obs, round, StepMixColumns, state)
		addRoundKey(state, schedule.RoundKey(round))
		observe(obs, round, StepAddRoundKey, state)
	}

	subBytes(state)
	observe(obs, Rounds, StepSubBytes, state)
	shiftRows(state)
	observe(obs, Rounds, StepShiftRows, state)
	addRoundKey(state, schedule.RoundKey(Rounds))
	observe(obs, Rounds, StepAddRoundKey, state)
}
