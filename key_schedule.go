package aes256

import (
	"github.com/vaultsandbox/aes256/internal/gf"
	"github.com/vaultsandbox/aes256/internal/sbox"
)

// ExpandKey derives the full AES-256 key schedule from key and writes it to
// schedule. The first two round keys are the key itself; the remaining 52
// words are derived one 4-byte word at a time.
func ExpandKey(key *Key, schedule *Schedule) {
	copy(schedule[:KeySize], key[:])

	var temp [4]byte
	iteration := 1
	for offset := KeySize; offset < ScheduleSize; offset += 4 {
		copy(temp[:], schedule[offset-4:offset])

		switch offset % KeySize {
		case 0:
			scheduleCore(&temp, iteration)
			iteration++
		case KeySize / 2:
			// AES-256 only: an extra substitution halfway through each
			// 32-byte group.
			subWord(&temp)
		}

		for i := 0; i < 4; i++ {
			schedule[offset+i] = schedule[offset+i-KeySize] ^ temp[i]
		}
	}
}

// scheduleCore applies RotWord, SubWord and the round constant to word.
func scheduleCore(word *[4]byte, iteration int) {
	word[0], word[1], word[2], word[3] = word[1], word[2], word[3], word[0]
	subWord(word)
	word[0] ^= gf.Rcon(iteration)
}

func subWord(word *[4]byte) {
	for i := range word {
		word[i] = sbox.Forward(word[i])
	}
}
