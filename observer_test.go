package aes256

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

type observedStep struct {
	round int
	step  Step
	state Block
}

func recordSteps(key *Key, state *Block) []observedStep {
	var steps []observedStep
	c := New(key, WithObserver(ObserverFunc(func(round int, step Step, s Block) {
		steps = append(steps, observedStep{round, step, s})
	})))
	c.Encrypt(state)
	return steps
}

func TestObserver_RoundCount(t *testing.T) {
	for i := 0; i < 8; i++ {
		steps := recordSteps(randomKey(t), randomBlock(t))

		counts := make(map[Step]int)
		for _, s := range steps {
			counts[s.step]++
		}

		require.Equal(t, 1, counts[StepInput])
		require.Equal(t, Rounds, counts[StepSubBytes])
		require.Equal(t, Rounds, counts[StepShiftRows])
		require.Equal(t, Rounds-1, counts[StepMixColumns])
		require.Equal(t, Rounds+1, counts[StepAddRoundKey])
		require.Len(t, steps, 2+4*(Rounds-1)+3)
	}
}

func TestObserver_Order(t *testing.T) {
	steps := recordSteps(randomKey(t), randomBlock(t))

	require.Equal(t, 0, steps[0].round)
	require.Equal(t, StepInput, steps[0].step)
	require.Equal(t, 0, steps[1].round)
	require.Equal(t, StepAddRoundKey, steps[1].step)

	i := 2
	for round := 1; round < Rounds; round++ {
		for _, want := range []Step{StepSubBytes, StepShiftRows, StepMixColumns, StepAddRoundKey} {
			require.Equal(t, round, steps[i].round)
			require.Equal(t, want, steps[i].step)
			i++
		}
	}
	for _, want := range []Step{StepSubBytes, StepShiftRows, StepAddRoundKey} {
		require.Equal(t, Rounds, steps[i].round)
		require.Equal(t, want, steps[i].step)
		i++
	}
}

func TestObserver_FIPS197Trace(t *testing.T) {
	steps := recordSteps(keyFromHex(t, fips197Key), blockFromHex(t, fips197Plaintext))

	// FIPS-197 Appendix C.3.
	want := []struct {
		index int
		round int
		step  Step
		state string
	}{
		{0, 0, StepInput, "00112233445566778899aabbccddeeff"},
		{1, 0, StepAddRoundKey, "00102030405060708090a0b0c0d0e0f0"},
		{2, 1, StepSubBytes, "63cab7040953d051cd60e0e7ba70e18c"},
		{3, 1, StepShiftRows, "6353e08c0960e104cd70b751bacad0e7"},
		{4, 1, StepMixColumns, "5f72641557f5bc92f7be3b291db9f91a"},
		{5, 1, StepAddRoundKey, "4f63760643e0aa85efa7213201a4e705"},
		{len(steps) - 4, 13, StepAddRoundKey, "627bceb9999d5aaac945ecf423f56da5"},
		{len(steps) - 3, 14, StepSubBytes, "aa218b56ee5ebeacdd6ecebf26e63c06"},
		{len(steps) - 2, 14, StepShiftRows, "aa5ece06ee6e3c56dde68bac2621bebf"},
		{len(steps) - 1, 14, StepAddRoundKey, fips197Ciphertext},
	}

	for _, w := range want {
		got := steps[w.index]
		require.Equal(t, w.round, got.round, "step %d", w.index)
		require.Equal(t, w.step, got.step, "step %d", w.index)
		require.Equal(t, w.state, hex.EncodeToString(got.state[:]), "step %d", w.index)
	}
}

func TestObserver_CannotMutateState(t *testing.T) {
	key := randomKey(t)
	plaintext := randomBlock(t)

	want := *plaintext
	New(key).Encrypt(&want)

	got := *plaintext
	New(key, WithObserver(ObserverFunc(func(_ int, _ Step, s Block) {
		for i := range s {
			s[i] = 0xff
		}
	}))).Encrypt(&got)

	require.Equal(t, want, got)
}

func TestStep_String(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{StepInput, "input"},
		{StepSubBytes, "sub"},
		{StepShiftRows, "shift"},
		{StepMixColumns, "mix"},
		{StepAddRoundKey, "add key"},
		{Step(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.step.String(); got != tt.want {
				t.Errorf("Step(%d).String() = %q, want %q", tt.step, got, tt.want)
			}
		})
	}
}
