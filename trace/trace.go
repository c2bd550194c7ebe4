// Package trace collects and logs the intermediate states of AES-256
// encryptions through the aes256.Observer hook.
package trace

import (
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/vaultsandbox/aes256"
)

// Event is one observed intermediate state.
type Event struct {
	Round int
	Step  aes256.Step
	State aes256.Block
}

// String renders the event in the "round N step: hex" trace format.
func (e Event) String() string {
	return fmt.Sprintf("round %d %s: %s", e.Round, e.Step,
		hex.EncodeToString(e.State[:]))
}

// Recorder is an aes256.Observer that keeps every event it sees. It is safe
// for concurrent use, though events from concurrent encryptions interleave.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe implements aes256.Observer.
func (r *Recorder) Observe(round int, step aes256.Step, state aes256.Block) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{Round: round, Step: step, State: state})
}

// Events returns a copy of the recorded events in observation order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}

// LogObserver returns an aes256.Observer that writes every step to the
// package logger at trace level.
func LogObserver() aes256.Observer {
	return aes256.ObserverFunc(func(round int, step aes256.Step, state aes256.Block) {
		log.Tracef("%v", Event{Round: round, Step: step, State: state})
	})
}

// LogKey writes key as hex to the package logger at debug level, preceded
// by label.
func LogKey(label string, key *aes256.Key) {
	log.Debugf("%s%v", label, newLogClosure(func() string {
		return hex.EncodeToString(key[:])
	}))
}

// LogSchedule writes the round keys of schedule to the package logger at
// debug level. Rendering only happens when debug logging is enabled.
func LogSchedule(schedule *aes256.Schedule) {
	log.Debugf("Expanded key schedule:\n%v", newLogClosure(func() string {
		return FormatSchedule(schedule)
	}))
	log.Tracef("Raw key schedule: %v", newLogClosure(func() string {
		return spew.Sdump(schedule[:])
	}))
}

// FormatSchedule renders one "keyN:hex" line per round key.
func FormatSchedule(schedule *aes256.Schedule) string {
	var b strings.Builder
	for i := 0; i <= aes256.Rounds; i++ {
		fmt.Fprintf(&b, "key%d:%s\n", i, hex.EncodeToString(schedule.RoundKey(i)[:]))
	}
	return b.String()
}

type multiObserver []aes256.Observer

func (m multiObserver) Observe(round int, step aes256.Step, state aes256.Block) {
	for _, obs := range m {
		obs.Observe(round, step, state)
	}
}

// Multi returns an observer that forwards every step to each of observers in
// order. Nil observers are skipped.
func Multi(observers ...aes256.Observer) aes256.Observer {
	m := make(multiObserver, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			m = append(m, obs)
		}
	}
	return m
}
