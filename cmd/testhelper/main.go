// Command testhelper exchanges AES-256 test vectors with other
// implementations over JSON on stdin and stdout.
//
//	echo '{"key":"00..1f","plaintext":"0011..ff"}' | testhelper encrypt
//	echo '{"key":"00..1f"}' | testhelper expand-key
//	echo '{"key":"00..1f","plaintext":"0011..ff"}' | testhelper --loglevel=trace trace
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vaultsandbox/aes256"
	"github.com/vaultsandbox/aes256/internal/keymaterial"
	"github.com/vaultsandbox/aes256/trace"
)

// errMissingKey is returned when the input carries neither a key nor a
// secret to derive one from.
var errMissingKey = errors.New("missing key or secret")

// Input is the JSON document read from stdin. Either Key or Secret must be
// set; Plaintext is required by encrypt and trace.
type Input struct {
	Key       string `json:"key,omitempty"`
	Secret    string `json:"secret,omitempty"`
	Salt      string `json:"salt,omitempty"`
	Info      string `json:"info,omitempty"`
	Plaintext string `json:"plaintext,omitempty"`
}

type EncryptOutput struct {
	Ciphertext string `json:"ciphertext"`
}

type ExpandKeyOutput struct {
	RoundKeys []string `json:"roundKeys"`
}

type StepOutput struct {
	Round int    `json:"round"`
	Step  string `json:"step"`
	State string `json:"state"`
}

type TraceOutput struct {
	Steps      []StepOutput `json:"steps"`
	Ciphertext string       `json:"ciphertext"`
}

func runEncrypt(cfg *Config) error {
	in, err := readInput(cfg)
	if err != nil {
		return err
	}

	key, block, err := keyAndBlock(in)
	if err != nil {
		return err
	}

	aes256.New(key, aes256.WithObserver(trace.LogObserver())).Encrypt(block)

	return writeJSON(cfg, EncryptOutput{Ciphertext: keymaterial.ToHex(block[:])})
}

func runExpandKey(cfg *Config) error {
	in, err := readInput(cfg)
	if err != nil {
		return err
	}

	key, err := resolveKey(in)
	if err != nil {
		return err
	}

	trace.LogKey("cipher key: ", key)

	var schedule aes256.Schedule
	aes256.ExpandKey(key, &schedule)
	trace.LogSchedule(&schedule)

	output := ExpandKeyOutput{
		RoundKeys: make([]string, 0, aes256.Rounds+1),
	}
	for i := 0; i <= aes256.Rounds; i++ {
		output.RoundKeys = append(output.RoundKeys, keymaterial.ToHex(schedule.RoundKey(i)[:]))
	}

	return writeJSON(cfg, output)
}

func runTrace(cfg *Config) error {
	in, err := readInput(cfg)
	if err != nil {
		return err
	}

	key, block, err := keyAndBlock(in)
	if err != nil {
		return err
	}

	rec := trace.NewRecorder()
	aes256.New(key, aes256.WithObserver(trace.Multi(rec, trace.LogObserver()))).Encrypt(block)

	events := rec.Events()
	output := TraceOutput{
		Steps:      make([]StepOutput, 0, len(events)),
		Ciphertext: keymaterial.ToHex(block[:]),
	}
	for _, e := range events {
		output.Steps = append(output.Steps, StepOutput{
			Round: e.Round,
			Step:  e.Step.String(),
			State: keymaterial.ToHex(e.State[:]),
		})
	}

	return writeJSON(cfg, output)
}

func readInput(cfg *Config) (*Input, error) {
	data, err := io.ReadAll(cfg.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}

	return &in, nil
}

// resolveKey returns the raw key if one was given, and otherwise derives one
// from the secret with HKDF-SHA-512.
func resolveKey(in *Input) (*aes256.Key, error) {
	if in.Key != "" {
		key, err := keymaterial.ParseKeyHex(in.Key)
		if err != nil {
			return nil, fmt.Errorf("invalid key: %w", err)
		}
		return key, nil
	}

	if in.Secret == "" {
		return nil, fmt.Errorf("invalid key: %w", errMissingKey)
	}

	secret, err := keymaterial.DecodeBase64(in.Secret)
	if err != nil {
		return nil, fmt.Errorf("invalid secret: %w", err)
	}

	var salt []byte
	if in.Salt != "" {
		if salt, err = keymaterial.DecodeBase64(in.Salt); err != nil {
			return nil, fmt.Errorf("invalid salt: %w", err)
		}
	}

	info := in.Info
	if info == "" {
		info = keymaterial.HKDFContext
	}

	key, err := keymaterial.DeriveKey(secret, salt, []byte(info))
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

func keyAndBlock(in *Input) (*aes256.Key, *aes256.Block, error) {
	key, err := resolveKey(in)
	if err != nil {
		return nil, nil, err
	}

	block, err := keymaterial.ParseBlockHex(in.Plaintext)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid plaintext: %w", err)
	}

	return key, block, nil
}

func writeJSON(cfg *Config, v any) error {
	if err := json.NewEncoder(cfg.Stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
