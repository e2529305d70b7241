// Package credential turns plaintext passwords into salted one-way
// credentials and checks submitted passwords against them.
//
// A Credential is the (salt, hash) pair stored in place of a password. The
// salt is drawn from crypto/rand and hex encoded; the hash is
// hex(Hasher.Sum(salt, password)). Both are produced together by an Encoder
// and must be persisted together.
package credential

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/sampleapp/internal/common"
)

const (
	DefaultSaltLength = 32
	MinSaltLength     = 16

	// DefaultMaxPasswordLength bounds the bytes fed to the hasher.
	DefaultMaxPasswordLength = 1024

	maxSaltAttempts = 3
)

var ErrSaltExhausted = errors.New("could not draw a fresh salt")

// Credential is what gets persisted instead of a password.
type Credential struct {
	Salt string
	Hash string
}

// Encoder derives new credentials. It is safe for concurrent use as long as
// its random source is.
type Encoder struct {
	hasher            Hasher
	random            io.Reader
	saltLength        int
	maxPasswordLength int
}

type Option func(*Encoder)

// WithRandom replaces crypto/rand as the salt source.
func WithRandom(r io.Reader) Option {
	return func(e *Encoder) { e.random = r }
}

// WithSaltLength sets the number of random bytes per salt.
func WithSaltLength(n int) Option {
	return func(e *Encoder) { e.saltLength = n }
}

// WithMaxPasswordLength sets the largest accepted password, in bytes.
func WithMaxPasswordLength(n int) Option {
	return func(e *Encoder) { e.maxPasswordLength = n }
}

func NewEncoder(h Hasher, opts ...Option) (*Encoder, error) {
	if h == nil {
		return nil, errors.New("credential: nil hasher")
	}

	e := &Encoder{
		hasher:            h,
		random:            rand.Reader,
		saltLength:        DefaultSaltLength,
		maxPasswordLength: DefaultMaxPasswordLength,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.saltLength < MinSaltLength {
		return nil, fmt.Errorf("credential: salt length %d is below %d bytes", e.saltLength, MinSaltLength)
	}
	if e.maxPasswordLength < 1 {
		return nil, fmt.Errorf("credential: max password length must be positive")
	}

	return e, nil
}

// Encode draws a fresh salt and hashes password with it.
// It fails with common.ErrorInvalidInput for an empty or oversized password.
func (e *Encoder) Encode(password string) (Credential, error) {
	if err := e.check(password); err != nil {
		return Credential{}, err
	}

	salt, err := e.newSalt()
	if err != nil {
		return Credential{}, err
	}

	return e.seal(salt, password)
}

// Reencode is Encode for a password change: the returned credential never
// reuses prev.Salt.
func (e *Encoder) Reencode(prev Credential, password string) (Credential, error) {
	if err := e.check(password); err != nil {
		return Credential{}, err
	}

	for range maxSaltAttempts {
		salt, err := e.newSalt()
		if err != nil {
			return Credential{}, err
		}
		if salt != prev.Salt {
			return e.seal(salt, password)
		}
	}

	return Credential{}, ErrSaltExhausted
}

func (e *Encoder) check(password string) error {
	if len(password) == 0 {
		return fmt.Errorf("%w: empty password", common.ErrorInvalidInput)
	}
	if len(password) > e.maxPasswordLength {
		return fmt.Errorf("%w: password longer than %d bytes", common.ErrorInvalidInput, e.maxPasswordLength)
	}
	return nil
}

func (e *Encoder) newSalt() (string, error) {
	b := make([]byte, e.saltLength)
	if _, err := io.ReadFull(e.random, b); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (e *Encoder) seal(salt, password string) (Credential, error) {
	hash, err := digest(e.hasher, salt, password)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Salt: salt, Hash: hash}, nil
}

// Verifier checks submitted secrets against stored credentials. It holds no
// state besides the hasher.
type Verifier struct {
	hasher Hasher
}

func NewVerifier(h Hasher) *Verifier {
	return &Verifier{hasher: h}
}

// VerifyPassword recomputes the hash of submitted with the stored salt and
// compares it with hash in constant time.
func (v *Verifier) VerifyPassword(salt, hash, submitted string) bool {
	computed, err := digest(v.hasher, salt, submitted)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

// VerifySalt compares a presented session salt with the stored one in
// constant time. An empty stored salt never matches.
func (v *Verifier) VerifySalt(stored, presented string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

func digest(h Hasher, salt, password string) (string, error) {
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	sum, err := h.Sum([]byte(salt), pw)
	if err != nil {
		return "", fmt.Errorf("hash: %w", err)
	}
	return hex.EncodeToString(sum), nil
}
