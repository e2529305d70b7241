package credential

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/scrypt"
)

// Supported hashing schemes.
const (
	SchemeArgon2id = "argon2id"
	SchemeScrypt   = "scrypt"
	SchemeSHA256   = "sha256"
)

// Separator joins salt and password for digest based schemes.
const Separator = "--"

var ErrInvalidParams = errors.New("invalid hasher parameters")

// Hasher is the one-way function applied to a (salt, password) pair.
// Sum must be deterministic and always return Size() bytes.
type Hasher interface {
	Sum(salt, password []byte) ([]byte, error)
	Size() int
	Name() string
}

// Params tunes the work factor of the slow hashers. Argon2id reads the
// Memory/Iterations/Parallelism fields, scrypt reads the Scrypt* fields,
// both honour KeyLength.
type Params struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8

	ScryptN int
	ScryptR int
	ScryptP int

	KeyLength uint32
}

// DefaultParams returns interactive-login settings: argon2id with 64 MiB,
// three passes and up to four lanes, scrypt with N=2^15, r=8, p=1.
func DefaultParams() Params {
	threads := runtime.NumCPU()
	if threads < 1 {
		threads = 1
	}
	if threads > 4 {
		threads = 4
	}

	return Params{
		MemoryKiB:   64 * 1024,
		Iterations:  3,
		Parallelism: uint8(threads),
		ScryptN:     1 << 15,
		ScryptR:     8,
		ScryptP:     1,
		KeyLength:   32,
	}
}

// NewHasher builds the hasher registered under scheme.
func NewHasher(scheme string, p Params) (Hasher, error) {
	switch scheme {
	case SchemeArgon2id:
		return NewArgon2id(p)
	case SchemeScrypt:
		return NewScrypt(p)
	case SchemeSHA256:
		return SHA256Digest{}, nil
	default:
		return nil, fmt.Errorf("unknown hash scheme %q", scheme)
	}
}

func checkKeyLength(n uint32) error {
	if n < 16 || n > 128 {
		return fmt.Errorf("%w: key length %d out of range [16..128]", ErrInvalidParams, n)
	}
	return nil
}

// Argon2id is the default memory-hard hasher.
type Argon2id struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

func NewArgon2id(p Params) (*Argon2id, error) {
	if p.Iterations < 1 {
		return nil, fmt.Errorf("%w: argon2id iterations must be positive", ErrInvalidParams)
	}
	if p.Parallelism < 1 {
		return nil, fmt.Errorf("%w: argon2id parallelism must be positive", ErrInvalidParams)
	}
	if p.MemoryKiB < 8*uint32(p.Parallelism) {
		return nil, fmt.Errorf("%w: argon2id memory must be at least 8 KiB per lane", ErrInvalidParams)
	}
	if err := checkKeyLength(p.KeyLength); err != nil {
		return nil, err
	}

	return &Argon2id{
		memory:  p.MemoryKiB,
		time:    p.Iterations,
		threads: p.Parallelism,
		keyLen:  p.KeyLength,
	}, nil
}

func (h *Argon2id) Sum(salt, password []byte) ([]byte, error) {
	return argon2.IDKey(password, salt, h.time, h.memory, h.threads, h.keyLen), nil
}

func (h *Argon2id) Size() int    { return int(h.keyLen) }
func (h *Argon2id) Name() string { return SchemeArgon2id }

// Scrypt is the alternative memory-hard hasher.
type Scrypt struct {
	n, r, p int
	keyLen  int
}

func NewScrypt(p Params) (*Scrypt, error) {
	if p.ScryptN <= 1 || p.ScryptN&(p.ScryptN-1) != 0 {
		return nil, fmt.Errorf("%w: scrypt N must be a power of two greater than 1", ErrInvalidParams)
	}
	if p.ScryptR < 1 || p.ScryptP < 1 || uint64(p.ScryptR)*uint64(p.ScryptP) >= 1<<30 {
		return nil, fmt.Errorf("%w: scrypt r and p out of range", ErrInvalidParams)
	}
	if err := checkKeyLength(p.KeyLength); err != nil {
		return nil, err
	}

	return &Scrypt{n: p.ScryptN, r: p.ScryptR, p: p.ScryptP, keyLen: int(p.KeyLength)}, nil
}

func (h *Scrypt) Sum(salt, password []byte) ([]byte, error) {
	return scrypt.Key(password, salt, h.n, h.r, h.p, h.keyLen)
}

func (h *Scrypt) Size() int    { return h.keyLen }
func (h *Scrypt) Name() string { return SchemeScrypt }

// SHA256Digest reproduces the legacy credential format,
// sha256(salt + "--" + password). It is fast and only kept so that
// credentials imported from the old application can still be checked.
type SHA256Digest struct{}

func (SHA256Digest) Sum(salt, password []byte) ([]byte, error) {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(Separator))
	h.Write(password)
	return h.Sum(nil), nil
}

func (SHA256Digest) Size() int    { return sha256.Size }
func (SHA256Digest) Name() string { return SchemeSHA256 }
