package utils

import (
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fernandosanchezjr/sha256-simd"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

const HashSize = 32

// HashFunc maps a message to a fixed 32 byte digest. Digest width matches the
// state encoding width so a hash chain never leaves the 256-bit space.
type HashFunc func(b []byte) [HashSize]byte

const (
	Keccak256Name = "keccak256"
	Sha256Name    = "sha256"
	Sha256dName   = "sha256d"
	Sha3256Name   = "sha3-256"
)

var hashes = map[string]HashFunc{
	Keccak256Name: Keccak256,
	Sha256Name:    Sha256,
	Sha256dName:   DoubleHash,
	Sha3256Name:   Sha3256,
}

func Keccak256(b []byte) (digest [HashSize]byte) {
	copy(digest[:], crypto.Keccak256(b))
	return
}

func Sha256(b []byte) [HashSize]byte {
	return sha256.Sum256(b)
}

func DoubleHash(b []byte) [HashSize]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

func Sha3256(b []byte) [HashSize]byte {
	return sha3.Sum256(b)
}

// HashByName resolves a hash name, case insensitive. An empty name selects
// keccak256.
func HashByName(name string) (HashFunc, error) {
	if name == "" {
		return Keccak256, nil
	}
	if h, found := hashes[strings.ToLower(name)]; found {
		return h, nil
	}
	return nil, errors.Errorf("unknown hash %q, expected one of %s", name, strings.Join(HashNames(), ", "))
}

func HashNames() []string {
	var names = make([]string, 0, len(hashes))
	for name := range hashes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
