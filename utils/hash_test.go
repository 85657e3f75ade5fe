package utils

import (
	"encoding/hex"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeccak256(t *testing.T) {
	var zero [HashSize]byte
	digest := Keccak256(zero[:])
	log.WithField("digest", hex.EncodeToString(digest[:])).Println("Keccak256")
	assert.Equal(t, "290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563",
		hex.EncodeToString(digest[:]))
}

func TestSha256(t *testing.T) {
	digest := Sha256([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(digest[:]))
}

func TestDoubleHash(t *testing.T) {
	first := Sha256([]byte("abc"))
	second := Sha256(first[:])
	assert.Equal(t, second, DoubleHash([]byte("abc")))
}

func TestSha3256(t *testing.T) {
	digest := Sha3256([]byte("abc"))
	assert.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532",
		hex.EncodeToString(digest[:]))
}

func TestHashByName(t *testing.T) {
	h, err := HashByName("")
	require.NoError(t, err)
	assert.Equal(t, Keccak256([]byte("x")), h([]byte("x")))

	for _, name := range HashNames() {
		h, err = HashByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, h, name)
	}

	h, err = HashByName("SHA256")
	require.NoError(t, err)
	assert.Equal(t, Sha256([]byte("x")), h([]byte("x")))

	_, err = HashByName("md5")
	require.Error(t, err)
}
