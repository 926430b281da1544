// Package cryptox implements the symmetric cryptography used by the client:
// argon2id key derivation and AES-256-GCM sealing.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/teamkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32

	armorVersion byte = 1
)

// ErrMalformedArmor is returned when an armored payload cannot be decoded.
var ErrMalformedArmor = errors.New("malformed armored payload")

// MakeVerifier hashes a master key so it can be stored and compared
// without keeping the key itself.
func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

// DeriveMasterKey derives a 256-bit key from password and salt with argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}

// EncryptEntry serializes entry to JSON and encrypts it with AES-GCM under key.
// A fresh nonce is generated per call and returned next to the ciphertext.
func EncryptEntry(entry any, key []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(entry)
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(plaintext)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	return aesgcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// DecryptEntry reverses EncryptEntry, unmarshalling the plaintext into v.
func DecryptEntry(ciphertext, nonce, key []byte, v any) error {
	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(plaintext)

	return json.Unmarshal(plaintext, v)
}

// SealArmored encrypts plaintext under a key derived from passphrase and a
// random salt. The result is base64 text: version | salt | nonce | ciphertext.
// Anyone holding the passphrase can open it; no other state is needed.
func SealArmored(passphrase, plaintext []byte) (string, error) {
	salt := common.GenerateRandByteArray(SaltSize)
	key := DeriveMasterKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	nonce := common.GenerateRandByteArray(aesgcm.NonceSize())

	out := make([]byte, 0, 1+SaltSize+len(nonce)+len(plaintext)+aesgcm.Overhead())
	out = append(out, armorVersion)
	out = append(out, salt...)
	out = append(out, nonce...)
	out = aesgcm.Seal(out, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(out), nil
}

// OpenArmored decrypts a payload produced by SealArmored.
func OpenArmored(passphrase []byte, armored string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(armored)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArmor, err)
	}
	if len(raw) < 1+SaltSize || raw[0] != armorVersion {
		return nil, ErrMalformedArmor
	}
	salt := raw[1 : 1+SaltSize]

	key := DeriveMasterKey(passphrase, salt)
	defer common.WipeByteArray(key)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	rest := raw[1+SaltSize:]
	if len(rest) < aesgcm.NonceSize()+aesgcm.Overhead() {
		return nil, ErrMalformedArmor
	}
	nonce, ciphertext := rest[:aesgcm.NonceSize()], rest[aesgcm.NonceSize():]

	return aesgcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
