package security

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"golang.org/x/crypto/pbkdf2"
)

func TestArgon2RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher()
	verifier := NewCredentialVerifier()

	hash, salt, err := hasher.Hash("correct-horse-battery")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(hash, "argon2id$") {
		t.Errorf("hash = %q, want argon2id$ prefix", hash)
	}

	if !verifier.Verify("correct-horse-battery", hash, salt) {
		t.Error("correct password should verify")
	}
	if verifier.Verify("wrong-password", hash, salt) {
		t.Error("wrong password must not verify")
	}
}

func TestHashProducesUniqueSalt(t *testing.T) {
	hasher := NewPasswordHasher()

	hash1, salt1, _ := hasher.Hash("same-password")
	hash2, salt2, _ := hasher.Hash("same-password")
	if salt1 == salt2 {
		t.Error("salts should differ between calls")
	}
	if hash1 == hash2 {
		t.Error("hashes should differ with different salts")
	}
}

// 无前缀的存量哈希走 PBKDF2-SHA512，盐的十六进制字符串直接作为盐值
func TestVerifyLegacyPBKDF2(t *testing.T) {
	verifier := NewCredentialVerifier()

	salt := "a1b2c3d4e5f60718"
	key := pbkdf2.Key([]byte("legacy-password"), []byte(salt), 1000, 64, sha512.New)
	hash := hex.EncodeToString(key)

	if !verifier.Verify("legacy-password", hash, salt) {
		t.Error("legacy hash should verify")
	}
	if verifier.Verify("other-password", hash, salt) {
		t.Error("wrong password must not verify against legacy hash")
	}
}

func TestVerifyEmptyInputs(t *testing.T) {
	verifier := NewCredentialVerifier()

	if verifier.Verify("", "somehash", "salt") {
		t.Error("empty password must not verify")
	}
	if verifier.Verify("password", "", "salt") {
		t.Error("empty hash must not verify")
	}
}
