package security

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// 历史数据使用 PBKDF2-SHA512（1000 次迭代，盐为十六进制字符串），
// 新密码一律用 Argon2id 写入，哈希带 "argon2id$" 前缀以便区分。
const (
	argon2Prefix  = "argon2id$"
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32

	pbkdf2Iterations = 1000
	pbkdf2KeyLen     = 64
)

// CredentialVerifier 校验明文密码是否与存储的哈希匹配
type CredentialVerifier interface {
	Verify(password, hash, salt string) bool
}

// PasswordHasher 生成新的密码哈希与盐
type PasswordHasher interface {
	Hash(password string) (hash string, salt string, err error)
}

type schemeDispatcher struct{}

// NewCredentialVerifier 返回按哈希前缀分发的校验器
func NewCredentialVerifier() CredentialVerifier {
	return &schemeDispatcher{}
}

// NewPasswordHasher 返回默认的 Argon2id 哈希器
func NewPasswordHasher() PasswordHasher {
	return &schemeDispatcher{}
}

func (s *schemeDispatcher) Verify(password, hash, salt string) bool {
	if password == "" || hash == "" {
		return false
	}
	if strings.HasPrefix(hash, argon2Prefix) {
		return verifyArgon2(password, strings.TrimPrefix(hash, argon2Prefix), salt)
	}
	return verifyPBKDF2(password, hash, salt)
}

func (s *schemeDispatcher) Hash(password string) (string, string, error) {
	if password == "" {
		return "", "", errors.New("password cannot be empty")
	}

	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", err
	}
	salt := hex.EncodeToString(saltBytes)

	key := argon2.IDKey([]byte(password), saltBytes, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return argon2Prefix + hex.EncodeToString(key), salt, nil
}

func verifyArgon2(password, hashHex, saltHex string) bool {
	saltBytes, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	key := argon2.IDKey([]byte(password), saltBytes, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return subtle.ConstantTimeCompare(key, expected) == 1
}

// verifyPBKDF2 与历史实现保持一致：盐的十六进制字符串本身作为盐值参与计算
func verifyPBKDF2(password, hashHex, salt string) bool {
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	expected, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(key, expected) == 1
}
