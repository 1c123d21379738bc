package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"
)

// StoredTokens is the only session state expected to survive a process
// restart: the token pair issued at login or onboarding commit.
type StoredTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenStore persists encrypted token pairs in Redis, keyed by device ID.
type TokenStore struct {
	encryptionKey []byte
}

var (
	setTokenValue = Set
	getTokenValue = Get
	delTokenValue = Del
)

// NewTokenStore creates a new token store
func NewTokenStore(encryptionKeyHex string) (*TokenStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &TokenStore{encryptionKey: key}, nil
}

// Save stores encrypted tokens in Redis
func (s *TokenStore) Save(ctx context.Context, deviceID string, tokens *StoredTokens, expiration time.Duration) error {
	jsonData, err := json.Marshal(tokens)
	if err != nil {
		return err
	}

	encryptedData, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	return setTokenValue(ctx, "tokens:"+deviceID, encryptedData, expiration)
}

// Load retrieves and decrypts tokens from Redis
func (s *TokenStore) Load(ctx context.Context, deviceID string) (*StoredTokens, error) {
	encryptedDataStr, err := getTokenValue(ctx, "tokens:"+deviceID)
	if err != nil {
		return nil, err
	}

	decryptedData, err := s.decrypt(encryptedDataStr)
	if err != nil {
		return nil, err
	}

	var tokens StoredTokens
	if err := json.Unmarshal(decryptedData, &tokens); err != nil {
		return nil, err
	}

	return &tokens, nil
}

// Clear removes persisted tokens; called on logout and token invalidation
func (s *TokenStore) Clear(ctx context.Context, deviceID string) error {
	return delTokenValue(ctx, "tokens:"+deviceID)
}

func (s *TokenStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *TokenStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, data := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, data, nil)
}
