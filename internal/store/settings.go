package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

const settingJWTSecret = "jwtSecret"

// GetJWTSecret retrieves the token signing secret from the settings.
// If no secret exists, it generates one, stores it, and returns it.
func (s *Store) GetJWTSecret(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.settings(ctx)
	if err != nil {
		return "", err
	}
	if secret := settings[settingJWTSecret]; secret != "" {
		return secret, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	settings[settingJWTSecret] = hex.EncodeToString(buf)

	if err := s.putJSON(ctx, KeySettings, settings); err != nil {
		return "", fmt.Errorf("storing jwt secret: %w", err)
	}
	return settings[settingJWTSecret], nil
}

func (s *Store) settings(ctx context.Context) (map[string]string, error) {
	settings := map[string]string{}
	if err := s.getJSON(ctx, KeySettings, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// getJSON decodes the value under key into target, leaving target untouched
// when the key is absent.
func (s *Store) getJSON(ctx context.Context, key string, target any) error {
	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return &CorruptStateError{Collection: key, Err: err}
	}
	return nil
}

func (s *Store) putJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
