package config

import (
	"errors"
	"strings"

	"github.com/s0up4200/dnsimple/dnsimple"
	"github.com/zalando/go-keyring"
)

// KeyringService is the service name tokens are stored under in the OS keychain
const KeyringService = "dnsimple"

var (
	// ErrNoCredentials indicates neither a token nor username and password are configured
	ErrNoCredentials = errors.New("no credentials configured: set api.token or api.username and api.password, or run 'dnsimple auth login'")
	// ErrTokenNotFound indicates the keychain has no token for a profile
	ErrTokenNotFound = errors.New("auth token not found")
)

// Credentials returns the authenticator the API section describes.
// A token wins over username and password.
func (c *Config) Credentials() (dnsimple.Credentials, error) {
	switch {
	case c.API.Token != "":
		return dnsimple.NewTokenAuth(c.API.Token), nil
	case c.API.Username != "" && c.API.Password != "":
		return dnsimple.NewBasicAuth(c.API.Username, c.API.Password), nil
	default:
		return nil, ErrNoCredentials
	}
}

// LoadToken fills in the API token from store when none is configured.
// A missing keychain entry is not an error.
func (c *Config) LoadToken(store TokenStore) error {
	if c.API.Token != "" || store == nil {
		return nil
	}
	token, err := store.GetToken(c.API.Profile())
	if errors.Is(err, ErrTokenNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	c.API.Token = token
	return nil
}

// TokenStore persists API tokens per profile
type TokenStore interface {
	SetToken(profile string, token string) error
	GetToken(profile string) (string, error)
	DeleteToken(profile string) error
}

// KeyringStore is a TokenStore backed by the OS keychain
type KeyringStore struct {
	serviceName string
}

// NewKeyringStore returns a store for serviceName, or for KeyringService when empty
func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = KeyringService
	}
	return &KeyringStore{serviceName: serviceName}
}

// DefaultStore returns the standard token store backed by the OS keychain
func DefaultStore() TokenStore {
	return NewKeyringStore(KeyringService)
}

// SetToken saves the token for profile, replacing any previous one
func (k *KeyringStore) SetToken(profile string, token string) error {
	return keyring.Set(k.serviceName, normalizeProfile(profile), token)
}

// GetToken returns the token for profile, or ErrTokenNotFound
func (k *KeyringStore) GetToken(profile string) (string, error) {
	token, err := keyring.Get(k.serviceName, normalizeProfile(profile))
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return "", err
}

// DeleteToken removes the token for profile. ErrTokenNotFound is returned when there is none.
func (k *KeyringStore) DeleteToken(profile string) error {
	err := keyring.Delete(k.serviceName, normalizeProfile(profile))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}

func normalizeProfile(profile string) string {
	return strings.ToLower(strings.TrimSpace(profile))
}
