package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups the engine's secrets in the OS keychain.
	KeyringService = "easyapply"

	sessionAccount = "easyapply:session-cookie"
)

// GetSessionCookie returns the stored site auth cookie, if any. A missing
// cookie is fine: the persistent browser profile may already be signed in.
func GetSessionCookie() (string, error) {
	v, err := keyring.Get(KeyringService, sessionAccount)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(v) == "" {
		return "", errors.New("session cookie is empty")
	}
	return v, nil
}

func SetSessionCookie(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("session cookie is empty")
	}
	return keyring.Set(KeyringService, sessionAccount, value)
}

func DeleteSessionCookie() error {
	return keyring.Delete(KeyringService, sessionAccount)
}
