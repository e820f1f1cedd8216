package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zalando/go-keyring"
)

const (
	// KeyringService is the service name used in the OS keyring.
	KeyringService = "pdns-cli"
	// fallbackDirName holds secrets written when no keyring is available.
	fallbackDirName = "secrets"
)

// KeyringStore keeps secrets in the OS keyring, falling back to owner-only
// files under dir when the keyring is unavailable (headless hosts, CI).
type KeyringStore struct {
	service string
	dir     string
}

// NewKeyringStore returns a store whose file fallback lives under dir.
func NewKeyringStore(dir string) *KeyringStore {
	return &KeyringStore{service: KeyringService, dir: dir}
}

// Resolve implements Resolver.
func (k *KeyringStore) Resolve(ref SecretRef) (string, error) {
	return k.Load(ref)
}

// Store saves value for ref.
func (k *KeyringStore) Store(ref SecretRef, value string) error {
	if value == "" {
		return fmt.Errorf("secret value cannot be empty")
	}

	err := keyring.Set(k.service, ref.FullKey(), value)
	if err == nil {
		return nil
	}
	log.Debugf("keyring unavailable (%v), storing %s in file", err, ref.FullKey())

	return k.storeFile(ref, value)
}

// Load reads the secret for ref from the keyring, then from the fallback file.
func (k *KeyringStore) Load(ref SecretRef) (string, error) {
	value, err := keyring.Get(k.service, ref.FullKey())
	if err == nil {
		return value, nil
	}

	value, fileErr := k.loadFile(ref)
	if fileErr != nil {
		if errors.Is(err, keyring.ErrNotFound) && os.IsNotExist(fileErr) {
			return "", fmt.Errorf("secret %s not found in keyring or file storage", ref.FullKey())
		}
		return "", fmt.Errorf("failed to load secret %s: keyring: %v; file: %v", ref.FullKey(), err, fileErr)
	}
	return value, nil
}

// Clear removes ref from both the keyring and file storage. Clearing a secret
// that was never stored is not an error.
func (k *KeyringStore) Clear(ref SecretRef) error {
	keyringErr := keyring.Delete(k.service, ref.FullKey())
	if errors.Is(keyringErr, keyring.ErrNotFound) {
		keyringErr = nil
	}

	fileErr := k.deleteFile(ref)

	if keyringErr != nil && fileErr != nil {
		return fmt.Errorf("failed to clear secret from keyring (%v) and file (%v)", keyringErr, fileErr)
	}
	return nil
}

func (k *KeyringStore) filePath(ref SecretRef) (string, error) {
	if k.dir == "" {
		return "", fmt.Errorf("no directory configured for file secret storage")
	}
	name := strings.NewReplacer("/", "_", ":", "__").Replace(ref.FullKey())
	return filepath.Join(k.dir, fallbackDirName, name), nil
}

func (k *KeyringStore) storeFile(ref SecretRef, value string) error {
	path, err := k.filePath(ref)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create secrets directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write secret file: %w", err)
	}
	return nil
}

func (k *KeyringStore) loadFile(ref SecretRef) (string, error) {
	path, err := k.filePath(ref)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func (k *KeyringStore) deleteFile(ref SecretRef) error {
	path, err := k.filePath(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete secret file: %w", err)
	}
	return nil
}
