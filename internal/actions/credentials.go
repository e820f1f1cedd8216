package actions

import (
	"context"
	"fmt"
	"io"

	"github.com/catalystcommunity/pdns-cli/v1/internal/config"
)

func storeKey(ctx context.Context, s *Session, req Request) error {
	if req.Section == "" || req.Secret == "" {
		return usagef("%s: section and key are required", req.Action)
	}
	if s.Keyring == nil {
		return fmt.Errorf("%s: no keyring available", req.Action)
	}

	ref := config.SecretRefFor(req.Section)
	if err := s.Keyring.Store(ref, req.Secret); err != nil {
		return fmt.Errorf("failed to store key for [%s]: %w", req.Section, err)
	}
	return s.Out.Emit(map[string]string{"section": req.Section, "key": ref.String()}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Key for [%s] stored. Reference it in the configuration file with:\n  key = \"%s\"\n", req.Section, ref)
		return err
	})
}

func clearKey(ctx context.Context, s *Session, req Request) error {
	if req.Section == "" {
		return usagef("%s: section is required", req.Action)
	}
	if s.Keyring == nil {
		return fmt.Errorf("%s: no keyring available", req.Action)
	}
	if err := s.Keyring.Clear(config.SecretRefFor(req.Section)); err != nil {
		return err
	}
	s.Out.Success("Key for [%s] cleared", req.Section)
	return nil
}
