package actions

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/catalystcommunity/pdns-cli/v1/internal/config"
	"github.com/catalystcommunity/pdns-cli/v1/internal/credentials"
	"github.com/catalystcommunity/pdns-cli/v1/internal/secrets"
)

const (
	redacted       = "[REDACTED]"
	redactedSecret = "[SECRET]"
)

func initConfig(ctx context.Context, s *Session, req Request) error {
	path := req.Path
	if path == "" {
		path = s.ConfigPath
	}
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !req.Force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	// keys may be stored verbatim, so the file is private
	if err := os.WriteFile(path, []byte(config.Template(config.FormatForPath(path))), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return s.Out.Emit(map[string]string{"path": path}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Created config file: %s\n\nNext steps:\n"+
			"  1. Set [api] url and the user names in the file\n"+
			"  2. Store keys with: pdns credentials store-key <section> <key>\n", path)
		return err
	})
}

func requireConfig(s *Session, req Request) (*config.Config, error) {
	if s.Config == nil {
		return nil, &config.Error{Msg: fmt.Sprintf("%s: no configuration file found (run init-config first)", req.Action)}
	}
	return s.Config, nil
}

type configSummary struct {
	Path        string            `json:"path"`
	DefaultUser string            `json:"default_user"`
	Sections    []string          `json:"sections"`
	Zones       map[string]string `json:"zones"`
}

func validateConfig(ctx context.Context, s *Session, req Request) error {
	cfg, err := requireConfig(s, req)
	if err != nil {
		return err
	}

	summary := configSummary{
		Path:     s.ConfigPath,
		Sections: cfg.UserSectionNames(),
		Zones:    credentials.NewZoneMap(cfg),
	}
	if cfg.API != nil {
		summary.DefaultUser = cfg.API.DefaultUser
	}
	if summary.DefaultUser == "" {
		s.Out.Warn("no default-user in [api]; only commands with --auth/--api-key or mapped zones will work")
	} else if _, ok := cfg.Section(summary.DefaultUser); !ok {
		s.Out.Warn("default-user %q has no [%s] section", summary.DefaultUser, summary.DefaultUser)
	}

	zones := make([]string, 0, len(summary.Zones))
	for zone := range summary.Zones {
		zones = append(zones, zone)
	}
	sort.Strings(zones)

	return s.Out.Emit(summary, func(w io.Writer) error {
		fmt.Fprintf(w, "Configuration is valid: %s\n", summary.Path)
		fmt.Fprintf(w, "  Default user: %s\n", summary.DefaultUser)
		fmt.Fprintf(w, "  User sections: %d\n", len(summary.Sections))
		for _, zone := range zones {
			fmt.Fprintf(w, "  %s -> [%s]\n", zone, summary.Zones[zone])
		}
		return nil
	})
}

func showSettings(ctx context.Context, s *Session, req Request) error {
	cfg, err := requireConfig(s, req)
	if err != nil {
		return err
	}

	view := map[string]map[string]interface{}{}
	if cfg.API != nil {
		view[config.APISectionName] = map[string]interface{}{
			"url":            cfg.API.URL,
			"default-server": cfg.API.DefaultServer,
			"default-user":   cfg.API.DefaultUser,
			"insecure":       cfg.API.Insecure,
		}
	}
	for name, section := range cfg.Sections {
		entry := map[string]interface{}{
			"user": section.User,
			"key":  redactKey(section.Key, req.ShowSecretRefs),
		}
		if len(section.Zones) > 0 {
			entry["zones"] = section.Zones
		}
		view[name] = entry
	}

	return s.Out.Emit(view, func(w io.Writer) error {
		fmt.Fprintf(w, "# %s\n", s.ConfigPath)
		return toml.NewEncoder(w).Encode(view)
	})
}

func redactKey(key string, showRefs bool) string {
	switch {
	case key == "":
		return ""
	case secrets.IsSecretRef(key):
		if showRefs {
			return key
		}
		return redactedSecret
	default:
		return redacted
	}
}
