package registry

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
	"github.com/catalystcommunity/pdns-cli/v1/internal/config"
	"github.com/catalystcommunity/pdns-cli/v1/internal/credentials"
	"github.com/catalystcommunity/pdns-cli/v1/internal/output"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
	"github.com/catalystcommunity/pdns-cli/v1/internal/rrsync"
	"github.com/catalystcommunity/pdns-cli/v1/internal/secrets"
)

// Run loads the configuration, resolves credentials for req and dispatches
// it. All of this happens before the first HTTP request, so configuration
// and usage problems never reach the server.
func Run(ctx context.Context, cmd *cli.Command, req actions.Request) error {
	format, err := output.ParseFormat(cmd.String("output"))
	if err != nil {
		return &actions.UsageError{Msg: err.Error()}
	}
	root := cmd.Root()
	printer := output.New(root.Writer, root.ErrWriter, format)

	cfgPath, cfg, err := loadConfig(cmd.String("config"))
	if err != nil && req.Action != actions.InitConfig {
		return err
	}

	store, err := keyringStore()
	if err != nil {
		return err
	}

	session := &actions.Session{
		Out:     printer,
		Sync:    rrsync.New(),
		Keyring: store,
		Config:  cfg,
		// a missing explicit path is where init-config writes
		ConfigPath: firstNonEmpty(cfgPath, cmd.String("config")),
	}

	if req.Action.Scope() == actions.ScopeLocal {
		return actions.Dispatch(ctx, session, req)
	}

	req.Server = cmd.String("server")
	apiURL := cmd.String("url")
	insecure := cmd.Bool("insecure")
	if cfg != nil && cfg.API != nil {
		if req.Server == "" {
			req.Server = cfg.API.DefaultServer
		}
		if apiURL == "" {
			apiURL = cfg.API.URL
		}
		insecure = insecure || cfg.API.Insecure
	}
	if apiURL == "" {
		return &actions.UsageError{Msg: "API URL is required (--url, PDNS_CLI_URL or [api] url in the configuration file)"}
	}

	zone := ""
	if req.Action.Scope() == actions.ScopeZone {
		zone = req.Zone
	}
	resolver := credentials.NewResolver(cfg, secrets.DefaultResolver(store))
	cred, err := resolver.Resolve(credentials.Overrides{
		Auth:   cmd.String("auth"),
		APIKey: cmd.String("api-key"),
	}, zone)
	if err != nil {
		return err
	}
	log.Debugf("using credentials from %s%s", cred.Source, sectionSuffix(cred.Section))

	client, err := pdns.NewClient(apiURL, cred.Authenticator(), pdns.Options{
		Insecure: insecure,
		Timeout:  cmd.Duration("timeout"),
	})
	if err != nil {
		return &actions.UsageError{Msg: err.Error()}
	}
	session.API = client

	return actions.Dispatch(ctx, session, req)
}

func loadConfig(explicit string) (string, *config.Config, error) {
	path, err := config.FindConfig(explicit)
	if err != nil {
		return "", nil, &config.Error{Msg: err.Error()}
	}
	if path == "" {
		log.Debugf("no configuration file found")
		return "", nil, nil
	}
	log.Debugf("loading configuration from %s", path)
	cfg, err := config.Load(path)
	if err != nil {
		return path, nil, &config.Error{Msg: err.Error()}
	}
	return path, cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func keyringStore() (*secrets.KeyringStore, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config directory: %w", err)
	}
	return secrets.NewKeyringStore(dir), nil
}

func sectionSuffix(section string) string {
	if section == "" {
		return ""
	}
	return " [" + section + "]"
}

// ExitCode maps an error returned by Run to the process exit status:
// 2 for usage and configuration problems, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *actions.UsageError
	var cfgErr *config.Error
	if errors.As(err, &usageErr) || errors.As(err, &cfgErr) {
		return 2
	}
	return 1
}
