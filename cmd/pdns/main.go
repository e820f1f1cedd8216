package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	cachecmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/cache"
	configcmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/config"
	credentialscmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/credentials"
	cryptokeycmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/cryptokey"
	metadatacmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/metadata"
	rrsetcmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/rrset"
	searchcmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/search"
	servercmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/server"
	settingscmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/settings"
	statisticscmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/statistics"
	zonecmd "github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/commands/zone"
	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/config"
	"github.com/catalystcommunity/pdns-cli/v1/internal/output"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "pdns",
		Usage:   "A CLI for the PowerDNS HTTP API",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars(config.EnvConfigPath),
			},
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "API base URL, overrides [api] url",
				Sources: cli.EnvVars("PDNS_CLI_URL"),
			},
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "server id, overrides [api] default-server",
				Sources: cli.EnvVars("PDNS_CLI_SERVER"),
			},
			&cli.StringFlag{
				Name:    "auth",
				Aliases: []string{"a"},
				Usage:   "basic auth as user:password, bypasses the configured users",
				Sources: cli.EnvVars("PDNS_CLI_AUTH"),
			},
			&cli.StringFlag{
				Name:    "api-key",
				Aliases: []string{"k"},
				Usage:   "API key, bypasses the configured users",
				Sources: cli.EnvVars("PDNS_CLI_API_KEY"),
			},
			&cli.BoolFlag{
				Name:    "insecure",
				Aliases: []string{"i"},
				Usage:   "skip TLS certificate verification",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format (" + strings.Join(output.Formats(), ", ") + ")",
				Value:   output.FormatText.String(),
				Sources: cli.EnvVars("PDNS_CLI_OUTPUT"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP request timeout, 0 for none",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log requests and state changes to stderr",
				Sources: cli.EnvVars("PDNS_CLI_DEBUG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := log.WarnLevel
			if cmd.Bool("debug") {
				logLevel = log.DebugLevel
			}
			log.SetLevel(logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			servercmd.Command,
			zonecmd.Command,
			rrsetcmd.Command,
			configcmd.Command,
			metadatacmd.Command,
			cryptokeycmd.Command,
			cachecmd.Command,
			searchcmd.Command,
			statisticscmd.Command,
			credentialscmd.Command,
			settingscmd.Command,
		},
	}
}

func main() {
	if err := registry.InitActions(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize actions: %v\n", err)
		os.Exit(1)
	}

	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		output.New(os.Stdout, os.Stderr, output.FormatText).Error(err)
		stop()
		os.Exit(registry.ExitCode(err))
	}
}
