package credentials

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
)

// Command is the top-level credentials command
var Command = registry.NewGroup(actions.GroupCredentials, "Store API keys outside the configuration file",
	registry.Spec{
		Action: actions.StoreKey,
		Args:   []string{"section"},
		Description: `Store the API key of a user section in the OS keyring.

The key is read from the second argument, or from standard input when it is
omitted. The command prints the secret reference to put in the section's key
setting.

Example:
  pdns credentials store-key user-admin`,
		Parse: parseStore,
	},
	registry.Spec{
		Action: actions.ClearKey,
		Args:   []string{"section"},
		Parse: func(cmd *cli.Command, req *actions.Request) error {
			req.Section = cmd.Args().First()
			return nil
		},
	},
)

func parseStore(cmd *cli.Command, req *actions.Request) error {
	req.Section = cmd.Args().First()
	if cmd.Args().Len() > 1 {
		req.Secret = cmd.Args().Get(1)
		return nil
	}
	secret, err := readSecret(cmd.Root().Reader, cmd.Root().ErrWriter, "API key for ["+req.Section+"]")
	if err != nil {
		return err
	}
	req.Secret = secret
	return nil
}

// readSecret reads one line from r. A terminal gets a prompt and no echo.
func readSecret(r io.Reader, prompt io.Writer, message string) (string, error) {
	if r == nil {
		r = os.Stdin
	}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if prompt != nil {
			fmt.Fprintf(prompt, "%s: ", message)
		}
		secret, err := term.ReadPassword(int(f.Fd()))
		if prompt != nil {
			fmt.Fprintln(prompt)
		}
		if err != nil {
			return "", fmt.Errorf("failed to read key: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
