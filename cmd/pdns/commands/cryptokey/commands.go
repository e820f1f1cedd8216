package cryptokey

import (
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
)

// Command is the top-level cryptokey command
var Command = registry.NewGroup(actions.GroupCryptokey, "Manage DNSSEC keys",
	registry.Spec{Action: actions.ListCryptokeys, Args: []string{"zone"}, Parse: registry.ZoneArg},
	registry.Spec{Action: actions.ShowCryptokey, Args: []string{"zone", "id"}, Parse: parseID},
	registry.Spec{
		Action: actions.AddCryptokey,
		Args:   []string{"zone"},
		Description: `Generate or import a DNSSEC key.

Without --content the server generates the key.

Example:
  pdns cryptokey add-cryptokey example.com. --keytype ksk --active --algorithm ECDSAP256SHA256`,
		Flags: addFlags(),
		Parse: parseAdd,
	},
	registry.Spec{
		Action: actions.EditCryptokey,
		Args:   []string{"zone", "id"},
		Flags:  editFlags(),
		Parse:  parseEdit,
	},
	registry.Spec{Action: actions.DeleteCryptokey, Args: []string{"zone", "id"}, Parse: parseID},
)

func addFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "keytype", Usage: "key type (ksk, zsk, csk)", Value: "csk"},
		&cli.BoolFlag{Name: "active", Usage: "activate the key"},
		&cli.BoolFlag{Name: "published", Usage: "publish the DNSKEY record"},
		&cli.StringFlag{Name: "algorithm", Usage: "DNSSEC algorithm name or number"},
		&cli.IntFlag{Name: "bits", Usage: "key size in bits"},
		&cli.StringFlag{Name: "content", Usage: "private key to import, in ISC format"},
	}
}

func editFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "active", Usage: "activate the key"},
		&cli.BoolFlag{Name: "inactive", Usage: "deactivate the key"},
		&cli.BoolFlag{Name: "published", Usage: "publish the DNSKEY record"},
		&cli.BoolFlag{Name: "unpublished", Usage: "stop publishing the DNSKEY record"},
	}
}

func parseID(cmd *cli.Command, req *actions.Request) error {
	req.Zone = cmd.Args().Get(0)
	req.KeyID = cmd.Args().Get(1)
	return nil
}

func parseAdd(cmd *cli.Command, req *actions.Request) error {
	req.Zone = cmd.Args().First()
	req.Cryptokey = pdns.CryptokeySpec{
		KeyType:   cmd.String("keytype"),
		Active:    cmd.Bool("active"),
		Published: cmd.Bool("published"),
		Algorithm: cmd.String("algorithm"),
		Bits:      int(cmd.Int("bits")),
		Content:   cmd.String("content"),
	}
	return nil
}

func parseEdit(cmd *cli.Command, req *actions.Request) error {
	active, err := registry.OptionalBool(cmd, "active", "inactive")
	if err != nil {
		return err
	}
	published, err := registry.OptionalBool(cmd, "published", "unpublished")
	if err != nil {
		return err
	}
	req.Active = active
	req.Published = published
	return parseID(cmd, req)
}
