package rrset

import (
	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
)

// Command is the top-level rrset command
var Command = registry.NewGroup(actions.GroupRRset, "Manage resource record sets",
	registry.Spec{
		Action: actions.ShowRRsets,
		Args:   []string{"zone"},
		Parse:  registry.ZoneArg,
	},
	registry.Spec{
		Action: actions.EditRRset,
		Args:   []string{"zone", "name", "type", "content"},
		Description: `Add, replace or delete one record of an RRset.

The whole RRset is read from the server, changed locally and written back,
so the other records and the comments of the RRset are kept. Names that do
not end with a dot are relative to the zone; @ is the zone apex.

Examples:
  pdns rrset edit-rrset example.com. www A 192.0.2.1 --add
  pdns rrset edit-rrset example.com. @ MX "10 mail.example.com." --replace --ttl 300`,
		Flags: recordFlags(),
		Parse: parseEditRecord,
	},
	registry.Spec{
		Action: actions.DeleteRRset,
		Args:   []string{"zone", "name", "type"},
		Parse:  parseNameType,
	},
	registry.Spec{
		Action: actions.EditRRsetComments,
		Args:   []string{"zone", "name", "type", "content"},
		Flags:  commentFlags(),
		Parse:  parseEditComment,
	},
)

func recordFlags() []cli.Flag {
	return append(registry.ModeFlags("record"),
		&cli.BoolFlag{Name: "disabled", Usage: "disable the record"},
		&cli.BoolFlag{Name: "set-ptr", Usage: "set PTR records in matching reverse zones"},
		&cli.IntFlag{
			Name:  "ttl",
			Usage: "RRset TTL; defaults to the current TTL, or 3600 for a new RRset",
		},
	)
}

func commentFlags() []cli.Flag {
	return append(registry.ModeFlags("comment"),
		&cli.StringFlag{Name: "account", Usage: "comment account"},
	)
}

func parseNameType(cmd *cli.Command, req *actions.Request) error {
	args := cmd.Args()
	req.Zone = args.Get(0)
	req.Name = args.Get(1)
	req.Type = args.Get(2)
	return nil
}

func parseEditRecord(cmd *cli.Command, req *actions.Request) error {
	mode, err := registry.ParseMode(cmd)
	if err != nil {
		return err
	}
	if err := parseNameType(cmd, req); err != nil {
		return err
	}
	if cmd.IsSet("ttl") {
		ttl := int(cmd.Int("ttl"))
		if ttl <= 0 {
			return &pdns.ValidationError{Field: "ttl", Reason: "TTL must be positive"}
		}
		req.TTL = ttl
	}
	req.Mode = mode
	req.Content = cmd.Args().Get(3)
	req.Disabled = cmd.Bool("disabled")
	req.SetPTR = cmd.Bool("set-ptr")
	return nil
}

func parseEditComment(cmd *cli.Command, req *actions.Request) error {
	mode, err := registry.ParseMode(cmd)
	if err != nil {
		return err
	}
	if err := parseNameType(cmd, req); err != nil {
		return err
	}
	req.Mode = mode
	req.Content = cmd.Args().Get(3)
	req.Account = cmd.String("account")
	return nil
}
