package zone

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/catalystcommunity/pdns-cli/v1/cmd/pdns/registry"
	"github.com/catalystcommunity/pdns-cli/v1/internal/actions"
	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
)

// Command is the top-level zone command
var Command = registry.NewGroup(actions.GroupZone, "Manage zones",
	registry.Spec{Action: actions.ListZones},
	registry.Spec{
		Action: actions.ShowZone,
		Args:   []string{"zone"},
		Parse:  registry.ZoneArg,
	},
	registry.Spec{
		Action: actions.AddZone,
		Args:   []string{"name"},
		Description: `Create a zone and print its ID.

The zone name and every nameserver must be fully qualified (end with a dot).

Examples:
  pdns zone add-zone example.com. --nameservers ns1.example.com. --nameservers ns2.example.com.
  pdns zone add-zone example.org. --kind Slave --masters 192.0.2.1`,
		Flags: addFlags(),
		Parse: parseAdd,
	},
	registry.Spec{
		Action: actions.EditZone,
		Args:   []string{"zone"},
		Flags:  editFlags(),
		Parse:  parseEdit,
	},
	registry.Spec{
		Action: actions.DeleteZone,
		Args:   []string{"zone"},
		Parse:  registry.ZoneArg,
	},
)

func kindList() string {
	names := make([]string, 0, len(pdns.ZoneKinds))
	for _, k := range pdns.ZoneKinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func addFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:  "kind",
			Usage: "kind of zone (" + kindList() + ")",
			Value: string(pdns.ZoneKindMaster),
		},
		&cli.StringSliceFlag{
			Name:  "nameservers",
			Usage: "nameserver names, fully qualified (can be specified multiple times)",
		},
	}, editableFlags()...)
}

func editFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:  "kind",
			Usage: "kind of zone (" + kindList() + "), defaults to the current kind",
		},
	}, editableFlags()...)
}

func editableFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "masters",
			Usage: "master servers (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "servers",
			Usage: "forwarded-to servers, recursor only (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:  "account",
			Usage: "account, authoritative only",
		},
		&cli.BoolFlag{
			Name:  "recursion-desired",
			Usage: "set the RD bit for forwarded zones, authoritative only",
		},
		&cli.StringFlag{
			Name:  "soa-edit",
			Usage: "SOA-EDIT setting (" + strings.Join(pdns.SOAEditValues, ", ") + ")",
		},
		&cli.StringFlag{
			Name:  "soa-edit-api",
			Usage: "SOA-EDIT-API setting (" + strings.Join(pdns.SOAEditAPIValues, ", ") + ")",
		},
	}
}

func parseKind(cmd *cli.Command) (pdns.ZoneKind, error) {
	if cmd.String("kind") == "" {
		return "", nil
	}
	kind, err := pdns.ParseZoneKind(cmd.String("kind"))
	if err != nil {
		return "", &actions.UsageError{Msg: fmt.Sprintf("--kind: %v", err)}
	}
	return kind, nil
}

func editableSpec(cmd *cli.Command) pdns.ZoneSpec {
	spec := pdns.ZoneSpec{
		Account:    cmd.String("account"),
		SOAEdit:    cmd.String("soa-edit"),
		SOAEditAPI: cmd.String("soa-edit-api"),
	}
	if cmd.IsSet("masters") {
		spec.Masters = cmd.StringSlice("masters")
	}
	if cmd.IsSet("servers") {
		spec.Servers = cmd.StringSlice("servers")
	}
	if cmd.IsSet("recursion-desired") {
		rd := cmd.Bool("recursion-desired")
		spec.RecursionDesired = &rd
	}
	return spec
}

func parseAdd(cmd *cli.Command, req *actions.Request) error {
	kind, err := parseKind(cmd)
	if err != nil {
		return err
	}
	req.Zone = cmd.Args().First()
	req.ZoneSpec = editableSpec(cmd)
	req.ZoneSpec.Name = req.Zone
	req.ZoneSpec.Kind = kind
	req.ZoneSpec.Nameservers = cmd.StringSlice("nameservers")
	return nil
}

func parseEdit(cmd *cli.Command, req *actions.Request) error {
	kind, err := parseKind(cmd)
	if err != nil {
		return err
	}
	req.Zone = cmd.Args().First()
	req.ZoneSpec = editableSpec(cmd)
	req.ZoneSpec.Kind = kind
	return nil
}
