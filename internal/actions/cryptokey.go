package actions

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/catalystcommunity/pdns-cli/v1/internal/output"
)

func listCryptokeys(ctx context.Context, s *Session, req Request) error {
	keys, err := s.zone(req).Cryptokeys(ctx)
	if err != nil {
		return err
	}
	sort.Slice(keys, func(i, j int) bool { return lessID(keys[i].ID(), keys[j].ID()) })

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		data, err := k.Data(ctx)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			k.ID(),
			output.FormatValue(data["keytype"]),
			output.FormatValue(data["active"]),
			output.FormatValue(data["published"]),
			output.FormatValue(data["algorithm"]),
			output.FormatValue(data["bits"]),
		})
	}
	return s.Out.Table([]string{"ID", "KEYTYPE", "ACTIVE", "PUBLISHED", "ALGORITHM", "BITS"}, rows)
}

// lessID orders numeric ids numerically and everything else lexically.
func lessID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func showCryptokey(ctx context.Context, s *Session, req Request) error {
	if req.KeyID == "" {
		return usagef("%s: cryptokey id is required", req.Action)
	}
	data, err := s.zone(req).Cryptokey(req.KeyID).Data(ctx)
	if err != nil {
		return err
	}
	return s.Out.KeyValues(data, hiddenKey())
}

func addCryptokey(ctx context.Context, s *Session, req Request) error {
	key, err := s.zone(req).AddCryptokey(ctx, req.Cryptokey)
	if err != nil {
		return err
	}
	return s.Out.Emit(map[string]string{"id": key.ID()}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Cryptokey added with ID '%s'\n", key.ID())
		return err
	})
}

func editCryptokey(ctx context.Context, s *Session, req Request) error {
	if req.KeyID == "" {
		return usagef("%s: cryptokey id is required", req.Action)
	}
	if req.Active == nil && req.Published == nil {
		return usagef("%s: nothing to change (use --active/--inactive or --published/--unpublished)", req.Action)
	}

	key := s.zone(req).Cryptokey(req.KeyID)
	data, err := key.Data(ctx)
	if err != nil {
		return err
	}
	active, _ := data["active"].(bool)
	published, _ := data["published"].(bool)
	if req.Active != nil {
		active = *req.Active
	}
	if req.Published != nil {
		published = *req.Published
	}

	if err := key.SetState(ctx, active, published); err != nil {
		return err
	}
	s.Out.Success("Cryptokey '%s' updated (active=%t, published=%t)", req.KeyID, active, published)
	return nil
}

func deleteCryptokey(ctx context.Context, s *Session, req Request) error {
	if req.KeyID == "" {
		return usagef("%s: cryptokey id is required", req.Action)
	}
	if err := s.zone(req).Cryptokey(req.KeyID).Delete(ctx); err != nil {
		return err
	}
	s.Out.Success("Cryptokey '%s' deleted", req.KeyID)
	return nil
}
