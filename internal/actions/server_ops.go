package actions

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/catalystcommunity/pdns-cli/v1/internal/output"
)

func flushCache(ctx context.Context, s *Session, req Request) error {
	result, err := s.server(req).FlushCache(ctx, req.Domain)
	if err != nil {
		return err
	}
	return s.Out.Emit(result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Flushed %d cache entries for '%s'\n", result.Count, req.Domain)
		return err
	})
}

func search(ctx context.Context, s *Session, req Request) error {
	results, err := s.server(req).Search(ctx, req.Query)
	if err != nil {
		return err
	}
	if !s.Out.Structured() {
		rows := make([][]string, 0, len(results))
		for _, r := range results {
			rows = append(rows, []string{r.ObjectType, r.Name, r.Type, r.Zone, r.Content})
		}
		return s.Out.Table([]string{"OBJECT", "NAME", "TYPE", "ZONE", "CONTENT"}, rows)
	}
	return s.Out.Emit(results, nil)
}

func statistics(ctx context.Context, s *Session, req Request) error {
	stats, err := s.server(req).Statistics(ctx, req.Statistic)
	if err != nil {
		return err
	}
	if !s.Out.Structured() {
		rows := make([][]string, 0, len(stats))
		for _, st := range stats {
			rows = append(rows, []string{st.Name, st.Type, statValue(st.Value)})
		}
		return s.Out.Table([]string{"NAME", "TYPE", "VALUE"}, rows)
	}
	return s.Out.Emit(stats, nil)
}

// statValue renders map and ring statistics as "name=value" pairs.
func statValue(v interface{}) string {
	items, ok := v.([]interface{})
	if !ok {
		return output.FormatValue(v)
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			parts = append(parts, output.FormatValue(item))
			continue
		}
		parts = append(parts, output.FormatValue(entry["name"])+"="+output.FormatValue(entry["value"]))
	}
	return strings.Join(parts, " ")
}
