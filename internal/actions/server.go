package actions

import (
	"context"
	"sort"
	"strings"
)

// hiddenKey reports whether a key is left out of show-* output.
func hiddenKey(extra ...string) func(string) bool {
	return func(key string) bool {
		if key == "url" || strings.HasSuffix(key, "_url") {
			return true
		}
		for _, e := range extra {
			if key == e {
				return true
			}
		}
		return false
	}
}

func listServers(ctx context.Context, s *Session, req Request) error {
	servers, err := s.API.Servers(ctx)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(servers))
	for _, server := range servers {
		ids = append(ids, server.ID())
	}
	sort.Strings(ids)
	return s.Out.Lines(ids)
}

func showServer(ctx context.Context, s *Session, req Request) error {
	data, err := s.server(req).Data(ctx)
	if err != nil {
		return err
	}
	return s.Out.KeyValues(data, hiddenKey())
}

func deleteServer(ctx context.Context, s *Session, req Request) error {
	if err := s.server(req).Delete(ctx); err != nil {
		return err
	}
	s.Out.Success("Server '%s' deleted", req.Server)
	return nil
}
