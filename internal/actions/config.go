package actions

import (
	"context"
	"fmt"
	"io"
	"sort"
)

func listConfig(ctx context.Context, s *Session, req Request) error {
	settings, err := s.server(req).Config(ctx)
	if err != nil {
		return err
	}

	values := make(map[string]interface{}, len(settings))
	for _, setting := range settings {
		value, err := setting.Value(ctx)
		if err != nil {
			return err
		}
		values[setting.ID()] = value
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	return s.Out.Emit(values, func(w io.Writer) error {
		for _, name := range names {
			if _, err := fmt.Fprintf(w, "%s: %s\n", name, values[name]); err != nil {
				return err
			}
		}
		return nil
	})
}

func notifyZone(ctx context.Context, s *Session, req Request) error {
	if err := s.zone(req).Notify(ctx); err != nil {
		return err
	}
	s.Out.Success("Notification queued for '%s'", req.Zone)
	return nil
}

func axfrRetrieve(ctx context.Context, s *Session, req Request) error {
	if err := s.zone(req).AXFRRetrieve(ctx); err != nil {
		return err
	}
	s.Out.Success("Retrieval queued for '%s'", req.Zone)
	return nil
}

func exportZone(ctx context.Context, s *Session, req Request) error {
	text, err := s.zone(req).Export(ctx)
	if err != nil {
		return err
	}
	return s.Out.Emit(map[string]string{"zone": text}, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
}

func rectifyZone(ctx context.Context, s *Session, req Request) error {
	if err := s.zone(req).Rectify(ctx); err != nil {
		return err
	}
	s.Out.Success("Zone '%s' rectified", req.Zone)
	return nil
}
