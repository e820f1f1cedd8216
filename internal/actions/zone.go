package actions

import (
	"context"
	"fmt"
	"io"
	"sort"
)

func listZones(ctx context.Context, s *Session, req Request) error {
	zones, err := s.server(req).Zones(ctx)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(zones))
	for _, zone := range zones {
		ids = append(ids, zone.ID())
	}
	sort.Strings(ids)
	return s.Out.Lines(ids)
}

func showZone(ctx context.Context, s *Session, req Request) error {
	data, err := s.zone(req).Data(ctx)
	if err != nil {
		return err
	}
	return s.Out.KeyValues(data, hiddenKey("rrsets"))
}

func addZone(ctx context.Context, s *Session, req Request) error {
	spec := req.ZoneSpec
	if spec.Name == "" {
		spec.Name = req.Zone
	}
	zone, err := s.server(req).CreateZone(ctx, spec)
	if err != nil {
		return err
	}
	return s.Out.Emit(map[string]string{"id": zone.ID()}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Zone added with ID '%s'\n", zone.ID())
		return err
	})
}

func editZone(ctx context.Context, s *Session, req Request) error {
	if err := s.zone(req).Edit(ctx, req.ZoneSpec); err != nil {
		return err
	}
	s.Out.Success("Zone '%s' updated", req.Zone)
	return nil
}

func deleteZone(ctx context.Context, s *Session, req Request) error {
	if err := s.server(req).DeleteZone(ctx, req.Zone); err != nil {
		return err
	}
	s.Out.Success("Zone '%s' deleted", req.Zone)
	return nil
}
