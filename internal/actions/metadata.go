package actions

import (
	"context"
	"sort"
	"strings"
)

func listMetadata(ctx context.Context, s *Session, req Request) error {
	all, err := s.zone(req).Metadata(ctx)
	if err != nil {
		return err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })

	rows := make([][]string, 0, len(all))
	for _, m := range all {
		values, err := m.Values(ctx)
		if err != nil {
			return err
		}
		rows = append(rows, []string{m.ID(), strings.Join(values, ", ")})
	}
	return s.Out.Table([]string{"KIND", "METADATA"}, rows)
}

func showMetadata(ctx context.Context, s *Session, req Request) error {
	if req.Kind == "" {
		return usagef("%s: metadata kind is required", req.Action)
	}
	values, err := s.zone(req).MetadataKind(req.Kind).Values(ctx)
	if err != nil {
		return err
	}
	return s.Out.Lines(values)
}

func addMetadata(ctx context.Context, s *Session, req Request) error {
	if _, err := s.zone(req).AddMetadata(ctx, req.Kind, req.Values); err != nil {
		return err
	}
	s.Out.Success("Metadata '%s' added to '%s'", req.Kind, req.Zone)
	return nil
}

func editMetadata(ctx context.Context, s *Session, req Request) error {
	if req.Kind == "" {
		return usagef("%s: metadata kind is required", req.Action)
	}
	if err := s.zone(req).MetadataKind(req.Kind).Replace(ctx, req.Values); err != nil {
		return err
	}
	s.Out.Success("Metadata '%s' of '%s' replaced", req.Kind, req.Zone)
	return nil
}

func deleteMetadata(ctx context.Context, s *Session, req Request) error {
	if req.Kind == "" {
		return usagef("%s: metadata kind is required", req.Action)
	}
	if err := s.zone(req).MetadataKind(req.Kind).Delete(ctx); err != nil {
		return err
	}
	s.Out.Success("Metadata '%s' deleted from '%s'", req.Kind, req.Zone)
	return nil
}
