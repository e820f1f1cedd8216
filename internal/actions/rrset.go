package actions

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
	"github.com/catalystcommunity/pdns-cli/v1/internal/rrsync"
)

// commentTimeLayout matches an ISO 8601 local timestamp without zone.
const commentTimeLayout = "2006-01-02T15:04:05"

func showRRsets(ctx context.Context, s *Session, req Request) error {
	zone := s.zone(req)
	name, err := zone.Name(ctx)
	if err != nil {
		return err
	}
	rrsets, err := zone.RRsets(ctx)
	if err != nil {
		return err
	}

	ordered := orderRRsets(name, rrsets.Items())
	return s.Out.Emit(ordered, func(w io.Writer) error {
		for _, rs := range ordered {
			if err := writeRRset(w, rs, s.location()); err != nil {
				return err
			}
		}
		return nil
	})
}

// orderRRsets puts the apex RRsets first, then everything else, each part
// sorted by (name, type).
func orderRRsets(apex string, rrsets []pdns.RRset) []pdns.RRset {
	out := make([]pdns.RRset, len(rrsets))
	copy(out, rrsets)
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i].Name == apex, out[j].Name == apex
		if ai != aj {
			return ai
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Type < out[j].Type
	})
	return out
}

func writeRRset(w io.Writer, rs pdns.RRset, loc *time.Location) error {
	comments := rs.Comments.Items()
	sort.SliceStable(comments, func(i, j int) bool { return comments[i].ModifiedAt < comments[j].ModifiedAt })
	for _, c := range comments {
		stamp := time.Unix(c.ModifiedAt, 0).In(loc).Format(commentTimeLayout)
		var err error
		if c.Account != "" {
			_, err = fmt.Fprintf(w, ";; %s by %s: %s\n", stamp, c.Account, c.Content)
		} else {
			_, err = fmt.Fprintf(w, ";; %s: %s\n", stamp, c.Content)
		}
		if err != nil {
			return err
		}
	}

	records := rs.Records.Items()
	sort.SliceStable(records, func(i, j int) bool { return records[i].Content < records[j].Content })
	for _, r := range records {
		line := fmt.Sprintf("%s\t%d\tIN\t%s\t%s", rs.Name, rs.TTL, rs.Type, r.Content)
		if r.Disabled {
			line = fmt.Sprintf("; %s ; DISABLED", line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func editRRset(ctx context.Context, s *Session, req Request) error {
	change, err := s.synchronizer().EditRecord(ctx, s.zone(req), rrsync.RecordEdit{
		Name: req.Name,
		Type: req.Type,
		Mode: req.Mode,
		Record: pdns.Record{
			Content:  req.Content,
			Disabled: req.Disabled,
			SetPTR:   req.SetPTR,
		},
		TTL: req.TTL,
	})
	if err != nil {
		return err
	}
	return emitChange(s, change)
}

func deleteRRset(ctx context.Context, s *Session, req Request) error {
	change, err := s.synchronizer().DeleteRRset(ctx, s.zone(req), req.Name, req.Type)
	if err != nil {
		return err
	}
	return emitChange(s, change)
}

func editRRsetComments(ctx context.Context, s *Session, req Request) error {
	change, err := s.synchronizer().EditComment(ctx, s.zone(req), rrsync.CommentEdit{
		Name:    req.Name,
		Type:    req.Type,
		Mode:    req.Mode,
		Content: req.Content,
		Account: req.Account,
	})
	if err != nil {
		return err
	}
	return emitChange(s, change)
}

// emitChange prints the submitted change in structured modes. Text mode
// stays silent on success.
func emitChange(s *Session, change pdns.RRsetChange) error {
	if !s.Out.Structured() {
		return nil
	}
	return s.Out.Emit(change, nil)
}
