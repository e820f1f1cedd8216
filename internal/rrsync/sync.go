// Package rrsync turns single record and comment edits into whole-RRset
// changes.
//
// The PowerDNS API replaces an RRset as a unit, so every edit reads the
// zone's current RRset, applies the change to its record (or comment) set
// and sends the complete result back. There is no version check between
// the read and the write: a concurrent writer touching the same RRset in
// between is overwritten.
package rrsync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/catalystcommunity/pdns-cli/v1/internal/pdns"
	"github.com/miekg/dns"
	log "github.com/sirupsen/logrus"
)

// DefaultTTL is used for RRsets that do not exist yet when no TTL is given.
const DefaultTTL = 3600

// Mode selects how an edit is applied to a set.
type Mode int

const (
	// ModeAdd inserts the element, replacing one with equal content.
	ModeAdd Mode = iota + 1
	// ModeReplace leaves the element as the only member of the set.
	ModeReplace
	// ModeDelete removes the element with equal content, if any.
	ModeDelete
)

var modeNames = map[Mode]string{
	ModeAdd:     "add",
	ModeReplace: "replace",
	ModeDelete:  "delete",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "add", "replace" or "delete".
func ParseMode(s string) (Mode, error) {
	for mode, name := range modeNames {
		if strings.EqualFold(s, name) {
			return mode, nil
		}
	}
	return 0, &pdns.ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown edit mode %q", s)}
}

// RRsetNotFoundError is returned when a comment edit targets an RRset the
// zone does not have.
type RRsetNotFoundError struct {
	Name string
	Type string
}

func (e *RRsetNotFoundError) Error() string {
	return fmt.Sprintf("RRset %s/%s not found", e.Name, e.Type)
}

// RecordEdit is a single-record change to one RRset.
type RecordEdit struct {
	Name   string
	Type   string
	Mode   Mode
	Record pdns.Record
	// TTL overrides the RRset TTL when positive. Zero keeps the existing
	// TTL, or DefaultTTL for a new RRset.
	TTL int
}

// CommentEdit is a single-comment change to one RRset.
type CommentEdit struct {
	Name    string
	Type    string
	Mode    Mode
	Content string
	Account string
}

func validate(name, rrtype string, mode Mode, content string) error {
	if name == "" {
		return &pdns.ValidationError{Field: "name", Reason: "record name cannot be empty"}
	}
	if rrtype == "" {
		return &pdns.ValidationError{Field: "type", Reason: "record type cannot be empty"}
	}
	if _, ok := modeNames[mode]; !ok {
		return &pdns.ValidationError{Field: "mode", Reason: "one of add, replace or delete is required"}
	}
	if content == "" {
		return &pdns.ValidationError{Field: "content", Reason: "content cannot be empty"}
	}
	return nil
}

// locate returns a private copy of the RRset with id, and whether it
// existed in rrsets.
func locate(rrsets *pdns.RRsets, id pdns.RRsetID, ttl int) (pdns.RRset, bool) {
	if rrsets != nil {
		if existing, ok := rrsets.Get(id); ok {
			return existing.Clone(), true
		}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return pdns.NewRRset(id.Name, id.Type, ttl), false
}

// ApplyRecordEdit computes the RRset that results from edit, starting from
// the matching RRset in rrsets. rrsets is not modified.
func ApplyRecordEdit(rrsets *pdns.RRsets, edit RecordEdit) (pdns.RRset, error) {
	if err := validate(edit.Name, edit.Type, edit.Mode, edit.Record.Content); err != nil {
		return pdns.RRset{}, err
	}

	rs, _ := locate(rrsets, pdns.RRsetID{Name: edit.Name, Type: edit.Type}, edit.TTL)
	if edit.TTL > 0 {
		rs.TTL = edit.TTL
	}

	switch edit.Mode {
	case ModeAdd:
		rs.Records.Add(edit.Record)
	case ModeReplace:
		rs.Records.Clear()
		rs.Records.Add(edit.Record)
	case ModeDelete:
		rs.Records.Remove(edit.Record)
	}
	return rs, nil
}

// ApplyCommentEdit computes the RRset that results from edit. The comment is
// stamped with now. An RRset without records cannot have come from the
// server, so editing its comments fails with RRsetNotFoundError.
func ApplyCommentEdit(rrsets *pdns.RRsets, edit CommentEdit, now time.Time) (pdns.RRset, error) {
	if err := validate(edit.Name, edit.Type, edit.Mode, edit.Content); err != nil {
		return pdns.RRset{}, err
	}

	rs, _ := locate(rrsets, pdns.RRsetID{Name: edit.Name, Type: edit.Type}, 0)
	if rs.Records.Len() == 0 {
		return pdns.RRset{}, &RRsetNotFoundError{Name: edit.Name, Type: edit.Type}
	}

	comment := pdns.Comment{
		Content:    edit.Content,
		Account:    edit.Account,
		ModifiedAt: now.Unix(),
	}
	switch edit.Mode {
	case ModeAdd:
		rs.Comments.Add(comment)
	case ModeReplace:
		rs.Comments.Clear()
		rs.Comments.Add(comment)
	case ModeDelete:
		rs.Comments.Remove(comment)
	}
	return rs, nil
}

// QualifyName makes name absolute within zone. "@" is the apex; names
// already ending with a dot are returned unchanged.
func QualifyName(name, zone string) string {
	zone = dns.Fqdn(zone)
	switch {
	case name == "@":
		return zone
	case dns.IsFqdn(name):
		return name
	default:
		return name + "." + zone
	}
}

// Zone is the part of a zone the synchronizer reads and writes.
// *pdns.Zone satisfies it.
type Zone interface {
	Name(ctx context.Context) (string, error)
	RRsets(ctx context.Context) (*pdns.RRsets, error)
	Patch(ctx context.Context, changes ...pdns.RRsetChange) error
}

// Synchronizer performs read-modify-write RRset edits against a zone.
type Synchronizer struct {
	now func() time.Time
}

// New returns a Synchronizer stamping comments with the wall clock.
func New() *Synchronizer {
	return &Synchronizer{now: time.Now}
}

// NewWithClock returns a Synchronizer stamping comments with now().
func NewWithClock(now func() time.Time) *Synchronizer {
	return &Synchronizer{now: now}
}

// EditRecord applies a record edit to the zone and returns the change that
// was sent.
func (s *Synchronizer) EditRecord(ctx context.Context, zone Zone, edit RecordEdit) (pdns.RRsetChange, error) {
	if err := validate(edit.Name, edit.Type, edit.Mode, edit.Record.Content); err != nil {
		return pdns.RRsetChange{}, err
	}

	var err error
	if edit, err = qualify(ctx, zone, edit); err != nil {
		return pdns.RRsetChange{}, err
	}

	rrsets, err := zone.RRsets(ctx)
	if err != nil {
		return pdns.RRsetChange{}, err
	}

	rs, err := ApplyRecordEdit(rrsets, edit)
	if err != nil {
		return pdns.RRsetChange{}, err
	}

	change := pdns.ReplaceChange(rs)
	log.Debugf("%s record %q in %s/%s (%d records, %d comments)",
		edit.Mode, edit.Record.Content, rs.Name, rs.Type, rs.Records.Len(), rs.Comments.Len())
	if err := zone.Patch(ctx, change); err != nil {
		return pdns.RRsetChange{}, err
	}
	return change, nil
}

// EditComment applies a comment edit to the zone and returns the change
// that was sent.
func (s *Synchronizer) EditComment(ctx context.Context, zone Zone, edit CommentEdit) (pdns.RRsetChange, error) {
	if err := validate(edit.Name, edit.Type, edit.Mode, edit.Content); err != nil {
		return pdns.RRsetChange{}, err
	}

	zoneName, err := zone.Name(ctx)
	if err != nil {
		return pdns.RRsetChange{}, err
	}
	edit.Name = QualifyName(edit.Name, zoneName)
	edit.Type = strings.ToUpper(edit.Type)

	rrsets, err := zone.RRsets(ctx)
	if err != nil {
		return pdns.RRsetChange{}, err
	}

	rs, err := ApplyCommentEdit(rrsets, edit, s.now())
	if err != nil {
		return pdns.RRsetChange{}, err
	}

	change := pdns.ReplaceChange(rs)
	log.Debugf("%s comment %q in %s/%s", edit.Mode, edit.Content, rs.Name, rs.Type)
	if err := zone.Patch(ctx, change); err != nil {
		return pdns.RRsetChange{}, err
	}
	return change, nil
}

// DeleteRRset removes the whole RRset (name, type) from the zone.
func (s *Synchronizer) DeleteRRset(ctx context.Context, zone Zone, name, rrtype string) (pdns.RRsetChange, error) {
	if name == "" || rrtype == "" {
		return pdns.RRsetChange{}, &pdns.ValidationError{Reason: "record name and type are required"}
	}
	zoneName, err := zone.Name(ctx)
	if err != nil {
		return pdns.RRsetChange{}, err
	}

	change := pdns.DeleteChange(pdns.RRsetID{
		Name: QualifyName(name, zoneName),
		Type: strings.ToUpper(rrtype),
	})
	if err := zone.Patch(ctx, change); err != nil {
		return pdns.RRsetChange{}, err
	}
	return change, nil
}

func qualify(ctx context.Context, zone Zone, edit RecordEdit) (RecordEdit, error) {
	zoneName, err := zone.Name(ctx)
	if err != nil {
		return edit, err
	}
	edit.Name = QualifyName(edit.Name, zoneName)
	edit.Type = strings.ToUpper(edit.Type)
	return edit, nil
}
