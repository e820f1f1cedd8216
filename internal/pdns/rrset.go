package pdns

import (
	"encoding/json"

	"github.com/catalystcommunity/pdns-cli/v1/internal/keyedset"
)

// ChangeType is the per-RRset operation tag of a zone PATCH.
type ChangeType string

const (
	ChangeReplace ChangeType = "REPLACE"
	ChangeDelete  ChangeType = "DELETE"
)

// Record is one rdata entry of an RRset. Identity is the content alone.
type Record struct {
	Content  string `json:"content"`
	Disabled bool   `json:"disabled"`
	SetPTR   bool   `json:"set_ptr"`
}

// RecordKey is the identity of a record.
func RecordKey(r Record) string { return r.Content }

// Comment is an annotation on an RRset. Identity is the content alone.
type Comment struct {
	Content    string `json:"content"`
	Account    string `json:"account"`
	ModifiedAt int64  `json:"modified_at"`
}

// CommentKey is the identity of a comment.
func CommentKey(c Comment) string { return c.Content }

// Records is a set of records keyed by content.
type Records = keyedset.Set[string, Record]

// Comments is a set of comments keyed by content.
type Comments = keyedset.Set[string, Comment]

// NewRecords builds a record set; later duplicates win.
func NewRecords(records ...Record) *Records {
	return keyedset.New(RecordKey, records...)
}

// NewComments builds a comment set; later duplicates win.
func NewComments(comments ...Comment) *Comments {
	return keyedset.New(CommentKey, comments...)
}

// RRsetID identifies an RRset within a zone.
type RRsetID struct {
	Name string
	Type string
}

// RRset is all records of a zone sharing one owner name and type. Two
// RRsets are the same RRset when their RRsetID matches, whatever their TTL,
// records or comments.
type RRset struct {
	Name     string
	Type     string
	TTL      int
	Records  *Records
	Comments *Comments
}

// NewRRset returns an empty RRset.
func NewRRset(name, rrtype string, ttl int) RRset {
	return RRset{
		Name:     name,
		Type:     rrtype,
		TTL:      ttl,
		Records:  NewRecords(),
		Comments: NewComments(),
	}
}

// ID returns the RRset key.
func (rs RRset) ID() RRsetID {
	return RRsetID{Name: rs.Name, Type: rs.Type}
}

// RRsetKey is the identity of an RRset.
func RRsetKey(rs RRset) RRsetID { return rs.ID() }

// RRsets is a zone's RRset collection keyed by (name, type).
type RRsets = keyedset.Set[RRsetID, RRset]

// NewRRsets builds an RRset collection.
func NewRRsets(rrsets ...RRset) *RRsets {
	return keyedset.New(RRsetKey, rrsets...)
}

// Clone returns a deep copy so edits do not leak into a cached snapshot.
func (rs RRset) Clone() RRset {
	out := rs
	if rs.Records != nil {
		out.Records = rs.Records.Clone()
	} else {
		out.Records = NewRecords()
	}
	if rs.Comments != nil {
		out.Comments = rs.Comments.Clone()
	} else {
		out.Comments = NewComments()
	}
	return out
}

type rrsetJSON struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	TTL      int       `json:"ttl"`
	Records  []Record  `json:"records"`
	Comments []Comment `json:"comments"`
}

// UnmarshalJSON reads the server's RRset object, collapsing duplicate
// records and comments by content.
func (rs *RRset) UnmarshalJSON(data []byte) error {
	var raw rrsetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rs.Name = raw.Name
	rs.Type = raw.Type
	rs.TTL = raw.TTL
	rs.Records = NewRecords(raw.Records...)
	rs.Comments = NewComments(raw.Comments...)
	return nil
}

// MarshalJSON writes the RRset as the server presents it.
func (rs RRset) MarshalJSON() ([]byte, error) {
	out := rrsetJSON{
		Name:     rs.Name,
		Type:     rs.Type,
		TTL:      rs.TTL,
		Records:  []Record{},
		Comments: []Comment{},
	}
	if rs.Records != nil {
		out.Records = rs.Records.Items()
	}
	if rs.Comments != nil {
		out.Comments = rs.Comments.Items()
	}
	return json.Marshal(out)
}

// RRsetChange is one entry of a zone PATCH.
type RRsetChange struct {
	Name       string
	Type       string
	TTL        int
	ChangeType ChangeType
	Records    []Record
	Comments   []Comment
}

// ReplaceChange turns an RRset into a whole-RRset REPLACE change.
func ReplaceChange(rs RRset) RRsetChange {
	change := RRsetChange{
		Name:       rs.Name,
		Type:       rs.Type,
		TTL:        rs.TTL,
		ChangeType: ChangeReplace,
		Records:    []Record{},
		Comments:   []Comment{},
	}
	if rs.Records != nil {
		change.Records = rs.Records.Items()
	}
	if rs.Comments != nil {
		change.Comments = rs.Comments.Items()
	}
	return change
}

// DeleteChange removes the RRset identified by id.
func DeleteChange(id RRsetID) RRsetChange {
	return RRsetChange{Name: id.Name, Type: id.Type, ChangeType: ChangeDelete}
}

// ID returns the key the change applies to.
func (c RRsetChange) ID() RRsetID {
	return RRsetID{Name: c.Name, Type: c.Type}
}

// MarshalJSON omits ttl, records and comments for DELETE changes and always
// sends records and comments as arrays for REPLACE.
func (c RRsetChange) MarshalJSON() ([]byte, error) {
	if c.ChangeType == ChangeDelete {
		return json.Marshal(struct {
			Name       string     `json:"name"`
			Type       string     `json:"type"`
			ChangeType ChangeType `json:"changetype"`
		}{c.Name, c.Type, c.ChangeType})
	}

	records := c.Records
	if records == nil {
		records = []Record{}
	}
	comments := c.Comments
	if comments == nil {
		comments = []Comment{}
	}
	return json.Marshal(struct {
		Name       string     `json:"name"`
		Type       string     `json:"type"`
		TTL        int        `json:"ttl"`
		ChangeType ChangeType `json:"changetype"`
		Records    []Record   `json:"records"`
		Comments   []Comment  `json:"comments"`
	}{c.Name, c.Type, c.TTL, c.ChangeType, records, comments})
}

// ZonePatch is the body of a zone PATCH request.
type ZonePatch struct {
	RRsets []RRsetChange `json:"rrsets"`
}
