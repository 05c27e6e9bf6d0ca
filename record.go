package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reserved field names. Every other field is whatever the first import
// produced; the store never enforces a schema.
const (
	TenantField      = "Tenant"
	ProjectField     = "Project"
	LastUpdatedField = "Last Updated"
)

// StampLayout is the format of the Last Updated field.
const StampLayout = "2006-01-02 15:04:05"

// Stamp renders t in the Last Updated format.
func Stamp(t time.Time) string { return t.Format(StampLayout) }

// Field is a single named value of a record.
type Field struct {
	Name  string
	Value string
}

// Record is one row of the inventory: an ordered mapping from field name to
// string value, plus a stable surrogate identifier.
//
// Field order is the display and persistence order. Missing fields read as
// the empty string. The ID is assigned once, at creation or on first load,
// and never changes afterwards; it is how edits and deletes address a record
// even when two records carry identical field values.
type Record struct {
	id     string
	fields []Field
}

// NewRecord creates an empty record with a fresh identifier.
func NewRecord() *Record {
	return &Record{id: uuid.NewString()}
}

// newRecordWithID restores a record from persistence. An empty id means the
// file predates identifiers; a fresh one is assigned and will be persisted on
// the next save.
func newRecordWithID(id string) *Record {
	if id == "" {
		id = uuid.NewString()
	}
	return &Record{id: id}
}

// ID returns the record's stable identifier.
func (r *Record) ID() string { return r.id }

// Fields returns the record's fields in order. The returned slice is the
// record's own storage; callers must not mutate it.
func (r *Record) Fields() []Field { return r.fields }

// FieldNames returns the field names in order.
func (r *Record) FieldNames() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Get returns the value of the named field, or "" if the record has no such
// field.
func (r *Record) Get(name string) string {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Has reports whether the record carries the named field, even empty.
func (r *Record) Has(name string) bool {
	for _, f := range r.fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Set replaces the value of the named field, appending the field if the
// record does not have it yet. Field order is preserved on replace.
func (r *Record) Set(name, value string) {
	for i, f := range r.fields {
		if f.Name == name {
			r.fields[i].Value = value
			return
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Tenant returns the owning principal's identity, possibly empty.
func (r *Record) Tenant() string { return r.Get(TenantField) }

// Project returns the grouping label, possibly empty.
func (r *Record) Project() string { return r.Get(ProjectField) }

// Clone returns a deep copy sharing the same identifier.
func (r *Record) Clone() *Record {
	c := &Record{id: r.id, fields: make([]Field, len(r.fields))}
	copy(c.fields, r.fields)
	return c
}

// Values returns the value tuple for the given field names, missing fields
// as "". This is the displayed tuple of the record for a given column set.
func (r *Record) Values(names []string) []string {
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = r.Get(name)
	}
	return values
}

// Flatten returns a case-folded textual rendering of the whole record, names
// and values alike, for free-text matching.
func (r *Record) Flatten() string {
	var sb strings.Builder
	for _, f := range r.fields {
		sb.WriteString(strings.ToLower(f.Name))
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(f.Value))
		sb.WriteByte(' ')
	}
	return sb.String()
}
