package inventory

import (
	"fmt"
	"time"
)

// EditSession is the bounded interaction producing one committed record
// mutation or append. A session is either creating (no target record) or
// editing (seeded from an existing record's values, addressed by its
// identifier). Nothing happens to the store until Commit; abandoning the
// session has no effect.
type EditSession struct {
	target string // record identifier when editing, "" when creating
	fields []Field

	// now is the commit timestamp source, replaceable in tests.
	now func() time.Time
}

// NewEditSession starts a creating session with blank values for the given
// columns.
func NewEditSession(columns []string) *EditSession {
	s := &EditSession{now: time.Now}
	for _, name := range columns {
		s.fields = append(s.fields, Field{Name: name})
	}
	return s
}

// EditSessionFor starts an editing session seeded from the record's current
// values.
func EditSessionFor(r *Record) *EditSession {
	s := &EditSession{target: r.ID(), now: time.Now}
	s.fields = append(s.fields, r.Fields()...)
	return s
}

// Editing reports whether the session targets an existing record.
func (s *EditSession) Editing() bool { return s.target != "" }

// Get returns the session's current value for the named field.
func (s *EditSession) Get(name string) string {
	for _, f := range s.fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Set replaces the session's value for the named field, adding the field if
// the session does not carry it yet.
func (s *EditSession) Set(name, value string) {
	for i, f := range s.fields {
		if f.Name == name {
			s.fields[i].Value = value
			return
		}
	}
	s.fields = append(s.fields, Field{Name: name, Value: value})
}

// Commit builds a record from the session's field values and submits it to
// the store: an in-place replacement when editing, an append when creating.
// All fields are written together; on error the store is unchanged.
//
// Every committed record gets a fresh Last Updated stamp, and when the
// principal is not the administrator its Tenant field is forced to the
// principal's identity, silently overriding whatever was entered.
func (s *EditSession) Commit(store *Store, principal Principal) (*Record, error) {
	for _, f := range s.fields {
		if f.Name == idProperty {
			return nil, fmt.Errorf("field %q is reserved for record identifiers", idProperty)
		}
	}

	var rec *Record
	if s.Editing() {
		rec = newRecordWithID(s.target)
	} else {
		rec = NewRecord()
	}
	for _, f := range s.fields {
		rec.Set(f.Name, f.Value)
	}
	rec.Set(LastUpdatedField, Stamp(s.now()))
	if !principal.IsAdmin() {
		rec.Set(TenantField, string(principal))
	}

	if s.Editing() {
		if err := store.Update(rec, principal); err != nil {
			return nil, err
		}
		return rec, nil
	}
	store.Append(rec)
	return rec, nil
}
