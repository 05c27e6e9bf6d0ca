package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record carries the requested identifier.
var ErrNotFound = errors.New("record not found")

// AuthorizationError reports records a principal targeted but does not own.
// The targeted records are left untouched; whether to surface the denial is
// the caller's choice.
type AuthorizationError struct {
	Principal Principal
	IDs       []string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("principal %q is not authorized for %d record(s)", e.Principal, len(e.IDs))
}

// Store owns the full in-memory collection of inventory records.
//
// The collection is an ordered sequence; order is display and persistence
// order. A Store is exclusively owned by the running session: it is read
// afresh from the persisted file at startup and written back wholesale on
// every mutation. Nothing guards the persisted file against concurrent
// processes; that hazard is documented, not handled.
type Store struct {
	records []*Record
}

// NewStore creates an empty store.
func NewStore() *Store { return &Store{} }

// newStoreOf creates a store over an already-decoded collection.
func newStoreOf(records []*Record) *Store { return &Store{records: records} }

// Records returns the full collection in order. The returned slice is the
// store's own storage; callers must not mutate it.
func (s *Store) Records() []*Record { return s.records }

// Len returns the number of records in the collection.
func (s *Store) Len() int { return len(s.records) }

// Get returns the record with the given identifier, or ErrNotFound.
func (s *Store) Get(id string) (*Record, error) {
	for _, r := range s.records {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

// Append adds a new record at the end of the collection. Appending is always
// permitted: the edit session has already forced the record's Tenant to the
// acting principal when that principal is not the administrator.
func (s *Store) Append(r *Record) {
	s.records = append(s.records, r)
}

// Update replaces the record with newRecord.id in place. The replacement
// keeps the record's position in the collection. Returns ErrNotFound if no
// record carries the identifier, or an *AuthorizationError if the principal
// does not own the existing record; either way the collection is unchanged.
func (s *Store) Update(newRecord *Record, principal Principal) error {
	for i, r := range s.records {
		if r.ID() != newRecord.ID() {
			continue
		}
		if !principal.Owns(r) {
			return &AuthorizationError{Principal: principal, IDs: []string{r.ID()}}
		}
		s.records[i] = newRecord
		return nil
	}
	return ErrNotFound
}

// Delete removes every record whose identifier appears in ids and which the
// principal owns. Records the principal does not own are retained unchanged,
// and reported together in a single *AuthorizationError; identifiers that
// match nothing are ignored. Returns the number of records removed.
func (s *Store) Delete(ids []string, principal Principal) (int, error) {
	targets := make(map[string]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}

	var kept []*Record
	var denied []string
	removed := 0
	for _, r := range s.records {
		if targets[r.ID()] {
			if principal.Owns(r) {
				removed++
				continue
			}
			denied = append(denied, r.ID())
		}
		kept = append(kept, r)
	}
	s.records = kept

	if len(denied) > 0 {
		return removed, &AuthorizationError{Principal: principal, IDs: denied}
	}
	return removed, nil
}

// FieldNames returns the column set of the collection: the field names of the
// first record, in order. An empty store has no columns.
//
// All records are expected to share the same field set, but the store does
// not enforce it; records missing a column read as "".
func (s *Store) FieldNames() []string {
	if len(s.records) == 0 {
		return nil
	}
	return s.records[0].FieldNames()
}
