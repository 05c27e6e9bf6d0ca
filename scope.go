package inventory

// Principal is the identity of the active session: either Administrator or a
// tenant name. It is captured once when the session starts and threaded
// explicitly through every store and filter call.
type Principal string

// Administrator is the distinguished principal that sees and may act on
// every record.
const Administrator Principal = "administrator"

// IsAdmin reports whether the principal is the administrator.
func (p Principal) IsAdmin() bool { return p == Administrator }

// Owns reports whether the principal may see and mutate the record: the
// administrator owns everything, a tenant owns exactly the records whose
// Tenant field equals its identity.
func (p Principal) Owns(r *Record) bool {
	return p.IsAdmin() || r.Tenant() == string(p)
}

// Scope returns the subset of records the principal is permitted to see,
// preserving relative order. For the administrator this is the identical
// slice; for a tenant it is the records tagged with its own identity.
func Scope(records []*Record, principal Principal) []*Record {
	if principal.IsAdmin() {
		return records
	}
	var scoped []*Record
	for _, r := range records {
		if r.Tenant() == string(principal) {
			scoped = append(scoped, r)
		}
	}
	return scoped
}
