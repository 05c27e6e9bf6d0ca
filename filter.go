package inventory

import (
	"sort"
	"strings"
)

// Query is the set of filter controls applied to the full collection to
// compute the displayed subset: a free-text search, an optional tenant
// equality filter (meaningful for the administrator only) and an optional
// project substring filter.
type Query struct {
	Text    string
	Tenant  string
	Project string
}

// Matches tests one record against the query for the given principal. All
// three clauses must hold:
//
//  1. visibility: the administrator matches when the tenant filter is empty
//     or equals the record's Tenant case-insensitively; any other principal
//     matches only records it owns, regardless of the tenant filter.
//  2. project: case-insensitive substring of the record's Project field.
//  3. free text: case-insensitive substring of the record's flattened
//     rendering.
func (q Query) Matches(r *Record, principal Principal) bool {
	tenantQuery := strings.ToLower(strings.TrimSpace(q.Tenant))
	var visible bool
	if principal.IsAdmin() {
		visible = tenantQuery == "" || strings.ToLower(r.Tenant()) == tenantQuery
	} else {
		visible = r.Tenant() == string(principal)
	}
	if !visible {
		return false
	}

	projectQuery := strings.ToLower(strings.TrimSpace(q.Project))
	if !strings.Contains(strings.ToLower(r.Project()), projectQuery) {
		return false
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))
	return strings.Contains(r.Flatten(), text)
}

// Filter returns the displayed subset: every record of the full collection
// matching the query for the principal, preserving relative order. Filtering
// is idempotent: filtering a result set again with the same query returns
// the same set.
func Filter(records []*Record, q Query, principal Principal) []*Record {
	var filtered []*Record
	for _, r := range records {
		if q.Matches(r, principal) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// UniqueValues returns the sorted distinct non-empty values of the named
// field across the given records.
func UniqueValues(records []*Record, field string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, r := range records {
		v := r.Get(field)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Projects returns the sorted distinct project labels visible to the
// principal: all of them for the administrator, only the principal's own
// otherwise.
func Projects(records []*Record, principal Principal) []string {
	return UniqueValues(Scope(records, principal), ProjectField)
}

// Tenants returns the sorted distinct tenant identities present in the
// collection.
func Tenants(records []*Record) []string {
	return UniqueValues(records, TenantField)
}
