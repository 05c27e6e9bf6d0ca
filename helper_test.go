package inventory

// rec is a helper for tests to build a record from name/value pairs, in
// order.
func rec(pairs ...string) *Record {
	r := NewRecord()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// item is a helper for tests to build a typical inventory row.
func item(name, tenant, project string) *Record {
	return rec("Item", name, TenantField, tenant, ProjectField, project)
}

// names is a helper for tests to extract the Item column of a subset.
func names(records []*Record) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Get("Item"))
	}
	return out
}
