package inventory

import (
	"reflect"
	"testing"
)

func filterFixture() []*Record {
	return []*Record{
		item("bolt M8", "acme", "Phoenix"),
		item("nut M8", "globex", "Phoenix"),
		item("washer", "acme", "Atlas"),
		item("screw", "initech", ""),
	}
}

func TestFilter(t *testing.T) {
	all := filterFixture()

	testCases := []struct {
		name      string
		principal Principal
		query     Query
		want      []string
	}{
		{
			name:      "administrator, no filters",
			principal: Administrator,
			query:     Query{},
			want:      []string{"bolt M8", "nut M8", "washer", "screw"},
		},
		{
			name:      "tenant visibility is independent of filters",
			principal: "acme",
			query:     Query{},
			want:      []string{"bolt M8", "washer"},
		},
		{
			name:      "tenant filter applies to administrator only",
			principal: Administrator,
			query:     Query{Tenant: "ACME"},
			want:      []string{"bolt M8", "washer"},
		},
		{
			name:      "tenant filter does not widen a tenant's scope",
			principal: "acme",
			query:     Query{Tenant: "globex"},
			want:      []string{"bolt M8", "washer"},
		},
		{
			name:      "project substring, case-insensitive",
			principal: Administrator,
			query:     Query{Project: "phoe"},
			want:      []string{"bolt M8", "nut M8"},
		},
		{
			name:      "free text matches any field",
			principal: Administrator,
			query:     Query{Text: "m8"},
			want:      []string{"bolt M8", "nut M8"},
		},
		{
			name:      "free text matches field names too",
			principal: Administrator,
			query:     Query{Text: "item"},
			want:      []string{"bolt M8", "nut M8", "washer", "screw"},
		},
		{
			name:      "all clauses conjunctive",
			principal: Administrator,
			query:     Query{Text: "m8", Tenant: "acme", Project: "phoenix"},
			want:      []string{"bolt M8"},
		},
		{
			name:      "no match",
			principal: Administrator,
			query:     Query{Text: "titanium"},
			want:      nil,
		},
		{
			name:      "tenant free text within own scope",
			principal: "acme",
			query:     Query{Text: "m8"},
			want:      []string{"bolt M8"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := names(Filter(all, tc.query, tc.principal))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Filter(%+v, %q) = %v, want %v", tc.query, tc.principal, got, tc.want)
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	all := filterFixture()
	q := Query{Text: "m8", Project: "phoenix"}

	once := Filter(all, q, Administrator)
	twice := Filter(once, q, Administrator)
	if !reflect.DeepEqual(names(once), names(twice)) {
		t.Errorf("filtering twice gave %v, want %v", names(twice), names(once))
	}
}

func TestUniqueValues(t *testing.T) {
	all := filterFixture()
	all = append(all, item("extra", "acme", "Phoenix")) // duplicate tenant and project

	if got, want := Tenants(all), []string{"acme", "globex", "initech"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Tenants() = %v, want %v", got, want)
	}
	if got, want := Projects(all, Administrator), []string{"Atlas", "Phoenix"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Projects(administrator) = %v, want %v", got, want)
	}
	if got, want := Projects(all, "acme"), []string{"Atlas", "Phoenix"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Projects(acme) = %v, want %v", got, want)
	}
	if got, want := Projects(all, "initech"), []string(nil); !reflect.DeepEqual(got, want) {
		t.Errorf("Projects(initech) = %v, want %v", got, want)
	}
}
