package inventory

import (
	"reflect"
	"testing"
)

func TestEvalPath(t *testing.T) {
	records := []*Record{
		item("bolt", "acme", "P1"),
		item("nut", "globex", "P2"),
	}

	testCases := []struct {
		name string
		path string
		want any
	}{
		{
			name: "single field",
			path: "$[0].Item",
			want: "bolt",
		},
		{
			name: "column across records",
			path: "$[*].Tenant",
			want: []any{"acme", "globex"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EvalPath(records, tc.path)
			if err != nil {
				t.Fatalf("EvalPath(%q) error: %v", tc.path, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("EvalPath(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestEvalPath_Invalid(t *testing.T) {
	if _, err := EvalPath(nil, "not a path"); err == nil {
		t.Error("EvalPath() accepted a malformed expression")
	}
}
