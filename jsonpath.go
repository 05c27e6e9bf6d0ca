package inventory

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// EvalPath evaluates a JSONPath expression against the given records, seen
// as the JSON array they persist as (e.g. "$[0].Item", "$[*].Tenant"). The
// result is whatever generic JSON value the expression selects.
func EvalPath(records []*Record, path string) (any, error) {
	if records == nil {
		records = []*Record{}
	}
	// Round-trip through the persisted encoding so the expression sees the
	// exact same document a user would see in the data file.
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("cannot render records for query: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot render records for query: %w", err)
	}

	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return val, nil
}
