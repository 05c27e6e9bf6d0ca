package inventory

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file handles the persisted collection format: a single JSON document
// holding an array of objects, one per record, two-space indented. Object
// keys are the record's fields in display order, preceded by the surrogate
// "id" property. Files written before identifiers existed simply lack "id";
// records read from them get a fresh one.

// idProperty is the reserved object key carrying a record's identifier. It is
// not a field; a field with that name would shadow it on the next decode and
// is rejected on every path into persistence (marshal, decode, import,
// commit).
const idProperty = "id"

// MarshalJSON renders the record as a JSON object with "id" first and the
// fields in display order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r.Has(idProperty) {
		return nil, fmt.Errorf("record field %q collides with the identifier property", idProperty)
	}
	w := &jsonObjectWriter{}
	w.Append(idProperty, r.id)
	for _, f := range r.fields {
		w.Append(f.Name, f.Value)
	}
	return w.MarshalJSON()
}

// DecodeRecords decodes the whole persisted collection from r.
func DecodeRecords(r io.Reader) ([]*Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty records document")
		}
		return nil, fmt.Errorf("cannot read records document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("records document must be a JSON array, got %v", tok)
	}

	var records []*Record
	for dec.More() {
		rec, err := decodeRecord(dec)
		if err != nil {
			return nil, fmt.Errorf("cannot decode record %d: %w", len(records), err)
		}
		records = append(records, rec)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("cannot read records document: %w", err)
	}
	return records, nil
}

// decodeRecord reads one object from the decoder, preserving key order.
// Non-string scalar values (numbers, booleans) are kept as their textual
// rendering, so collections written by other tools still load.
func decodeRecord(dec *json.Decoder) (*Record, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	rec := newRecordWithID("")
	sawID := false
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("record key must be a string, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		var value string
		switch v := valTok.(type) {
		case string:
			value = v
		case json.Number:
			value = v.String()
		case bool:
			if v {
				value = "true"
			} else {
				value = "false"
			}
		case nil:
			value = ""
		default:
			return nil, fmt.Errorf("record field %q has unsupported value %v", key, valTok)
		}

		if key == idProperty {
			if sawID {
				return nil, fmt.Errorf("duplicate %q key", idProperty)
			}
			sawID = true
			if value != "" {
				rec.id = value
			}
			continue
		}
		rec.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rec, nil
}

// EncodeRecords writes the whole collection to w in the persisted format.
// A nil or empty collection encodes as an empty array.
func EncodeRecords(w io.Writer, records []*Record) error {
	if records == nil {
		records = []*Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode records: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write records: %w", err)
	}
	return nil
}
