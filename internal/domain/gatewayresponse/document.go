// Package gatewayresponse reads the payment gateway's loosely shaped JSON responses.
//
// The gateway reports outcomes under different field names and nesting depths depending
// on the mobile-money network behind it. Nothing here fails on a missing or mistyped
// field: absent paths are skipped.
package gatewayresponse

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Document is a decoded gateway response. Numbers are kept as json.Number so
// codes like 000 are not mangled.
type Document struct {
	root any
}

// Parse decodes raw into a Document. Invalid or empty input gives an empty Document.
func Parse(raw []byte) Document {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Document{}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Document{}
	}
	return Document{root: v}
}

// FromValue wraps an already decoded value.
func FromValue(v any) Document {
	return Document{root: v}
}

// IsObject reports whether the response is a JSON object.
func (d Document) IsObject() bool {
	_, ok := d.root.(map[string]any)
	return ok
}

// Lookup follows path through nested objects and returns the value found there.
func (d Document) Lookup(path ...string) (any, bool) {
	cur := d.root
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

// String returns the scalar at path as trimmed text. Objects, arrays, null and
// blank strings count as absent.
func (d Document) String(path ...string) (string, bool) {
	v, ok := d.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := scalarText(v)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}
