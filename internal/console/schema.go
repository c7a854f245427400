package console

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldCheckbox
)

// productFieldSchema is the single source of truth for how a form field
// identifier maps onto the draft. It is consulted both when folding posted
// input into the draft and when building the submission payload, so there is
// no identifier-based dynamic dispatch anywhere else.
var productFieldSchema = map[string]FieldKind{
	"title":        FieldText,
	"category":     FieldText,
	"unit":         FieldText,
	"description":  FieldText,
	"content":      FieldText,
	"imageUrl":     FieldText,
	"origin_price": FieldNumber,
	"price":        FieldNumber,
	"is_enabled":   FieldCheckbox,
}

// KindOf reports the kind of a schema field.
func KindOf(name string) (FieldKind, bool) {
	kind, ok := productFieldSchema[name]
	return kind, ok
}

// FieldNames lists every editable draft field, for handlers that fold a whole
// form submission into the draft.
func FieldNames() []string {
	names := make([]string, 0, len(productFieldSchema))
	for name := range productFieldSchema {
		names = append(names, name)
	}
	return names
}

// parsePrice turns edited price text into a number. Empty input counts as
// zero; anything non-numeric or negative is rejected rather than passed
// through to the server.
func parsePrice(field, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must be zero or greater", field)
	}
	return value, nil
}
