// Package schema validates the three editable catalog documents. One
// declarative schema per logical name is shared by the soft check on read
// and the blocking check on write, so the two can never drift.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"backend/models"
)

// Issue is one validation finding, addressed by a JSON path like
// "products[3].options[0].price.eur".
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrUnknownName is returned for logical names without a schema.
var ErrUnknownName = errors.New("unknown document name")

// rule checks one decoded JSON value and appends findings to out.
type rule func(path string, v any, out *[]Issue)

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}

type field struct {
	name     string
	rule     rule
	optional bool
}

func req(name string, r rule) field {
	return field{name: name, rule: r}
}

func opt(name string, r rule) field {
	return field{name: name, rule: r, optional: true}
}

func object(fields ...field) rule {
	return func(path string, v any, out *[]Issue) {
		m, ok := v.(map[string]any)
		if !ok {
			*out = append(*out, Issue{Path: path, Message: "must be an object"})
			return
		}
		for _, f := range fields {
			fv, present := m[f.name]
			if !present {
				if !f.optional {
					*out = append(*out, Issue{Path: joinPath(path, f.name), Message: "required"})
				}
				continue
			}
			f.rule(joinPath(path, f.name), fv, out)
		}
	}
}

func array(elem rule) rule {
	return func(path string, v any, out *[]Issue) {
		list, ok := v.([]any)
		if !ok {
			*out = append(*out, Issue{Path: path, Message: "must be an array"})
			return
		}
		for i, e := range list {
			elem(fmt.Sprintf("%s[%d]", path, i), e, out)
		}
	}
}

// record validates an object with arbitrary keys.
func record(value rule) rule {
	return func(path string, v any, out *[]Issue) {
		m, ok := v.(map[string]any)
		if !ok {
			*out = append(*out, Issue{Path: path, Message: "must be an object"})
			return
		}
		for k, e := range m {
			value(joinPath(path, k), e, out)
		}
	}
}

func minString(min int) rule {
	return func(path string, v any, out *[]Issue) {
		s, ok := v.(string)
		if !ok {
			*out = append(*out, Issue{Path: path, Message: "must be a string"})
			return
		}
		if len(s) < min {
			*out = append(*out, Issue{Path: path, Message: fmt.Sprintf("must be at least %d characters", min)})
		}
	}
}

var anyString = minString(0)
var nonEmptyString = minString(1)

func literal(want string) rule {
	return func(path string, v any, out *[]Issue) {
		if s, ok := v.(string); !ok || s != want {
			*out = append(*out, Issue{Path: path, Message: fmt.Sprintf("must be %q", want)})
		}
	}
}

func nonNegNumber(path string, v any, out *[]Issue) {
	n, ok := v.(float64)
	if !ok {
		*out = append(*out, Issue{Path: path, Message: "must be a number"})
		return
	}
	if n < 0 {
		*out = append(*out, Issue{Path: path, Message: "must not be negative"})
	}
}

func nonNegInt(path string, v any, out *[]Issue) {
	n, ok := v.(float64)
	if !ok || n != math.Trunc(n) {
		*out = append(*out, Issue{Path: path, Message: "must be an integer"})
		return
	}
	if n < 0 {
		*out = append(*out, Issue{Path: path, Message: "must not be negative"})
	}
}

// money accepts {"type":"value","eur":>=0} or {"type":"on_request"}.
func money(path string, v any, out *[]Issue) {
	m, ok := v.(map[string]any)
	if !ok {
		*out = append(*out, Issue{Path: path, Message: "must be an object"})
		return
	}
	switch m["type"] {
	case models.MoneyValue:
		eur, present := m["eur"]
		if !present {
			*out = append(*out, Issue{Path: joinPath(path, "eur"), Message: "required"})
			return
		}
		nonNegNumber(joinPath(path, "eur"), eur, out)
	case models.MoneyOnRequest:
	default:
		*out = append(*out, Issue{Path: joinPath(path, "type"), Message: `must be "value" or "on_request"`})
	}
}

var optionSchema = object(
	req("id", nonEmptyString),
	req("name", nonEmptyString),
	req("price", money),
)

var productSchema = object(
	req("id", nonEmptyString),
	req("typ", nonEmptyString),
	req("name", nonEmptyString),
	req("group", nonEmptyString),
	req("category", nonEmptyString),
	req("basePrice", money),
	req("options", array(optionSchema)),
	opt("sku", anyString),
	opt("short", anyString),
	opt("specs", record(anyString)),
	opt("tags", array(anyString)),
	opt("images", array(anyString)),
)

var priceListSchema = object(
	req("currency", literal("EUR")),
	req("updated", minString(4)),
	req("products", array(productSchema)),
)

var laborCostSchema = object(
	req("id", nonEmptyString),
	req("title", nonEmptyString),
	req("category", nonEmptyString),
	opt("group", anyString),
	opt("machine", anyString),
	req("avgDays", nonNegInt),
	req("dayRateEur", nonNegNumber),
)

var laborSchema = object(
	req("currency", literal("EUR")),
	req("updated", minString(4)),
	req("items", array(laborCostSchema)),
)

var groupInfoEntrySchema = object(
	req("title", nonEmptyString),
	req("sections", array(object(
		req("title", nonEmptyString),
		req("bullets", array(anyString)),
	))),
)

var groupInfoSchema = object(
	req("categories", record(object(
		req("groups", record(groupInfoEntrySchema)),
	))),
)

var documentSchemas = map[string]rule{
	"pricelist": priceListSchema,
	"groupinfo": groupInfoSchema,
	"labor":     laborSchema,
}

// Validate checks raw JSON against the schema for the logical name and
// returns every finding at once. A non-nil error means the input could
// not be checked at all (bad JSON or unknown name), not that it is
// schema-invalid.
func Validate(name string, raw []byte) ([]Issue, error) {
	sc, ok := documentSchemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	var issues []Issue
	sc("", doc, &issues)
	switch name {
	case "pricelist":
		checkUniquePricelistIDs(doc, &issues)
	case "labor":
		checkUniqueLaborIDs(doc, &issues)
	}
	return issues, nil
}

// checkUniquePricelistIDs enforces globally unique product ids and
// per-product unique option ids.
func checkUniquePricelistIDs(doc any, out *[]Issue) {
	m, ok := doc.(map[string]any)
	if !ok {
		return
	}
	products, ok := m["products"].([]any)
	if !ok {
		return
	}
	seen := map[string]bool{}
	for i, pv := range products {
		p, ok := pv.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := p["id"].(string); ok && id != "" {
			if seen[id] {
				*out = append(*out, Issue{Path: fmt.Sprintf("products[%d].id", i), Message: "duplicate id"})
			}
			seen[id] = true
		}
		opts, _ := p["options"].([]any)
		seenOpt := map[string]bool{}
		for j, ov := range opts {
			o, ok := ov.(map[string]any)
			if !ok {
				continue
			}
			if oid, ok := o["id"].(string); ok && oid != "" {
				if seenOpt[oid] {
					*out = append(*out, Issue{Path: fmt.Sprintf("products[%d].options[%d].id", i, j), Message: "duplicate id"})
				}
				seenOpt[oid] = true
			}
		}
	}
}

func checkUniqueLaborIDs(doc any, out *[]Issue) {
	m, ok := doc.(map[string]any)
	if !ok {
		return
	}
	items, ok := m["items"].([]any)
	if !ok {
		return
	}
	seen := map[string]bool{}
	for i, iv := range items {
		item, ok := iv.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := item["id"].(string); ok && id != "" {
			if seen[id] {
				*out = append(*out, Issue{Path: fmt.Sprintf("items[%d].id", i), Message: "duplicate id"})
			}
			seen[id] = true
		}
	}
}

// Summarize renders issues as one log-friendly line.
func Summarize(issues []Issue) string {
	parts := make([]string, len(issues))
	for i, is := range issues {
		parts[i] = is.Path + ": " + is.Message
	}
	return strings.Join(parts, "; ")
}
