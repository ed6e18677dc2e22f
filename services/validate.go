package services

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// missingFields returns the required field names that are absent, nil, or
// an empty string in the payload. A numeric zero counts as present.
func missingFields(payload map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		v, ok := payload[field]
		if !ok || v == nil {
			missing = append(missing, field)
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func fieldNames(payload map[string]any) []string {
	names := make([]string, 0, len(payload))
	for k := range payload {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func stringField(payload map[string]any, field string) string {
	s, _ := payload[field].(string)
	return s
}

// coerceDecimal accepts the numeric shapes a JSON payload can carry,
// including string-typed numerics.
func coerceDecimal(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, nil
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%q is not a number", t)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%q is not a number", t.String())
		}
		return d, nil
	}
	return decimal.Zero, fmt.Errorf("%v is not a number", v)
}

// coerceInt accepts integers, integral floats, and integer strings.
func coerceInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("%v is not an integer", t)
		}
		return int(t), nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", t)
		}
		return n, nil
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", t.String())
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%v is not an integer", v)
}
