package models

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/NoSuchObjectException/4610-final-project/storage"
)

// Tolerant field readers. Storage records may be partially populated or
// carry driver-specific numeric types; a missing or mistyped field reads
// as the zero value so the read path never fails on old records.

func itemString(item storage.Item, field string) string {
	switch v := item[field].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return ""
}

func itemInt(item storage.Item, field string) int {
	switch v := item[field].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func itemDecimal(item storage.Item, field string) decimal.Decimal {
	switch v := item[field].(type) {
	case decimal.Decimal:
		return v
	case string:
		d, err := decimal.NewFromString(v)
		if err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Zero
}
