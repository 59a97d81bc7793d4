package nullable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimal accepts a JSON number, a numeric string, "" or null. The last two
// leave Value nil.
type Decimal struct {
	Value *decimal.Decimal
}

func (d *Decimal) UnmarshalJSON(b []byte) error {
	raw, empty := unquote(b)
	if empty {
		d.Value = nil
		return nil
	}

	v, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid decimal %q: %w", raw, err)
	}
	d.Value = &v
	return nil
}

// Int64 accepts a JSON number, a numeric string, "" or null. Valid is false for
// the last two.
type Int64 struct {
	Value int64
	Valid bool
}

func (i *Int64) UnmarshalJSON(b []byte) error {
	raw, empty := unquote(b)
	if empty {
		*i = Int64{}
		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	*i = Int64{Value: v, Valid: true}
	return nil
}

// Ptr returns nil when the value was absent.
func (i Int64) Ptr() *int64 {
	if !i.Valid {
		return nil
	}
	v := i.Value
	return &v
}

func unquote(b []byte) (string, bool) {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return "", true
	}
	raw = strings.TrimSpace(strings.Trim(raw, `"`))
	return raw, raw == ""
}
