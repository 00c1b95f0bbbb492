package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-sealed-table/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FormatValue renders v as the canonical document text for tag:
//   - Boolean:  "true" / "false"
//   - Integer:  base-10
//   - Decimal:  decimal.Decimal.String (no exponent, no locale)
//   - Guid:     lowercase 8-4-4-4-12
//   - DateTime: RFC 3339 with nanoseconds
//   - String:   as is
//
// Besides the canonical Go type of each tag, the usual database/sql scan
// results are accepted (any integer width, float64 for Decimal, []byte for
// String and Guid).
func FormatValue(tag models.TypeTag, v any) (string, error) {
	switch tag {
	case models.Boolean:
		if b, ok := v.(bool); ok {
			return strconv.FormatBool(b), nil
		}
	case models.Integer:
		if n, ok := asInt64(v); ok {
			return strconv.FormatInt(n, 10), nil
		}
	case models.Decimal:
		if d, ok := asDecimal(v); ok {
			return formatDecimal(d), nil
		}
	case models.Guid:
		switch g := v.(type) {
		case uuid.UUID:
			return g.String(), nil
		case [16]byte:
			return uuid.UUID(g).String(), nil
		case string, []byte:
			raw := toString(g)
			if !isCanonicalGuid(raw) {
				return "", errGuidLayout
			}
			return strings.ToLower(raw), nil
		}
	case models.DateTime:
		if t, ok := v.(time.Time); ok {
			return t.Format(time.RFC3339Nano), nil
		}
	case models.String:
		switch s := v.(type) {
		case string:
			return checkXMLText(s)
		case []byte:
			return checkXMLText(string(s))
		}
	default:
		return "", fmt.Errorf("%w: %d", errUnknownTag, int(tag))
	}

	return "", fmt.Errorf("%w: %T", errUnsupportedGoType, v)
}

// ParseValue casts raw document text into the Go value for tag.
// Numeric parsing is locale-invariant: '.' is the only decimal separator and
// no grouping characters are accepted.
func ParseValue(tag models.TypeTag, raw string) (any, error) {
	switch tag {
	case models.Boolean:
		switch {
		case strings.EqualFold(raw, literalTrue), raw == "1":
			return true, nil
		case strings.EqualFold(raw, literalFalse), raw == "0":
			return false, nil
		}
		return nil, errBooleanLiteral
	case models.Integer:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case models.Decimal:
		if !decimalPattern.MatchString(raw) && !isInteger(raw) {
			return nil, errDecimalGrammar
		}
		return decimal.NewFromString(raw)
	case models.Guid:
		if !isCanonicalGuid(raw) {
			return nil, errGuidLayout
		}
		return uuid.Parse(raw)
	case models.DateTime:
		return parseDateTime(raw)
	case models.String:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %d", errUnknownTag, int(tag))
	}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// formatDecimal keeps the scale of d, so 100.50 stays 100.50.
func formatDecimal(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

func asDecimal(v any) (decimal.Decimal, bool) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, true
	case float64:
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(d), true
	case float32:
		if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat32(d), true
	case string, []byte:
		parsed, err := decimal.NewFromString(toString(d))
		return parsed, err == nil
	}
	if n, ok := asInt64(v); ok {
		return decimal.NewFromInt(n), true
	}
	return decimal.Decimal{}, false
}

func toString(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v.(string)
}

// checkXMLText rejects text that cannot be carried by an XML 1.0 document.
// encoding/xml would silently replace such characters with U+FFFD.
func checkXMLText(s string) (string, error) {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return "", errInvalidXMLChar
			}
		}
		if !isXMLChar(r) {
			return "", errInvalidXMLChar
		}
	}
	return s, nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
