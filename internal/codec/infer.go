package codec

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-sealed-table/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Boolean literals recognised by inference. Reconstruction of a declared
// Boolean column also accepts "1" and "0"; inference does not, so that
// numeric columns starting with 0 or 1 stay Integer.
const (
	literalTrue  = "true"
	literalFalse = "false"
)

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+)$`)

// dateTimeLayouts is the fixed set of accepted DateTime text forms, tried
// in order. Layouts without a zone yield UTC times.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// Infer classifies sample into the first matching tag of
// [models.InferenceOrder]: Boolean, Integer, Decimal, Guid, DateTime and
// finally String, which always matches. The empty string is String.
func Infer(sample string) models.TypeTag {
	if sample == "" {
		return models.String
	}

	switch {
	case isBooleanLiteral(sample):
		return models.Boolean
	case isInteger(sample):
		return models.Integer
	case isDecimal(sample):
		return models.Decimal
	case isCanonicalGuid(sample):
		return models.Guid
	case isDateTime(sample):
		return models.DateTime
	default:
		return models.String
	}
}

func isBooleanLiteral(s string) bool {
	return strings.EqualFold(s, literalTrue) || strings.EqualFold(s, literalFalse)
}

func isInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func isDecimal(s string) bool {
	if !decimalPattern.MatchString(s) {
		return false
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}

// isCanonicalGuid accepts only the 36-character 8-4-4-4-12 hex layout.
// uuid.Parse alone would also take braces, urn: prefixes and bare hex.
func isCanonicalGuid(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !isHex(c) {
				return false
			}
		}
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isDateTime(s string) bool {
	_, err := parseDateTime(s)
	return err == nil
}

func parseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errDateTimeLayout
}
