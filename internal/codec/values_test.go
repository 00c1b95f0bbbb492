package codec

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sealed-table/models"
)

func TestFormatValue(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	ts := time.Date(2024, 1, 15, 10, 30, 0, 123000000, time.UTC)

	tests := []struct {
		name    string
		tag     models.TypeTag
		value   any
		want    string
		wantErr error
	}{
		{name: "bool", tag: models.Boolean, value: true, want: "true"},
		{name: "int64", tag: models.Integer, value: int64(-42), want: "-42"},
		{name: "int32", tag: models.Integer, value: int32(7), want: "7"},
		{name: "uint64 in range", tag: models.Integer, value: uint64(10), want: "10"},
		{name: "uint64 overflow", tag: models.Integer, value: uint64(math.MaxUint64), wantErr: errUnsupportedGoType},
		{name: "decimal", tag: models.Decimal, value: decimal.RequireFromString("100.50"), want: "100.50"},
		{name: "decimal negative scale", tag: models.Decimal, value: decimal.RequireFromString("-0.0010"), want: "-0.0010"},
		{name: "decimal positive exponent", tag: models.Decimal, value: decimal.New(12, 2), want: "1200"},
		{name: "float64", tag: models.Decimal, value: 1.25, want: "1.25"},
		{name: "decimal from int", tag: models.Decimal, value: int64(3), want: "3"},
		{name: "NaN", tag: models.Decimal, value: math.NaN(), wantErr: errUnsupportedGoType},
		{name: "uuid", tag: models.Guid, value: id, want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "uuid text", tag: models.Guid, value: "550E8400-E29B-41D4-A716-446655440000", want: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "uuid text invalid", tag: models.Guid, value: "nope", wantErr: errGuidLayout},
		{name: "time", tag: models.DateTime, value: ts, want: "2024-01-15T10:30:00.123Z"},
		{name: "string", tag: models.String, value: "한국어", want: "한국어"},
		{name: "bytes", tag: models.String, value: []byte("raw"), want: "raw"},
		{name: "control char", tag: models.String, value: "a\x00b", wantErr: errInvalidXMLChar},
		{name: "wrong go type", tag: models.Boolean, value: "true", wantErr: errUnsupportedGoType},
		{name: "unknown tag", tag: models.TypeTag(99), value: 1, wantErr: errUnknownTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(tt.tag, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue(t *testing.T) {
	t.Run("boolean", func(t *testing.T) {
		for raw, want := range map[string]bool{"true": true, "TRUE": true, "1": true, "false": false, "False": false, "0": false} {
			got, err := ParseValue(models.Boolean, raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got, raw)
		}
		_, err := ParseValue(models.Boolean, "yes")
		require.ErrorIs(t, err, errBooleanLiteral)
	})

	t.Run("integer", func(t *testing.T) {
		got, err := ParseValue(models.Integer, "42")
		require.NoError(t, err)
		assert.Equal(t, int64(42), got)

		_, err = ParseValue(models.Integer, "4.2")
		require.Error(t, err)
	})

	t.Run("decimal", func(t *testing.T) {
		got, err := ParseValue(models.Decimal, "42.50")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("42.5").Equal(got.(decimal.Decimal)))

		got, err = ParseValue(models.Decimal, "42")
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(42).Equal(got.(decimal.Decimal)))

		for _, raw := range []string{"1,5", "1e5", "abc", ""} {
			_, err = ParseValue(models.Decimal, raw)
			require.ErrorIs(t, err, errDecimalGrammar, raw)
		}
	})

	t.Run("guid", func(t *testing.T) {
		got, err := ParseValue(models.Guid, "550E8400-E29B-41D4-A716-446655440000")
		require.NoError(t, err)
		assert.Equal(t, uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"), got)

		_, err = ParseValue(models.Guid, "urn:uuid:550e8400-e29b-41d4-a716-446655440000")
		require.ErrorIs(t, err, errGuidLayout)
	})

	t.Run("datetime", func(t *testing.T) {
		got, err := ParseValue(models.DateTime, "2024-01-15")
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Equal(got.(time.Time)))

		_, err = ParseValue(models.DateTime, "15.01.2024")
		require.ErrorIs(t, err, errDateTimeLayout)
	})

	t.Run("string", func(t *testing.T) {
		got, err := ParseValue(models.String, " 007 ")
		require.NoError(t, err)
		assert.Equal(t, " 007 ", got)
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := ParseValue(models.TypeTag(0), "x")
		require.ErrorIs(t, err, errUnknownTag)
	})
}
