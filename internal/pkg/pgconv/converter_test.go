//go:build unit

package pgconv_test

import (
	"testing"

	"salones-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericConversion(t *testing.T) {
	t.Run("round trip keeps exact value", func(t *testing.T) {
		for _, raw := range []string{"0", "0.01", "50000", "12345.67", "99999999.99", "-3.5"} {
			d := decimal.RequireFromString(raw)

			back, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err, raw)
			assert.True(t, back.Equal(d), "want %s, got %s", d, back)
		}
	})

	t.Run("invalid numeric is rejected", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Valid: false})
		require.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)

		_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		require.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)

		_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true})
		require.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})
}

func TestStringPtrConversion(t *testing.T) {
	s := "hola"
	assert.Equal(t, pgtype.Text{String: "hola", Valid: true}, pgconv.StringPtrToPgtype(&s))
	assert.Equal(t, pgtype.Text{Valid: false}, pgconv.StringPtrToPgtype(nil))

	got := pgconv.StringPtrFromPgtype(pgtype.Text{String: "hola", Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "hola", *got)
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{Valid: false}))
}
