package generic_test

import (
	"testing"

	"crazygenerics/internal/core/domain/model/generic"
	"crazygenerics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimited(t *testing.T) {
	t.Run("should expose actual, min and max", func(t *testing.T) {
		l := generic.NewLimited(5, 1, 10)

		assert.Equal(t, 5, l.Actual())
		assert.Equal(t, 1, l.Min())
		assert.Equal(t, 10, l.Max())
	})

	t.Run("should not check bounds on construction", func(t *testing.T) {
		l := generic.NewLimited(2.5, 3.0, 4.0)

		assert.InDelta(t, 2.5, l.Actual(), 0)
		assert.False(t, l.Contains())
	})

	t.Run("should accept named numeric types", func(t *testing.T) {
		type celsius int16
		l := generic.NewLimited[celsius](20, -40, 60)

		assert.True(t, l.Contains())
	})
}

func TestLimited_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		limited generic.Limited[int]
		wantErr bool
	}{
		{name: "inside", limited: generic.NewLimited(5, 1, 10)},
		{name: "on lower bound", limited: generic.NewLimited(1, 1, 10)},
		{name: "on upper bound", limited: generic.NewLimited(10, 1, 10)},
		{name: "below", limited: generic.NewLimited(0, 1, 10), wantErr: true},
		{name: "above", limited: generic.NewLimited(11, 1, 10), wantErr: true},
		{name: "inverted bounds", limited: generic.NewLimited(5, 10, 1), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.limited.Validate("value")
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			var rangeErr *errs.ValueIsOutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, "value", rangeErr.ParamName)
			assert.Equal(t, tc.limited.Actual(), rangeErr.Value)
		})
	}
}
