package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/blslogistica/cargoflow/internal/models"
)

// TestFechaHora_acceptedFormats verifies the tolerant parse: RFC 3339, ISO
// without zone, datetime-local, and bare dates all decode; empty string and
// null decode to the zero value.
func TestFechaHora_acceptedFormats(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{`"2025-06-01T14:30:00Z"`, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)},
		{`"2025-06-01T14:30:00"`, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)},
		{`"2025-06-01T14:30"`, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)},
		{`"2025-06-01"`, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		var f models.FechaHora
		require.NoError(t, json.Unmarshal([]byte(tc.in), &f), tc.in)
		require.True(t, tc.want.Equal(f.Time), tc.in)
	}

	for _, in := range []string{`""`, `null`} {
		var f models.FechaHora
		require.NoError(t, json.Unmarshal([]byte(in), &f), in)
		require.True(t, f.IsZero(), in)
	}

	var f models.FechaHora
	require.Error(t, json.Unmarshal([]byte(`"mañana"`), &f))
}

// TestFechaHora_marshal verifies RFC 3339 output and null for the zero value.
func TestFechaHora_marshal(t *testing.T) {
	f := models.FechaHora{Time: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)}
	out, err := json.Marshal(f)
	require.NoError(t, err)
	require.Equal(t, `"2025-06-01T14:30:00Z"`, string(out))

	out, err = json.Marshal(models.FechaHora{})
	require.NoError(t, err)
	require.Equal(t, `null`, string(out))
}

// TestFecha_roundTrip verifies the date-only wire format.
func TestFecha_roundTrip(t *testing.T) {
	var f models.Fecha
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-01"`), &f))

	out, err := json.Marshal(f)
	require.NoError(t, err)
	require.Equal(t, `"2025-06-01"`, string(out))
}

// TestFecha_nullValue verifies that zero dates become SQL NULL, matching the
// nullable timestamp columns they map to.
func TestFecha_nullValue(t *testing.T) {
	v, err := models.Fecha{}.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = models.FechaHora{}.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	f := models.NewFecha(time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC))
	v, err = f.Value()
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), v)
}
