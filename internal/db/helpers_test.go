package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/types"
)

func TestMarshalNullable(t *testing.T) {
	raw, err := marshalNullable[types.Coordinates](nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = marshalNullable(&types.Coordinates{Lat: 1.5, Lon: -2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":1.5,"lon":-2}`, string(raw))
}

func TestUnmarshalNullable(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		expected *types.Coordinates
	}{
		{"null column", nil, nil},
		{"invalid json", []byte(`{not json`), nil},
		{"valid", []byte(`{"lat":28.6,"lon":77.2}`), &types.Coordinates{Lat: 28.6, Lon: 77.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unmarshalNullable[types.Coordinates](tt.raw))
		})
	}
}

func TestNonNil(t *testing.T) {
	assert.Equal(t, []string{}, nonNil(nil))
	assert.Equal(t, []string{"Go"}, nonNil([]string{"Go"}))
}

func TestSchema_CoversEveryTable(t *testing.T) {
	joined := ""
	for _, stmt := range schema {
		joined += stmt
	}
	for _, table := range []string{"candidates", "postings", "applications", "saved_postings"} {
		assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS "+table)
	}
}
