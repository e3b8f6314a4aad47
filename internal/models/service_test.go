package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshalJSON(t *testing.T) {
	tests := []struct {
		testName      string
		data          string
		expectedPrice Price
		expectedErr   bool
	}{
		{testName: "Should accept integer", data: `{"price":1500}`, expectedPrice: 1500},
		{testName: "Should accept whole float", data: `{"price":1500.0}`, expectedPrice: 1500},
		{testName: "Should round fractional price", data: `{"price":799.5}`, expectedPrice: 800},
		{testName: "Should accept exponent notation", data: `{"price":1.2e3}`, expectedPrice: 1200},
		{testName: "Should leave null as zero", data: `{"price":null}`, expectedPrice: 0},
		{testName: "Should reject non-numeric string", data: `{"price":"дорого"}`, expectedErr: true},
		{testName: "Should reject out of range value", data: `{"price":1e30}`, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			var service Service
			err := json.Unmarshal([]byte(tt.data), &service)

			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPrice, service.Price)
		})
	}
}

func TestPriceMarshalsAsInteger(t *testing.T) {
	data, err := json.Marshal(Service{ID: 1, Title: "FRP", Price: 1200})

	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":1200`)
}
