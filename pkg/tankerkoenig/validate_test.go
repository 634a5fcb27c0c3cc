package tankerkoenig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	value := 0.0
	assert.NoError(t, validateRequired(&value, "Latitude"), "the zero value is not absence")

	err := validateRequired[float64](nil, "Latitude")
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Latitude", validationErr.Field)
}

func TestValidateNonEmpty(t *testing.T) {
	assert.NoError(t, validateNonEmpty("id123", "ID"))
	assert.Error(t, validateNonEmpty("", "ID"))
}

func TestValidateNonEmptyCollection(t *testing.T) {
	assert.NoError(t, validateNonEmptyCollection([]string{"a"}, "IDs"))
	assert.Error(t, validateNonEmptyCollection([]string{}, "IDs"))
	assert.Error(t, validateNonEmptyCollection[string](nil, "IDs"))
}

func TestValidateMaxCount(t *testing.T) {
	assert.NoError(t, validateMaxCount([]string{"a", "b"}, 2, "IDs"))
	assert.Error(t, validateMaxCount([]string{"a", "b", "c"}, 2, "IDs"))

	assert.Panics(t, func() {
		_ = validateMaxCount([]string{}, -1, "IDs")
	}, "a negative bound is a programming error")
}

func TestValidateInRange(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		min     float64
		max     float64
		wantErr bool
	}{
		{name: "inside", value: 5, min: 1, max: 25, wantErr: false},
		{name: "lower bound inclusive", value: 1, min: 1, max: 25, wantErr: false},
		{name: "upper bound inclusive", value: 25, min: 1, max: 25, wantErr: false},
		{name: "below", value: 0.5, min: 1, max: 25, wantErr: true},
		{name: "above", value: 25.5, min: 1, max: 25, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInRange(tt.value, tt.min, tt.max, "Radius")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFloatString(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "1.234", wantErr: false},
		{value: "-1.234", wantErr: false},
		{value: ".5", wantErr: false},
		{value: "123", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "1.", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validateFloatString(tt.value, "Correction Value")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePostCode(t *testing.T) {
	assert.NoError(t, validatePostCode("12345"))
	assert.Error(t, validatePostCode("1234"))
	assert.Error(t, validatePostCode("123456"))
	assert.Error(t, validatePostCode("abcde"))
	assert.Error(t, validatePostCode(""))
}

func TestValidateLatLngPair(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "52.52,13.40", wantErr: false},
		{value: "52.52, 13.40", wantErr: false},
		{value: "52.52 , 13.40", wantErr: false},
		{value: "-52.52,-13.40", wantErr: false},
		{value: "52.52", wantErr: true},
		{value: "52,13", wantErr: true},
		{value: "abc,def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validateLatLngPair(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
