package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "inteiro simples", raw: "999", want: 999},
		{name: "com espaços", raw: " 1500 ", want: 1500},
		{name: "fração arredonda", raw: "1200.6", want: 1201},
		{name: "vazio", raw: "", wantErr: true},
		{name: "não numérico", raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMinorUnits(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionalMinorUnits(t *testing.T) {
	got, err := ParseOptionalMinorUnits(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	raw := "250"
	got, err = ParseOptionalMinorUnits(&raw)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(250), *got)
}

func TestMinorToMajor(t *testing.T) {
	assert.Equal(t, 9.99, MinorToMajor(999))
	assert.Equal(t, 0.0, MinorToMajor(0))
	assert.Equal(t, 33.33, MinorToMajor(3333.3333))
}
