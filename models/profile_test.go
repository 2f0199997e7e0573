package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Profile
		wantErr bool
	}{
		{name: "development", input: "development", want: Development},
		{name: "production", input: "production", want: Production},
		{name: "empty", input: "", wantErr: true},
		{name: "abbreviation", input: "dev", wantErr: true},
		{name: "wrong case", input: "Production", wantErr: true},
		{name: "surrounding spaces", input: " production ", wantErr: true},
		{name: "third variant", input: "staging", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEnvironmentProfile)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultProfile_IsDevelopment(t *testing.T) {
	assert.Equal(t, Development, DefaultProfile)
	assert.True(t, DefaultProfile.IsValid())
}

func TestProfile_IsValid(t *testing.T) {
	for _, p := range Profiles {
		assert.True(t, p.IsValid(), p)
	}
	assert.False(t, Profile("test").IsValid())
	assert.False(t, Profile("").IsValid())
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseOutputFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseOutputFormat("toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
