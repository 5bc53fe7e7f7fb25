package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckParameterForInjection_CleanValue(t *testing.T) {
	result := CheckParameterForInjection("q", "carbon border adjustment")
	assert.Nil(t, result)
}

func TestCheckParameterForInjection_DetectsInjection(t *testing.T) {
	result := CheckParameterForInjection("q", "'; DROP TABLE policies--")

	require.NotNil(t, result)
	assert.True(t, result.IsSQLi)
	assert.Equal(t, "q", result.ParamName)
	assert.NotEmpty(t, result.Fingerprint)
}
