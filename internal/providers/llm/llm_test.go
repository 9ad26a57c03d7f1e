package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEntitiesPlainJSON(t *testing.T) {
	e, err := decodeEntities(`{"country":"PK","city":"Lahore","skills":"Python && Django","current_role_title":"Backend Developer","page_size":10}`)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "PK", e.Country)
	assert.Equal(t, "Lahore", e.City)
	assert.Equal(t, "Python && Django", e.Skills)
	assert.Equal(t, 10, e.PageSize)
	assert.True(t, e.Complete())
}

func TestDecodeEntitiesCodeFenced(t *testing.T) {
	raw := "```json\n{\"country\":\"DE\",\"city\":\"Berlin\"}\n```"
	e, err := decodeEntities(raw)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "DE", e.Country)
	assert.False(t, e.Complete())
}

func TestDecodeEntitiesNullSentinel(t *testing.T) {
	for _, raw := range []string{"null", "Null", "NULL", "  null  ", ""} {
		e, err := decodeEntities(raw)
		require.NoError(t, err, "raw=%q", raw)
		assert.Nil(t, e, "raw=%q", raw)
	}
}

func TestDecodeEntitiesMalformed(t *testing.T) {
	_, err := decodeEntities(`{"country": "PK"`)
	assert.Error(t, err)
}
