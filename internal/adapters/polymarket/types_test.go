package polymarket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStrings(t *testing.T) {
	var s jsonStrings

	require.NoError(t, json.Unmarshal([]byte(`["a", "b"]`), &s))
	assert.Equal(t, jsonStrings{"a", "b"}, s)

	require.NoError(t, json.Unmarshal([]byte(`"[\"c\", \"d\"]"`), &s))
	assert.Equal(t, jsonStrings{"c", "d"}, s)

	require.NoError(t, json.Unmarshal([]byte(`""`), &s))
	assert.Nil(t, s)

	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestJSONFloats(t *testing.T) {
	var f jsonFloats

	require.NoError(t, json.Unmarshal([]byte(`[0.3, 0.7]`), &f))
	assert.Equal(t, jsonFloats{0.3, 0.7}, f)

	require.NoError(t, json.Unmarshal([]byte(`["0.3", "0.7"]`), &f))
	assert.Equal(t, jsonFloats{0.3, 0.7}, f)

	require.NoError(t, json.Unmarshal([]byte(`"[\"0.3\", \"0.7\"]"`), &f))
	assert.Equal(t, jsonFloats{0.3, 0.7}, f)

	require.NoError(t, json.Unmarshal([]byte(`""`), &f))
	assert.Nil(t, f)

	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &f))
}
