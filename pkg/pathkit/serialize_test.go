package pathkit

import (
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// A Path travels as a single string through every codec; the raw
// string, normalized or not, survives unchanged.
func TestSerializationRoundTrip(t *testing.T) {
	type doc struct {
		Source Path `json:"source" yaml:"source" toml:"source"`
	}

	original := doc{Source: New("foo/../bar")}

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(original)
		require.NoError(t, err)
		assert.JSONEq(t, `{"source":"foo/../bar"}`, string(data))

		var decoded doc
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original.Source, decoded.Source)
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(original)
		require.NoError(t, err)

		var decoded doc
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, original.Source, decoded.Source)
	})

	t.Run("toml", func(t *testing.T) {
		data, err := toml.Marshal(original)
		require.NoError(t, err)

		var decoded doc
		require.NoError(t, toml.Unmarshal(data, &decoded))
		assert.Equal(t, original.Source, decoded.Source)
	})
}
