package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	t.Run("kinds", func(t *testing.T) {
		validator, err := NewValidator(false)
		require.NoError(t, err)

		assert.Equal(t, []string{"edges", "elements", "entities", "types"}, validator.Kinds())
	})

	t.Run("dispatches by kind", func(t *testing.T) {
		validator, err := NewValidator(false)
		require.NoError(t, err)

		testCases := map[string]string{
			"elements": `Elements Schema is empty`,
			"types":    `Types Schema is empty`,
			"entities": ``,
			"edges":    ``,
		}

		for kind, expected := range testCases {
			notifications, err := validator.Validate(kind, "")
			require.NoError(t, err)
			assert.Equal(t, expected, notifications.ErrorMessage(), kind)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		validator, err := NewValidator(false)
		require.NoError(t, err)

		_, err = validator.Validate("graphs", "{}")
		assert.EqualError(t, err, `unknown document kind "graphs"`)
	})

	t.Run("without JSON schema matches the pure validators", func(t *testing.T) {
		validator, err := NewValidator(false)
		require.NoError(t, err)

		raw := `{"types": {"t": {}}}`
		assert.True(t, validator.ValidateTypes(raw).Notifications.IsEmpty())
	})
}

func TestValidatorJSONSchema(t *testing.T) {
	validator, err := NewValidator(true)
	require.NoError(t, err)

	t.Run("valid documents", func(t *testing.T) {
		elements := validator.ValidateElements(fmt.Sprintf(`{"entities": %s, "edges": %s}`, validEntities, validEdges))
		assert.True(t, elements.Notifications.IsEmpty(), elements.Notifications.ErrorMessage())
		assert.NotNil(t, elements.Entities)
		assert.NotNil(t, elements.Edges)

		types := validator.ValidateTypes(validTypes)
		assert.True(t, types.Notifications.IsEmpty(), types.Notifications.ErrorMessage())
		assert.NotNil(t, types.Types)
	})

	t.Run("types must declare a class", func(t *testing.T) {
		result := validator.ValidateTypes(`{"types": {"t": {"description": "no class"}}}`)
		assert.Contains(t, result.Notifications.ErrorMessage(), "class")
		assert.Nil(t, result.Types)
	})

	t.Run("directed must be true or false", func(t *testing.T) {
		result := validator.ValidateElements(`{"edges": {"E": {"description": "d", "source": "a", "destination": "b", "directed": "yes"}}}`)
		assert.False(t, result.Notifications.IsEmpty())
		assert.Nil(t, result.Edges)
	})

	t.Run("core notifications skip the JSON schema", func(t *testing.T) {
		result := validator.ValidateTypes(`{"types": {"t": {"class": 1}}}`)
		assert.Equal(t, `class in t type is a number, it needs to be a string`, result.Notifications.ErrorMessage())
	})

	t.Run("dispatch uses the JSON schema", func(t *testing.T) {
		notifications, err := validator.Validate("types", `{"types": {"t": {}}}`)
		require.NoError(t, err)
		assert.False(t, notifications.IsEmpty())
	})
}
