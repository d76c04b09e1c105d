package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		Company Optional[string] `json:"company"`
	}

	t.Run("absent field", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Company.Present)
		assert.False(t, p.Company.Set())
		assert.Nil(t, p.Company.Ptr())
	})

	t.Run("explicit null", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"company": null}`), &p))
		assert.True(t, p.Company.Present)
		assert.True(t, p.Company.Null)
		assert.False(t, p.Company.Set())
		assert.Nil(t, p.Company.Ptr())
	})

	t.Run("value", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"company": "Acme"}`), &p))
		assert.True(t, p.Company.Set())
		if assert.NotNil(t, p.Company.Ptr()) {
			assert.Equal(t, "Acme", *p.Company.Ptr())
		}
	})
}
