package httpserver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant/errs"
	"assistant/httpserver"
)

func TestCustomValidator(t *testing.T) {
	v := httpserver.NewValidator()

	t.Run("valid struct passes", func(t *testing.T) {
		req := httpserver.AddContactRequest{Name: "Jane", Phone: "1234567890"}

		assert.NoError(t, v.Validate(&req))
	})

	t.Run("failures map to an invalid application error", func(t *testing.T) {
		req := httpserver.AddContactRequest{Name: "Jane", Phone: "123"}

		err := v.Validate(&req)

		require.Error(t, err)
		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
		assert.Equal(t, "validation error: phone failed on phone", errs.ErrorMessage(err))
	})

	t.Run("blank name fails notblank", func(t *testing.T) {
		req := httpserver.AddContactRequest{Name: "   ", Phone: "1234567890"}

		err := v.Validate(&req)

		require.Error(t, err)
		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
	})

	t.Run("messages carry percent signs verbatim", func(t *testing.T) {
		// Field names come from JSON tags, so the message is arbitrary
		// text and must never be re-interpreted as a format string.
		req := struct {
			Discount string `json:"discount_%" validate:"required"`
		}{}

		err := v.Validate(&req)

		require.Error(t, err)
		assert.Equal(t, "validation error: discount_% failed on required", errs.ErrorMessage(err))
	})
}
