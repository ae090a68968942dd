package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	assert.Equal(t, KindValidation, Validation("bad input").Kind())
	assert.Equal(t, KindNotFound, NotFound("missing").Kind())
	assert.Equal(t, KindConflict, Conflict("illegal transition").Kind())
	assert.Equal(t, KindUpload, Upload("too big").Kind())
	assert.Equal(t, KindInternal, Internal(errors.New("boom")).Kind())
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad input", Validation("bad input").Error())
	assert.Equal(t, "boom", Internal(errors.New("boom")).Error())
	assert.Equal(t, "internal error", (&Error{}).Error())
}

func TestKindOf(t *testing.T) {
	t.Run("Taxonomy error", func(t *testing.T) {
		assert.Equal(t, KindConflict, KindOf(Conflict("nope")))
	})

	t.Run("Wrapped taxonomy error", func(t *testing.T) {
		wrapped := fmt.Errorf("placing order: %w", NotFound("order not found"))
		assert.Equal(t, KindNotFound, KindOf(wrapped))
	})

	t.Run("Plain error is internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("db down")))
	})
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause)
	assert.True(t, errors.Is(err, cause))
}
