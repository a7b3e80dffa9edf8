package sfcrawl_test

import (
	"errors"
	"testing"

	"github.com/jkoenig72/sfcrawl"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sfcrawl.Errorf(sfcrawl.ENOTFOUND, "page %q not found", "https://example.com/a")

	assert.Equal(t, sfcrawl.ENOTFOUND, sfcrawl.ErrorCode(err))
	assert.Equal(t, "page \"https://example.com/a\" not found", sfcrawl.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sfcrawl.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sfcrawl.EINTERNAL, sfcrawl.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sfcrawl.ErrorMessage(nil))
}

func TestIsTransient(t *testing.T) {
	t.Parallel()

	assert.True(t, sfcrawl.IsTransient(sfcrawl.Errorf(sfcrawl.EUNAVAILABLE, "timeout")))
	assert.False(t, sfcrawl.IsTransient(sfcrawl.Errorf(sfcrawl.ENOTFOUND, "gone")))
	assert.False(t, sfcrawl.IsTransient(nil))
}
