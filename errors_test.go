package textbreak

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	err := Error(EINVALID, "font size %d out of range", -3)
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "font size -3 out of range", UserMessage(err))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
}

func TestWrappedErrors(t *testing.T) {
	base := errors.New("file not readable")
	err := WrapError(base, EMISSING, "cannot load font %q", "x.ttf")
	assert.True(t, errors.Is(err, base))
	outer := fmt.Errorf("setup: %w", err)
	assert.Equal(t, EMISSING, Code(outer))
	assert.Equal(t, `cannot load font "x.ttf"`, UserMessage(outer))
	assert.Equal(t, "invalid", UserMessage(ErrorWithCode(nil, EINVALID)))
}
