package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCode(t *testing.T) {
	base := ConfigInvalid("WATEX_WORKERS must be positive")
	wrapped := Wrap(base, "failed to load configuration")

	assert.Equal(t, CodeConfigInvalid, GetCode(wrapped))
	assert.Equal(t, "failed to load configuration: WATEX_WORKERS must be positive", wrapped.Error())
	assert.True(t, IsAppError(wrapped))
}

func TestWrap_PlainError(t *testing.T) {
	wrapped := Wrapf(os.ErrNotExist, "reading %s", "erp.xlsx")
	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, os.ErrNotExist))

	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, WithCode(CodeInvalidInput, nil))
}

func TestFileError(t *testing.T) {
	err := FileError("data/erp.csv", os.ErrPermission)
	assert.Equal(t, CodeFileError, GetCode(err))
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "data/erp.csv")
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeInvalidInput, stderrors.New("bad column"))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
	assert.Equal(t, "resistivity not found", NotFound("resistivity").Error())
}
