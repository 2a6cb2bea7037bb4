package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"codeberg.org/mutker/statusbar/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	f := errors.New()

	assert.Equal(t, "Invalid interval value", f.New(errors.ErrInvalidInterval).Error())
	assert.Equal(t, "custom", f.WithMessage(errors.ErrInvalidConfig, "custom").Error())
	assert.Equal(t, "Invalid log level: loud", f.WithData(errors.ErrInvalidLogLevel, "loud").Error())
	assert.Equal(t, "unknown_code", f.New(errors.ErrorCode("unknown_code")).Error())
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := errors.New().Wrap(errors.ErrInvalidConfig, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Invalid configuration: boom", err.Error())
	assert.Equal(t, errors.ErrInvalidConfig, err.Code())
}

func TestHasCode(t *testing.T) {
	f := errors.New()
	inner := f.New(errors.ErrInvalidLogLevel)
	outer := f.Wrap(errors.ErrInvalidConfig, inner)
	wrapped := fmt.Errorf("loading: %w", outer)

	assert.True(t, errors.HasCode(wrapped, errors.ErrInvalidConfig))
	assert.True(t, errors.HasCode(wrapped, errors.ErrInvalidLogLevel))
	assert.False(t, errors.HasCode(wrapped, errors.ErrReadConfig))
	assert.False(t, errors.HasCode(stderrors.New("plain"), errors.ErrInvalidConfig))
	assert.False(t, errors.HasCode(nil, errors.ErrInvalidConfig))
}

func TestRegisterMessages(t *testing.T) {
	code := errors.ErrorCode("test_registered_code")
	errors.RegisterMessages(map[errors.ErrorCode]string{code: "Registered"})
	errors.RegisterMessages(map[errors.ErrorCode]string{code: "Overwritten"})

	assert.Equal(t, "Registered", errors.GetErrorMessage(code))
}
