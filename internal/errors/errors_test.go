package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := Validation()

	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, MsgValidation, UserMessage(err))
	assert.Nil(t, err.Unwrap())
}

func TestAPIErrorUsesServerMessage(t *testing.T) {
	assert.Equal(t, "All API sources failed.", API("All API sources failed.").Message)
	assert.Equal(t, MsgAPIFallback, API("").Message)
	assert.Equal(t, KindAPI, KindOf(API("x")))
}

func TestTransportErrorHidesCause(t *testing.T) {
	cause := stderrors.New("dial tcp 127.0.0.1:1: connect: connection refused")
	err := Transport(cause)

	assert.Equal(t, MsgTransport, UserMessage(err))
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused", "cause stays available for logs")
}

func TestKindOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", Transport(stderrors.New("eof")))

	require.Equal(t, KindTransport, KindOf(wrapped))
	assert.Equal(t, MsgTransport, UserMessage(wrapped))
}

func TestUnclassifiedErrors(t *testing.T) {
	err := stderrors.New("raw failure")

	assert.Equal(t, KindUnknown, KindOf(err))
	assert.Equal(t, MsgTransport, UserMessage(err))
	assert.Equal(t, "unknown", KindOf(nil).String())
}
