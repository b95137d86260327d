package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTest = &ErrorResponse{Code: ErrorCode("T-001"), Details: "label %q failed"}

func TestErrorResponseIsMatchesCode(t *testing.T) {
	err := errTest.WithDetails("alice")
	require.True(t, errors.Is(err, errTest))
	require.Equal(t, `label "alice" failed`, err.Details)

	other := &ErrorResponse{Code: ErrorCode("T-002")}
	require.False(t, errors.Is(err, other))
}

func TestErrorResponseWrapKeepsCause(t *testing.T) {
	cause := errors.New("insufficient value")
	err := fmt.Errorf("renewing: %w", (&ErrorResponse{Code: "T-003", Details: "upstream"}).Wrap(cause))

	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, &ErrorResponse{Code: "T-003"})

	var resp *ErrorResponse
	require.True(t, errors.As(err, &resp))
	require.Equal(t, "upstream: insufficient value", resp.Details)
}

func TestErrorResponseJSON(t *testing.T) {
	err := (&ErrorResponse{Code: "T-004", Details: "details"}).Wrap(errors.New("cause"))

	var decoded ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(err.Error()), &decoded))
	require.Equal(t, ErrorCode("T-004"), decoded.Code)
	require.Equal(t, "details: cause", decoded.Details)
}

func TestCreateErrorResponseFromError(t *testing.T) {
	require.Nil(t, CreateErrorResponseFromError(nil))

	resp := CreateErrorResponseFromError(errors.New("boom"))
	require.Equal(t, `{"code":"0","details":"boom"}`, resp.Error())

	require.Same(t, errTest, CreateErrorResponseFromError(errTest))
}
