package errcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	for _, code := range Known() {
		require.NotEmpty(t, Message(code), "code %d", code)
		require.NotContains(t, Message(code), "unknown error", "code %d", code)
	}

	require.Equal(t, "unknown error, code=1234 (the player's privacy settings may not allow lookups)", Message(1234))
}

func TestCodeOf(t *testing.T) {
	err := fmt.Errorf("lookup: %w", Parse(EmptyResult, "kill_summary", nil))

	code, ok := CodeOf(err)
	require.True(t, ok)
	require.Equal(t, EmptyResult, code)
	require.Equal(t, KindStructuralParse, KindOf(err))

	_, ok = CodeOf(errors.New("plain"))
	require.False(t, ok)
	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestFromCode(t *testing.T) {
	testCases := []struct {
		code     Code
		expected Kind
	}{
		{code: NotFound, expected: KindTransport},
		{code: Unreachable, expected: KindTransport},
		{code: Undecodable, expected: KindUnknown},
		{code: TokenInvalid, expected: KindUpstreamData},
		{code: SessionExpired, expected: KindUpstreamData},
	}

	for _, test := range testCases {
		err := FromCode(test.code)
		require.Equal(t, test.code, err.Code)
		require.Equal(t, test.expected, err.Kind, "code %d", test.code)
	}
}

func TestErrorString(t *testing.T) {
	cause := errors.New("index out of range")
	err := Parse(EmptyResult, "survivor.tank_kill", cause)

	require.Equal(t, "structural_parse error 401 at survivor.tank_kill: index out of range", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestDescribe(t *testing.T) {
	require.Equal(t, Message(ServerBroken), Describe(Parse(ServerBroken, "container", nil)))
	require.Equal(t, "unknown error: boom", Describe(errors.New("boom")))
}
