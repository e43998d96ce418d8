package token

import (
	"testing"

	"github.com/aburd/mal/mal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStringStructural(t *testing.T) {
	for text, typ := range map[string]Type{
		"(": PAREN_L,
		")": PAREN_R,
		"[": BRACE_L,
		"]": BRACE_R,
	} {
		tok, err := FromString(text)
		require.NoError(t, err)
		assert.Equal(t, typ, tok.Type)
		assert.Equal(t, text, tok.Text)
		assert.Nil(t, tok.Val)
	}
}

func TestFromStringLiterals(t *testing.T) {
	tok, err := FromString("nil")
	require.NoError(t, err)
	assert.Equal(t, DATA, tok.Type)
	assert.Equal(t, mal.VNil, tok.Val.Type)

	tok, err = FromString("true")
	require.NoError(t, err)
	assert.Equal(t, mal.VBool, tok.Val.Type)
	assert.True(t, tok.Val.Bool)

	tok, err = FromString("false")
	require.NoError(t, err)
	assert.Equal(t, mal.VBool, tok.Val.Type)
	assert.False(t, tok.Val.Bool)
}

func TestFromStringKeyword(t *testing.T) {
	tok, err := FromString(":kw")
	require.NoError(t, err)
	assert.Equal(t, DATA, tok.Type)
	assert.Equal(t, mal.VKeyword, tok.Val.Type)
	assert.Equal(t, ":kw", tok.Val.Str)

	_, err = FromString("::bad")
	assert.Equal(t, mal.CondIllegalToken, mal.Condition(err))
}

func TestFromStringInt(t *testing.T) {
	tok, err := FromString("42")
	require.NoError(t, err)
	assert.Equal(t, mal.VInt, tok.Val.Type)
	assert.Equal(t, uint64(42), tok.Val.Num)

	// One past the maximum uint64 value.
	_, err = FromString("18446744073709551616")
	assert.Equal(t, mal.CondIntegerOverflow, mal.Condition(err))
}

func TestFromStringString(t *testing.T) {
	tok, err := FromString(`"hello"`)
	require.NoError(t, err)
	assert.Equal(t, mal.VString, tok.Val.Type)
	assert.Equal(t, `"hello"`, tok.Val.Str)

	_, err = FromString(`"unterminated`)
	assert.Equal(t, mal.CondIllegalString, mal.Condition(err))

	_, err = FromString(`"`)
	assert.Equal(t, mal.CondIllegalString, mal.Condition(err))
}

func TestFromStringSymbol(t *testing.T) {
	tok, err := FromString("+")
	require.NoError(t, err)
	assert.Equal(t, mal.VSymbol, tok.Val.Type)
	assert.Equal(t, "+", tok.Val.Str)

	_, err = FromString("1abc")
	assert.Equal(t, mal.CondIllegalSymbol, mal.Condition(err))

	_, err = FromString(`ab"cd`)
	assert.Equal(t, mal.CondIllegalSymbol, mal.Condition(err))
}
