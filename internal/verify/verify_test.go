package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	for _, engine := range Engines() {
		t.Run(string(engine), func(t *testing.T) {
			report, err := Verify(engine, "[bc]at", []string{"cat", "bat", "hat"})
			require.NoError(t, err)
			assert.Equal(t, Report{"cat": true, "bat": true, "hat": false}, report)
			assert.False(t, report.OK())
			assert.Equal(t, []string{"hat"}, report.Failed())
			assert.Equal(t, []string{"bat", "cat", "hat"}, report.Words())
		})
	}
}

func TestVerifyAnchorsTopLevelAlternation(t *testing.T) {
	for _, engine := range Engines() {
		report, err := Verify(engine, "ab|cd", []string{"ab", "cd", "abd", "xcd"})
		require.NoError(t, err)
		assert.Equal(t, Report{"ab": true, "cd": true, "abd": false, "xcd": false}, report, engine)
	}
}

func TestVerifyEscapes(t *testing.T) {
	for _, engine := range Engines() {
		report, err := Verify(engine, `a[\+\.]b|\#\~\&`, []string{"a+b", "a.b", "#~&", "axb"})
		require.NoError(t, err)
		assert.Equal(t, Report{"a+b": true, "a.b": true, "#~&": true, "axb": false}, report, engine)
	}
}

func TestVerifyEmpty(t *testing.T) {
	report, err := Verify(EngineRE2, "", nil)
	require.NoError(t, err)
	assert.NotNil(t, report)
	assert.Empty(t, report)
	assert.True(t, report.OK())

	report, err = Verify(EngineRE2, "", []string{""})
	require.NoError(t, err)
	assert.Equal(t, Report{"": true}, report)
}

func TestVerifyInvalidPattern(t *testing.T) {
	_, err := Verify(EngineRE2, "(", []string{"a"})
	assert.Error(t, err)
}

func TestParseEngine(t *testing.T) {
	e, err := ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, EngineRE2, e)

	e, err = ParseEngine("ecmascript")
	require.NoError(t, err)
	assert.Equal(t, EngineECMAScript, e)

	_, err = ParseEngine("pcre")
	assert.True(t, errors.Is(err, ErrUnknownEngine))

	_, err = Compile("pcre", "a")
	assert.True(t, errors.Is(err, ErrUnknownEngine))
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, "^(?:a|b)$", Anchor("a|b"))
	assert.Equal(t, "^(?:)$", Anchor(""))
}
