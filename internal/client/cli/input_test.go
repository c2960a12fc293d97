package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool, pw string, pwErr error) {
	t.Helper()
	oldTerm, oldRead := isTerminal, readPassword
	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return []byte(pw), pwErr }
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetRawLine_KeepsSpaces(t *testing.T) {
	var out bytes.Buffer
	got, err := GetRawLine(rdr("  padded  \r\n"), "reply> ", &out)
	require.NoError(t, err)
	assert.Equal(t, "  padded  ", got)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, "s3cret", nil)

	var out bytes.Buffer
	got, err := GetPassword(rdr(""), &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, "", errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, "unused", nil)

	var out bytes.Buffer
	got, err := GetPassword(rdr("x\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}
