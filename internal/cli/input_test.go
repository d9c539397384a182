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

func stubTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	origTTY, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() {
		isTerminal = origTTY
		readPassword = origRead
	})
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  jane@example.com \n"), "Email", &out)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got)
	assert.Equal(t, "Email\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_PipedKeepsSpaces(t *testing.T) {
	stubTerminal(t, false, nil, nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr(" secret1 \r\n"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, " secret1 ", string(pw))
	assert.Equal(t, "Password: ", out.String())
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("secret1"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr(""), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "secret1", string(pw))
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Password", &out)
	require.EqualError(t, err, "boom")
}

func TestReadLine_CRLF(t *testing.T) {
	r := rdr("a\r\nb\n")
	l, err := readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "a", l)
	l, err = readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "b", l)
}
