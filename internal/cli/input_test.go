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
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := GetTextWithDefault(rdr("\n"), "Title", "Standup", &out)
	require.NoError(t, err)
	assert.Equal(t, "Standup", got)
	assert.Contains(t, out.String(), "Title [Standup]")

	got, err = GetTextWithDefault(rdr("Retro\n"), "Title", "Standup", &out)
	require.NoError(t, err)
	assert.Equal(t, "Retro", got)
}

func TestGetChoice(t *testing.T) {
	options := []string{"Online", "In-Person"}

	tests := []struct {
		name    string
		input   string
		current string
		want    string
	}{
		{name: "by number", input: "2\n", want: "In-Person"},
		{name: "by text, case-insensitive", input: "online\n", want: "Online"},
		{name: "empty keeps current", input: "\n", current: "In-Person", want: "In-Person"},
		{name: "retries until valid", input: "7\nnope\n1\n", want: "Online"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetChoice(rdr(tc.input), "Event type", options, tc.current, &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "  1) Online\n  2) In-Person\n")
		})
	}
}

func TestGetChoice_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetChoice(rdr("\n"), "Category", []string{"a"}, "", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword("Enter password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword("Enter password", &out)
	assert.Error(t, err)
}
