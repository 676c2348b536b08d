package iojson

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, doc{Name: "a", Count: 1}))
	require.NoError(t, WriteLine(&buf, doc{Name: "b", Count: 2}))

	assert.Equal(t, "{\"name\":\"a\",\"count\":1}\n{\"name\":\"b\",\"count\":2}\n", buf.String())
}

func TestWriteLine_Unencodable(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteLine(&buf, math.Inf(1)))
	assert.Zero(t, buf.Len())
}

func TestWriteIndent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIndent(&buf, doc{Name: "a"}))
	assert.Contains(t, buf.String(), "\n  \"name\": \"a\"")
}

func TestMarshalError(t *testing.T) {
	assert.JSONEq(t, `{"message":"boom","data":{"field":"x"}}`, MarshalError("boom", map[string]any{"field": "x"}))

	out := MarshalError("bad", map[string]any{"v": math.NaN()})
	assert.Contains(t, out, "json_error")

	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, "boom", nil))
	assert.Contains(t, buf.String(), `"message":"boom"`)
}

func TestFileReader(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"file","count":3}`), 0o644))

		var fr FileReader[doc]
		fr.SetFile(path)

		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, doc{Name: "file", Count: 3}, got)
	})

	t.Run("stdin", func(t *testing.T) {
		fr := FileReader[doc]{Stdin: strings.NewReader(`{"name":"stdin"}`)}

		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, "stdin", got.Name)
	})

	t.Run("custom decode", func(t *testing.T) {
		fr := FileReader[doc]{
			Stdin:  strings.NewReader(`ignored`),
			Decode: func([]byte) (doc, error) { return doc{}, errors.New("rejected") },
		}

		_, err := fr.Read()
		assert.EqualError(t, err, "rejected")
	})

	t.Run("missing file", func(t *testing.T) {
		var fr FileReader[doc]
		fr.SetFile(filepath.Join(t.TempDir(), "absent.json"))

		_, err := fr.Read()
		assert.ErrorContains(t, err, "open file")
	})

	t.Run("invalid json", func(t *testing.T) {
		fr := FileReader[doc]{Stdin: strings.NewReader(`{`)}

		_, err := fr.Read()
		assert.ErrorContains(t, err, "decode JSON")
	})

	t.Run("flag", func(t *testing.T) {
		var fr FileReader[doc]
		f := fr.Flag()
		assert.Equal(t, "file", f.Name)
		assert.Equal(t, []string{"f"}, f.Aliases)
	})
}
