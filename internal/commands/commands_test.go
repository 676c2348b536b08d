package commands

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/reviewdeck/internal/core/config"
	"github.com/hay-kot/reviewdeck/internal/core/review"
	"github.com/hay-kot/reviewdeck/internal/data/stores"
)

func writePayload(t *testing.T, n int) string {
	t.Helper()

	page := review.Page{Count: n, Items: make([]review.Record, n)}
	for i := range page.Items {
		page.Items[i] = review.Record{
			Text:      fmt.Sprintf("Review number %d was a pleasant stay.", i),
			Created:   "1 May",
			FirstName: "Ann",
			LastName:  fmt.Sprintf("Lee%d", i),
			Rating:    i%5 + 1,
			AvatarURL: "https://example.com/a.png",
		}
		if i%2 == 0 {
			page.Items[i].PhotoURLs = []string{"https://example.com/p.jpg"}
		}
	}

	data, err := json.Marshal(page)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reviews.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func newFlags(t *testing.T, src config.SourceConfig) *Flags {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Source = src
	return &Flags{DataDir: cfg.DataDir, Config: &cfg}
}

func runCmd(t *testing.T, flags *Flags, args ...string) (string, error) {
	t.Helper()

	app := NewApp(flags)
	t.Cleanup(func() { _ = app.Close() })

	var buf bytes.Buffer
	root := &cli.Command{Name: "reviewdeck", Writer: &buf}
	root = NewLsCmd(flags, app).Register(root)
	root = NewImportCmd(flags, app).Register(root)

	err := root.Run(context.Background(), append([]string{"reviewdeck"}, args...))
	return buf.String(), err
}

func decodeRows(t *testing.T, out string) []rowInfo {
	t.Helper()
	var rows []rowInfo
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var r rowInfo
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		rows = append(rows, r)
	}
	return rows
}

func TestLsCmd_Table(t *testing.T) {
	flags := newFlags(t, config.SourceConfig{Kind: config.SourceFile, Path: writePayload(t, 3)})

	out, err := runCmd(t, flags, "ls")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5, "header, three reviews, count")
	assert.Contains(t, lines[0], "KIND")
	assert.Contains(t, lines[1], "Ann Lee0")
	assert.Contains(t, lines[4], "3 reviews")
}

func TestLsCmd_JSON(t *testing.T) {
	flags := newFlags(t, config.SourceConfig{Kind: config.SourceFile, Path: writePayload(t, 3)})

	out, err := runCmd(t, flags, "ls", "--json", "--width", "60")
	require.NoError(t, err)

	rows := decodeRows(t, out)
	require.Len(t, rows, 4)

	for i, r := range rows[:3] {
		assert.Equal(t, rowKindReview, r.Kind)
		assert.Equal(t, i, r.Index)
		assert.Positive(t, r.Height)
		assert.Equal(t, i%5+1, r.Rating)
	}
	assert.Equal(t, 1, rows[0].Photos)
	assert.Equal(t, 0, rows[1].Photos)

	assert.Equal(t, rowKindCount, rows[3].Kind)
	assert.Equal(t, "3 reviews", rows[3].Text)
}

func TestLsCmd_PhotosAddHeight(t *testing.T) {
	flags := newFlags(t, config.SourceConfig{Kind: config.SourceFile, Path: writePayload(t, 2)})

	out, err := runCmd(t, flags, "ls", "--json")
	require.NoError(t, err)

	rows := decodeRows(t, out)
	require.Len(t, rows, 3)
	assert.Greater(t, rows[0].Height, rows[1].Height, "row with a photo is taller")
}

func TestLsCmd_Pages(t *testing.T) {
	path := writePayload(t, 45)

	tests := []struct {
		name    string
		pages   string
		reviews int
	}{
		{name: "one page", pages: "1", reviews: 20},
		{name: "two pages", pages: "2", reviews: 40},
		{name: "stops at end", pages: "10", reviews: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newFlags(t, config.SourceConfig{Kind: config.SourceFile, Path: path})

			out, err := runCmd(t, flags, "ls", "--json", "--pages", tt.pages)
			require.NoError(t, err)

			rows := decodeRows(t, out)
			require.Len(t, rows, tt.reviews+1)
			assert.Equal(t, fmt.Sprintf("%d reviews", tt.reviews), rows[len(rows)-1].Text)
		})
	}
}

func TestLsCmd_SourceError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.json")
	flags := newFlags(t, config.SourceConfig{Kind: config.SourceFile, Path: missing})

	_, err := runCmd(t, flags, "ls")
	assert.ErrorContains(t, err, "load page")
}

func TestLsCmd_InvalidWidth(t *testing.T) {
	flags := newFlags(t, config.SourceConfig{Kind: config.SourceFile, Path: writePayload(t, 1)})

	_, err := runCmd(t, flags, "ls", "--width", "0")
	assert.ErrorContains(t, err, "--width")
}

func TestImportCmd(t *testing.T) {
	flags := newFlags(t, config.SourceConfig{Kind: config.SourceSQLite})
	path := writePayload(t, 5)

	_, err := runCmd(t, flags, "import", path)
	require.NoError(t, err)

	_, err = runCmd(t, flags, "import", "-f", path)
	require.NoError(t, err)

	out, err := runCmd(t, flags, "ls", "--json", "--pages", "5")
	require.NoError(t, err)
	rows := decodeRows(t, out)
	require.Len(t, rows, 11)
	assert.Equal(t, "Ann Lee0", rows[5].Author, "second import appended after the first")

	_, err = runCmd(t, flags, "import", "--replace", path)
	require.NoError(t, err)

	out, err = runCmd(t, flags, "ls", "--json", "--pages", "5")
	require.NoError(t, err)
	assert.Len(t, decodeRows(t, out), 6)
}

func TestImportCmd_InvalidPayload(t *testing.T) {
	flags := newFlags(t, config.SourceConfig{Kind: config.SourceSQLite})

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": [], "count": -1}`), 0o644))

	_, err := runCmd(t, flags, "import", path)
	require.ErrorIs(t, err, review.ErrInvalidPage)
}

func TestApp_Provider(t *testing.T) {
	tests := []struct {
		name string
		src  config.SourceConfig
		want any
	}{
		{name: "file", src: config.SourceConfig{Kind: config.SourceFile, Path: "x.json"}, want: &review.FileProvider{}},
		{name: "http", src: config.SourceConfig{Kind: config.SourceHTTP, URL: "http://localhost/reviews"}, want: &review.HTTPProvider{}},
		{name: "sqlite", src: config.SourceConfig{Kind: config.SourceSQLite}, want: &stores.ReviewStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(newFlags(t, tt.src))
			t.Cleanup(func() { _ = app.Close() })

			p, err := app.Provider()
			require.NoError(t, err)
			assert.IsType(t, tt.want, p)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		app := NewApp(newFlags(t, config.SourceConfig{Kind: "ftp"}))
		_, err := app.Provider()
		assert.Error(t, err)
	})
}

func TestApp_DBIsLazy(t *testing.T) {
	flags := newFlags(t, config.SourceConfig{Kind: config.SourceSQLite})
	app := NewApp(flags)

	require.NoError(t, app.Close(), "close before open")
	assert.NoFileExists(t, flags.Config.DatabasePath())

	first, err := app.DB()
	require.NoError(t, err)
	second, err := app.DB()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.FileExists(t, flags.Config.DatabasePath())

	require.NoError(t, app.Close())
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		dir := t.TempDir()
		cmd := NewConfigValidateCmd(&Flags{ConfigPath: filepath.Join(dir, "missing.yaml"), DataDir: dir})
		assert.Empty(t, cmd.validate())
	})

	t.Run("field errors", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("pagination:\n  page_size: -1\ntui:\n  theme: nope\n"), 0o644))

		cmd := NewConfigValidateCmd(&Flags{ConfigPath: path, DataDir: dir})
		issues := cmd.validate()
		require.Len(t, issues, 2)

		fields := []string{issues[0].Field, issues[1].Field}
		assert.ElementsMatch(t, []string{"pagination.page_size", "tui.theme"}, fields)
	})

	t.Run("parse error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("source: [\n"), 0o644))

		cmd := NewConfigValidateCmd(&Flags{ConfigPath: path, DataDir: dir})
		issues := cmd.validate()
		require.Len(t, issues, 1)
		assert.Empty(t, issues[0].Field)
		assert.Contains(t, issues[0].Message, "parse config file")
	})
}
