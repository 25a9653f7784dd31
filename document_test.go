// FILE: inifile/document_test.go
package inifile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, text string, keep bool, doc *Document) *Document {
	t.Helper()
	if doc == nil {
		doc = New()
	}
	require.NoError(t, doc.Parse(strings.NewReader(text), keep))
	return doc
}

func TestParse(t *testing.T) {
	t.Run("BasicSectionsAndKeys", func(t *testing.T) {
		doc := parseString(t, "[Core]\nCPUThread = True\nLanguage=0\n\n[Display]\nFullscreen = False\n", false, nil)

		value, ok := Lookup(doc, "Core", "cputhread", "")
		assert.True(t, ok)
		assert.Equal(t, "True", value)

		value, _ = Lookup(doc, "Core", "Language", "")
		assert.Equal(t, "0", value)

		assert.True(t, doc.Exists("Display", "Fullscreen"))
	})

	t.Run("CRLFTolerant", func(t *testing.T) {
		doc := parseString(t, "[Core]\r\nkey = value\r\n", false, nil)
		value, ok := Lookup(doc, "Core", "key", "")
		assert.True(t, ok)
		assert.Equal(t, "value", value)
	})

	t.Run("LinesBeforeFirstHeaderDropped", func(t *testing.T) {
		doc := parseString(t, "orphan = 1\n# stray comment\n[Core]\nkey = v\n", false, nil)
		assert.Len(t, doc.Sections(), 1)
		assert.False(t, doc.Exists("Core", "orphan"))
	})

	t.Run("HeaderWhitespaceTrimmed", func(t *testing.T) {
		doc := parseString(t, "  [ Core ]  \nkey = v\n", false, nil)
		_, ok := doc.Section("Core")
		assert.True(t, ok)
	})

	t.Run("InlineCommentStripped", func(t *testing.T) {
		doc := parseString(t, "[Core]\nkey = value  # trailing comment\n", false, nil)
		value, _ := Lookup(doc, "Core", "key", "")
		assert.Equal(t, "value", value)
	})

	t.Run("QuotedHashKept", func(t *testing.T) {
		doc := parseString(t, "[Core]\nkey = \"a # b\"\n", false, nil)
		value, _ := Lookup(doc, "Core", "key", "")
		assert.Equal(t, "\"a # b\"", value)
	})

	t.Run("NonPairLinesCapturedRaw", func(t *testing.T) {
		doc := parseString(t, "[Block]\n# just a comment\nnot-a-pair-line\n", false, nil)

		lines, ok := doc.Lines("Block", false)
		require.True(t, ok)
		assert.Equal(t, []string{"# just a comment", "not-a-pair-line"}, lines)
	})

	t.Run("CommentWithEqualsIsNotAPair", func(t *testing.T) {
		doc := parseString(t, "[Core]\n# retries=3\n", false, nil)
		assert.False(t, doc.Exists("Core", "# retries"))
		lines, ok := doc.Lines("Core", false)
		require.True(t, ok)
		assert.Equal(t, []string{"# retries=3"}, lines)
	})

	t.Run("ReplaceSemantics", func(t *testing.T) {
		doc := parseString(t, "[A]\nx = 1\n", false, nil)
		parseString(t, "[B]\ny = 2\n", false, doc)

		_, ok := doc.Section("A")
		assert.False(t, ok)
		assert.True(t, doc.Exists("B", "y"))
	})
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		key   string
		value string
		ok    bool
	}{
		{"Simple", "key = value", "key", "value", true},
		{"NoSpaces", "key=value", "key", "value", true},
		{"TrailingComment", "key = value # note", "key", "value", true},
		{"EmptyValue", "key =", "key", "", true},
		{"ValueWithEquals", "key = a=b", "key", "a=b", true},
		{"Comment", "# comment", "", "", false},
		{"IndentedComment", "  # comment", "", "", false},
		{"NoEquals", "just a line", "", "", false},
		{"EmptyKey", "= value", "", "", false},
		{"Empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestMergeSemantics(t *testing.T) {
	base := "[Core]\nCPUThread = True\nLanguage = 0\n[Display]\nFullscreen = False\n"
	overlay := "[Core]\nLanguage = 6\n[GFX]\nAA = 4\n"

	doc := parseString(t, base, false, nil)
	parseString(t, overlay, true, doc)

	// Overlay value wins.
	language, _ := Lookup(doc, "Core", "Language", "")
	assert.Equal(t, "6", language)

	// Untouched keys and sections survive.
	cpuThread, _ := Lookup(doc, "Core", "CPUThread", "")
	assert.Equal(t, "True", cpuThread)
	assert.True(t, doc.Exists("Display", "Fullscreen"))

	// Existing section order preserved, new sections appended.
	names := make([]string, 0, 3)
	for _, s := range doc.Sections() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"Core", "Display", "GFX"}, names)
}

func TestSave(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		doc := parseString(t, "[Core]\nb = 2\na = 1\n[Display]\nx = y\n", false, nil)
		reloaded := parseString(t, doc.String(), false, nil)

		for _, s := range doc.Sections() {
			rs, ok := reloaded.Section(s.Name())
			require.True(t, ok)
			assert.Equal(t, s.Values(), rs.Values())
		}
	})

	t.Run("Idempotence", func(t *testing.T) {
		doc := parseString(t, "[Core]\nZebra = 1\nalpha = 2\n\n[Block]\n# comment\nfree line\n", false, nil)
		first := doc.String()
		second := parseString(t, first, false, nil).String()
		assert.Equal(t, first, second)
	})

	t.Run("EntriesInCaseInsensitiveOrder", func(t *testing.T) {
		doc := New()
		core := doc.GetOrCreateSection("Core")
		core.Set("zebra", "1")
		core.Set("Alpha", "2")

		assert.Equal(t, "[Core]\nAlpha = 2\nzebra = 1\n", doc.String())
	})

	t.Run("RawModeWins", func(t *testing.T) {
		doc := New()
		s := doc.GetOrCreateSection("Block")
		s.Set("key", "value")
		s.SetLines([]string{"# opaque body"})

		assert.Equal(t, "[Block]\n# opaque body\n", doc.String())
	})

	t.Run("RawModePreservation", func(t *testing.T) {
		text := "[Block]\n# just a comment\nnot-a-pair-line\n"
		doc := parseString(t, text, false, nil)
		assert.Equal(t, text, doc.String())
	})

	t.Run("BlankLineBetweenSections", func(t *testing.T) {
		doc := New()
		doc.GetOrCreateSection("A").Set("k", "v")
		doc.GetOrCreateSection("B").Set("k", "v")

		assert.Equal(t, "[A]\nk = v\n\n[B]\nk = v\n", doc.String())
	})
}

func TestSectionManagement(t *testing.T) {
	t.Run("GetOrCreateSection", func(t *testing.T) {
		doc := New()
		a := doc.GetOrCreateSection("Core")
		b := doc.GetOrCreateSection("Core")
		assert.Same(t, a, b)
		assert.Len(t, doc.Sections(), 1)
	})

	t.Run("SectionNamesCaseSensitive", func(t *testing.T) {
		doc := New()
		doc.GetOrCreateSection("Core")
		doc.GetOrCreateSection("core")
		assert.Len(t, doc.Sections(), 2)
	})

	t.Run("DeleteSection", func(t *testing.T) {
		doc := New()
		doc.GetOrCreateSection("Core")
		assert.True(t, doc.DeleteSection("Core"))
		assert.False(t, doc.DeleteSection("Core"))
	})

	t.Run("DeleteKey", func(t *testing.T) {
		doc := New()
		doc.GetOrCreateSection("Core").Set("key", "v")

		assert.False(t, doc.DeleteKey("Missing", "key"))
		assert.True(t, doc.DeleteKey("Core", "key"))
		assert.False(t, doc.DeleteKey("Core", "key"))
	})

	t.Run("Keys", func(t *testing.T) {
		doc := New()
		s := doc.GetOrCreateSection("Core")
		s.Set("second", "2")
		s.Set("first", "1")

		keys, ok := doc.Keys("Core")
		require.True(t, ok)
		assert.Equal(t, []string{"second", "first"}, keys)

		_, ok = doc.Keys("Missing")
		assert.False(t, ok)
	})

	t.Run("SortSections", func(t *testing.T) {
		doc := New()
		doc.GetOrCreateSection("zulu")
		doc.GetOrCreateSection("Alpha")
		doc.GetOrCreateSection("mike")
		doc.SortSections()

		names := make([]string, 0, 3)
		for _, s := range doc.Sections() {
			names = append(names, s.Name())
		}
		assert.Equal(t, []string{"Alpha", "mike", "zulu"}, names)
	})
}
