package locator

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/archive/internal/display"
	"github.com/harrison/archive/internal/locale"
)

type harness struct {
	out    bytes.Buffer
	errOut bytes.Buffer
	loc    *Locator
}

func newHarness(lang locale.Lang) *harness {
	h := &harness{}
	h.loc = New(display.NewPrinter(&h.out, &h.errOut, "never"), locale.For(lang), nil)
	return h
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

// matchLines returns the "<name> <<== <line>" lines of an output.
func matchLines(output string) []string {
	var out []string
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, display.MatchMarker) {
			out = append(out, line)
		}
	}
	return out
}

func TestLocate_Scenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "Hello World\nnothing here\n")
	writeFile(t, dir, "log.txt", "no match at all\n")

	h := newHarness(locale.En)
	status, err := h.loc.Locate("hello", dir)

	require.NoError(t, err)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, []string{"notes.txt <<== hello world"}, matchLines(h.out.String()))
	assert.NotContains(t, h.out.String(), "log.txt")
	assert.Empty(t, h.errOut.String())
}

func TestLocate_FullOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "Beta LINE\n")
	writeFile(t, dir, "a.txt", "first line\nanother Line here\n")

	h := newHarness(locale.En)
	_, err := h.loc.Locate("LINE", dir)
	require.NoError(t, err)

	dash := strings.Repeat("-", 80)
	double := strings.Repeat("=", 80)
	want := dash + "\n" +
		"Searching pattern: 'line', in directory: '" + dir + "'\n" +
		dash + "\n" +
		"a.txt <<== first line\n" +
		"a.txt <<== another line here\n" +
		double + "\n" +
		"b.txt <<== beta line\n" +
		double + "\n"
	assert.Equal(t, want, h.out.String())
}

func TestLocate_CaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mixed.txt", "ÉTÉ Chaud\nhello\nHeLLo again\nHELLO\n")

	tests := []struct {
		pattern string
		want    []string
	}{
		{pattern: "hello", want: []string{"mixed.txt <<== hello", "mixed.txt <<== hello again", "mixed.txt <<== hello"}},
		{pattern: "HELLO", want: []string{"mixed.txt <<== hello", "mixed.txt <<== hello again", "mixed.txt <<== hello"}},
		{pattern: "été", want: []string{"mixed.txt <<== été chaud"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			h := newHarness(locale.En)
			_, err := h.loc.Locate(tt.pattern, dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matchLines(h.out.String()))
		})
	}
}

func TestLocate_PlainSubstringNotRegex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "r.txt", "a.c\nabc\n")

	h := newHarness(locale.En)
	_, err := h.loc.Locate("a.c", dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"r.txt <<== a.c"}, matchLines(h.out.String()))
}

func TestLocate_NameOrder(t *testing.T) {
	dir := t.TempDir()
	// written out of order on purpose
	for _, name := range []string{"zeta.txt", "Alpha.txt", "mid.txt", "alpha.txt"} {
		writeFile(t, dir, name, "needle\n")
	}

	h := newHarness(locale.En)
	_, err := h.loc.Locate("needle", dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Alpha.txt <<== needle",
		"alpha.txt <<== needle",
		"mid.txt <<== needle",
		"zeta.txt <<== needle",
	}, matchLines(h.out.String()))
}

func TestLocate_OnlyDirectTxtFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", "needle\n")
	writeFile(t, dir, "upper.TXT", "needle\n")
	writeFile(t, dir, "notes.md", "needle\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	writeFile(t, filepath.Join(dir, "sub"), "nested.txt", "needle\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.txt"), 0755))

	h := newHarness(locale.En)
	_, err := h.loc.Locate("needle", dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.txt <<== needle"}, matchLines(h.out.String()))
}

func TestLocate_NoCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md", "hello\n")

	h := newHarness(locale.En)
	status, err := h.loc.Locate("hello", dir)

	require.NoError(t, err)
	assert.Equal(t, StatusNoCandidates, status)
	assert.Empty(t, matchLines(h.out.String()))
	assert.NotContains(t, h.out.String(), strings.Repeat("=", 80))
	assert.Equal(t, "The folder '"+dir+"'\ndoes not contain any .txt files to perform the search.\n", h.errOut.String())
}

func TestLocate_NothingFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha\n")

	h := newHarness(locale.Fr)
	status, err := h.loc.Locate("Omega", dir)

	require.NoError(t, err)
	assert.Equal(t, StatusOK, status)
	assert.Contains(t, h.out.String(), "Aucun fichier contenant le motif 'omega' n'a été trouvé.\n"+strings.Repeat("=", 80)+"\n")
}

func TestLocate_UnreadableFileAborts(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "needle first\n")
	writeFile(t, dir, "b.txt", "needle locked\n")
	writeFile(t, dir, "c.txt", "needle never read\n")
	require.NoError(t, os.Chmod(filepath.Join(dir, "b.txt"), 0000))
	t.Cleanup(func() { os.Chmod(filepath.Join(dir, "b.txt"), 0644) })

	h := newHarness(locale.En)
	_, err := h.loc.Locate("needle", dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "b.txt")
	assert.Equal(t, []string{"a.txt <<== needle first"}, matchLines(h.out.String()))
}

func TestLocate_InvalidUTF8Aborts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello first\n")
	writeFile(t, dir, "latin1.txt", "ok hello\nCaf\xe9 HELLO\n")
	writeFile(t, dir, "z.txt", "hello never read\n")

	h := newHarness(locale.En)
	_, err := h.loc.Locate("hello", dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "latin1.txt")
	assert.Equal(t, []string{"a.txt <<== hello first", "latin1.txt <<== ok hello"}, matchLines(h.out.String()))
	assert.NotContains(t, h.out.String(), "\uFFFD")
}

func TestLocate_MissingDirectory(t *testing.T) {
	h := newHarness(locale.En)
	_, err := h.loc.Locate("x", filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
}

func TestEachLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "no trailing newline", input: "a\nb", want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", input: "\n\nx\n", want: []string{"", "", "x"}},
		{name: "long line", input: strings.Repeat("x", 200000) + "\n", want: []string{strings.Repeat("x", 200000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			err := eachLine(strings.NewReader(tt.input), func(line string) { got = append(got, line) })
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEachLine_InvalidUTF8(t *testing.T) {
	var got []string
	err := eachLine(strings.NewReader("fine\nbad \xff\nnever\n"), func(line string) { got = append(got, line) })

	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, []string{"fine"}, got)
}

func TestEachLine_ReadError(t *testing.T) {
	err := eachLine(iotest.ErrReader(os.ErrClosed), func(string) {})
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestPattern(t *testing.T) {
	p := NewPattern("HeLLo")
	assert.Equal(t, Pattern("hello"), p)
	assert.True(t, p.Match("say hello world"))
	assert.False(t, p.Match("say HELLO"), "Match expects an already lower-cased line")
	assert.True(t, NewPattern("").Match("anything"))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "no-candidates", StatusNoCandidates.String())
}
