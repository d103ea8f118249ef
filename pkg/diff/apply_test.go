package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) []*FileDiff {
	t.Helper()
	files, err := Parse(text)
	require.NoError(t, err)
	return files
}

func TestApplyReplacesAtHint(t *testing.T) {
	base := "a\nb\nc\nd"
	text := `--- a/f.txt
+++ b/f.txt
@@ -2,2 +2,2 @@
 b
-c
+C
`
	files := mustParse(t, text)
	got, deleted, err := Apply(base, files[0])
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, "a\nb\nC\nd", got)
}

func TestApplyRealignsShiftedContext(t *testing.T) {
	// The hunk header claims line 2 but the context actually sits at line 5.
	base := "p1\np2\np3\nb\nc\nd"
	text := `--- a/f.txt
+++ b/f.txt
@@ -2,2 +2,2 @@
 b
-c
+C
`
	files := mustParse(t, text)
	got, _, err := Apply(base, files[0])
	require.NoError(t, err)
	assert.Equal(t, "p1\np2\np3\nb\nC\nd", got)
}

func TestApplyAppendsWhenHunkHasNoDeletions(t *testing.T) {
	// Context + additions only: additions are appended after the context
	// block, not overwritten onto existing lines.
	base := "one\ntwo\nthree"
	text := `--- a/f.txt
+++ b/f.txt
@@ -2,1 +2,2 @@
 two
+two-and-a-half
`
	files := mustParse(t, text)
	got, _, err := Apply(base, files[0])
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\ntwo-and-a-half\nthree", got)
}

func TestApplyMultipleHunksBottomUp(t *testing.T) {
	base := strings.Join([]string{"l1", "l2", "l3", "l4", "l5", "l6"}, "\n")
	text := `--- a/f.txt
+++ b/f.txt
@@ -1,2 +1,2 @@
 l1
-l2
+L2
@@ -5,2 +5,2 @@
 l5
-l6
+L6
`
	files := mustParse(t, text)
	got, _, err := Apply(base, files[0])
	require.NoError(t, err)
	assert.Equal(t, "l1\nL2\nl3\nl4\nl5\nL6", got)
}

func TestApplyDeletion(t *testing.T) {
	text := `--- a/gone.txt
+++ /dev/null
@@ -1,1 +0,0 @@
-bye
`
	files := mustParse(t, text)
	_, deleted, err := Apply("bye", files[0])
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestNewFileContentStripsEmbeddedDiffSyntax(t *testing.T) {
	text := `--- /dev/null
+++ b/new.ts
@@ -0,0 +1,4 @@
+export const x = 1;
+diff --git a/oops b/oops
+@@ -1,1 +1,1 @@
+export const y = 2;
`
	files := mustParse(t, text)
	got, deleted, err := Apply("", files[0])
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, "export const x = 1;\nexport const y = 2;", got)
}

// Round-trip property: re-emitting parsed hunks yields a diff that applies
// to the same base with byte-identical results.
func TestFormatRoundTrip(t *testing.T) {
	base := "alpha\nbeta\ngamma\ndelta"
	text := `diff --git a/f.txt b/f.txt
--- a/f.txt
+++ b/f.txt
@@ -2,2 +2,3 @@
 beta
-gamma
+GAMMA
+gamma2
`
	original := mustParse(t, text)
	want, _, err := Apply(base, original[0])
	require.NoError(t, err)

	reparsed := mustParse(t, Format(original))
	got, _, err := Apply(base, reparsed[0])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMaterialize(t *testing.T) {
	text := `--- a/a.txt
+++ b/a.txt
@@ -1,1 +1,1 @@
-old
+new
--- /dev/null
+++ b/b.txt
@@ -0,0 +1,1 @@
+fresh
`
	files := mustParse(t, text)
	states, err := Materialize(files, map[string]string{"a.txt": "old"})
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, FileState{Path: "a.txt", Content: "new"}, states[0])
	assert.Equal(t, FileState{Path: "b.txt", Content: "fresh"}, states[1])
}
