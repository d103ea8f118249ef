package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleDiff(t *testing.T) {
	text := `diff --git a/src/math.ts b/src/math.ts
--- a/src/math.ts
+++ b/src/math.ts
@@ -1,3 +1,3 @@
 export function mul(a: number, b: number) {
-  return a * b;
+  return a * b; // checked
 }
`
	files, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, files, 1)

	fd := files[0]
	assert.Equal(t, "src/math.ts", fd.OldPath)
	assert.Equal(t, "src/math.ts", fd.NewPath)
	assert.False(t, fd.IsNew)
	assert.False(t, fd.IsDelete)
	require.Len(t, fd.Hunks, 1)

	h := fd.Hunks[0]
	assert.Equal(t, 1, h.OldStart)
	assert.Equal(t, 3, h.OldCount)
	assert.Equal(t, 3, h.NewCount)
	require.Len(t, h.Lines, 4)
	assert.Equal(t, Deletion, h.Lines[1].Kind)
	assert.Equal(t, Addition, h.Lines[2].Kind)
}

func TestParseRecomputesWrongHunkCounts(t *testing.T) {
	// LLM output frequently carries bogus counts; they are recomputed from
	// the actual lines.
	text := `diff --git a/x.go b/x.go
--- a/x.go
+++ b/x.go
@@ -5,99 +5,1 @@
 ctx1
-old
+new1
+new2
 ctx2
`
	files, err := Parse(text)
	require.NoError(t, err)
	h := files[0].Hunks[0]
	assert.Equal(t, 5, h.OldStart)
	assert.Equal(t, 3, h.OldCount)
	assert.Equal(t, 4, h.NewCount)
}

func TestParseInsertsMissingGitHeader(t *testing.T) {
	text := `--- a/a.txt
+++ b/a.txt
@@ -1,1 +1,1 @@
-x
+y
--- a/b.txt
+++ b/b.txt
@@ -1,1 +1,1 @@
-p
+q
`
	files, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Path())
	assert.Equal(t, "b.txt", files[1].Path())
}

func TestParseStripsPathPrefixes(t *testing.T) {
	for _, tc := range []struct {
		raw, want string
	}{
		{"a/src/api.ts", "src/api.ts"},
		{"b/src/api.ts", "src/api.ts"},
		{"/src/api.ts", "src/api.ts"},
		{"src/api.ts", "src/api.ts"},
	} {
		assert.Equal(t, tc.want, CleanPath(tc.raw))
	}
}

func TestParseNewFile(t *testing.T) {
	text := `diff --git a/src/types.ts b/src/types.ts
new file mode 100644
--- /dev/null
+++ b/src/types.ts
@@ -0,0 +1,2 @@
+export interface User {
+}
`
	files, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, files[0].IsNew)
	assert.Equal(t, "src/types.ts", files[0].Path())
}

func TestParseDeletedFile(t *testing.T) {
	text := `diff --git a/old.txt b/old.txt
--- a/old.txt
+++ /dev/null
@@ -1,1 +0,0 @@
-gone
`
	files, err := Parse(text)
	require.NoError(t, err)
	require.True(t, files[0].IsDelete)
	assert.Equal(t, "old.txt", files[0].Path())
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := Parse("nothing resembling a diff here")
	assert.Error(t, err)
}
