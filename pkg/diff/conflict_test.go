package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labeled(t *testing.T, label, text string) Labeled {
	t.Helper()
	return Labeled{Label: label, Files: mustParse(t, text)}
}

func TestDetectConflictsOverlappingRanges(t *testing.T) {
	s1 := labeled(t, "s1", `--- a/src/a.ts
+++ b/src/a.ts
@@ -10,5 +10,5 @@
 l10
-l11
+first version
 l12
 l13
 l14
`)
	s2 := labeled(t, "s2", `--- a/src/a.ts
+++ b/src/a.ts
@@ -10,5 +10,5 @@
 l10
 l11
-l12
+second version
 l13
 l14
`)

	conflicts := DetectConflicts([]Labeled{s1, s2})
	require.Len(t, conflicts, 1)
	assert.Equal(t, Conflict{
		File:       "src/a.ts",
		First:      "s1",
		Second:     "s2",
		Resolution: ManualRequired,
	}, conflicts[0])
}

func TestDetectConflictsDisjointRangesSameFile(t *testing.T) {
	s1 := labeled(t, "s1", `--- a/src/a.ts
+++ b/src/a.ts
@@ -1,2 +1,2 @@
 l1
-l2
+L2
`)
	s2 := labeled(t, "s2", `--- a/src/a.ts
+++ b/src/a.ts
@@ -50,2 +50,2 @@
 l50
-l51
+L51
`)

	assert.Empty(t, DetectConflicts([]Labeled{s1, s2}))
}

func TestDetectConflictsDifferentFiles(t *testing.T) {
	s1 := labeled(t, "s1", `--- a/a.ts
+++ b/a.ts
@@ -1,1 +1,1 @@
-x
+y
`)
	s2 := labeled(t, "s2", `--- a/b.ts
+++ b/b.ts
@@ -1,1 +1,1 @@
-x
+y
`)

	assert.Empty(t, DetectConflicts([]Labeled{s1, s2}))
}

func TestDetectConflictsWholeFileRewrite(t *testing.T) {
	// Two subtasks creating the same file with different content conflict.
	s1 := labeled(t, "s1", `--- /dev/null
+++ b/src/types.ts
@@ -0,0 +1,1 @@
+export type A = string;
`)
	s2 := labeled(t, "s2", `--- /dev/null
+++ b/src/types.ts
@@ -0,0 +1,1 @@
+export type A = number;
`)

	conflicts := DetectConflicts([]Labeled{s1, s2})
	require.Len(t, conflicts, 1)
	assert.Equal(t, ManualRequired, conflicts[0].Resolution)
}

func TestDetectConflictsIdenticalChangeKeepsFirst(t *testing.T) {
	// Two subtasks making the exact same change overlap, but dropping the
	// duplicate is safe.
	change := `--- a/src/a.ts
+++ b/src/a.ts
@@ -10,2 +10,2 @@
 l10
-l11
+shared edit
`
	s1 := labeled(t, "s1", change)
	s2 := labeled(t, "s2", change)

	conflicts := DetectConflicts([]Labeled{s1, s2})
	require.Len(t, conflicts, 1)
	assert.Equal(t, KeepFirst, conflicts[0].Resolution)
}

func TestCombineDisjointDiffs(t *testing.T) {
	s1 := labeled(t, "s1", `--- /dev/null
+++ b/src/types.ts
@@ -0,0 +1,1 @@
+export type ID = string;
`)
	s2 := labeled(t, "s2", `--- a/src/api.ts
+++ b/src/api.ts
@@ -1,2 +1,3 @@
+import { ID } from "./types";
 export function get() {
 }
`)

	combined, err := Combine([]Labeled{s1, s2})
	require.NoError(t, err)

	files := mustParse(t, combined)
	require.Len(t, files, 2)
	assert.Equal(t, "src/types.ts", files[0].Path())
	assert.True(t, files[0].IsNew)
	assert.Equal(t, "src/api.ts", files[1].Path())
}

func TestCombineSortsHunksWithinFile(t *testing.T) {
	s1 := labeled(t, "s1", `--- a/f.txt
+++ b/f.txt
@@ -50,2 +50,2 @@
 l50
-l51
+L51
`)
	s2 := labeled(t, "s2", `--- a/f.txt
+++ b/f.txt
@@ -1,2 +1,2 @@
 l1
-l2
+L2
`)

	combined, err := Combine([]Labeled{s1, s2})
	require.NoError(t, err)

	files := mustParse(t, combined)
	require.Len(t, files, 1)
	require.Len(t, files[0].Hunks, 2)
	assert.Equal(t, 1, files[0].Hunks[0].OldStart)
	assert.Equal(t, 50, files[0].Hunks[1].OldStart)
}

func TestCombineDropsDuplicateHunks(t *testing.T) {
	change := `--- a/f.txt
+++ b/f.txt
@@ -1,2 +1,2 @@
 l1
-l2
+L2
`
	s1 := labeled(t, "s1", change)
	s2 := labeled(t, "s2", change)

	combined, err := Combine([]Labeled{s1, s2})
	require.NoError(t, err)

	files := mustParse(t, combined)
	require.Len(t, files, 1)
	assert.Len(t, files[0].Hunks, 1)
}

// Combining is deterministic: the same inputs always produce the same text.
func TestCombineDeterministic(t *testing.T) {
	s1 := labeled(t, "s1", `--- a/a.ts
+++ b/a.ts
@@ -1,1 +1,1 @@
-x
+y
`)
	s2 := labeled(t, "s2", `--- a/b.ts
+++ b/b.ts
@@ -1,1 +1,1 @@
-p
+q
`)

	first, err := Combine([]Labeled{s1, s2})
	require.NoError(t, err)
	second, err := Combine([]Labeled{s1, s2})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidate(t *testing.T) {
	good := `--- a/a.ts
+++ b/a.ts
@@ -1,1 +1,1 @@
-x
+y
`
	assert.NoError(t, Validate(good))
	assert.Error(t, Validate("not a diff at all"))
}
