package diff

import (
	"sort"
	"strings"
)

// contextSearchWindow is how far (in lines) around the header hint the
// applier searches for an exact context match before degrading.
const contextSearchWindow = 10

// Apply computes the post-diff content of a single file. base is the
// base-branch content ("" for files that do not exist yet). deleted reports
// that the file should be removed.
func Apply(base string, fd *FileDiff) (content string, deleted bool, err error) {
	if fd.IsDelete {
		return "", true, nil
	}
	if fd.IsNew || base == "" {
		return NewFileContent(fd), false, nil
	}

	lines := strings.Split(base, "\n")

	// Apply hunks bottom-up so earlier hunks' offsets stay valid.
	hunks := make([]*Hunk, len(fd.Hunks))
	copy(hunks, fd.Hunks)
	sort.Slice(hunks, func(i, j int) bool { return hunks[i].OldStart > hunks[j].OldStart })

	for _, h := range hunks {
		lines = applyHunk(lines, h)
	}
	return strings.Join(lines, "\n"), false, nil
}

// applyHunk locates the hunk in the file and splices in its new side.
//
// Position resolution, in order: trust the header hint when the context
// matches there exactly; search ±contextSearchWindow lines for an exact
// multi-line context match; fall back to matching the first context line;
// finally use the hint as-is (the source behavior — a misaligned LLM hunk is
// applied where the header claims it belongs).
func applyHunk(lines []string, h *Hunk) []string {
	context := h.ContextLines()
	pos := h.OldStart - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(lines) {
		pos = len(lines)
	}

	if len(context) > 0 {
		pos = locateContext(lines, context, pos)
	}

	if !h.HasDeletions() {
		// Context + additions only: insert the additions after the context
		// block instead of overwriting anything.
		insertAt := pos + len(context)
		if insertAt > len(lines) {
			insertAt = len(lines)
		}
		return splice(lines, insertAt, 0, h.Additions())
	}

	count := h.OldCount
	if pos+count > len(lines) {
		count = len(lines) - pos
	}
	return splice(lines, pos, count, h.NewLines())
}

// locateContext finds the true position of the hunk's old-side lines.
func locateContext(lines, context []string, hint int) int {
	// 1. Trust the hint when the full context matches there.
	if matchesAt(lines, context, hint) {
		return hint
	}

	// 2. Exact multi-line match within the search window.
	for offset := 1; offset <= contextSearchWindow; offset++ {
		for _, candidate := range []int{hint - offset, hint + offset} {
			if matchesAt(lines, context, candidate) {
				return candidate
			}
		}
	}

	// 3. First context line match within the window.
	first := context[0]
	for offset := 0; offset <= contextSearchWindow; offset++ {
		for _, candidate := range []int{hint - offset, hint + offset} {
			if candidate >= 0 && candidate < len(lines) && lines[candidate] == first {
				return candidate
			}
		}
	}

	// 4. Nothing matched: use the hint.
	if hint > len(lines) {
		return len(lines)
	}
	return hint
}

func matchesAt(lines, context []string, pos int) bool {
	if pos < 0 || pos+len(context) > len(lines) {
		return false
	}
	for i, c := range context {
		if lines[pos+i] != c {
			return false
		}
	}
	return true
}

// splice replaces lines[at:at+del] with repl.
func splice(lines []string, at, del int, repl []string) []string {
	out := make([]string, 0, len(lines)-del+len(repl))
	out = append(out, lines[:at]...)
	out = append(out, repl...)
	out = append(out, lines[at+del:]...)
	return out
}

// NewFileContent collects the added lines of a new-file diff, stripping any
// diff-syntax lines an LLM accidentally embedded in the content.
func NewFileContent(fd *FileDiff) string {
	var out []string
	for _, h := range fd.Hunks {
		for _, l := range h.Lines {
			if l.Kind == Deletion {
				continue
			}
			if isEmbeddedDiffSyntax(l.Text) {
				continue
			}
			out = append(out, l.Text)
		}
	}
	return strings.Join(out, "\n")
}

var embeddedSyntaxPrefixes = []string{
	"diff --git",
	"--- ",
	"+++ ",
	"@@",
	"index ",
	"new file mode",
}

func isEmbeddedDiffSyntax(line string) bool {
	for _, p := range embeddedSyntaxPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// FileState is the materialized result of applying one file's diff.
type FileState struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Deleted bool   `json:"deleted"`
}

// Materialize applies every file diff against the provided base contents
// (path → content; missing files map to "").
func Materialize(files []*FileDiff, base map[string]string) ([]FileState, error) {
	out := make([]FileState, 0, len(files))
	for _, fd := range files {
		content, deleted, err := Apply(base[fd.Path()], fd)
		if err != nil {
			return nil, err
		}
		out = append(out, FileState{Path: fd.Path(), Content: content, Deleted: deleted})
	}
	return out, nil
}
