package diff

import (
	"fmt"
	"strconv"
	"strings"
)

const devNull = "/dev/null"

// Parse consumes unified diff text into per-file diffs.
//
// Tolerance rules for LLM-produced diffs:
//   - a missing "diff --git" header is inserted when a "--- " file boundary
//     appears without one
//   - hunk counts in @@ headers are recomputed from the actual lines
//   - "a/", "b/" and leading "/" path prefixes are stripped
func Parse(text string) ([]*FileDiff, error) {
	lines := strings.Split(text, "\n")

	var files []*FileDiff
	var cur *FileDiff
	var hunk *Hunk

	flushHunk := func() {
		if hunk != nil && cur != nil {
			cur.Hunks = append(cur.Hunks, hunk)
		}
		hunk = nil
	}
	flushFile := func() {
		flushHunk()
		if cur != nil {
			files = append(files, cur)
		}
		cur = nil
	}

	for _, raw := range lines {
		switch {
		case strings.HasPrefix(raw, "diff --git"):
			flushFile()
			cur = &FileDiff{}
			if old, new_, ok := parseGitHeader(raw); ok {
				cur.OldPath = old
				cur.NewPath = new_
			}

		case strings.HasPrefix(raw, "--- "):
			// File boundary without a diff --git header: open a new file
			// section (tolerance rule). A "--- " directly after a file's
			// hunks also means a boundary.
			if cur == nil || len(cur.Hunks) > 0 || hunk != nil {
				flushFile()
				cur = &FileDiff{}
			}
			p := strings.TrimSpace(strings.TrimPrefix(raw, "--- "))
			if p == devNull {
				cur.IsNew = true
			} else {
				cur.OldPath = CleanPath(p)
			}

		case strings.HasPrefix(raw, "+++ "):
			if cur == nil {
				cur = &FileDiff{}
			}
			p := strings.TrimSpace(strings.TrimPrefix(raw, "+++ "))
			if p == devNull {
				cur.IsDelete = true
			} else {
				cur.NewPath = CleanPath(p)
			}

		case strings.HasPrefix(raw, "@@"):
			if cur == nil {
				cur = &FileDiff{}
			}
			flushHunk()
			oldStart, newStart := parseHunkHeader(raw)
			hunk = &Hunk{OldStart: oldStart, NewStart: newStart}

		case strings.HasPrefix(raw, "index ") ||
			strings.HasPrefix(raw, "new file mode") ||
			strings.HasPrefix(raw, "deleted file mode") ||
			strings.HasPrefix(raw, "similarity index") ||
			strings.HasPrefix(raw, "rename from") ||
			strings.HasPrefix(raw, "rename to"):
			if cur != nil {
				if strings.HasPrefix(raw, "new file mode") {
					cur.IsNew = true
				}
				if strings.HasPrefix(raw, "deleted file mode") {
					cur.IsDelete = true
				}
			}

		case strings.HasPrefix(raw, `\ No newline`):
			// marker only, not content

		default:
			if hunk == nil {
				continue // prose between files, ignore
			}
			if raw == "" {
				// An empty line inside a hunk is an empty context line.
				hunk.Lines = append(hunk.Lines, Line{Kind: Context, Text: ""})
				continue
			}
			switch raw[0] {
			case '+':
				hunk.Lines = append(hunk.Lines, Line{Kind: Addition, Text: raw[1:]})
			case '-':
				hunk.Lines = append(hunk.Lines, Line{Kind: Deletion, Text: raw[1:]})
			case ' ':
				hunk.Lines = append(hunk.Lines, Line{Kind: Context, Text: raw[1:]})
			default:
				// Unmarked line inside a hunk: treat as context (LLMs drop
				// the leading space).
				hunk.Lines = append(hunk.Lines, Line{Kind: Context, Text: raw})
			}
		}
	}
	flushFile()

	if len(files) == 0 {
		return nil, fmt.Errorf("no file sections found in diff")
	}

	for _, f := range files {
		normalizeFile(f)
	}
	return files, nil
}

// normalizeFile backfills missing paths and recomputes hunk counts from the
// actual line content (the header counts in LLM output are often wrong).
func normalizeFile(f *FileDiff) {
	if f.OldPath == "" {
		f.OldPath = f.NewPath
	}
	if f.NewPath == "" && !f.IsDelete {
		f.NewPath = f.OldPath
	}
	for _, h := range f.Hunks {
		h.OldCount = 0
		h.NewCount = 0
		for _, l := range h.Lines {
			switch l.Kind {
			case Context:
				h.OldCount++
				h.NewCount++
			case Deletion:
				h.OldCount++
			case Addition:
				h.NewCount++
			}
		}
		if h.OldStart < 1 {
			h.OldStart = 1
		}
		if h.NewStart < 1 {
			h.NewStart = 1
		}
	}
}

// CleanPath strips "a/", "b/" and leading "/" prefixes from a diff path.
func CleanPath(p string) string {
	p = strings.TrimPrefix(p, "a/")
	p = strings.TrimPrefix(p, "b/")
	p = strings.TrimPrefix(p, "/")
	// Paths may carry a trailing tab + timestamp per POSIX diff.
	if i := strings.IndexByte(p, '\t'); i >= 0 {
		p = p[:i]
	}
	return p
}

// parseGitHeader extracts the two paths from a "diff --git a/X b/Y" line.
func parseGitHeader(line string) (oldPath, newPath string, ok bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "diff --git"))
	parts := strings.Fields(rest)
	if len(parts) < 2 {
		return "", "", false
	}
	return CleanPath(parts[0]), CleanPath(parts[len(parts)-1]), true
}

// parseHunkHeader extracts the old/new start lines from "@@ -a,b +c,d @@".
// Malformed headers yield start 1; counts are recomputed anyway.
func parseHunkHeader(line string) (oldStart, newStart int) {
	oldStart, newStart = 1, 1
	for _, field := range strings.Fields(line) {
		switch {
		case strings.HasPrefix(field, "-"):
			if n, err := strconv.Atoi(firstNumber(field[1:])); err == nil {
				oldStart = n
			}
		case strings.HasPrefix(field, "+"):
			if n, err := strconv.Atoi(firstNumber(field[1:])); err == nil {
				newStart = n
			}
		}
	}
	return oldStart, newStart
}

func firstNumber(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		return s[:i]
	}
	return s
}
