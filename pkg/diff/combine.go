package diff

import (
	"fmt"
	"sort"
	"strings"
)

// Combine mechanically merges conflict-free diffs into one unified diff.
// Hunks are concatenated per destination file in input (subtask) order,
// re-sorted by old line number, and emitted with corrected hunk headers.
// A hunk repeated verbatim across inputs is kept once (the keep_first
// resolution). Callers must run DetectConflicts first.
func Combine(diffs []Labeled) (string, error) {
	merged := make(map[string]*FileDiff)
	var order []string

	for _, d := range diffs {
		for _, fd := range d.Files {
			path := fd.Path()
			existing, ok := merged[path]
			if !ok {
				clone := *fd
				clone.Hunks = append([]*Hunk(nil), fd.Hunks...)
				merged[path] = &clone
				order = append(order, path)
				continue
			}
			existing.IsNew = existing.IsNew || fd.IsNew
			existing.IsDelete = existing.IsDelete || fd.IsDelete
			for _, h := range fd.Hunks {
				if !containsHunk(existing.Hunks, h) {
					existing.Hunks = append(existing.Hunks, h)
				}
			}
		}
	}

	files := make([]*FileDiff, 0, len(order))
	for _, path := range order {
		fd := merged[path]
		sort.SliceStable(fd.Hunks, func(i, j int) bool {
			return fd.Hunks[i].OldStart < fd.Hunks[j].OldStart
		})
		files = append(files, fd)
	}

	out := Format(files)
	if err := Validate(out); err != nil {
		return "", err
	}
	return out, nil
}

func containsHunk(hunks []*Hunk, h *Hunk) bool {
	for _, existing := range hunks {
		if hunksEqual(existing, h) {
			return true
		}
	}
	return false
}

// Format re-emits parsed file diffs as unified diff text with recomputed
// hunk headers. New-start positions are derived from the running add/delete
// delta of preceding hunks.
func Format(files []*FileDiff) string {
	var b strings.Builder
	for _, fd := range files {
		oldPath, newPath := fd.OldPath, fd.NewPath
		if oldPath == "" {
			oldPath = newPath
		}
		if newPath == "" {
			newPath = oldPath
		}

		fmt.Fprintf(&b, "diff --git a/%s b/%s\n", oldPath, newPath)
		if fd.IsNew {
			b.WriteString("new file mode 100644\n")
			b.WriteString("--- /dev/null\n")
			fmt.Fprintf(&b, "+++ b/%s\n", newPath)
		} else if fd.IsDelete {
			b.WriteString("deleted file mode 100644\n")
			fmt.Fprintf(&b, "--- a/%s\n", oldPath)
			b.WriteString("+++ /dev/null\n")
		} else {
			fmt.Fprintf(&b, "--- a/%s\n", oldPath)
			fmt.Fprintf(&b, "+++ b/%s\n", newPath)
		}

		delta := 0
		for _, h := range fd.Hunks {
			newStart := h.OldStart + delta
			if fd.IsNew {
				newStart = 1
			}
			fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, newStart, h.NewCount)
			for _, l := range h.Lines {
				b.WriteByte(byte(l.Kind))
				b.WriteString(l.Text)
				b.WriteByte('\n')
			}
			delta += h.NewCount - h.OldCount
		}
	}
	return b.String()
}

// Validate checks that diff text is structurally sound: every file section
// has a valid header pair and at least one hunk.
func Validate(text string) error {
	files, err := Parse(text)
	if err != nil {
		return err
	}
	for _, fd := range files {
		if fd.Path() == "" {
			return fmt.Errorf("file section without a resolvable path")
		}
		if !fd.IsNew && !fd.IsDelete && fd.OldPath == "" {
			return fmt.Errorf("file %q missing old-path header", fd.NewPath)
		}
		if len(fd.Hunks) == 0 {
			return fmt.Errorf("file %q has no hunks", fd.Path())
		}
	}
	return nil
}
