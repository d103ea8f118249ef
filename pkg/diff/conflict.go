package diff

// Resolution is a conflict handling strategy. Aggregation only proceeds when
// no conflict resolves to manual_required.
type Resolution string

// Conflict resolutions.
const (
	KeepFirst      Resolution = "keep_first"
	ManualRequired Resolution = "manual_required"
)

// Conflict reports two diffs touching overlapping regions of one file.
type Conflict struct {
	File       string     `json:"file"`
	First      string     `json:"subtask1"`
	Second     string     `json:"subtask2"`
	Resolution Resolution `json:"resolution"`
}

// Labeled associates a parsed diff with its origin label (subtask id).
type Labeled struct {
	Label string
	Files []*FileDiff
}

// span is an inclusive old-file line range touched by a hunk.
type span struct {
	start, end int
	deletes    bool
}

// DetectConflicts groups hunks by destination file and reports every pair of
// diffs whose touched ranges overlap, or where one deletes lines another
// modifies. Two diffs making the same change to a file resolve keep_first:
// dropping the duplicate is safe. Everything else resolves manual_required —
// mechanical aggregation never picks a side between different changes.
func DetectConflicts(diffs []Labeled) []Conflict {
	type entry struct {
		label string
		fd    *FileDiff
		spans []span
	}
	byFile := make(map[string][]entry)
	var order []string

	for _, d := range diffs {
		for _, fd := range d.Files {
			path := fd.Path()
			if _, seen := byFile[path]; !seen {
				order = append(order, path)
			}
			byFile[path] = append(byFile[path], entry{label: d.Label, fd: fd, spans: fileSpans(fd)})
		}
	}

	var conflicts []Conflict
	for _, path := range order {
		entries := byFile[path]
		for i := 0; i < len(entries); i++ {
			for j := i + 1; j < len(entries); j++ {
				if entries[i].label == entries[j].label {
					continue
				}
				if !spansOverlap(entries[i].spans, entries[j].spans) {
					continue
				}
				resolution := ManualRequired
				if fileDiffsEqual(entries[i].fd, entries[j].fd) {
					resolution = KeepFirst
				}
				conflicts = append(conflicts, Conflict{
					File:       path,
					First:      entries[i].label,
					Second:     entries[j].label,
					Resolution: resolution,
				})
			}
		}
	}
	return conflicts
}

// fileDiffsEqual reports whether two file diffs describe the same change.
func fileDiffsEqual(a, b *FileDiff) bool {
	if a.IsNew != b.IsNew || a.IsDelete != b.IsDelete || len(a.Hunks) != len(b.Hunks) {
		return false
	}
	for i := range a.Hunks {
		if !hunksEqual(a.Hunks[i], b.Hunks[i]) {
			return false
		}
	}
	return true
}

func hunksEqual(a, b *Hunk) bool {
	if a.OldStart != b.OldStart || len(a.Lines) != len(b.Lines) {
		return false
	}
	for i := range a.Lines {
		if a.Lines[i] != b.Lines[i] {
			return false
		}
	}
	return true
}

// fileSpans materializes the old-file ranges a file diff touches. Whole-file
// creation and deletion touch a sentinel range covering everything so two
// diffs rewriting the same file always conflict.
func fileSpans(fd *FileDiff) []span {
	if fd.IsNew || fd.IsDelete {
		return []span{{start: 0, end: 1 << 30, deletes: fd.IsDelete}}
	}
	spans := make([]span, 0, len(fd.Hunks))
	for _, h := range fd.Hunks {
		s := span{start: h.OldStart, deletes: h.HasDeletions()}
		if h.OldCount > 0 {
			s.end = h.OldStart + h.OldCount - 1
		} else {
			// Pure insertion: a point range at the insertion position.
			s.end = h.OldStart
		}
		spans = append(spans, s)
	}
	return spans
}

func spansOverlap(a, b []span) bool {
	for _, x := range a {
		for _, y := range b {
			if x.start <= y.end && y.start <= x.end {
				return true
			}
		}
	}
	return false
}
