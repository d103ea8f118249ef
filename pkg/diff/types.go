// Package diff parses, applies, combines, and conflict-checks unified diffs.
// Parsing is tolerant of the malformed output LLMs produce: missing file
// headers, wrong hunk counts, and stray path prefixes are repaired rather
// than rejected.
package diff

// LineKind classifies a hunk line.
type LineKind byte

// Hunk line kinds.
const (
	Context  LineKind = ' '
	Addition LineKind = '+'
	Deletion LineKind = '-'
)

// Line is a single hunk line with its marker stripped.
type Line struct {
	Kind LineKind
	Text string
}

// Hunk is one @@ block. Counts are recomputed from the actual lines during
// parsing; the header values in the source text are not trusted.
type Hunk struct {
	OldStart int
	OldCount int
	NewStart int
	NewCount int
	Lines    []Line
}

// HasDeletions reports whether the hunk removes any old-file lines.
func (h *Hunk) HasDeletions() bool {
	for _, l := range h.Lines {
		if l.Kind == Deletion {
			return true
		}
	}
	return false
}

// ContextLines returns the non-addition lines (context plus deletions) with
// markers stripped. These are the lines expected in the old file at the
// hunk's position.
func (h *Hunk) ContextLines() []string {
	out := make([]string, 0, len(h.Lines))
	for _, l := range h.Lines {
		if l.Kind != Addition {
			out = append(out, l.Text)
		}
	}
	return out
}

// NewLines returns the new-file side of the hunk (context plus additions,
// order preserved).
func (h *Hunk) NewLines() []string {
	out := make([]string, 0, len(h.Lines))
	for _, l := range h.Lines {
		if l.Kind != Deletion {
			out = append(out, l.Text)
		}
	}
	return out
}

// Additions returns only the added lines, order preserved.
func (h *Hunk) Additions() []string {
	var out []string
	for _, l := range h.Lines {
		if l.Kind == Addition {
			out = append(out, l.Text)
		}
	}
	return out
}

// FileDiff is the parsed diff for a single file.
type FileDiff struct {
	OldPath  string
	NewPath  string
	IsNew    bool
	IsDelete bool
	Hunks    []*Hunk
}

// Path returns the destination path, falling back to the old path for
// deletions.
func (f *FileDiff) Path() string {
	if f.IsDelete || f.NewPath == "" {
		return f.OldPath
	}
	return f.NewPath
}

// FileSummary reports per-file change counts, used in aggregation results.
type FileSummary struct {
	Path       string `json:"path"`
	Insertions int    `json:"insertions"`
	Deletions  int    `json:"deletions"`
}

// Summarize computes per-file insertion/deletion counts for a parsed diff.
func Summarize(files []*FileDiff) []FileSummary {
	out := make([]FileSummary, 0, len(files))
	for _, f := range files {
		s := FileSummary{Path: f.Path()}
		for _, h := range f.Hunks {
			for _, l := range h.Lines {
				switch l.Kind {
				case Addition:
					s.Insertions++
				case Deletion:
					s.Deletions++
				}
			}
		}
		out = append(out, s)
	}
	return out
}
