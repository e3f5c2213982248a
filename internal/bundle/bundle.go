// Package bundle turns a project snapshot into a deliverable set of web
// files. It gates on validation, runs the generators and the SVG
// optimizer, checks every artifact's syntax and only then hands the
// finished file list to an archive sink or a writable directory.
package bundle

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agentic-research/faceplate/internal/svgopt"
)

// ErrFolderUnavailable is returned when folder delivery has no writable
// directory to write into.
var ErrFolderUnavailable = errors.New("folder delivery unavailable")

// IOError wraps a failure of the archive sink or the target filesystem.
type IOError struct {
	Op   string // "archive", "mkdir", "read", "write", "provide"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// File is one bundle entry. Path is slash-separated and relative to the
// bundle root.
type File struct {
	Path string
	Data []byte
}

// Bundle is an ordered file list. Order is generation order and is the
// order files are archived and written in.
type Bundle struct {
	Files []File
	// Optimization is set when the SVG optimizer ran over at least one asset.
	Optimization *svgopt.BatchResult
	// Windows is the number of windows generated.
	Windows int
}

func (b *Bundle) add(path string, data string) {
	b.Files = append(b.Files, File{Path: path, Data: []byte(data)})
}

// Paths returns the bundle's file paths, sorted.
func (b *Bundle) Paths() []string {
	out := make([]string, len(b.Files))
	for i, f := range b.Files {
		out[i] = f.Path
	}
	sort.Strings(out)
	return out
}

// File returns the entry at path.
func (b *Bundle) File(path string) ([]byte, bool) {
	for _, f := range b.Files {
		if f.Path == path {
			return f.Data, true
		}
	}
	return nil, false
}

// Metrics summarizes a delivered bundle.
type Metrics struct {
	FileCount  int `json:"fileCount"`
	TotalBytes int `json:"totalBytes"`
	// ArchiveBytes is the compressed size for archive delivery.
	ArchiveBytes int `json:"archiveBytes,omitempty"`
	Windows      int `json:"windows"`
	// Optimization totals, present when the optimizer ran.
	OriginalSVGBytes  int     `json:"originalSvgBytes,omitempty"`
	OptimizedSVGBytes int     `json:"optimizedSvgBytes,omitempty"`
	SavingsPercent    float64 `json:"savingsPercent,omitempty"`
	Optimized         bool    `json:"optimized"`
}

// Measure computes metrics for b.
func Measure(b *Bundle) Metrics {
	m := Metrics{FileCount: len(b.Files), Windows: b.Windows}
	for _, f := range b.Files {
		m.TotalBytes += len(f.Data)
	}
	if b.Optimization != nil {
		m.Optimized = true
		m.OriginalSVGBytes = b.Optimization.TotalOriginalBytes
		m.OptimizedSVGBytes = b.Optimization.TotalOptimizedBytes
		m.SavingsPercent = b.Optimization.SavingsPercent
	}
	return m
}

// Result is the discriminated outcome of an export. Message is always a
// single human-readable line block.
type Result struct {
	OK       bool     `json:"ok"`
	Message  string   `json:"message"`
	Metrics  *Metrics `json:"metrics,omitempty"`
	Location string   `json:"location,omitempty"`
	// Warnings are validation warnings; they never block an export.
	Warnings []string `json:"warnings,omitempty"`
	// Err is the underlying failure for callers that need errors.As.
	Err error `json:"-"`
}

func failed(err error) Result {
	return Result{OK: false, Message: err.Error(), Err: err}
}
