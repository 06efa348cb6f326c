package summarizer

import (
	"fmt"

	"github.com/user/framepump/pkg/ports"
)

// Writer writes formatted summaries to files.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{
		formatter: formatter,
		fs:        fs,
	}
}

// Write formats the summary and writes it to the specified path.
// The file system creates parent directories as needed.
func (w *Writer) Write(path string, summary *Summary) error {
	content, err := w.formatter.Format(summary)
	if err != nil {
		return fmt.Errorf("format summary: %w", err)
	}

	if err := w.fs.WriteFile(path, content); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
