package summarizer

import "gopkg.in/yaml.v3"

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to its serialized form.
	Format(summary *Summary) ([]byte, error)
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) ([]byte, error)

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) ([]byte, error) {
	return f(summary)
}

// YAMLFormatter renders a Summary as a YAML document.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format implements the Formatter interface.
func (f *YAMLFormatter) Format(summary *Summary) ([]byte, error) {
	return yaml.Marshal(summary)
}
