package reports

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes the report as a YAML document preceded by the disclaimer.
func WriteYAML(w io.Writer, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# Health summary ")
	sb.WriteString(r.ID)
	sb.WriteString("\n# ")
	sb.WriteString(Disclaimer)
	sb.WriteString("\n\n")
	sb.Write(data)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// SaveToYAML writes the report to path.
func SaveToYAML(r Report, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WriteYAML(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LoadFromYAML reads a report previously written by SaveToYAML.
func LoadFromYAML(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("reading report: %w", err)
	}

	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("parsing report: %w", err)
	}
	if r.ID == "" {
		return Report{}, fmt.Errorf("parsing report: missing id")
	}
	return r, nil
}
