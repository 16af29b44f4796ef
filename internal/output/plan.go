package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// PlanDocument is the printable form of a file plan.
type PlanDocument struct {
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Structure string     `json:"structure,omitempty"`
	Language  string     `json:"language"`
	Root      string     `json:"root"`
	Dir       string     `json:"dir"`
	Files     []PlanFile `json:"files"`
}

// PlanFile is one planned file.
type PlanFile struct {
	Path     string `json:"path"`
	Artifact string `json:"artifact"`
	Status   string `json:"status,omitempty"`
	Content  string `json:"content,omitempty"`
}

// WritePlan writes doc to w in the given format.
func WritePlan(w io.Writer, doc PlanDocument, format Format) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling plan to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling plan to YAML: %w", err)
		}
		_, err = w.Write(data)
		return err

	case FormatTable:
		t := NewTable("PATH", "ARTIFACT", "STATUS")
		for _, f := range doc.Files {
			t.Row(f.Path, f.Artifact, f.Status)
		}
		_, err := fmt.Fprintln(w, t.String())
		return err

	case FormatText:
		for _, f := range doc.Files {
			status := f.Status
			if status == "" {
				status = StatusPlanned
			}
			if _, err := fmt.Fprintln(w, FormatFileLine(f.Path, status)); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
