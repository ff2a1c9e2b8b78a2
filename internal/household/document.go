// Package household reads household description files and turns them into
// the core model.
//
// A document lists people, their jobs and spouses by member id, and names
// the two founding spouses and the children of the family:
//
//	members:
//	  - id: ted
//	    first_name: Ted
//	    last_name: Neward
//	    age: 45
//	    job: {title: Gues Lecturer, salary: 1000}
//	    spouse: charlotte
//	family:
//	  spouses: [ted, charlotte]
//	  children: [mike]
//
// YAML and JSON carry the same fields.
package household

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

type (
	Format string

	Document struct {
		Members []MemberSpec `yaml:"members" json:"members"`
		Family  FamilySpec   `yaml:"family" json:"family"`
	}

	MemberSpec struct {
		ID        string   `yaml:"id,omitempty" json:"id,omitempty"`
		FirstName string   `yaml:"first_name" json:"first_name"`
		LastName  string   `yaml:"last_name" json:"last_name"`
		Age       int      `yaml:"age" json:"age"`
		Job       *JobSpec `yaml:"job,omitempty" json:"job,omitempty"`
		Spouse    string   `yaml:"spouse,omitempty" json:"spouse,omitempty"`
	}

	// JobSpec sets exactly one of Hourly or Salary.
	JobSpec struct {
		Title  string   `yaml:"title" json:"title"`
		Hourly *float64 `yaml:"hourly,omitempty" json:"hourly,omitempty"`
		Salary *uint64  `yaml:"salary,omitempty" json:"salary,omitempty"`
	}

	FamilySpec struct {
		Spouses  []string `yaml:"spouses" json:"spouses"`
		Children []string `yaml:"children,omitempty" json:"children,omitempty"`
	}
)

// FormatFromPath picks the document format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Decode parses data in the given format. Unknown fields are rejected so
// typos in a document do not silently drop data.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidDocument, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", ErrInvalidDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &doc, nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read household file: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
