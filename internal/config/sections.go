package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Section - секция (группа) и файл её расписания.
type Section struct {
	Name string `yaml:"name" validate:"required"`
	File string `yaml:"file" validate:"required"`
}

// SectionsFile описывает sections.yaml.
//
//	default: BSE-1B
//	sections:
//	  - name: BSE-1B
//	    file: timetable1b.csv
type SectionsFile struct {
	Default  string    `yaml:"default"`
	Sections []Section `yaml:"sections"`
}

// LoadSections читает и проверяет файл секций.
// Относительные пути файлов считаются от каталога самого YAML.
func LoadSections(path string) (*SectionsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var sf SectionsFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	sf.normalize(filepath.Dir(path))
	if err := sf.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &sf, nil
}

func (sf *SectionsFile) normalize(base string) {
	for i := range sf.Sections {
		s := &sf.Sections[i]
		s.Name = strings.TrimSpace(s.Name)
		s.File = strings.TrimSpace(s.File)
		if s.File != "" && !filepath.IsAbs(s.File) {
			s.File = filepath.Clean(filepath.Join(base, s.File))
		}
	}
	sf.Default = strings.TrimSpace(sf.Default)
	if sf.Default == "" && len(sf.Sections) > 0 {
		sf.Default = sf.Sections[0].Name
	}
}

func (sf *SectionsFile) validate() error {
	if len(sf.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	seen := make(map[string]bool)
	for i, s := range sf.Sections {
		if s.Name == "" {
			return fmt.Errorf("sections[%d]: name is required", i)
		}
		if s.File == "" {
			return fmt.Errorf("sections[%d]: file is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("sections[%d]: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = true
	}
	if !seen[sf.Default] {
		return fmt.Errorf("default section %q is not declared", sf.Default)
	}
	return nil
}
