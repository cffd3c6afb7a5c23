package reference

import (
	"context"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// yamlFile is the on-disk layout of a YAML reference file
type yamlFile struct {
	Races []struct {
		Name  string `yaml:"name"`
		Size  string `yaml:"size"`
		Speed int    `yaml:"speed"`
		Bonus string `yaml:"bonus"`
	} `yaml:"races"`
	Occupations []struct {
		Name       string `yaml:"name"`
		HPPerLevel int    `yaml:"hp_per_level"`
	} `yaml:"occupations"`
}

// YAMLSource reads races and occupations from a single YAML document
type YAMLSource struct {
	Path string
}

var _ Source = (*YAMLSource)(nil)

// Name identifies the source
func (s *YAMLSource) Name() string {
	return "yaml"
}

// Load reads and parses the file
func (s *YAMLSource) Load(ctx context.Context) (*Tables, error) {
	if s.Path == "" {
		return nil, errors.InvalidArgument("yaml source needs a path")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "reference load canceled")
	}

	f, err := os.Open(s.Path) // #nosec G304 -- path comes from operator config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "reference file %s not found", s.Path)
		}
		return nil, errors.Wrapf(err, "failed to open reference file %s", s.Path)
	}
	defer func() { _ = f.Close() }()

	return ParseYAML(f, s.Path)
}

// ParseYAML decodes a reference document. Unknown keys are rejected.
func ParseYAML(r io.Reader, file string) (*Tables, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlFile
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", file)
	}

	races := make([]chargen.Race, 0, len(doc.Races))
	for _, r := range doc.Races {
		kind, err := chargen.ParseBonusKind(r.Bonus)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: race %s", file, r.Name)
		}
		races = append(races, chargen.Race{
			Name:      r.Name,
			Size:      r.Size,
			Speed:     r.Speed,
			BonusKind: kind,
		})
	}

	occupations := make([]chargen.Occupation, 0, len(doc.Occupations))
	for _, o := range doc.Occupations {
		occupations = append(occupations, chargen.Occupation{
			Name:       o.Name,
			HPPerLevel: o.HPPerLevel,
		})
	}

	return NewTables("yaml", races, occupations)
}
