package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voltquote/voltquote/internal/common"
	"github.com/voltquote/voltquote/internal/model"
)

// patternFile is the on-disk shape of a user pattern file.
type patternFile struct {
	Patterns []model.Pattern `yaml:"patterns"`
}

// LoadPatternFile reads additional patterns from a YAML file. Entries are
// validated here so a bad file fails startup instead of degrading ranking
// silently later.
func LoadPatternFile(path string) ([]model.Pattern, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user config
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file %s: %w", path, err)
	}

	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file %s: %w", path, err)
	}

	for i := range file.Patterns {
		if err := file.Patterns[i].Validate(); err != nil {
			return nil, fmt.Errorf("pattern file %s: %w", path, err)
		}
	}

	return file.Patterns, nil
}

// LoadPatterns returns the built-in patterns, extended by the user pattern
// file when path is non-empty.
func LoadPatterns(path string) ([]model.Pattern, error) {
	patterns := DefaultPatterns()
	if path == "" {
		return patterns, nil
	}

	extra, err := LoadPatternFile(path)
	if err != nil {
		return nil, err
	}
	common.LogInfo("loaded user patterns", common.Fields{"path": path, "count": len(extra)})

	return append(patterns, extra...), nil
}
