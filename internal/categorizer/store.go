package categorizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rulesFile is the YAML shape of a user rule file:
//
//	rules:
//	  - category: Подписки
//	    keywords: [NETFLIX, SPOTIFY]
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads user-defined category rules from a YAML file. The file
// order is preserved as the evaluation order. A missing file is not an
// error; it simply yields no extra rules.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Debug("Category rules file not found, using built-in rules only")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading category rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing category rules file: %w", err)
	}

	log.WithField("count", len(file.Rules)).Debug("Loaded user category rules")
	return file.Rules, nil
}

// NewFromFile creates a Categorizer whose rule list starts with the rules
// loaded from path, followed by the built-in set.
func NewFromFile(path string) (*Categorizer, error) {
	rules, err := LoadRules(path)
	if err != nil {
		return nil, err
	}
	return NewWithRules(rules), nil
}
