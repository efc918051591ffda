package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"quantlab_backend/internal/config"
)

type yamlNumberParam struct {
	Default float64 `yaml:"default"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
}

type yamlEnumParam struct {
	Default string   `yaml:"default"`
	Values  []string `yaml:"values"`
}

type yamlTutorial struct {
	Name    string                     `yaml:"name"`
	Numbers map[string]yamlNumberParam `yaml:"numbers"`
	Enums   map[string]yamlEnumParam   `yaml:"enums"`
}

type yamlConfig struct {
	Tutorials []yamlTutorial `yaml:"tutorials"`
}

type tutorialConfig struct {
	name    string
	numbers map[string]config.NumberParam
	enums   map[string]config.EnumParam
}

// NewTutorialConfigFromYAML читает декларации параметров туториалов
func NewTutorialConfigFromYAML(path string) ([]config.TutorialConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tutorial config: %w", err)
	}

	var parsed yamlConfig
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse tutorial config: %w", err)
	}

	if len(parsed.Tutorials) == 0 {
		return nil, fmt.Errorf("tutorial config is empty")
	}

	configs := make([]config.TutorialConfig, 0, len(parsed.Tutorials))
	for _, tut := range parsed.Tutorials {
		if tut.Name == "" {
			return nil, fmt.Errorf("tutorial without name in config")
		}

		// Диапазон должен содержать дефолт, иначе это опечатка в конфиге
		for key, p := range tut.Numbers {
			if p.Min > p.Max || p.Default < p.Min || p.Default > p.Max {
				return nil, fmt.Errorf("tutorial %q: bad range for %q", tut.Name, key)
			}
		}

		cfg := &tutorialConfig{
			name:    tut.Name,
			numbers: make(map[string]config.NumberParam, len(tut.Numbers)),
			enums:   make(map[string]config.EnumParam, len(tut.Enums)),
		}
		for key, p := range tut.Numbers {
			cfg.numbers[key] = config.NumberParam(p)
		}
		for key, p := range tut.Enums {
			cfg.enums[key] = config.EnumParam(p)
		}

		configs = append(configs, cfg)
	}

	return configs, nil
}

func (c *tutorialConfig) Name() string {
	return c.name
}

func (c *tutorialConfig) NumberParams() map[string]config.NumberParam {
	return c.numbers
}

func (c *tutorialConfig) EnumParams() map[string]config.EnumParam {
	return c.enums
}
