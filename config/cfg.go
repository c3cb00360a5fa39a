package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	NamesConfig struct {
		Count         int        `yaml:"count" validate:"min=1"`
		MinSyllables  int        `yaml:"min_syllables" validate:"min=1"`
		MaxSyllables  int        `yaml:"max_syllables" validate:"gtefield=MinSyllables"`
		Case          LetterCase `yaml:"case" validate:"gte=0"`
		Template      string     `yaml:"template" validate:"required"`
		Unique        bool       `yaml:"unique"`
		Sort          bool       `yaml:"sort"`
		Transliterate bool       `yaml:"transliterate"`
		Format        OutputFmt  `yaml:"format" validate:"gte=0"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Generator GeneratorConfig `yaml:"generator"`
		Names     NamesConfig     `yaml:"names"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, name template is expanded for
	// every generated name, not when configuration is loaded
	NameTemplateFieldName TemplateFieldName = "template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(NameTemplateFieldName)),
)

// checkFragments rejects explicitly empty single fragment lists generator may
// have to select from: nuclei always, onsets and codas when they could appear.
// Cluster lists may be empty, that only disables clusters.
func checkFragments(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	f, p := cfg.Generator.Fragments, cfg.Generator.Probabilities

	for _, c := range []struct {
		list   FragmentList
		name   string
		needed bool
	}{
		{f.Onsets, "Onsets", p.OnsetExists > 0},
		{f.Nuclei, "Nuclei", true},
		{f.Codas, "Codas", p.CodaExists > 0},
	} {
		// nil list keeps built-in defaults
		if c.list == nil || len(c.list) > 0 || !c.needed {
			continue
		}
		sl.ReportError(c.list, "Generator.Fragments."+c.name, c.name, "fragments_required", "")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkFragments)); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
