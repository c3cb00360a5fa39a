package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"sylgen/syllable"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return configPath
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if got := cfg.Generator.Probabilities.Probabilities(); got != syllable.DefaultProbabilities() {
		t.Errorf("Probabilities = %+v, want %+v", got, syllable.DefaultProbabilities())
	}
	if cfg.Generator.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Generator.Seed)
	}
	if cfg.Names.Template != "{{ .Name }}" {
		t.Errorf("Template = %q, must not be expanded at load time", cfg.Names.Template)
	}
	if cfg.Names.Case != LetterCaseTitle {
		t.Errorf("Case = %v, want %v", cfg.Names.Case, LetterCaseTitle)
	}
	if cfg.Names.Format != OutputFmtText {
		t.Errorf("Format = %v, want %v", cfg.Names.Format, OutputFmtText)
	}
	if cfg.Names.MinSyllables > cfg.Names.MaxSyllables {
		t.Errorf("MinSyllables %d > MaxSyllables %d", cfg.Names.MinSyllables, cfg.Names.MaxSyllables)
	}
	if cfg.Generator.Fragments.Onsets != nil {
		t.Error("Default configuration must not override fragments")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	configPath := writeConfig(t, `version: 1
generator:
  seed: 42
  probabilities:
    onset_exists: 1.0
    coda_exists: 0.5
  fragments:
    onsets: [k, {text: r, weight: 3}]
    coda_clusters: []
names:
  count: 5
  min_syllables: 1
  max_syllables: 4
  case: UPPER
  format: yaml
  unique: true
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Generator.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Generator.Seed)
	}
	if cfg.Generator.Probabilities.OnsetExists != 1.0 {
		t.Errorf("OnsetExists = %f, want 1.0", cfg.Generator.Probabilities.OnsetExists)
	}
	// not mentioned in file - default kept
	if cfg.Generator.Probabilities.OnsetIsCluster != 0.25 {
		t.Errorf("OnsetIsCluster = %f, want 0.25", cfg.Generator.Probabilities.OnsetIsCluster)
	}
	if cfg.Names.Count != 5 || cfg.Names.MaxSyllables != 4 || !cfg.Names.Unique {
		t.Errorf("Names = %+v", cfg.Names)
	}
	if cfg.Names.Case != LetterCaseUpper {
		t.Errorf("Case = %v, want %v", cfg.Names.Case, LetterCaseUpper)
	}
	if cfg.Names.Format != OutputFmtYaml {
		t.Errorf("Format = %v, want %v", cfg.Names.Format, OutputFmtYaml)
	}

	onsets := cfg.Generator.Fragments.Onsets
	if len(onsets) != 2 {
		t.Fatalf("Onsets = %v, want 2 entries", onsets)
	}
	if onsets[0] != (FragmentSpec{Text: "k"}) || onsets[1] != (FragmentSpec{Text: "r", Weight: 3}) {
		t.Errorf("Onsets = %+v", onsets)
	}
	if cc := cfg.Generator.Fragments.CodaClusters; cc == nil || len(cc) != 0 {
		t.Errorf("CodaClusters = %v, want explicit empty list", cc)
	}
	if cfg.Generator.Fragments.Nuclei != nil {
		t.Error("Nuclei must keep defaults")
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `version: 1
names:
  count: 3
  invalid indent
`)
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	configPath := writeConfig(t, `version: 1
unknown_field: value
`)
	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"version", "version: 2\n"},
		{"probability above one", "version: 1\ngenerator:\n  probabilities:\n    onset_exists: 1.5\n"},
		{"negative probability", "version: 1\ngenerator:\n  probabilities:\n    coda_is_cluster: -0.1\n"},
		{"syllable range", "version: 1\nnames:\n  min_syllables: 3\n  max_syllables: 2\n"},
		{"zero count", "version: 1\nnames:\n  count: 0\n"},
		{"empty fragment text", "version: 1\ngenerator:\n  fragments:\n    codas: [\"\"]\n"},
		{"unknown case", "version: 1\nnames:\n  case: camel\n"},
		{"empty nuclei", "version: 1\ngenerator:\n  fragments:\n    nuclei: []\n"},
		{"empty nuclei and clusters", "version: 1\ngenerator:\n  probabilities:\n    nucleus_is_cluster: 1\n  fragments:\n    nuclei: []\n    nucleus_clusters: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadConfiguration_EmptySingles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{"nuclei with clusters always chosen", `version: 1
generator:
  probabilities:
    nucleus_is_cluster: 1
  fragments:
    nuclei: []
`, false},
		{"onsets", "version: 1\ngenerator:\n  fragments:\n    onsets: []\n", false},
		{"onsets never present", `version: 1
generator:
  probabilities:
    onset_exists: 0
  fragments:
    onsets: []
`, true},
		{"codas", "version: 1\ngenerator:\n  fragments:\n    codas: []\n", false},
		{"codas never present", `version: 1
generator:
  probabilities:
    coda_exists: 0
  fragments:
    codas: []
`, true},
		{"clusters", "version: 1\ngenerator:\n  fragments:\n    onset_clusters: []\n    nucleus_clusters: []\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfiguration(writeConfig(t, tt.content))
			if !tt.valid {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfiguration() error = %v", err)
			}
			// accepted configuration must give usable generator
			if err := cfg.Generator.Builder().Build().Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration(writeConfig(t, `version: 1
generator:
  fragments:
    onsets: [k, {text: r, weight: 3}]
    onset_clusters: []
`))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"onset_clusters: []", "weight: 3", "case: title", "format: text"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "nuclei") {
		t.Errorf("Dump() must omit fragments which keep defaults:\n%s", out)
	}

	// Verify we can load it back
	cfg2, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Generator.Fragments.OnsetClusters == nil || len(cfg2.Generator.Fragments.OnsetClusters) != 0 {
		t.Error("explicitly empty list lost after dump/load")
	}
	if len(cfg2.Generator.Fragments.Onsets) != 2 {
		t.Errorf("Onsets after dump/load = %v", cfg2.Generator.Fragments.Onsets)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error (errors.Unwrap non-nil), got bare error: %v", err)
	}
}
