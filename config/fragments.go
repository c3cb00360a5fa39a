package config

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"

	"sylgen/syllable"
)

// FragmentSpec is a single fragment in configuration. In YAML it is either
// plain scalar (weight 1) or mapping with "text" and "weight" keys.
type FragmentSpec struct {
	Text   string `yaml:"text" validate:"required"`
	Weight uint32 `yaml:"weight,omitempty"`
}

// plainFragment prevents recursion when decoding and encoding mappings.
type plainFragment FragmentSpec

func (f *FragmentSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*f = FragmentSpec{}
		return node.Decode(&f.Text)
	case yaml.MappingNode:
		var p plainFragment
		if err := node.Decode(&p); err != nil {
			return err
		}
		*f = FragmentSpec(p)
		return nil
	default:
		return fmt.Errorf("line %d: fragment must be either string or mapping", node.Line)
	}
}

func (f FragmentSpec) MarshalYAML() (any, error) {
	if f.Weight <= 1 {
		return f.Text, nil
	}
	return plainFragment(f), nil
}

// FragmentList distinguishes nil (keep built-in defaults) from empty list,
// which disables slot or its clusters.
type FragmentList []FragmentSpec

// IsZero keeps explicitly empty lists when configuration is dumped.
func (l FragmentList) IsZero() bool {
	return l == nil
}

// Category converts list to generator fragments.
func (l FragmentList) Category() syllable.Category {
	c := make(syllable.Category, 0, len(l))
	for _, f := range l {
		c = append(c, syllable.NewFragment(f.Text, f.Weight))
	}
	return c
}

type (
	FragmentsConfig struct {
		Onsets          FragmentList `yaml:"onsets,omitempty" validate:"omitempty,dive"`
		OnsetClusters   FragmentList `yaml:"onset_clusters,omitempty" validate:"omitempty,dive"`
		Nuclei          FragmentList `yaml:"nuclei,omitempty" validate:"omitempty,dive"`
		NucleusClusters FragmentList `yaml:"nucleus_clusters,omitempty" validate:"omitempty,dive"`
		Codas           FragmentList `yaml:"codas,omitempty" validate:"omitempty,dive"`
		CodaClusters    FragmentList `yaml:"coda_clusters,omitempty" validate:"omitempty,dive"`
	}

	ProbabilitiesConfig struct {
		OnsetExists      float64 `yaml:"onset_exists" validate:"gte=0,lte=1"`
		OnsetIsCluster   float64 `yaml:"onset_is_cluster" validate:"gte=0,lte=1"`
		NucleusIsCluster float64 `yaml:"nucleus_is_cluster" validate:"gte=0,lte=1"`
		CodaExists       float64 `yaml:"coda_exists" validate:"gte=0,lte=1"`
		CodaIsCluster    float64 `yaml:"coda_is_cluster" validate:"gte=0,lte=1"`
	}

	GeneratorConfig struct {
		Seed          uint64              `yaml:"seed"`
		Probabilities ProbabilitiesConfig `yaml:"probabilities"`
		Fragments     FragmentsConfig     `yaml:"fragments,omitempty"`
	}
)

func (f *FragmentsConfig) lists() []struct {
	kind syllable.Kind
	list FragmentList
} {
	return []struct {
		kind syllable.Kind
		list FragmentList
	}{
		{syllable.Onsets, f.Onsets},
		{syllable.OnsetClusters, f.OnsetClusters},
		{syllable.Nuclei, f.Nuclei},
		{syllable.NucleusClusters, f.NucleusClusters},
		{syllable.Codas, f.Codas},
		{syllable.CodaClusters, f.CodaClusters},
	}
}

func (p ProbabilitiesConfig) Probabilities() syllable.Probabilities {
	return syllable.Probabilities{
		OnsetExists:      p.OnsetExists,
		OnsetIsCluster:   p.OnsetIsCluster,
		NucleusIsCluster: p.NucleusIsCluster,
		CodaExists:       p.CodaExists,
		CodaIsCluster:    p.CodaIsCluster,
	}
}

// Builder prepares generator builder from configuration, fragment lists which
// are not configured keep built-in defaults.
func (conf *GeneratorConfig) Builder() *syllable.Builder {
	b := syllable.NewBuilder().
		WithProbabilities(conf.Probabilities.Probabilities()).
		WithSeed(conf.Seed)
	for _, l := range conf.Fragments.lists() {
		if l.list != nil {
			b.WithCategory(l.kind, l.list.Category())
		}
	}
	return b
}
