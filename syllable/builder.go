package syllable

import "math/rand/v2"

// Builder assembles generator with custom fragments. Anything not overridden
// comes from built-in defaults. No validation is performed, empty categories
// are reported when generator has to select from them.
type Builder struct {
	table Table
	probs Probabilities
	seed  uint64
	src   rand.Source
}

func NewBuilder() *Builder {
	return &Builder{
		table: DefaultTable(),
		probs: DefaultProbabilities(),
	}
}

func (b *Builder) WithOnsets(list []string) *Builder {
	return b.WithCategory(Onsets, FromStrings(list))
}

func (b *Builder) WithNuclei(list []string) *Builder {
	return b.WithCategory(Nuclei, FromStrings(list))
}

func (b *Builder) WithCodas(list []string) *Builder {
	return b.WithCategory(Codas, FromStrings(list))
}

// Cluster overrides are not necessary for most callers, defaults are usually
// good enough.

func (b *Builder) WithOnsetClusters(list []string) *Builder {
	return b.WithCategory(OnsetClusters, FromStrings(list))
}

func (b *Builder) WithNucleusClusters(list []string) *Builder {
	return b.WithCategory(NucleusClusters, FromStrings(list))
}

func (b *Builder) WithCodaClusters(list []string) *Builder {
	return b.WithCategory(CodaClusters, FromStrings(list))
}

// WithCategory replaces category of any kind, fragments may carry weights.
func (b *Builder) WithCategory(k Kind, c Category) *Builder {
	b.table.set(k, c)
	return b
}

func (b *Builder) WithProbabilities(p Probabilities) *Builder {
	b.probs = p
	return b
}

// WithSeed makes built generator reproducible, seed 0 keeps fresh entropy for
// every call.
func (b *Builder) WithSeed(seed uint64) *Builder {
	b.seed, b.src = seed, nil
	return b
}

// WithSource makes built generator draw from src. Generators built from the
// same builder share it together with its lock.
func (b *Builder) WithSource(src rand.Source) *Builder {
	b.seed, b.src = 0, nil
	if src != nil {
		b.src = lock(src)
	}
	return b
}

// Build creates generator, builder could be reused afterwards.
func (b *Builder) Build() *Generator {
	rnd := WithSource(b.src)
	if b.seed != 0 {
		rnd = WithSeed(b.seed)
	}
	return New(
		WithTable(b.table),
		WithProbabilities(b.probs),
		rnd,
	)
}
