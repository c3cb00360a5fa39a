package syllable

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/multierr"

	"sylgen/utils/debug"
)

var (
	// ErrEmptyCategory is returned when a slot has to select a fragment from
	// a category with no entries.
	ErrEmptyCategory = errors.New("empty fragment category")
	// ErrInvalidCount is returned for negative syllable counts.
	ErrInvalidCount = errors.New("invalid syllable count")
)

// slot is one of onset, nucleus or coda with its pickers and probabilities.
type slot struct {
	single            Kind
	singles, clusters picker
	exists, isCluster float64
	mandatory         bool
}

func (s *slot) generate(r *rand.Rand, sb *strings.Builder) error {
	if !s.mandatory && !draw(r, s.exists) {
		return nil
	}
	// cluster probability is only consulted when there are clusters
	if !s.clusters.empty() && draw(r, s.isCluster) {
		sb.WriteString(s.clusters.pick(r).Text)
		return nil
	}
	if s.singles.empty() {
		return fmt.Errorf("%w: %s", ErrEmptyCategory, s.single)
	}
	sb.WriteString(s.singles.pick(r).Text)
	return nil
}

// Generator produces syllables and names. It is immutable after construction
// and safe for concurrent use.
type Generator struct {
	table Table
	probs Probabilities
	slots [3]slot
	src   rand.Source // nil - fresh entropy for every call
}

// seedStream derives second PCG word from the seed.
const seedStream = 0x9e3779b97f4a7c15

// Option modifies generator configuration during construction.
type Option func(*Generator)

// WithTable replaces all fragment categories.
func WithTable(t Table) Option {
	return func(g *Generator) {
		g.table = t.Clone()
	}
}

// WithProbabilities replaces all slot probabilities.
func WithProbabilities(p Probabilities) Option {
	return func(g *Generator) {
		g.probs = p
	}
}

// WithSeed makes generator produce reproducible sequence of results. Calls
// share a single stream, so the sequence is only reproducible when calls are
// not interleaved.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed^seedStream))
}

// WithSource makes generator draw from the supplied source instead of fresh
// entropy. Access to the source is serialized, source already wrapped by
// Builder keeps its lock.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		if src == nil {
			g.src = nil
			return
		}
		g.src = lock(src)
	}
}

// New returns generator using built-in fragments and probabilities unless
// overwritten by options.
func New(opts ...Option) *Generator {
	g := &Generator{
		table: DefaultTable(),
		probs: DefaultProbabilities(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.slots = [3]slot{
		{
			single:    Onsets,
			singles:   newPicker(g.table.Onsets),
			clusters:  newPicker(g.table.OnsetClusters),
			exists:    g.probs.OnsetExists,
			isCluster: g.probs.OnsetIsCluster,
		},
		{
			// NOTE: nucleus has no existence probability, every syllable has one
			single:    Nuclei,
			singles:   newPicker(g.table.Nuclei),
			clusters:  newPicker(g.table.NucleusClusters),
			isCluster: g.probs.NucleusIsCluster,
			mandatory: true,
		},
		{
			single:    Codas,
			singles:   newPicker(g.table.Codas),
			clusters:  newPicker(g.table.CodaClusters),
			exists:    g.probs.CodaExists,
			isCluster: g.probs.CodaIsCluster,
		},
	}
	return g
}

func (g *Generator) newRand() *rand.Rand {
	if g.src != nil {
		return rand.New(g.src)
	}
	return rand.New(entropySource())
}

func (g *Generator) syllable(r *rand.Rand, sb *strings.Builder) error {
	for i := range g.slots {
		if err := g.slots[i].generate(r, sb); err != nil {
			return err
		}
	}
	return nil
}

// Syllable generates single syllable.
func (g *Generator) Syllable() (string, error) {
	var sb strings.Builder
	if err := g.syllable(g.newRand(), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Name generates name by concatenating requested number of independently
// generated syllables. Zero syllables results in empty name.
func (g *Generator) Name(syllables int) (string, error) {
	if syllables < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidCount, syllables)
	}

	r := g.newRand()
	var sb strings.Builder
	for range syllables {
		if err := g.syllable(r, &sb); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// MustSyllable is like Syllable but panics on misconfigured generator.
func (g *Generator) MustSyllable() string {
	s, err := g.Syllable()
	if err != nil {
		panic(err)
	}
	return s
}

// MustName is like Name but panics on error.
func (g *Generator) MustName(syllables int) string {
	s, err := g.Name(syllables)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate reports all empty categories generator may need to select from.
func (g *Generator) Validate() (err error) {
	for i := range g.slots {
		s := &g.slots[i]
		if !s.singles.empty() {
			continue
		}
		if s.mandatory || s.exists > 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrEmptyCategory, s.single))
		}
	}
	return err
}

// Table returns copy of generator fragments.
func (g *Generator) Table() Table {
	return g.table.Clone()
}

func (g *Generator) Probabilities() Probabilities {
	return g.probs
}

// Seeded reports whether generator draws from an injected source.
func (g *Generator) Seeded() bool {
	return g.src != nil
}

func (g *Generator) String() string {
	tw := debug.NewTreeWriter()

	tw.Line(0, "Generator seeded[%t]", g.Seeded())
	tw.Line(1, "Probabilities")
	tw.Line(2, "onset exists: %.2f", g.probs.OnsetExists)
	tw.Line(2, "onset is cluster: %.2f", g.probs.OnsetIsCluster)
	tw.Line(2, "nucleus is cluster: %.2f", g.probs.NucleusIsCluster)
	tw.Line(2, "coda exists: %.2f", g.probs.CodaExists)
	tw.Line(2, "coda is cluster: %.2f", g.probs.CodaIsCluster)
	tw.Line(1, "Fragments")
	for _, k := range Kinds() {
		c := g.table.Get(k)
		items := make([]string, 0, len(c))
		for _, f := range c {
			if w := f.weight(); w > 1 {
				items = append(items, fmt.Sprintf("%s*%d", f.Text, w))
				continue
			}
			items = append(items, f.Text)
		}
		tw.Items(2, k.String(), items)
	}
	return tw.String()
}
