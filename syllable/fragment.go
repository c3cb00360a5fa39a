// Package syllable composes pronounceable pseudo-words out of categorized
// phonetic fragments.
//
// A syllable is built from three slots: optional onset, mandatory nucleus and
// optional coda. Every slot draws either a single fragment or, with its own
// probability, a cluster fragment. Names are concatenations of independently
// generated syllables.
package syllable

import "slices"

// Fragment is one catalog entry usable for a given slot.
type Fragment struct {
	Text   string
	Weight uint32
}

// NewFragment returns fragment with requested weight, zero weight is treated
// as 1.
func NewFragment(text string, weight uint32) Fragment {
	if weight == 0 {
		weight = 1
	}
	return Fragment{Text: text, Weight: weight}
}

func (f Fragment) weight() uint64 {
	if f.Weight == 0 {
		return 1
	}
	return uint64(f.Weight)
}

// Category is an ordered list of fragments, duplicates are allowed.
type Category []Fragment

// FromStrings converts plain strings into category of fragments with weight 1
// preserving order.
func FromStrings(list []string) Category {
	c := make(Category, 0, len(list))
	for _, s := range list {
		c = append(c, NewFragment(s, 1))
	}
	return c
}

func (c Category) Len() int {
	return len(c)
}

// Texts returns fragment texts in category order.
func (c Category) Texts() []string {
	out := make([]string, 0, len(c))
	for _, f := range c {
		out = append(out, f.Text)
	}
	return out
}

func (c Category) Contains(text string) bool {
	return slices.ContainsFunc(c, func(f Fragment) bool { return f.Text == text })
}

// Kind identifies one of the six fragment categories.
type Kind int

const (
	Onsets Kind = iota
	OnsetClusters
	Nuclei
	NucleusClusters
	Codas
	CodaClusters
)

var kindNames = [...]string{
	Onsets:          "onsets",
	OnsetClusters:   "onset_clusters",
	Nuclei:          "nuclei",
	NucleusClusters: "nucleus_clusters",
	Codas:           "codas",
	CodaClusters:    "coda_clusters",
}

// Kinds lists all categories in slot order.
func Kinds() []Kind {
	return []Kind{Onsets, OnsetClusters, Nuclei, NucleusClusters, Codas, CodaClusters}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Table is a complete set of fragment categories.
type Table struct {
	Onsets          Category
	OnsetClusters   Category
	Nuclei          Category
	NucleusClusters Category
	Codas           Category
	CodaClusters    Category
}

// Get returns category of requested kind.
func (t *Table) Get(k Kind) Category {
	if p := t.slot(k); p != nil {
		return *p
	}
	return nil
}

func (t *Table) set(k Kind, c Category) {
	if p := t.slot(k); p != nil {
		*p = slices.Clone(c)
	}
}

func (t *Table) slot(k Kind) *Category {
	switch k {
	case Onsets:
		return &t.Onsets
	case OnsetClusters:
		return &t.OnsetClusters
	case Nuclei:
		return &t.Nuclei
	case NucleusClusters:
		return &t.NucleusClusters
	case Codas:
		return &t.Codas
	case CodaClusters:
		return &t.CodaClusters
	}
	return nil
}

// Clone makes a deep copy so callers could not modify table owned by generator.
func (t Table) Clone() Table {
	return Table{
		Onsets:          slices.Clone(t.Onsets),
		OnsetClusters:   slices.Clone(t.OnsetClusters),
		Nuclei:          slices.Clone(t.Nuclei),
		NucleusClusters: slices.Clone(t.NucleusClusters),
		Codas:           slices.Clone(t.Codas),
		CodaClusters:    slices.Clone(t.CodaClusters),
	}
}

// Probabilities controls optional slots and cluster selection. Values are not
// validated: anything <= 0 never succeeds, anything >= 1 always does.
type Probabilities struct {
	OnsetExists      float64
	OnsetIsCluster   float64
	NucleusIsCluster float64
	CodaExists       float64
	CodaIsCluster    float64
}
