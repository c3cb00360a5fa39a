package generate

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"text/template"

	"github.com/maruel/natural"

	"sylgen/config"
	"sylgen/syllable"
)

// attemptsPerName limits number of tries to find unique name.
const attemptsPerName = 100

// ErrNotEnoughUnique is returned when generator could not produce requested
// number of distinct names, usually because fragment lists are too short.
var ErrNotEnoughUnique = errors.New("unable to produce requested number of unique names")

// namer turns generator output into final names according to configuration.
// It is not safe for concurrent use.
type namer struct {
	gen    *syllable.Generator
	cfg    config.NamesConfig
	rnd    *rand.Rand
	format func(string) string
	tmpl   *template.Template
}

// newNamer prepares namer. Non zero seed makes number of syllables in every
// name reproducible, generator itself is seeded separately.
func newNamer(gen *syllable.Generator, cfg config.NamesConfig, seed uint64) (*namer, error) {
	n := &namer{
		gen:    gen,
		cfg:    cfg,
		format: caser(cfg.Case),
	}
	if seed != 0 {
		n.rnd = rand.New(rand.NewPCG(seed, ^seed))
	} else {
		n.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	tmpl, err := parseTemplate(config.NameTemplateFieldName, cfg.Template, n)
	if err != nil {
		return nil, err
	}
	n.tmpl = tmpl
	return n, nil
}

func (n *namer) name(syllables int) (string, error) {
	s, err := n.gen.Name(syllables)
	if err != nil {
		return "", err
	}
	return n.format(s), nil
}

func (n *namer) syllable() (string, error) {
	s, err := n.gen.Syllable()
	if err != nil {
		return "", err
	}
	return n.format(s), nil
}

func (n *namer) syllables() int {
	count := n.cfg.MinSyllables
	if d := n.cfg.MaxSyllables - n.cfg.MinSyllables; d > 0 {
		count += n.rnd.IntN(d + 1)
	}
	return count
}

// next produces single name, index is 1 based position of the name in output.
func (n *namer) next(index int) (string, error) {
	count := n.syllables()
	name, err := n.name(count)
	if err != nil {
		return "", err
	}

	result, err := expandTemplate(n.tmpl, &Values{
		Context:   string(config.NameTemplateFieldName),
		Name:      name,
		Index:     index,
		Syllables: count,
	})
	if err != nil {
		return "", fmt.Errorf("unable to expand name template: %w", err)
	}
	if n.cfg.Transliterate {
		result = Transliterate(result)
	}
	return result, nil
}

// names produces requested number of names. When uniqueness is requested and
// could not be achieved names collected so far are returned with an error.
func (n *namer) names(ctx context.Context) ([]string, error) {
	result := make([]string, 0, n.cfg.Count)
	seen := make(map[string]struct{}, n.cfg.Count)

	for attempt := 0; len(result) < n.cfg.Count; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if n.cfg.Unique && attempt >= n.cfg.Count*attemptsPerName {
			n.sort(result)
			return result, fmt.Errorf("%w: got %d of %d", ErrNotEnoughUnique, len(result), n.cfg.Count)
		}

		name, err := n.next(len(result) + 1)
		if err != nil {
			return nil, err
		}
		if n.cfg.Unique {
			if _, exists := seen[name]; exists {
				continue
			}
			seen[name] = struct{}{}
		}
		result = append(result, name)
	}
	n.sort(result)
	return result, nil
}

func (n *namer) sort(names []string) {
	if n.cfg.Sort {
		sort.Sort(natural.StringSlice(names))
	}
}
