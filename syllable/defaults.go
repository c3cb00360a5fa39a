package syllable

var (
	defaultOnsets = []string{
		"b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n",
		"p", "q", "r", "s", "t", "v", "w", "x", "y", "z",
	}
	defaultOnsetClusters = []string{
		"ch", "sh", "bl", "cl", "fl", "pl", "gl", "br", "cr",
		"dr", "pr", "tr", "th", "sc", "sp", "st", "sl", "spr",
	}
	defaultNuclei          = []string{"a", "e", "i", "o", "u"}
	defaultNucleusClusters = []string{"ae", "ea", "ai", "ia", "au", "ay", "ie", "oi", "ou", "ey"}
	defaultCodas           = []string{
		"b", "c", "d", "f", "g", "h", "k", "l", "m",
		"n", "p", "r", "s", "t", "v", "x", "y",
	}
	defaultCodaClusters = []string{"ck", "st", "sc", "ng", "nk", "rsh", "lsh", "rk", "rst", "nct", "xt"}
)

// DefaultTable returns fresh copy of built-in fragment sets.
func DefaultTable() Table {
	return Table{
		Onsets:          FromStrings(defaultOnsets),
		OnsetClusters:   FromStrings(defaultOnsetClusters),
		Nuclei:          FromStrings(defaultNuclei),
		NucleusClusters: FromStrings(defaultNucleusClusters),
		Codas:           FromStrings(defaultCodas),
		CodaClusters:    FromStrings(defaultCodaClusters),
	}
}

// DefaultProbabilities returns built-in slot probabilities.
func DefaultProbabilities() Probabilities {
	return Probabilities{
		OnsetExists:      0.95,
		OnsetIsCluster:   0.25,
		NucleusIsCluster: 0.25,
		CodaExists:       0.10,
		CodaIsCluster:    0.25,
	}
}
