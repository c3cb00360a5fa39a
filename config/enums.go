package config

// Letter case applied to generated names.
// ENUM(none, lower, upper, title)
type LetterCase int

// Specification of requested output format.
// ENUM(text, yaml)
type OutputFmt int
