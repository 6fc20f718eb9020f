package fields

// Config carries the empirical extraction thresholds. The defaults are
// load-bearing: downstream consumers pin exact behavior against them, so
// override only with care.
type Config struct {
	// SummaryMinLen/SummaryMaxLen bound accepted summary section lengths.
	SummaryMinLen int
	SummaryMaxLen int
	// MaxSkills caps the deduplicated skills list.
	MaxSkills int
	// MaxExperience caps parsed work-history entries.
	MaxExperience int
	// MaxDescriptionLines caps per-entry description lines.
	MaxDescriptionLines int
	// EducationMaxLen truncates the education free text.
	EducationMaxLen int
	// NameScanRunes and LocationScanRunes bound how much leading text is
	// handed to the entity recognizer for each field.
	NameScanRunes     int
	LocationScanRunes int
	// MaxYearsExperience is the sanity ceiling for years-of-experience.
	MaxYearsExperience int
}

// DefaultConfig returns the canonical thresholds.
func DefaultConfig() Config {
	return Config{
		SummaryMinLen:       50,
		SummaryMaxLen:       500,
		MaxSkills:           20,
		MaxExperience:       5,
		MaxDescriptionLines: 3,
		EducationMaxLen:     300,
		NameScanRunes:       800,
		LocationScanRunes:   1000,
		MaxYearsExperience:  50,
	}
}

// Extractor bundles the individual field extractors behind one configured
// value. The zero value is not usable; construct with New.
type Extractor struct {
	cfg Config
}

// New returns an Extractor with the given thresholds.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// NewDefault returns an Extractor with DefaultConfig thresholds.
func NewDefault() *Extractor {
	return New(DefaultConfig())
}

// Config returns the thresholds the extractor was built with.
func (e *Extractor) Config() Config {
	return e.cfg
}
