package fuzzy

import (
	"sort"
	"strings"

	fuzzywuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/cadenza-ai/cadenza/pkg/logger"
)

// DefaultMinScore is the similarity threshold a candidate must clear before
// it is reported as a match.
const DefaultMinScore = 65

// shortlistSize is the number of top-ranked candidates kept for inspection.
const shortlistSize = 3

// Result is the outcome of a fuzzy lookup. When Found is false, Value is
// empty and Score is always 0.
type Result struct {
	Value string
	Score int
	Found bool
}

// Config controls matcher behavior.
type Config struct {
	MinScore int
	FullScan bool
}

type Option func(*Config)

// WithMinScore overrides the similarity threshold.
func WithMinScore(score int) Option {
	return func(c *Config) {
		c.MinScore = score
	}
}

// WithFullScan makes the matcher test every shortlisted candidate against
// the threshold and keep the best, instead of only the top-ranked one.
//
// The default behavior inspects only the first shortlist entry: if it fails
// the threshold the lookup reports not-found without considering the rest.
// Callers that want the best match above the threshold regardless of rank
// opt in explicitly here.
func WithFullScan() Option {
	return func(c *Config) {
		c.FullScan = true
	}
}

func defaultConfig() *Config {
	return &Config{MinScore: DefaultMinScore}
}

// Match finds the candidate most similar to query using partial-ratio
// scoring (case-insensitive, 0-100). It shortlists the top candidates,
// evaluates them per the configured scan mode, and reports not-found when
// nothing clears the threshold. An empty query or empty candidate list is a
// normal not-found outcome, not an error.
func Match(query string, candidates []string, opts ...Option) (res Result) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	// The scoring backend must never take the caller down with it; degrade
	// to not-found and leave a trace instead.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("fuzzy match for %q failed: %v", query, r)
			res = Result{}
		}
	}()

	if query == "" || len(candidates) == 0 {
		return Result{}
	}

	short := shortlist(query, candidates, shortlistSize)
	return evaluateShortlist(query, short, cfg.MinScore, cfg.FullScan)
}

// evaluateShortlist applies the threshold rule to an already-ranked
// shortlist. In the default mode only the first entry is tested; in full-scan
// mode the best entry above the threshold wins.
func evaluateShortlist(query string, short []string, minScore int, fullScan bool) Result {
	if len(short) == 0 {
		return Result{}
	}

	if !fullScan {
		score := partialScore(query, short[0])
		if score > minScore && score > 0 {
			return Result{Value: short[0], Score: score, Found: true}
		}
		return Result{}
	}

	best := Result{}
	for _, candidate := range short {
		score := partialScore(query, candidate)
		if score > minScore && score > best.Score {
			best = Result{Value: candidate, Score: score, Found: true}
		}
	}
	return best
}

// shortlist ranks candidates by partial-ratio similarity to query and
// returns the top n in descending score order. Ties keep candidate order,
// so duplicates and equal scorers resolve deterministically.
func shortlist(query string, candidates []string, n int) []string {
	type scored struct {
		value string
		score int
	}

	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{value: c, score: partialScore(query, c)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	short := make([]string, n)
	for i := 0; i < n; i++ {
		short[i] = ranked[i].value
	}
	return short
}

// partialScore computes the case-insensitive partial-ratio similarity of two
// strings on the 0-100 scale.
func partialScore(a, b string) int {
	return fuzzywuzzy.PartialRatio(strings.ToLower(a), strings.ToLower(b))
}
