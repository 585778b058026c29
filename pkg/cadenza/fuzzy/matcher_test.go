package fuzzy

import "testing"

func TestMatchExactDuplicate(t *testing.T) {
	candidates := []string{"Bohemian Rhapsody", "Hotel California", "Imagine"}

	res := Match("Hotel California", candidates)
	if !res.Found {
		t.Fatal("Expected a match for an exact duplicate")
	}
	if res.Value != "Hotel California" {
		t.Errorf("Expected 'Hotel California', got %q", res.Value)
	}
	if res.Score != 100 {
		t.Errorf("Expected score 100 for exact duplicate, got %d", res.Score)
	}
}

func TestMatchEmptyCandidates(t *testing.T) {
	res := Match("anything", nil)
	if res.Found {
		t.Errorf("Expected not-found for empty candidates, got %+v", res)
	}
	if res.Score != 0 {
		t.Errorf("Expected score 0 on not-found, got %d", res.Score)
	}

	res = Match("anything", []string{}, WithMinScore(0))
	if res.Found {
		t.Errorf("Expected not-found for empty candidate slice, got %+v", res)
	}
}

func TestMatchEmptyQuery(t *testing.T) {
	res := Match("", []string{"The Beatles"})
	if res.Found {
		t.Errorf("Expected not-found for empty query, got %+v", res)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	candidates := []string{"The Beatles", "The Rolling Stones"}

	lower := Match("beatles", candidates)
	upper := Match("BEATLES", candidates)

	if !lower.Found || !upper.Found {
		t.Fatalf("Expected matches for both casings, got %+v and %+v", lower, upper)
	}
	if lower.Value != upper.Value {
		t.Errorf("Matched values differ across casing: %q vs %q", lower.Value, upper.Value)
	}
	if lower.Score != upper.Score {
		t.Errorf("Scores differ across casing: %d vs %d", lower.Score, upper.Score)
	}
}

func TestMatchTypoResolvesGenre(t *testing.T) {
	res := Match("rok", []string{"Rock", "Jazz"})
	if !res.Found {
		t.Fatal("Expected 'rok' to resolve against 'Rock' at the default threshold")
	}
	if res.Value != "Rock" {
		t.Errorf("Expected 'Rock', got %q", res.Value)
	}
}

// The default mode tests only the first shortlist entry against the
// threshold. A lower-ranked entry that would have cleared it is never
// considered; that is the documented contract, exercised here directly on
// the shortlist evaluator with a crafted ranking.
func TestEvaluateShortlistFirstEntryOnly(t *testing.T) {
	short := []string{"qqqqqqqqqq", "shortlisted"}

	weak := partialScore("shortlist", short[0])
	strong := partialScore("shortlist", short[1])
	if weak > DefaultMinScore {
		t.Fatalf("Test setup broken: first entry scores %d, want <= %d", weak, DefaultMinScore)
	}
	if strong <= DefaultMinScore {
		t.Fatalf("Test setup broken: second entry scores %d, want > %d", strong, DefaultMinScore)
	}

	res := evaluateShortlist("shortlist", short, DefaultMinScore, false)
	if res.Found {
		t.Errorf("Expected not-found when only the first entry is tested, got %+v", res)
	}
	if res.Score != 0 {
		t.Errorf("Expected score 0 on not-found, got %d", res.Score)
	}
}

func TestEvaluateShortlistFullScan(t *testing.T) {
	short := []string{"qqqqqqqqqq", "shortlisted"}

	res := evaluateShortlist("shortlist", short, DefaultMinScore, true)
	if !res.Found {
		t.Fatal("Expected full scan to find the second shortlist entry")
	}
	if res.Value != "shortlisted" {
		t.Errorf("Expected 'shortlisted', got %q", res.Value)
	}
}

func TestMatchBelowThreshold(t *testing.T) {
	res := Match("zzzzz", []string{"The Beatles", "Pink Floyd"})
	if res.Found {
		t.Errorf("Expected not-found for a hopeless query, got %+v", res)
	}
}

func TestMatchThresholdOverride(t *testing.T) {
	// A strict threshold rejects what the default accepts.
	res := Match("rok", []string{"Rock"}, WithMinScore(99))
	if res.Found {
		t.Errorf("Expected not-found at threshold 99, got %+v", res)
	}

	res = Match("rok", []string{"Rock"}, WithMinScore(10))
	if !res.Found {
		t.Error("Expected a match at threshold 10")
	}
}

func TestShortlistOrdering(t *testing.T) {
	candidates := []string{"Imagine", "Imagine Dragons", "Radioactive"}
	short := shortlist("imagine", candidates, 3)

	if len(short) != 3 {
		t.Fatalf("Expected shortlist of 3, got %d", len(short))
	}
	// Both Imagine entries contain the query as an exact substring; the
	// stable sort keeps the earlier candidate first.
	if short[0] != "Imagine" {
		t.Errorf("Expected 'Imagine' ranked first, got %q", short[0])
	}
}
