package decoy

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/jcadam/decoy/pkg/classify"
)

// constIntN always draws the same index.
func constIntN(v int) func(int) int {
	return func(n int) int { return v % n }
}

func TestPhraseCategoriesDrawFromTheirList(t *testing.T) {
	r := New(Options{})
	for c, list := range phraseLists {
		for i := 0; i < 50; i++ {
			got := r.For(c, "original-value")
			if !slices.Contains(list, got) {
				t.Fatalf("For(%s) = %q, not in category list", c, got)
			}
		}
	}
}

func TestPhraseIgnoresOriginal(t *testing.T) {
	r := New(Options{AllowRepeats: true, IntN: constIntN(3)})
	a := r.For(classify.Source, "facebook")
	b := r.For(classify.Source, "twitter")
	if a != b || a != sources[3] {
		t.Errorf("expected %q for both draws, got %q and %q", sources[3], a, b)
	}
}

func TestAntiRepetition(t *testing.T) {
	r := New(Options{IntN: constIntN(0)})
	prev := ""
	for i := 0; i < 10; i++ {
		got := r.For(classify.Medium, "")
		if got == prev {
			t.Fatalf("draw %d repeated %q", i, got)
		}
		prev = got
	}
}

func TestAllowRepeats(t *testing.T) {
	r := New(Options{AllowRepeats: true, IntN: constIntN(0)})
	if a, b := r.For(classify.Term, ""), r.For(classify.Term, ""); a != b {
		t.Errorf("expected repeated draw, got %q then %q", a, b)
	}
}

func TestAntiRepetitionIsPerCategory(t *testing.T) {
	r := New(Options{IntN: constIntN(0)})
	if got := r.For(classify.Source, ""); got != sources[0] {
		t.Fatalf("first source draw = %q", got)
	}
	// A different category has its own slot, so index 0 is still allowed.
	if got := r.For(classify.Campaign, ""); got != campaigns[0] {
		t.Errorf("first campaign draw = %q, want %q", got, campaigns[0])
	}
}

func TestNoneReturnsOriginal(t *testing.T) {
	if got := For(classify.None, "keep-me"); got != "keep-me" {
		t.Errorf("For(None) = %q", got)
	}
}

func TestHashTokenWithoutSeparators(t *testing.T) {
	tests := []struct {
		original  string
		words     int
		suffixLen int
	}{
		{"abc123", 2, 4},
		{"", 2, 4},
		{strings.Repeat("a", 40), 2, 6},
		{strings.Repeat("b", 64), 4, 10},
		{strings.Repeat("c", 200), 4, 10},
	}
	for _, tc := range tests {
		got := For(classify.Hash, tc.original)
		if got == tc.original {
			t.Fatalf("hash decoy equals original %q", tc.original)
		}
		if !IsAlreadyRandomized(got) {
			t.Errorf("hash decoy %q not recognized as randomized", got)
		}
		if !strings.Contains(got, "-") {
			t.Errorf("hash decoy %q has no hyphenated phrases", got)
		}
		suffix := got[strings.LastIndex(got, "-")+1:]
		if len(suffix) != tc.suffixLen {
			t.Errorf("For(hash, len %d) suffix %q has length %d, want %d", len(tc.original), suffix, len(suffix), tc.suffixLen)
		}
		// Each bank phrase has at least one hyphen, so the token has at least
		// words+1 hyphen-separated parts before the suffix.
		if parts := strings.Split(got, "-"); len(parts) < tc.words+1 {
			t.Errorf("hash decoy %q has too few parts", got)
		}
	}
}

func TestHashTokenCaseMimicry(t *testing.T) {
	tests := []struct {
		original string
		upper    bool
	}{
		{"ABCDEFGHIJ", true},
		{"ABC123DEF", true},
		{"abcdefghij", false},
		{"AbCdEfGhIj", false},
		{"1234567890", false},
	}
	for _, tc := range tests {
		got := For(classify.Hash, tc.original)
		suffix := got[strings.LastIndex(got, "-")+1:]
		if tc.upper && suffix != strings.ToUpper(suffix) {
			t.Errorf("For(hash, %q) suffix %q, want upper case", tc.original, suffix)
		}
		if !tc.upper && suffix != strings.ToLower(suffix) {
			t.Errorf("For(hash, %q) suffix %q, want lower case", tc.original, suffix)
		}
	}
}

func TestHashTokenPreservesSeparator(t *testing.T) {
	tests := []struct {
		original  string
		sep       string
		parts     int
		suffixLen int
	}{
		{"abc_def_ghijklmnop", "_", 3, 10},
		{"aa_b", "_", 3, 6},
		{"x_" + strings.Repeat("z", 100), "_", 3, 32},
		{"one_two_three_four_five", "_", 5, 6},
	}
	for _, tc := range tests {
		got := For(classify.Hash, tc.original)
		parts := strings.Split(got, tc.sep)
		if len(parts) != tc.parts {
			t.Errorf("For(hash, %q) = %q: got %d segments, want %d", tc.original, got, len(parts), tc.parts)
			continue
		}
		for _, p := range parts[:len(parts)-1] {
			if !slices.Contains(wordBank, p) {
				t.Errorf("segment %q of %q is not a word-bank phrase", p, got)
			}
		}
		if n := len(parts[len(parts)-1]); n != tc.suffixLen {
			t.Errorf("For(hash, %q) last segment length %d, want %d", tc.original, n, tc.suffixLen)
		}
		if !IsAlreadyRandomized(got) {
			t.Errorf("segmented decoy %q not recognized", got)
		}
	}
}

func TestHashTokenHyphenSeparated(t *testing.T) {
	got := For(classify.Hash, "nytcore-ios-share")
	if !IsAlreadyRandomized(got) {
		t.Errorf("hyphenated decoy %q not recognized", got)
	}
	if got == "nytcore-ios-share" {
		t.Error("decoy equals original")
	}
}

func TestIsAlreadyRandomized(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"mystery-meat", true},
		{"the-utm-rebellion", true},
		{"mystery-meat-rubber-duck", true},
		{"mystery-meat-rubber-duck-x1y2z3", true},
		{"cookie-confetti-botnet-ballet-ABC123", true},
		{"mystery-meat_rubber-duck_a1b2c3", true},
		{"mystery-meat-abc123", false},
		{"ad-tech-exorcism", false}, // filler alone is not a category phrase
		{"facebook", false},
		{"abc123", false},
		{"", false},
		{"MYSTERY-MEAT-RUBBER-DUCK", false},
		{"mystery-meat-rubber-duck-", false},
		{"mystery-meat_rubber-duck-x1", false},
	}
	for _, tc := range tests {
		if got := IsAlreadyRandomized(tc.value); got != tc.want {
			t.Errorf("IsAlreadyRandomized(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestEveryPhraseIsRecognized(t *testing.T) {
	for _, list := range phraseLists {
		for _, p := range list {
			if !IsAlreadyRandomized(p) {
				t.Errorf("phrase %q not recognized", p)
			}
		}
	}
}

func TestWordBankIsDeduplicatedUnion(t *testing.T) {
	seen := make(map[string]bool)
	for _, w := range wordBank {
		if seen[w] {
			t.Fatalf("duplicate word-bank entry %q", w)
		}
		seen[w] = true
	}
	for _, list := range append([][]string{fillers}, sources, mediums, campaigns, terms, contents, generics) {
		for _, w := range list {
			if !seen[w] {
				t.Errorf("word bank missing %q", w)
			}
		}
	}
}

func TestPhrasesReturnsCopy(t *testing.T) {
	p := Phrases(classify.Source)
	p[0] = "mutated"
	if sources[0] == "mutated" {
		t.Fatal("Phrases exposed the backing slice")
	}
	if Phrases(classify.None) != nil {
		t.Error("expected nil phrases for None")
	}
	if len(Phrases(classify.Hash)) != len(wordBank) {
		t.Error("expected word bank for Hash")
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for _, c := range classify.Categories {
					v := For(c, "abc123")
					if !IsAlreadyRandomized(v) {
						t.Errorf("concurrent decoy %q not recognized", v)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
