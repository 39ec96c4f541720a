package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		key  string
		want Category
	}{
		// exact lookup
		{"utm_source", Source},
		{"UTM_Source", Source},
		{"utm_medium", Medium},
		{"utm_campaign", Campaign},
		{"campaign_id", Campaign},
		{"utm_id", Campaign},
		{"utm_term", Term},
		{"utm_content", Content},
		{"emc", Generic},
		{"utm_source_platform", Generic},

		// utm_ catch-all
		{"utm_whatever", Generic},
		{"UTM_ANYTHING", Generic},

		// exact hash keys
		{"fbclid", Hash},
		{"GCLID", Hash},
		{"mc_cid", Hash},
		{"smid", Hash},
		{"ad_id", Hash},
		{"ref_id", Hash}, // would also match the source keyword rule

		// hash prefixes
		{"trk_custom", Hash},
		{"sentry_key", Hash},
		{"hsfp_x", Hash},
		{"oly_something", Hash},

		// keyword patterns
		{"fb_source", Source},
		{"cpc_bid", Medium},
		{"promo_code", Campaign},
		{"site-search", Term},
		{"ad_creative", Content},
		{"source_campaign", Source}, // first listed rule wins

		// generic hints
		{"my_trk", Generic},
		{"xyzclid", Generic},
		{"sessionid", Generic},
		{"visitor", Generic},
		{"aff", Generic},
		{"x_cid", Generic},

		// not tracking
		{"", None},
		{"id", None},
		{"category", None},
		{"color", None},
		{"page", None},
		{"_ga", None},
		{"sourcecode", None},
	}

	for _, tc := range tests {
		got := Classify(tc.key)
		if got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.key, got, tc.want)
		}
	}
}

func TestExplainLevels(t *testing.T) {
	tests := []struct {
		key   string
		level Level
		rule  string
	}{
		{"utm_source", LevelExact, "utm_source"},
		{"utm_nope", LevelUTMPrefix, "utm_"},
		{"fbclid", LevelHashKey, "fbclid"},
		{"vero_other", LevelHashPrefix, "vero_"},
		{"promo_code", LevelKeyword, `(^|[_-])(campaign|cmp|promo|marketing|mk)([_-]|$)`},
		{"abcclid", LevelGenericHint, `clid$`},
		{"color", LevelNone, ""},
	}
	for _, tc := range tests {
		m := Explain(tc.key)
		if m.Level != tc.level {
			t.Errorf("Explain(%q).Level = %s, want %s", tc.key, m.Level, tc.level)
		}
		if m.Rule != tc.rule {
			t.Errorf("Explain(%q).Rule = %q, want %q", tc.key, m.Rule, tc.rule)
		}
		if m.Key != tc.key {
			t.Errorf("Explain(%q).Key = %q", tc.key, m.Key)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if got := Classify("gclid"); got != Hash {
			t.Fatalf("iteration %d: got %s", i, got)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %s", c, got)
		}
	}
	if got, err := ParseCategory(" Source "); err != nil || got != Source {
		t.Errorf("expected case-insensitive parse, got %s, %v", got, err)
	}
	if got, err := ParseCategory("none"); err != nil || got != None {
		t.Errorf("expected none, got %s, %v", got, err)
	}
	if _, err := ParseCategory("bogus"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRulesSnapshotIsCopy(t *testing.T) {
	rs := Rules()
	if len(rs.HashKeys) == 0 || len(rs.Keywords) != 5 || len(rs.GenericHints) == 0 {
		t.Fatalf("unexpected snapshot sizes: %d hash keys, %d keywords, %d hints",
			len(rs.HashKeys), len(rs.Keywords), len(rs.GenericHints))
	}
	rs.HashKeys[0] = "mutated"
	rs.Exact[Source][0] = "mutated"
	if Classify("fbclid") != Hash {
		t.Error("mutating a snapshot changed hash classification")
	}
	if Classify("utm_source") != Source {
		t.Error("mutating a snapshot changed exact classification")
	}
	if rs.UTMPrefix != "utm_" {
		t.Errorf("UTMPrefix = %q", rs.UTMPrefix)
	}
}
