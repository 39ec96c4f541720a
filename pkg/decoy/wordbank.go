package decoy

import (
	"fmt"

	"github.com/jcadam/decoy/pkg/classify"
)

var sources = []string{
	"definitely-not-facebook", "mystery-meat", "your-moms-browser", "the-void",
	"carrier-pigeon", "time-traveler", "alien-mothership", "magic-8-ball",
	"fortune-cookie", "bathroom-wall", "conspiracy-theory", "rubber-duck",
}

var mediums = []string{
	"smoke-signals", "interpretive-dance", "telepathy", "shouting-really-loud",
	"morse-code", "semaphore-flags", "trained-squirrels", "quantum-entanglement",
	"pigeon-post", "message-in-bottle", "cave-paintings", "skywriting",
}

var campaigns = []string{
	"operation-click-bait", "project-procrastination", "mission-impossible-to-track",
	"campaign-against-campaigns", "the-great-data-heist", "operation-banana-split",
	"project-digital-confusion", "the-utm-rebellion", "campaign-chaos-theory",
	"operation-random-nonsense", "project-anti-tracking", "the-great-param-shuffle",
}

var terms = []string{
	"unicorn-tears", "digital-breadcrumbs", "pixel-dust", "data-ghost",
	"tracking-goblin", "analytics-anxiety", "metric-madness", "conversion-confusion",
	"funnel-fear", "attribution-anarchy", "engagement-enigma", "retention-riddle",
}

var contents = []string{
	"banner-of-shame", "click-me-please", "desperate-cta", "shiny-button",
	"definitely-not-an-ad", "trust-me-bro", "random-popup", "attention-grabber",
	"scroll-stopper", "engagement-trap", "conversion-bait", "metric-manipulator",
}

var generics = []string{
	"nope-not-today", "privacy-police", "analytics-anarchy", "tracking-resistance",
	"param-party-crasher", "cookie-crumbler", "metrics-are-fiction", "campaign-chaos",
	"referral-rebellion", "gclid-gone-wild", "idk-not-telling", "mystery-tour",
}

var fillers = []string{
	"ad-tech-exorcism", "cookie-confetti", "tracking-troll",
	"surveillance-slapstick", "signal-smuggler", "botnet-ballet",
}

// phraseLists maps each phrase-based category to its vocabulary.
var phraseLists = map[classify.Category][]string{
	classify.Source:   sources,
	classify.Medium:   mediums,
	classify.Campaign: campaigns,
	classify.Term:     terms,
	classify.Content:  contents,
	classify.Generic:  generics,
}

// wordBank is the de-duplicated union of every phrase list plus fillers,
// used to build hash decoys.
var wordBank []string

// phraseSet holds every category phrase for idempotence checks.
var phraseSet = make(map[string]bool)

func init() {
	seen := make(map[string]bool)
	for _, list := range [][]string{generics, sources, mediums, campaigns, terms, contents, fillers} {
		for _, w := range list {
			if !seen[w] {
				seen[w] = true
				wordBank = append(wordBank, w)
			}
		}
	}
	for c, list := range phraseLists {
		if len(list) == 0 {
			panic(fmt.Sprintf("decoy: empty phrase list for category %s", c))
		}
		for _, p := range list {
			phraseSet[p] = true
		}
	}
	if len(wordBank) < 4 {
		panic("decoy: word bank too small")
	}
	compileDecoyPatterns()
}

// Phrases returns a copy of the phrase list for a category. Hash and None
// return the full word bank and nil respectively.
func Phrases(c classify.Category) []string {
	switch c {
	case classify.None:
		return nil
	case classify.Hash:
		return append([]string(nil), wordBank...)
	default:
		return append([]string(nil), phraseLists[c]...)
	}
}
