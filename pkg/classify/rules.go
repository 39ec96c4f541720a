package classify

import (
	"regexp"
	"strings"
)

var exactKeys = []struct {
	category Category
	keys     []string
}{
	{Source, []string{"utm_source", "source", "src", "ga_source", "hsa_src", "ref", "referrer", "ref_source", "affiliate_source"}},
	{Medium, []string{"utm_medium", "medium", "ga_medium", "hsa_mt", "channel", "channelid", "traffic_medium", "promo_medium"}},
	{Campaign, []string{
		"utm_campaign", "campaign", "campaignid", "campaign_id", "cmp", "cmpid", "ga_campaign",
		"hsa_cam", "utm_id", "utm_name", "campaign_name", "adcampaign",
	}},
	{Term, []string{"utm_term", "term", "ga_term", "keyword", "keywords", "hsa_kw", "searchterm", "search_term", "search_query"}},
	{Content, []string{
		"utm_content", "content", "ga_content", "creative", "creativename", "hsa_ad", "hsa_tgt",
		"adset", "adset_id", "adgroup", "adgroup_id",
	}},
	{Generic, []string{
		"utm_source_platform", "utm_creative_format", "utm_marketing_tactic", "ga_place", "ga_location",
		"adid", "adgroupid", "adunit", "device", "placement", "matchtype", "network", "feeditemid",
		"creativeid", "creative_id", "adgroupname", "emc", "nl", "referringsource", "referring_source",
		"sharelink", "share_link", "share_url", "sharechannel", "newsletter", "audience",
	}},
}

var hashKeys = []string{
	"fbclid", "gclid", "gbraid", "wbraid", "dclid", "msclkid", "yclid", "twclid", "ttclid",
	"li_fat_id", "igshid", "mc_eid", "mc_cid", "mkt_tok", "_hsenc", "_hsmi", "vero_id", "vero_conv",
	"spm", "scid", "s_cid", "icid", "irclickid", "irgwc", "oly_anon_id", "oly_enc_id",
	"trk_contact", "trk_module", "trk_msg", "trk_sid", "rb_clickid", "ncid", "adobe_mc_ref",
	"adobe_mc_sdid", "instance_id", "segment_id", "regi_id", "user_id", "smid",
	"unlocked_article_code", "ad_id", "ref_id", "visitor_id", "subscriber_id",
}

var hashPrefixes = []string{"oly_", "vero_", "trk_", "sentry_", "hssc", "hssr", "hsfp"}

// keywordPattern is a delimited-word pattern: the word must sit at the start
// or end of the key, or be bounded by '_' or '-'.
type keywordPattern struct {
	category Category
	re       *regexp.Regexp
}

var keywordPatterns = []keywordPattern{
	{Source, regexp.MustCompile(`(^|[_-])(source|src|ref|referrer)([_-]|$)`)},
	{Medium, regexp.MustCompile(`(^|[_-])(medium|channel|cpm|cpc)([_-]|$)`)},
	{Campaign, regexp.MustCompile(`(^|[_-])(campaign|cmp|promo|marketing|mk)([_-]|$)`)},
	{Term, regexp.MustCompile(`(^|[_-])(term|keyword|kw|search)([_-]|$)`)},
	{Content, regexp.MustCompile(`(^|[_-])(content|creative|adset|adgroup|adcreative)([_-]|$)`)},
}

var genericHints = []*regexp.Regexp{
	regexp.MustCompile(`(^|[_-])(track|tracking|trk)([_-]|$)`),
	regexp.MustCompile(`clid$`),
	regexp.MustCompile(`(^|[_-])cid([_-]|$)`),
	regexp.MustCompile(`(^|[_-])clickid([_-]|$)`),
	regexp.MustCompile(`(^|[_-])aff([_-]|$)`),
	regexp.MustCompile(`(^|[_-])(session|visitor)(_?id)?([_-]|$)`),
	regexp.MustCompile(`(^|[_-])adid([_-]|$)`),
	regexp.MustCompile(`(^|[_-])(newsletter|audience|segment)([_-]|$)`),
}

// Built once at init and never mutated afterwards.
var (
	lookup  map[string]Category
	hashSet map[string]bool
)

func init() {
	lookup = make(map[string]Category)
	for _, group := range exactKeys {
		for _, k := range group.keys {
			lookup[strings.ToLower(k)] = group.category
		}
	}
	hashSet = make(map[string]bool, len(hashKeys))
	for _, k := range hashKeys {
		hashSet[strings.ToLower(k)] = true
	}
}

// RuleSet is a read-only snapshot of the classification tables, in
// precedence order. Callers get copies and may modify them freely.
type RuleSet struct {
	Exact        map[Category][]string
	UTMPrefix    string
	HashKeys     []string
	HashPrefixes []string
	Keywords     []PatternRule
	GenericHints []string
}

// PatternRule pairs a category with the regular expression that selects it.
type PatternRule struct {
	Category Category
	Pattern  string
}

// Rules returns a snapshot of the rule set.
func Rules() RuleSet {
	rs := RuleSet{
		Exact:        make(map[Category][]string),
		UTMPrefix:    utmPrefix,
		HashKeys:     append([]string(nil), hashKeys...),
		HashPrefixes: append([]string(nil), hashPrefixes...),
	}
	for _, group := range exactKeys {
		rs.Exact[group.category] = append(rs.Exact[group.category], group.keys...)
	}
	for _, kp := range keywordPatterns {
		rs.Keywords = append(rs.Keywords, PatternRule{Category: kp.category, Pattern: kp.re.String()})
	}
	for _, re := range genericHints {
		rs.GenericHints = append(rs.GenericHints, re.String())
	}
	return rs
}
