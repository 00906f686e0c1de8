package keywords

// Rule dictionaries for candidate filtering, scoring, and parent
// selection. All entries are lowercase.

// stopPhrases are exact-match phrases that carry no keyword value.
var stopPhrases = map[string]struct{}{
	"click here": {}, "read more": {}, "learn more": {}, "find out": {},
	"get started": {}, "contact us": {}, "about us": {}, "home page": {},
	"main page": {}, "site map": {}, "privacy policy": {}, "terms service": {},
	"cookie policy": {}, "all rights reserved": {},
}

// lowValueWords are single words rejected at candidate generation.
var lowValueWords = map[string]struct{}{
	"page": {}, "site": {}, "website": {}, "web": {}, "online": {}, "internet": {},
	"www": {}, "http": {}, "html": {}, "css": {}, "javascript": {}, "php": {},
	"asp": {}, "net": {}, "com": {}, "org": {}, "edu": {},
	"click": {}, "here": {}, "more": {}, "read": {}, "learn": {}, "find": {},
	"get": {}, "start": {}, "contact": {}, "about": {}, "home": {}, "main": {},
	"map": {}, "privacy": {}, "terms": {}, "cookie": {}, "rights": {},
	"reserved": {}, "copyright": {}, "all": {}, "some": {}, "many": {}, "few": {},
	"most": {}, "very": {}, "really": {}, "quite": {}, "rather": {}, "pretty": {},
	"fairly": {}, "somewhat": {},
}

// functionWords are articles, prepositions, and conjunctions used for
// the all-function-word and function-word-ratio phrase filters.
var functionWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

// highValueIndicators raise semantic quality per matching word.
var highValueIndicators = map[string]struct{}{
	"best": {}, "top": {}, "guide": {}, "review": {}, "comparison": {}, "vs": {},
	"benefits": {}, "features": {}, "advantages": {}, "disadvantages": {},
	"pros": {}, "cons": {}, "tutorial": {}, "tips": {}, "tricks": {},
	"secrets": {}, "methods": {}, "techniques": {}, "strategies": {},
	"cost": {}, "price": {}, "buy": {}, "purchase": {}, "order": {}, "deal": {},
	"discount": {}, "sale": {}, "free": {}, "premium": {}, "professional": {},
	"expert": {}, "advanced": {}, "beginner": {}, "starter": {},
}

// lowValueIndicators lower semantic quality per matching word.
var lowValueIndicators = map[string]struct{}{
	"click": {}, "here": {}, "more": {}, "read": {}, "learn": {}, "find": {},
	"get": {}, "start": {}, "begin": {}, "page": {}, "site": {}, "website": {},
	"web": {}, "online": {}, "internet": {}, "www": {}, "http": {}, "html": {},
	"css": {}, "javascript": {}, "php": {}, "asp": {}, "net": {}, "com": {},
	"org": {}, "edu": {},
}

// intentPatterns are substring patterns marking high search intent.
var intentPatterns = []string{"how to", "what is", "best way", "top 10", "vs"}

// genericPhrasePatterns disqualify validated keywords on substring match.
var genericPhrasePatterns = []string{
	"click here", "read more", "learn more", "find out", "get started",
	"contact us", "about us", "home page", "main page", "site map",
	"privacy policy", "terms service", "cookie policy",
}

// commonSingleWords disqualify single-word keywords during validation.
var commonSingleWords = map[string]struct{}{
	"page": {}, "site": {}, "website": {}, "web": {}, "online": {},
	"internet": {}, "www": {}, "click": {}, "here": {}, "more": {}, "read": {},
	"learn": {}, "find": {}, "get": {}, "start": {}, "contact": {},
	"about": {}, "home": {}, "main": {}, "map": {}, "privacy": {}, "terms": {},
}

// sectionTerms are common site-section and boilerplate tokens found
// across the web. Phrases made entirely of these never become parents.
var sectionTerms = map[string]struct{}{
	"home": {}, "homepage": {}, "blog": {}, "news": {}, "press": {},
	"release": {}, "events": {}, "careers": {}, "career": {}, "jobs": {},
	"about": {}, "team": {}, "contact": {}, "support": {}, "help": {},
	"faq": {}, "esg": {}, "csr": {}, "investors": {}, "privacy": {},
	"policy": {}, "terms": {}, "conditions": {}, "cookies": {}, "cookie": {},
	"sitemap": {}, "login": {}, "signup": {}, "account": {}, "profile": {},
	"settings": {}, "newsletter": {}, "subscribe": {}, "archives": {},
	"category": {}, "tag": {}, "author": {}, "search": {},
}

// genericBaseTerms are tokens too generic to anchor a parent keyword on
// their own; a parent needs at least one token outside this set.
var genericBaseTerms = map[string]struct{}{
	"real": {}, "estate": {}, "service": {}, "solution": {}, "platform": {},
	"app": {}, "software": {}, "tool": {}, "news": {}, "article": {},
	"blog": {}, "post": {}, "update": {}, "latest": {}, "info": {},
	"information": {}, "guide": {}, "report": {}, "press": {}, "release": {},
	"case": {}, "study": {}, "global": {}, "international": {},
	"industry": {}, "company": {}, "product": {}, "feature": {}, "page": {},
	"download": {}, "center": {}, "team": {}, "career": {}, "policy": {},
	"term": {}, "condition": {}, "overview": {}, "summary": {}, "faq": {},
	"help": {}, "support": {},
}

// Temporal tokens: month and day names plus abbreviations. Parents built
// around dates are almost always archive or event boilerplate.
var temporalMonths = map[string]struct{}{
	"january": {}, "february": {}, "march": {}, "april": {}, "may": {},
	"june": {}, "july": {}, "august": {}, "september": {}, "october": {},
	"november": {}, "december": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

var temporalDays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
	"mon": {}, "tue": {}, "wed": {}, "thu": {}, "fri": {}, "sat": {}, "sun": {},
}

// parentIndicators raise the parent-specific semantic quality score.
var parentIndicators = map[string]struct{}{
	"best": {}, "top": {}, "guide": {}, "review": {}, "comparison": {},
	"vs": {}, "benefits": {}, "features": {}, "advantages": {},
	"tutorial": {}, "tips": {}, "methods": {}, "cost": {}, "price": {},
	"buy": {}, "purchase": {}, "deal": {}, "discount": {}, "sale": {},
	"free": {}, "premium": {}, "professional": {}, "expert": {},
	"advanced": {}, "beginner": {},
}

var questionPatterns = []string{"how to", "what is", "why", "when", "where", "which"}

var comparisonPatterns = []string{"vs", "versus", "comparison", "compare", "best"}

// Intent cue word lists, checked in priority order.
var transactionalCues = []string{"buy", "price", "deal", "coupon", "order", "best", "cheap", "shop", "store"}
var informationalCues = []string{"how", "what", "guide", "tutorial", "vs", "review", "learn", "tips", "why", "when"}
var navigationalCues = []string{"login", "signup", "brand", "home", "contact", "about"}

// DefaultTopicalVocabulary is the domain vocabulary behind the soft
// topical boost in parent ranking. Deployments override it per domain
// through configuration; the default targets the energy/solar vertical.
var DefaultTopicalVocabulary = []string{
	"solar", "panel", "inverter", "renewable", "energy", "efficiency",
	"battery", "storage", "rooftop", "pv", "photovoltaic", "subsidy",
	"decarbonization", "grid", "offgrid", "metering",
}

func isTemporalToken(token string) bool {
	if _, ok := temporalMonths[token]; ok {
		return true
	}
	_, ok := temporalDays[token]
	return ok
}

func isSectionToken(token string) bool {
	_, ok := sectionTerms[token]
	return ok
}

func isGenericBase(token string) bool {
	_, ok := genericBaseTerms[token]
	return ok
}
