package keywords

import "strings"

// Intent is a coarse search-intent class inferred from keyword surface
// text.
type Intent string

const (
	IntentTransactional Intent = "transactional"
	IntentInformational Intent = "informational"
	IntentNavigational  Intent = "navigational"
)

// InferIntent classifies a keyword by cue-word matching. Categories are
// checked in priority order: transactional, then informational, then
// navigational. Keywords matching nothing default to informational.
func InferIntent(keyword string) Intent {
	lower := strings.ToLower(keyword)

	for _, cue := range transactionalCues {
		if strings.Contains(lower, cue) {
			return IntentTransactional
		}
	}
	for _, cue := range informationalCues {
		if strings.Contains(lower, cue) {
			return IntentInformational
		}
	}
	for _, cue := range navigationalCues {
		if strings.Contains(lower, cue) {
			return IntentNavigational
		}
	}
	return IntentInformational
}
