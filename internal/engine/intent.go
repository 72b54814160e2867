package engine

import (
	"regexp"
	"strings"
)

// confirmEndPrompt is the confirmation follow-up served when the
// candidate asks to stop. detectConfirmation keys on its "are you sure"
// phrasing, so the two must stay in sync.
const confirmEndPrompt = "Are you sure you want to end the interview here?"

var endIntentRe = regexp.MustCompile(
	`(?i)\b(end|stop|finish|wrap up|conclude)\b.{0,20}\b(interview|session|here|now)\b` +
		`|(?i)\bi('m| am) done\b` +
		`|(?i)\bcall it a day\b` +
		`|(?i)\bthat('s| is) all( i have| from me)?\b`,
)

// yesWords confirm a pending end request.
var yesWords = []string{"yes", "yeah", "sure", "correct", "right"}

// detectEndIntent reports whether the answer asks to stop the interview.
func detectEndIntent(answer string) bool {
	return endIntentRe.MatchString(answer)
}

// detectConfirmation reports whether the answer confirms a pending end
// request, keyed on the confirmation phrasing of the last question.
func detectConfirmation(lastQuestion, answer string) bool {
	if !strings.Contains(strings.ToLower(lastQuestion), "are you sure") {
		return false
	}
	ans := strings.ToLower(answer)
	for _, w := range yesWords {
		if strings.Contains(ans, w) {
			return true
		}
	}
	return false
}
