package engine

import "testing"

func TestDetectEndIntent(t *testing.T) {
	positives := []string{
		"Can we end the interview here?",
		"I'd like to stop the session now.",
		"Let's wrap up the interview.",
		"I'm done, thanks for your time.",
		"Honestly, let's call it a day.",
		"That's all from me.",
	}
	for _, s := range positives {
		if !detectEndIntent(s) {
			t.Errorf("expected end intent in %q", s)
		}
	}

	negatives := []string{
		"I would use a token bucket keyed by the endpoint.",
		"The backend sends the response after validation.",
		"We stopped the rollout when error rates climbed.",
		"At the end of the pipeline we publish an event.",
	}
	for _, s := range negatives {
		if detectEndIntent(s) {
			t.Errorf("unexpected end intent in %q", s)
		}
	}
}

func TestDetectConfirmation(t *testing.T) {
	if !detectConfirmation(confirmEndPrompt, "Yes, I'm sure.") {
		t.Error("yes after confirmation prompt should confirm")
	}
	if !detectConfirmation(confirmEndPrompt, "yeah") {
		t.Error("yeah should confirm")
	}
	if detectConfirmation(confirmEndPrompt, "No, let's keep going.") {
		t.Error("a refusal must not confirm")
	}
	if detectConfirmation("How would you shard this table?", "yes") {
		t.Error("yes without a pending confirmation must not confirm")
	}
}
