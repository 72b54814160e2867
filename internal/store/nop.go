package store

import "context"

// NopEventRepo discards all events. Used when the event database is
// unavailable and in tests where logging is irrelevant.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error { return nil }

func (NopEventRepo) QueryLLMEvents(context.Context, QueryOpts) ([]LLMEvent, error) {
	return nil, nil
}

func (NopEventRepo) GetLLMEvent(context.Context, int) (*LLMEvent, error) { return nil, nil }

func (NopEventRepo) LLMUsageByPurpose(context.Context) ([]PurposeUsage, error) { return nil, nil }

func (NopEventRepo) LLMUsageByModel(context.Context) ([]ModelUsage, error) { return nil, nil }

func (NopEventRepo) AppendSessionEvent(context.Context, SessionEventData) error { return nil }

func (NopEventRepo) QuerySessionEvents(context.Context, string) ([]SessionEvent, error) {
	return nil, nil
}
