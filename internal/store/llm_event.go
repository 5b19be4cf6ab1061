package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/clinsaude/clin/ent"
)

// llmEventRepo implements LLMEventRepo backed by ent and the global
// sequence counter.
type llmEventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *llmEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *llmEventRepo) UsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byPurpose := make(map[string]*LLMUsage)
	totalLatency := make(map[string]int64)
	for _, e := range events {
		u := byPurpose[e.Purpose]
		if u == nil {
			u = &LLMUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
		}
		u.Requests++
		if !e.Success {
			u.Failures++
		}
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		totalLatency[e.Purpose] += e.LatencyMs
	}

	usages := make([]LLMUsage, 0, len(byPurpose))
	for purpose, u := range byPurpose {
		if u.Requests > 0 {
			u.AvgLatencyMs = totalLatency[purpose] / int64(u.Requests)
		}
		usages = append(usages, *u)
	}
	sort.Slice(usages, func(i, j int) bool { return usages[i].Purpose < usages[j].Purpose })
	return usages, nil
}

func (r *llmEventRepo) UsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byModel := make(map[string]*LLMModelUsage)
	for _, e := range events {
		u := byModel[e.Model]
		if u == nil {
			u = &LLMModelUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Requests++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	usages := make([]LLMModelUsage, 0, len(byModel))
	for _, u := range byModel {
		usages = append(usages, *u)
	}
	sort.Slice(usages, func(i, j int) bool { return usages[i].Model < usages[j].Model })
	return usages, nil
}
