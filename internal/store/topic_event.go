package store

import (
	"context"
	"fmt"

	"github.com/abhisek/derivio/ent"
	"github.com/abhisek/derivio/ent/topicevent"
)

func (r *eventRepo) AppendTopicCompletion(ctx context.Context, data TopicCompletionData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TopicEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		SetLevel(data.Level).
		SetScore(data.Score).
		SetReview(data.Review).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save topic event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicHistory(ctx context.Context) ([]TopicCompletion, error) {
	events, err := r.client.TopicEvent.Query().
		Order(ent.Asc(topicevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic events: %w", err)
	}

	out := make([]TopicCompletion, 0, len(events))
	for _, e := range events {
		out = append(out, TopicCompletion{
			Timestamp: e.Timestamp,
			TopicID:   e.TopicID,
			Level:     e.Level,
			Score:     e.Score,
			Review:    e.Review,
		})
	}
	return out, nil
}
