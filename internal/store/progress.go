package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/derivio/ent"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context) (ProgressData, error) {
	slot, err := r.client.ProgressSlot.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultProgress(), nil
		}
		return ProgressData{}, fmt.Errorf("query progress slot: %w", err)
	}

	data, err := progressFromMap(slot.Data)
	if err != nil {
		// A corrupt slot means starting over, not a crash loop.
		return DefaultProgress(), nil
	}
	return data, nil
}

func (r *progressRepo) Save(ctx context.Context, data ProgressData) error {
	m, err := progressToMap(data)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	slot, err := r.client.ProgressSlot.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query progress slot: %w", err)
		}
		if _, err := r.client.ProgressSlot.Create().SetData(m).Save(ctx); err != nil {
			return fmt.Errorf("create progress slot: %w", err)
		}
		return nil
	}

	if _, err := r.client.ProgressSlot.UpdateOne(slot).SetData(m).Save(ctx); err != nil {
		return fmt.Errorf("update progress slot: %w", err)
	}
	return nil
}

func (r *progressRepo) Clear(ctx context.Context) error {
	if _, err := r.client.ProgressSlot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear progress slot: %w", err)
	}
	return nil
}

// progressToMap converts ProgressData to map[string]any for ent JSON storage.
func progressToMap(data ProgressData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// progressFromMap converts the stored JSON map back to ProgressData.
func progressFromMap(m map[string]any) (ProgressData, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return ProgressData{}, err
	}
	var data ProgressData
	if err := json.Unmarshal(b, &data); err != nil {
		return ProgressData{}, err
	}
	if data.Phase != PhaseAssessment && data.Phase != PhaseLearning {
		return ProgressData{}, fmt.Errorf("unknown phase %q", data.Phase)
	}
	return data, nil
}
