package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"duskpact/internal/adapter/repo/gorm/model"
	"duskpact/internal/app/ports"
	"duskpact/internal/domain/behavior"

	"gorm.io/gorm"
)

const sessionStateRowID = 1

// ProfileRepo persists the whole behavior profile: one row per live
// observation plus a single session-state row. Save replaces the record
// wholesale inside one transaction, matching the write-after-mutate
// contract.
type ProfileRepo struct {
	db *gorm.DB
	tx TxManager
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return ProfileRepo{db: db, tx: NewTxManager(db)}
}

func (r ProfileRepo) Load(ctx context.Context) (behavior.Profile, error) {
	db := dbFor(ctx, r.db)

	var rows []model.Observation
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return behavior.Profile{}, fmt.Errorf("load observations: %w", err)
	}

	profile := behavior.Profile{}
	for _, row := range rows {
		var payload behavior.Payload
		if len(row.Payload) > 0 {
			if err := json.Unmarshal(row.Payload, &payload); err != nil {
				// A single corrupt payload should not sink the profile.
				payload = behavior.Payload{}
			}
		}
		profile.Observations = append(profile.Observations, behavior.Observation{
			Trigger:     behavior.TriggerType(row.Trigger),
			Timestamp:   row.OccurredAt,
			MapContext:  row.MapContext,
			RepeatCount: row.RepeatCount,
			Resolved:    row.Resolved,
			Payload:     payload,
		})
	}

	var state model.SessionState
	err := db.Where("id = ?", sessionStateRowID).First(&state).Error
	switch {
	case err == nil:
		if len(state.Data) > 0 {
			_ = json.Unmarshal(state.Data, &profile.Session)
		}
	case err == gorm.ErrRecordNotFound:
		if len(profile.Observations) == 0 {
			return behavior.Profile{}, ports.ErrNotFound
		}
	default:
		return behavior.Profile{}, fmt.Errorf("load session state: %w", err)
	}

	return profile, nil
}

func (r ProfileRepo) Save(ctx context.Context, profile behavior.Profile) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		db := dbFor(ctx, r.db)

		if err := db.Where("1 = 1").Delete(&model.Observation{}).Error; err != nil {
			return fmt.Errorf("clear observations: %w", err)
		}
		if len(profile.Observations) > 0 {
			rows := make([]model.Observation, 0, len(profile.Observations))
			for _, o := range profile.Observations {
				payload, _ := json.Marshal(o.Payload)
				rows = append(rows, model.Observation{
					Trigger:     string(o.Trigger),
					MapContext:  o.MapContext,
					RepeatCount: o.RepeatCount,
					Resolved:    o.Resolved,
					OccurredAt:  o.Timestamp,
					Payload:     payload,
				})
			}
			if err := db.Create(&rows).Error; err != nil {
				return fmt.Errorf("insert observations: %w", err)
			}
		}

		data, _ := json.Marshal(profile.Session)
		state := model.SessionState{ID: sessionStateRowID, Data: data}
		if err := db.Save(&state).Error; err != nil {
			return fmt.Errorf("save session state: %w", err)
		}
		return nil
	})
}
