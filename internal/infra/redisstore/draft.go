package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"studiobooking/internal/domain/wizard"
	"studiobooking/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "draft:"

// DraftStore persists in-progress wizard drafts with a sliding TTL. An
// abandoned draft simply expires; there is no cleanup job.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

// Save writes the draft and refreshes its TTL, so active sessions stay alive
// as long as the user keeps making progress.
func (s *DraftStore) Save(ctx context.Context, d *wizard.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal draft", err)
	}
	if err := s.client.Set(ctx, draftKeyPrefix+d.ID.String(), data, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save draft", err)
	}
	return nil
}

func (s *DraftStore) Find(ctx context.Context, id uuid.UUID) (*wizard.Draft, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+id.String()).Bytes()
	if err == redis.Nil {
		return nil, infra.WrapRepoErr("draft not found", err, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read draft", err)
	}
	var d wizard.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal draft", err)
	}
	return &d, nil
}

func (s *DraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, draftKeyPrefix+id.String()).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete draft", err)
	}
	return nil
}
