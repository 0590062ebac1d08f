package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "draft:"

// DraftRepository is the durable slot holding at most one draft order per
// user. Reads never fail on malformed or unreadable data: those cases are
// reported as absent (nil, nil). Write failures propagate so callers never
// mistake a lost write for success.
type DraftRepository interface {
	Read(ctx context.Context, userID uint) (*model.DraftOrder, error)
	Write(ctx context.Context, userID uint, draft *model.DraftOrder) error
	Clear(ctx context.Context, userID uint) error
	// SweepStale clears drafts not touched within ttl and returns how
	// many were removed.
	SweepStale(ctx context.Context, ttl time.Duration) (int, error)
}

func draftKey(userID uint) string {
	return fmt.Sprintf("%s%d", draftKeyPrefix, userID)
}

// decodeDraft treats corrupt stored bytes as an absent draft.
func decodeDraft(raw []byte) *model.DraftOrder {
	var draft model.DraftOrder
	if err := json.Unmarshal(raw, &draft); err != nil {
		logger.Warn("Discarding corrupt draft record", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return &draft
}

type redisDraftRepository struct {
	client *redis.Client
}

func NewDraftRepository(client *redis.Client) DraftRepository {
	return &redisDraftRepository{client: client}
}

func (r *redisDraftRepository) Read(ctx context.Context, userID uint) (*model.DraftOrder, error) {
	raw, err := r.client.Get(ctx, draftKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// Storage failures on the read path degrade to "no draft"
		// rather than surfacing an error.
		logger.Warn("Draft read failed, treating as absent", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, nil
	}
	return decodeDraft(raw), nil
}

func (r *redisDraftRepository) Write(ctx context.Context, userID uint, draft *model.DraftOrder) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	if err := r.client.Set(ctx, draftKey(userID), raw, 0).Err(); err != nil {
		logger.Error("Failed to write draft record", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}
	return nil
}

func (r *redisDraftRepository) Clear(ctx context.Context, userID uint) error {
	if err := r.client.Del(ctx, draftKey(userID)).Err(); err != nil {
		logger.Error("Failed to clear draft record", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}
	return nil
}

func (r *redisDraftRepository) SweepStale(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	removed := 0

	iter := r.client.Scan(ctx, 0, draftKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		raw, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			continue
		}
		draft := decodeDraft(raw)
		if draft == nil || draft.UpdatedAt.Before(cutoff) {
			if err := r.client.Del(ctx, key).Err(); err != nil {
				logger.Error("Failed to delete stale draft", err, map[string]interface{}{
					"key": key,
				})
				continue
			}
			removed++
		}
	}
	if err := iter.Err(); err != nil {
		return removed, err
	}
	return removed, nil
}

// memoryDraftRepository is an in-process implementation used by tests and
// by deployments without Redis.
type memoryDraftRepository struct {
	mu    sync.RWMutex
	slots map[uint][]byte
}

func NewMemoryDraftRepository() DraftRepository {
	return &memoryDraftRepository{slots: make(map[uint][]byte)}
}

func (r *memoryDraftRepository) Read(ctx context.Context, userID uint) (*model.DraftOrder, error) {
	r.mu.RLock()
	raw, ok := r.slots[userID]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeDraft(raw), nil
}

func (r *memoryDraftRepository) Write(ctx context.Context, userID uint, draft *model.DraftOrder) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	r.mu.Lock()
	r.slots[userID] = raw
	r.mu.Unlock()
	return nil
}

func (r *memoryDraftRepository) Clear(ctx context.Context, userID uint) error {
	r.mu.Lock()
	delete(r.slots, userID)
	r.mu.Unlock()
	return nil
}

func (r *memoryDraftRepository) SweepStale(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	removed := 0

	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, raw := range r.slots {
		draft := decodeDraft(raw)
		if draft == nil || draft.UpdatedAt.Before(cutoff) {
			delete(r.slots, userID)
			removed++
		}
	}
	return removed, nil
}
