package dentistRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"dentistimo/models"
	"dentistimo/utils"
)

const allDentistsKey = "dentists:all"

// CachedDentistRepo is a read-through Redis cache in front of another
// DentistRepository. Dentist documents are read on every availability check
// and on every directory broadcast but written only by the external registry,
// so a short TTL keeps them fresh enough. Cache failures degrade to a direct
// store read; misses are never cached.
type CachedDentistRepo struct {
	next  DentistRepository
	cache *redis.Client
	ttl   time.Duration
}

// NewCachedDentistRepo wraps next with a Redis cache using the given TTL.
func NewCachedDentistRepo(next DentistRepository, cache *redis.Client, ttl time.Duration) DentistRepository {
	return &CachedDentistRepo{next: next, cache: cache, ttl: ttl}
}

func (repo *CachedDentistRepo) FindAll() ([]models.Dentist, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if raw, err := repo.cache.Get(ctx, allDentistsKey).Result(); err == nil {
		var dentists []models.Dentist
		if err := json.Unmarshal([]byte(raw), &dentists); err == nil {
			return dentists, nil
		}
	}

	dentists, err := repo.next.FindAll()
	if err != nil {
		return nil, err
	}
	repo.store(ctx, allDentistsKey, dentists)
	return dentists, nil
}

func (repo *CachedDentistRepo) FindByID(id int) (*models.Dentist, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := fmt.Sprintf("dentist:%d", id)
	if raw, err := repo.cache.Get(ctx, key).Result(); err == nil {
		var dentist models.Dentist
		if err := json.Unmarshal([]byte(raw), &dentist); err == nil {
			return &dentist, nil
		}
	}

	dentist, err := repo.next.FindByID(id)
	if err != nil || dentist == nil {
		return dentist, err
	}
	repo.store(ctx, key, dentist)
	return dentist, nil
}

func (repo *CachedDentistRepo) store(ctx context.Context, key string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := repo.cache.Set(ctx, key, body, repo.ttl).Err(); err != nil {
		utils.GetLogger().Debug("dentist cache write failed", zap.String("key", key), zap.Error(err))
	}
}
