package app

import (
	"context"
	"math/rand"
	"time"

	"cafe_directory/internal/domain"
)

const (
	keyAllCafes  = "cafes:all"
	keyLocPrefix = "cafes:loc:"
)

type QueryService struct {
	repo     domain.CafeRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.CafeRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// RandomCafe picks one record uniformly from the full set. Deliberately
// uncached: sampling should see rows added since the last list call.
func (s *QueryService) RandomCafe(ctx context.Context) (domain.Cafe, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return domain.Cafe{}, err
	}
	if len(all) == 0 {
		return domain.Cafe{}, domain.ErrEmptyStore
	}
	return all[rand.Intn(len(all))], nil
}

// AllCafes returns every record sorted ascending by name.
func (s *QueryService) AllCafes(ctx context.Context) ([]domain.Cafe, error) {
	var cached []domain.Cafe
	if ok, _ := s.cache.Get(ctx, keyAllCafes, &cached); ok {
		return cached, nil
	}
	cafes, err := s.repo.ListByName(ctx)
	if err != nil {
		return nil, err
	}
	// copy before caching so later repo mutations can't alias the cached slice
	out := copyCafes(cafes)
	_ = s.cache.Set(ctx, keyAllCafes, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// SearchByLocation filters by exact location match; an absent/empty location
// falls back to the full unordered set. An empty result in either branch is
// domain.ErrNotFound, and misses are never cached.
func (s *QueryService) SearchByLocation(ctx context.Context, location string) ([]domain.Cafe, error) {
	key := keyLocPrefix + location
	var cached []domain.Cafe
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}

	var (
		cafes []domain.Cafe
		err   error
	)
	if location == "" {
		cafes, err = s.repo.ListAll(ctx)
	} else {
		cafes, err = s.repo.FindByLocation(ctx, location)
	}
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return nil, domain.ErrNotFound
	}

	out := copyCafes(cafes)
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func copyCafes(in []domain.Cafe) []domain.Cafe {
	out := make([]domain.Cafe, len(in))
	copy(out, in)
	return out
}
