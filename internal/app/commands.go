package app

import (
	"context"
	"crypto/subtle"

	"cafe_directory/internal/domain"
)

type CommandService struct {
	repo      domain.CafeRepository
	cache     domain.Cache
	deleteKey string
}

func NewCommandService(r domain.CafeRepository, cache domain.Cache, deleteKey string) *CommandService {
	return &CommandService{repo: r, cache: cache, deleteKey: deleteKey}
}

// AddCafe inserts a new record. The store's unique index on name is the only
// uniqueness authority; its violation surfaces as domain.ErrDuplicateName.
func (s *CommandService) AddCafe(ctx context.Context, c domain.Cafe) (int64, error) {
	id, err := s.repo.Insert(ctx, c)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, c.Location)
	return id, nil
}

// UpdatePrice overwrites coffee_price only; every other field is untouched.
func (s *CommandService) UpdatePrice(ctx context.Context, id int64, price *string) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePrice(ctx, id, price); err != nil {
		return err
	}
	s.invalidate(ctx, c.Location)
	return nil
}

// DeleteCafe removes a record and returns its name for the confirmation
// message. Ordering is part of the contract: existence is checked before the
// key, so a caller without the key still learns whether the id exists.
func (s *CommandService) DeleteCafe(ctx context.Context, id int64, key string) (string, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(s.deleteKey)) != 1 {
		return "", domain.ErrInvalidKey
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	s.invalidate(ctx, c.Location)
	return c.Name, nil
}

// invalidate evicts every cached read a write to the given location can affect:
// the sorted list, the no-location search fallback, and that location's search.
func (s *CommandService) invalidate(ctx context.Context, location string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, keyAllCafes)
	_ = s.cache.Del(ctx, keyLocPrefix)
	_ = s.cache.Del(ctx, keyLocPrefix+location)
}
