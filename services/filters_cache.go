package services

import (
	"context"
	"time"

	"pentouz/dto"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// SaveLastFilters remembers the console's guest filters for a session.
func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.GuestSearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.GuestSearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.GuestSearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// MergeFilters overlays new filters onto the remembered ones; empty fields
// keep their previous value.
func MergeFilters(old *dto.GuestSearchFilters, next *dto.GuestSearchFilters) *dto.GuestSearchFilters {
	if next.Name == "" {
		next.Name = old.Name
	}
	if next.City == "" {
		next.City = old.City
	}
	if next.Status == nil {
		next.Status = old.Status
	}
	if next.CompanyID == nil {
		next.CompanyID = old.CompanyID
	}
	if next.Corporate == nil {
		next.Corporate = old.Corporate
	}
	return next
}
