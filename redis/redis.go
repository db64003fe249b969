package redis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

const availabilityTTL = 60 * time.Second

func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Availability caching disabled.", err)
		Client = nil
		return
	}
	fmt.Println("✅ Connected to Redis")
}

func availabilityKey(date string, serviceID uint) string {
	return fmt.Sprintf("availability:%s:%d", date, serviceID)
}

// GetAvailability returns a cached availability payload, if any.
func GetAvailability(ctx context.Context, date string, serviceID uint) (string, bool) {
	if Client == nil {
		return "", false
	}
	payload, err := Client.Get(ctx, availabilityKey(date, serviceID)).Result()
	if err != nil {
		return "", false
	}
	return payload, true
}

func SetAvailability(ctx context.Context, date string, serviceID uint, payload string) {
	if Client == nil {
		return
	}
	Client.Set(ctx, availabilityKey(date, serviceID), payload, availabilityTTL)
}

// InvalidateDate drops every cached availability entry for a date. Called
// whenever the date's occupancy changes (booking, status change, archive).
func InvalidateDate(ctx context.Context, date string) {
	if Client == nil {
		return
	}
	iter := Client.Scan(ctx, 0, fmt.Sprintf("availability:%s:*", date), 0).Iterator()
	for iter.Next(ctx) {
		Client.Del(ctx, iter.Val())
	}
}
