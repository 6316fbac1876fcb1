package services

import (
	"context"
	"runtime"
	"time"

	"pentouz/dto"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// CheckHealth probes the database and Redis and snapshots process stats.
// The endpoint stays 200 even when degraded so the console can render the
// panel.
func CheckHealth(ctx context.Context, db *gorm.DB, rdb *redis.Client, version string) dto.HealthResponse {
	health := dto.HealthResponse{
		Status:        "healthy",
		Version:       version,
		UptimeSeconds: int64(time.Since(startedAt).Seconds()),
		Goroutines:    runtime.NumGoroutine(),
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	health.HeapAllocMB = Round2(float64(mem.HeapAlloc) / 1024 / 1024)

	health.Database = checkDB(ctx, db)
	health.Redis = checkRedis(ctx, rdb)

	if !health.Database.OK || !health.Redis.OK {
		health.Status = "degraded"
	}

	return health
}

func checkDB(ctx context.Context, db *gorm.DB) dto.HealthCheck {
	check := dto.HealthCheck{}
	if db == nil {
		check.Error = "database not initialized"
		return check
	}

	sqlDB, err := db.DB()
	if err != nil {
		check.Error = err.Error()
		return check
	}

	start := time.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		check.Error = err.Error()
		return check
	}

	check.OK = true
	check.LatencyMs = time.Since(start).Milliseconds()
	return check
}

func checkRedis(ctx context.Context, rdb *redis.Client) dto.HealthCheck {
	check := dto.HealthCheck{}
	if rdb == nil {
		check.Error = "redis not initialized"
		return check
	}

	start := time.Now()
	if err := rdb.Ping(ctx).Err(); err != nil {
		check.Error = err.Error()
		return check
	}

	check.OK = true
	check.LatencyMs = time.Since(start).Milliseconds()
	return check
}
