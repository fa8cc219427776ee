package handlers

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"gorm.io/gorm"

	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/database"
	"vidtube.com/pkg/response"
)

var (
	mysqlDB     *gorm.DB
	redisClient *redis.Client
)

func Init(db *gorm.DB, rdb *redis.Client) {
	mysqlDB = db
	redisClient = rdb
}

type Status struct {
	Status         string  `json:"status"`
	DB             string  `json:"db"`
	Redis          string  `json:"redis"`
	CPUPercent     float64 `json:"cpuPercent"`
	MemUsedPercent float64 `json:"memUsedPercent"`
}

// HealthCheck always answers 200; dependency state is reported in the body.
func HealthCheck(ctx context.Context, c *app.RequestContext) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	s := Status{Status: "ok", DB: "up", Redis: "up"}
	if err := database.Ping(mysqlDB); err != nil {
		hlog.CtxWarnf(ctx, "health: db unreachable: %v", err)
		s.DB, s.Status = "down", "degraded"
	}
	if redisClient == nil {
		s.Redis = "disabled"
	} else if err := cache.Ping(ctx, redisClient); err != nil {
		hlog.CtxWarnf(ctx, "health: redis unreachable: %v", err)
		s.Redis, s.Status = "down", "degraded"
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		s.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsedPercent = vm.UsedPercent
	}
	response.SendResponse(ctx, c, nil, s, "Health check")
}
