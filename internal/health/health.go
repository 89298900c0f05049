package health

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"capitaluy-backend/internal/cache"
	"capitaluy-backend/internal/store"
)

type HealthChecker struct {
	store   store.Store
	started time.Time
}

type HealthStatus struct {
	Status string      `json:"status"`
	Store  StoreHealth `json:"store"`
}

type StoreHealth struct {
	Driver       string `json:"driver"`
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

// DetailedStatus adds cache and host figures for dashboards.
type DetailedStatus struct {
	HealthStatus
	Cache  string      `json:"cache"`
	Uptime string      `json:"uptime"`
	System SystemStats `json:"system"`
}

type SystemStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsed    string  `json:"memory_used"`
	MemoryTotal   string  `json:"memory_total"`
	DiskPercent   float64 `json:"disk_percent"`
}

func NewHealthChecker(s store.Store) *HealthChecker {
	return &HealthChecker{store: s, started: time.Now()}
}

func (h *HealthChecker) CheckBasic(ctx context.Context) HealthStatus {
	storeHealth := h.checkStore(ctx)

	status := "healthy"
	if storeHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status: status,
		Store:  storeHealth,
	}
}

func (h *HealthChecker) CheckDetailed(ctx context.Context) DetailedStatus {
	cacheStatus := "disabled"
	if cache.Enabled() {
		cacheStatus = "unhealthy"
		if cache.IsHealthy() {
			cacheStatus = "healthy"
		}
	}

	return DetailedStatus{
		HealthStatus: h.CheckBasic(ctx),
		Cache:        cacheStatus,
		Uptime:       time.Since(h.started).Round(time.Second).String(),
		System:       collectSystemStats(),
	}
}

func (h *HealthChecker) checkStore(ctx context.Context) StoreHealth {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	status := "healthy"
	if err != nil {
		status = "unhealthy"
	}

	return StoreHealth{
		Driver:       h.store.Name(),
		Status:       status,
		ResponseTime: responseTime,
	}
}

func collectSystemStats() SystemStats {
	var stats SystemStats

	if cpuPercents, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(cpuPercents) > 0 {
		stats.CPUPercent = cpuPercents[0]
	}
	if memStats, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = memStats.UsedPercent
		stats.MemoryUsed = formatBytes(memStats.Used)
		stats.MemoryTotal = formatBytes(memStats.Total)
	}
	if diskStats, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = diskStats.UsedPercent
	}
	return stats
}

func formatBytes(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	if gb < 1 {
		mb := float64(bytes) / (1024 * 1024)
		return fmt.Sprintf("%.1f MB", mb)
	}
	return fmt.Sprintf("%.1f GB", gb)
}
