package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

type MonitoringService struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewMonitoringService() *MonitoringService {
	return &MonitoringService{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests by method and status code",
			},
			[]string{"method", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// Middleware records request counts and latency
func (s *MonitoringService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		s.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(ww.status)).Inc()
		s.requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

// SystemSnapshot is the point-in-time host view shown on the admin panel
type SystemSnapshot struct {
	CPUPercent    float64 `json:"cpu_percent"`
	Load1         float64 `json:"load_1"`
	MemUsedBytes  uint64  `json:"mem_used_bytes"`
	MemTotalBytes uint64  `json:"mem_total_bytes"`
	MemPercent    float64 `json:"mem_percent"`
	DiskUsedBytes uint64  `json:"disk_used_bytes"`
	DiskTotal     uint64  `json:"disk_total_bytes"`
	DiskPercent   float64 `json:"disk_percent"`
}

// Snapshot samples CPU, load, memory and disk usage
func (s *MonitoringService) Snapshot() SystemSnapshot {
	var snap SystemSnapshot

	if percents, err := cpu.Percent(time.Second, false); err == nil && len(percents) > 0 {
		snap.CPUPercent = percents[0]
	}
	if avg, err := load.Avg(); err == nil {
		snap.Load1 = avg.Load1
	}
	if memStats, err := mem.VirtualMemory(); err == nil {
		snap.MemUsedBytes = memStats.Used
		snap.MemTotalBytes = memStats.Total
		snap.MemPercent = memStats.UsedPercent
	}
	if diskStats, err := disk.Usage("/"); err == nil {
		snap.DiskUsedBytes = diskStats.Used
		snap.DiskTotal = diskStats.Total
		snap.DiskPercent = diskStats.UsedPercent
	}

	return snap
}

// responseWriter wrapper to capture status code
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
