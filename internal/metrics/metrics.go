package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls and
// pipeline runs, and forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu             sync.Mutex
	stats          map[string]*endpointStats
	pipelineRuns   int
	pipelineErrors int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordUpstreamCall increments counters for an upstream endpoint call and stores the last observed latency.
func (r *Recorder) RecordUpstreamCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(endpoint, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(endpoint string, retryAfter time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(endpoint)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(endpoint, retryAfter)
	}
}

// RecordPipelineRun tracks one fetch-aggregate-enrich run.
func (r *Recorder) RecordPipelineRun(duration time.Duration, games int, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.pipelineRuns++
	if err != nil {
		r.pipelineErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPipeline(duration, games, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// UpstreamCalls returns the total attempts recorded for an endpoint.
func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// UpstreamErrors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// RateLimitHits returns the number of rate limit events seen for an endpoint.
func (r *Recorder) RateLimitHits(endpoint string) int {
	return r.Snapshot(endpoint).RateLimitHits
}

// PipelineRuns returns the number of runs and how many of them failed.
func (r *Recorder) PipelineRuns() (runs, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineRuns, r.pipelineErrors
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
