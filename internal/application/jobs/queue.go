// Package jobs provides the bounded in-process queue behind the async
// analysis endpoint. Jobs move queued → running → done/failed; finished jobs
// are kept for a retention window so callers can poll for the result. There
// is no broker: goroutines and a buffered channel carry the whole load of a
// single replica.
package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/MedText-Intelligence/internal/application/analysis"
	"github.com/turtacn/MedText-Intelligence/internal/config"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MedText-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

// Status is the lifecycle state of an analysis job.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Job is the externally visible state of one queued analysis.
type Job struct {
	ID          string           `json:"id"`
	Status      Status           `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
	StartedAt   time.Time        `json:"started_at,omitempty"`
	FinishedAt  time.Time        `json:"finished_at,omitempty"`
	Report      *analysis.Report `json:"report,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// Finished reports whether the job has reached a terminal state.
func (j Job) Finished() bool {
	return j.Status == StatusDone || j.Status == StatusFailed
}

// Queue accepts analysis jobs and runs them on a fixed worker pool.
type Queue interface {
	// Submit enqueues an analysis job and returns its queued snapshot.
	// Returns ErrCodeAnalysisQueueFull when the buffer is at capacity.
	Submit(ctx context.Context, text string, opts analysis.Options) (Job, error)

	// Get returns the current snapshot of a job by ID.
	Get(id string) (Job, error)

	// Start launches the worker pool and the retention janitor.
	Start()

	// Stop drains the queue: no new submissions are accepted and Stop
	// returns once the running workers finish or ctx expires.
	Stop(ctx context.Context) error
}

type task struct {
	id   string
	text string
	opts analysis.Options
}

type queue struct {
	service analysis.Service
	cfg     config.WorkerConfig
	logger  logging.Logger
	metrics *prometheus.AppMetrics

	tasks chan task

	mu     sync.RWMutex
	jobs   map[string]*Job
	closed bool

	wg   sync.WaitGroup
	quit chan struct{}
}

// QueueOption customises queue construction.
type QueueOption func(*queue)

// WithMetrics attaches application metrics.
func WithMetrics(m *prometheus.AppMetrics) QueueOption {
	return func(q *queue) { q.metrics = m }
}

// NewQueue builds a queue over the given analysis service. Zero config
// fields fall back to small single-replica defaults.
func NewQueue(svc analysis.Service, cfg config.WorkerConfig, log logging.Logger, opts ...QueueOption) (Queue, error) {
	if svc == nil {
		return nil, errors.New(errors.ErrCodeAnalysisOptsInvalid, "job queue requires an analysis service")
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 2
	}
	if cfg.QueueDepth < 1 {
		cfg.QueueDepth = 32
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 30 * time.Second
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 15 * time.Minute
	}

	q := &queue{
		service: svc,
		cfg:     cfg,
		logger:  log.Named("jobs"),
		tasks:   make(chan task, cfg.QueueDepth),
		jobs:    make(map[string]*Job),
		quit:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

func (q *queue) Start() {
	for i := 0; i < q.cfg.Concurrency; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	q.wg.Add(1)
	go q.janitor()
	q.logger.Info("job queue started",
		logging.Int("concurrency", q.cfg.Concurrency),
		logging.Int("queue_depth", q.cfg.QueueDepth))
}

func (q *queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	q.mu.Unlock()

	close(q.tasks)
	close(q.quit)

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), errors.ErrCodeTimeout, "job queue shutdown timed out")
	}
}

func (q *queue) Submit(ctx context.Context, text string, opts analysis.Options) (Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return Job{}, errors.New(errors.ErrCodeServiceUnavailable, "job queue is shutting down")
	}

	job := &Job{
		ID:          uuid.NewString(),
		Status:      StatusQueued,
		SubmittedAt: time.Now(),
	}
	select {
	case q.tasks <- task{id: job.ID, text: text, opts: opts}:
	default:
		return Job{}, errors.New(errors.ErrCodeAnalysisQueueFull, "analysis job queue is full")
	}

	q.jobs[job.ID] = job
	if q.metrics != nil {
		q.metrics.JobsTotal.WithLabelValues(string(StatusQueued)).Inc()
		q.metrics.JobQueueDepth.WithLabelValues("analysis").Set(float64(len(q.tasks)))
	}
	return *job, nil
}

func (q *queue) Get(id string) (Job, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	job, ok := q.jobs[id]
	if !ok {
		return Job{}, errors.New(errors.ErrCodeAnalysisJobNotFound, "analysis job not found").WithDetail("id=" + id)
	}
	return *job, nil
}

func (q *queue) worker() {
	defer q.wg.Done()
	for t := range q.tasks {
		q.run(t)
	}
}

func (q *queue) run(t task) {
	q.transition(t.id, func(job *Job) {
		job.Status = StatusRunning
		job.StartedAt = time.Now()
	})
	if q.metrics != nil {
		q.metrics.JobActiveCount.WithLabelValues("analysis").Inc()
		defer q.metrics.JobActiveCount.WithLabelValues("analysis").Dec()
	}

	started := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), q.cfg.JobTimeout)
	report, err := q.service.AnalyzeClinicalReasoning(ctx, t.text, t.opts)
	cancel()

	if err != nil {
		q.logger.Warn("analysis job failed",
			logging.String("job_id", t.id), logging.Err(err))
		q.transition(t.id, func(job *Job) {
			job.Status = StatusFailed
			job.FinishedAt = time.Now()
			job.Error = err.Error()
		})
		if q.metrics != nil {
			q.metrics.JobsTotal.WithLabelValues(string(StatusFailed)).Inc()
		}
		return
	}

	q.transition(t.id, func(job *Job) {
		job.Status = StatusDone
		job.FinishedAt = time.Now()
		job.Report = report
	})
	if q.metrics != nil {
		q.metrics.JobsTotal.WithLabelValues(string(StatusDone)).Inc()
		q.metrics.JobDuration.WithLabelValues().Observe(time.Since(started).Seconds())
	}
}

func (q *queue) transition(id string, apply func(*Job)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if job, ok := q.jobs[id]; ok {
		apply(job)
	}
}

// janitor evicts finished jobs once their retention window lapses.
func (q *queue) janitor() {
	defer q.wg.Done()
	ticker := time.NewTicker(q.cfg.ResultTTL / 4)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			q.prune(time.Now().Add(-q.cfg.ResultTTL))
		case <-q.quit:
			return
		}
	}
}

func (q *queue) prune(cutoff time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, job := range q.jobs {
		if job.Finished() && job.FinishedAt.Before(cutoff) {
			delete(q.jobs, id)
		}
	}
}

//Personal.AI order the ending
