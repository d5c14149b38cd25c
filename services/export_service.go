package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kiselev-pavel-dev/menu-cafe/models"
	"github.com/kiselev-pavel-dev/menu-cafe/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrQueueFull     = errors.New("export queue is full")
	ErrExportStopped = errors.New("export service is stopped")
	ErrJobNotFound   = errors.New("export job not found")
)

type JobStatus string

const (
	StatusPending JobStatus = "PENDING"
	StatusStarted JobStatus = "STARTED"
	StatusSuccess JobStatus = "SUCCESS"
	StatusFailure JobStatus = "FAILURE"
)

type ExportJob struct {
	ID        string    `json:"task_id"`
	Status    JobStatus `json:"status"`
	Path      string    `json:"-"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"-"`
	FinishedAt time.Time `json:"-"`
}

func (j *ExportJob) finished() bool {
	return j.Status == StatusSuccess || j.Status == StatusFailure
}

// Renderer writes a catalogue snapshot to a spreadsheet at path.
type Renderer interface {
	Render(snapshot models.CatalogueSnapshot, path string) error
}

type SnapshotRepository interface {
	Snapshot(ctx context.Context) (models.CatalogueSnapshot, error)
}

type ExportConfig struct {
	Dir       string
	Workers   int
	QueueSize int
	// Retention is how long a finished job stays in memory. Its file is
	// still served from disk afterwards.
	Retention time.Duration
}

const defaultRetention = time.Hour

type exportTask struct {
	id       string
	snapshot models.CatalogueSnapshot
}

// ExportService renders catalogue spreadsheets on a fixed pool of workers.
// The snapshot is read in the caller's request, so a job reflects the
// catalogue at the moment it was enqueued.
type ExportService struct {
	repo     SnapshotRepository
	renderer Renderer
	dir       string
	workers   int
	retention time.Duration
	now       func() time.Time

	queue   chan exportTask
	wg      sync.WaitGroup
	mu      sync.RWMutex
	jobs    map[string]*ExportJob
	started bool
	stopped bool
}

func NewExportService(repo SnapshotRepository, renderer Renderer, cfg ExportConfig) *ExportService {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}
	if cfg.Retention <= 0 {
		cfg.Retention = defaultRetention
	}
	return &ExportService{
		repo:      repo,
		renderer:  renderer,
		dir:       cfg.Dir,
		workers:   cfg.Workers,
		retention: cfg.Retention,
		now:       time.Now,
		queue:     make(chan exportTask, cfg.QueueSize),
		jobs:      make(map[string]*ExportJob),
	}
}

func (s *ExportService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go func(worker int) {
			defer s.wg.Done()
			for task := range s.queue {
				s.process(worker, task)
			}
		}(i)
	}
	utils.InfoLogger.WithField("workers", s.workers).Info("export workers started")
}

// Stop rejects new jobs, lets the workers finish what is already queued and
// waits for them to exit.
func (s *ExportService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.queue)
	s.mu.Unlock()

	s.wg.Wait()
	utils.InfoLogger.Info("export workers stopped")
}

func (s *ExportService) Enqueue(ctx context.Context) (ExportJob, error) {
	snapshot, err := s.repo.Snapshot(ctx)
	if err != nil {
		return ExportJob{}, fmt.Errorf("snapshot catalogue: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ExportJob{}, ErrExportStopped
	}
	s.pruneLocked()

	job := &ExportJob{
		ID:        uuid.NewString(),
		Status:    StatusPending,
		CreatedAt: s.now(),
	}
	select {
	case s.queue <- exportTask{id: job.ID, snapshot: snapshot}:
	default:
		return ExportJob{}, ErrQueueFull
	}
	s.jobs[job.ID] = job

	utils.InfoLogger.WithFields(logrus.Fields{
		"job_id":   job.ID,
		"menus":    len(snapshot.Menus),
		"submenus": len(snapshot.SubMenus),
		"dishes":   len(snapshot.Dishes),
	}).Info("export job queued")
	return *job, nil
}

// Result reports the state of a job. A finished file left on disk by an
// earlier process is reported as a success.
func (s *ExportService) Result(id string) (ExportJob, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ExportJob{}, ErrJobNotFound
	}

	s.mu.RLock()
	job, ok := s.jobs[id]
	var snapshot ExportJob
	if ok {
		snapshot = *job
	}
	s.mu.RUnlock()
	if ok {
		return snapshot, nil
	}

	path := s.filePath(id)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return ExportJob{ID: id, Status: StatusSuccess, Path: path}, nil
	}
	return ExportJob{}, ErrJobNotFound
}

func (s *ExportService) filePath(id string) string {
	return filepath.Join(s.dir, id+".xlsx")
}

func (s *ExportService) process(worker int, task exportTask) {
	log := utils.InfoLogger.WithFields(logrus.Fields{"job_id": task.id, "worker": worker})
	s.setStatus(task.id, StatusStarted, "", "")
	log.Info("export job started")

	path := s.filePath(task.id)
	if err := s.render(task.snapshot, path); err != nil {
		utils.ErrorLogger.WithError(err).WithField("job_id", task.id).Error("export job failed")
		s.setStatus(task.id, StatusFailure, "", err.Error())
		return
	}

	s.setStatus(task.id, StatusSuccess, path, "")
	log.Info("export job finished")
}

// render writes to a temporary name first so a half written file is never
// served as a result.
func (s *ExportService) render(snapshot models.CatalogueSnapshot, path string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	tmp := filepath.Join(s.dir, "."+filepath.Base(path))
	if err := s.renderer.Render(snapshot, tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("move export file: %w", err)
	}
	return nil
}

func (s *ExportService) setStatus(id string, status JobStatus, path, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.Status = status
	job.Path = path
	job.Error = errMsg
	if job.finished() {
		job.FinishedAt = s.now()
	}
}

// pruneLocked forgets finished jobs older than the retention window.
// Callers hold s.mu.
func (s *ExportService) pruneLocked() {
	cutoff := s.now().Add(-s.retention)
	for id, job := range s.jobs {
		if job.finished() && job.FinishedAt.Before(cutoff) {
			delete(s.jobs, id)
			utils.InfoLogger.WithField("job_id", id).Debug("export job forgotten")
		}
	}
}
