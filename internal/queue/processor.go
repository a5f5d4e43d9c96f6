package queue

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed cleanup jobs.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
)

// Cleaner defines the interface for executing cleanup jobs.
type Cleaner interface {
	DeclineSiblingInvites(ctx context.Context, userID, acceptedInviteID primitive.ObjectID) (int64, error)
	PurgeTeamArtifacts(ctx context.Context, teamID primitive.ObjectID) error
}

// Processor processes cleanup jobs from the queue.
type Processor struct {
	queue        *MemoryQueue
	cleaner      Cleaner
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new cleanup job processor.
func NewProcessor(queue *MemoryQueue, cleaner Cleaner, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		cleaner:     cleaner,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Cleanup processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Cleanup processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job CleanupJob) {
	log.Printf("Processing %s job (attempt %d)", job.Kind, job.RetryCount+1)

	var err error
	switch job.Kind {
	case JobDeclineSiblingInvites:
		var declined int64
		declined, err = p.cleaner.DeclineSiblingInvites(ctx, job.UserID, job.AcceptedInviteID)
		if err == nil && declined > 0 {
			log.Printf("Declined %d sibling invites for user %s", declined, job.UserID.Hex())
		}
	case JobPurgeTeamArtifacts:
		err = p.cleaner.PurgeTeamArtifacts(ctx, job.TeamID)
	default:
		log.Printf("Unknown cleanup job kind %q, dropping", job.Kind)
		return
	}

	if err != nil {
		log.Printf("Cleanup job %s failed: %v", job.Kind, err)
		p.handleFailure(job)
		return
	}
}

func (p *Processor) handleFailure(job CleanupJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		// Cleanup is best-effort; giving up leaves stale rows, not broken state
		log.Printf("Max retries reached for %s job, dropping", job.Kind)
		return
	}

	// Calculate exponential backoff delay
	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.Printf("Retrying %s job in %v (attempt %d/%d)", job.Kind, delay, job.RetryCount+1, MaxRetries)

	// Schedule retry with delay. Uses shutdownCh so pending retries are
	// dropped during graceful shutdown instead of blocking it.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay for %s job, dropping", job.Kind)
			return
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue %s job: %v", job.Kind, err)
			}
		}
	}()
}
