// File path: internal/store/saver.go
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rfplab/rfpgen/internal/common"
)

const (
	saverQueueSize   = 256
	saverWriteBudget = 5 * time.Second
)

// Saver is the fire-and-forget write path. Handlers enqueue work and move
// on; a single background worker applies it against the store. Writes carry
// no delivery guarantee: a full queue or a failed write is logged and
// dropped, never surfaced to the request that queued it.
type Saver struct {
	store *Store
	queue chan func(context.Context, *Store) error
	wg    sync.WaitGroup
	once  sync.Once
}

func NewSaver(store *Store) *Saver {
	s := &Saver{
		store: store,
		queue: make(chan func(context.Context, *Store) error, saverQueueSize),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *Saver) run() {
	defer s.wg.Done()
	logger := common.Logger()
	for job := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), saverWriteBudget)
		if err := job(ctx, s.store); err != nil {
			logger.Warn("store: background write failed", "error", err)
		}
		cancel()
	}
}

func (s *Saver) enqueue(job func(context.Context, *Store) error) {
	if s == nil {
		return
	}
	select {
	case s.queue <- job:
	default:
		common.Logger().Warn("store: write queue full, snapshot dropped")
	}
}

// SaveSession queues a session snapshot.
func (s *Saver) SaveSession(row SessionRow) {
	s.enqueue(func(ctx context.Context, st *Store) error {
		return st.UpsertSession(ctx, row)
	})
}

// SaveDocument queues the generated document for a session.
func (s *Saver) SaveDocument(sessionID, document string) {
	s.enqueue(func(ctx context.Context, st *Store) error {
		return st.AttachDocument(ctx, sessionID, document)
	})
}

// Close drains the queue and stops the worker.
func (s *Saver) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}
