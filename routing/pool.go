package routing

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	. "github.com/ttpr0/go-roadgraph/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// future
//*******************************************

// Pending result of a submitted shortest path task.
type Future struct {
	key    string
	source int32
	done   chan struct{}
	result ShortestPathResult
	err    error
}

func _NewFuture(key string, source int32) *Future {
	return &Future{
		key:    key,
		source: source,
		done:   make(chan struct{}),
	}
}

func (self *Future) Key() string {
	return self.key
}

// Blocks until the task finished.
func (self *Future) Get() (ShortestPathResult, error) {
	<-self.done
	return self.result, self.err
}

func (self *Future) _Resolve(result ShortestPathResult, err error) {
	self.result = result
	self.err = err
	close(self.done)
}

//*******************************************
// worker pool
//*******************************************

// Fixed size pool of workers, each owning one solver.
//
// A task that fails, by error or panic, fails only its own future. Failures
// are not retried.
type WorkerPool struct {
	tasks  chan *Future
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

func NewWorkerPool(sp IShortestPath, size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	pool := &WorkerPool{
		tasks: make(chan *Future, size*4),
	}
	for i := 0; i < size; i++ {
		pool.wg.Add(1)
		go func() {
			defer pool.wg.Done()
			solver := sp.CreateSolver()
			for {
				// read task from chan
				task, ok := <-pool.tasks
				if !ok {
					break
				}
				task._Resolve(_RunTask(solver, task.source))
			}
		}()
	}
	return pool
}

func _RunTask(solver ISolver, source int32) (result ShortestPathResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("solver panicked: %v", r)
		}
	}()
	return solver.CalcShortestPaths(source)
}

// Queues a shortest path computation from source.
//
// Blocks while the task queue is full.
func (self *WorkerPool) Submit(key string, source int32) *Future {
	future := _NewFuture(key, source)
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.closed {
		future._Resolve(ShortestPathResult{}, ErrPoolClosed)
		return future
	}
	self.tasks <- future
	return future
}

// Stops accepting tasks and waits for the workers to drain the queue.
func (self *WorkerPool) Close() {
	self.mu.Lock()
	if self.closed {
		self.mu.Unlock()
		return
	}
	self.closed = true
	close(self.tasks)
	self.mu.Unlock()
	self.wg.Wait()
}

//*******************************************
// gather
//*******************************************

// Waits for every future and joins the results by key.
//
// The first failed future in submission order fails the whole gather.
func Gather(futures []*Future) (Dict[string, ShortestPathResult], error) {
	// barrier
	for _, future := range futures {
		future.Get()
	}
	results := NewDict[string, ShortestPathResult](len(futures))
	for _, future := range futures {
		result, err := future.Get()
		if err != nil {
			slog.Error(fmt.Sprintf("task %s failed: %v", future.Key(), err))
			return nil, errors.Wrapf(err, "task %s failed", future.Key())
		}
		if results.ContainsKey(future.Key()) {
			return nil, errors.Wrapf(ErrDuplicateKey, "key %s", future.Key())
		}
		results[future.Key()] = result
	}
	return results, nil
}
