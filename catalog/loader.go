package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/guiguan/caster"
)

// Some defaults for loader configuration
const (
	defaultBuffer      = 16
	defaultConcurrency = 4
	subscriberCapacity = 8
)

// LoaderConfig represents a set of configuration parameters for a Loader.
type LoaderConfig struct {
	Buffer      int // number of pending requests before Load blocks
	Concurrency int // number of requests handled in parallel
}

func (config *LoaderConfig) normalized() LoaderConfig {
	c := LoaderConfig{}
	if config != nil {
		c = *config
	}
	if c.Buffer <= 0 {
		c.Buffer = defaultBuffer
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
	return c
}

// Event is broadcast by a Loader for every completed request.
type Event struct {
	Request Request
	Indices []int // arena indices of the new child nodes
	Err     error // non-nil if either the host or folding failed
}

// Loader fetches children from a host asynchronously and folds them into a
// catalog tree. Completed requests are broadcast to subscribers; clients
// which have to know when a node is populated subscribe before calling Load.
type Loader struct {
	host     Host
	tree     *Systems
	ctx      context.Context
	cast     *caster.Caster // broadcaster for completed requests
	requests chan Request
	wg       sync.WaitGroup
	mu       sync.RWMutex // guards closed and sending on requests
	closed   bool
}

// NewLoader creates a loader for a catalog tree and starts its workers.
// Workers stop when ctx is done or when the loader is closed.
// config may be nil, in which case defaults are used.
func NewLoader(ctx context.Context, host Host, tree *Systems, config *LoaderConfig) *Loader {
	c := config.normalized()
	l := &Loader{
		host:     host,
		tree:     tree,
		ctx:      ctx,
		cast:     caster.New(ctx),
		requests: make(chan Request, c.Buffer),
	}
	l.wg.Add(c.Concurrency)
	for range c.Concurrency {
		go l.work()
	}
	tracer().Debugf("catalog: started loader with %d workers", c.Concurrency)
	return l
}

// Load queues a request for the children of a node. It blocks while the
// queue is full. Requests for a system other than the tree's are rejected
// with ErrSystemMismatch.
func (l *Loader) Load(ctx context.Context, req Request) error {
	if req.System != l.tree.System() {
		return fmt.Errorf("%w: %s instead of %s", ErrSystemMismatch, req.System, l.tree.System())
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrLoaderClosed
	}
	select {
	case l.requests <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ctx.Done():
		return l.ctx.Err()
	}
}

// Subscribe returns a channel receiving an Event for every request completed
// after the call. The channel is closed when ctx is done or the loader is
// closed. Subscribers must drain their channel, otherwise the loader's
// workers will block.
func (l *Loader) Subscribe(ctx context.Context) (<-chan Event, bool) {
	sub, ok := l.cast.Sub(ctx, subscriberCapacity)
	if !ok {
		return nil, false
	}
	events := make(chan Event, subscriberCapacity)
	go func() {
		defer close(events)
		for msg := range sub {
			select {
			case events <- msg.(Event):
			case <-ctx.Done():
				for range sub { // caster closes sub after unsubscribing
				}
				return
			}
		}
	}()
	return events, true
}

// Close stops accepting requests, waits for pending requests to complete and
// closes all subscriber channels.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.requests)
	l.mu.Unlock()
	l.wg.Wait()
	l.cast.Close()
	tracer().Debugf("catalog: loader closed")
}

func (l *Loader) work() {
	defer l.wg.Done()
	for {
		select {
		case req, ok := <-l.requests:
			if !ok {
				return
			}
			l.cast.Pub(l.handle(req))
		case <-l.ctx.Done():
			return
		}
	}
}

func (l *Loader) handle(req Request) Event {
	ev := Event{Request: req}
	children, err := l.host.Children(l.ctx, req)
	if err != nil {
		tracer().Errorf("catalog: host cannot list children of %v: %v", req.Object, err)
		ev.Err = err
		return ev
	}
	ev.Indices, ev.Err = l.tree.Fold(req, children)
	return ev
}
