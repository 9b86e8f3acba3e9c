package enrich

import (
	"context"
	"log"
	"sync"
)

// TitleUpdater applies an enrichment result to a stored item. Updating an
// item that no longer exists must be a no-op.
type TitleUpdater interface {
	UpdateTitle(ctx context.Context, id, title string) error
}

// Result is an enrichment outcome addressed by item identifier.
type Result struct {
	ID    string
	Title string
}

// Dispatcher runs metadata lookups out-of-band from capture. Each Submit
// launches one lookup task; successful results are delivered through an
// internal channel to a single consumer that applies them to the store,
// so enrichment completion is decoupled from any rendering surface.
// Failures are dropped: enrichment never turns a capture into an error.
type Dispatcher struct {
	client  *Client
	updater TitleUpdater

	results chan Result
	wg      sync.WaitGroup
	done    chan struct{}

	closeOnce sync.Once
}

// NewDispatcher builds a dispatcher and starts its consumer.
func NewDispatcher(client *Client, updater TitleUpdater) *Dispatcher {
	d := &Dispatcher{
		client:  client,
		updater: updater,
		results: make(chan Result, 16),
		done:    make(chan struct{}),
	}
	go d.consume()
	return d
}

// Submit schedules a metadata lookup for the given item. It returns
// immediately; the capture that triggered it is already acknowledged.
func (d *Dispatcher) Submit(id, rawURL string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		t, err := d.client.Lookup(context.Background(), rawURL)
		if err != nil {
			// Soft failure: the locally normalized title stays.
			log.Printf("enrich: %v", err)
			return
		}
		d.results <- Result{ID: id, Title: t}
	}()
}

// consume applies results in arrival order. A late result for a removed
// item is a no-op inside UpdateTitle.
func (d *Dispatcher) consume() {
	defer close(d.done)
	for r := range d.results {
		if err := d.updater.UpdateTitle(context.Background(), r.ID, r.Title); err != nil {
			log.Printf("enrich: apply title for %s: %v", r.ID, err)
		}
	}
}

// Close waits for in-flight lookups to finish and their results to be
// applied. Used by one-shot surfaces (the CLI) so enrichment can land
// before the process exits; long-running surfaces call it on shutdown.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.wg.Wait()
		close(d.results)
		<-d.done
	})
}
