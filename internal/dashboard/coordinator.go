package dashboard

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hyunjkang/invest-manager/internal/apperrors"
)

// Coordinator keeps the ledger store and the portfolio summary in sync with
// the remote API. Writes go remote-first and are followed by a full reload of
// both views; local state is never patched optimistically, so remote truth
// always wins.
//
// Operations are serialized with a mutex: a second trigger while one is in
// flight waits rather than interleaving. The two post-mutation reloads have
// no ordering dependency on each other and run concurrently.
type Coordinator struct {
	mu     sync.Mutex
	source Source
	store  *Store

	summaryMu        sync.RWMutex
	summary          PortfolioSummary
	summaryAvailable bool
}

// NewCoordinator creates a coordinator over the given source with an empty store.
func NewCoordinator(source Source) *Coordinator {
	return &Coordinator{
		source: source,
		store:  NewStore(),
	}
}

// Store exposes the ledger store for view computation.
func (c *Coordinator) Store() *Store {
	return c.store
}

// Summary returns the last fetched portfolio summary and whether it is
// available. Unavailable means the last refresh failed, not that the
// portfolio is empty.
func (c *Coordinator) Summary() (PortfolioSummary, bool) {
	c.summaryMu.RLock()
	defer c.summaryMu.RUnlock()
	return c.summary, c.summaryAvailable
}

// LoadAll performs the initial (or manual) load of both the ledger and the
// portfolio summary.
func (c *Coordinator) LoadAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reloadBoth(ctx)
}

// Create submits a new asset, then reloads both views regardless of the
// write's outcome. A write failure is reported to the caller instead of being
// swallowed; the reload still tells the caller what the server really holds.
func (c *Coordinator) Create(ctx context.Context, input CreateInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	writeErr := c.source.CreateAsset(ctx, input)
	reloadErr := c.reloadBoth(ctx)

	if writeErr != nil {
		return fmt.Errorf("create asset: %w", writeErr)
	}
	return reloadErr
}

// Remove deletes an asset by id, then reloads both views, mirroring Create.
func (c *Coordinator) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	writeErr := c.source.DeleteAsset(ctx, id)
	reloadErr := c.reloadBoth(ctx)

	if writeErr != nil {
		return fmt.Errorf("delete asset: %w", writeErr)
	}
	return reloadErr
}

// ReloadLedger refetches the asset list and replaces the store. On failure
// the store is left in the defined empty state and the error wraps
// apperrors.ErrLedgerUnavailable.
func (c *Coordinator) ReloadLedger(ctx context.Context) error {
	raws, err := c.source.FetchAssets(ctx)
	if err != nil {
		c.store.Clear()
		return fmt.Errorf("%w: %v", apperrors.ErrLedgerUnavailable, err)
	}

	c.store.Load(raws)
	return nil
}

// RefreshSummary refetches the portfolio valuation. On failure the summary is
// marked unavailable and the error wraps apperrors.ErrSummaryUnavailable.
func (c *Coordinator) RefreshSummary(ctx context.Context) error {
	summary, err := c.source.FetchPortfolio(ctx)

	c.summaryMu.Lock()
	defer c.summaryMu.Unlock()

	if err != nil {
		c.summary = PortfolioSummary{}
		c.summaryAvailable = false
		return fmt.Errorf("%w: %v", apperrors.ErrSummaryUnavailable, err)
	}

	c.summary = summary
	c.summaryAvailable = true
	return nil
}

func (c *Coordinator) reloadBoth(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.ReloadLedger(ctx) })
	g.Go(func() error { return c.RefreshSummary(ctx) })
	return g.Wait()
}
