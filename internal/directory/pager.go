package directory

import (
	"context"

	"github.com/rgayashan/FindAMechanic/internal/model"
)

// lister is the list call the Pager and Searcher drive.
type lister interface {
	ListMechanics(ctx context.Context, page, pageSize int, search string) ([]model.Mechanic, error)
}

// Pager accumulates list pages on behalf of a caller. The aggregator
// itself is stateless; the growing list, current page and has-more flag
// live here. A Pager is not safe for concurrent use and pages must be
// loaded in order.
type Pager struct {
	svc      lister
	pageSize int

	search    string
	page      int
	hasMore   bool
	mechanics []model.Mechanic
}

// NewPager creates a pager that fetches pageSize items at a time.
func NewPager(svc lister, pageSize int) *Pager {
	return &Pager{svc: svc, pageSize: pageSize, hasMore: true}
}

// Reset clears the accumulated list and re-targets the pager at a new
// search term. A new search always starts again from page 1.
func (p *Pager) Reset(search string) {
	p.search = search
	p.page = 0
	p.hasMore = true
	p.mechanics = nil
}

// LoadNext fetches the next page and merges it: page 1 replaces the held
// list, later pages append. An underfull page marks the end of the data.
// On error the pager's state is left untouched so the caller can retry.
func (p *Pager) LoadNext(ctx context.Context) ([]model.Mechanic, error) {
	next := p.page + 1
	fetched, err := p.svc.ListMechanics(ctx, next, p.pageSize, p.search)
	if err != nil {
		return nil, err
	}

	if next == 1 {
		p.mechanics = fetched
	} else {
		p.mechanics = append(p.mechanics, fetched...)
	}
	p.page = next
	p.hasMore = len(fetched) >= p.pageSize
	return fetched, nil
}

// HasMore reports whether the last loaded page was full, i.e. another
// page may exist.
func (p *Pager) HasMore() bool {
	return p.hasMore
}

// Mechanics returns the accumulated list.
func (p *Pager) Mechanics() []model.Mechanic {
	return p.mechanics
}

// Page returns the last successfully loaded page number, zero before the
// first load.
func (p *Pager) Page() int {
	return p.page
}
