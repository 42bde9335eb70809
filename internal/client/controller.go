package client

import (
	"context"
	"errors"
)

var errNotLoaded = errors.New("todo is not in the local list; refresh first")

// Filter selects which items Visible returns. Display-only: the full
// list is always kept.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Controller holds the client-side list state: the items, one loading
// flag covering every in-flight action, the last error message and the
// last generated summary. It reconciles the local list with server
// responses: prepend on create, replace-in-place on update, remove on
// delete, replace wholesale on refresh. A failed call sets the error
// and leaves the list untouched.
//
// Like the UI it models, the controller is driven from a single
// goroutine; it is not safe for concurrent use. Overlapping requests
// resolving out of order are tolerated: the last response to apply wins.
type Controller struct {
	api *Client

	items       []Item
	loading     bool
	lastError   string
	lastSummary string
	filter      Filter
}

func NewController(api *Client) *Controller {
	return &Controller{api: api, filter: FilterAll}
}

// begin marks an action started: loading set, previous error cleared.
func (s *Controller) begin() {
	s.loading = true
	s.lastError = ""
}

func (s *Controller) fail(action string, err error) {
	s.lastError = "Failed to " + action + ": " + err.Error()
}

// Refresh replaces the whole list with the server's.
func (s *Controller) Refresh(ctx context.Context) error {
	s.begin()
	defer func() { s.loading = false }()

	items, err := s.api.List(ctx)
	if err != nil {
		s.fail("load todos", err)
		return err
	}
	s.items = items
	return nil
}

// Add creates a todo and prepends it, matching the newest-first listing.
func (s *Controller) Add(ctx context.Context, title string) error {
	s.begin()
	defer func() { s.loading = false }()

	item, err := s.api.Create(ctx, title)
	if err != nil {
		s.fail("add todo", err)
		return err
	}
	s.items = append([]Item{item}, s.items...)
	return nil
}

// Toggle flips the completed flag of the item with the given id.
func (s *Controller) Toggle(ctx context.Context, id int64) error {
	s.begin()
	defer func() { s.loading = false }()

	cur, ok := s.find(id)
	if !ok {
		s.lastError = "Todo not found in the current list"
		return errNotLoaded
	}
	next := !cur.Completed
	item, err := s.api.Update(ctx, id, nil, &next)
	if err != nil {
		s.fail("update todo", err)
		return err
	}
	s.replace(item)
	return nil
}

// Rename changes the title of the item with the given id.
func (s *Controller) Rename(ctx context.Context, id int64, title string) error {
	s.begin()
	defer func() { s.loading = false }()

	item, err := s.api.Update(ctx, id, &title, nil)
	if err != nil {
		s.fail("update todo", err)
		return err
	}
	s.replace(item)
	return nil
}

// Remove deletes the item and drops it from the local list.
func (s *Controller) Remove(ctx context.Context, id int64) error {
	s.begin()
	defer func() { s.loading = false }()

	if _, err := s.api.Delete(ctx, id); err != nil {
		s.fail("delete todo", err)
		return err
	}
	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return nil
}

// Summarize runs the summarize workflow and records the returned text.
func (s *Controller) Summarize(ctx context.Context) (SummarizeOutcome, error) {
	s.begin()
	defer func() { s.loading = false }()

	out, err := s.api.Summarize(ctx)
	if err != nil {
		s.fail("generate summary", err)
		return SummarizeOutcome{}, err
	}
	s.lastSummary = out.Summary
	return out, nil
}

// Items returns a copy of the full list.
func (s *Controller) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Visible returns the items matching the current filter.
func (s *Controller) Visible() []Item {
	var out []Item
	for _, it := range s.items {
		switch s.filter {
		case FilterActive:
			if it.Completed {
				continue
			}
		case FilterCompleted:
			if !it.Completed {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// ActiveCount is the number of pending items, for the footer counter.
func (s *Controller) ActiveCount() int {
	n := 0
	for _, it := range s.items {
		if !it.Completed {
			n++
		}
	}
	return n
}

func (s *Controller) SetFilter(f Filter) { s.filter = f }

func (s *Controller) CurrentFilter() Filter { return s.filter }

func (s *Controller) Loading() bool { return s.loading }

func (s *Controller) LastError() string { return s.lastError }

func (s *Controller) LastSummary() string { return s.lastSummary }

func (s *Controller) find(id int64) (Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func (s *Controller) replace(item Item) {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return
		}
	}
}
