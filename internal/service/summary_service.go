package service

import (
	"context"

	"github.com/Aditya-2aga/todo-assistant/internal/apperr"
	"github.com/Aditya-2aga/todo-assistant/internal/repo"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// NoPendingMessage is both the summary and the outcome message when
	// there is nothing to summarize. The absence of work is still posted
	// to Slack so the team sees it.
	NoPendingMessage = "No pending todos to summarize."

	successMessage    = "Summary generated and sent to Slack successfully!"
	notifyFailMessage = "Summary generated, but sending to Slack failed."
)

// Summarizer turns an ordered list of pending titles into summary text.
type Summarizer interface {
	Summarize(ctx context.Context, titles []string) (string, error)
}

// Notifier posts summary text to the team chat.
type Notifier interface {
	Notify(ctx context.Context, summary string) error
}

// SummarizeResult is the transient outcome of one summarize run.
type SummarizeResult struct {
	Message   string
	Summary   string
	SlackSent bool
}

// SummaryService runs the summarize-and-notify workflow: read pending
// todos, generate a summary, post it to Slack. Store and summarizer
// failures are fatal to the run; a notification failure is reported in
// the result instead of failing it, since the summary itself is the
// valuable part.
type SummaryService struct {
	repo   repo.TodoRepo
	gen    Summarizer
	notify Notifier
	log    *zap.SugaredLogger
	sf     singleflight.Group
}

func NewSummaryService(r repo.TodoRepo, gen Summarizer, n Notifier, log *zap.SugaredLogger) *SummaryService {
	return &SummaryService{repo: r, gen: gen, notify: n, log: log}
}

// Run executes the workflow. Concurrent calls collapse into a single
// upstream run; every caller gets the same result.
func (s *SummaryService) Run(ctx context.Context) (SummarizeResult, error) {
	v, err, _ := s.sf.Do("summarize", func() (interface{}, error) {
		return s.run(ctx)
	})
	if err != nil {
		return SummarizeResult{}, err
	}
	return v.(SummarizeResult), nil
}

func (s *SummaryService) run(ctx context.Context) (SummarizeResult, error) {
	pending, err := s.repo.ListPending(ctx)
	if err != nil {
		return SummarizeResult{}, apperr.Store(err)
	}

	if len(pending) == 0 {
		sent := s.send(ctx, NoPendingMessage)
		return SummarizeResult{
			Message:   NoPendingMessage,
			Summary:   NoPendingMessage,
			SlackSent: sent,
		}, nil
	}

	titles := make([]string, len(pending))
	for i, t := range pending {
		titles[i] = t.Title
	}

	summary, err := s.gen.Summarize(ctx, titles)
	if err != nil {
		// No notification is attempted: a wrong or partial summary is
		// worse than none.
		return SummarizeResult{}, err
	}

	if sent := s.send(ctx, summary); !sent {
		return SummarizeResult{Message: notifyFailMessage, Summary: summary, SlackSent: false}, nil
	}
	return SummarizeResult{Message: successMessage, Summary: summary, SlackSent: true}, nil
}

func (s *SummaryService) send(ctx context.Context, text string) bool {
	if err := s.notify.Notify(ctx, text); err != nil {
		s.log.Warnw("slack notification failed", "err", err)
		return false
	}
	return true
}
