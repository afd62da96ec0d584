package viewmodel

import (
	"context"

	"github.com/roach88/contacts/internal/dispatch"
	"github.com/roach88/contacts/internal/repository"
)

// screen holds the state shared by every view-model.
type screen struct {
	repo       repository.Repository
	dispatcher dispatch.Dispatcher
	ctx        context.Context
	cancel     context.CancelFunc

	DataLoading      Live[bool]
	ShowMessageEvent Live[*Event[MessageID]]
}

func (s *screen) init(repo repository.Repository, d dispatch.Dispatcher) {
	s.repo = repo
	s.dispatcher = d
	s.ctx, s.cancel = context.WithCancel(context.Background())
}

// Close abandons in-flight operations. Store writes already issued still
// complete in the background.
func (s *screen) Close() {
	s.cancel()
}

// launch marks the screen as loading and runs op on the dispatcher.
// Loading is reset once op returns, on every path.
func (s *screen) launch(op func(ctx context.Context)) {
	s.DataLoading.Set(true)
	s.dispatcher.Go(func() {
		defer s.DataLoading.Set(false)
		if s.ctx.Err() != nil {
			return
		}
		op(s.ctx)
	})
}

func (s *screen) showMessage(id MessageID) {
	emit(&s.ShowMessageEvent, id)
}
