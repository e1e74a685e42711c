package testutil

import (
	"context"
	"sync"

	"github.com/yungbote/erp-backend/internal/data/aggregates"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
)

// InjectedTxRunner wraps a real runner and injects failures around the body.
// FailCommit is returned from inside the inner transaction after the body
// succeeds, so the inner runner rolls every write back. With a nil Inner the
// body runs against dbctx.Context{Ctx: ctx} and nothing is persisted through it.
type InjectedTxRunner struct {
	Inner aggregates.TxRunner

	FailBegin  error
	FailCommit error

	mu            sync.Mutex
	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
	BodyCalls     int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.BeginCalls++
	failBegin := r.FailBegin
	failCommit := r.FailCommit
	r.mu.Unlock()

	if failBegin != nil {
		return failBegin
	}

	body := func(dbc dbctx.Context) error {
		r.mu.Lock()
		r.BodyCalls++
		r.mu.Unlock()
		if fn != nil {
			if err := fn(dbc); err != nil {
				return err
			}
		}
		return failCommit
	}

	var err error
	if r.Inner != nil {
		err = r.Inner.InTx(ctx, body)
	} else {
		err = body(dbctx.Context{Ctx: ctx})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.RollbackCalls++
		return err
	}
	r.CommitCalls++
	return nil
}
