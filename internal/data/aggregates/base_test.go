package aggregates

import (
	"context"
	"errors"
	"testing"
	"time"

	domainagg "github.com/yungbote/erp-backend/internal/domain/aggregates"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
)

func TestExecuteWriteObservesSuccessStatus(t *testing.T) {
	hooks := &spyHooks{}
	runner := spyTxRunner{}

	err := executeWrite(context.Background(), BaseDeps{
		Runner: runner,
		Hooks:  hooks,
	}, "aggregate.test.success", func(_ dbctx.Context) error { return nil })
	if err != nil {
		t.Fatalf("executeWrite success: %v", err)
	}
	if len(hooks.Operations) != 1 {
		t.Fatalf("operations count: want=1 got=%d", len(hooks.Operations))
	}
	if hooks.Operations[0].Status != "success" {
		t.Fatalf("operation status: want=success got=%s", hooks.Operations[0].Status)
	}
}

func TestExecuteWriteObservesNotFoundStatus(t *testing.T) {
	hooks := &spyHooks{}
	err := executeWrite(context.Background(), BaseDeps{
		Runner: spyTxRunner{},
		Hooks:  hooks,
	}, "aggregate.test.missing", func(_ dbctx.Context) error {
		return domainagg.NewError(domainagg.CodeNotFound, "aggregate.test.missing", "gone", nil)
	})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not_found code, got=%v", err)
	}
	if len(hooks.Conflicts) != 0 || len(hooks.Unavailable) != 0 {
		t.Fatalf("unexpected counters: %+v", hooks)
	}
	if hooks.Operations[0].Status != string(domainagg.CodeNotFound) {
		t.Fatalf("operation status: got=%s", hooks.Operations[0].Status)
	}
}

func TestExecuteWriteTracksConflictAndUnavailableCounters(t *testing.T) {
	t.Run("conflict", func(t *testing.T) {
		hooks := &spyHooks{}
		err := executeWrite(context.Background(), BaseDeps{
			Runner: spyTxRunner{},
			Hooks:  hooks,
		}, "aggregate.test.conflict", func(_ dbctx.Context) error {
			return ConflictError("unknown product")
		})
		if !domainagg.IsCode(err, domainagg.CodePersistenceConflict) {
			t.Fatalf("expected conflict code, got=%v", err)
		}
		if len(hooks.Conflicts) != 1 || hooks.Conflicts[0] != "aggregate.test.conflict" {
			t.Fatalf("conflict hooks: %+v", hooks.Conflicts)
		}
		if len(hooks.Unavailable) != 0 {
			t.Fatalf("unavailable hooks should be empty, got=%+v", hooks.Unavailable)
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		hooks := &spyHooks{}
		err := executeWrite(context.Background(), BaseDeps{
			Runner: failingTxRunner{err: context.DeadlineExceeded},
			Hooks:  hooks,
		}, "aggregate.test.down", func(_ dbctx.Context) error {
			t.Fatalf("body must not run when begin fails")
			return nil
		})
		if !domainagg.IsCode(err, domainagg.CodeStorageUnavailable) {
			t.Fatalf("expected unavailable code, got=%v", err)
		}
		if len(hooks.Unavailable) != 1 || hooks.Unavailable[0] != "aggregate.test.down" {
			t.Fatalf("unavailable hooks: %+v", hooks.Unavailable)
		}
		if len(hooks.Operations) != 1 || hooks.Operations[0].Status != string(domainagg.CodeStorageUnavailable) {
			t.Fatalf("unexpected op status: %+v", hooks.Operations)
		}
	})
}

func TestAggregateErrorStatus(t *testing.T) {
	if got := aggregateErrorStatus(nil); got != "success" {
		t.Fatalf("nil status: want=success got=%s", got)
	}
	if got := aggregateErrorStatus(ConflictError("x")); got != string(domainagg.CodePersistenceConflict) {
		t.Fatalf("conflict status: got=%s", got)
	}
	if got := aggregateErrorStatus(errors.New("boom")); got != string(domainagg.CodeInternal) {
		t.Fatalf("internal status: got=%s", got)
	}
	if got := aggregateErrorStatus(context.Canceled); got != string(domainagg.CodeStorageUnavailable) {
		t.Fatalf("canceled status: got=%s", got)
	}
}

type spyTxRunner struct{}

func (spyTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(dbctx.Context{Ctx: ctx})
}

type failingTxRunner struct{ err error }

func (r failingTxRunner) InTx(context.Context, func(dbc dbctx.Context) error) error {
	return r.err
}

type spyHooks struct {
	Operations  []spyOperation
	Conflicts   []string
	Unavailable []string
}

type spyOperation struct {
	Name   string
	Status string
}

func (h *spyHooks) ObserveOperation(name, status string, _ time.Duration) {
	h.Operations = append(h.Operations, spyOperation{Name: name, Status: status})
}

func (h *spyHooks) IncConflict(name string) {
	h.Conflicts = append(h.Conflicts, name)
}

func (h *spyHooks) IncUnavailable(name string) {
	h.Unavailable = append(h.Unavailable, name)
}
