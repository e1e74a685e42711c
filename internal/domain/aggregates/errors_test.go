package aggregates

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsCodeThroughWrapping(t *testing.T) {
	base := NewError(CodePersistenceConflict, "Sales.Order.Place", "fk", errors.New("boom"))
	wrapped := fmt.Errorf("create order: %w", base)
	if !IsCode(wrapped, CodePersistenceConflict) {
		t.Fatalf("expected persistence_conflict through wrap, got %q", CodeOf(wrapped))
	}
	if IsCode(wrapped, CodeNotFound) {
		t.Fatalf("unexpected not_found")
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Fatalf("plain errors carry no code")
	}
}

func TestErrorString(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{&Error{Code: CodeNotFound, Op: "op", Message: "missing"}, "op: missing (not_found)"},
		{&Error{Code: CodeNotFound, Op: "op"}, "op (not_found)"},
		{&Error{Code: CodeInternal, Message: "x"}, "x (internal)"},
		{&Error{Code: CodeStorageUnavailable}, "storage_unavailable"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("Error(): got=%q want=%q", got, c.want)
		}
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(CodeInternal, "op", nil) != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
}

func TestOrderContractOwnsTx(t *testing.T) {
	if !OrderAggregateContract.RequiresAggregateOwnedTx() {
		t.Fatalf("order aggregate must own its transaction")
	}
}
