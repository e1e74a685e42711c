package realtime

import "time"

type Entity string

const (
	EntityCustomer             Entity = "customer"
	EntityProduct              Entity = "product"
	EntityOrder                Entity = "order"
	EntityFinancialTransaction Entity = "financial_transaction"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ChangeEvent announces a committed write to one entity.
type ChangeEvent struct {
	Entity     Entity    `json:"entity"`
	Action     Action    `json:"action"`
	ID         int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	TraceID    string    `json:"trace_id,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
}
