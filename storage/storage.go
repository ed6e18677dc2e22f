package storage

import "context"

// Item is a single storage record: a flat map of field name to value.
type Item map[string]any

// Key identifies one item by an equality match on a key field.
type Key struct {
	Name  string
	Value string
}

// Logical table names. The configured prefix is applied by the backend.
const (
	TableAgent       = "Agent"
	TableClient      = "Client"
	TableClientAgent = "ClientAgent"
	TableProperty    = "Property"
	TableTransaction = "Transaction"
	TableAppointment = "Appointment"
	TableOffice      = "Office"
)

// Secondary index names used by QueryByIndex.
const (
	IndexAgent     = "agent-index"
	IndexAgentDate = "agent-date-index"
	IndexClient    = "client-index"
)

// Store is a thin gateway over a keyed-item store. Each call performs one
// round trip; there are no retries and no batching. GetItem reports an
// absent item as a nil Item, not an error.
type Store interface {
	GetItem(ctx context.Context, table string, key Key) (Item, error)
	PutItem(ctx context.Context, table string, item Item) error
	UpdateItem(ctx context.Context, table string, key Key, updates Item) error
	QueryByIndex(ctx context.Context, table, index, keyName, keyValue string) ([]Item, error)
	ScanAll(ctx context.Context, table string) ([]Item, error)
}

// primaryKeyField names the primary key field of each table. PutItem uses
// it to make inserts idempotent by primary key.
func primaryKeyField(table string) string {
	switch table {
	case TableAgent:
		return "agentId"
	case TableClient:
		return "clientId"
	case TableClientAgent:
		return "id"
	case TableProperty:
		return "propertyId"
	case TableTransaction:
		return "transactionId"
	case TableAppointment:
		return "appointmentId"
	case TableOffice:
		return "officeId"
	}
	return "id"
}
