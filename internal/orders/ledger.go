package orders

import "context"

// Ledger is the narrow port over the local order database. Whoever implements
// it keeps orders newest-first; business code never talks to the backing
// store directly so the file ledger and the Postgres ledger stay swappable.
type Ledger interface {
	// List returns every stored order, newest first.
	List(ctx context.Context) ([]Order, error)
	// Append stores a freshly submitted order at the head of the ledger.
	Append(ctx context.Context, o Order) error
	// UpdateStatus rewrites the status of the matching order in place.
	// Unknown ids are a no-op, not an error.
	UpdateStatus(ctx context.Context, orderID string, s Status) error
	// Clear irreversibly empties the ledger.
	Clear(ctx context.Context) error
}

// FilterAll is the filter label that leaves the ledger unprojected.
const FilterAll = "All"

// FilterByStatus is a pure read-side projection; it never mutates the input
// and preserves relative order.
func FilterByStatus(in []Order, filter string) []Order {
	if filter == "" || filter == FilterAll {
		return in
	}
	out := make([]Order, 0, len(in))
	for _, o := range in {
		if string(o.Status) == filter {
			out = append(out, o)
		}
	}
	return out
}

func TotalRevenue(in []Order) int {
	sum := 0
	for _, o := range in {
		sum += o.Total
	}
	return sum
}
