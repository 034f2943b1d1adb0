package orders

type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// The dashboard may set any status in any order; this map only describes the
// normal forward path so out-of-order changes can be logged.
var forwardNext = map[Status]map[Status]bool{
	StatusPending:   {StatusShipped: true, StatusDelivered: true},
	StatusShipped:   {StatusDelivered: true},
	StatusDelivered: {},
}

func CanTransition(from, to Status) bool {
	return forwardNext[from][to]
}
