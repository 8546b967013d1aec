package cart

// Priority is the processing urgency requested for a service order.
type Priority string

const (
	PriorityNormal  Priority = "normal"
	PriorityUrgent  Priority = "urgent"
	PriorityExpress Priority = "express"
)

// express orders carry a fixed 30% handling surcharge
const expressMultiplier = 1.3

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityUrgent, PriorityExpress:
		return true
	}
	return false
}

// ApplyFees returns the order total after the priority surcharge.
// Only express orders are surcharged; normal and urgent pass through.
func (p Priority) ApplyFees(total float64) float64 {
	if p == PriorityExpress {
		return total * expressMultiplier
	}
	return total
}
