package status

import "fmt"

type Status string

const (
	New        Status = "new"
	Paid       Status = "paid"
	Processing Status = "processing"
	Shipped    Status = "shipped"
	Delivered  Status = "delivered"
	Cancelled  Status = "cancelled"
)

// allowedNext also contains the status itself so that repeated updates
// to the same status are not rejected.
var allowedNext = map[Status][]Status{
	New:        {New, Paid, Processing, Cancelled},
	Paid:       {Paid, Processing, Cancelled},
	Processing: {Processing, Shipped, Cancelled},
	Shipped:    {Shipped, Delivered},
	Delivered:  {Delivered},
	Cancelled:  {Cancelled},
}

var labels = map[Status]string{
	New:        "New",
	Paid:       "Paid",
	Processing: "Processing",
	Shipped:    "Shipped",
	Delivered:  "Delivered",
	Cancelled:  "Cancelled",
}

func Parse(s string) (Status, error) {
	st := Status(s)
	if _, ok := allowedNext[st]; !ok {
		return "", fmt.Errorf("unknown order status=%s", s)
	}
	return st, nil
}

// CanTransitionTo reports whether the transition from s to next is
// allowed. A status outside the table permits only its self-loop.
func (s Status) CanTransitionTo(next Status) bool {
	allowed, ok := allowedNext[s]
	if !ok {
		return next == s
	}
	for _, n := range allowed {
		if n == next {
			return true
		}
	}
	return false
}

func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

func Statuses() []Status {
	return []Status{New, Paid, Processing, Shipped, Delivered, Cancelled}
}
