package plan

import (
	"planner/internal/core/domain/model/kernel"
)

// Event is an externally observed occurrence that requires a plan update.
// It is a closed tagged variant: the only implementations are RiderRejected
// and OrderCanceled. No event type changes the set of riders.
type Event interface {
	isEvent()
}

// RiderRejected signals that a rider declined a specific order it currently
// holds. Processing relocates the order to another rider.
type RiderRejected struct {
	riderID kernel.RiderID
	orderID kernel.OrderID
}

// NewRiderRejected creates a RiderRejected event.
// Returns an error if either identifier is invalid. Whether the rider
// actually holds the order is not checked here: mismatched events are
// tolerated at processing time.
func NewRiderRejected(riderID kernel.RiderID, orderID kernel.OrderID) (RiderRejected, error) {
	if err := riderID.Validate(); err != nil {
		return RiderRejected{}, err
	}
	if err := orderID.Validate(); err != nil {
		return RiderRejected{}, err
	}

	return RiderRejected{riderID: riderID, orderID: orderID}, nil
}

// RiderID returns the rejecting rider's identifier.
func (e RiderRejected) RiderID() kernel.RiderID {
	return e.riderID
}

// OrderID returns the rejected order's identifier.
func (e RiderRejected) OrderID() kernel.OrderID {
	return e.orderID
}

func (RiderRejected) isEvent() {}

// OrderCanceled signals that an order was withdrawn entirely.
// Processing removes the order from whichever rider holds it.
type OrderCanceled struct {
	orderID kernel.OrderID
}

// NewOrderCanceled creates an OrderCanceled event.
// Returns an error if the identifier is invalid. Whether the order is
// present in the plan is not checked here: cancellation of an absent order
// is a no-op at processing time.
func NewOrderCanceled(orderID kernel.OrderID) (OrderCanceled, error) {
	if err := orderID.Validate(); err != nil {
		return OrderCanceled{}, err
	}

	return OrderCanceled{orderID: orderID}, nil
}

// OrderID returns the canceled order's identifier.
func (e OrderCanceled) OrderID() kernel.OrderID {
	return e.orderID
}

func (OrderCanceled) isEvent() {}
