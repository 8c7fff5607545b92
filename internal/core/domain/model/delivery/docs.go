// Package delivery contains the DeliveryOrder aggregate and its value
// objects. A delivery order moves through a fixed lifecycle (pending,
// assigned, in transit, then completed or failed) and the aggregate keeps
// two logs consistent with that lifecycle: a stage time log measuring how
// long the order spent in each stage, and an append-only history log of
// everything that happened to the order.
package delivery
