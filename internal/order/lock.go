package order

import "fmt"

// LockKey is the distributed lock guarding every transition of one order. The QA gate
// takes the same key when it ships an order.
func LockKey(orderID int64) string {
	return fmt.Sprintf("lock:order:%d", orderID)
}
