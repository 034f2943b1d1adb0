package redisx

import "time"

const (
	// Cache order status for the dashboard detail pane: order_status:{order_id} -> {"status": "..."}
	KeyOrderStatus = "order_status:%s"
)

var (
	TTLStatusCache = 5 * time.Minute
)
