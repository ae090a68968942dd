package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grosirku_orders_placed_total",
		Help: "Orders successfully placed through checkout.",
	})

	OrdersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grosirku_orders_cancelled_total",
		Help: "Orders cancelled by the seller.",
	})

	ReceiptsRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grosirku_receipts_rendered_total",
		Help: "PDF receipts generated for orders.",
	})
)
