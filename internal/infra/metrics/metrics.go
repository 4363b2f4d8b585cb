package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersReceived — все POST на точку приёма заказов.
	OrdersReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tmk_orders_received_total",
		Help: "Orders submitted to the intake endpoint.",
	})

	// OrdersRejected — отклонённые заявки по причинам.
	OrdersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tmk_orders_rejected_total",
		Help: "Rejected order submissions by reason.",
	}, []string{"reason"})

	// OrdersSaved — успешно сохранённые заказы.
	OrdersSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tmk_orders_saved_total",
		Help: "Orders persisted successfully.",
	})
)
