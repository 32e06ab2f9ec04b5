package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		updatesHandled,
		repliesSent,
	)
}

var (
	updatesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_handled_total",
			Help: "Telegram updates handled by kind (command name, location, text).",
		},
		[]string{"kind"},
	)

	repliesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_replies_sent_total",
			Help: "Replies sent back to chats by status (ok/error).",
		},
		[]string{"status"},
	)
)

func IncUpdate(kind string) {
	updatesHandled.WithLabelValues(norm(kind)).Inc()
}

func IncReply(status string) {
	repliesSent.WithLabelValues(norm(status)).Inc()
}
