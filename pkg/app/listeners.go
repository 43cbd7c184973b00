package app

// pkg/app/listeners.go — event listeners that feed the domain metrics.

import (
	"sync"

	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/pkg/event"
	"github.com/shashiranjanraj/quickstationery/pkg/metrics"
)

var listenersOnce sync.Once

// registerListeners subscribes the metrics to the domain events. Safe to
// call from every Application build; registration happens once per process.
func registerListeners() {
	listenersOnce.Do(func() {
		event.Listen(services.EventCartUpdated, func(payload interface{}) {
			if count, ok := payload.(int); ok {
				metrics.CartItems.Set(float64(count))
			}
		})

		event.Listen(services.EventOrderPlaced, func(payload interface{}) {
			metrics.OrdersPlaced.Inc()
			if order, ok := payload.(models.Order); ok {
				metrics.OrderTotal.Observe(float64(order.Total))
			}
		})

		event.Listen(services.EventUserRegistered, func(interface{}) {
			metrics.SignupsTotal.Inc()
		})

		event.Listen(services.EventUserLoggedIn, func(interface{}) {
			metrics.LoginsTotal.Inc()
		})
	})
}
