// Package app assembles the storefront: it opens the record store, builds
// the repositories, services and controllers, and produces the HTTP handler
// the server and the CLI both run.
//
// # Usage
//
//	a, err := app.New()
//	if err != nil { ... }
//	http.ListenAndServe(":8080", a.Handler())
package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/quickstationery/app/controllers"
	"github.com/shashiranjanraj/quickstationery/app/repositories"
	"github.com/shashiranjanraj/quickstationery/app/routes"
	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/app/store"
	"github.com/shashiranjanraj/quickstationery/config"
	"github.com/shashiranjanraj/quickstationery/pkg/session"
)

// Application holds the fully wired object graph.
type Application struct {
	Store    *store.Store
	Auth     *services.AuthService
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Sessions session.Store
}

// New builds the application from the loaded configuration: store driver,
// repositories, services and the event listeners that feed the metrics.
func New() (*Application, error) {
	st, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("app: open store: %w", err)
	}
	a := NewWithStore(st)
	a.Sessions = sessionStore()
	return a, nil
}

// NewWithStore wires the application over an explicit store. Tests use this
// with the memory driver; the session store is then always in memory.
func NewWithStore(st *store.Store) *Application {
	users := repositories.NewUserRepository(st)
	sessions := repositories.NewSessionRepository(st)
	carts := repositories.NewCartRepository(st)
	orders := repositories.NewOrderRepository(st)

	auth := services.NewAuthService(users, sessions)
	cart := services.NewCartService(carts)
	checkout := services.NewCheckoutService(cart, auth, orders)

	registerListeners()

	return &Application{
		Store:    st,
		Auth:     auth,
		Cart:     cart,
		Checkout: checkout,
		Sessions: session.NewMemoryStore(),
	}
}

// Controllers builds the page controllers over the application's services.
func (a *Application) Controllers() routes.Controllers {
	return routes.Controllers{
		Home:    controllers.NewHomeController(a.Auth, a.Cart),
		Shop:    controllers.NewShopController(a.Auth, a.Cart),
		Cart:    controllers.NewCartController(a.Auth, a.Cart, a.Checkout),
		Auth:    controllers.NewAuthController(a.Auth, a.Cart),
		Profile: controllers.NewProfileController(a.Auth, a.Cart, a.Checkout),
		Order:   controllers.NewOrderController(a.Auth, a.Cart, a.Checkout),
		Api:     controllers.NewApiController(a.Cart),
	}
}

// sessionStore picks the flash-session backend. Redis keeps sessions with
// the records when the store runs on Redis; everything else uses memory,
// which matches the handoff channel's dies-with-the-process lifetime.
func sessionStore() session.Store {
	if config.StoreDriver() == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
			DB:       0,
		})
		return session.NewRedisStore(rdb)
	}
	return session.NewMemoryStore()
}
