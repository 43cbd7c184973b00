// Package server owns the listen-and-serve lifecycle for the storefront.
package server

import (
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/quickstationery/config"
	"github.com/shashiranjanraj/quickstationery/pkg/app"
	"github.com/shashiranjanraj/quickstationery/pkg/logger"
)

// Start loads the configuration, wires the application and serves it on
// the configured port. Blocks until the listener fails.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	a, err := app.New()
	if err != nil {
		return err
	}

	addr := ":" + config.AppPort()
	logger.Info("QuickStationery running",
		"addr", addr,
		"driver", config.StoreDriver(),
		"env", config.AppEnv(),
	)
	fmt.Printf("QuickStationery running on %s\n", addr)

	return http.ListenAndServe(addr, a.Handler())
}
