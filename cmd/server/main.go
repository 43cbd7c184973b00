package main

// cmd/server/main.go — bare server entry point. The quickstationery CLI
// wraps the same server with management commands; this binary only serves.

import (
	"log"

	"github.com/shashiranjanraj/quickstationery/internal/server"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
