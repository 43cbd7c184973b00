package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/quickstationery/app/store"
	"github.com/shashiranjanraj/quickstationery/config"
)

// quickstationery store:reset — delete every record.
var storeResetCmd = &cobra.Command{
	Use:   "store:reset",
	Short: "Delete every stored record (users, session, cart, last order)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootApp()
		if err != nil {
			return err
		}
		if err := a.Store.Reset(); err != nil {
			return err
		}
		fmt.Printf("✅  Cleared %d records (%s driver)\n", len(store.Keys()), config.StoreDriver())
		return nil
	},
}

// quickstationery store:path — show where the file driver keeps records.
var storePathCmd = &cobra.Command{
	Use:   "store:path",
	Short: "Print the file driver's record directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if config.StoreDriver() != "file" {
			fmt.Printf("Store driver is %q; records are not kept on disk.\n", config.StoreDriver())
			return nil
		}
		fmt.Println(store.NewFileDriver(config.StoreRoot()).Root())
		return nil
	},
}

// quickstationery seed — create the demo account.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the demo account (demo@quickstationery.test / demo1234)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootApp()
		if err != nil {
			return err
		}

		user, err := a.Auth.Signup("Demo", "demo@quickstationery.test", "demo1234")
		if err != nil {
			return err
		}
		if err := a.Auth.Logout(); err != nil {
			return err
		}

		fmt.Printf("✅  Seeded user %s (password demo1234)\n", user.Email)
		return nil
	},
}
