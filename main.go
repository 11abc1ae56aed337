package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stepbot/cmd"
	"stepbot/database"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	// Check for subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			if err := handleMigrationCommand(); err != nil {
				log.Fatal("Migration error:", err)
			}
			return
		case "export":
			if err := cmd.Export(ctx, os.Args[2:]); err != nil {
				log.Fatal("Export error:", err)
			}
			return
		case "sync":
			if err := cmd.Sync(ctx, os.Args[2:]); err != nil {
				log.Fatal("Sync error:", err)
			}
			return
		}
	}

	// Normal bot operation
	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error:", err)
	}
}

func handleMigrationCommand() error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: stepbot migrate [up|down|status]")
	}

	switch os.Args[2] {
	case "up":
		return database.MigrateUp()
	case "down":
		return database.MigrateDown()
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", os.Args[2])
	}
}
