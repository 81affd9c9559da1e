// Command invctl is the operator CLI for the inventory engine.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root().Run(ctx, args); err != nil {
		log.Fatal(err)
	}
}

func root() *cli.Command {
	return &cli.Command{
		Name:  "invctl",
		Usage: "Inventory recommendation engine operator tool",
		Commands: []*cli.Command{
			migrateCommand(),
			refreshCommand(),
			auditCommand(),
			evaluateCommand(),
		},
	}
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
