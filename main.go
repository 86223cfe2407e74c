package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rezapahlevi/go-mlbb-cli/actions/login"
)

func main() {
	cmd := &cli.Command{
		Name:    "go-mlbb-cli",
		Usage:   "Mobile Legends account CLI tool",
		Version: "0.1.0",
		Action: func(context.Context, *cli.Command) error {
			fmt.Println("MLBB CLI - Use 'go-mlbb-cli help' for available commands")
			return nil
		},
		Commands: []*cli.Command{
			login.Command,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
