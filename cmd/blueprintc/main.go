package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/blueprint/internal/cmd/blueprintc"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd, err := blueprintc.ParseCommand(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, blueprintc.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
	if err := blueprintc.Run(ctx, cmd, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "blueprintc:", err)
		os.Exit(1)
	}
}
