package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/osse101/RaffleRate_Go/internal/grpcapi"
)

const defaultAddr = "localhost:9090"

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	addr := os.Getenv("RAFFLE_GRPC_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect %s: %v\n", addr, err)
		os.Exit(1)
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := grpcapi.NewClient(conn)
	args := os.Args[2:]

	switch os.Args[1] {
	case "draw":
		err = runDraw(ctx, client, args, os.Stdout)
	case "speed":
		err = runSpeed(ctx, client, args, os.Stdout)
	case "frame":
		err = runFrame(ctx, client, args, os.Stdout)
	case "watch":
		err = runWatch(ctx, client, os.Stdout)
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: rafflectl <command> [args...]")
	fmt.Println("Commands:")
	fmt.Println("  draw   -x <bought> -n <total> -d <draws>   Start a new run")
	fmt.Println("  speed  <draws per second>                  Change the reveal speed")
	fmt.Println("  frame  [tick]                              Show the current or a revealed frame")
	fmt.Println("  watch                                      Follow the reveal")
	fmt.Println()
	fmt.Println("RAFFLE_GRPC_ADDR selects the server (default " + defaultAddr + ")")
}
