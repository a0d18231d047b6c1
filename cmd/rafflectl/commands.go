package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/grpcapi"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
)

// raffleClient is the part of grpcapi.Client the commands use
type raffleClient interface {
	Draw(ctx context.Context, in raffle.Input) (reveal.RunSummary, error)
	SetSpeed(ctx context.Context, speed float64) error
	GetFrame(ctx context.Context, tick int) (chart.Frame, error)
	Watch(ctx context.Context) (*grpcapi.FrameStream, error)
}

func runDraw(ctx context.Context, client raffleClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	fs.SetOutput(out)
	bought := fs.Int("x", raffle.DefaultTicketsBought, "tickets bought")
	total := fs.Int("n", raffle.DefaultTotalTickets, "total tickets")
	draws := fs.Int("d", raffle.DefaultNumDraws, "number of draws")
	if err := fs.Parse(args); err != nil {
		return err
	}

	summary, err := client.Draw(ctx, raffle.Input{TicketsBought: *bought, TotalTickets: *total, NumDraws: *draws})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "run %s\n", summary.RunID)
	fmt.Fprintf(out, "expected win rate: %s\n", reveal.Percent(summary.Probability))
	fmt.Fprintf(out, "observed win rate: %s (%d wins in %d draws)\n",
		reveal.Percent(summary.FinalWinRate), summary.Wins, summary.Input.NumDraws)
	return nil
}

func runSpeed(ctx context.Context, client raffleClient, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: rafflectl speed <draws per second>")
	}
	speed, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid speed %q: %w", args[0], err)
	}
	if err := client.SetSpeed(ctx, speed); err != nil {
		return err
	}
	fmt.Fprintf(out, "speed set to %v draws per second\n", speed)
	return nil
}

func runFrame(ctx context.Context, client raffleClient, args []string, out io.Writer) error {
	tick := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid tick %q: %w", args[0], err)
		}
		tick = n
	}

	frame, err := client.GetFrame(ctx, tick)
	if err != nil {
		return err
	}
	printFrame(out, frame)
	return nil
}

func runWatch(ctx context.Context, client raffleClient, out io.Writer) error {
	stream, err := client.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		frame, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || status.Code(err) == codes.Canceled {
				return nil
			}
			return err
		}
		printFrame(out, frame)
	}
}

func printFrame(out io.Writer, frame chart.Frame) {
	if frame.Empty() {
		fmt.Fprintln(out, "no run yet")
		return
	}
	fmt.Fprintf(out, "[%d/%d] draws %s  expected %s  observed %s\n",
		frame.Tick, frame.MaxTick, frame.Draws, frame.Probability, frame.WinRate)
}

// describe renders field violations as one line per field
func describe(err error) string {
	fields := grpcapi.FieldViolations(err)
	if len(fields) == 0 {
		return err.Error()
	}
	var b strings.Builder
	b.WriteString(status.Convert(err).Message())
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(&b, "\n  %s: %s", name, fields[name])
	}
	return b.String()
}
