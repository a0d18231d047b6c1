package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/osse101/RaffleRate_Go/internal/chart"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
)

// Client calls raffle.v1.RaffleService
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps an open connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Draw starts a new run
func (c *Client) Draw(ctx context.Context, in raffle.Input) (reveal.RunSummary, error) {
	req, err := toStruct(in)
	if err != nil {
		return reveal.RunSummary{}, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethodDraw, req, out); err != nil {
		return reveal.RunSummary{}, err
	}

	var summary reveal.RunSummary
	err = fromStruct(out, &summary, false)
	return summary, err
}

// SetSpeed changes the reveal speed in draws per second
func (c *Client) SetSpeed(ctx context.Context, speed float64) error {
	req, err := structpb.NewStruct(map[string]any{FieldSpeed: speed})
	if err != nil {
		return err
	}
	return c.conn.Invoke(ctx, FullMethodSetSpeed, req, new(emptypb.Empty))
}

// GetFrame returns the frame of tick, or the frame on screen when tick is 0
func (c *Client) GetFrame(ctx context.Context, tick int) (chart.Frame, error) {
	fields := map[string]any{}
	if tick != 0 {
		fields[FieldTick] = tick
	}
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return chart.Frame{}, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethodGetFrame, req, out); err != nil {
		return chart.Frame{}, err
	}
	return frameOf(out)
}

// FrameStream receives frames from Watch
type FrameStream struct {
	stream grpc.ClientStream
}

// Recv blocks for the next frame
func (s *FrameStream) Recv() (chart.Frame, error) {
	msg := new(structpb.Struct)
	if err := s.stream.RecvMsg(msg); err != nil {
		return chart.Frame{}, err
	}
	return frameOf(msg)
}

// Watch opens a frame stream. It ends when ctx is cancelled.
func (c *Client) Watch(ctx context.Context) (*FrameStream, error) {
	stream, err := c.conn.NewStream(ctx, &serviceDesc.Streams[0], FullMethodWatch)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(&emptypb.Empty{}); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}
	return &FrameStream{stream: stream}, nil
}

func frameOf(s *structpb.Struct) (chart.Frame, error) {
	var frame chart.Frame
	err := fromStruct(s, &frame, false)
	return frame, err
}
