// Package grpcapi exposes the draw controls and the frame stream over gRPC.
// Messages are google.protobuf.Struct values carrying the same JSON shapes as
// the HTTP API.
package grpcapi

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/osse101/RaffleRate_Go/internal/handler"
	"github.com/osse101/RaffleRate_Go/internal/raffle"
	"github.com/osse101/RaffleRate_Go/internal/reveal"
	"github.com/osse101/RaffleRate_Go/internal/sse"
)

// RaffleServiceServer is the server API for raffle.v1.RaffleService
type RaffleServiceServer interface {
	Draw(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetSpeed(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	GetFrame(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Watch(*emptypb.Empty, WatchServer) error
}

// WatchServer is the server side of the Watch stream
type WatchServer interface {
	Send(*structpb.Struct) error
	grpc.ServerStream
}

// RegisterRaffleServiceServer registers srv on s
func RegisterRaffleServiceServer(s grpc.ServiceRegistrar, srv RaffleServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

// Service implements RaffleServiceServer over the reveal adapter
type Service struct {
	reveal reveal.Service
	hub    *sse.Hub
}

// NewService creates the gRPC service. hub feeds Watch streams.
func NewService(svc reveal.Service, hub *sse.Hub) *Service {
	return &Service{reveal: svc, hub: hub}
}

// Draw starts a new run
func (s *Service) Draw(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var dr handler.DrawRequest
	if err := fromStruct(req, &dr, true); err != nil {
		return nil, status.Error(codes.InvalidArgument, ErrMsgInvalidRequest)
	}
	if err := handler.GetValidator().ValidateStruct(dr); err != nil {
		return nil, invalidArgument(handler.FormatValidationError(err))
	}

	summary, err := s.reveal.Draw(ctx, dr.Input())
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(summary)
}

// SetSpeed changes the reveal speed
func (s *Service) SetSpeed(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	var sr handler.SpeedRequest
	if err := fromStruct(req, &sr, true); err != nil {
		return nil, status.Error(codes.InvalidArgument, ErrMsgInvalidRequest)
	}
	if err := handler.GetValidator().ValidateStruct(sr); err != nil {
		return nil, invalidArgument(handler.FormatValidationError(err))
	}

	if err := s.reveal.SetSpeed(ctx, sr.Speed); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

// GetFrame returns the frame on screen, or the frame of a revealed tick when
// the request carries one
func (s *Service) GetFrame(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	v, ok := req.GetFields()[FieldTick]
	if !ok || v.GetNumberValue() == 0 {
		return toStruct(s.reveal.Frame())
	}

	n := v.GetNumberValue()
	if n != math.Trunc(n) {
		return nil, status.Error(codes.InvalidArgument, ErrMsgInvalidTick)
	}
	frame, err := s.reveal.FrameAt(int(n))
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(frame)
}

// Watch streams frames as they are rendered, starting with the frame on screen
func (s *Service) Watch(_ *emptypb.Empty, stream WatchServer) error {
	ctx := stream.Context()

	client := s.hub.Register([]string{sse.EventTypeFrame})
	defer s.hub.Unregister(client.ID)
	slog.Debug(LogMsgWatchStarted, "client_id", client.ID)
	defer slog.Debug(LogMsgWatchEnded, "client_id", client.ID)

	if frame := s.reveal.Frame(); !frame.Empty() {
		if err := sendFrame(stream, frame); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-client.EventChannel:
			if !ok {
				return nil
			}
			if err := sendFrame(stream, evt.Payload); err != nil {
				return err
			}
		}
	}
}

func sendFrame(stream WatchServer, frame any) error {
	msg, err := toStruct(frame)
	if err != nil {
		slog.Warn(LogMsgConvertFailed, "error", err)
		return nil
	}
	return stream.Send(msg)
}

// toStatus maps service errors to gRPC status codes
func toStatus(err error) error {
	var fieldErr *raffle.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return invalidArgument(fieldErr.Fields())
	case errors.Is(err, reveal.ErrNoSeries), errors.Is(err, reveal.ErrTickOutOfRange):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, reveal.ErrTickNotRevealed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, reveal.ErrInvalidSpeed):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, reveal.ErrAdapterStopped):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, err.Error())
}

// invalidArgument builds an InvalidArgument status with one violation per field
func invalidArgument(fields map[string]string) error {
	st := status.New(codes.InvalidArgument, ErrMsgInvalidRequest)
	br := &errdetails.BadRequest{}
	for field, msg := range fields {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       field,
			Description: msg,
		})
	}
	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// FieldViolations extracts the field map from an InvalidArgument status
func FieldViolations(err error) map[string]string {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	fields := make(map[string]string)
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, v := range br.GetFieldViolations() {
				fields[v.GetField()] = v.GetDescription()
			}
		}
	}
	return fields
}

var _ RaffleServiceServer = (*Service)(nil)

