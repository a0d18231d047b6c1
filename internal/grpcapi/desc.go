package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RaffleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Draw", Handler: drawHandler},
		{MethodName: "SetSpeed", Handler: setSpeedHandler},
		{MethodName: "GetFrame", Handler: getFrameHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Watch", Handler: watchHandler, ServerStreams: true},
	},
}

func drawHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RaffleServiceServer).Draw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethodDraw}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RaffleServiceServer).Draw(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func setSpeedHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RaffleServiceServer).SetSpeed(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethodSetSpeed}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RaffleServiceServer).SetSpeed(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getFrameHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RaffleServiceServer).GetFrame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethodGetFrame}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RaffleServiceServer).GetFrame(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func watchHandler(srv any, stream grpc.ServerStream) error {
	in := new(emptypb.Empty)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(RaffleServiceServer).Watch(in, &watchServer{stream})
}

type watchServer struct {
	grpc.ServerStream
}

func (x *watchServer) Send(m *structpb.Struct) error {
	return x.ServerStream.SendMsg(m)
}
