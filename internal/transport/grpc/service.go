// Package grpc serves the forms over gRPC.
//
// The service is described by hand instead of generated code: every method
// takes and returns a google.protobuf.Struct, which keeps the wire format
// self-describing and the payload field names identical to the HTTP API.
//
//	service formauth.v1.FormAuth {
//	  rpc Submit(google.protobuf.Struct) returns (google.protobuf.Struct);
//	  rpc Feedback(google.protobuf.Struct) returns (google.protobuf.Struct);
//	  rpc CurrentSession(google.protobuf.Struct) returns (google.protobuf.Struct);
//	}
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "formauth.v1.FormAuth"

// Full method names.
const (
	MethodSubmit         = "/" + ServiceName + "/Submit"
	MethodFeedback       = "/" + ServiceName + "/Feedback"
	MethodCurrentSession = "/" + ServiceName + "/CurrentSession"
)

// FormAuthServer is the server API of formauth.v1.FormAuth.
type FormAuthServer interface {
	Submit(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Feedback(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	CurrentSession(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

type structMethod func(s FormAuthServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call structMethod) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FormAuthServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(FormAuthServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FormAuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Submit",
			Handler:    unaryHandler(MethodSubmit, FormAuthServer.Submit),
		},
		{
			MethodName: "Feedback",
			Handler:    unaryHandler(MethodFeedback, FormAuthServer.Feedback),
		},
		{
			MethodName: "CurrentSession",
			Handler:    unaryHandler(MethodCurrentSession, FormAuthServer.CurrentSession),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "formauth/v1/formauth.proto",
}

// RegisterFormAuthServer registers srv on s.
func RegisterFormAuthServer(s grpc.ServiceRegistrar, srv FormAuthServer) {
	s.RegisterService(&serviceDesc, srv)
}
