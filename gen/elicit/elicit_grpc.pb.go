// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: elicit.proto

package elicit

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ElicitService_Present_FullMethodName = "/elicit.ElicitService/Present"
)

// ElicitServiceClient is the client API for ElicitService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ElicitService is implemented by the external stimulus-presentation
// collaborator: it renders a numeric stimulus for the participant and
// returns their choice.
type ElicitServiceClient interface {
	Present(ctx context.Context, in *PresentRequest, opts ...grpc.CallOption) (*PresentResponse, error)
}

type elicitServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewElicitServiceClient(cc grpc.ClientConnInterface) ElicitServiceClient {
	return &elicitServiceClient{cc}
}

func (c *elicitServiceClient) Present(ctx context.Context, in *PresentRequest, opts ...grpc.CallOption) (*PresentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PresentResponse)
	err := c.cc.Invoke(ctx, ElicitService_Present_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ElicitServiceServer is the server API for ElicitService service.
// All implementations must embed UnimplementedElicitServiceServer
// for forward compatibility.
//
// ElicitService is implemented by the external stimulus-presentation
// collaborator: it renders a numeric stimulus for the participant and
// returns their choice.
type ElicitServiceServer interface {
	Present(context.Context, *PresentRequest) (*PresentResponse, error)
	mustEmbedUnimplementedElicitServiceServer()
}

// UnimplementedElicitServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedElicitServiceServer struct{}

func (UnimplementedElicitServiceServer) Present(context.Context, *PresentRequest) (*PresentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Present not implemented")
}
func (UnimplementedElicitServiceServer) mustEmbedUnimplementedElicitServiceServer() {}
func (UnimplementedElicitServiceServer) testEmbeddedByValue()                       {}

// UnsafeElicitServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ElicitServiceServer will
// result in compilation errors.
type UnsafeElicitServiceServer interface {
	mustEmbedUnimplementedElicitServiceServer()
}

func RegisterElicitServiceServer(s grpc.ServiceRegistrar, srv ElicitServiceServer) {
	// If the following call pancis, it indicates UnimplementedElicitServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ElicitService_ServiceDesc, srv)
}

func _ElicitService_Present_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PresentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElicitServiceServer).Present(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ElicitService_Present_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElicitServiceServer).Present(ctx, req.(*PresentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ElicitService_ServiceDesc is the grpc.ServiceDesc for ElicitService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ElicitService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "elicit.ElicitService",
	HandlerType: (*ElicitServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Present",
			Handler:    _ElicitService_Present_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "elicit.proto",
}
