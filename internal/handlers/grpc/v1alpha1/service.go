package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Service and method names of the map service
const (
	ServiceName       = "mapgen.v1alpha1.MapService"
	GenerateMapMethod = "/" + ServiceName + "/GenerateMap"

	// HeaderMapFilename carries the suggested file name of a generated map
	HeaderMapFilename = "x-map-filename"
)

// MapServiceServer is the server API for the map service. The request is the
// JSON selection document, the response the rendered map.
type MapServiceServer interface {
	GenerateMap(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
}

// MapServiceClient is the client API for the map service
type MapServiceClient interface {
	GenerateMap(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type mapServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMapServiceClient creates a client for the map service
func NewMapServiceClient(cc grpc.ClientConnInterface) MapServiceClient {
	return &mapServiceClient{cc: cc}
}

func (c *mapServiceClient) GenerateMap(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, GenerateMapMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func generateMapHandler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MapServiceServer).GenerateMap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GenerateMapMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MapServiceServer).GenerateMap(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

// MapServiceDesc describes the map service for grpc.Server registration
var MapServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MapServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateMap",
			Handler:    generateMapHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterMapServiceServer registers srv on s
func RegisterMapServiceServer(s grpc.ServiceRegistrar, srv MapServiceServer) {
	s.RegisterService(&MapServiceDesc, srv)
}
