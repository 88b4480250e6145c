package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified name of the catalog gRPC service.
const ServiceName = "showcatalog.v1.ShowCatalogService"

const (
	searchFullMethod       = "/" + ServiceName + "/Search"
	listEpisodesFullMethod = "/" + ServiceName + "/ListEpisodes"
)

// ShowCatalogServer is the server API for ShowCatalogService.
//
// Messages are protobuf well-known types: Search takes the term as a
// StringValue, ListEpisodes the show id as an Int64Value, and both answer a
// ListValue of structs whose keys match the JSON form of the models.
type ShowCatalogServer interface {
	Search(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	ListEpisodes(context.Context, *wrapperspb.Int64Value) (*structpb.ListValue, error)
}

// RegisterShowCatalogServer registers srv on s.
func RegisterShowCatalogServer(s grpc.ServiceRegistrar, srv ShowCatalogServer) {
	s.RegisterService(&ShowCatalogServiceDesc, srv)
}

func searchHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowCatalogServer).Search(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: searchFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShowCatalogServer).Search(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listEpisodesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowCatalogServer).ListEpisodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listEpisodesFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ShowCatalogServer).ListEpisodes(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

// ShowCatalogServiceDesc describes ShowCatalogService for grpc.Server.RegisterService.
var ShowCatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ShowCatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Search", Handler: searchHandler},
		{MethodName: "ListEpisodes", Handler: listEpisodesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "showcatalog/v1/showcatalog.proto",
}

// ShowCatalogClient is the client API for ShowCatalogService.
type ShowCatalogClient interface {
	Search(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ListEpisodes(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type showCatalogClient struct {
	cc grpc.ClientConnInterface
}

// NewShowCatalogClient creates a ShowCatalogService client over cc.
func NewShowCatalogClient(cc grpc.ClientConnInterface) ShowCatalogClient {
	return &showCatalogClient{cc: cc}
}

func (c *showCatalogClient) Search(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, searchFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showCatalogClient) ListEpisodes(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, listEpisodesFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
