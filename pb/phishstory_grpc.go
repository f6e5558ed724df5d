package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "phishstoryservice.Phishstory"

// PhishstoryClient is the client-side surface of the Phishstory service.
type PhishstoryClient interface {
	CreateTicket(ctx context.Context, in *CreateTicketRequest, opts ...grpc.CallOption) (*CreateTicketResponse, error)
	UpdateTicket(ctx context.Context, in *UpdateTicketRequest, opts ...grpc.CallOption) (*UpdateTicketResponse, error)
	GetTicket(ctx context.Context, in *GetTicketRequest, opts ...grpc.CallOption) (*GetTicketResponse, error)
	GetTickets(ctx context.Context, in *GetTicketsRequest, opts ...grpc.CallOption) (*GetTicketsResponse, error)
	CheckDuplicate(ctx context.Context, in *CheckDuplicateRequest, opts ...grpc.CallOption) (*CheckDuplicateResponse, error)
}

type phishstoryClient struct {
	cc grpc.ClientConnInterface
}

func NewPhishstoryClient(cc grpc.ClientConnInterface) PhishstoryClient {
	return &phishstoryClient{cc}
}

func (c *phishstoryClient) CreateTicket(ctx context.Context, in *CreateTicketRequest, opts ...grpc.CallOption) (*CreateTicketResponse, error) {
	out := new(CreateTicketResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/CreateTicket", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *phishstoryClient) UpdateTicket(ctx context.Context, in *UpdateTicketRequest, opts ...grpc.CallOption) (*UpdateTicketResponse, error) {
	out := new(UpdateTicketResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/UpdateTicket", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *phishstoryClient) GetTicket(ctx context.Context, in *GetTicketRequest, opts ...grpc.CallOption) (*GetTicketResponse, error) {
	out := new(GetTicketResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/GetTicket", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *phishstoryClient) GetTickets(ctx context.Context, in *GetTicketsRequest, opts ...grpc.CallOption) (*GetTicketsResponse, error) {
	out := new(GetTicketsResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/GetTickets", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *phishstoryClient) CheckDuplicate(ctx context.Context, in *CheckDuplicateRequest, opts ...grpc.CallOption) (*CheckDuplicateResponse, error) {
	out := new(CheckDuplicateResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/CheckDuplicate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// PhishstoryServer is the server-side surface of the Phishstory service.
type PhishstoryServer interface {
	CreateTicket(context.Context, *CreateTicketRequest) (*CreateTicketResponse, error)
	UpdateTicket(context.Context, *UpdateTicketRequest) (*UpdateTicketResponse, error)
	GetTicket(context.Context, *GetTicketRequest) (*GetTicketResponse, error)
	GetTickets(context.Context, *GetTicketsRequest) (*GetTicketsResponse, error)
	CheckDuplicate(context.Context, *CheckDuplicateRequest) (*CheckDuplicateResponse, error)
}

// UnimplementedPhishstoryServer may be embedded for forward compatibility.
type UnimplementedPhishstoryServer struct{}

func (UnimplementedPhishstoryServer) CreateTicket(context.Context, *CreateTicketRequest) (*CreateTicketResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTicket not implemented")
}

func (UnimplementedPhishstoryServer) UpdateTicket(context.Context, *UpdateTicketRequest) (*UpdateTicketResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateTicket not implemented")
}

func (UnimplementedPhishstoryServer) GetTicket(context.Context, *GetTicketRequest) (*GetTicketResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTicket not implemented")
}

func (UnimplementedPhishstoryServer) GetTickets(context.Context, *GetTicketsRequest) (*GetTicketsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTickets not implemented")
}

func (UnimplementedPhishstoryServer) CheckDuplicate(context.Context, *CheckDuplicateRequest) (*CheckDuplicateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckDuplicate not implemented")
}

func RegisterPhishstoryServer(s grpc.ServiceRegistrar, srv PhishstoryServer) {
	s.RegisterService(&Phishstory_ServiceDesc, srv)
}

func _Phishstory_CreateTicket_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTicketRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhishstoryServer).CreateTicket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/CreateTicket",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PhishstoryServer).CreateTicket(ctx, req.(*CreateTicketRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Phishstory_UpdateTicket_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTicketRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhishstoryServer).UpdateTicket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/UpdateTicket",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PhishstoryServer).UpdateTicket(ctx, req.(*UpdateTicketRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Phishstory_GetTicket_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTicketRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhishstoryServer).GetTicket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetTicket",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PhishstoryServer).GetTicket(ctx, req.(*GetTicketRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Phishstory_GetTickets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTicketsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhishstoryServer).GetTickets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetTickets",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PhishstoryServer).GetTickets(ctx, req.(*GetTicketsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Phishstory_CheckDuplicate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckDuplicateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PhishstoryServer).CheckDuplicate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/CheckDuplicate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PhishstoryServer).CheckDuplicate(ctx, req.(*CheckDuplicateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Phishstory_ServiceDesc is the grpc.ServiceDesc for the Phishstory service.
var Phishstory_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PhishstoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateTicket", Handler: _Phishstory_CreateTicket_Handler},
		{MethodName: "UpdateTicket", Handler: _Phishstory_UpdateTicket_Handler},
		{MethodName: "GetTicket", Handler: _Phishstory_GetTicket_Handler},
		{MethodName: "GetTickets", Handler: _Phishstory_GetTickets_Handler},
		{MethodName: "CheckDuplicate", Handler: _Phishstory_CheckDuplicate_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pb/phishstory.proto",
}
