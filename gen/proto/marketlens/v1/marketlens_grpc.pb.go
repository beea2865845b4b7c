// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: marketlens/v1/marketlens.proto

package marketlensv1

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
	TrackerService_CreateTarget_FullMethodName             = "/marketlens.v1.TrackerService/CreateTarget"
	TrackerService_GetTarget_FullMethodName                = "/marketlens.v1.TrackerService/GetTarget"
	TrackerService_ListTargets_FullMethodName              = "/marketlens.v1.TrackerService/ListTargets"
	TrackerService_UpdateTargetConfig_FullMethodName       = "/marketlens.v1.TrackerService/UpdateTargetConfig"
	TrackerService_DeleteTarget_FullMethodName             = "/marketlens.v1.TrackerService/DeleteTarget"
	TrackerService_ListScans_FullMethodName                = "/marketlens.v1.TrackerService/ListScans"
	TrackerService_TriggerScan_FullMethodName              = "/marketlens.v1.TrackerService/TriggerScan"
	TrackerService_ScanAllTargets_FullMethodName           = "/marketlens.v1.TrackerService/ScanAllTargets"
	TrackerService_ApproveScan_FullMethodName              = "/marketlens.v1.TrackerService/ApproveScan"
	TrackerService_RejectScan_FullMethodName               = "/marketlens.v1.TrackerService/RejectScan"
	TrackerService_PromoteFields_FullMethodName            = "/marketlens.v1.TrackerService/PromoteFields"
	TrackerService_AddBrand_FullMethodName                 = "/marketlens.v1.TrackerService/AddBrand"
	TrackerService_RemoveBrand_FullMethodName              = "/marketlens.v1.TrackerService/RemoveBrand"
	TrackerService_GenerateProposals_FullMethodName        = "/marketlens.v1.TrackerService/GenerateProposals"
	TrackerService_ListProposals_FullMethodName            = "/marketlens.v1.TrackerService/ListProposals"
	TrackerService_PromoteProposal_FullMethodName          = "/marketlens.v1.TrackerService/PromoteProposal"
	TrackerService_DismissProposal_FullMethodName          = "/marketlens.v1.TrackerService/DismissProposal"
	TrackerService_ListAvailableScans_FullMethodName       = "/marketlens.v1.TrackerService/ListAvailableScans"
	TrackerService_GenerateValueProposition_FullMethodName = "/marketlens.v1.TrackerService/GenerateValueProposition"
	TrackerService_ExportMaster_FullMethodName             = "/marketlens.v1.TrackerService/ExportMaster"
)

// TrackerServiceClient is the client API for TrackerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// TrackerService is the dashboard's backend surface. Callers authenticate
// upstream; the authenticated user id arrives in request metadata
// ("x-user-id") and every operation is scoped to it.
type TrackerServiceClient interface {
	// Target lifecycle.
	CreateTarget(ctx context.Context, in *CreateTargetRequest, opts ...grpc.CallOption) (*CreateTargetResponse, error)
	GetTarget(ctx context.Context, in *GetTargetRequest, opts ...grpc.CallOption) (*GetTargetResponse, error)
	ListTargets(ctx context.Context, in *ListTargetsRequest, opts ...grpc.CallOption) (*ListTargetsResponse, error)
	UpdateTargetConfig(ctx context.Context, in *UpdateTargetConfigRequest, opts ...grpc.CallOption) (*UpdateTargetConfigResponse, error)
	DeleteTarget(ctx context.Context, in *DeleteTargetRequest, opts ...grpc.CallOption) (*DeleteTargetResponse, error)
	ListScans(ctx context.Context, in *ListScansRequest, opts ...grpc.CallOption) (*ListScansResponse, error)
	// Scanning.
	TriggerScan(ctx context.Context, in *TriggerScanRequest, opts ...grpc.CallOption) (*TriggerScanResponse, error)
	ScanAllTargets(ctx context.Context, in *ScanAllTargetsRequest, opts ...grpc.CallOption) (*ScanAllTargetsResponse, error)
	// Review and master data.
	ApproveScan(ctx context.Context, in *ApproveScanRequest, opts ...grpc.CallOption) (*ApproveScanResponse, error)
	RejectScan(ctx context.Context, in *RejectScanRequest, opts ...grpc.CallOption) (*RejectScanResponse, error)
	PromoteFields(ctx context.Context, in *PromoteFieldsRequest, opts ...grpc.CallOption) (*PromoteFieldsResponse, error)
	AddBrand(ctx context.Context, in *BrandRequest, opts ...grpc.CallOption) (*BrandResponse, error)
	RemoveBrand(ctx context.Context, in *BrandRequest, opts ...grpc.CallOption) (*BrandResponse, error)
	// Discovery.
	GenerateProposals(ctx context.Context, in *GenerateProposalsRequest, opts ...grpc.CallOption) (*GenerateProposalsResponse, error)
	ListProposals(ctx context.Context, in *ListProposalsRequest, opts ...grpc.CallOption) (*ListProposalsResponse, error)
	PromoteProposal(ctx context.Context, in *PromoteProposalRequest, opts ...grpc.CallOption) (*PromoteProposalResponse, error)
	DismissProposal(ctx context.Context, in *DismissProposalRequest, opts ...grpc.CallOption) (*DismissProposalResponse, error)
	// Value proposition generator.
	ListAvailableScans(ctx context.Context, in *ListAvailableScansRequest, opts ...grpc.CallOption) (*ListAvailableScansResponse, error)
	GenerateValueProposition(ctx context.Context, in *GenerateValuePropositionRequest, opts ...grpc.CallOption) (*GenerateValuePropositionResponse, error)
	// Export.
	ExportMaster(ctx context.Context, in *ExportMasterRequest, opts ...grpc.CallOption) (*ExportMasterResponse, error)
}

type trackerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTrackerServiceClient(cc grpc.ClientConnInterface) TrackerServiceClient {
	return &trackerServiceClient{cc}
}

func (c *trackerServiceClient) CreateTarget(ctx context.Context, in *CreateTargetRequest, opts ...grpc.CallOption) (*CreateTargetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateTargetResponse)
	err := c.cc.Invoke(ctx, TrackerService_CreateTarget_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) GetTarget(ctx context.Context, in *GetTargetRequest, opts ...grpc.CallOption) (*GetTargetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetTargetResponse)
	err := c.cc.Invoke(ctx, TrackerService_GetTarget_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ListTargets(ctx context.Context, in *ListTargetsRequest, opts ...grpc.CallOption) (*ListTargetsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTargetsResponse)
	err := c.cc.Invoke(ctx, TrackerService_ListTargets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) UpdateTargetConfig(ctx context.Context, in *UpdateTargetConfigRequest, opts ...grpc.CallOption) (*UpdateTargetConfigResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateTargetConfigResponse)
	err := c.cc.Invoke(ctx, TrackerService_UpdateTargetConfig_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) DeleteTarget(ctx context.Context, in *DeleteTargetRequest, opts ...grpc.CallOption) (*DeleteTargetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteTargetResponse)
	err := c.cc.Invoke(ctx, TrackerService_DeleteTarget_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ListScans(ctx context.Context, in *ListScansRequest, opts ...grpc.CallOption) (*ListScansResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListScansResponse)
	err := c.cc.Invoke(ctx, TrackerService_ListScans_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) TriggerScan(ctx context.Context, in *TriggerScanRequest, opts ...grpc.CallOption) (*TriggerScanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TriggerScanResponse)
	err := c.cc.Invoke(ctx, TrackerService_TriggerScan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ScanAllTargets(ctx context.Context, in *ScanAllTargetsRequest, opts ...grpc.CallOption) (*ScanAllTargetsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanAllTargetsResponse)
	err := c.cc.Invoke(ctx, TrackerService_ScanAllTargets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ApproveScan(ctx context.Context, in *ApproveScanRequest, opts ...grpc.CallOption) (*ApproveScanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApproveScanResponse)
	err := c.cc.Invoke(ctx, TrackerService_ApproveScan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) RejectScan(ctx context.Context, in *RejectScanRequest, opts ...grpc.CallOption) (*RejectScanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RejectScanResponse)
	err := c.cc.Invoke(ctx, TrackerService_RejectScan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) PromoteFields(ctx context.Context, in *PromoteFieldsRequest, opts ...grpc.CallOption) (*PromoteFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PromoteFieldsResponse)
	err := c.cc.Invoke(ctx, TrackerService_PromoteFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) AddBrand(ctx context.Context, in *BrandRequest, opts ...grpc.CallOption) (*BrandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BrandResponse)
	err := c.cc.Invoke(ctx, TrackerService_AddBrand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) RemoveBrand(ctx context.Context, in *BrandRequest, opts ...grpc.CallOption) (*BrandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BrandResponse)
	err := c.cc.Invoke(ctx, TrackerService_RemoveBrand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) GenerateProposals(ctx context.Context, in *GenerateProposalsRequest, opts ...grpc.CallOption) (*GenerateProposalsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateProposalsResponse)
	err := c.cc.Invoke(ctx, TrackerService_GenerateProposals_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ListProposals(ctx context.Context, in *ListProposalsRequest, opts ...grpc.CallOption) (*ListProposalsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProposalsResponse)
	err := c.cc.Invoke(ctx, TrackerService_ListProposals_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) PromoteProposal(ctx context.Context, in *PromoteProposalRequest, opts ...grpc.CallOption) (*PromoteProposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PromoteProposalResponse)
	err := c.cc.Invoke(ctx, TrackerService_PromoteProposal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) DismissProposal(ctx context.Context, in *DismissProposalRequest, opts ...grpc.CallOption) (*DismissProposalResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DismissProposalResponse)
	err := c.cc.Invoke(ctx, TrackerService_DismissProposal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ListAvailableScans(ctx context.Context, in *ListAvailableScansRequest, opts ...grpc.CallOption) (*ListAvailableScansResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAvailableScansResponse)
	err := c.cc.Invoke(ctx, TrackerService_ListAvailableScans_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) GenerateValueProposition(ctx context.Context, in *GenerateValuePropositionRequest, opts ...grpc.CallOption) (*GenerateValuePropositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateValuePropositionResponse)
	err := c.cc.Invoke(ctx, TrackerService_GenerateValueProposition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *trackerServiceClient) ExportMaster(ctx context.Context, in *ExportMasterRequest, opts ...grpc.CallOption) (*ExportMasterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportMasterResponse)
	err := c.cc.Invoke(ctx, TrackerService_ExportMaster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TrackerServiceServer is the server API for TrackerService service.
// All implementations must embed UnimplementedTrackerServiceServer
// for forward compatibility.
//
// TrackerService is the dashboard's backend surface. Callers authenticate
// upstream; the authenticated user id arrives in request metadata
// ("x-user-id") and every operation is scoped to it.
type TrackerServiceServer interface {
	// Target lifecycle.
	CreateTarget(context.Context, *CreateTargetRequest) (*CreateTargetResponse, error)
	GetTarget(context.Context, *GetTargetRequest) (*GetTargetResponse, error)
	ListTargets(context.Context, *ListTargetsRequest) (*ListTargetsResponse, error)
	UpdateTargetConfig(context.Context, *UpdateTargetConfigRequest) (*UpdateTargetConfigResponse, error)
	DeleteTarget(context.Context, *DeleteTargetRequest) (*DeleteTargetResponse, error)
	ListScans(context.Context, *ListScansRequest) (*ListScansResponse, error)
	// Scanning.
	TriggerScan(context.Context, *TriggerScanRequest) (*TriggerScanResponse, error)
	ScanAllTargets(context.Context, *ScanAllTargetsRequest) (*ScanAllTargetsResponse, error)
	// Review and master data.
	ApproveScan(context.Context, *ApproveScanRequest) (*ApproveScanResponse, error)
	RejectScan(context.Context, *RejectScanRequest) (*RejectScanResponse, error)
	PromoteFields(context.Context, *PromoteFieldsRequest) (*PromoteFieldsResponse, error)
	AddBrand(context.Context, *BrandRequest) (*BrandResponse, error)
	RemoveBrand(context.Context, *BrandRequest) (*BrandResponse, error)
	// Discovery.
	GenerateProposals(context.Context, *GenerateProposalsRequest) (*GenerateProposalsResponse, error)
	ListProposals(context.Context, *ListProposalsRequest) (*ListProposalsResponse, error)
	PromoteProposal(context.Context, *PromoteProposalRequest) (*PromoteProposalResponse, error)
	DismissProposal(context.Context, *DismissProposalRequest) (*DismissProposalResponse, error)
	// Value proposition generator.
	ListAvailableScans(context.Context, *ListAvailableScansRequest) (*ListAvailableScansResponse, error)
	GenerateValueProposition(context.Context, *GenerateValuePropositionRequest) (*GenerateValuePropositionResponse, error)
	// Export.
	ExportMaster(context.Context, *ExportMasterRequest) (*ExportMasterResponse, error)
	mustEmbedUnimplementedTrackerServiceServer()
}

// UnimplementedTrackerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTrackerServiceServer struct{}

func (UnimplementedTrackerServiceServer) CreateTarget(context.Context, *CreateTargetRequest) (*CreateTargetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTarget not implemented")
}
func (UnimplementedTrackerServiceServer) GetTarget(context.Context, *GetTargetRequest) (*GetTargetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTarget not implemented")
}
func (UnimplementedTrackerServiceServer) ListTargets(context.Context, *ListTargetsRequest) (*ListTargetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTargets not implemented")
}
func (UnimplementedTrackerServiceServer) UpdateTargetConfig(context.Context, *UpdateTargetConfigRequest) (*UpdateTargetConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateTargetConfig not implemented")
}
func (UnimplementedTrackerServiceServer) DeleteTarget(context.Context, *DeleteTargetRequest) (*DeleteTargetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteTarget not implemented")
}
func (UnimplementedTrackerServiceServer) ListScans(context.Context, *ListScansRequest) (*ListScansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListScans not implemented")
}
func (UnimplementedTrackerServiceServer) TriggerScan(context.Context, *TriggerScanRequest) (*TriggerScanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TriggerScan not implemented")
}
func (UnimplementedTrackerServiceServer) ScanAllTargets(context.Context, *ScanAllTargetsRequest) (*ScanAllTargetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScanAllTargets not implemented")
}
func (UnimplementedTrackerServiceServer) ApproveScan(context.Context, *ApproveScanRequest) (*ApproveScanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveScan not implemented")
}
func (UnimplementedTrackerServiceServer) RejectScan(context.Context, *RejectScanRequest) (*RejectScanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectScan not implemented")
}
func (UnimplementedTrackerServiceServer) PromoteFields(context.Context, *PromoteFieldsRequest) (*PromoteFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PromoteFields not implemented")
}
func (UnimplementedTrackerServiceServer) AddBrand(context.Context, *BrandRequest) (*BrandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddBrand not implemented")
}
func (UnimplementedTrackerServiceServer) RemoveBrand(context.Context, *BrandRequest) (*BrandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveBrand not implemented")
}
func (UnimplementedTrackerServiceServer) GenerateProposals(context.Context, *GenerateProposalsRequest) (*GenerateProposalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateProposals not implemented")
}
func (UnimplementedTrackerServiceServer) ListProposals(context.Context, *ListProposalsRequest) (*ListProposalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProposals not implemented")
}
func (UnimplementedTrackerServiceServer) PromoteProposal(context.Context, *PromoteProposalRequest) (*PromoteProposalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PromoteProposal not implemented")
}
func (UnimplementedTrackerServiceServer) DismissProposal(context.Context, *DismissProposalRequest) (*DismissProposalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DismissProposal not implemented")
}
func (UnimplementedTrackerServiceServer) ListAvailableScans(context.Context, *ListAvailableScansRequest) (*ListAvailableScansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAvailableScans not implemented")
}
func (UnimplementedTrackerServiceServer) GenerateValueProposition(context.Context, *GenerateValuePropositionRequest) (*GenerateValuePropositionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateValueProposition not implemented")
}
func (UnimplementedTrackerServiceServer) ExportMaster(context.Context, *ExportMasterRequest) (*ExportMasterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportMaster not implemented")
}
func (UnimplementedTrackerServiceServer) mustEmbedUnimplementedTrackerServiceServer() {}
func (UnimplementedTrackerServiceServer) testEmbeddedByValue()                        {}

// UnsafeTrackerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TrackerServiceServer will
// result in compilation errors.
type UnsafeTrackerServiceServer interface {
	mustEmbedUnimplementedTrackerServiceServer()
}

func RegisterTrackerServiceServer(s grpc.ServiceRegistrar, srv TrackerServiceServer) {
	// If the following call pancis, it indicates UnimplementedTrackerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TrackerService_ServiceDesc, srv)
}

func _TrackerService_CreateTarget_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTargetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).CreateTarget(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_CreateTarget_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).CreateTarget(ctx, req.(*CreateTargetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_GetTarget_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTargetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).GetTarget(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_GetTarget_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).GetTarget(ctx, req.(*GetTargetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_ListTargets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTargetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).ListTargets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_ListTargets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).ListTargets(ctx, req.(*ListTargetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_UpdateTargetConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTargetConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).UpdateTargetConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_UpdateTargetConfig_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).UpdateTargetConfig(ctx, req.(*UpdateTargetConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_DeleteTarget_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteTargetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).DeleteTarget(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_DeleteTarget_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).DeleteTarget(ctx, req.(*DeleteTargetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_ListScans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListScansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).ListScans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_ListScans_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).ListScans(ctx, req.(*ListScansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_TriggerScan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TriggerScanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).TriggerScan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_TriggerScan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).TriggerScan(ctx, req.(*TriggerScanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_ScanAllTargets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanAllTargetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).ScanAllTargets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_ScanAllTargets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).ScanAllTargets(ctx, req.(*ScanAllTargetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_ApproveScan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApproveScanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).ApproveScan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_ApproveScan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).ApproveScan(ctx, req.(*ApproveScanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_RejectScan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectScanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).RejectScan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_RejectScan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).RejectScan(ctx, req.(*RejectScanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_PromoteFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PromoteFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).PromoteFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_PromoteFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).PromoteFields(ctx, req.(*PromoteFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_AddBrand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BrandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).AddBrand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_AddBrand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).AddBrand(ctx, req.(*BrandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_RemoveBrand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BrandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).RemoveBrand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_RemoveBrand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).RemoveBrand(ctx, req.(*BrandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_GenerateProposals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateProposalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).GenerateProposals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_GenerateProposals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).GenerateProposals(ctx, req.(*GenerateProposalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_ListProposals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProposalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).ListProposals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_ListProposals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).ListProposals(ctx, req.(*ListProposalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_PromoteProposal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PromoteProposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).PromoteProposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_PromoteProposal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).PromoteProposal(ctx, req.(*PromoteProposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_DismissProposal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DismissProposalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).DismissProposal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_DismissProposal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).DismissProposal(ctx, req.(*DismissProposalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_ListAvailableScans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAvailableScansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).ListAvailableScans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_ListAvailableScans_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).ListAvailableScans(ctx, req.(*ListAvailableScansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_GenerateValueProposition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateValuePropositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).GenerateValueProposition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_GenerateValueProposition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).GenerateValueProposition(ctx, req.(*GenerateValuePropositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TrackerService_ExportMaster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportMasterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TrackerServiceServer).ExportMaster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TrackerService_ExportMaster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TrackerServiceServer).ExportMaster(ctx, req.(*ExportMasterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TrackerService_ServiceDesc is the grpc.ServiceDesc for TrackerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TrackerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "marketlens.v1.TrackerService",
	HandlerType: (*TrackerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateTarget",
			Handler:    _TrackerService_CreateTarget_Handler,
		},
		{
			MethodName: "GetTarget",
			Handler:    _TrackerService_GetTarget_Handler,
		},
		{
			MethodName: "ListTargets",
			Handler:    _TrackerService_ListTargets_Handler,
		},
		{
			MethodName: "UpdateTargetConfig",
			Handler:    _TrackerService_UpdateTargetConfig_Handler,
		},
		{
			MethodName: "DeleteTarget",
			Handler:    _TrackerService_DeleteTarget_Handler,
		},
		{
			MethodName: "ListScans",
			Handler:    _TrackerService_ListScans_Handler,
		},
		{
			MethodName: "TriggerScan",
			Handler:    _TrackerService_TriggerScan_Handler,
		},
		{
			MethodName: "ScanAllTargets",
			Handler:    _TrackerService_ScanAllTargets_Handler,
		},
		{
			MethodName: "ApproveScan",
			Handler:    _TrackerService_ApproveScan_Handler,
		},
		{
			MethodName: "RejectScan",
			Handler:    _TrackerService_RejectScan_Handler,
		},
		{
			MethodName: "PromoteFields",
			Handler:    _TrackerService_PromoteFields_Handler,
		},
		{
			MethodName: "AddBrand",
			Handler:    _TrackerService_AddBrand_Handler,
		},
		{
			MethodName: "RemoveBrand",
			Handler:    _TrackerService_RemoveBrand_Handler,
		},
		{
			MethodName: "GenerateProposals",
			Handler:    _TrackerService_GenerateProposals_Handler,
		},
		{
			MethodName: "ListProposals",
			Handler:    _TrackerService_ListProposals_Handler,
		},
		{
			MethodName: "PromoteProposal",
			Handler:    _TrackerService_PromoteProposal_Handler,
		},
		{
			MethodName: "DismissProposal",
			Handler:    _TrackerService_DismissProposal_Handler,
		},
		{
			MethodName: "ListAvailableScans",
			Handler:    _TrackerService_ListAvailableScans_Handler,
		},
		{
			MethodName: "GenerateValueProposition",
			Handler:    _TrackerService_GenerateValueProposition_Handler,
		},
		{
			MethodName: "ExportMaster",
			Handler:    _TrackerService_ExportMaster_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "marketlens/v1/marketlens.proto",
}
