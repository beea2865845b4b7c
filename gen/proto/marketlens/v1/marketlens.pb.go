// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: marketlens/v1/marketlens.proto

package marketlensv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Target struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Url           string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Prompt        string                 `protobuf:"bytes,4,opt,name=prompt,proto3" json:"prompt,omitempty"`
	Schedule      string                 `protobuf:"bytes,5,opt,name=schedule,proto3" json:"schedule,omitempty"`
	CustomFields  []string               `protobuf:"bytes,6,rep,name=custom_fields,json=customFields,proto3" json:"custom_fields,omitempty"`
	Active        bool                   `protobuf:"varint,7,opt,name=active,proto3" json:"active,omitempty"`
	MasterData    string                 `protobuf:"bytes,8,opt,name=master_data,json=masterData,proto3" json:"master_data,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Target) Reset() {
	*x = Target{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Target) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Target) ProtoMessage() {}

func (x *Target) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Target.ProtoReflect.Descriptor instead.
func (*Target) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{0}
}

func (x *Target) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Target) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Target) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Target) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *Target) GetSchedule() string {
	if x != nil {
		return x.Schedule
	}
	return ""
}

func (x *Target) GetCustomFields() []string {
	if x != nil {
		return x.CustomFields
	}
	return nil
}

func (x *Target) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

func (x *Target) GetMasterData() string {
	if x != nil {
		return x.MasterData
	}
	return ""
}

func (x *Target) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ScanResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	TargetId      string                 `protobuf:"bytes,2,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Content       string                 `protobuf:"bytes,4,opt,name=content,proto3" json:"content,omitempty"`
	ExtractedData string                 `protobuf:"bytes,5,opt,name=extracted_data,json=extractedData,proto3" json:"extracted_data,omitempty"`
	Screenshot    string                 `protobuf:"bytes,6,opt,name=screenshot,proto3" json:"screenshot,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ReviewStatus  string                 `protobuf:"bytes,8,opt,name=review_status,json=reviewStatus,proto3" json:"review_status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanResult) Reset() {
	*x = ScanResult{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanResult) ProtoMessage() {}

func (x *ScanResult) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanResult.ProtoReflect.Descriptor instead.
func (*ScanResult) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{1}
}

func (x *ScanResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ScanResult) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *ScanResult) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ScanResult) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *ScanResult) GetExtractedData() string {
	if x != nil {
		return x.ExtractedData
	}
	return ""
}

func (x *ScanResult) GetScreenshot() string {
	if x != nil {
		return x.Screenshot
	}
	return ""
}

func (x *ScanResult) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ScanResult) GetReviewStatus() string {
	if x != nil {
		return x.ReviewStatus
	}
	return ""
}

func (x *ScanResult) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Proposal struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Url           string                 `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	SourcePrompt  string                 `protobuf:"bytes,5,opt,name=source_prompt,json=sourcePrompt,proto3" json:"source_prompt,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Proposal) Reset() {
	*x = Proposal{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Proposal) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Proposal) ProtoMessage() {}

func (x *Proposal) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Proposal.ProtoReflect.Descriptor instead.
func (*Proposal) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{2}
}

func (x *Proposal) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Proposal) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *Proposal) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Proposal) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Proposal) GetSourcePrompt() string {
	if x != nil {
		return x.SourcePrompt
	}
	return ""
}

func (x *Proposal) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Proposal) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateTargetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Url           string                 `protobuf:"bytes,1,opt,name=url,proto3" json:"url,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Prompt        string                 `protobuf:"bytes,3,opt,name=prompt,proto3" json:"prompt,omitempty"`
	Schedule      string                 `protobuf:"bytes,4,opt,name=schedule,proto3" json:"schedule,omitempty"`
	CustomFields  []string               `protobuf:"bytes,5,rep,name=custom_fields,json=customFields,proto3" json:"custom_fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTargetRequest) Reset() {
	*x = CreateTargetRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTargetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTargetRequest) ProtoMessage() {}

func (x *CreateTargetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTargetRequest.ProtoReflect.Descriptor instead.
func (*CreateTargetRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{3}
}

func (x *CreateTargetRequest) GetUrl() string {
	if x != nil {
		return x.Url
	}
	return ""
}

func (x *CreateTargetRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateTargetRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *CreateTargetRequest) GetSchedule() string {
	if x != nil {
		return x.Schedule
	}
	return ""
}

func (x *CreateTargetRequest) GetCustomFields() []string {
	if x != nil {
		return x.CustomFields
	}
	return nil
}

type CreateTargetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Target        *Target                `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTargetResponse) Reset() {
	*x = CreateTargetResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTargetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTargetResponse) ProtoMessage() {}

func (x *CreateTargetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTargetResponse.ProtoReflect.Descriptor instead.
func (*CreateTargetResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{4}
}

func (x *CreateTargetResponse) GetTarget() *Target {
	if x != nil {
		return x.Target
	}
	return nil
}

type GetTargetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTargetRequest) Reset() {
	*x = GetTargetRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTargetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTargetRequest) ProtoMessage() {}

func (x *GetTargetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTargetRequest.ProtoReflect.Descriptor instead.
func (*GetTargetRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{5}
}

func (x *GetTargetRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

type GetTargetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Target        *Target                `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTargetResponse) Reset() {
	*x = GetTargetResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTargetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTargetResponse) ProtoMessage() {}

func (x *GetTargetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTargetResponse.ProtoReflect.Descriptor instead.
func (*GetTargetResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{6}
}

func (x *GetTargetResponse) GetTarget() *Target {
	if x != nil {
		return x.Target
	}
	return nil
}

type ListTargetsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTargetsRequest) Reset() {
	*x = ListTargetsRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTargetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTargetsRequest) ProtoMessage() {}

func (x *ListTargetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTargetsRequest.ProtoReflect.Descriptor instead.
func (*ListTargetsRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{7}
}

type ListTargetsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Targets       []*Target              `protobuf:"bytes,1,rep,name=targets,proto3" json:"targets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTargetsResponse) Reset() {
	*x = ListTargetsResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTargetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTargetsResponse) ProtoMessage() {}

func (x *ListTargetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTargetsResponse.ProtoReflect.Descriptor instead.
func (*ListTargetsResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{8}
}

func (x *ListTargetsResponse) GetTargets() []*Target {
	if x != nil {
		return x.Targets
	}
	return nil
}

type UpdateTargetConfigRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	Schedule      string                 `protobuf:"bytes,2,opt,name=schedule,proto3" json:"schedule,omitempty"`
	Prompt        string                 `protobuf:"bytes,3,opt,name=prompt,proto3" json:"prompt,omitempty"`
	CustomFields  []string               `protobuf:"bytes,4,rep,name=custom_fields,json=customFields,proto3" json:"custom_fields,omitempty"`
	Active        bool                   `protobuf:"varint,5,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTargetConfigRequest) Reset() {
	*x = UpdateTargetConfigRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTargetConfigRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTargetConfigRequest) ProtoMessage() {}

func (x *UpdateTargetConfigRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTargetConfigRequest.ProtoReflect.Descriptor instead.
func (*UpdateTargetConfigRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateTargetConfigRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *UpdateTargetConfigRequest) GetSchedule() string {
	if x != nil {
		return x.Schedule
	}
	return ""
}

func (x *UpdateTargetConfigRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *UpdateTargetConfigRequest) GetCustomFields() []string {
	if x != nil {
		return x.CustomFields
	}
	return nil
}

func (x *UpdateTargetConfigRequest) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type UpdateTargetConfigResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTargetConfigResponse) Reset() {
	*x = UpdateTargetConfigResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTargetConfigResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTargetConfigResponse) ProtoMessage() {}

func (x *UpdateTargetConfigResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTargetConfigResponse.ProtoReflect.Descriptor instead.
func (*UpdateTargetConfigResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{10}
}

type DeleteTargetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTargetRequest) Reset() {
	*x = DeleteTargetRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTargetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTargetRequest) ProtoMessage() {}

func (x *DeleteTargetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTargetRequest.ProtoReflect.Descriptor instead.
func (*DeleteTargetRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteTargetRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

type DeleteTargetResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTargetResponse) Reset() {
	*x = DeleteTargetResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTargetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTargetResponse) ProtoMessage() {}

func (x *DeleteTargetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTargetResponse.ProtoReflect.Descriptor instead.
func (*DeleteTargetResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{12}
}

type ListScansRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScansRequest) Reset() {
	*x = ListScansRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScansRequest) ProtoMessage() {}

func (x *ListScansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScansRequest.ProtoReflect.Descriptor instead.
func (*ListScansRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{13}
}

func (x *ListScansRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *ListScansRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListScansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scans         []*ScanResult          `protobuf:"bytes,1,rep,name=scans,proto3" json:"scans,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScansResponse) Reset() {
	*x = ListScansResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScansResponse) ProtoMessage() {}

func (x *ListScansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScansResponse.ProtoReflect.Descriptor instead.
func (*ListScansResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{14}
}

func (x *ListScansResponse) GetScans() []*ScanResult {
	if x != nil {
		return x.Scans
	}
	return nil
}

type TriggerScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerScanRequest) Reset() {
	*x = TriggerScanRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerScanRequest) ProtoMessage() {}

func (x *TriggerScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerScanRequest.ProtoReflect.Descriptor instead.
func (*TriggerScanRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{15}
}

func (x *TriggerScanRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

type TriggerScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	ScanId        string                 `protobuf:"bytes,2,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	Error         string                 `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriggerScanResponse) Reset() {
	*x = TriggerScanResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriggerScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriggerScanResponse) ProtoMessage() {}

func (x *TriggerScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriggerScanResponse.ProtoReflect.Descriptor instead.
func (*TriggerScanResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{16}
}

func (x *TriggerScanResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *TriggerScanResponse) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

func (x *TriggerScanResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ScanAllTargetsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// When true, scan every active target regardless of cadence.
	IgnoreSchedule bool `protobuf:"varint,1,opt,name=ignore_schedule,json=ignoreSchedule,proto3" json:"ignore_schedule,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ScanAllTargetsRequest) Reset() {
	*x = ScanAllTargetsRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanAllTargetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanAllTargetsRequest) ProtoMessage() {}

func (x *ScanAllTargetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanAllTargetsRequest.ProtoReflect.Descriptor instead.
func (*ScanAllTargetsRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{17}
}

func (x *ScanAllTargetsRequest) GetIgnoreSchedule() bool {
	if x != nil {
		return x.IgnoreSchedule
	}
	return false
}

type ScanOutcome struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	TargetName    string                 `protobuf:"bytes,2,opt,name=target_name,json=targetName,proto3" json:"target_name,omitempty"`
	Success       bool                   `protobuf:"varint,3,opt,name=success,proto3" json:"success,omitempty"`
	ScanId        string                 `protobuf:"bytes,4,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanOutcome) Reset() {
	*x = ScanOutcome{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanOutcome) ProtoMessage() {}

func (x *ScanOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanOutcome.ProtoReflect.Descriptor instead.
func (*ScanOutcome) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{18}
}

func (x *ScanOutcome) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *ScanOutcome) GetTargetName() string {
	if x != nil {
		return x.TargetName
	}
	return ""
}

func (x *ScanOutcome) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *ScanOutcome) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

func (x *ScanOutcome) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type ScanAllTargetsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       int32                  `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Results       []*ScanOutcome         `protobuf:"bytes,2,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanAllTargetsResponse) Reset() {
	*x = ScanAllTargetsResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanAllTargetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanAllTargetsResponse) ProtoMessage() {}

func (x *ScanAllTargetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanAllTargetsResponse.ProtoReflect.Descriptor instead.
func (*ScanAllTargetsResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{19}
}

func (x *ScanAllTargetsResponse) GetScanned() int32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *ScanAllTargetsResponse) GetResults() []*ScanOutcome {
	if x != nil {
		return x.Results
	}
	return nil
}

type ApproveScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScanId        string                 `protobuf:"bytes,1,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveScanRequest) Reset() {
	*x = ApproveScanRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveScanRequest) ProtoMessage() {}

func (x *ApproveScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveScanRequest.ProtoReflect.Descriptor instead.
func (*ApproveScanRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{20}
}

func (x *ApproveScanRequest) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

type ApproveScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveScanResponse) Reset() {
	*x = ApproveScanResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveScanResponse) ProtoMessage() {}

func (x *ApproveScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveScanResponse.ProtoReflect.Descriptor instead.
func (*ApproveScanResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{21}
}

type RejectScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScanId        string                 `protobuf:"bytes,1,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectScanRequest) Reset() {
	*x = RejectScanRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectScanRequest) ProtoMessage() {}

func (x *RejectScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectScanRequest.ProtoReflect.Descriptor instead.
func (*RejectScanRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{22}
}

func (x *RejectScanRequest) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

type RejectScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectScanResponse) Reset() {
	*x = RejectScanResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectScanResponse) ProtoMessage() {}

func (x *RejectScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectScanResponse.ProtoReflect.Descriptor instead.
func (*RejectScanResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{23}
}

type PromoteFieldsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScanId        string                 `protobuf:"bytes,1,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	Fields        map[string]string      `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PromoteFieldsRequest) Reset() {
	*x = PromoteFieldsRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromoteFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromoteFieldsRequest) ProtoMessage() {}

func (x *PromoteFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromoteFieldsRequest.ProtoReflect.Descriptor instead.
func (*PromoteFieldsRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{24}
}

func (x *PromoteFieldsRequest) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

func (x *PromoteFieldsRequest) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

type PromoteFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MasterData    string                 `protobuf:"bytes,1,opt,name=master_data,json=masterData,proto3" json:"master_data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PromoteFieldsResponse) Reset() {
	*x = PromoteFieldsResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromoteFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromoteFieldsResponse) ProtoMessage() {}

func (x *PromoteFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromoteFieldsResponse.ProtoReflect.Descriptor instead.
func (*PromoteFieldsResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{25}
}

func (x *PromoteFieldsResponse) GetMasterData() string {
	if x != nil {
		return x.MasterData
	}
	return ""
}

type BrandRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScanId        string                 `protobuf:"bytes,1,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	Brand         string                 `protobuf:"bytes,2,opt,name=brand,proto3" json:"brand,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BrandRequest) Reset() {
	*x = BrandRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BrandRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BrandRequest) ProtoMessage() {}

func (x *BrandRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BrandRequest.ProtoReflect.Descriptor instead.
func (*BrandRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{26}
}

func (x *BrandRequest) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

func (x *BrandRequest) GetBrand() string {
	if x != nil {
		return x.Brand
	}
	return ""
}

type BrandResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MasterData    string                 `protobuf:"bytes,1,opt,name=master_data,json=masterData,proto3" json:"master_data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BrandResponse) Reset() {
	*x = BrandResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BrandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BrandResponse) ProtoMessage() {}

func (x *BrandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BrandResponse.ProtoReflect.Descriptor instead.
func (*BrandResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{27}
}

func (x *BrandResponse) GetMasterData() string {
	if x != nil {
		return x.MasterData
	}
	return ""
}

type GenerateProposalsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Topic         string                 `protobuf:"bytes,1,opt,name=topic,proto3" json:"topic,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateProposalsRequest) Reset() {
	*x = GenerateProposalsRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateProposalsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateProposalsRequest) ProtoMessage() {}

func (x *GenerateProposalsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateProposalsRequest.ProtoReflect.Descriptor instead.
func (*GenerateProposalsRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{28}
}

func (x *GenerateProposalsRequest) GetTopic() string {
	if x != nil {
		return x.Topic
	}
	return ""
}

type GenerateProposalsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Proposals     []*Proposal            `protobuf:"bytes,1,rep,name=proposals,proto3" json:"proposals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateProposalsResponse) Reset() {
	*x = GenerateProposalsResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateProposalsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateProposalsResponse) ProtoMessage() {}

func (x *GenerateProposalsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateProposalsResponse.ProtoReflect.Descriptor instead.
func (*GenerateProposalsResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{29}
}

func (x *GenerateProposalsResponse) GetProposals() []*Proposal {
	if x != nil {
		return x.Proposals
	}
	return nil
}

type ListProposalsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProposalsRequest) Reset() {
	*x = ListProposalsRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProposalsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProposalsRequest) ProtoMessage() {}

func (x *ListProposalsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProposalsRequest.ProtoReflect.Descriptor instead.
func (*ListProposalsRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{30}
}

type ListProposalsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Proposals     []*Proposal            `protobuf:"bytes,1,rep,name=proposals,proto3" json:"proposals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProposalsResponse) Reset() {
	*x = ListProposalsResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProposalsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProposalsResponse) ProtoMessage() {}

func (x *ListProposalsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProposalsResponse.ProtoReflect.Descriptor instead.
func (*ListProposalsResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{31}
}

func (x *ListProposalsResponse) GetProposals() []*Proposal {
	if x != nil {
		return x.Proposals
	}
	return nil
}

type PromoteProposalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PromoteProposalRequest) Reset() {
	*x = PromoteProposalRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromoteProposalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromoteProposalRequest) ProtoMessage() {}

func (x *PromoteProposalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromoteProposalRequest.ProtoReflect.Descriptor instead.
func (*PromoteProposalRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{32}
}

func (x *PromoteProposalRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type PromoteProposalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Target        *Target                `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PromoteProposalResponse) Reset() {
	*x = PromoteProposalResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PromoteProposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PromoteProposalResponse) ProtoMessage() {}

func (x *PromoteProposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PromoteProposalResponse.ProtoReflect.Descriptor instead.
func (*PromoteProposalResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{33}
}

func (x *PromoteProposalResponse) GetTarget() *Target {
	if x != nil {
		return x.Target
	}
	return nil
}

type DismissProposalRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProposalId    string                 `protobuf:"bytes,1,opt,name=proposal_id,json=proposalId,proto3" json:"proposal_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DismissProposalRequest) Reset() {
	*x = DismissProposalRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DismissProposalRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DismissProposalRequest) ProtoMessage() {}

func (x *DismissProposalRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DismissProposalRequest.ProtoReflect.Descriptor instead.
func (*DismissProposalRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{34}
}

func (x *DismissProposalRequest) GetProposalId() string {
	if x != nil {
		return x.ProposalId
	}
	return ""
}

type DismissProposalResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DismissProposalResponse) Reset() {
	*x = DismissProposalResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DismissProposalResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DismissProposalResponse) ProtoMessage() {}

func (x *DismissProposalResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DismissProposalResponse.ProtoReflect.Descriptor instead.
func (*DismissProposalResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{35}
}

type ListAvailableScansRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAvailableScansRequest) Reset() {
	*x = ListAvailableScansRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAvailableScansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAvailableScansRequest) ProtoMessage() {}

func (x *ListAvailableScansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAvailableScansRequest.ProtoReflect.Descriptor instead.
func (*ListAvailableScansRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{36}
}

func (x *ListAvailableScansRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type AvailableScan struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TargetId      string                 `protobuf:"bytes,1,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	TargetName    string                 `protobuf:"bytes,2,opt,name=target_name,json=targetName,proto3" json:"target_name,omitempty"`
	TargetUrl     string                 `protobuf:"bytes,3,opt,name=target_url,json=targetUrl,proto3" json:"target_url,omitempty"`
	ScanId        string                 `protobuf:"bytes,4,opt,name=scan_id,json=scanId,proto3" json:"scan_id,omitempty"`
	ScanDate      string                 `protobuf:"bytes,5,opt,name=scan_date,json=scanDate,proto3" json:"scan_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AvailableScan) Reset() {
	*x = AvailableScan{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AvailableScan) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AvailableScan) ProtoMessage() {}

func (x *AvailableScan) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AvailableScan.ProtoReflect.Descriptor instead.
func (*AvailableScan) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{37}
}

func (x *AvailableScan) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

func (x *AvailableScan) GetTargetName() string {
	if x != nil {
		return x.TargetName
	}
	return ""
}

func (x *AvailableScan) GetTargetUrl() string {
	if x != nil {
		return x.TargetUrl
	}
	return ""
}

func (x *AvailableScan) GetScanId() string {
	if x != nil {
		return x.ScanId
	}
	return ""
}

func (x *AvailableScan) GetScanDate() string {
	if x != nil {
		return x.ScanDate
	}
	return ""
}

type ListAvailableScansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scans         []*AvailableScan       `protobuf:"bytes,1,rep,name=scans,proto3" json:"scans,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAvailableScansResponse) Reset() {
	*x = ListAvailableScansResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAvailableScansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAvailableScansResponse) ProtoMessage() {}

func (x *ListAvailableScansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAvailableScansResponse.ProtoReflect.Descriptor instead.
func (*ListAvailableScansResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{38}
}

func (x *ListAvailableScansResponse) GetScans() []*AvailableScan {
	if x != nil {
		return x.Scans
	}
	return nil
}

type GenerateValuePropositionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScanIds       []string               `protobuf:"bytes,1,rep,name=scan_ids,json=scanIds,proto3" json:"scan_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateValuePropositionRequest) Reset() {
	*x = GenerateValuePropositionRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateValuePropositionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateValuePropositionRequest) ProtoMessage() {}

func (x *GenerateValuePropositionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateValuePropositionRequest.ProtoReflect.Descriptor instead.
func (*GenerateValuePropositionRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{39}
}

func (x *GenerateValuePropositionRequest) GetScanIds() []string {
	if x != nil {
		return x.ScanIds
	}
	return nil
}

type GenerateValuePropositionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Markdown      string                 `protobuf:"bytes,1,opt,name=markdown,proto3" json:"markdown,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateValuePropositionResponse) Reset() {
	*x = GenerateValuePropositionResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateValuePropositionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateValuePropositionResponse) ProtoMessage() {}

func (x *GenerateValuePropositionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateValuePropositionResponse.ProtoReflect.Descriptor instead.
func (*GenerateValuePropositionResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{40}
}

func (x *GenerateValuePropositionResponse) GetMarkdown() string {
	if x != nil {
		return x.Markdown
	}
	return ""
}

type ExportMasterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMasterRequest) Reset() {
	*x = ExportMasterRequest{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMasterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMasterRequest) ProtoMessage() {}

func (x *ExportMasterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMasterRequest.ProtoReflect.Descriptor instead.
func (*ExportMasterRequest) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{41}
}

type ExportMasterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportMasterResponse) Reset() {
	*x = ExportMasterResponse{}
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportMasterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportMasterResponse) ProtoMessage() {}

func (x *ExportMasterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_marketlens_v1_marketlens_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportMasterResponse.ProtoReflect.Descriptor instead.
func (*ExportMasterResponse) Descriptor() ([]byte, []int) {
	return file_marketlens_v1_marketlens_proto_rawDescGZIP(), []int{42}
}

func (x *ExportMasterResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportMasterResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_marketlens_v1_marketlens_proto protoreflect.FileDescriptor

const file_marketlens_v1_marketlens_proto_rawDesc = "" +
	"\n" +
	"\x1emarketlens/v1/marketlens.proto\x12\rmarketlens.v1\"\xef\x01\n" +
	"\x06Target\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x16\n" +
	"\x06prompt\x18\x04 \x01(\tR\x06prompt\x12\x1a\n" +
	"\bschedule\x18\x05 \x01(\tR\bschedule\x12#\n" +
	"\rcustom_fields\x18\x06 \x03(\tR\fcustomFields\x12\x16\n" +
	"\x06active\x18\a \x01(\bR\x06active\x12\x1f\n" +
	"\vmaster_data\x18\b \x01(\tR\n" +
	"masterData\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"\x9b\x02\n" +
	"\n" +
	"ScanResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\ttarget_id\x18\x02 \x01(\tR\btargetId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x18\n" +
	"\acontent\x18\x04 \x01(\tR\acontent\x12%\n" +
	"\x0eextracted_data\x18\x05 \x01(\tR\rextractedData\x12\x1e\n" +
	"\n" +
	"screenshot\x18\x06 \x01(\tR\n" +
	"screenshot\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12#\n" +
	"\rreview_status\x18\b \x01(\tR\freviewStatus\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\"\xc0\x01\n" +
	"\bProposal\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03url\x18\x02 \x01(\tR\x03url\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12#\n" +
	"\rsource_prompt\x18\x05 \x01(\tR\fsourcePrompt\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"\x94\x01\n" +
	"\x13CreateTargetRequest\x12\x10\n" +
	"\x03url\x18\x01 \x01(\tR\x03url\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06prompt\x18\x03 \x01(\tR\x06prompt\x12\x1a\n" +
	"\bschedule\x18\x04 \x01(\tR\bschedule\x12#\n" +
	"\rcustom_fields\x18\x05 \x03(\tR\fcustomFields\"E\n" +
	"\x14CreateTargetResponse\x12-\n" +
	"\x06target\x18\x01 \x01(\v2\x15.marketlens.v1.TargetR\x06target\"/\n" +
	"\x10GetTargetRequest\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\"B\n" +
	"\x11GetTargetResponse\x12-\n" +
	"\x06target\x18\x01 \x01(\v2\x15.marketlens.v1.TargetR\x06target\"\x14\n" +
	"\x12ListTargetsRequest\"F\n" +
	"\x13ListTargetsResponse\x12/\n" +
	"\atargets\x18\x01 \x03(\v2\x15.marketlens.v1.TargetR\atargets\"\xa9\x01\n" +
	"\x19UpdateTargetConfigRequest\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\x12\x1a\n" +
	"\bschedule\x18\x02 \x01(\tR\bschedule\x12\x16\n" +
	"\x06prompt\x18\x03 \x01(\tR\x06prompt\x12#\n" +
	"\rcustom_fields\x18\x04 \x03(\tR\fcustomFields\x12\x16\n" +
	"\x06active\x18\x05 \x01(\bR\x06active\"\x1c\n" +
	"\x1aUpdateTargetConfigResponse\"2\n" +
	"\x13DeleteTargetRequest\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\"\x16\n" +
	"\x14DeleteTargetResponse\"E\n" +
	"\x10ListScansRequest\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"D\n" +
	"\x11ListScansResponse\x12/\n" +
	"\x05scans\x18\x01 \x03(\v2\x19.marketlens.v1.ScanResultR\x05scans\"1\n" +
	"\x12TriggerScanRequest\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\"^\n" +
	"\x13TriggerScanResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x17\n" +
	"\ascan_id\x18\x02 \x01(\tR\x06scanId\x12\x14\n" +
	"\x05error\x18\x03 \x01(\tR\x05error\"@\n" +
	"\x15ScanAllTargetsRequest\x12'\n" +
	"\x0fignore_schedule\x18\x01 \x01(\bR\x0eignoreSchedule\"\x94\x01\n" +
	"\vScanOutcome\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\x12\x1f\n" +
	"\vtarget_name\x18\x02 \x01(\tR\n" +
	"targetName\x12\x18\n" +
	"\asuccess\x18\x03 \x01(\bR\asuccess\x12\x17\n" +
	"\ascan_id\x18\x04 \x01(\tR\x06scanId\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\"h\n" +
	"\x16ScanAllTargetsResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\x05R\ascanned\x124\n" +
	"\aresults\x18\x02 \x03(\v2\x1a.marketlens.v1.ScanOutcomeR\aresults\"-\n" +
	"\x12ApproveScanRequest\x12\x17\n" +
	"\ascan_id\x18\x01 \x01(\tR\x06scanId\"\x15\n" +
	"\x13ApproveScanResponse\",\n" +
	"\x11RejectScanRequest\x12\x17\n" +
	"\ascan_id\x18\x01 \x01(\tR\x06scanId\"\x14\n" +
	"\x12RejectScanResponse\"\xb3\x01\n" +
	"\x14PromoteFieldsRequest\x12\x17\n" +
	"\ascan_id\x18\x01 \x01(\tR\x06scanId\x12G\n" +
	"\x06fields\x18\x02 \x03(\v2/.marketlens.v1.PromoteFieldsRequest.FieldsEntryR\x06fields\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"8\n" +
	"\x15PromoteFieldsResponse\x12\x1f\n" +
	"\vmaster_data\x18\x01 \x01(\tR\n" +
	"masterData\"=\n" +
	"\fBrandRequest\x12\x17\n" +
	"\ascan_id\x18\x01 \x01(\tR\x06scanId\x12\x14\n" +
	"\x05brand\x18\x02 \x01(\tR\x05brand\"0\n" +
	"\rBrandResponse\x12\x1f\n" +
	"\vmaster_data\x18\x01 \x01(\tR\n" +
	"masterData\"0\n" +
	"\x18GenerateProposalsRequest\x12\x14\n" +
	"\x05topic\x18\x01 \x01(\tR\x05topic\"R\n" +
	"\x19GenerateProposalsResponse\x125\n" +
	"\tproposals\x18\x01 \x03(\v2\x17.marketlens.v1.ProposalR\tproposals\"\x16\n" +
	"\x14ListProposalsRequest\"N\n" +
	"\x15ListProposalsResponse\x125\n" +
	"\tproposals\x18\x01 \x03(\v2\x17.marketlens.v1.ProposalR\tproposals\"9\n" +
	"\x16PromoteProposalRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"H\n" +
	"\x17PromoteProposalResponse\x12-\n" +
	"\x06target\x18\x01 \x01(\v2\x15.marketlens.v1.TargetR\x06target\"9\n" +
	"\x16DismissProposalRequest\x12\x1f\n" +
	"\vproposal_id\x18\x01 \x01(\tR\n" +
	"proposalId\"\x19\n" +
	"\x17DismissProposalResponse\"1\n" +
	"\x19ListAvailableScansRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\"\xa2\x01\n" +
	"\rAvailableScan\x12\x1b\n" +
	"\ttarget_id\x18\x01 \x01(\tR\btargetId\x12\x1f\n" +
	"\vtarget_name\x18\x02 \x01(\tR\n" +
	"targetName\x12\x1d\n" +
	"\n" +
	"target_url\x18\x03 \x01(\tR\ttargetUrl\x12\x17\n" +
	"\ascan_id\x18\x04 \x01(\tR\x06scanId\x12\x1b\n" +
	"\tscan_date\x18\x05 \x01(\tR\bscanDate\"P\n" +
	"\x1aListAvailableScansResponse\x122\n" +
	"\x05scans\x18\x01 \x03(\v2\x1c.marketlens.v1.AvailableScanR\x05scans\"<\n" +
	"\x1fGenerateValuePropositionRequest\x12\x19\n" +
	"\bscan_ids\x18\x01 \x03(\tR\ascanIds\">\n" +
	" GenerateValuePropositionResponse\x12\x1a\n" +
	"\bmarkdown\x18\x01 \x01(\tR\bmarkdown\"\x15\n" +
	"\x13ExportMasterRequest\"F\n" +
	"\x14ExportMasterResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xb7\x0e\n" +
	"\x0eTrackerService\x12W\n" +
	"\fCreateTarget\x12\".marketlens.v1.CreateTargetRequest\x1a#.marketlens.v1.CreateTargetResponse\x12N\n" +
	"\tGetTarget\x12\x1f.marketlens.v1.GetTargetRequest\x1a .marketlens.v1.GetTargetResponse\x12T\n" +
	"\vListTargets\x12!.marketlens.v1.ListTargetsRequest\x1a\".marketlens.v1.ListTargetsResponse\x12i\n" +
	"\x12UpdateTargetConfig\x12(.marketlens.v1.UpdateTargetConfigRequest\x1a).marketlens.v1.UpdateTargetConfigResponse\x12W\n" +
	"\fDeleteTarget\x12\".marketlens.v1.DeleteTargetRequest\x1a#.marketlens.v1.DeleteTargetResponse\x12N\n" +
	"\tListScans\x12\x1f.marketlens.v1.ListScansRequest\x1a .marketlens.v1.ListScansResponse\x12T\n" +
	"\vTriggerScan\x12!.marketlens.v1.TriggerScanRequest\x1a\".marketlens.v1.TriggerScanResponse\x12]\n" +
	"\x0eScanAllTargets\x12$.marketlens.v1.ScanAllTargetsRequest\x1a%.marketlens.v1.ScanAllTargetsResponse\x12T\n" +
	"\vApproveScan\x12!.marketlens.v1.ApproveScanRequest\x1a\".marketlens.v1.ApproveScanResponse\x12Q\n" +
	"\n" +
	"RejectScan\x12 .marketlens.v1.RejectScanRequest\x1a!.marketlens.v1.RejectScanResponse\x12Z\n" +
	"\rPromoteFields\x12#.marketlens.v1.PromoteFieldsRequest\x1a$.marketlens.v1.PromoteFieldsResponse\x12E\n" +
	"\bAddBrand\x12\x1b.marketlens.v1.BrandRequest\x1a\x1c.marketlens.v1.BrandResponse\x12H\n" +
	"\vRemoveBrand\x12\x1b.marketlens.v1.BrandRequest\x1a\x1c.marketlens.v1.BrandResponse\x12f\n" +
	"\x11GenerateProposals\x12'.marketlens.v1.GenerateProposalsRequest\x1a(.marketlens.v1.GenerateProposalsResponse\x12Z\n" +
	"\rListProposals\x12#.marketlens.v1.ListProposalsRequest\x1a$.marketlens.v1.ListProposalsResponse\x12`\n" +
	"\x0fPromoteProposal\x12%.marketlens.v1.PromoteProposalRequest\x1a&.marketlens.v1.PromoteProposalResponse\x12`\n" +
	"\x0fDismissProposal\x12%.marketlens.v1.DismissProposalRequest\x1a&.marketlens.v1.DismissProposalResponse\x12i\n" +
	"\x12ListAvailableScans\x12(.marketlens.v1.ListAvailableScansRequest\x1a).marketlens.v1.ListAvailableScansResponse\x12{\n" +
	"\x18GenerateValueProposition\x12..marketlens.v1.GenerateValuePropositionRequest\x1a/.marketlens.v1.GenerateValuePropositionResponse\x12W\n" +
	"\fExportMaster\x12\".marketlens.v1.ExportMasterRequest\x1a#.marketlens.v1.ExportMasterResponseBGZEgithub.com/marketlens/marketlens/gen/proto/marketlens/v1;marketlensv1b\x06proto3"

var (
	file_marketlens_v1_marketlens_proto_rawDescOnce sync.Once
	file_marketlens_v1_marketlens_proto_rawDescData []byte
)

func file_marketlens_v1_marketlens_proto_rawDescGZIP() []byte {
	file_marketlens_v1_marketlens_proto_rawDescOnce.Do(func() {
		file_marketlens_v1_marketlens_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_marketlens_v1_marketlens_proto_rawDesc), len(file_marketlens_v1_marketlens_proto_rawDesc)))
	})
	return file_marketlens_v1_marketlens_proto_rawDescData
}

var file_marketlens_v1_marketlens_proto_msgTypes = make([]protoimpl.MessageInfo, 44)
var file_marketlens_v1_marketlens_proto_goTypes = []any{
	(*Target)(nil),                           // 0: marketlens.v1.Target
	(*ScanResult)(nil),                       // 1: marketlens.v1.ScanResult
	(*Proposal)(nil),                         // 2: marketlens.v1.Proposal
	(*CreateTargetRequest)(nil),              // 3: marketlens.v1.CreateTargetRequest
	(*CreateTargetResponse)(nil),             // 4: marketlens.v1.CreateTargetResponse
	(*GetTargetRequest)(nil),                 // 5: marketlens.v1.GetTargetRequest
	(*GetTargetResponse)(nil),                // 6: marketlens.v1.GetTargetResponse
	(*ListTargetsRequest)(nil),               // 7: marketlens.v1.ListTargetsRequest
	(*ListTargetsResponse)(nil),              // 8: marketlens.v1.ListTargetsResponse
	(*UpdateTargetConfigRequest)(nil),        // 9: marketlens.v1.UpdateTargetConfigRequest
	(*UpdateTargetConfigResponse)(nil),       // 10: marketlens.v1.UpdateTargetConfigResponse
	(*DeleteTargetRequest)(nil),              // 11: marketlens.v1.DeleteTargetRequest
	(*DeleteTargetResponse)(nil),             // 12: marketlens.v1.DeleteTargetResponse
	(*ListScansRequest)(nil),                 // 13: marketlens.v1.ListScansRequest
	(*ListScansResponse)(nil),                // 14: marketlens.v1.ListScansResponse
	(*TriggerScanRequest)(nil),               // 15: marketlens.v1.TriggerScanRequest
	(*TriggerScanResponse)(nil),              // 16: marketlens.v1.TriggerScanResponse
	(*ScanAllTargetsRequest)(nil),            // 17: marketlens.v1.ScanAllTargetsRequest
	(*ScanOutcome)(nil),                      // 18: marketlens.v1.ScanOutcome
	(*ScanAllTargetsResponse)(nil),           // 19: marketlens.v1.ScanAllTargetsResponse
	(*ApproveScanRequest)(nil),               // 20: marketlens.v1.ApproveScanRequest
	(*ApproveScanResponse)(nil),              // 21: marketlens.v1.ApproveScanResponse
	(*RejectScanRequest)(nil),                // 22: marketlens.v1.RejectScanRequest
	(*RejectScanResponse)(nil),               // 23: marketlens.v1.RejectScanResponse
	(*PromoteFieldsRequest)(nil),             // 24: marketlens.v1.PromoteFieldsRequest
	(*PromoteFieldsResponse)(nil),            // 25: marketlens.v1.PromoteFieldsResponse
	(*BrandRequest)(nil),                     // 26: marketlens.v1.BrandRequest
	(*BrandResponse)(nil),                    // 27: marketlens.v1.BrandResponse
	(*GenerateProposalsRequest)(nil),         // 28: marketlens.v1.GenerateProposalsRequest
	(*GenerateProposalsResponse)(nil),        // 29: marketlens.v1.GenerateProposalsResponse
	(*ListProposalsRequest)(nil),             // 30: marketlens.v1.ListProposalsRequest
	(*ListProposalsResponse)(nil),            // 31: marketlens.v1.ListProposalsResponse
	(*PromoteProposalRequest)(nil),           // 32: marketlens.v1.PromoteProposalRequest
	(*PromoteProposalResponse)(nil),          // 33: marketlens.v1.PromoteProposalResponse
	(*DismissProposalRequest)(nil),           // 34: marketlens.v1.DismissProposalRequest
	(*DismissProposalResponse)(nil),          // 35: marketlens.v1.DismissProposalResponse
	(*ListAvailableScansRequest)(nil),        // 36: marketlens.v1.ListAvailableScansRequest
	(*AvailableScan)(nil),                    // 37: marketlens.v1.AvailableScan
	(*ListAvailableScansResponse)(nil),       // 38: marketlens.v1.ListAvailableScansResponse
	(*GenerateValuePropositionRequest)(nil),  // 39: marketlens.v1.GenerateValuePropositionRequest
	(*GenerateValuePropositionResponse)(nil), // 40: marketlens.v1.GenerateValuePropositionResponse
	(*ExportMasterRequest)(nil),              // 41: marketlens.v1.ExportMasterRequest
	(*ExportMasterResponse)(nil),             // 42: marketlens.v1.ExportMasterResponse
	nil,                                      // 43: marketlens.v1.PromoteFieldsRequest.FieldsEntry
}
var file_marketlens_v1_marketlens_proto_depIdxs = []int32{
	0,  // 0: marketlens.v1.CreateTargetResponse.target:type_name -> marketlens.v1.Target
	0,  // 1: marketlens.v1.GetTargetResponse.target:type_name -> marketlens.v1.Target
	0,  // 2: marketlens.v1.ListTargetsResponse.targets:type_name -> marketlens.v1.Target
	1,  // 3: marketlens.v1.ListScansResponse.scans:type_name -> marketlens.v1.ScanResult
	18, // 4: marketlens.v1.ScanAllTargetsResponse.results:type_name -> marketlens.v1.ScanOutcome
	43, // 5: marketlens.v1.PromoteFieldsRequest.fields:type_name -> marketlens.v1.PromoteFieldsRequest.FieldsEntry
	2,  // 6: marketlens.v1.GenerateProposalsResponse.proposals:type_name -> marketlens.v1.Proposal
	2,  // 7: marketlens.v1.ListProposalsResponse.proposals:type_name -> marketlens.v1.Proposal
	0,  // 8: marketlens.v1.PromoteProposalResponse.target:type_name -> marketlens.v1.Target
	37, // 9: marketlens.v1.ListAvailableScansResponse.scans:type_name -> marketlens.v1.AvailableScan
	3,  // 10: marketlens.v1.TrackerService.CreateTarget:input_type -> marketlens.v1.CreateTargetRequest
	5,  // 11: marketlens.v1.TrackerService.GetTarget:input_type -> marketlens.v1.GetTargetRequest
	7,  // 12: marketlens.v1.TrackerService.ListTargets:input_type -> marketlens.v1.ListTargetsRequest
	9,  // 13: marketlens.v1.TrackerService.UpdateTargetConfig:input_type -> marketlens.v1.UpdateTargetConfigRequest
	11, // 14: marketlens.v1.TrackerService.DeleteTarget:input_type -> marketlens.v1.DeleteTargetRequest
	13, // 15: marketlens.v1.TrackerService.ListScans:input_type -> marketlens.v1.ListScansRequest
	15, // 16: marketlens.v1.TrackerService.TriggerScan:input_type -> marketlens.v1.TriggerScanRequest
	17, // 17: marketlens.v1.TrackerService.ScanAllTargets:input_type -> marketlens.v1.ScanAllTargetsRequest
	20, // 18: marketlens.v1.TrackerService.ApproveScan:input_type -> marketlens.v1.ApproveScanRequest
	22, // 19: marketlens.v1.TrackerService.RejectScan:input_type -> marketlens.v1.RejectScanRequest
	24, // 20: marketlens.v1.TrackerService.PromoteFields:input_type -> marketlens.v1.PromoteFieldsRequest
	26, // 21: marketlens.v1.TrackerService.AddBrand:input_type -> marketlens.v1.BrandRequest
	26, // 22: marketlens.v1.TrackerService.RemoveBrand:input_type -> marketlens.v1.BrandRequest
	28, // 23: marketlens.v1.TrackerService.GenerateProposals:input_type -> marketlens.v1.GenerateProposalsRequest
	30, // 24: marketlens.v1.TrackerService.ListProposals:input_type -> marketlens.v1.ListProposalsRequest
	32, // 25: marketlens.v1.TrackerService.PromoteProposal:input_type -> marketlens.v1.PromoteProposalRequest
	34, // 26: marketlens.v1.TrackerService.DismissProposal:input_type -> marketlens.v1.DismissProposalRequest
	36, // 27: marketlens.v1.TrackerService.ListAvailableScans:input_type -> marketlens.v1.ListAvailableScansRequest
	39, // 28: marketlens.v1.TrackerService.GenerateValueProposition:input_type -> marketlens.v1.GenerateValuePropositionRequest
	41, // 29: marketlens.v1.TrackerService.ExportMaster:input_type -> marketlens.v1.ExportMasterRequest
	4,  // 30: marketlens.v1.TrackerService.CreateTarget:output_type -> marketlens.v1.CreateTargetResponse
	6,  // 31: marketlens.v1.TrackerService.GetTarget:output_type -> marketlens.v1.GetTargetResponse
	8,  // 32: marketlens.v1.TrackerService.ListTargets:output_type -> marketlens.v1.ListTargetsResponse
	10, // 33: marketlens.v1.TrackerService.UpdateTargetConfig:output_type -> marketlens.v1.UpdateTargetConfigResponse
	12, // 34: marketlens.v1.TrackerService.DeleteTarget:output_type -> marketlens.v1.DeleteTargetResponse
	14, // 35: marketlens.v1.TrackerService.ListScans:output_type -> marketlens.v1.ListScansResponse
	16, // 36: marketlens.v1.TrackerService.TriggerScan:output_type -> marketlens.v1.TriggerScanResponse
	19, // 37: marketlens.v1.TrackerService.ScanAllTargets:output_type -> marketlens.v1.ScanAllTargetsResponse
	21, // 38: marketlens.v1.TrackerService.ApproveScan:output_type -> marketlens.v1.ApproveScanResponse
	23, // 39: marketlens.v1.TrackerService.RejectScan:output_type -> marketlens.v1.RejectScanResponse
	25, // 40: marketlens.v1.TrackerService.PromoteFields:output_type -> marketlens.v1.PromoteFieldsResponse
	27, // 41: marketlens.v1.TrackerService.AddBrand:output_type -> marketlens.v1.BrandResponse
	27, // 42: marketlens.v1.TrackerService.RemoveBrand:output_type -> marketlens.v1.BrandResponse
	29, // 43: marketlens.v1.TrackerService.GenerateProposals:output_type -> marketlens.v1.GenerateProposalsResponse
	31, // 44: marketlens.v1.TrackerService.ListProposals:output_type -> marketlens.v1.ListProposalsResponse
	33, // 45: marketlens.v1.TrackerService.PromoteProposal:output_type -> marketlens.v1.PromoteProposalResponse
	35, // 46: marketlens.v1.TrackerService.DismissProposal:output_type -> marketlens.v1.DismissProposalResponse
	38, // 47: marketlens.v1.TrackerService.ListAvailableScans:output_type -> marketlens.v1.ListAvailableScansResponse
	40, // 48: marketlens.v1.TrackerService.GenerateValueProposition:output_type -> marketlens.v1.GenerateValuePropositionResponse
	42, // 49: marketlens.v1.TrackerService.ExportMaster:output_type -> marketlens.v1.ExportMasterResponse
	30, // [30:50] is the sub-list for method output_type
	10, // [10:30] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_marketlens_v1_marketlens_proto_init() }
func file_marketlens_v1_marketlens_proto_init() {
	if File_marketlens_v1_marketlens_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_marketlens_v1_marketlens_proto_rawDesc), len(file_marketlens_v1_marketlens_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   44,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_marketlens_v1_marketlens_proto_goTypes,
		DependencyIndexes: file_marketlens_v1_marketlens_proto_depIdxs,
		MessageInfos:      file_marketlens_v1_marketlens_proto_msgTypes,
	}.Build()
	File_marketlens_v1_marketlens_proto = out.File
	file_marketlens_v1_marketlens_proto_goTypes = nil
	file_marketlens_v1_marketlens_proto_depIdxs = nil
}
