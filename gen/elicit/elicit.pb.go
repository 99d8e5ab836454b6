// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: elicit.proto

package elicit

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

// StimulusDimension is one named numeric axis of the stimulus.
type StimulusDimension struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Value         float64                `protobuf:"fixed64,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StimulusDimension) Reset() {
	*x = StimulusDimension{}
	mi := &file_elicit_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StimulusDimension) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StimulusDimension) ProtoMessage() {}

func (x *StimulusDimension) ProtoReflect() protoreflect.Message {
	mi := &file_elicit_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StimulusDimension.ProtoReflect.Descriptor instead.
func (*StimulusDimension) Descriptor() ([]byte, []int) {
	return file_elicit_proto_rawDescGZIP(), []int{0}
}

func (x *StimulusDimension) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *StimulusDimension) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

type PresentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	TrialIndex    int32                  `protobuf:"varint,2,opt,name=trial_index,json=trialIndex,proto3" json:"trial_index,omitempty"`
	Dimensions    []*StimulusDimension   `protobuf:"bytes,3,rep,name=dimensions,proto3" json:"dimensions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PresentRequest) Reset() {
	*x = PresentRequest{}
	mi := &file_elicit_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PresentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PresentRequest) ProtoMessage() {}

func (x *PresentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_elicit_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PresentRequest.ProtoReflect.Descriptor instead.
func (*PresentRequest) Descriptor() ([]byte, []int) {
	return file_elicit_proto_rawDescGZIP(), []int{1}
}

func (x *PresentRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *PresentRequest) GetTrialIndex() int32 {
	if x != nil {
		return x.TrialIndex
	}
	return 0
}

func (x *PresentRequest) GetDimensions() []*StimulusDimension {
	if x != nil {
		return x.Dimensions
	}
	return nil
}

type PresentResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// responded is false when the participant timed out or skipped.
	Responded bool `protobuf:"varint,1,opt,name=responded,proto3" json:"responded,omitempty"`
	// choice: 0 = standard option, 1 = variable option.
	Choice        int32 `protobuf:"varint,2,opt,name=choice,proto3" json:"choice,omitempty"`
	LatencyMs     int64 `protobuf:"varint,3,opt,name=latency_ms,json=latencyMs,proto3" json:"latency_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PresentResponse) Reset() {
	*x = PresentResponse{}
	mi := &file_elicit_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PresentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PresentResponse) ProtoMessage() {}

func (x *PresentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_elicit_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PresentResponse.ProtoReflect.Descriptor instead.
func (*PresentResponse) Descriptor() ([]byte, []int) {
	return file_elicit_proto_rawDescGZIP(), []int{2}
}

func (x *PresentResponse) GetResponded() bool {
	if x != nil {
		return x.Responded
	}
	return false
}

func (x *PresentResponse) GetChoice() int32 {
	if x != nil {
		return x.Choice
	}
	return 0
}

func (x *PresentResponse) GetLatencyMs() int64 {
	if x != nil {
		return x.LatencyMs
	}
	return 0
}

var File_elicit_proto protoreflect.FileDescriptor

const file_elicit_proto_rawDesc = "" +
	"\n" +
	"\felicit.proto\x12\x06elicit\"=\n" +
	"\x11StimulusDimension\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value\"\x8b\x01\n" +
	"\x0ePresentRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1f\n" +
	"\vtrial_index\x18\x02 \x01(\x05R\n" +
	"trialIndex\x129\n" +
	"\n" +
	"dimensions\x18\x03 \x03(\v2\x19.elicit.StimulusDimensionR\n" +
	"dimensions\"f\n" +
	"\x0fPresentResponse\x12\x1c\n" +
	"\tresponded\x18\x01 \x01(\bR\tresponded\x12\x16\n" +
	"\x06choice\x18\x02 \x01(\x05R\x06choice\x12\x1d\n" +
	"\n" +
	"latency_ms\x18\x03 \x01(\x03R\tlatencyMs2K\n" +
	"\rElicitService\x12:\n" +
	"\aPresent\x12\x16.elicit.PresentRequest\x1a\x17.elicit.PresentResponseBFZDgithub.com/danielpatrickdp/adaptive-elicitation/go-engine/gen/elicitb\x06proto3"

var (
	file_elicit_proto_rawDescOnce sync.Once
	file_elicit_proto_rawDescData []byte
)

func file_elicit_proto_rawDescGZIP() []byte {
	file_elicit_proto_rawDescOnce.Do(func() {
		file_elicit_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_elicit_proto_rawDesc), len(file_elicit_proto_rawDesc)))
	})
	return file_elicit_proto_rawDescData
}

var file_elicit_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_elicit_proto_goTypes = []any{
	(*StimulusDimension)(nil), // 0: elicit.StimulusDimension
	(*PresentRequest)(nil),    // 1: elicit.PresentRequest
	(*PresentResponse)(nil),   // 2: elicit.PresentResponse
}
var file_elicit_proto_depIdxs = []int32{
	0, // 0: elicit.PresentRequest.dimensions:type_name -> elicit.StimulusDimension
	1, // 1: elicit.ElicitService.Present:input_type -> elicit.PresentRequest
	2, // 2: elicit.ElicitService.Present:output_type -> elicit.PresentResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_elicit_proto_init() }
func file_elicit_proto_init() {
	if File_elicit_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_elicit_proto_rawDesc), len(file_elicit_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_elicit_proto_goTypes,
		DependencyIndexes: file_elicit_proto_depIdxs,
		MessageInfos:      file_elicit_proto_msgTypes,
	}.Build()
	File_elicit_proto = out.File
	file_elicit_proto_goTypes = nil
	file_elicit_proto_depIdxs = nil
}
