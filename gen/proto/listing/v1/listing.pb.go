// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: listing/v1/listing.proto

package listingv1

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

type GenerateListingRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Address         string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	ListingType     string                 `protobuf:"bytes,2,opt,name=listing_type,json=listingType,proto3" json:"listing_type,omitempty"`
	Region          string                 `protobuf:"bytes,3,opt,name=region,proto3" json:"region,omitempty"`
	PropertyType    string                 `protobuf:"bytes,4,opt,name=property_type,json=propertyType,proto3" json:"property_type,omitempty"`
	Bedrooms        *int32                 `protobuf:"varint,5,opt,name=bedrooms,proto3,oneof" json:"bedrooms,omitempty"`
	Bathrooms       *float64               `protobuf:"fixed64,6,opt,name=bathrooms,proto3,oneof" json:"bathrooms,omitempty"`
	Sqft            *int32                 `protobuf:"varint,7,opt,name=sqft,proto3,oneof" json:"sqft,omitempty"`
	Price           *float64               `protobuf:"fixed64,8,opt,name=price,proto3,oneof" json:"price,omitempty"`
	Notes           string                 `protobuf:"bytes,9,opt,name=notes,proto3" json:"notes,omitempty"`
	BillingCycle    string                 `protobuf:"bytes,10,opt,name=billing_cycle,json=billingCycle,proto3" json:"billing_cycle,omitempty"`
	LeaseTerm       string                 `protobuf:"bytes,11,opt,name=lease_term,json=leaseTerm,proto3" json:"lease_term,omitempty"`
	SecurityDeposit *float64               `protobuf:"fixed64,12,opt,name=security_deposit,json=securityDeposit,proto3,oneof" json:"security_deposit,omitempty"`
	HoaFees         *float64               `protobuf:"fixed64,13,opt,name=hoa_fees,json=hoaFees,proto3,oneof" json:"hoa_fees,omitempty"`
	PropertyTaxes   *float64               `protobuf:"fixed64,14,opt,name=property_taxes,json=propertyTaxes,proto3,oneof" json:"property_taxes,omitempty"`
	CouncilTax      *float64               `protobuf:"fixed64,15,opt,name=council_tax,json=councilTax,proto3,oneof" json:"council_tax,omitempty"`
	Rates           *float64               `protobuf:"fixed64,16,opt,name=rates,proto3,oneof" json:"rates,omitempty"`
	StrataFees      *float64               `protobuf:"fixed64,17,opt,name=strata_fees,json=strataFees,proto3,oneof" json:"strata_fees,omitempty"`
	Landmarks       []string               `protobuf:"bytes,18,rep,name=landmarks,proto3" json:"landmarks,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GenerateListingRequest) Reset() {
	*x = GenerateListingRequest{}
	mi := &file_listing_v1_listing_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateListingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateListingRequest) ProtoMessage() {}

func (x *GenerateListingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateListingRequest.ProtoReflect.Descriptor instead.
func (*GenerateListingRequest) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{0}
}

func (x *GenerateListingRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *GenerateListingRequest) GetListingType() string {
	if x != nil {
		return x.ListingType
	}
	return ""
}

func (x *GenerateListingRequest) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *GenerateListingRequest) GetPropertyType() string {
	if x != nil {
		return x.PropertyType
	}
	return ""
}

func (x *GenerateListingRequest) GetBedrooms() int32 {
	if x != nil && x.Bedrooms != nil {
		return *x.Bedrooms
	}
	return 0
}

func (x *GenerateListingRequest) GetBathrooms() float64 {
	if x != nil && x.Bathrooms != nil {
		return *x.Bathrooms
	}
	return 0
}

func (x *GenerateListingRequest) GetSqft() int32 {
	if x != nil && x.Sqft != nil {
		return *x.Sqft
	}
	return 0
}

func (x *GenerateListingRequest) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

func (x *GenerateListingRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *GenerateListingRequest) GetBillingCycle() string {
	if x != nil {
		return x.BillingCycle
	}
	return ""
}

func (x *GenerateListingRequest) GetLeaseTerm() string {
	if x != nil {
		return x.LeaseTerm
	}
	return ""
}

func (x *GenerateListingRequest) GetSecurityDeposit() float64 {
	if x != nil && x.SecurityDeposit != nil {
		return *x.SecurityDeposit
	}
	return 0
}

func (x *GenerateListingRequest) GetHoaFees() float64 {
	if x != nil && x.HoaFees != nil {
		return *x.HoaFees
	}
	return 0
}

func (x *GenerateListingRequest) GetPropertyTaxes() float64 {
	if x != nil && x.PropertyTaxes != nil {
		return *x.PropertyTaxes
	}
	return 0
}

func (x *GenerateListingRequest) GetCouncilTax() float64 {
	if x != nil && x.CouncilTax != nil {
		return *x.CouncilTax
	}
	return 0
}

func (x *GenerateListingRequest) GetRates() float64 {
	if x != nil && x.Rates != nil {
		return *x.Rates
	}
	return 0
}

func (x *GenerateListingRequest) GetStrataFees() float64 {
	if x != nil && x.StrataFees != nil {
		return *x.StrataFees
	}
	return 0
}

func (x *GenerateListingRequest) GetLandmarks() []string {
	if x != nil {
		return x.Landmarks
	}
	return nil
}

// GeneratedListing is the formatted output of a successful run.
type GeneratedListing struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Title            string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description      string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	PriceBlock       string                 `protobuf:"bytes,3,opt,name=price_block,json=priceBlock,proto3" json:"price_block,omitempty"`
	FormattedListing string                 `protobuf:"bytes,4,opt,name=formatted_listing,json=formattedListing,proto3" json:"formatted_listing,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GeneratedListing) Reset() {
	*x = GeneratedListing{}
	mi := &file_listing_v1_listing_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GeneratedListing) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GeneratedListing) ProtoMessage() {}

func (x *GeneratedListing) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GeneratedListing.ProtoReflect.Descriptor instead.
func (*GeneratedListing) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{1}
}

func (x *GeneratedListing) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *GeneratedListing) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *GeneratedListing) GetPriceBlock() string {
	if x != nil {
		return x.PriceBlock
	}
	return ""
}

func (x *GeneratedListing) GetFormattedListing() string {
	if x != nil {
		return x.FormattedListing
	}
	return ""
}

type GenerateListingResponse struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	RequestId               string                 `protobuf:"bytes,1,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Success                 bool                   `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
	Listing                 *GeneratedListing      `protobuf:"bytes,3,opt,name=listing,proto3" json:"listing,omitempty"`
	Errors                  []string               `protobuf:"bytes,4,rep,name=errors,proto3" json:"errors,omitempty"`
	PredictedPrice          *float64               `protobuf:"fixed64,5,opt,name=predicted_price,json=predictedPrice,proto3,oneof" json:"predicted_price,omitempty"`
	PredictedPriceReasoning string                 `protobuf:"bytes,6,opt,name=predicted_price_reasoning,json=predictedPriceReasoning,proto3" json:"predicted_price_reasoning,omitempty"`
	// run_id identifies the stored history row; empty when history could
	// not be written.
	RunId         string `protobuf:"bytes,7,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateListingResponse) Reset() {
	*x = GenerateListingResponse{}
	mi := &file_listing_v1_listing_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateListingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateListingResponse) ProtoMessage() {}

func (x *GenerateListingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateListingResponse.ProtoReflect.Descriptor instead.
func (*GenerateListingResponse) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{2}
}

func (x *GenerateListingResponse) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *GenerateListingResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *GenerateListingResponse) GetListing() *GeneratedListing {
	if x != nil {
		return x.Listing
	}
	return nil
}

func (x *GenerateListingResponse) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *GenerateListingResponse) GetPredictedPrice() float64 {
	if x != nil && x.PredictedPrice != nil {
		return *x.PredictedPrice
	}
	return 0
}

func (x *GenerateListingResponse) GetPredictedPriceReasoning() string {
	if x != nil {
		return x.PredictedPriceReasoning
	}
	return ""
}

func (x *GenerateListingResponse) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetListingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetListingRequest) Reset() {
	*x = GetListingRequest{}
	mi := &file_listing_v1_listing_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetListingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetListingRequest) ProtoMessage() {}

func (x *GetListingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetListingRequest.ProtoReflect.Descriptor instead.
func (*GetListingRequest) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{3}
}

func (x *GetListingRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetListingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Run           *ListingRun            `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetListingResponse) Reset() {
	*x = GetListingResponse{}
	mi := &file_listing_v1_listing_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetListingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetListingResponse) ProtoMessage() {}

func (x *GetListingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetListingResponse.ProtoReflect.Descriptor instead.
func (*GetListingResponse) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{4}
}

func (x *GetListingResponse) GetRun() *ListingRun {
	if x != nil {
		return x.Run
	}
	return nil
}

type ListListingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Region        string                 `protobuf:"bytes,2,opt,name=region,proto3" json:"region,omitempty"`
	ListingType   string                 `protobuf:"bytes,3,opt,name=listing_type,json=listingType,proto3" json:"listing_type,omitempty"`
	Limit         int32                  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListListingsRequest) Reset() {
	*x = ListListingsRequest{}
	mi := &file_listing_v1_listing_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListListingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListListingsRequest) ProtoMessage() {}

func (x *ListListingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListListingsRequest.ProtoReflect.Descriptor instead.
func (*ListListingsRequest) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{5}
}

func (x *ListListingsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListListingsRequest) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *ListListingsRequest) GetListingType() string {
	if x != nil {
		return x.ListingType
	}
	return ""
}

func (x *ListListingsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListListingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Runs          []*ListingRun          `protobuf:"bytes,1,rep,name=runs,proto3" json:"runs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListListingsResponse) Reset() {
	*x = ListListingsResponse{}
	mi := &file_listing_v1_listing_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListListingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListListingsResponse) ProtoMessage() {}

func (x *ListListingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListListingsResponse.ProtoReflect.Descriptor instead.
func (*ListListingsResponse) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{6}
}

func (x *ListListingsResponse) GetRuns() []*ListingRun {
	if x != nil {
		return x.Runs
	}
	return nil
}

type ExportListingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Region        string                 `protobuf:"bytes,2,opt,name=region,proto3" json:"region,omitempty"`
	ListingType   string                 `protobuf:"bytes,3,opt,name=listing_type,json=listingType,proto3" json:"listing_type,omitempty"`
	Limit         int32                  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportListingsRequest) Reset() {
	*x = ExportListingsRequest{}
	mi := &file_listing_v1_listing_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportListingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportListingsRequest) ProtoMessage() {}

func (x *ExportListingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportListingsRequest.ProtoReflect.Descriptor instead.
func (*ExportListingsRequest) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{7}
}

func (x *ExportListingsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExportListingsRequest) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *ExportListingsRequest) GetListingType() string {
	if x != nil {
		return x.ListingType
	}
	return ""
}

func (x *ExportListingsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ExportListingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportListingsResponse) Reset() {
	*x = ExportListingsResponse{}
	mi := &file_listing_v1_listing_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportListingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportListingsResponse) ProtoMessage() {}

func (x *ExportListingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportListingsResponse.ProtoReflect.Descriptor instead.
func (*ExportListingsResponse) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{8}
}

func (x *ExportListingsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportListingsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ListingRun struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RequestId     string                 `protobuf:"bytes,2,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	Address       string                 `protobuf:"bytes,3,opt,name=address,proto3" json:"address,omitempty"`
	ListingType   string                 `protobuf:"bytes,4,opt,name=listing_type,json=listingType,proto3" json:"listing_type,omitempty"`
	Region        string                 `protobuf:"bytes,5,opt,name=region,proto3" json:"region,omitempty"`
	PropertyType  string                 `protobuf:"bytes,6,opt,name=property_type,json=propertyType,proto3" json:"property_type,omitempty"`
	Bedrooms      *int32                 `protobuf:"varint,7,opt,name=bedrooms,proto3,oneof" json:"bedrooms,omitempty"`
	Bathrooms     *float64               `protobuf:"fixed64,8,opt,name=bathrooms,proto3,oneof" json:"bathrooms,omitempty"`
	Sqft          *int32                 `protobuf:"varint,9,opt,name=sqft,proto3,oneof" json:"sqft,omitempty"`
	Price         *float64               `protobuf:"fixed64,10,opt,name=price,proto3,oneof" json:"price,omitempty"`
	Notes         string                 `protobuf:"bytes,11,opt,name=notes,proto3" json:"notes,omitempty"`
	Status        string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	ErrorCount    int32                  `protobuf:"varint,13,opt,name=error_count,json=errorCount,proto3" json:"error_count,omitempty"`
	Errors        []string               `protobuf:"bytes,14,rep,name=errors,proto3" json:"errors,omitempty"`
	DurationMs    int64                  `protobuf:"varint,15,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	Draft         *ListingDraft          `protobuf:"bytes,16,opt,name=draft,proto3" json:"draft,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,18,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListingRun) Reset() {
	*x = ListingRun{}
	mi := &file_listing_v1_listing_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListingRun) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListingRun) ProtoMessage() {}

func (x *ListingRun) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListingRun.ProtoReflect.Descriptor instead.
func (*ListingRun) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{9}
}

func (x *ListingRun) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ListingRun) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

func (x *ListingRun) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ListingRun) GetListingType() string {
	if x != nil {
		return x.ListingType
	}
	return ""
}

func (x *ListingRun) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *ListingRun) GetPropertyType() string {
	if x != nil {
		return x.PropertyType
	}
	return ""
}

func (x *ListingRun) GetBedrooms() int32 {
	if x != nil && x.Bedrooms != nil {
		return *x.Bedrooms
	}
	return 0
}

func (x *ListingRun) GetBathrooms() float64 {
	if x != nil && x.Bathrooms != nil {
		return *x.Bathrooms
	}
	return 0
}

func (x *ListingRun) GetSqft() int32 {
	if x != nil && x.Sqft != nil {
		return *x.Sqft
	}
	return 0
}

func (x *ListingRun) GetPrice() float64 {
	if x != nil && x.Price != nil {
		return *x.Price
	}
	return 0
}

func (x *ListingRun) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *ListingRun) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListingRun) GetErrorCount() int32 {
	if x != nil {
		return x.ErrorCount
	}
	return 0
}

func (x *ListingRun) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *ListingRun) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

func (x *ListingRun) GetDraft() *ListingDraft {
	if x != nil {
		return x.Draft
	}
	return nil
}

func (x *ListingRun) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ListingRun) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListingDraft struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	Id                      string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RunId                   string                 `protobuf:"bytes,2,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Title                   string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description             string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	PriceBlock              string                 `protobuf:"bytes,5,opt,name=price_block,json=priceBlock,proto3" json:"price_block,omitempty"`
	FormattedListing        string                 `protobuf:"bytes,6,opt,name=formatted_listing,json=formattedListing,proto3" json:"formatted_listing,omitempty"`
	PredictedPrice          *float64               `protobuf:"fixed64,7,opt,name=predicted_price,json=predictedPrice,proto3,oneof" json:"predicted_price,omitempty"`
	PredictedPriceReasoning string                 `protobuf:"bytes,8,opt,name=predicted_price_reasoning,json=predictedPriceReasoning,proto3" json:"predicted_price_reasoning,omitempty"`
	ZipCode                 string                 `protobuf:"bytes,9,opt,name=zip_code,json=zipCode,proto3" json:"zip_code,omitempty"`
	Neighborhood            string                 `protobuf:"bytes,10,opt,name=neighborhood,proto3" json:"neighborhood,omitempty"`
	CreatedAt               string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *ListingDraft) Reset() {
	*x = ListingDraft{}
	mi := &file_listing_v1_listing_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListingDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListingDraft) ProtoMessage() {}

func (x *ListingDraft) ProtoReflect() protoreflect.Message {
	mi := &file_listing_v1_listing_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListingDraft.ProtoReflect.Descriptor instead.
func (*ListingDraft) Descriptor() ([]byte, []int) {
	return file_listing_v1_listing_proto_rawDescGZIP(), []int{10}
}

func (x *ListingDraft) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ListingDraft) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ListingDraft) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *ListingDraft) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *ListingDraft) GetPriceBlock() string {
	if x != nil {
		return x.PriceBlock
	}
	return ""
}

func (x *ListingDraft) GetFormattedListing() string {
	if x != nil {
		return x.FormattedListing
	}
	return ""
}

func (x *ListingDraft) GetPredictedPrice() float64 {
	if x != nil && x.PredictedPrice != nil {
		return *x.PredictedPrice
	}
	return 0
}

func (x *ListingDraft) GetPredictedPriceReasoning() string {
	if x != nil {
		return x.PredictedPriceReasoning
	}
	return ""
}

func (x *ListingDraft) GetZipCode() string {
	if x != nil {
		return x.ZipCode
	}
	return ""
}

func (x *ListingDraft) GetNeighborhood() string {
	if x != nil {
		return x.Neighborhood
	}
	return ""
}

func (x *ListingDraft) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

var File_listing_v1_listing_proto protoreflect.FileDescriptor

const file_listing_v1_listing_proto_rawDesc = "" +
	"\n" +
	"\x18listing/v1/listing.proto\x12\n" +
	"listing.v1\"\xf2\x05\n" +
	"\x16GenerateListingRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12!\n" +
	"\flisting_type\x18\x02 \x01(\tR\vlistingType\x12\x16\n" +
	"\x06region\x18\x03 \x01(\tR\x06region\x12#\n" +
	"\rproperty_type\x18\x04 \x01(\tR\fpropertyType\x12\x1f\n" +
	"\bbedrooms\x18\x05 \x01(\x05H\x00R\bbedrooms\x88\x01\x01\x12!\n" +
	"\tbathrooms\x18\x06 \x01(\x01H\x01R\tbathrooms\x88\x01\x01\x12\x17\n" +
	"\x04sqft\x18\a \x01(\x05H\x02R\x04sqft\x88\x01\x01\x12\x19\n" +
	"\x05price\x18\b \x01(\x01H\x03R\x05price\x88\x01\x01\x12\x14\n" +
	"\x05notes\x18\t \x01(\tR\x05notes\x12#\n" +
	"\rbilling_cycle\x18\n" +
	" \x01(\tR\fbillingCycle\x12\x1d\n" +
	"\n" +
	"lease_term\x18\v \x01(\tR\tleaseTerm\x12.\n" +
	"\x10security_deposit\x18\f \x01(\x01H\x04R\x0fsecurityDeposit\x88\x01\x01\x12\x1e\n" +
	"\bhoa_fees\x18\r \x01(\x01H\x05R\ahoaFees\x88\x01\x01\x12*\n" +
	"\x0eproperty_taxes\x18\x0e \x01(\x01H\x06R\rpropertyTaxes\x88\x01\x01\x12$\n" +
	"\vcouncil_tax\x18\x0f \x01(\x01H\aR\n" +
	"councilTax\x88\x01\x01\x12\x19\n" +
	"\x05rates\x18\x10 \x01(\x01H\bR\x05rates\x88\x01\x01\x12$\n" +
	"\vstrata_fees\x18\x11 \x01(\x01H\tR\n" +
	"strataFees\x88\x01\x01\x12\x1c\n" +
	"\tlandmarks\x18\x12 \x03(\tR\tlandmarksB\v\n" +
	"\t_bedroomsB\f\n" +
	"\n" +
	"_bathroomsB\a\n" +
	"\x05_sqftB\b\n" +
	"\x06_priceB\x13\n" +
	"\x11_security_depositB\v\n" +
	"\t_hoa_feesB\x11\n" +
	"\x0f_property_taxesB\x0e\n" +
	"\f_council_taxB\b\n" +
	"\x06_ratesB\x0e\n" +
	"\f_strata_fees\"\x98\x01\n" +
	"\x10GeneratedListing\x12\x14\n" +
	"\x05title\x18\x01 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1f\n" +
	"\vprice_block\x18\x03 \x01(\tR\n" +
	"priceBlock\x12+\n" +
	"\x11formatted_listing\x18\x04 \x01(\tR\x10formattedListing\"\xb7\x02\n" +
	"\x17GenerateListingResponse\x12\x1d\n" +
	"\n" +
	"request_id\x18\x01 \x01(\tR\trequestId\x12\x18\n" +
	"\asuccess\x18\x02 \x01(\bR\asuccess\x126\n" +
	"\alisting\x18\x03 \x01(\v2\x1c.listing.v1.GeneratedListingR\alisting\x12\x16\n" +
	"\x06errors\x18\x04 \x03(\tR\x06errors\x12,\n" +
	"\x0fpredicted_price\x18\x05 \x01(\x01H\x00R\x0epredictedPrice\x88\x01\x01\x12:\n" +
	"\x19predicted_price_reasoning\x18\x06 \x01(\tR\x17predictedPriceReasoning\x12\x15\n" +
	"\x06run_id\x18\a \x01(\tR\x05runIdB\x12\n" +
	"\x10_predicted_price\"*\n" +
	"\x11GetListingRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\">\n" +
	"\x12GetListingResponse\x12(\n" +
	"\x03run\x18\x01 \x01(\v2\x16.listing.v1.ListingRunR\x03run\"~\n" +
	"\x13ListListingsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x16\n" +
	"\x06region\x18\x02 \x01(\tR\x06region\x12!\n" +
	"\flisting_type\x18\x03 \x01(\tR\vlistingType\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\"B\n" +
	"\x14ListListingsResponse\x12*\n" +
	"\x04runs\x18\x01 \x03(\v2\x16.listing.v1.ListingRunR\x04runs\"\x80\x01\n" +
	"\x15ExportListingsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x16\n" +
	"\x06region\x18\x02 \x01(\tR\x06region\x12!\n" +
	"\flisting_type\x18\x03 \x01(\tR\vlistingType\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\"H\n" +
	"\x16ExportListingsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\xd1\x04\n" +
	"\n" +
	"ListingRun\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"request_id\x18\x02 \x01(\tR\trequestId\x12\x18\n" +
	"\aaddress\x18\x03 \x01(\tR\aaddress\x12!\n" +
	"\flisting_type\x18\x04 \x01(\tR\vlistingType\x12\x16\n" +
	"\x06region\x18\x05 \x01(\tR\x06region\x12#\n" +
	"\rproperty_type\x18\x06 \x01(\tR\fpropertyType\x12\x1f\n" +
	"\bbedrooms\x18\a \x01(\x05H\x00R\bbedrooms\x88\x01\x01\x12!\n" +
	"\tbathrooms\x18\b \x01(\x01H\x01R\tbathrooms\x88\x01\x01\x12\x17\n" +
	"\x04sqft\x18\t \x01(\x05H\x02R\x04sqft\x88\x01\x01\x12\x19\n" +
	"\x05price\x18\n" +
	" \x01(\x01H\x03R\x05price\x88\x01\x01\x12\x14\n" +
	"\x05notes\x18\v \x01(\tR\x05notes\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x12\x1f\n" +
	"\verror_count\x18\r \x01(\x05R\n" +
	"errorCount\x12\x16\n" +
	"\x06errors\x18\x0e \x03(\tR\x06errors\x12\x1f\n" +
	"\vduration_ms\x18\x0f \x01(\x03R\n" +
	"durationMs\x12.\n" +
	"\x05draft\x18\x10 \x01(\v2\x18.listing.v1.ListingDraftR\x05draft\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x12 \x01(\tR\tupdatedAtB\v\n" +
	"\t_bedroomsB\f\n" +
	"\n" +
	"_bathroomsB\a\n" +
	"\x05_sqftB\b\n" +
	"\x06_price\"\x97\x03\n" +
	"\fListingDraft\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06run_id\x18\x02 \x01(\tR\x05runId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1f\n" +
	"\vprice_block\x18\x05 \x01(\tR\n" +
	"priceBlock\x12+\n" +
	"\x11formatted_listing\x18\x06 \x01(\tR\x10formattedListing\x12,\n" +
	"\x0fpredicted_price\x18\a \x01(\x01H\x00R\x0epredictedPrice\x88\x01\x01\x12:\n" +
	"\x19predicted_price_reasoning\x18\b \x01(\tR\x17predictedPriceReasoning\x12\x19\n" +
	"\bzip_code\x18\t \x01(\tR\azipCode\x12\"\n" +
	"\fneighborhood\x18\n" +
	" \x01(\tR\fneighborhood\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAtB\x12\n" +
	"\x10_predicted_price2\xe5\x02\n" +
	"\x0eListingService\x12Z\n" +
	"\x0fGenerateListing\x12\".listing.v1.GenerateListingRequest\x1a#.listing.v1.GenerateListingResponse\x12K\n" +
	"\n" +
	"GetListing\x12\x1d.listing.v1.GetListingRequest\x1a\x1e.listing.v1.GetListingResponse\x12Q\n" +
	"\fListListings\x12\x1f.listing.v1.ListListingsRequest\x1a .listing.v1.ListListingsResponse\x12W\n" +
	"\x0eExportListings\x12!.listing.v1.ExportListingsRequest\x1a\".listing.v1.ExportListingsResponseBAZ?github.com/homescribe/listinggen/gen/proto/listing/v1;listingv1b\x06proto3"

var (
	file_listing_v1_listing_proto_rawDescOnce sync.Once
	file_listing_v1_listing_proto_rawDescData []byte
)

func file_listing_v1_listing_proto_rawDescGZIP() []byte {
	file_listing_v1_listing_proto_rawDescOnce.Do(func() {
		file_listing_v1_listing_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_listing_v1_listing_proto_rawDesc), len(file_listing_v1_listing_proto_rawDesc)))
	})
	return file_listing_v1_listing_proto_rawDescData
}

var file_listing_v1_listing_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_listing_v1_listing_proto_goTypes = []any{
	(*GenerateListingRequest)(nil),  // 0: listing.v1.GenerateListingRequest
	(*GeneratedListing)(nil),        // 1: listing.v1.GeneratedListing
	(*GenerateListingResponse)(nil), // 2: listing.v1.GenerateListingResponse
	(*GetListingRequest)(nil),       // 3: listing.v1.GetListingRequest
	(*GetListingResponse)(nil),      // 4: listing.v1.GetListingResponse
	(*ListListingsRequest)(nil),     // 5: listing.v1.ListListingsRequest
	(*ListListingsResponse)(nil),    // 6: listing.v1.ListListingsResponse
	(*ExportListingsRequest)(nil),   // 7: listing.v1.ExportListingsRequest
	(*ExportListingsResponse)(nil),  // 8: listing.v1.ExportListingsResponse
	(*ListingRun)(nil),              // 9: listing.v1.ListingRun
	(*ListingDraft)(nil),            // 10: listing.v1.ListingDraft
}
var file_listing_v1_listing_proto_depIdxs = []int32{
	1,  // 0: listing.v1.GenerateListingResponse.listing:type_name -> listing.v1.GeneratedListing
	9,  // 1: listing.v1.GetListingResponse.run:type_name -> listing.v1.ListingRun
	9,  // 2: listing.v1.ListListingsResponse.runs:type_name -> listing.v1.ListingRun
	10, // 3: listing.v1.ListingRun.draft:type_name -> listing.v1.ListingDraft
	0,  // 4: listing.v1.ListingService.GenerateListing:input_type -> listing.v1.GenerateListingRequest
	3,  // 5: listing.v1.ListingService.GetListing:input_type -> listing.v1.GetListingRequest
	5,  // 6: listing.v1.ListingService.ListListings:input_type -> listing.v1.ListListingsRequest
	7,  // 7: listing.v1.ListingService.ExportListings:input_type -> listing.v1.ExportListingsRequest
	2,  // 8: listing.v1.ListingService.GenerateListing:output_type -> listing.v1.GenerateListingResponse
	4,  // 9: listing.v1.ListingService.GetListing:output_type -> listing.v1.GetListingResponse
	6,  // 10: listing.v1.ListingService.ListListings:output_type -> listing.v1.ListListingsResponse
	8,  // 11: listing.v1.ListingService.ExportListings:output_type -> listing.v1.ExportListingsResponse
	8,  // [8:12] is the sub-list for method output_type
	4,  // [4:8] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_listing_v1_listing_proto_init() }
func file_listing_v1_listing_proto_init() {
	if File_listing_v1_listing_proto != nil {
		return
	}
	file_listing_v1_listing_proto_msgTypes[0].OneofWrappers = []any{}
	file_listing_v1_listing_proto_msgTypes[2].OneofWrappers = []any{}
	file_listing_v1_listing_proto_msgTypes[9].OneofWrappers = []any{}
	file_listing_v1_listing_proto_msgTypes[10].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_listing_v1_listing_proto_rawDesc), len(file_listing_v1_listing_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_listing_v1_listing_proto_goTypes,
		DependencyIndexes: file_listing_v1_listing_proto_depIdxs,
		MessageInfos:      file_listing_v1_listing_proto_msgTypes,
	}.Build()
	File_listing_v1_listing_proto = out.File
	file_listing_v1_listing_proto_goTypes = nil
	file_listing_v1_listing_proto_depIdxs = nil
}
