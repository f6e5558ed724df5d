// Package pb contains the hand-maintained wire types for the
// phishstoryservice.Phishstory gRPC surface. Kept in sync with
// phishstory.proto; regenerate-by-hand when the proto changes.
package pb

import "fmt"

// CreateTicketRequest carries a new abuse report. reporterEmail is consumed
// service-side and never forwarded to the ticketing backend.
type CreateTicketRequest struct {
	Type             string            `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Source           string            `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	SourceDomainOrIp string            `protobuf:"bytes,3,opt,name=sourceDomainOrIp,proto3" json:"sourceDomainOrIp,omitempty"`
	SourceSubDomain  string            `protobuf:"bytes,4,opt,name=sourceSubDomain,proto3" json:"sourceSubDomain,omitempty"`
	Target           string            `protobuf:"bytes,5,opt,name=target,proto3" json:"target,omitempty"`
	Proxy            string            `protobuf:"bytes,6,opt,name=proxy,proto3" json:"proxy,omitempty"`
	Reporter         string            `protobuf:"bytes,7,opt,name=reporter,proto3" json:"reporter,omitempty"`
	ReporterEmail    string            `protobuf:"bytes,8,opt,name=reporterEmail,proto3" json:"reporterEmail,omitempty"`
	Info             string            `protobuf:"bytes,9,opt,name=info,proto3" json:"info,omitempty"`
	InfoUrl          string            `protobuf:"bytes,10,opt,name=infoUrl,proto3" json:"infoUrl,omitempty"`
	Intentional      bool              `protobuf:"varint,11,opt,name=intentional,proto3" json:"intentional,omitempty"`
	Metadata         map[string]string `protobuf:"bytes,12,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *CreateTicketRequest) Reset()         { *m = CreateTicketRequest{} }
func (m *CreateTicketRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateTicketRequest) ProtoMessage()    {}

func (m *CreateTicketRequest) GetType() string {
	if m != nil {
		return m.Type
	}
	return ""
}

func (m *CreateTicketRequest) GetSource() string {
	if m != nil {
		return m.Source
	}
	return ""
}

func (m *CreateTicketRequest) GetSourceDomainOrIp() string {
	if m != nil {
		return m.SourceDomainOrIp
	}
	return ""
}

func (m *CreateTicketRequest) GetSourceSubDomain() string {
	if m != nil {
		return m.SourceSubDomain
	}
	return ""
}

func (m *CreateTicketRequest) GetTarget() string {
	if m != nil {
		return m.Target
	}
	return ""
}

func (m *CreateTicketRequest) GetProxy() string {
	if m != nil {
		return m.Proxy
	}
	return ""
}

func (m *CreateTicketRequest) GetReporter() string {
	if m != nil {
		return m.Reporter
	}
	return ""
}

func (m *CreateTicketRequest) GetReporterEmail() string {
	if m != nil {
		return m.ReporterEmail
	}
	return ""
}

func (m *CreateTicketRequest) GetInfo() string {
	if m != nil {
		return m.Info
	}
	return ""
}

func (m *CreateTicketRequest) GetInfoUrl() string {
	if m != nil {
		return m.InfoUrl
	}
	return ""
}

func (m *CreateTicketRequest) GetIntentional() bool {
	if m != nil {
		return m.Intentional
	}
	return false
}

func (m *CreateTicketRequest) GetMetadata() map[string]string {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type CreateTicketResponse struct {
	TicketId string `protobuf:"bytes,1,opt,name=ticketId,proto3" json:"ticketId,omitempty"`
}

func (m *CreateTicketResponse) Reset()         { *m = CreateTicketResponse{} }
func (m *CreateTicketResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateTicketResponse) ProtoMessage()    {}

func (m *CreateTicketResponse) GetTicketId() string {
	if m != nil {
		return m.TicketId
	}
	return ""
}

type UpdateTicketRequest struct {
	TicketId    string `protobuf:"bytes,1,opt,name=ticketId,proto3" json:"ticketId,omitempty"`
	Closed      bool   `protobuf:"varint,2,opt,name=closed,proto3" json:"closed,omitempty"`
	CloseReason string `protobuf:"bytes,3,opt,name=closeReason,proto3" json:"closeReason,omitempty"`
	Target      string `protobuf:"bytes,4,opt,name=target,proto3" json:"target,omitempty"`
	Type        string `protobuf:"bytes,5,opt,name=type,proto3" json:"type,omitempty"`
}

func (m *UpdateTicketRequest) Reset()         { *m = UpdateTicketRequest{} }
func (m *UpdateTicketRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UpdateTicketRequest) ProtoMessage()    {}

func (m *UpdateTicketRequest) GetTicketId() string {
	if m != nil {
		return m.TicketId
	}
	return ""
}

func (m *UpdateTicketRequest) GetClosed() bool {
	if m != nil {
		return m.Closed
	}
	return false
}

func (m *UpdateTicketRequest) GetCloseReason() string {
	if m != nil {
		return m.CloseReason
	}
	return ""
}

func (m *UpdateTicketRequest) GetTarget() string {
	if m != nil {
		return m.Target
	}
	return ""
}

func (m *UpdateTicketRequest) GetType() string {
	if m != nil {
		return m.Type
	}
	return ""
}

type UpdateTicketResponse struct{}

func (m *UpdateTicketResponse) Reset()         { *m = UpdateTicketResponse{} }
func (m *UpdateTicketResponse) String() string { return "" }
func (*UpdateTicketResponse) ProtoMessage()    {}

type GetTicketRequest struct {
	TicketId string `protobuf:"bytes,1,opt,name=ticketId,proto3" json:"ticketId,omitempty"`
	Reporter string `protobuf:"bytes,2,opt,name=reporter,proto3" json:"reporter,omitempty"`
}

func (m *GetTicketRequest) Reset()         { *m = GetTicketRequest{} }
func (m *GetTicketRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetTicketRequest) ProtoMessage()    {}

func (m *GetTicketRequest) GetTicketId() string {
	if m != nil {
		return m.TicketId
	}
	return ""
}

func (m *GetTicketRequest) GetReporter() string {
	if m != nil {
		return m.Reporter
	}
	return ""
}

// GetTicketResponse is the reporter-facing projection of a single ticket.
type GetTicketResponse struct {
	TicketId         string `protobuf:"bytes,1,opt,name=ticketId,proto3" json:"ticketId,omitempty"`
	Reporter         string `protobuf:"bytes,2,opt,name=reporter,proto3" json:"reporter,omitempty"`
	Source           string `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	SourceDomainOrIp string `protobuf:"bytes,4,opt,name=sourceDomainOrIp,proto3" json:"sourceDomainOrIp,omitempty"`
	Closed           bool   `protobuf:"varint,5,opt,name=closed,proto3" json:"closed,omitempty"`
	CreatedAt        string `protobuf:"bytes,6,opt,name=createdAt,proto3" json:"createdAt,omitempty"`
	ClosedAt         string `protobuf:"bytes,7,opt,name=closedAt,proto3" json:"closedAt,omitempty"`
	Type             string `protobuf:"bytes,8,opt,name=type,proto3" json:"type,omitempty"`
	Target           string `protobuf:"bytes,9,opt,name=target,proto3" json:"target,omitempty"`
	Proxy            string `protobuf:"bytes,10,opt,name=proxy,proto3" json:"proxy,omitempty"`
}

func (m *GetTicketResponse) Reset()         { *m = GetTicketResponse{} }
func (m *GetTicketResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetTicketResponse) ProtoMessage()    {}

func (m *GetTicketResponse) GetTicketId() string {
	if m != nil {
		return m.TicketId
	}
	return ""
}

func (m *GetTicketResponse) GetClosed() bool {
	if m != nil {
		return m.Closed
	}
	return false
}

type GetTicketsRequest struct {
	Type             string `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Source           string `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	SourceDomainOrIp string `protobuf:"bytes,3,opt,name=sourceDomainOrIp,proto3" json:"sourceDomainOrIp,omitempty"`
	Target           string `protobuf:"bytes,4,opt,name=target,proto3" json:"target,omitempty"`
	Proxy            string `protobuf:"bytes,5,opt,name=proxy,proto3" json:"proxy,omitempty"`
	Intentional      bool   `protobuf:"varint,6,opt,name=intentional,proto3" json:"intentional,omitempty"`
	Reporter         string `protobuf:"bytes,7,opt,name=reporter,proto3" json:"reporter,omitempty"`
	Info             string `protobuf:"bytes,8,opt,name=info,proto3" json:"info,omitempty"`
	InfoUrl          string `protobuf:"bytes,9,opt,name=infoUrl,proto3" json:"infoUrl,omitempty"`
	Closed           string `protobuf:"bytes,10,opt,name=closed,proto3" json:"closed,omitempty"`
	Limit            int64  `protobuf:"varint,11,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset           int64  `protobuf:"varint,12,opt,name=offset,proto3" json:"offset,omitempty"`
	CreatedStart     string `protobuf:"bytes,13,opt,name=createdStart,proto3" json:"createdStart,omitempty"`
	CreatedEnd       string `protobuf:"bytes,14,opt,name=createdEnd,proto3" json:"createdEnd,omitempty"`
}

func (m *GetTicketsRequest) Reset()         { *m = GetTicketsRequest{} }
func (m *GetTicketsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetTicketsRequest) ProtoMessage()    {}

func (m *GetTicketsRequest) GetLimit() int64 {
	if m != nil {
		return m.Limit
	}
	return 0
}

func (m *GetTicketsRequest) GetOffset() int64 {
	if m != nil {
		return m.Offset
	}
	return 0
}

func (m *GetTicketsRequest) GetType() string {
	if m != nil {
		return m.Type
	}
	return ""
}

func (m *GetTicketsRequest) GetSource() string {
	if m != nil {
		return m.Source
	}
	return ""
}

func (m *GetTicketsRequest) GetSourceDomainOrIp() string {
	if m != nil {
		return m.SourceDomainOrIp
	}
	return ""
}

func (m *GetTicketsRequest) GetTarget() string {
	if m != nil {
		return m.Target
	}
	return ""
}

func (m *GetTicketsRequest) GetProxy() string {
	if m != nil {
		return m.Proxy
	}
	return ""
}

func (m *GetTicketsRequest) GetIntentional() bool {
	if m != nil {
		return m.Intentional
	}
	return false
}

func (m *GetTicketsRequest) GetReporter() string {
	if m != nil {
		return m.Reporter
	}
	return ""
}

func (m *GetTicketsRequest) GetInfo() string {
	if m != nil {
		return m.Info
	}
	return ""
}

func (m *GetTicketsRequest) GetInfoUrl() string {
	if m != nil {
		return m.InfoUrl
	}
	return ""
}

func (m *GetTicketsRequest) GetClosed() string {
	if m != nil {
		return m.Closed
	}
	return ""
}

func (m *GetTicketsRequest) GetCreatedStart() string {
	if m != nil {
		return m.CreatedStart
	}
	return ""
}

func (m *GetTicketsRequest) GetCreatedEnd() string {
	if m != nil {
		return m.CreatedEnd
	}
	return ""
}

// Pagination mirrors the offset links computed from the backend's
// X-Total-Count header. The three optional offsets are omitted when the
// corresponding page does not exist.
type Pagination struct {
	Limit          int64  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	Total          int64  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	FirstOffset    int64  `protobuf:"varint,3,opt,name=firstOffset,proto3" json:"firstOffset"`
	PreviousOffset *int64 `protobuf:"varint,4,opt,name=previousOffset,proto3,oneof" json:"previousOffset,omitempty"`
	NextOffset     *int64 `protobuf:"varint,5,opt,name=nextOffset,proto3,oneof" json:"nextOffset,omitempty"`
	LastOffset     *int64 `protobuf:"varint,6,opt,name=lastOffset,proto3,oneof" json:"lastOffset,omitempty"`
}

func (m *Pagination) Reset()         { *m = Pagination{} }
func (m *Pagination) String() string { return fmt.Sprintf("%+v", *m) }
func (*Pagination) ProtoMessage()    {}

type GetTicketsResponse struct {
	TicketIds  []string    `protobuf:"bytes,1,rep,name=ticketIds,proto3" json:"ticketIds,omitempty"`
	Pagination *Pagination `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *GetTicketsResponse) Reset()         { *m = GetTicketsResponse{} }
func (m *GetTicketsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetTicketsResponse) ProtoMessage()    {}

func (m *GetTicketsResponse) GetTicketIds() []string {
	if m != nil {
		return m.TicketIds
	}
	return nil
}

func (m *GetTicketsResponse) GetPagination() *Pagination {
	if m != nil {
		return m.Pagination
	}
	return nil
}

type CheckDuplicateRequest struct {
	Source string `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
}

func (m *CheckDuplicateRequest) Reset()         { *m = CheckDuplicateRequest{} }
func (m *CheckDuplicateRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckDuplicateRequest) ProtoMessage()    {}

func (m *CheckDuplicateRequest) GetSource() string {
	if m != nil {
		return m.Source
	}
	return ""
}

// CheckDuplicateResponse carries the id of one open ticket already filed
// for the source, or empty when there is none.
type CheckDuplicateResponse struct {
	Duplicate string `protobuf:"bytes,1,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
}

func (m *CheckDuplicateResponse) Reset()         { *m = CheckDuplicateResponse{} }
func (m *CheckDuplicateResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*CheckDuplicateResponse) ProtoMessage()    {}

func (m *CheckDuplicateResponse) GetDuplicate() string {
	if m != nil {
		return m.Duplicate
	}
	return ""
}
