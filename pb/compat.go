package pb

import "google.golang.org/protobuf/protoadapt"

// The grpc proto codec adapts legacy messages through protoadapt; these
// assertions keep the hand-maintained types on that contract.
var (
	_ protoadapt.MessageV1 = (*CreateTicketRequest)(nil)
	_ protoadapt.MessageV1 = (*CreateTicketResponse)(nil)
	_ protoadapt.MessageV1 = (*UpdateTicketRequest)(nil)
	_ protoadapt.MessageV1 = (*UpdateTicketResponse)(nil)
	_ protoadapt.MessageV1 = (*GetTicketRequest)(nil)
	_ protoadapt.MessageV1 = (*GetTicketResponse)(nil)
	_ protoadapt.MessageV1 = (*GetTicketsRequest)(nil)
	_ protoadapt.MessageV1 = (*GetTicketsResponse)(nil)
	_ protoadapt.MessageV1 = (*Pagination)(nil)
	_ protoadapt.MessageV1 = (*CheckDuplicateRequest)(nil)
	_ protoadapt.MessageV1 = (*CheckDuplicateResponse)(nil)
)
