// Package api exposes the ticket engine over gRPC, plus a small HTTP
// sidecar for health and metrics.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dcu-infosec/phishstory/internal/ticket"
	"github.com/dcu-infosec/phishstory/pb"
)

// Server implements the Phishstory gRPC service on top of the engine.
type Server struct {
	pb.UnimplementedPhishstoryServer

	engine *ticket.Engine
	logger *slog.Logger
}

// NewServer wires the gRPC servicer.
func NewServer(engine *ticket.Engine, logger *slog.Logger) *Server {
	return &Server{engine: engine, logger: logger}
}

// CreateTicket admits a new abuse report and returns its ticket number.
func (s *Server) CreateTicket(ctx context.Context, req *pb.CreateTicketRequest) (*pb.CreateTicketResponse, error) {
	s.logger.Info("CreateTicket", "source", req.GetSource(), "type", req.GetType(), "reporter", req.GetReporter())

	args := map[string]interface{}{
		"type":     req.GetType(),
		"source":   req.GetSource(),
		"reporter": req.GetReporter(),
	}
	setIfPresent(args, "sourceDomainOrIp", req.GetSourceDomainOrIp())
	setIfPresent(args, "sourceSubDomain", req.GetSourceSubDomain())
	setIfPresent(args, "target", req.GetTarget())
	setIfPresent(args, "proxy", req.GetProxy())
	setIfPresent(args, "reporterEmail", req.GetReporterEmail())
	setIfPresent(args, "info", req.GetInfo())
	setIfPresent(args, "infoUrl", req.GetInfoUrl())
	if req.GetIntentional() {
		args["intentional"] = true
	}
	if len(req.GetMetadata()) > 0 {
		metadata := make(map[string]interface{}, len(req.GetMetadata()))
		for k, v := range req.GetMetadata() {
			metadata[k] = v
		}
		args["metadata"] = metadata
	}

	ticketID, err := s.engine.CreateTicket(ctx, args)
	if err != nil {
		return nil, err
	}
	return &pb.CreateTicketResponse{TicketId: ticketID}, nil
}

// UpdateTicket patches an existing ticket, closing it when requested.
func (s *Server) UpdateTicket(ctx context.Context, req *pb.UpdateTicketRequest) (*pb.UpdateTicketResponse, error) {
	s.logger.Info("UpdateTicket", "ticketId", req.GetTicketId(), "closed", req.GetClosed())

	args := map[string]interface{}{
		"ticketId": req.GetTicketId(),
		"closed":   req.GetClosed(),
	}
	setIfPresent(args, "close_reason", req.GetCloseReason())
	setIfPresent(args, "target", req.GetTarget())
	setIfPresent(args, "type", req.GetType())

	if err := s.engine.UpdateTicket(ctx, args); err != nil {
		return nil, err
	}
	return &pb.UpdateTicketResponse{}, nil
}

// GetTicket returns the reporter-facing view of one ticket.
func (s *Server) GetTicket(ctx context.Context, req *pb.GetTicketRequest) (*pb.GetTicketResponse, error) {
	s.logger.Info("GetTicket", "ticketId", req.GetTicketId())

	data, err := s.engine.GetTicket(ctx, req.GetTicketId(), req.GetReporter())
	if err != nil {
		return nil, err
	}

	resp := &pb.GetTicketResponse{
		TicketId:         asString(data["ticketId"]),
		Type:             asString(data["type"]),
		Source:           asString(data["source"]),
		SourceDomainOrIp: asString(data["sourceDomainOrIp"]),
		Target:           asString(data["target"]),
		Proxy:            asString(data["proxy"]),
		Reporter:         asString(data["reporter"]),
		CreatedAt:        asString(data["createdAt"]),
		ClosedAt:         asString(data["closedAt"]),
	}
	if closed, ok := data["closed"].(bool); ok {
		resp.Closed = closed
	}
	return resp, nil
}

// GetTickets searches tickets by filter and returns matching ids with
// pagination links.
func (s *Server) GetTickets(ctx context.Context, req *pb.GetTicketsRequest) (*pb.GetTicketsResponse, error) {
	s.logger.Info("GetTickets", "reporter", req.GetReporter(), "offset", req.GetOffset(), "limit", req.GetLimit())

	args := map[string]string{}
	setStrIfPresent(args, "type", req.GetType())
	setStrIfPresent(args, "source", req.GetSource())
	setStrIfPresent(args, "sourceDomainOrIp", req.GetSourceDomainOrIp())
	setStrIfPresent(args, "target", req.GetTarget())
	setStrIfPresent(args, "proxy", req.GetProxy())
	setStrIfPresent(args, "reporter", req.GetReporter())
	setStrIfPresent(args, "closed", req.GetClosed())
	if req.GetIntentional() {
		args["intentional"] = "true"
	}
	setStrIfPresent(args, "createdStart", req.GetCreatedStart())
	setStrIfPresent(args, "createdEnd", req.GetCreatedEnd())
	setStrIfPresent(args, "info", req.GetInfo())
	setStrIfPresent(args, "infoUrl", req.GetInfoUrl())

	offset := int(req.GetOffset())
	limit := int(req.GetLimit())
	if limit > 0 {
		args["sysparm_offset"] = strconv.Itoa(offset)
		args["sysparm_limit"] = strconv.Itoa(limit)
	}

	ids, pagination, err := s.engine.GetTickets(ctx, args, offset, limit)
	if err != nil {
		return nil, err
	}

	resp := &pb.GetTicketsResponse{TicketIds: ids}
	if pagination != nil {
		p := &pb.Pagination{
			Limit:       int64(pagination.Limit),
			Total:       int64(pagination.Total),
			FirstOffset: int64(pagination.FirstOffset),
		}
		if pagination.PreviousOffset != nil {
			v := int64(*pagination.PreviousOffset)
			p.PreviousOffset = &v
		}
		if pagination.NextOffset != nil {
			v := int64(*pagination.NextOffset)
			p.NextOffset = &v
		}
		if pagination.LastOffset != nil {
			v := int64(*pagination.LastOffset)
			p.LastOffset = &v
		}
		resp.Pagination = p
	}
	return resp, nil
}

// CheckDuplicate reports whether an open ticket already exists for the
// source URL. The response carries one duplicate ticket id, or empty.
func (s *Server) CheckDuplicate(ctx context.Context, req *pb.CheckDuplicateRequest) (*pb.CheckDuplicateResponse, error) {
	s.logger.Info("CheckDuplicate", "source", req.GetSource())

	isDuplicate, duplicateIDs, err := s.engine.CheckDuplicate(ctx, req.GetSource(), "")
	if err != nil {
		return nil, err
	}
	if isDuplicate && len(duplicateIDs) > 0 {
		return &pb.CheckDuplicateResponse{Duplicate: duplicateIDs[0]}, nil
	}
	return &pb.CheckDuplicateResponse{}, nil
}

func setIfPresent(args map[string]interface{}, key, value string) {
	if value != "" {
		args[key] = value
	}
}

func setStrIfPresent(args map[string]string, key, value string) {
	if value != "" {
		args[key] = value
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// NewHealthRouter serves liveness and Prometheus metrics on the HTTP
// sidecar.
func NewHealthRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return router
}
