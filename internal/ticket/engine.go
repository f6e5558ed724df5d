// Package ticket implements the admission and lifecycle engine. Every RPC
// lands here; the engine composes the backend adapter, the incident store,
// the admission policy and the task publisher, and owns the ordering and
// partial-failure semantics between them.
package ticket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dcu-infosec/phishstory/internal/broker"
	"github.com/dcu-infosec/phishstory/internal/monitoring"
	"github.com/dcu-infosec/phishstory/internal/policy"
	"github.com/dcu-infosec/phishstory/internal/snow"
	"github.com/dcu-infosec/phishstory/internal/storage"
)

// Datastore is the transport capability the engine needs from the remote
// ticketing backend; satisfied by *snow.Client, injected at construction.
type Datastore interface {
	Get(ctx context.Context, path string) (*snow.Response, error)
	Post(ctx context.Context, path string, body []byte) (*snow.Response, error)
	Patch(ctx context.Context, path string, body []byte) (*snow.Response, error)
}

// Engine orchestrates CreateTicket, UpdateTicket, GetTicket, GetTickets
// and CheckDuplicate.
type Engine struct {
	datastore  Datastore
	store      storage.IncidentStore
	publisher  broker.TaskPublisher
	checker    *policy.Checker
	dbImpacted bool
	metrics    *monitoring.Metrics
	logger     *slog.Logger
}

// NewEngine wires the engine. dbImpacted enables degraded mode: local
// persistence and queue publishes are suppressed, updates are unavailable.
func NewEngine(ds Datastore, store storage.IncidentStore, pub broker.TaskPublisher,
	checker *policy.Checker, dbImpacted bool, metrics *monitoring.Metrics, logger *slog.Logger) *Engine {
	return &Engine{
		datastore:  ds,
		store:      store,
		publisher:  pub,
		checker:    checker,
		dbImpacted: dbImpacted,
		metrics:    metrics,
		logger:     logger,
	}
}

type listResult struct {
	Result []map[string]interface{} `json:"result"`
}

type itemResult struct {
	Result map[string]interface{} `json:"result"`
}

func getString(args map[string]interface{}, key string) string {
	s, _ := args[key].(string)
	return s
}

func (e *Engine) count(operation, outcome string) {
	if e.metrics != nil {
		e.metrics.Operations.WithLabelValues(operation, outcome).Inc()
	}
}

// CreateTicket admits a new abuse report: duplicate check, domain-cap
// check, remote create, local persist, acknowledgement append, middleware
// publish — in that order. Returns the new ticket id.
func (e *Engine) CreateTicket(ctx context.Context, args map[string]interface{}) (string, error) {
	source := getString(args, "source")
	abuseType := getString(args, "type")
	reporter := getString(args, "reporter")
	isTrusted := e.checker.IsTrusted(reporter)

	if !policy.IsSupportedType(abuseType) {
		e.count("create", "invalid")
		return "", status.Errorf(codes.InvalidArgument,
			"unable to create new ticket for %s: unsupported type %s", source, abuseType)
	}

	// reporterEmail must not be propagated to the remote backend.
	reporterEmail := getString(args, "reporterEmail")
	delete(args, "reporterEmail")

	// A reclassified ticket is excluded from its own duplicate check.
	var reclassifiedFrom string
	if metadata, ok := args["metadata"].(map[string]interface{}); ok {
		reclassifiedFrom, _ = metadata["reclassified_from"].(string)
	}

	isDuplicate, duplicateIDs, err := e.CheckDuplicate(ctx, source, reclassifiedFrom)
	if err != nil {
		e.count("create", "error")
		return "", err
	}
	if isDuplicate {
		if !e.dbImpacted {
			if reporterEmail != "" {
				if err := e.store.AddEmailAck(ctx, source, reporterEmail); err != nil {
					e.logger.Error("unable to record acknowledgement email", "source", source, "error", err)
					e.count("create", "error")
					return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
				}
			} else if isTrusted && len(duplicateIDs) > 0 {
				// A trusted reporter re-reporting an open ticket verifies it.
				for _, id := range duplicateIDs {
					if err := e.store.UpdateIncident(ctx, id, map[string]interface{}{"abuseVerified": true}); err != nil {
						e.logger.Error("unable to flag incident abuseVerified", "ticketId", id, "error", err)
						e.count("create", "error")
						return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
					}
				}
			}
		}
		e.count("create", "duplicate")
		return "", status.Errorf(codes.AlreadyExists,
			"unable to create new ticket for %s: there is an existing open ticket", source)
	}

	// Trusted reporters bypass the domain cap; in degraded mode the cap
	// cannot be evaluated and is skipped.
	if !e.dbImpacted && !isTrusted {
		reached, err := e.checker.DomainCapReached(ctx, abuseType, reporter,
			getString(args, "sourceSubDomain"), getString(args, "sourceDomainOrIp"))
		if err != nil {
			e.count("create", "error")
			return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
		}
		if reached {
			e.logger.Info("domain cap reached", "source", source)
			e.count("create", "capped")
			return "", status.Errorf(codes.ResourceExhausted,
				"unable to create new ticket for %s: domain cap reached", source)
		}
	}

	payload, err := snow.CreatePostPayload(args)
	if err != nil {
		e.count("create", "error")
		return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
	}
	resp, err := e.datastore.Post(ctx, "/"+snow.TicketTable, payload)
	if err != nil {
		e.logger.Error("error creating ticket", "source", source, "error", err)
		e.count("create", "error")
		return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
	}
	if resp.StatusCode != http.StatusCreated {
		e.logger.Error("unexpected status creating ticket", "source", source, "status", resp.StatusCode)
		e.count("create", "error")
		return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
	}

	var created itemResult
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		e.count("create", "error")
		return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
	}
	ticketID, _ := created.Result["u_number"].(string)
	if ticketID == "" {
		e.count("create", "error")
		return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
	}

	if e.metrics != nil {
		e.metrics.TicketsCreated.Inc()
	}

	if !e.dbImpacted {
		args["ticketId"] = ticketID

		projection := make(map[string]interface{}, len(snow.MiddlewareModel)+3)
		for _, key := range snow.MiddlewareModel {
			projection[key] = args[key]
		}
		if metadata, ok := args["metadata"].(map[string]interface{}); ok && len(metadata) > 0 {
			projection["metadata"] = metadata
		}
		// The info field marks evidence held in the ticketing backend.
		if getString(args, "info") != "" {
			projection["evidence"] = map[string]interface{}{"snow": true}
		}
		if isTrusted {
			projection["abuseVerified"] = true
		}

		if err := e.store.AddIncident(ctx, ticketID, projection); err != nil {
			e.logger.Error("unable to persist incident", "ticketId", ticketID, "error", err)
			e.count("create", "error")
			return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
		}
		if reporterEmail != "" {
			if err := e.store.AddEmailAck(ctx, source, reporterEmail); err != nil {
				e.logger.Error("unable to record acknowledgement email", "source", source, "error", err)
				e.count("create", "error")
				return "", status.Errorf(codes.Internal, "unable to create new ticket for %s", source)
			}
		}
		e.publisher.Process(ctx, projection)
	}

	e.count("create", "ok")
	return ticketID, nil
}

// UpdateTicket patches the remote ticket and, on closure, transitions the
// local incident to CLOSED and triggers the Hubstream sync.
func (e *Engine) UpdateTicket(ctx context.Context, args map[string]interface{}) error {
	if e.dbImpacted {
		e.count("update", "unavailable")
		return status.Error(codes.Unavailable, "this operation is currently unavailable")
	}

	ticketID := getString(args, "ticketId")
	closed, _ := args["closed"].(bool)
	closeReason := getString(args, "close_reason")

	if closed && closeReason == "" {
		e.count("update", "invalid")
		return status.Errorf(codes.InvalidArgument,
			"unable to update ticket %s: close_reason not provided", ticketID)
	}
	if closed && !policy.IsSupportedClosure(closeReason) {
		e.count("update", "invalid")
		return status.Errorf(codes.InvalidArgument,
			"unable to update ticket %s: invalid close reason provided %s", ticketID, closeReason)
	}

	sysID := e.getSysID(ctx, ticketID)
	if sysID == "" {
		e.count("update", "not_found")
		return status.Errorf(codes.NotFound, "unable to update ticket %s", ticketID)
	}

	payload, err := snow.CreatePostPayload(args)
	if err != nil {
		e.count("update", "error")
		return status.Errorf(codes.Internal, "unable to update ticket %s", ticketID)
	}
	resp, err := e.datastore.Patch(ctx, "/"+snow.TicketTable+"/"+sysID, payload)
	if err != nil {
		e.logger.Error("error updating ticket", "ticketId", ticketID, "error", err)
		e.count("update", "error")
		return status.Errorf(codes.Internal, "unable to update ticket %s", ticketID)
	}
	if resp.StatusCode != http.StatusOK {
		e.logger.Error("unexpected status updating ticket", "ticketId", ticketID, "status", resp.StatusCode)
		e.count("update", "error")
		return status.Errorf(codes.Internal, "unable to update ticket %s", ticketID)
	}

	if closed {
		e.logger.Info("closing ticket", "ticketId", ticketID, "close_reason", closeReason)
		if err := e.store.CloseIncident(ctx, ticketID, map[string]interface{}{"close_reason": closeReason}); err != nil {
			e.logger.Error("unable to close incident", "ticketId", ticketID, "error", err)
			e.count("update", "error")
			return status.Errorf(codes.Internal, "unable to update ticket %s", ticketID)
		}
	}

	e.publisher.HubstreamSync(ctx, ticketID)
	e.count("update", "ok")
	return nil
}

// GetTickets searches the remote table and returns matching ticket ids,
// with pagination links when the backend reports a total count.
func (e *Engine) GetTickets(ctx context.Context, args map[string]string, offset, limit int) ([]string, *snow.Pagination, error) {
	// Only the ticket number is needed from the backend.
	args["sysparm_fields"] = "u_number"

	createdStart := args["createdStart"]
	createdEnd := args["createdEnd"]
	delete(args, "createdStart")
	delete(args, "createdEnd")

	paramQuery := snow.CreateParamQuery(createdStart, createdEnd)
	urlArgs := snow.CreateURLParameters(args) + paramQuery

	resp, err := e.datastore.Get(ctx, "/"+snow.TicketTable+urlArgs)
	if err != nil {
		e.logger.Error("error retrieving tickets", "error", err)
		e.count("search", "error")
		return nil, nil, status.Error(codes.Internal, "unable to retrieve tickets matching the provided filters")
	}
	if resp.StatusCode != http.StatusOK {
		e.logger.Error("unexpected status retrieving tickets", "status", resp.StatusCode)
		e.count("search", "error")
		return nil, nil, status.Error(codes.Internal, "unable to retrieve tickets matching the provided filters")
	}

	var data listResult
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		e.count("search", "error")
		return nil, nil, status.Error(codes.Internal, "unable to retrieve tickets matching the provided filters")
	}
	if len(data.Result) == 0 {
		e.count("search", "not_found")
		return nil, nil, status.Error(codes.NotFound, "no tickets match the provided filters")
	}

	ticketIDs := make([]string, 0, len(data.Result))
	for _, row := range data.Result {
		if id, ok := row["u_number"].(string); ok {
			ticketIDs = append(ticketIDs, id)
		}
	}

	var pagination *snow.Pagination
	if totalHeader := resp.Header.Get("X-Total-Count"); totalHeader != "" && limit > 0 {
		if total, err := strconv.Atoi(totalHeader); err == nil {
			links := snow.CreatePaginationLinks(offset, limit, total)
			pagination = &links
		}
	}

	e.count("search", "ok")
	return ticketIDs, pagination, nil
}

// GetTicket retrieves one ticket and projects it into the reporter-facing
// model with canonical field names.
func (e *Engine) GetTicket(ctx context.Context, ticketID, reporter string) (map[string]interface{}, error) {
	query := "/" + snow.TicketTable + "?sysparam_limit=1&u_number=" + ticketID
	if reporter != "" {
		query += "&u_reporter=" + reporter
	}

	resp, err := e.datastore.Get(ctx, query)
	if err != nil {
		e.logger.Error("error retrieving ticket", "ticketId", ticketID, "error", err)
		e.count("get", "error")
		return nil, status.Errorf(codes.Internal, "unable to retrieve ticket information for %s", ticketID)
	}
	if resp.StatusCode != http.StatusOK {
		e.count("get", "not_found")
		return nil, status.Errorf(codes.NotFound, "unable to retrieve ticket information for %s", ticketID)
	}

	var data listResult
	if err := json.Unmarshal(resp.Body, &data); err != nil || len(data.Result) == 0 {
		e.count("get", "not_found")
		return nil, status.Errorf(codes.NotFound, "unable to retrieve ticket information for %s", ticketID)
	}

	row := data.Result[0]

	ticket := make(map[string]interface{}, len(snow.ReporterModel))
	for remote, canonical := range snow.ReporterModel {
		ticket[canonical] = row[remote]
	}
	// The backend stores closure as the strings "true"/"false".
	closedRaw, _ := row["u_closed"].(string)
	ticket["closed"] = strings.Contains(strings.ToLower(closedRaw), "true")

	e.count("get", "ok")
	return ticket, nil
}

// CheckDuplicate reports whether an open ticket already exists for the
// source, excluding at most one ticket id (the reclassify workflow).
func (e *Engine) CheckDuplicate(ctx context.Context, source, excluded string) (bool, []string, error) {
	if source == "" {
		e.count("duplicate", "invalid")
		return false, nil, status.Error(codes.InvalidArgument,
			"invalid source provided, failed to check for duplicate ticket")
	}

	params := map[string]string{
		"closed": "false",
		"source": url.QueryEscape(source),
	}
	resp, err := e.datastore.Get(ctx, "/"+snow.TicketTable+snow.CreateURLParameters(params))
	if err != nil {
		e.logger.Error("unable to determine duplicate", "source", source, "error", err)
		e.count("duplicate", "error")
		return false, nil, status.Error(codes.Internal, "unable to complete your request at this time")
	}

	var data listResult
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		e.count("duplicate", "error")
		return false, nil, status.Error(codes.Internal, "unable to complete your request at this time")
	}

	var duplicateIDs []string
	for _, row := range data.Result {
		if id, ok := row["u_number"].(string); ok && id != excluded {
			duplicateIDs = append(duplicateIDs, id)
		}
	}

	e.count("duplicate", "ok")
	return len(duplicateIDs) > 0, duplicateIDs, nil
}

// getSysID resolves the backend's internal row id for a ticket number.
// Empty string when the ticket cannot be resolved.
func (e *Engine) getSysID(ctx context.Context, ticketID string) string {
	resp, err := e.datastore.Get(ctx, "/"+snow.TicketTable+"?u_number="+ticketID)
	if err != nil {
		e.logger.Error("unable to retrieve sys_id", "ticketId", ticketID, "error", err)
		return ""
	}
	if resp.StatusCode != http.StatusOK {
		e.logger.Error("unexpected status retrieving sys_id", "ticketId", ticketID, "status", resp.StatusCode)
		return ""
	}

	var data listResult
	if err := json.Unmarshal(resp.Body, &data); err != nil || len(data.Result) == 0 {
		e.logger.Error("no records found", "ticketId", ticketID)
		return ""
	}
	sysID, _ := data.Result[0]["sys_id"].(string)
	return sysID
}
