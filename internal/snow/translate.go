package snow

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TicketTable is the remote table holding Phishstory abuse reports.
const TicketTable = "u_dcu_ticket"

// canonicalToRemote rewrites the reporter-facing field names into the
// remote ticketing backend's column names. Keys absent from the table pass
// through untranslated.
var canonicalToRemote = map[string]string{
	"ticketId":         "u_number",
	"reporter":         "u_reporter",
	"source":           "u_source",
	"sourceDomainOrIp": "u_source_domain_or_ip",
	"closed":           "u_closed",
	"createdAt":        "sys_created_on",
	"closedAt":         "u_closed_date",
	"type":             "u_type",
	"target":           "u_target",
	"proxy":            "u_proxy_ip",
	"intentional":      "u_intentional",
	"info":             "u_info",
	"infoUrl":          "u_url_more_info",
	"limit":            "sysparm_limit",
	"offset":           "sysparm_offset",
	"createdStart":     "sys_created_on",
	"createdEnd":       "sys_created_on",
}

// ReporterModel maps the remote columns of a single ticket back to the
// canonical keys returned by GetTicket.
var ReporterModel = map[string]string{
	"u_number":              "ticketId",
	"u_reporter":            "reporter",
	"u_source":              "source",
	"u_source_domain_or_ip": "sourceDomainOrIp",
	"u_closed":              "closed",
	"sys_created_on":        "createdAt",
	"u_closed_date":         "closedAt",
	"u_type":                "type",
	"u_target":              "target",
	"u_proxy_ip":            "proxy",
}

// MiddlewareModel lists the incident-projection fields handed to the
// downstream middleware workers.
var MiddlewareModel = []string{
	"ticketId",
	"type",
	"source",
	"sourceDomainOrIp",
	"sourceSubDomain",
	"target",
	"proxy",
	"reporter",
}

// RemoteField returns the remote name for a canonical key, or the key
// itself when it has no translation.
func RemoteField(key string) string {
	if remote, ok := canonicalToRemote[key]; ok {
		return remote
	}
	return key
}

// CreatePostPayload rewrites the canonical keys of args into remote column
// names and serializes the result as the JSON body of a POST/PATCH.
func CreatePostPayload(args map[string]interface{}) ([]byte, error) {
	payload := make(map[string]interface{}, len(args))
	for key, val := range args {
		payload[RemoteField(key)] = val
	}
	return json.Marshal(payload)
}

// CreateURLParameters builds the query string for a GET against the ticket
// table. The operator is `=` except for the created-date range bounds,
// which use `>=` and `<=`. Keys are emitted in sorted order so the result
// is deterministic. An empty map yields the empty string.
func CreateURLParameters(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	query := make([]string, 0, len(params))
	for _, key := range keys {
		operator := "="
		switch key {
		case "createdStart":
			operator = ">="
		case "createdEnd":
			operator = "<="
		}
		query = append(query, RemoteField(key)+operator+params[key])
	}
	return "?" + strings.Join(query, "&")
}

// dateGenerate emits the backend's server-side date expression with
// percent-encoded quotes, exactly as the legacy consumers expect.
func dateGenerate(date, clock string) string {
	return fmt.Sprintf("javascript:gs.dateGenerate(%%27%s%%27,%%27%s%%27)", date, clock)
}

// CreateParamQuery builds the sysparm_query fragment constraining
// sys_created_on to the supplied date range. Results are always ordered by
// descending ticket number. Both bounds empty yields the empty string.
func CreateParamQuery(createdStart, createdEnd string) string {
	const (
		prefix  = "&sysparm_query=sys_created_on"
		orderBy = "^ORDERBYDESCu_number"
	)

	switch {
	case createdStart != "" && createdEnd != "":
		return prefix + "BETWEEN" + dateGenerate(createdStart, "00:00:00") + "@" + dateGenerate(createdEnd, "23:59:59") + orderBy
	case createdStart != "":
		return prefix + ">=" + dateGenerate(createdStart, "00:00:00") + orderBy
	case createdEnd != "":
		return prefix + "<=" + dateGenerate(createdEnd, "23:59:59") + orderBy
	default:
		return ""
	}
}

// Pagination carries the offset links for a paginated ticket search.
// Optional offsets are nil when the corresponding page does not exist.
type Pagination struct {
	Limit          int  `json:"limit"`
	Total          int  `json:"total"`
	FirstOffset    int  `json:"firstOffset"`
	PreviousOffset *int `json:"previousOffset,omitempty"`
	NextOffset     *int `json:"nextOffset,omitempty"`
	LastOffset     *int `json:"lastOffset,omitempty"`
}

// CreatePaginationLinks computes the pagination links for a result window.
// When total divides evenly by limit the last offset steps back one full
// page so the final link never names an empty page.
func CreatePaginationLinks(offset, limit, total int) Pagination {
	links := Pagination{Limit: limit, Total: total, FirstOffset: 0}

	next := offset + limit
	last := (total / limit) * limit
	if total%limit == 0 {
		last -= limit
	}
	if last < 0 {
		last = 0
	}

	if offset > 0 {
		previous := offset - limit
		if previous < 0 {
			previous = 0
		}
		links.PreviousOffset = &previous
	}
	if total > next {
		links.NextOffset = &next
	}
	if next < last || total <= next {
		links.LastOffset = &last
	}
	return links
}
