// Package policy holds the admission-control rules applied before a new
// abuse report is admitted: supported types and close reasons, reporter
// classes, the user-generated-domain exemption, and the per-domain cap.
package policy

import (
	"context"
	"fmt"
	"strings"

	"github.com/dcu-infosec/phishstory/internal/storage"
)

// DomainCap is the maximum number of un-closed incidents allowed per
// (type, subdomain-or-domain) bucket.
const DomainCap = 5

// SupportedTypes are the abuse report types the service accepts.
var SupportedTypes = map[string]struct{}{
	"PHISHING":      {},
	"MALWARE":       {},
	"SPAM":          {},
	"NETWORK_ABUSE": {},
	"A_RECORD":      {},
	"FRAUD_WIRE":    {},
	"IP_BLOCK":      {},
	"CONTENT":       {},
}

// SupportedClosures are the accepted ticket close reasons.
var SupportedClosures = map[string]struct{}{
	"unresolvable":            {},
	"unworkable":              {},
	"resolved":                {},
	"parked":                  {},
	"false_positive":          {},
	"suspended":               {},
	"intentionally_malicious": {},
	"shared_ip":               {},
	"not_hosted":              {},
	"content_removed":         {},
	"repeat_offender":         {},
	"extensive_compromise":    {},
	"email_sent_to_emea":      {},
	"transferred":             {},
	"shopper_compromise":      {},
	"malware_scanner_notice":  {},
}

// userGeneratedDomains are platform hosts where many unrelated subjects
// coexist; always exempt from the per-domain cap, independent of the
// blocklist-loaded set.
var userGeneratedDomains = map[string]struct{}{
	"joomla.com":               {},
	"wix.com":                  {},
	"wixsite.com":              {},
	"htmlcomponentservice.com": {},
	"sendgrid.net":             {},
	"mediafire.com":            {},
	"16mb.com":                 {},
	"gridserver.com":           {},
	"000webhost.com":           {},
	"filesusr.com":             {},
	"usrfiles.com":             {},
	"site123.me":               {},
	"onelink.me":               {},
	"i-m.mx":                   {},
	"tonohost.com":             {},
	"backblaze.com":            {},
	"im-creator.com":           {},
	"quizzory.com":             {},
	"builderall.com":           {},
	"formtools.com":            {},
	"bitly.com":                {},
	"multiscreensite.com":      {},
	"sunnylandingpages.com":    {},
	"surveyheart.com":          {},
	"editorx.io":               {},
	"forms.app":                {},
	"joomag.com":               {},
	"company.site":             {},
}

// IsSupportedType reports whether t is an accepted abuse type.
func IsSupportedType(t string) bool {
	_, ok := SupportedTypes[t]
	return ok
}

// IsSupportedClosure reports whether r is an accepted close reason.
func IsSupportedClosure(r string) bool {
	_, ok := SupportedClosures[r]
	return ok
}

// NormalizeSubdomain strips a leading "www." so www.abc.com and abc.com
// collapse into the same cap bucket. The second return reports whether the
// stripped form differs.
func NormalizeSubdomain(s string) (string, bool) {
	if strings.HasPrefix(s, "www.") && len(s) > 4 {
		return s[4:], true
	}
	return s, false
}

// Checker evaluates the admission rules against the configured reporter
// sets and the incident store.
type Checker struct {
	store   storage.IncidentStore
	exempt  map[string]struct{}
	trusted map[string]struct{}
}

// NewChecker wires a checker with the exempt/trusted reporter id sets.
func NewChecker(store storage.IncidentStore, exempt, trusted map[string]struct{}) *Checker {
	return &Checker{store: store, exempt: exempt, trusted: trusted}
}

// IsTrusted reports membership in the trusted reporter set.
func (c *Checker) IsTrusted(reporterID string) bool {
	_, ok := c.trusted[reporterID]
	return ok
}

// IsExempt reports membership in the exempt reporter set.
func (c *Checker) IsExempt(reporterID string) bool {
	_, ok := c.exempt[reporterID]
	return ok
}

// IsUserGen reports whether the domain belongs to the fixed user-generated
// set or to the blocklist-loaded user_gen category.
func (c *Checker) IsUserGen(ctx context.Context, domain string) bool {
	if _, ok := userGeneratedDomains[domain]; ok {
		return true
	}
	_, ok := c.store.UserGenDomains(ctx)[domain]
	return ok
}

// DomainCapReached reports whether admitting another report of abuseType
// against the subdomain (or, failing that, the domain) would exceed the
// cap. Content complaints, user-generated domains and exempt reporters are
// never capped.
func (c *Checker) DomainCapReached(ctx context.Context, abuseType, reporterID, subdomain, domain string) (bool, error) {
	if abuseType == "CONTENT" || c.IsUserGen(ctx, domain) || c.IsExempt(reporterID) {
		return false, nil
	}
	if subdomain == "" && domain == "" {
		return false, nil
	}

	query := map[string]interface{}{
		"phishstory_status": map[string]interface{}{"$ne": storage.StatusClosed},
		"type":              abuseType,
	}

	// Cap per subdomain when one is present, treating the www form and
	// the bare form as the same bucket.
	if subdomain != "" {
		if stripped, ok := NormalizeSubdomain(subdomain); ok {
			query["$or"] = []map[string]interface{}{
				{"sourceSubDomain": subdomain},
				{"sourceSubDomain": stripped},
			}
		} else {
			query["sourceSubDomain"] = subdomain
		}
	} else {
		query["sourceDomainOrIp"] = domain
	}

	incidents, err := c.store.FindIncidents(ctx, query, DomainCap)
	if err != nil {
		return false, fmt.Errorf("policy: domain cap query: %w", err)
	}
	return len(incidents) == DomainCap, nil
}
