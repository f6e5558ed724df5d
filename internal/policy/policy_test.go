package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcu-infosec/phishstory/internal/storage"
)

type fakeStore struct {
	storage.IncidentStore

	incidents []map[string]interface{}
	findErr   error
	lastQuery map[string]interface{}
	lastLimit int64
	userGen   map[string]struct{}
}

func (f *fakeStore) FindIncidents(_ context.Context, query map[string]interface{}, limit int64) ([]map[string]interface{}, error) {
	f.lastQuery = query
	f.lastLimit = limit
	return f.incidents, f.findErr
}

func (f *fakeStore) UserGenDomains(context.Context) map[string]struct{} {
	if f.userGen == nil {
		return map[string]struct{}{}
	}
	return f.userGen
}

func openIncidents(n int) []map[string]interface{} {
	out := make([]map[string]interface{}, n)
	for i := range out {
		out[i] = map[string]interface{}{"phishstory_status": storage.StatusOpen}
	}
	return out
}

func TestIsSupportedType(t *testing.T) {
	assert.True(t, IsSupportedType("PHISHING"))
	assert.True(t, IsSupportedType("CONTENT"))
	assert.False(t, IsSupportedType("phishing"))
	assert.False(t, IsSupportedType("RANSOMWARE"))
	assert.False(t, IsSupportedType(""))
}

func TestIsSupportedClosure(t *testing.T) {
	assert.True(t, IsSupportedClosure("resolved"))
	assert.True(t, IsSupportedClosure("malware_scanner_notice"))
	assert.False(t, IsSupportedClosure("RESOLVED"))
	assert.False(t, IsSupportedClosure("just_because"))
}

func TestNormalizeSubdomain(t *testing.T) {
	stripped, ok := NormalizeSubdomain("www.abc.com")
	assert.True(t, ok)
	assert.Equal(t, "abc.com", stripped)

	same, ok := NormalizeSubdomain("abc.com")
	assert.False(t, ok)
	assert.Equal(t, "abc.com", same)

	// "www." alone is not stripped to the empty string.
	bare, ok := NormalizeSubdomain("www.")
	assert.False(t, ok)
	assert.Equal(t, "www.", bare)
}

func TestIsUserGenStaticAndLoaded(t *testing.T) {
	checker := NewChecker(&fakeStore{userGen: map[string]struct{}{"dynamic.example": {}}}, nil, nil)

	assert.True(t, checker.IsUserGen(context.Background(), "wixsite.com"))
	assert.True(t, checker.IsUserGen(context.Background(), "dynamic.example"))
	assert.False(t, checker.IsUserGen(context.Background(), "godaddysites.example"))
}

func TestDomainCapReachedAtLimit(t *testing.T) {
	store := &fakeStore{incidents: openIncidents(5)}
	checker := NewChecker(store, nil, nil)

	reached, err := checker.DomainCapReached(context.Background(), "PHISHING", "1234", "", "abc.com")
	require.NoError(t, err)
	assert.True(t, reached)
	assert.Equal(t, int64(5), store.lastLimit)
	assert.Equal(t, "abc.com", store.lastQuery["sourceDomainOrIp"])
	assert.Equal(t, "PHISHING", store.lastQuery["type"])
	assert.Equal(t, map[string]interface{}{"$ne": storage.StatusClosed}, store.lastQuery["phishstory_status"])
}

func TestDomainCapNotReachedBelowLimit(t *testing.T) {
	checker := NewChecker(&fakeStore{incidents: openIncidents(4)}, nil, nil)
	reached, err := checker.DomainCapReached(context.Background(), "PHISHING", "1234", "", "abc.com")
	require.NoError(t, err)
	assert.False(t, reached)
}

func TestDomainCapSubdomainWwwEquivalence(t *testing.T) {
	store := &fakeStore{incidents: openIncidents(5)}
	checker := NewChecker(store, nil, nil)

	reached, err := checker.DomainCapReached(context.Background(), "PHISHING", "1234", "www.sub.abc.com", "abc.com")
	require.NoError(t, err)
	assert.True(t, reached)
	assert.Equal(t, []map[string]interface{}{
		{"sourceSubDomain": "www.sub.abc.com"},
		{"sourceSubDomain": "sub.abc.com"},
	}, store.lastQuery["$or"])
	assert.NotContains(t, store.lastQuery, "sourceDomainOrIp")
}

func TestDomainCapSubdomainWithoutWww(t *testing.T) {
	store := &fakeStore{incidents: openIncidents(2)}
	checker := NewChecker(store, nil, nil)

	_, err := checker.DomainCapReached(context.Background(), "PHISHING", "1234", "sub.abc.com", "abc.com")
	require.NoError(t, err)
	assert.Equal(t, "sub.abc.com", store.lastQuery["sourceSubDomain"])
	assert.NotContains(t, store.lastQuery, "$or")
}

func TestDomainCapBypasses(t *testing.T) {
	store := &fakeStore{incidents: openIncidents(5)}
	checker := NewChecker(store, map[string]struct{}{"exempt-id": {}}, nil)

	// CONTENT complaints are never capped.
	reached, err := checker.DomainCapReached(context.Background(), "CONTENT", "1234", "", "abc.com")
	require.NoError(t, err)
	assert.False(t, reached)

	// User-generated platform hosts are never capped.
	reached, err = checker.DomainCapReached(context.Background(), "PHISHING", "1234", "", "wixsite.com")
	require.NoError(t, err)
	assert.False(t, reached)

	// Exempt reporters are never capped.
	reached, err = checker.DomainCapReached(context.Background(), "PHISHING", "exempt-id", "", "abc.com")
	require.NoError(t, err)
	assert.False(t, reached)

	// No subject at all means nothing to cap on.
	reached, err = checker.DomainCapReached(context.Background(), "PHISHING", "1234", "", "")
	require.NoError(t, err)
	assert.False(t, reached)
}

func TestTrustedAndExemptSets(t *testing.T) {
	checker := NewChecker(&fakeStore{},
		map[string]struct{}{"exempt-id": {}},
		map[string]struct{}{"trusted-id": {}})

	assert.True(t, checker.IsTrusted("trusted-id"))
	assert.False(t, checker.IsTrusted("exempt-id"))
	assert.True(t, checker.IsExempt("exempt-id"))
	assert.False(t, checker.IsExempt("trusted-id"))
}
