package snow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateParamQueryStartOnly(t *testing.T) {
	got := CreateParamQuery("2018-12-25", "")
	want := "&sysparm_query=sys_created_on>=javascript:gs.dateGenerate(%272018-12-25%27,%2700:00:00%27)^ORDERBYDESCu_number"
	assert.Equal(t, want, got)
}

func TestCreateParamQueryEndOnly(t *testing.T) {
	got := CreateParamQuery("", "2019-01-01")
	want := "&sysparm_query=sys_created_on<=javascript:gs.dateGenerate(%272019-01-01%27,%2723:59:59%27)^ORDERBYDESCu_number"
	assert.Equal(t, want, got)
}

func TestCreateParamQueryBothBounds(t *testing.T) {
	got := CreateParamQuery("2018-12-25", "2019-01-01")
	want := "&sysparm_query=sys_created_onBETWEEN" +
		"javascript:gs.dateGenerate(%272018-12-25%27,%2700:00:00%27)@" +
		"javascript:gs.dateGenerate(%272019-01-01%27,%2723:59:59%27)^ORDERBYDESCu_number"
	assert.Equal(t, want, got)
}

func TestCreateParamQueryEmpty(t *testing.T) {
	assert.Equal(t, "", CreateParamQuery("", ""))
}

func TestCreateURLParametersTranslatesAndSorts(t *testing.T) {
	got := CreateURLParameters(map[string]string{
		"closed":   "false",
		"reporter": "1234",
		"source":   "https://bad.example.com",
	})
	assert.Equal(t, "?u_closed=false&u_reporter=1234&u_source=https://bad.example.com", got)
}

func TestCreateURLParametersUnknownKeyPassesThrough(t *testing.T) {
	got := CreateURLParameters(map[string]string{"sysparm_fields": "u_number"})
	assert.Equal(t, "?sysparm_fields=u_number", got)
}

func TestCreateURLParametersEmpty(t *testing.T) {
	assert.Equal(t, "", CreateURLParameters(nil))
	assert.Equal(t, "", CreateURLParameters(map[string]string{}))
}

func TestCreatePostPayloadTranslatesKeys(t *testing.T) {
	body, err := CreatePostPayload(map[string]interface{}{
		"type":     "PHISHING",
		"source":   "https://bad.example.com/x",
		"reporter": "1234",
		"custom":   "untouched",
	})
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "PHISHING", payload["u_type"])
	assert.Equal(t, "https://bad.example.com/x", payload["u_source"])
	assert.Equal(t, "1234", payload["u_reporter"])
	assert.Equal(t, "untouched", payload["custom"])
	assert.NotContains(t, payload, "type")
}

func TestRemoteField(t *testing.T) {
	assert.Equal(t, "u_number", RemoteField("ticketId"))
	assert.Equal(t, "sys_created_on", RemoteField("createdAt"))
	assert.Equal(t, "unmapped", RemoteField("unmapped"))
}

func TestCreatePaginationLinksSinglePage(t *testing.T) {
	links := CreatePaginationLinks(0, 10, 2)
	assert.Equal(t, 10, links.Limit)
	assert.Equal(t, 2, links.Total)
	assert.Equal(t, 0, links.FirstOffset)
	assert.Nil(t, links.PreviousOffset)
	assert.Nil(t, links.NextOffset)
	require.NotNil(t, links.LastOffset)
	assert.Equal(t, 0, *links.LastOffset)
}

func TestCreatePaginationLinksPartialLastPage(t *testing.T) {
	links := CreatePaginationLinks(0, 10, 25)
	assert.Nil(t, links.PreviousOffset)
	require.NotNil(t, links.NextOffset)
	assert.Equal(t, 10, *links.NextOffset)
	require.NotNil(t, links.LastOffset)
	assert.Equal(t, 20, *links.LastOffset)
}

func TestCreatePaginationLinksEvenTotal(t *testing.T) {
	links := CreatePaginationLinks(0, 10, 30)
	require.NotNil(t, links.NextOffset)
	assert.Equal(t, 10, *links.NextOffset)
	require.NotNil(t, links.LastOffset)
	assert.Equal(t, 20, *links.LastOffset)
}

func TestCreatePaginationLinksMiddleWindow(t *testing.T) {
	links := CreatePaginationLinks(10, 10, 35)
	require.NotNil(t, links.PreviousOffset)
	assert.Equal(t, 0, *links.PreviousOffset)
	require.NotNil(t, links.NextOffset)
	assert.Equal(t, 20, *links.NextOffset)
	require.NotNil(t, links.LastOffset)
	assert.Equal(t, 30, *links.LastOffset)
}

func TestCreatePaginationLinksFinalWindow(t *testing.T) {
	links := CreatePaginationLinks(20, 10, 25)
	require.NotNil(t, links.PreviousOffset)
	assert.Equal(t, 10, *links.PreviousOffset)
	assert.Nil(t, links.NextOffset)
	require.NotNil(t, links.LastOffset)
	assert.Equal(t, 20, *links.LastOffset)
}
