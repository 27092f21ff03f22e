package crm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"taxsite/internal/config"
	"taxsite/internal/database"
	"taxsite/internal/domain/lead"
)

type captured struct {
	method string
	path   string
	query  string
	auth   string
	body   []byte
}

func recordingServer(t *testing.T, status int, reply string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.auth = r.Header.Get("Authorization")
		got.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func sampleContact() Contact {
	score := 77
	return Contact{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		Phone:        "555-0100",
		Company:      "Doe LLC",
		Notes:        "call after 5",
		LeadCategory: "premium",
		ICPScore:     &score,
		Selections:   json.RawMessage(`{"filingStatus":"marriedJoint"}`),
		Attachments:  []Attachment{{Name: "w2.pdf", Size: 12, Type: "application/pdf"}},
	}
}

func TestHubSpot_CreateContact(t *testing.T) {
	srv, got := recordingServer(t, http.StatusCreated,
		`{"id":"901","links":{"self":"https://app.hubspot.com/contacts/901"}}`)

	res, err := NewHubSpot("tok", srv.URL+"/", srv.Client()).CreateContact(context.Background(), sampleContact())
	require.NoError(t, err)
	assert.Equal(t, Result{ID: "901", URL: "https://app.hubspot.com/contacts/901"}, res)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/crm/v3/objects/contacts", got.path)
	assert.Equal(t, "Bearer tok", got.auth)

	props := gjson.GetBytes(got.body, "properties")
	assert.Equal(t, "Jane", props.Get("firstname").String())
	assert.Equal(t, "Doe", props.Get("lastname").String())
	assert.Equal(t, "jane@example.com", props.Get("email").String())
	assert.Equal(t, "Doe LLC", props.Get("company").String())
	assert.Equal(t, "lead", props.Get("lifecyclestage").String())

	msg := gjson.Parse(props.Get("message").String())
	assert.Equal(t, "premium", msg.Get("leadCategory").String())
	assert.Equal(t, int64(77), msg.Get("icpScore").Int())
	assert.Equal(t, "marriedJoint", msg.Get("selections.filingStatus").String())
	assert.Equal(t, "w2.pdf", msg.Get("attachments.0.name").String())
}

func TestHubSpot_OmitsEmptyProperties(t *testing.T) {
	srv, got := recordingServer(t, http.StatusOK, `{"id":"1"}`)

	_, err := NewHubSpot("tok", srv.URL, srv.Client()).CreateContact(context.Background(), Contact{Email: "a@b.c"})
	require.NoError(t, err)

	props := gjson.GetBytes(got.body, "properties")
	assert.False(t, props.Get("firstname").Exists())
	assert.False(t, props.Get("phone").Exists())
	assert.Equal(t, "a@b.c", props.Get("email").String())
}

func TestHubSpot_Non2xx(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusConflict, `{"message":"Contact already exists"}`)

	_, err := NewHubSpot("tok", srv.URL, srv.Client()).CreateContact(context.Background(), sampleContact())
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, http.StatusConflict, perr.StatusCode)
	assert.Contains(t, perr.Body, "already exists")
	assert.Contains(t, err.Error(), "HubSpot error 409")
}

func TestPipedrive_CreateContact(t *testing.T) {
	srv, got := recordingServer(t, http.StatusCreated, `{"success":true,"data":{"id":4242}}`)

	p := NewPipedrive("secret token", srv.URL, srv.Client())
	p.now = func() time.Time { return time.Date(2025, 2, 3, 4, 5, 6, 7_000_000, time.UTC) }

	res, err := p.CreateContact(context.Background(), sampleContact())
	require.NoError(t, err)
	assert.Equal(t, Result{ID: "4242"}, res)

	assert.Equal(t, "/persons", got.path)
	assert.Equal(t, "api_token=secret+token", got.query)

	body := gjson.ParseBytes(got.body)
	assert.Equal(t, "Jane Doe", body.Get("name").String())
	assert.Equal(t, int64(3), body.Get("visible_to").Int())
	assert.Equal(t, "2025-02-03T04:05:06.007Z", body.Get("add_time").String())

	note := gjson.Parse(body.Get("note").String())
	assert.Equal(t, "Doe LLC", note.Get("company").String())
	assert.Equal(t, "call after 5", note.Get("notes").String())
}

func TestPipedrive_NameFallsBackToEmail(t *testing.T) {
	srv, got := recordingServer(t, http.StatusOK, `{"data":null}`)

	res, err := NewPipedrive("t", srv.URL, srv.Client()).CreateContact(context.Background(), Contact{Email: "x@y.z"})
	require.NoError(t, err)
	assert.Empty(t, res.ID)
	assert.Equal(t, "x@y.z", gjson.GetBytes(got.body, "name").String())
}

func TestPipedrive_Non2xx(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusUnauthorized, `{"error":"unauthorized"}`)

	_, err := NewPipedrive("t", srv.URL, srv.Client()).CreateContact(context.Background(), sampleContact())
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Pipedrive", perr.Provider)
	assert.Equal(t, http.StatusUnauthorized, perr.StatusCode)
}

func TestPipedrive_TransportErrorHidesTokenAndKeepsCause(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusCreated, `{"data":{"id":1}}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPipedrive("secret token", srv.URL, srv.Client()).CreateContact(ctx, sampleContact())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), url.QueryEscape("secret token"))
	assert.Contains(t, err.Error(), "REDACTED")
	assert.ErrorIs(t, err, context.Canceled)
	var urlErr *url.Error
	assert.ErrorAs(t, err, &urlErr)
}

func TestLocal_SynthesisesIDAndPersists(t *testing.T) {
	db, err := database.Connect("file:crm_local?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, lead.Migrate(db))
	repo := lead.NewRepository(db)

	l := NewLocal(repo, zap.NewNop())
	l.now = func() time.Time { return time.UnixMilli(1700000000123) }

	res, err := l.CreateContact(context.Background(), sampleContact())
	require.NoError(t, err)
	assert.Equal(t, "local-1700000000123", res.ID)
	assert.Empty(t, res.URL)

	saved, err := repo.GetByContactID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", saved.Email)
	assert.Equal(t, "premium", saved.LeadCategory)
	require.NotNil(t, saved.ICPScore)
	assert.Equal(t, 77, *saved.ICPScore)
	assert.JSONEq(t, `[{"name":"w2.pdf","size":12,"type":"application/pdf"}]`, saved.Attachments)
}

func TestLocal_SameMillisecondKeepsBothLeads(t *testing.T) {
	db, err := database.Connect("file:crm_local_same_ms?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, lead.Migrate(db))
	repo := lead.NewRepository(db)

	l := NewLocal(repo, zap.NewNop())
	l.now = func() time.Time { return time.UnixMilli(1700000000000) }

	first, err := l.CreateContact(context.Background(), Contact{Email: "a@example.com"})
	require.NoError(t, err)
	second, err := l.CreateContact(context.Background(), Contact{Email: "b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "local-1700000000000", first.ID)
	assert.Equal(t, first.ID, second.ID)

	leads, err := repo.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	emails := []string{leads[0].Email, leads[1].Email}
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, emails)
	assert.NotEqual(t, leads[0].Key, leads[1].Key)
}

func TestLocal_WithoutRepository(t *testing.T) {
	res, err := NewLocal(nil, nil).CreateContact(context.Background(), Contact{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Regexp(t, `^local-\d+$`, res.ID)
}

func TestSelect(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.CRMConfig
		want string
	}{
		{name: "nothing configured", cfg: config.CRMConfig{}, want: ProviderLocal},
		{name: "hubspot token", cfg: config.CRMConfig{HubSpotToken: "h"}, want: ProviderHubSpot},
		{name: "pipedrive token", cfg: config.CRMConfig{PipedriveToken: "p"}, want: ProviderPipedrive},
		{name: "hubspot wins", cfg: config.CRMConfig{HubSpotToken: "h", PipedriveToken: "p"}, want: ProviderHubSpot},
		{name: "override pipedrive", cfg: config.CRMConfig{Provider: "pipedrive", HubSpotToken: "h", PipedriveToken: "p"}, want: ProviderPipedrive},
		{name: "override local", cfg: config.CRMConfig{Provider: "local", HubSpotToken: "h"}, want: ProviderLocal},
		{name: "override without token", cfg: config.CRMConfig{Provider: "hubspot"}, want: ProviderLocal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Select(tc.cfg, nil, nil, nil)
			assert.Equal(t, tc.want, p.Name())
		})
	}
}

func TestReportedProvider(t *testing.T) {
	assert.Equal(t, "", ReportedProvider(config.CRMConfig{}))
	assert.Equal(t, "pipedrive", ReportedProvider(config.CRMConfig{PipedriveToken: "p"}))
	assert.Equal(t, "local", ReportedProvider(config.CRMConfig{Provider: "local", HubSpotToken: "h"}))
}
