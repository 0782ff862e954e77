package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleUsers = `[
  {"id": 1, "name": "Leanne Graham", "username": "Bret",
   "address": {"city": "Gwenborough", "geo": {"lat": "-37.3159"}}},
  {"id": "u-2", "name": "Ervin Howell", "email": "Shanna@melissa.tv"}
]`

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := ParseEndpoint("")
	if err != nil {
		t.Fatalf("ParseEndpoint returned error: %v", err)
	}
	if u.String() != DefaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", u.String(), DefaultEndpoint)
	}

	u, err = ParseEndpoint("  example.com:8080/users?limit=10#frag ")
	if err != nil {
		t.Fatalf("ParseEndpoint returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:8080" || u.Path != "/users" {
		t.Fatalf("endpoint = %q, want http://example.com:8080/users", u.String())
	}
	if u.RawQuery != "limit=10" || u.Fragment != "" {
		t.Fatalf("endpoint = %q, want query kept and fragment dropped", u.String())
	}
}

func TestParseEndpoint_RejectsUnsupportedScheme(t *testing.T) {
	if _, err := ParseEndpoint("ftp://example.com/users"); err == nil {
		t.Fatalf("ParseEndpoint returned nil error, want unsupported scheme error")
	}
	if _, err := ParseEndpoint("http://"); err == nil {
		t.Fatalf("ParseEndpoint returned nil error, want missing host error")
	}
}

func TestClient_FetchUsersDecodesArray(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotMethod = r.Method
		if r.URL.Path != "/users" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleUsers))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/users", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.FetchUsers(ctx)
	if err != nil {
		t.Fatalf("FetchUsers returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("FetchUsers returned %d users, want 2", len(got))
	}
	if got[0].ID != "1" || got[0].Name != "Leanne Graham" {
		t.Fatalf("first user = %#v, want id=1 name=Leanne Graham", got[0])
	}
	if got[1].ID != "u-2" {
		t.Fatalf("second user id = %q, want u-2", got[1].ID)
	}
	if _, ok := got[0].Fields["address"]; !ok {
		t.Fatalf("first user fields = %v, want address passed through", got[0].Fields)
	}
	if _, ok := got[0].Fields["id"]; ok {
		t.Fatalf("id should not be duplicated in Fields")
	}

	if gotMethod != http.MethodGet {
		t.Fatalf("method = %q, want GET", gotMethod)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if !strings.HasPrefix(gotUserAgent, "tripdesk/") {
		t.Fatalf("User-Agent = %q, want tripdesk/*", gotUserAgent)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/broken":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/object":
			_, _ = w.Write([]byte(`{"id": 1, "name": "x"}`))
		case "/nameless":
			_, _ = w.Write([]byte(`[{"id": 1}]`))
		case "/down":
			http.Error(w, "nope", http.StatusServiceUnavailable)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	cases := []struct {
		path string
		want string
	}{
		{"/broken", "decode response"},
		{"/object", "decode response"},
		{"/nameless", "missing name"},
		{"/down", "returned status 503"},
		{"/missing", "returned status 404"},
	}
	for _, tc := range cases {
		c, err := NewClient(server.URL+tc.path, time.Second)
		if err != nil {
			t.Fatalf("NewClient(%s) returned error: %v", tc.path, err)
		}
		_, err = c.FetchUsers(context.Background())
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("FetchUsers(%s) error = %v, want it to mention %q", tc.path, err, tc.want)
		}
	}
}

func TestClient_TransportError(t *testing.T) {
	c, err := NewClient("127.0.0.1:1/users", 500*time.Millisecond)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchUsers(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("FetchUsers error = %v, want execute request error", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchUsers(context.Background()); err == nil {
		t.Fatalf("FetchUsers on nil client returned nil error")
	}
	if c.Endpoint() != "" {
		t.Fatalf("Endpoint on nil client = %q, want empty", c.Endpoint())
	}
}
