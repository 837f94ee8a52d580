package grammar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Check(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2/check", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "en-US", r.PostFormValue("language"))
		assert.Equal(t, "Their going to the store.", r.PostFormValue("text"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"matches":[
			{"message":"Possible confusion of Their/They're","offset":0,"length":5,"context":{"text":"Their going"}},
			{"message":"Sentence fragment","offset":6,"length":5,"context":{"text":"going to"}}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "en-US", 2*time.Second)
	issues, err := c.Check(context.Background(), "Their going to the store.")
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "Possible confusion of Their/They're", issues[0].Message)
	assert.Equal(t, "Their going", issues[0].Context)
	assert.Equal(t, 0, issues[0].Offset)
	assert.Equal(t, 5, issues[0].Length)
}

func TestClient_Check_EmptyText(t *testing.T) {
	c := NewClient("http://unreachable.invalid", "en-US", time.Second)
	issues, err := c.Check(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestClient_Check_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "en-US", time.Second)
	_, err := c.Check(context.Background(), "Some text.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_Check_HonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"matches":[]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL, "en-US", time.Second)
	_, err := c.Check(ctx, "Some text.")
	require.Error(t, err)
}
