package resend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ldbiro/ldbiro-web/pkg/httpclient"
	"github.com/ldbiro/ldbiro-web/pkg/logger"
	"github.com/ldbiro/ldbiro-web/pkg/resend"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

func TestSendEmail_Success(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody resend.SendEmailRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_abc123"}`))
	}))
	defer server.Close()

	client := resend.NewClientWithBaseURL("re_test_key", server.URL, httpclient.NewStandardClient())

	resp, err := client.SendEmail(context.Background(), &resend.SendEmailRequest{
		From:    "LD Biro Kontakt <kontakt@resend.dev>",
		To:      []string{"office@ldbiro.rs"},
		ReplyTo: "ana@example.com",
		Subject: "NOVA PORUKA: Ana Petrović - Preduzetnik",
		HTML:    "<p>Zdravo</p>",
		Text:    "Zdravo",
		Headers: map[string]string{"X-Priority": "1"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "msg_abc123", resp.ID)

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "/emails", gotPath)
	assert.Equal(t, []string{"office@ldbiro.rs"}, gotBody.To)
	assert.Equal(t, "ana@example.com", gotBody.ReplyTo)
	assert.Equal(t, "1", gotBody.Headers["X-Priority"])
}

func TestSendEmail_APIErrorDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from address"}`))
	}))
	defer server.Close()

	client := resend.NewClientWithBaseURL("re_test_key", server.URL, httpclient.NewStandardClient())

	resp, err := client.SendEmail(context.Background(), &resend.SendEmailRequest{
		From:    "bad",
		To:      []string{"office@ldbiro.rs"},
		Subject: "x",
	})

	assert.Nil(t, resp)

	var apiErr *resend.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, "validation_error", apiErr.Name)
	assert.Contains(t, apiErr.Error(), "Invalid from address")
}

func TestSendEmail_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := resend.NewClientWithBaseURL("re_test_key", server.URL, httpclient.NewStandardClient())

	_, err := client.SendEmail(context.Background(), &resend.SendEmailRequest{
		From:    "x <x@resend.dev>",
		To:      []string{"office@ldbiro.rs"},
		Subject: "x",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSendEmail_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"msg_abc123"}`))
	}))
	defer server.Close()

	client := resend.NewClientWithBaseURL("re_test_key", server.URL, httpclient.NewStandardClient())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SendEmail(ctx, &resend.SendEmailRequest{
		From:    "x <x@resend.dev>",
		To:      []string{"office@ldbiro.rs"},
		Subject: "x",
	})

	assert.Error(t, err)
}
