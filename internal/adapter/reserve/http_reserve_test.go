package reserve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlement_Send(t *testing.T) {
	recipient := uuid.New()
	var got releaseRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSettlement(srv.Client(), srv.URL, zerolog.Nop())

	err := s.Send(context.Background(), recipient, 750)
	require.NoError(t, err)
	assert.Equal(t, recipient.String(), got.Recipient)
	assert.Equal(t, int64(750), got.Amount)
}

func TestSettlement_Send_RejectedRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	s := NewSettlement(srv.Client(), srv.URL, zerolog.Nop())

	err := s.Send(context.Background(), uuid.New(), 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestSettlement_Send_EndpointDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	s := NewSettlement(http.DefaultClient, srv.URL, zerolog.Nop())

	err := s.Send(context.Background(), uuid.New(), 100)
	assert.Error(t, err)
}
