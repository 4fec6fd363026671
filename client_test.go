package assetbook_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/assetbook"
	"github.com/etnz/assetbook/apitest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, srv *apitest.Server) *assetbook.Client {
	t.Helper()
	c, err := assetbook.NewClient(srv.URL())
	require.NoError(t, err)
	return c
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := assetbook.NewClient("/api")
	assert.Error(t, err)
}

func TestClientCreate(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv)

	created, err := c.Create(context.Background(), assetbook.Input{Name: "Savings", Amount: decimal.NewFromInt(1000)})
	require.NoError(t, err)
	assert.Equal(t, assetbook.ID("1"), created.ID)
	assert.Equal(t, 1, created.Quantity)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/assets", reqs[0].Path)
	assert.Equal(t, "application/json", reqs[0].ContentType)
	assert.Equal(t, `{"name":"Savings","amount":1000}`, reqs[0].Body)
	assert.NotEmpty(t, reqs[0].RequestID)
}

func TestClientCRUD(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv)
	ctx := context.Background()

	a, err := c.Create(ctx, assetbook.Input{Name: "ACME", Amount: decimal.NewFromInt(1000), Quantity: 100, Category: assetbook.Stock})
	require.NoError(t, err)

	updated, err := c.Update(ctx, a.ID, assetbook.Input{Name: "ACME", Amount: decimal.NewFromInt(1200), Quantity: 100, Category: assetbook.Stock})
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(1200)))

	reqs := srv.Requests()
	assert.Equal(t, http.MethodPut, reqs[len(reqs)-1].Method)
	assert.Equal(t, "/api/assets/"+a.ID.String(), reqs[len(reqs)-1].Path)
	assert.Equal(t, "application/json", reqs[len(reqs)-1].ContentType)

	list, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	conf, err := c.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, conf.Message)

	list, err = c.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestClientSummary(t *testing.T) {
	srv := apitest.NewServer(t,
		assetbook.Asset{ID: "1", Name: "ACME", Amount: decimal.NewFromInt(1000), Quantity: 10, Category: assetbook.Stock},
		assetbook.Asset{ID: "2", Name: "Wallet", Amount: decimal.NewFromInt(500), Quantity: 1, Category: assetbook.Cash},
	)
	c := newClient(t, srv)

	s, err := c.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(10500)))
	assert.Len(t, s.Categories, 2)
}

func TestClientErrors(t *testing.T) {
	testCases := []struct {
		name    string
		method  string
		path    string
		status  int
		message string
		call    func(*assetbook.Client) error
		want    string
	}{
		{
			name: "server message", method: http.MethodPost, path: "/api/assets", status: http.StatusBadRequest, message: "missing required fields",
			call: func(c *assetbook.Client) error {
				_, err := c.Create(context.Background(), assetbook.Input{})
				return err
			},
			want: "missing required fields",
		},
		{
			name: "create fallback", method: http.MethodPost, path: "/api/assets", status: http.StatusInternalServerError,
			call: func(c *assetbook.Client) error {
				_, err := c.Create(context.Background(), assetbook.Input{})
				return err
			},
			want: "failed to create asset",
		},
		{
			name: "update fallback", method: http.MethodPut, path: "/api/assets/9", status: http.StatusConflict,
			call: func(c *assetbook.Client) error {
				_, err := c.Update(context.Background(), "9", assetbook.Input{})
				return err
			},
			want: "failed to update asset",
		},
		{
			name: "delete not found", method: http.MethodDelete, path: "/api/assets/9", status: http.StatusNotFound, message: "asset not found",
			call: func(c *assetbook.Client) error {
				_, err := c.Delete(context.Background(), "9")
				return err
			},
			want: "asset not found",
		},
		{
			name: "list fallback", method: http.MethodGet, path: "/api/assets", status: http.StatusServiceUnavailable,
			call: func(c *assetbook.Client) error {
				_, err := c.List(context.Background())
				return err
			},
			want: "failed to fetch assets",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := apitest.NewServer(t)
			srv.Fail(tc.method, tc.path, tc.status, tc.message)

			err := tc.call(newClient(t, srv))

			var apiErr *assetbook.APIError
			require.True(t, errors.As(err, &apiErr), "want an *APIError, got %v", err)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestClientTransportError(t *testing.T) {
	srv := apitest.NewServer(t)
	c := newClient(t, srv)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx)

	var tErr *assetbook.TransportError
	require.True(t, errors.As(err, &tErr), "want a *TransportError, got %v", err)
	assert.Equal(t, assetbook.OpList, tErr.Op)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientEscapesIDs(t *testing.T) {
	uris := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uris <- r.RequestURI
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"asset deleted"}`))
	}))
	t.Cleanup(srv.Close)
	c, err := assetbook.NewClient(srv.URL + "/api")
	require.NoError(t, err)

	tests := []struct {
		id   assetbook.ID
		want string
	}{
		{id: "7", want: "/api/assets/7"},
		{id: "a/b", want: "/api/assets/a%2Fb"},
		{id: "../summary", want: "/api/assets/..%2Fsummary"},
		{id: "..", want: "/api/assets/%2E%2E"},
		{id: "café au lait", want: "/api/assets/caf%C3%A9%20au%20lait"},
	}
	for _, tc := range tests {
		t.Run(tc.id.String(), func(t *testing.T) {
			_, err := c.Delete(context.Background(), tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, <-uris)
		})
	}
}
