package integrationtests

import (
	"auction-settlement/internal/clock"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/notifier"
	"auction-settlement/internal/server"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupTestApp initializes the router over in-memory repositories with a fixed clock and seeds auctions.
func SetupTestApp(now time.Time, auctions ...model.Auction) (*gin.Engine, *server.App) {
	gin.SetMode(gin.TestMode)
	app := server.NewApp(clock.Fixed{At: now}, notifier.NewLogEmailSender("auctions@example.com"), 0)

	for _, a := range auctions {
		app.Auctions.AddAuction(a)
	}

	return server.SetupRouter(app.Service), app
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
