package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/resale-backend/pkg/ctxutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asUser attaches an authenticated session to req.
func asUser(req *http.Request, userID uuid.UUID, admin bool) *http.Request {
	ctx := ctxutil.WithUserID(req.Context(), userID)
	ctx = ctxutil.WithAdmin(ctx, admin)
	return req.WithContext(ctx)
}

// withPath sets path values the way the mux would.
func withPath(req *http.Request, kv ...string) *http.Request {
	for i := 0; i+1 < len(kv); i += 2 {
		req.SetPathValue(kv[i], kv[i+1])
	}
	return req
}

func decodeBodyMap(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func stringReader(s string) io.Reader {
	return strings.NewReader(s)
}
