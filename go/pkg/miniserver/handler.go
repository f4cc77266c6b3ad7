// Package miniserver serves a single static JSON document over HTTP.
package miniserver

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/example/snippet-lab/go/pkg/config"
	"github.com/example/snippet-lab/go/pkg/datafile"
	"github.com/example/snippet-lab/go/pkg/httputil"
	"github.com/example/snippet-lab/go/pkg/logging"
)

// NotFoundBody is written for every path other than the data route.
const NotFoundBody = "Not Found"

// NewHandler answers config.DataRoute with the payload and 404 elsewhere.
// Only the path is inspected; method and query string are ignored.
func NewHandler(payload *datafile.Payload, logger *zap.Logger) http.Handler {
	logger = logging.OrNop(logger)
	body := payload.Bytes()

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == config.DataRoute {
			httputil.RawJSONResponse(w, http.StatusOK, body)
			return
		}
		httputil.TextResponse(w, http.StatusNotFound, NotFoundBody)
	})

	return httputil.Chain(h,
		httputil.WithRequestID(),
		httputil.WithLogging(logger),
		httputil.Recover(logger),
	)
}
