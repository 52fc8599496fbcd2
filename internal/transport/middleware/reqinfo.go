package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestInfo is filled in by inner handlers and read by the outer Logger
// and Metrics middleware after the request completes. Inner middleware
// derive new requests with WithContext, so values they store in the context
// are not visible from the outside.
type requestInfo struct {
	userID uuid.UUID
	route  string
}

type requestInfoKey struct{}

// withRequestInfo attaches a requestInfo to r unless one is already there.
func withRequestInfo(r *http.Request) (*http.Request, *requestInfo) {
	if info := requestInfoFrom(r.Context()); info != nil {
		return r, info
	}
	info := &requestInfo{}
	return r.WithContext(context.WithValue(r.Context(), requestInfoKey{}, info)), info
}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*requestInfo)
	return info
}

// Route records the ServeMux pattern that matched the request. Wrap each
// registered handler with it so Logger and Metrics can label by route.
func Route(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info := requestInfoFrom(r.Context()); info != nil {
			info.route = r.Pattern
		}
		next.ServeHTTP(w, r)
	})
}

func (i *requestInfo) routeOrDefault() string {
	if i.route == "" {
		return "unmatched"
	}
	return i.route
}
