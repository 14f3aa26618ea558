package middlewares

import (
	"context"
	"net/http"
	"strings"

	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/utils"
)

// Authenticate resolves the Bearer token to a live redis session and stores
// both the session data and the session id on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
		sessionData, err := m.SessionService.ParseSessionData(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionData.SessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
