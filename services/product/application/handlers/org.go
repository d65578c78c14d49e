package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/labelpress/pkg/auth"
	"github.com/ghuser/labelpress/pkg/httpx"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"org_id and name are required"`
} // @name ErrorResponse

// orgIDFromRequest resolves the tenant scope for a request: the session
// context when RequireAuth is mounted, the X-Org-ID header otherwise
// (dev and service-to-service use).
func orgIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	if orgID, err := auth.OrgIDFromCtx(r.Context()); err == nil {
		return orgID, true
	}
	if raw := r.Header.Get("X-Org-ID"); raw != "" {
		if orgID, err := uuid.Parse(raw); err == nil {
			return orgID, true
		}
	}
	return uuid.Nil, false
}

// writeOrgRequired is the shared 401 for requests with no resolvable tenant.
func writeOrgRequired(w http.ResponseWriter) {
	httpx.JSONError(w, http.StatusUnauthorized, "organization scope required")
}
