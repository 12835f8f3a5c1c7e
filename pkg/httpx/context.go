package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated subject id injected by AuthnMiddleware.
const CtxKeyUserID ctxKey = "user_id"

// UserIDFromCtx returns the authenticated user id, or "" if the request was
// not authenticated.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
