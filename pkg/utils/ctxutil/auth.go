package ctxutil

import "context"

type ctxAuthKey string

const ctxAuthTriggerClaims = ctxAuthKey("trigger_claims")

// WithTriggerClaims stores verified JWT claims of the trigger request.
func WithTriggerClaims(ctx context.Context, claims map[string]any) context.Context {
	return context.WithValue(ctx, ctxAuthTriggerClaims, claims)
}

func TriggerClaims(ctx context.Context) map[string]any {
	claims, ok := ctx.Value(ctxAuthTriggerClaims).(map[string]any)
	if !ok {
		return nil
	}
	return claims
}
