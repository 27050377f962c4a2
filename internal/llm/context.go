package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// unknownPurpose labels calls made without WithPurpose.
const unknownPurpose = "unknown"

// WithPurpose tags calls made with ctx, e.g. "type-classification". The tag
// ends up in the audit log and the metrics labels.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return unknownPurpose
}
