package auth

import "context"

type ctxKey int

const (
	subKey ctxKey = iota
	roleKey
)

func WithIdentity(ctx context.Context, sub, role string) context.Context {
	ctx = context.WithValue(ctx, subKey, sub)
	return context.WithValue(ctx, roleKey, role)
}

func SubFromContext(ctx context.Context) string {
	s, _ := ctx.Value(subKey).(string)
	return s
}

func RoleFromContext(ctx context.Context) string {
	r, _ := ctx.Value(roleKey).(string)
	return r
}
