package xcontext

import "context"

// requestState is mutable so that closers registered on the router observe
// the error and response set by the handler.
type requestState struct {
	err  error
	resp any
}

type requestStateKey struct{}

func WithRequestState(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestStateKey{}, &requestState{})
}

func state(ctx context.Context) *requestState {
	s, ok := ctx.Value(requestStateKey{}).(*requestState)
	if !ok {
		return &requestState{}
	}

	return s
}

func SetError(ctx context.Context, err error) {
	state(ctx).err = err
}

func Error(ctx context.Context) error {
	return state(ctx).err
}

func SetResponse(ctx context.Context, resp any) {
	state(ctx).resp = resp
}

func Response(ctx context.Context) any {
	return state(ctx).resp
}
