package auditlog

import "context"

// Resource names the object a command acted on.
type Resource struct {
	Type string
	ID   string
}

// resourceRef is stored in the context so a command body can name its
// resource after the wrapper has already captured the context.
type resourceRef struct {
	res Resource
}

type resourceKey struct{}

// WithResourceSlot returns a context that can carry the resource set by
// SetResource further down the call chain.
func WithResourceSlot(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, resourceKey{}, &resourceRef{})
}

// SetResource records the resource a command acted on. It is a no-op when
// ctx carries no slot. Empty fields keep earlier values.
func SetResource(ctx context.Context, res Resource) {
	if ctx == nil {
		return
	}
	ref, _ := ctx.Value(resourceKey{}).(*resourceRef)
	if ref == nil {
		return
	}
	if res.Type != "" {
		ref.res.Type = res.Type
	}
	if res.ID != "" {
		ref.res.ID = res.ID
	}
}

// ResourceFromContext returns the resource recorded in ctx.
func ResourceFromContext(ctx context.Context) Resource {
	if ctx == nil {
		return Resource{}
	}
	ref, _ := ctx.Value(resourceKey{}).(*resourceRef)
	if ref == nil {
		return Resource{}
	}
	return ref.res
}
