package cache

import (
	"context"
	"reflect"
	"time"
)

// Store is the process-wide read-through cache shared by all aggregators.
//
// Get returns a value only while it is fresher than ttl; expired entries are
// kept in place so GetStale can serve them when a fresh fetch fails. Set
// overwrites unconditionally and stamps the current time. The key space is a
// small fixed set (one per domain plus calendar ranges and translation ids),
// so no automatic eviction is performed.
type Store interface {
	Get(ctx context.Context, key string, ttl time.Duration, dest interface{}) bool
	GetStale(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Clear(ctx context.Context, keys ...string)
}

// assign copies value into the pointer dest if the types are compatible.
func assign(dest, value interface{}) bool {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return false
	}
	elem := dv.Elem()
	vv := reflect.ValueOf(value)
	if !vv.IsValid() || !vv.Type().AssignableTo(elem.Type()) {
		return false
	}
	elem.Set(vv)
	return true
}
