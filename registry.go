package tidy

import (
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

// registryKey combines type and codec for cache lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex

	plans   = make(map[reflect.Type]*typePlan)
	plansMu sync.RWMutex
)

// Use returns a cached processor or builds a new one.
// The processor is cached by type and codec content type.
// A nil codec caches a processor without boundary support.
func Use[T any](codec Codec) (*Processor[T], error) {
	typ := reflect.TypeFor[T]()
	key := registryKey{typ: typ}
	if codec != nil {
		key.contentType = codec.ContentType()
	}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Processor[T]), nil
	}

	processor, err := NewProcessor[T]()
	if err != nil {
		return nil, err
	}
	if codec != nil {
		processor.SetCodec(codec)
	}

	registry[key] = processor
	return processor, nil
}

// Reset clears the processor registry and the field plan cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	registry = make(map[registryKey]any)
	registryMu.Unlock()

	plansMu.Lock()
	plans = make(map[reflect.Type]*typePlan)
	plansMu.Unlock()
}

// getOrBuildPlan returns the cached plan for rt, building it on first use
// from the metadata scan returns. A nil scan resolves metadata through
// sentinel's registry. Failed builds are not cached so the error is reported
// on every call.
func getOrBuildPlan(rt reflect.Type, scan func() sentinel.Metadata) (*typePlan, error) {
	plansMu.RLock()
	if plan, ok := plans[rt]; ok {
		plansMu.RUnlock()
		return plan, nil
	}
	plansMu.RUnlock()

	plansMu.Lock()
	defer plansMu.Unlock()

	if plan, ok := plans[rt]; ok {
		return plan, nil
	}

	var spec sentinel.Metadata
	if scan != nil {
		spec = scan()
	} else {
		spec = metadataFor(rt)
	}

	plan, err := buildPlan(rt, spec)
	if err != nil {
		return nil, err
	}

	plans[rt] = plan
	return plan, nil
}
