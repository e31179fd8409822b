package tidy

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// Processor normalizes values of type T according to their field policies.
//
// Processors are safe for concurrent use. Configuration methods (SetCodec,
// SetTransformer) may be called at any time.
//
// Validation occurs automatically on first operation. Register custom
// transformers before the first call to Process, Receive or Normalized.
type Processor[T any] struct {
	// Mutable configuration protected by mu
	mu           sync.RWMutex
	codec        Codec
	transformers map[Transform]Transformer

	// Validation state (runs once on first operation)
	validateOnce sync.Once
	validateErr  error

	// Field plan (immutable after construction)
	plan *typePlan
}

// NewProcessor creates a new Processor for type T.
//
// T must be a struct type. Its struct tags are scanned once and cached;
// invalid tags are reported here. The processor starts with the builtin transformers and no
// codec. Use SetCodec before Receive or Send.
func NewProcessor[T any]() (*Processor[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, &ConfigError{Err: ErrNotStruct, Value: rt.String()}
	}

	plan, err := getOrBuildPlan(rt, sentinel.Scan[T])
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		transformers: builtinTransformers(),
		plan:         plan,
	}

	emitProcessorCreated(context.Background(), plan.typeName, len(plan.fields), len(plan.ignored))
	return p, nil
}

// SetCodec sets the codec used by Receive and Send.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetCodec(codec Codec) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.codec = codec
	return p
}

// SetTransformer registers a transformer for the given transform, replacing
// the builtin one. Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetTransformer(t Transform, tr Transformer) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transformers[t] = tr
	return p
}

// Fields returns the policy-bearing fields of T in declaration order.
func (p *Processor[T]) Fields() []FieldPolicy {
	return p.plan.policies()
}

// Ignored returns the names of fields that declare a policy but are not
// strings. Such policies have no effect.
func (p *Processor[T]) Ignored() []string {
	return append([]string(nil), p.plan.ignored...)
}

// Validate checks that every policy-bearing field can be processed: each
// transform has a registered transformer and each field is accessible.
//
// Validation also runs automatically on first operation. Calling Validate
// explicitly allows catching configuration errors at startup.
func (p *Processor[T]) Validate() error {
	return p.ensureValidated()
}

// ensureValidated runs validation once and caches the result.
func (p *Processor[T]) ensureValidated() error {
	p.validateOnce.Do(func() {
		p.mu.RLock()
		defer p.mu.RUnlock()
		p.validateErr = p.validateFields()
	})
	return p.validateErr
}

// validateFields ensures every planned field has what it needs.
// Transformer checks are skipped when T implements Normalizable.
func (p *Processor[T]) validateFields() error {
	var zero T
	_, hasNormalizable := any(&zero).(Normalizable)

	for _, plan := range p.plan.fields {
		if plan.denyRead != "" {
			return newAccessError(p.plan.typeName, plan.name, "read", plan.denyRead)
		}
		if hasNormalizable {
			continue
		}
		if _, ok := p.transformers[plan.policy.Transform]; !ok {
			return newConfigError(ErrMissingTransformer, plan.name, string(plan.policy.Transform))
		}
	}

	return nil
}

// Process normalizes obj in place. A nil obj is a no-op.
func (p *Processor[T]) Process(ctx context.Context, obj *T) error {
	if err := p.ensureValidated(); err != nil {
		return err
	}
	if obj == nil {
		return nil
	}

	start := time.Now()
	emitNormalizeStart(ctx, p.plan.typeName)

	var count int
	var retErr error
	defer func() {
		emitNormalizeComplete(ctx, p.plan.typeName, time.Since(start), count, retErr)
	}()

	p.mu.RLock()
	defer p.mu.RUnlock()

	// Check for override interface
	if n, ok := any(obj).(Normalizable); ok {
		if err := n.Normalize(p.transformers); err != nil {
			retErr = fmt.Errorf("normalize: %w", err)
			return retErr
		}
		count = len(p.plan.fields)
		return nil
	}

	count, retErr = p.plan.apply(reflect.ValueOf(obj).Elem(), p.transformers)
	return retErr
}

// Normalized returns a normalized copy of obj and leaves obj untouched.
// If T implements Cloner[T] the copy is made with Clone, otherwise it is a
// shallow copy. A nil obj yields nil.
func (p *Processor[T]) Normalized(ctx context.Context, obj *T) (*T, error) {
	if obj == nil {
		return nil, p.ensureValidated()
	}

	var clone T
	if c, ok := any(*obj).(Cloner[T]); ok {
		clone = c.Clone()
	} else {
		clone = *obj
	}

	if err := p.Process(ctx, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

// Receive unmarshals data and normalizes the result.
// Use for data coming from external sources (API requests, events).
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	codec := p.currentCodec()
	if codec == nil {
		return nil, ErrNoCodec
	}

	start := time.Now()
	emitReceiveStart(ctx, codec.ContentType(), p.plan.typeName)

	var retErr error
	defer func() {
		emitReceiveComplete(ctx, codec.ContentType(), p.plan.typeName,
			len(data), time.Since(start), retErr)
	}()

	var obj T
	if err := codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	if err := p.Process(ctx, &obj); err != nil {
		retErr = err
		return nil, retErr
	}

	return &obj, nil
}

// Send marshals obj as it is. Normalization happens on the way in, so Send
// applies no field policies.
func (p *Processor[T]) Send(ctx context.Context, obj *T) ([]byte, error) {
	codec := p.currentCodec()
	if codec == nil {
		return nil, ErrNoCodec
	}

	start := time.Now()
	emitSendStart(ctx, codec.ContentType(), p.plan.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitSendComplete(ctx, codec.ContentType(), p.plan.typeName,
			len(retData), time.Since(start), retErr)
	}()

	var data []byte
	var err error
	if obj == nil {
		data, err = codec.Marshal(nil)
	} else {
		data, err = codec.Marshal(obj)
	}
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	retData = data
	return retData, nil
}

// ContentType returns the content type of the configured codec, or an empty
// string when none is set.
func (p *Processor[T]) ContentType() string {
	codec := p.currentCodec()
	if codec == nil {
		return ""
	}
	return codec.ContentType()
}

// currentCodec reads the codec under the lock.
func (p *Processor[T]) currentCodec() Codec {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.codec
}
