package tidy

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Normalize applies field policies to v in place.
//
// v is normally a pointer to a struct. A nil value or nil pointer is a no-op,
// as is any value that is not a struct. A struct passed by value cannot be
// written; if it carries policies, Normalize returns a FieldAccessError.
//
// Types implementing Normalizable are handed the builtin transformers instead
// of being walked by reflection.
func Normalize(ctx context.Context, v any) error {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	plan, err := getOrBuildPlan(rv.Type(), nil)
	if err != nil {
		return err
	}

	start := time.Now()
	emitNormalizeStart(ctx, plan.typeName)

	var count int
	var retErr error
	defer func() {
		emitNormalizeComplete(ctx, plan.typeName, time.Since(start), count, retErr)
	}()

	if n, ok := v.(Normalizable); ok {
		if err := n.Normalize(defaultTransformers); err != nil {
			retErr = fmt.Errorf("normalize: %w", err)
			return retErr
		}
		count = len(plan.fields)
		return nil
	}

	count, retErr = plan.apply(rv, defaultTransformers)
	return retErr
}

// apply normalizes every planned field of rv.
//
// Access to all fields is checked before anything is written, so a failed
// call leaves rv untouched. Returns the number of fields written.
func (p *typePlan) apply(rv reflect.Value, transformers map[Transform]Transformer) (int, error) {
	if len(p.fields) == 0 {
		return 0, nil
	}

	targets := make([]reflect.Value, len(p.fields))
	for i, plan := range p.fields {
		if plan.denyRead != "" {
			return 0, newAccessError(p.typeName, plan.name, "read", plan.denyRead)
		}
		field, err := rv.FieldByIndexErr(plan.index)
		if err != nil {
			// Nil embedded pointer: nothing to normalize
			continue
		}
		if !field.CanSet() {
			return 0, newAccessError(p.typeName, plan.name, "write", "value is not addressable")
		}
		targets[i] = field
	}

	type pending struct {
		field reflect.Value
		value reflect.Value
	}
	writes := make([]pending, 0, len(p.fields))

	for i, plan := range p.fields {
		field := targets[i]
		if !field.IsValid() {
			continue
		}
		tr := transformers[plan.policy.Transform]

		if plan.isPtr {
			if field.IsNil() {
				if plan.policy.Default == "" {
					continue
				}
				out := reflect.New(field.Type().Elem())
				out.Elem().SetString(plan.policy.ApplyWith(plan.policy.Default, tr))
				writes = append(writes, pending{field: field, value: out})
				continue
			}
			out := reflect.New(field.Type().Elem())
			out.Elem().SetString(plan.policy.ApplyWith(field.Elem().String(), tr))
			writes = append(writes, pending{field: field, value: out})
			continue
		}

		out := reflect.New(field.Type()).Elem()
		out.SetString(plan.policy.ApplyWith(field.String(), tr))
		writes = append(writes, pending{field: field, value: out})
	}

	for _, w := range writes {
		w.field.Set(w.value)
	}

	return len(writes), nil
}
