package tidy

import (
	"reflect"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register policy tags with sentinel
	for _, tag := range policyTags {
		sentinel.Tag(tag)
	}
}

// typePlan holds the policy-bearing fields of one struct type.
// Plans are immutable after construction and shared between goroutines.
type typePlan struct {
	typeName string
	fields   []fieldPlan
	ignored  []string // fields with a policy but a non-string type
}

// fieldPlan describes how to normalize a single field.
type fieldPlan struct {
	index    []int  // access path; may pass through embedded pointers
	name     string // field name for error messages
	policy   Policy
	isPtr    bool   // true if field is *string, false if string
	denyRead string // non-empty when the field cannot be accessed
}

// FieldPolicy describes a policy-bearing field of a type.
type FieldPolicy struct {
	Name   string
	Policy Policy
}

// buildPlan builds the field plan for rt from its sentinel metadata.
// Fields of embedded structs, held by value or by pointer, are included;
// named struct fields are not descended into.
func buildPlan(rt reflect.Type, spec sentinel.Metadata) (*typePlan, error) {
	plan := &typePlan{typeName: rt.String()}
	if rt.Kind() != reflect.Struct {
		return plan, nil
	}

	visiting := map[reflect.Type]bool{rt: true}
	if err := buildPlanFields(plan, rt, spec, nil, "", visiting); err != nil {
		return nil, err
	}
	return plan, nil
}

// buildPlanFields appends plans for spec's fields, descending into embedded structs.
// Unexported fields, which sentinel does not report, are checked separately so
// a policy on one surfaces as a FieldAccessError instead of being dropped.
func buildPlanFields(plan *typePlan, rt reflect.Type, spec sentinel.Metadata, parentIndex []int, namePrefix string, visiting map[reflect.Type]bool) error {
	seen := make(map[string]bool, len(spec.Fields))

	for _, field := range spec.Fields {
		seen[field.Name] = true
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := qualify(namePrefix, field.Name)

		sf := rt.FieldByIndex(field.Index)
		tags := field.Tags
		if len(tags) == 0 {
			tags = parsePolicyTags(sf.Tag)
		}

		// Promoted fields of embedded structs belong to the outer object
		if nested, ok := embeddedStruct(sf, tags); ok {
			if err := descend(plan, nested, fullIndex, fullName, visiting); err != nil {
				return err
			}
			continue
		}

		denyRead := ""
		if !sf.IsExported() {
			denyRead = "unexported field"
		}
		if err := addField(plan, sf, lookupIn(tags), fullIndex, fullName, denyRead); err != nil {
			return err
		}
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.IsExported() || seen[sf.Name] {
			continue
		}
		fullIndex := append(append([]int{}, parentIndex...), i)
		fullName := qualify(namePrefix, sf.Name)

		// Exported fields of an unexported embedded struct are still promoted
		if nested, ok := embeddedStruct(sf, parsePolicyTags(sf.Tag)); ok {
			if err := descend(plan, nested, fullIndex, fullName, visiting); err != nil {
				return err
			}
			continue
		}

		if err := addField(plan, sf, sf.Tag.Lookup, fullIndex, fullName, "unexported field"); err != nil {
			return err
		}
	}

	return nil
}

// descend adds the fields of an embedded struct, skipping types already on
// the current path.
func descend(plan *typePlan, nested reflect.Type, index []int, name string, visiting map[reflect.Type]bool) error {
	if visiting[nested] {
		return nil
	}
	visiting[nested] = true
	defer delete(visiting, nested)
	return buildPlanFields(plan, nested, metadataFor(nested), index, name, visiting)
}

// addField parses the policy of sf and records it on plan.
func addField(plan *typePlan, sf reflect.StructField, lookup func(string) (string, bool), index []int, name, denyRead string) error {
	policy, declared, err := parsePolicy(lookup)
	if err != nil {
		if ce, ok := err.(*ConfigError); ok {
			ce.Field = name
			return ce
		}
		return err
	}
	if !declared {
		return nil
	}

	isString := sf.Type.Kind() == reflect.String
	isStringPtr := sf.Type.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.String

	if !isString && !isStringPtr {
		plan.ignored = append(plan.ignored, name)
		return nil
	}

	plan.fields = append(plan.fields, fieldPlan{
		index:    index,
		name:     name,
		policy:   policy,
		isPtr:    isStringPtr,
		denyRead: denyRead,
	})
	return nil
}

// embeddedStruct reports the struct type behind an embedded field that
// declares no policy of its own. Both T and *T embeddings qualify.
func embeddedStruct(sf reflect.StructField, tags map[string]string) (reflect.Type, bool) {
	if !sf.Anonymous {
		return nil, false
	}
	for _, key := range policyTags {
		if _, ok := tags[key]; ok {
			return nil, false
		}
	}
	switch {
	case sf.Type.Kind() == reflect.Struct:
		return sf.Type, true
	case sf.Type.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.Struct:
		return sf.Type.Elem(), true
	}
	return nil, false
}

func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// metadataFor returns sentinel's metadata for rt, scanning its exported
// fields directly when sentinel has not seen the type.
func metadataFor(rt reflect.Type) sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return spec
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}
	if rt.Kind() != reflect.Struct {
		return spec
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parsePolicyTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return spec
}

// parsePolicyTags extracts tidy tags from a struct tag.
func parsePolicyTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, key := range policyTags {
		if val, ok := tag.Lookup(key); ok {
			tags[key] = val
		}
	}
	return tags
}

// lookupIn adapts a tag map to the StructTag.Lookup signature.
func lookupIn(tags map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := tags[key]
		return val, ok
	}
}

// policies returns the public view of the plan.
func (p *typePlan) policies() []FieldPolicy {
	out := make([]FieldPolicy, len(p.fields))
	for i, f := range p.fields {
		out[i] = FieldPolicy{Name: f.name, Policy: f.policy}
	}
	return out
}
