package tidy

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// unseenMetadataUser is only scanned through metadataFor.
type unseenMetadataUser struct {
	Name  string `tidy.transform:"upper" json:"name"`
	Count int
	note  string `tidy.transform:"lower"`
}

// hiddenBase carries a policy on an unexported field.
type hiddenBase struct {
	Visible string `tidy.transform:"upper"`
	token   string `tidy.transform:"lower"`
}

// HiddenEmbeddedUser embeds a struct with an unexported tagged field.
type HiddenEmbeddedUser struct {
	*hiddenBase
	Name string `tidy.transform:"upper"`
}

func TestMetadataFor(t *testing.T) {
	spec := metadataFor(reflect.TypeFor[unseenMetadataUser]())

	if len(spec.Fields) != 2 {
		t.Fatalf("Fields length = %d, want 2 exported fields", len(spec.Fields))
	}
	if spec.Fields[0].Name != "Name" || spec.Fields[0].Tags[TagTransform] != "upper" {
		t.Errorf("Fields[0] = %+v", spec.Fields[0])
	}
	if _, ok := spec.Fields[0].Tags["json"]; ok {
		t.Error("only policy tags should be collected")
	}
}

func TestBuildPlan_UnexportedFields(t *testing.T) {
	rt := reflect.TypeFor[unseenMetadataUser]()
	plan, err := buildPlan(rt, metadataFor(rt))
	if err != nil {
		t.Fatalf("buildPlan() error: %v", err)
	}

	if len(plan.fields) != 2 {
		t.Fatalf("fields = %+v, want Name and note", plan.fields)
	}
	if plan.fields[1].name != "note" || plan.fields[1].denyRead == "" {
		t.Errorf("fields[1] = %+v, want denied note", plan.fields[1])
	}
}

func TestNormalize_HiddenEmbeddedField(t *testing.T) {
	user := &HiddenEmbeddedUser{hiddenBase: &hiddenBase{Visible: "a", token: "KEEP"}, Name: "b"}

	err := Normalize(context.Background(), user)
	if !errors.Is(err, ErrFieldAccess) {
		t.Fatalf("Normalize() error = %v, want ErrFieldAccess", err)
	}

	var fae *FieldAccessError
	if !errors.As(err, &fae) || fae.Field != "hiddenBase.token" {
		t.Errorf("FieldAccessError = %+v, want hiddenBase.token", fae)
	}
	if user.Name != "b" || user.token != "KEEP" {
		t.Errorf("object modified after failed Normalize: %+v", user)
	}
}

func TestBuildPlan_NonStruct(t *testing.T) {
	rt := reflect.TypeFor[string]()
	plan, err := buildPlan(rt, metadataFor(rt))
	if err != nil {
		t.Fatalf("buildPlan() error: %v", err)
	}
	if len(plan.fields) != 0 {
		t.Errorf("fields = %+v, want none", plan.fields)
	}
}
