package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsnet-africa/netabase-sub001/internal/analyze"
	"github.com/newsnet-africa/netabase-sub001/internal/plan"
	"github.com/newsnet-africa/netabase-sub001/internal/schema"
)

func structDef(name string, fields ...analyze.FieldDef) *analyze.SchemaDef {
	for i := range fields {
		fields[i].Index = i
	}

	return &analyze.SchemaDef{
		ID:      analyze.TypeID{PkgPath: "example/store", Name: name},
		Kind:    analyze.KindStruct,
		PkgName: "store",
		Dir:     "example/store",
		Fields:  fields,
	}
}

func generate(t *testing.T, p *plan.Plan) (GeneratedFile, string) {
	t.Helper()

	gen := NewGenerator(DefaultConfig())
	file, err := gen.GenerateOne(p)

	require.NoError(t, err)

	return *file, string(file.Content)
}

func TestGenerator_SingleFieldWithPrefix(t *testing.T) {
	def := structDef("User",
		analyze.FieldDef{Name: "ID", TypeExpr: "uint64", Render: analyze.RenderUint},
		analyze.FieldDef{Name: "Name", TypeExpr: "string", Render: analyze.RenderString},
	)

	p := &plan.Plan{
		Model: &schema.Model{
			Def:       def,
			Container: schema.ContainerAttrs{Prefix: "user", Separator: "::"},
		},
		Key: plan.KeySpec{
			Strategy:  plan.StrategySingleField,
			Prefix:    "user",
			Separator: "::",
			Parts:     []plan.KeyPart{{Field: def.Field("ID")}},
		},
		Serialization: plan.Serialization{DualDecode: true},
	}

	file, content := generate(t, p)

	assert.Equal(t, "user_netabase.go", file.Filename)
	assert.Equal(t, "example/store", file.Dir)

	assert.Contains(t, content, "package store")
	assert.Contains(t, content, "type UserKey struct {\n\tkv.Key\n}")
	assert.Contains(t, content, "func NewUserKey(s string) UserKey")
	assert.Contains(t, content, "func UserKeyFromBytes(b []byte) (UserKey, error)")
	assert.Contains(t, content, "func NewUniqueUserKey() UserKey")
	assert.Contains(t, content, "func (v User) Key() UserKey")
	assert.Contains(t, content, `kv.Compose("user", "::", strconv.FormatUint(v.ID, 10))`)
	assert.Contains(t, content, "func (v User) Encode() ([]byte, error)")
	assert.Contains(t, content, "codec.Encode(codec.ModeNative, v)")
	assert.Contains(t, content, "func DecodeUser(data []byte) (User, error)")
	assert.Contains(t, content, "codec.DecodeDual[User](codec.ModeNative, data)")
	assert.Contains(t, content, "func (v User) ToRecord() (record.Record, error)")
	assert.Contains(t, content, "func UserFromRecord(r record.Record) (User, error)")
	assert.Contains(t, content, "func MustUserFromRecord(r record.Record) User")
	assert.NotContains(t, content, "IndexEntries")
}

func TestGenerator_CompositeDeclarationOrder(t *testing.T) {
	def := structDef("Session",
		analyze.FieldDef{Name: "UserID", TypeExpr: "uint64", Render: analyze.RenderUint},
		analyze.FieldDef{Name: "Token", TypeExpr: "string", Render: analyze.RenderString},
	)

	p := &plan.Plan{
		Model: &schema.Model{Def: def, Container: schema.ContainerAttrs{Separator: "::"}},
		Key: plan.KeySpec{
			Strategy:  plan.StrategyCompositeFields,
			Separator: "::",
			Parts: []plan.KeyPart{
				{Field: def.Field("UserID")},
				{Field: def.Field("Token")},
			},
		},
		Serialization: plan.Serialization{DualDecode: true},
	}

	_, content := generate(t, p)

	assert.Contains(t, content, `kv.Compose("", "::", strconv.FormatUint(v.UserID, 10), v.Token)`)
}

func TestGenerator_SingleStringFieldIsDirect(t *testing.T) {
	def := structDef("Doc",
		analyze.FieldDef{Name: "Path", TypeExpr: "string", Render: analyze.RenderString},
	)

	p := &plan.Plan{
		Model: &schema.Model{Def: def, Container: schema.ContainerAttrs{Separator: "::"}},
		Key: plan.KeySpec{
			Strategy:  plan.StrategySingleField,
			Separator: "::",
			Parts:     []plan.KeyPart{{Field: def.Field("Path")}},
		},
		Serialization: plan.Serialization{DualDecode: true},
	}

	_, content := generate(t, p)

	// No prefix and one part: the field value is the key.
	assert.Contains(t, content, "return NewDocKey(v.Path)")
	assert.NotContains(t, content, "kv.Compose")
}

func TestGenerator_CompatMode(t *testing.T) {
	def := structDef("Profile",
		analyze.FieldDef{Name: "Handle", TypeExpr: "string", Render: analyze.RenderString},
	)

	p := &plan.Plan{
		Model: &schema.Model{
			Def:       def,
			Container: schema.ContainerAttrs{Separator: "::", SerdeCompat: true},
		},
		Key: plan.KeySpec{
			Strategy:  plan.StrategySingleField,
			Separator: "::",
			Parts:     []plan.KeyPart{{Field: def.Field("Handle")}},
		},
		Serialization: plan.Serialization{Compat: true, DualDecode: true},
	}

	_, content := generate(t, p)

	assert.Contains(t, content, "codec.Encode(codec.ModeCompat, v)")
	assert.Contains(t, content, "codec.DecodeDual[Profile](codec.ModeCompat, data)")
	assert.Contains(t, content, "trying\n// json first and falling back to cbor")
}

func TestGenerator_FieldTransformCallSite(t *testing.T) {
	def := structDef("Event",
		analyze.FieldDef{Name: "At", TypeExpr: "time.Time", Render: analyze.RenderNone},
	)

	transform := &schema.TransformDef{
		Name:   "unix_millis",
		Import: "example/store/keys",
		Func:   "UnixMillis",
	}

	p := &plan.Plan{
		Model: &schema.Model{Def: def, Container: schema.ContainerAttrs{Separator: "::"}},
		Key: plan.KeySpec{
			Strategy:  plan.StrategyFieldClosure,
			Separator: "::",
			Parts:     []plan.KeyPart{{Field: def.Field("At"), Transform: transform}},
		},
		Serialization: plan.Serialization{DualDecode: true},
	}

	_, content := generate(t, p)

	assert.Contains(t, content, `"example/store/keys"`)
	assert.Contains(t, content, "keys.UnixMillis(v.At)")
}

func TestGenerator_IndexEntries(t *testing.T) {
	def := structDef("Account",
		analyze.FieldDef{Name: "ID", TypeExpr: "uint64", Render: analyze.RenderUint},
		analyze.FieldDef{Name: "Email", TypeExpr: "string", Render: analyze.RenderString},
		analyze.FieldDef{Name: "Active", TypeExpr: "bool", Render: analyze.RenderBool},
	)

	model := &schema.Model{
		Def:       def,
		Container: schema.ContainerAttrs{Separator: "::"},
		Fields: []schema.FieldModel{
			{Field: def.Field("ID"), Attrs: schema.FieldAttrs{IsKey: true}},
			{Field: def.Field("Email"), Attrs: schema.FieldAttrs{Index: true}},
			{Field: def.Field("Active"), Attrs: schema.FieldAttrs{Index: true}},
		},
	}

	p := &plan.Plan{
		Model: model,
		Key: plan.KeySpec{
			Strategy:  plan.StrategySingleField,
			Separator: "::",
			Parts:     []plan.KeyPart{{Field: def.Field("ID")}},
		},
		Serialization: plan.Serialization{DualDecode: true},
	}

	_, content := generate(t, p)

	assert.Contains(t, content, "func (v Account) IndexEntries() map[string]string")
	assert.Contains(t, content, `"Email": v.Email,`)
	assert.Contains(t, content, `"Active": strconv.FormatBool(v.Active),`)
}

func TestGenerator_VersionConstant(t *testing.T) {
	def := structDef("Invoice",
		analyze.FieldDef{Name: "Number", TypeExpr: "string", Render: analyze.RenderString},
	)

	p := &plan.Plan{
		Model: &schema.Model{
			Def:       def,
			Container: schema.ContainerAttrs{Separator: "::", Version: "3"},
		},
		Key: plan.KeySpec{
			Strategy:  plan.StrategySingleField,
			Separator: "::",
			Parts:     []plan.KeyPart{{Field: def.Field("Number")}},
		},
		Serialization: plan.Serialization{DualDecode: true},
	}

	_, content := generate(t, p)

	assert.Contains(t, content, `const InvoiceSchemaVersion = "3"`)
	// The version never joins the key text.
	assert.Contains(t, content, "return NewInvoiceKey(v.Number)")
}

func TestGenerator_GenericSchema(t *testing.T) {
	def := structDef("Box",
		analyze.FieldDef{Name: "Name", TypeExpr: "string", Render: analyze.RenderString},
		analyze.FieldDef{Name: "Value", TypeExpr: "T", Render: analyze.RenderStringer},
	)
	def.TypeParams = []analyze.TypeParam{
		{
			Name:              "T",
			Constraint:        "fmt.Stringer",
			ConstraintImports: []string{"fmt"},
			Displayable:       true,
		},
	}

	p := &plan.Plan{
		Model: &schema.Model{Def: def, Container: schema.ContainerAttrs{Prefix: "box", Separator: "::"}},
		Key: plan.KeySpec{
			Strategy:  plan.StrategyCompositeFields,
			Prefix:    "box",
			Separator: "::",
			Parts: []plan.KeyPart{
				{Field: def.Field("Name")},
				{Field: def.Field("Value")},
			},
		},
		Serialization: plan.Serialization{DualDecode: true},
	}

	_, content := generate(t, p)

	assert.Contains(t, content, `"fmt"`)
	assert.Contains(t, content, "func (v Box[T]) Key() BoxKey")
	assert.Contains(t, content, `kv.Compose("box", "::", v.Name, v.Value.String())`)
	assert.Contains(t, content, "func DecodeBox[T fmt.Stringer](data []byte) (Box[T], error)")
	assert.Contains(t, content, "codec.DecodeDual[Box[T]](codec.ModeNative, data)")
	assert.Contains(t, content, "func BoxFromRecord[T fmt.Stringer](r record.Record) (Box[T], error)")
	assert.Contains(t, content, "return DecodeBox[T](r.Value)")
}

func TestGenerator_UnionPerVariant(t *testing.T) {
	created := &analyze.SchemaDef{
		ID:      analyze.TypeID{PkgPath: "example/store", Name: "Created"},
		Kind:    analyze.KindVariant,
		PkgName: "store",
		Dir:     "example/store",
		Fields: []analyze.FieldDef{
			{Name: "ID", TypeExpr: "uint64", Render: analyze.RenderUint},
		},
	}
	deleted := &analyze.SchemaDef{
		ID:      analyze.TypeID{PkgPath: "example/store", Name: "Deleted"},
		Kind:    analyze.KindVariant,
		PkgName: "store",
		Dir:     "example/store",
		Fields: []analyze.FieldDef{
			{Name: "Reason", TypeExpr: "string", Render: analyze.RenderString},
		},
	}
	union := &analyze.SchemaDef{
		ID:       analyze.TypeID{PkgPath: "example/store", Name: "Change"},
		Kind:     analyze.KindUnion,
		PkgName:  "store",
		Dir:      "example/store",
		Variants: []*analyze.SchemaDef{created, deleted},
	}

	container := schema.ContainerAttrs{Prefix: "change", Separator: "::"}
	createdModel := &schema.Model{Def: created, Container: container}
	deletedModel := &schema.Model{Def: deleted, Container: container}

	p := &plan.Plan{
		Model: &schema.Model{
			Def:       union,
			Container: container,
			Variants:  []*schema.Model{createdModel, deletedModel},
		},
		Key: plan.KeySpec{
			Strategy:  plan.StrategyPerVariant,
			Prefix:    "change",
			Separator: "::",
			Variants: []plan.VariantKeySpec{
				{Model: createdModel, Spec: plan.KeySpec{
					Strategy:  plan.StrategySingleField,
					Prefix:    "change",
					Separator: "::",
					Parts:     []plan.KeyPart{{Field: created.Field("ID")}},
				}},
				{Model: deletedModel, Spec: plan.KeySpec{
					Strategy:  plan.StrategySingleField,
					Prefix:    "change",
					Separator: "::",
					Parts:     []plan.KeyPart{{Field: deleted.Field("Reason")}},
				}},
			},
		},
		Serialization: plan.Serialization{DualDecode: true},
	}

	file, content := generate(t, p)

	assert.Equal(t, "change_netabase.go", file.Filename)

	assert.Contains(t, content, "func (v Created) Key() ChangeKey")
	assert.Contains(t, content, `kv.Compose("change", "::", strconv.FormatUint(v.ID, 10))`)
	assert.Contains(t, content, "func (v Deleted) Key() ChangeKey")
	assert.Contains(t, content, "func KeyOfChange(v Change) (ChangeKey, error)")
	assert.Contains(t, content, "case Created:\n\t\treturn v.Key(), nil")
	assert.Contains(t, content, "type changeEnvelope struct")
	assert.Contains(t, content, "func EncodeChange(v Change) ([]byte, error)")
	assert.Contains(t, content, `env = changeEnvelope{Variant: "Created", Data: data}`)
	assert.Contains(t, content, "func DecodeChange(data []byte) (Change, error)")
	assert.Contains(t, content, `case "Deleted":`)
	assert.Contains(t, content, "codec.DecodeDual[Deleted](codec.ModeNative, env.Data)")
	assert.Contains(t, content, "func ChangeToRecord(v Change) (record.Record, error)")
	assert.Contains(t, content, "func ChangeFromRecord(r record.Record) (Change, error)")
	assert.Contains(t, content, `fmt.Errorf("unhandled Change variant %T", v)`)
}

func TestGenerator_UnionItemClosure(t *testing.T) {
	variant := &analyze.SchemaDef{
		ID:      analyze.TypeID{PkgPath: "example/store", Name: "Ping"},
		Kind:    analyze.KindVariant,
		PkgName: "store",
		Dir:     "example/store",
	}
	union := &analyze.SchemaDef{
		ID:       analyze.TypeID{PkgPath: "example/store", Name: "Signal"},
		Kind:     analyze.KindUnion,
		PkgName:  "store",
		Dir:      "example/store",
		Variants: []*analyze.SchemaDef{variant},
	}

	transform := &schema.TransformDef{
		Name:   "signal_key",
		Import: "example/store/keys",
		Func:   "SignalKey",
	}

	p := &plan.Plan{
		Model: &schema.Model{
			Def:       union,
			Container: schema.ContainerAttrs{Separator: "::", ItemKeyClosure: "signal_key"},
			Variants:  []*schema.Model{{Def: variant}},
		},
		Key: plan.KeySpec{
			Strategy:      plan.StrategyItemClosure,
			Separator:     "::",
			ItemTransform: transform,
		},
		Serialization: plan.Serialization{DualDecode: true},
	}

	_, content := generate(t, p)

	assert.Contains(t, content, "return NewSignalKey(keys.SignalKey(v)), nil")
	assert.NotContains(t, content, "func (v Ping) Key()")
}

func TestGenerator_GenericUnionRejected(t *testing.T) {
	union := &analyze.SchemaDef{
		ID:      analyze.TypeID{PkgPath: "example/store", Name: "Holder"},
		Kind:    analyze.KindUnion,
		PkgName: "store",
		Dir:     "example/store",
		TypeParams: []analyze.TypeParam{
			{Name: "T", Constraint: "any"},
		},
	}

	p := &plan.Plan{
		Model:         &schema.Model{Def: union, Container: schema.ContainerAttrs{Separator: "::"}},
		Key:           plan.KeySpec{Strategy: plan.StrategyPerVariant, Separator: "::"},
		Serialization: plan.Serialization{DualDecode: true},
	}

	gen := NewGenerator(DefaultConfig())
	_, err := gen.GenerateOne(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "generic unions are not supported")
}

func TestGenerator_GenerateAll(t *testing.T) {
	defA := structDef("Alpha",
		analyze.FieldDef{Name: "ID", TypeExpr: "string", Render: analyze.RenderString},
	)
	defB := structDef("Beta",
		analyze.FieldDef{Name: "ID", TypeExpr: "string", Render: analyze.RenderString},
	)

	mk := func(def *analyze.SchemaDef) *plan.Plan {
		return &plan.Plan{
			Model: &schema.Model{Def: def, Container: schema.ContainerAttrs{Separator: "::"}},
			Key: plan.KeySpec{
				Strategy:  plan.StrategySingleField,
				Separator: "::",
				Parts:     []plan.KeyPart{{Field: def.Field("ID")}},
			},
			Serialization: plan.Serialization{DualDecode: true},
		}
	}

	gen := NewGenerator(DefaultConfig())
	files, err := gen.Generate([]*plan.Plan{mk(defA), mk(defB)})

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "alpha_netabase.go", files[0].Filename)
	assert.Equal(t, "beta_netabase.go", files[1].Filename)
}
