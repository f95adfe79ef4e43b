// README: Tagged context patch (set / clear / no-change) for conversation state.
package convo

// The external store keeps context as strings and cannot represent absence,
// so "" and false act as explicit cleared values at the store boundary. The
// patch types below keep the three states distinct in memory; translation to
// sentinels happens only in Store.Append. The zero value of every field is
// "no change", which is what makes an empty ContextPatch safe to merge.

type patchOp uint8

const (
	opNone patchOp = iota
	opSet
	opClear
)

type StringField struct {
	op    patchOp
	value string
}

func SetString(v string) StringField {
	if v == "" {
		return StringField{op: opClear}
	}
	return StringField{op: opSet, value: v}
}

func ClearString() StringField { return StringField{op: opClear} }

// Apply merges the field into the current value.
func (f StringField) Apply(current string) string {
	switch f.op {
	case opSet:
		return f.value
	case opClear:
		return ""
	}
	return current
}

// StoreValue returns the sentinel to write and whether to write at all.
func (f StringField) StoreValue() (string, bool) {
	switch f.op {
	case opSet:
		return f.value, true
	case opClear:
		return "", true
	}
	return "", false
}

type BoolField struct {
	op    patchOp
	value bool
}

func SetBool(v bool) BoolField {
	if !v {
		return BoolField{op: opClear}
	}
	return BoolField{op: opSet, value: true}
}

func (f BoolField) Apply(current bool) bool {
	switch f.op {
	case opSet:
		return f.value
	case opClear:
		return false
	}
	return current
}

func (f BoolField) StoreValue() (string, bool) {
	switch f.op {
	case opSet:
		return "true", true
	case opClear:
		return "false", true
	}
	return "", false
}

type IntField struct {
	op    patchOp
	value int
}

func SetInt(v int) IntField { return IntField{op: opSet, value: v} }

func ClearInt() IntField { return IntField{op: opClear} }

func (f IntField) Apply(current int) int {
	switch f.op {
	case opSet:
		return f.value
	case opClear:
		return 0
	}
	return current
}

func (f IntField) StoreValue() (int, bool) {
	switch f.op {
	case opSet:
		return f.value, true
	case opClear:
		return 0, true
	}
	return 0, false
}

type StringsField struct {
	op     patchOp
	values []string
}

func SetStrings(vs []string) StringsField {
	if len(vs) == 0 {
		return StringsField{op: opClear}
	}
	return StringsField{op: opSet, values: vs}
}

func (f StringsField) Apply(current []string) []string {
	switch f.op {
	case opSet:
		return f.values
	case opClear:
		return nil
	}
	return current
}

func (f StringsField) StoreValue() ([]string, bool) {
	switch f.op {
	case opSet:
		return f.values, true
	case opClear:
		return nil, true
	}
	return nil, false
}

// ContextPatch describes how one finished turn changes the stored context.
// Every branch that changes search scope must overwrite every field it
// affects, either with a fresh value or an explicit clear; fields left as
// zero values are untouched.
type ContextPatch struct {
	Origin         StringField
	Destination    StringField
	VehicleType    StringField
	BodyType       StringField
	CargoType      StringField
	IsRefrigerated BoolField
	TotalCount     IntField
	Offset         IntField
	ShownCount     IntField
	JobIDs         StringsField
	SwearWarned    BoolField
}

// ApplyTo merges the patch into a context value in memory. The store uses
// the same semantics against its string representation.
func (p ContextPatch) ApplyTo(c Context) Context {
	c.LastOrigin = p.Origin.Apply(c.LastOrigin)
	c.LastDestination = p.Destination.Apply(c.LastDestination)
	c.LastVehicleType = p.VehicleType.Apply(c.LastVehicleType)
	c.LastBodyType = p.BodyType.Apply(c.LastBodyType)
	c.LastCargoType = p.CargoType.Apply(c.LastCargoType)
	c.LastIsRefrigerated = p.IsRefrigerated.Apply(c.LastIsRefrigerated)
	c.LastTotalCount = p.TotalCount.Apply(c.LastTotalCount)
	c.LastOffset = p.Offset.Apply(c.LastOffset)
	c.LastShownCount = p.ShownCount.Apply(c.LastShownCount)
	c.LastJobIDs = p.JobIDs.Apply(c.LastJobIDs)
	c.SwearWarned = p.SwearWarned.Apply(c.SwearWarned)
	return c
}
