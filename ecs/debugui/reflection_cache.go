package debugui

import "reflect"

// fieldPath is one editable leaf of a struct, reached through nested struct
// values. Pointer fields are leaves; the inspector follows them when drawn.
type fieldPath struct {
	Name  string
	Index []int
	Type  reflect.Type
}

// fieldCache maps a struct type to its flattened exported leaves. It is only
// touched from the render thread.
type fieldCache map[reflect.Type][]fieldPath

func (c fieldCache) leaves(t reflect.Type) []fieldPath {
	if cached, ok := c[t]; ok {
		return cached
	}

	var out []fieldPath
	if t.Kind() == reflect.Struct {
		out = appendLeaves(out, t, "", nil)
	}
	c[t] = out
	return out
}

func appendLeaves(out []fieldPath, t reflect.Type, prefix string, index []int) []fieldPath {
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Name
		if prefix != "" {
			name = prefix + "." + name
		}
		path := append(append([]int(nil), index...), i)

		if field.Type.Kind() == reflect.Struct {
			out = appendLeaves(out, field.Type, name, path)
			continue
		}
		out = append(out, fieldPath{Name: name, Index: path, Type: field.Type})
	}
	return out
}
