package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/typy/nodes"
	"go.starlark.net/starlark"
)

// ToStarlark converts Go values to starlark values. Syntax tree nodes become
// dicts of their exported fields plus a "node" key naming the node type.
// Positions and kinds become their string forms.
func ToStarlark(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case bool:
		return starlark.Bool(v)

	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case uint64:
		return starlark.MakeUint64(v)
	case float64:
		return starlark.Float(v)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = ToStarlark(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), ToStarlark(val))
		}
		return d

	case nodes.Node:
		value := reflect.ValueOf(v)
		if value.Kind() == reflect.Pointer {
			if value.IsNil() {
				return starlark.None
			}
			value = value.Elem()
		}
		d := structToDict(value)
		d.SetKey(starlark.String("node"), starlark.String(value.Type().Name()))
		return d

	case fmt.Stringer:
		return starlark.String(v.String())

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.IsNil() {
			return starlark.NewList(nil)
		}
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = ToStarlark(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				ToStarlark(iter.Key().Interface()),
				ToStarlark(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		return structToDict(value)

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return ToStarlark(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func structToDict(value reflect.Value) *starlark.Dict {
	typ := value.Type()
	d := starlark.NewDict(typ.NumField())
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		d.SetKey(
			starlark.String(field.Name),
			ToStarlark(value.Field(i).Interface()),
		)
	}
	return d
}
