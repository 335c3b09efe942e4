package cmds

import (
	"reflect"
	"strings"
)

func argName[T any]() string {
	return strings.ToUpper(reflect.TypeFor[T]().Kind().String())
}

// Var defines name to set the returned value, and name+"." to reset it.
func Var[T any](name string, desc ...string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}).Args(argName[T]()).Desc(strings.Join(desc, " ")))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}).Desc("reset " + name))
	return value
}

// Switch defines name to set the returned value, and "!"+name to clear it.
func Switch(name string, desc ...string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc(strings.Join(desc, " ")))
	Define("!"+name, Func(func() {
		*value = false
	}).Desc("clear " + name))
	return value
}

// Collect defines name to append to the returned slice, and name+"." to
// empty it.
func Collect[T any](name string, desc ...string) *[]T {
	values := new([]T)
	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}).Args(argName[T]()).Desc(strings.Join(desc, " ")))
	Define(name+".", Func(func() {
		*values = nil
	}).Desc("empty " + name))
	return values
}
