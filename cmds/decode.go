package cmds

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type decoder func(arg string) (reflect.Value, error)

func decoderFor(t reflect.Type) (decoder, error) {
	if t.Kind() == reflect.Pointer {
		elem, err := decoderFor(t.Elem())
		if err != nil {
			return nil, err
		}
		return func(arg string) (reflect.Value, error) {
			value, err := elem(arg)
			if err != nil {
				return value, err
			}
			ptr := reflect.New(t.Elem())
			ptr.Elem().Set(value)
			return ptr, nil
		}, nil
	}

	var parse func(string, reflect.Value) error
	switch t.Kind() {

	case reflect.Bool:
		parse = func(arg string, v reflect.Value) error {
			b, err := parseBool(arg)
			v.SetBool(b)
			return err
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parse = func(arg string, v reflect.Value) error {
			n, err := strconv.ParseInt(arg, 10, t.Bits())
			if err != nil {
				return fmt.Errorf("convert %s to int: %w", arg, err)
			}
			v.SetInt(n)
			return nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parse = func(arg string, v reflect.Value) error {
			n, err := strconv.ParseUint(arg, 10, t.Bits())
			if err != nil {
				return fmt.Errorf("convert %s to unsigned int: %w", arg, err)
			}
			v.SetUint(n)
			return nil
		}

	case reflect.Float32, reflect.Float64:
		parse = func(arg string, v reflect.Value) error {
			f, err := strconv.ParseFloat(arg, t.Bits())
			if err != nil {
				return fmt.Errorf("convert %s to float: %w", arg, err)
			}
			v.SetFloat(f)
			return nil
		}

	case reflect.String:
		parse = func(arg string, v reflect.Value) error {
			v.SetString(arg)
			return nil
		}

	default:
		return nil, fmt.Errorf("unsupported argument type: %v", t)
	}

	return func(arg string) (reflect.Value, error) {
		v := reflect.New(t).Elem()
		return v, parse(arg, v)
	}, nil
}

func parseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "1":
		return true, nil
	case "false", "f", "no", "n", "0":
		return false, nil
	}
	return false, fmt.Errorf("convert %s to bool", str)
}
