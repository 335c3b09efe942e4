package cmds

import (
	"fmt"
	"reflect"
)

// Command is a flag or sub command. Its function runs with the following
// arguments decoded to its parameter types; pointer parameters are
// optional and a variadic parameter takes the rest, up to "--".
type Command struct {
	Subs        map[string]*Command
	Description string
	Aliases     []string
	// argument names for usage
	ArgNames []string

	fn       reflect.Value
	decoders []decoder
	optional []bool
	// nil unless variadic
	rest decoder
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) Args(names ...string) *Command {
	c.ArgNames = names
	return c
}

// Func panics if fn is not a function returning nothing or an error, or
// has a parameter that cannot be decoded from an argument.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	fnType := fnValue.Type()
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", fnType.Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value, got %v", fnType))
	}

	command := &Command{
		fn: fnValue,
	}
	numIn := fnType.NumIn()
	if fnType.IsVariadic() {
		numIn--
		dec, err := decoderFor(fnType.In(numIn).Elem())
		if err != nil {
			panic(err)
		}
		command.rest = dec
	}
	for i := range numIn {
		t := fnType.In(i)
		optional := t.Kind() == reflect.Pointer
		dec, err := decoderFor(t)
		if err != nil {
			panic(err)
		}
		command.decoders = append(command.decoders, dec)
		command.optional = append(command.optional, optional)
	}
	return command
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

var errorType = reflect.TypeFor[error]()

// run calls the function with arguments taken from args and returns the
// arguments left.
func (c *Command) run(args []string) ([]string, error) {
	if !c.fn.IsValid() {
		return args, nil
	}
	callArgs := make([]reflect.Value, 0, len(c.decoders))
	for i, dec := range c.decoders {
		if len(args) == 0 {
			if !c.optional[i] {
				return nil, fmt.Errorf("expecting argument %d, got nothing", i+1)
			}
			// pointer to zero
			callArgs = append(callArgs, reflect.New(c.fn.Type().In(i).Elem()))
			continue
		}
		value, err := dec(args[0])
		if err != nil {
			return nil, err
		}
		callArgs = append(callArgs, value)
		args = args[1:]
	}
	if c.rest != nil {
		for len(args) > 0 {
			arg := args[0]
			args = args[1:]
			if arg == "--" {
				break
			}
			value, err := c.rest(arg)
			if err != nil {
				return nil, err
			}
			callArgs = append(callArgs, value)
		}
	}
	rets := c.fn.Call(callArgs)
	if len(rets) > 0 {
		if err, ok := rets[0].Interface().(error); ok && err != nil {
			return nil, err
		}
	}
	return args, nil
}
