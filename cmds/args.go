package cmds

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/intcode/vars"
)

var ErrMissingArgument = errors.New("expecting argument")

func checkArgType(t reflect.Type) error {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return nil
	}
	return fmt.Errorf("unsupported argument type: %v", t)
}

// takeArg consumes the word for one parameter of type t. A pointer parameter
// with no word left is a nil pointer.
func takeArg(t reflect.Type, args []string) (reflect.Value, []string, error) {
	if len(args) == 0 {
		if t.Kind() == reflect.Pointer {
			return reflect.Zero(t), args, nil
		}
		return reflect.Value{}, args, ErrMissingArgument
	}
	v := reflect.New(t).Elem()
	if err := parseArg(v, args[0]); err != nil {
		return reflect.Value{}, args, err
	}
	return v, args[1:], nil
}

func parseArg(v reflect.Value, str string) error {
	switch v.Kind() {

	case reflect.Pointer:
		elem := reflect.New(v.Type().Elem())
		if err := parseArg(elem.Elem(), str); err != nil {
			return err
		}
		v.Set(elem)

	case reflect.Slice:
		// comma separated, same as a program listing
		var parts []string
		for part := range strings.SplitSeq(str, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		slice := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, part := range parts {
			if err := parseArg(slice.Index(i), part); err != nil {
				return err
			}
		}
		v.Set(slice)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(str), 10, v.Type().Bits())
		if err != nil {
			return fmt.Errorf("convert %s to int: %w", str, err)
		}
		v.SetInt(i)

	case reflect.Bool:
		v.SetBool(vars.StrToBool(str))

	case reflect.String:
		v.SetString(str)

	}
	return nil
}
