package cmds

// Var defines `name <value>`, and `name.` to reset it.
func Var[T any](name string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}))
	return value
}

// Switch defines `name` to turn on and `!name` to turn off.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}))
	Define("!"+name, Func(func() {
		*value = false
	}))
	return value
}

// Collect defines a repeatable `name <v1,v2,...>` appending every value.
func Collect[T any](name string) *[]T {
	values := new([]T)
	Define(name, Func(func(vs []T) {
		*values = append(*values, vs...)
	}))
	return values
}
