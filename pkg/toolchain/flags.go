package toolchain

// Flags is an ordered collection of compiler flags. Flags preserve
// insertion order so that identical inputs always render to identical
// argument lists. The zero value is not usable; construct with
// NewFlags.
type Flags struct {
	order  []string
	values map[string]flagValue
	raw    []string
}

type flagValue struct {
	values []string
	toggle bool
}

// NewFlags returns an empty flag collection.
func NewFlags() *Flags {
	return &Flags{values: map[string]flagValue{}}
}

// Set associates the given values with a flag, replacing any previous
// ones. Flags keep the position of their first insertion.
func (f *Flags) Set(flag string, values ...string) {
	if _, ok := f.values[flag]; !ok {
		f.order = append(f.order, flag)
	}
	f.values[flag] = flagValue{values: values}
}

// Toggle marks a flag that takes no value.
func (f *Flags) Toggle(flag string) {
	if _, ok := f.values[flag]; !ok {
		f.order = append(f.order, flag)
	}
	f.values[flag] = flagValue{toggle: true}
}

// Raw appends arguments that are passed through to the compiler
// verbatim, after all structured flags.
func (f *Flags) Raw(args ...string) {
	f.raw = append(f.raw, args...)
}

// RawArgs returns the verbatim passthrough arguments.
func (f *Flags) RawArgs() []string {
	return append([]string(nil), f.raw...)
}

// Merge copies every flag from other into f, overriding flags already
// present. Raw arguments are appended.
func (f *Flags) Merge(other *Flags) {
	if other == nil {
		return
	}
	for _, flag := range other.order {
		value := other.values[flag]
		if value.toggle {
			f.Toggle(flag)
		} else {
			f.Set(flag, value.values...)
		}
	}
	f.raw = append(f.raw, other.raw...)
}

// Clone returns an independent copy of the flags. Mutating the copy
// never affects the original, which lets probe attempts start from a
// fresh base flag set every time.
func (f *Flags) Clone() *Flags {
	clone := NewFlags()
	clone.Merge(f)
	return clone
}

// Range calls fn for every flag in insertion order.
func (f *Flags) Range(fn func(flag string, values []string, isToggle bool)) {
	for _, flag := range f.order {
		value := f.values[flag]
		fn(flag, value.values, value.toggle)
	}
}
