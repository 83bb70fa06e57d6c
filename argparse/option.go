package argparse

import "github.com/dzonerzy/go-argparse/internal/intern"

// Kind represents the kind of a registered option
type Kind int

const (
	KindParam Kind = iota
	KindFlag
	KindCategory
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindParam:
		return "param"
	case KindFlag:
		return "flag"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Names holds the short and long name of an option.
// A zero Short or an empty Long means the name is not set.
type Names struct {
	Short byte
	Long  string
}

// Short names an option by its short form only, eg. "-a".
func Short(c byte) Names { return Names{Short: c} }

// Long names an option by its long form only, eg. "--opt-a".
func Long(name string) Names { return Names{Long: name} }

// Both names an option by its short and long form, eg. "-a" and "--opt-a".
func Both(c byte, name string) Names { return Names{Short: c, Long: name} }

// option is the descriptor shared by every handle returned for it
type option struct {
	kind  Kind
	short byte
	long  string
	desc  string

	// Value state, written by the parser
	set   bool
	value string // Parameter value, only meaningful when set
}

// Option is a read-only view of a registered option or category.
// Copies of an Option observe the same underlying descriptor.
type Option struct {
	opt *option
}

// Kind returns the option kind. A zero Option reports KindCategory, since
// like a category it carries no names and no value.
func (o Option) Kind() Kind {
	if o.opt == nil {
		return KindCategory
	}
	return o.opt.kind
}

// Short returns the short name, or 0 if none is set.
// A name can be cleared after registration when a newer option shadows it.
func (o Option) Short() byte {
	if o.opt == nil {
		return 0
	}
	return o.opt.short
}

// Long returns the long name, or "" if none is set.
func (o Option) Long() string {
	if o.opt == nil {
		return ""
	}
	return o.opt.long
}

// Description returns the option description, or the label for a category.
func (o Option) Description() string {
	if o.opt == nil {
		return ""
	}
	return o.opt.desc
}

// IsSet reports whether the option was present in the parsed arguments.
func (o Option) IsSet() bool {
	return o.opt != nil && o.opt.set
}

// DisplayName returns the option's names as they appear on the command line:
// "-a", "--opt-a" or "-a, --opt-a". Categories and fully shadowed options
// return "".
func (o Option) DisplayName() string {
	switch {
	case o.opt == nil:
		return ""
	case o.opt.short != 0 && o.opt.long != "":
		return intern.Short(o.opt.short) + ", " + intern.Long(o.opt.long)
	case o.opt.short != 0:
		return intern.Short(o.opt.short)
	case o.opt.long != "":
		return intern.Long(o.opt.long)
	}
	return ""
}

// Flag is a handle to a boolean option
type Flag struct {
	Option
}

// Value reports whether the flag was present. Same as IsSet.
func (f Flag) Value() bool {
	return f.IsSet()
}

// Param is a handle to an option that takes the following argument as its value
type Param struct {
	Option
}

// Value returns the parameter value, or fallback if it was not set.
func (p Param) Value(fallback string) string {
	if !p.IsSet() {
		return fallback
	}
	return p.opt.value
}

// Lookup returns the parameter value and whether it was set.
func (p Param) Lookup() (string, bool) {
	if !p.IsSet() {
		return "", false
	}
	return p.opt.value, true
}
