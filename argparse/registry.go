package argparse

import (
	"log/slog"

	"github.com/dzonerzy/go-argparse/internal/intern"
)

// Flag creates a boolean option.
// Either the short or the long name has to be set, and the short name has
// to match [0-9A-Za-z]. A newer option takes over any name it shares with
// an older one (see removeDuplicates).
func (p *Parser) Flag(names Names, desc string) Flag {
	return Flag{Option{p.register(KindFlag, names, desc)}}
}

// Param creates an option that takes the following argument as its value.
// Names follow the same rules as for Flag.
func (p *Parser) Param(names Names, desc string) Param {
	return Param{Option{p.register(KindParam, names, desc)}}
}

// Category adds a label used to group the options registered after it.
// Categories are never matched against arguments.
func (p *Parser) Category(label string) {
	if label == "" {
		panic("argparse: category label cannot be empty")
	}
	p.opts = append(p.opts, &option{kind: KindCategory, desc: label})
	p.logger.Debug("registered category", slog.String("label", label))
}

func (p *Parser) register(kind Kind, names Names, desc string) *option {
	if names.Short == 0 && names.Long == "" {
		panic("argparse: option requires a short or long name")
	}
	if names.Short != 0 && !isShortName(names.Short) {
		panic("argparse: invalid short name " + quoteByte(names.Short) + ", must match [0-9A-Za-z]")
	}

	p.removeDuplicates(names)

	opt := &option{
		kind:  kind,
		short: names.Short,
		long:  names.Long,
		desc:  desc,
	}
	p.opts = append(p.opts, opt)

	p.logger.Debug("registered option",
		slog.String("kind", kind.String()),
		slog.String("name", Option{opt}.DisplayName()))
	return opt
}

// removeDuplicates releases the names an incoming option claims.
// The short and long name are handled independently, each against the first
// non-category option holding it in registration order: an option left
// without any name is removed from the registry, otherwise only the
// contested name is cleared.
func (p *Parser) removeDuplicates(names Names) {
	if names.Short != 0 {
		for i, o := range p.opts {
			if o.kind == KindCategory || o.short != names.Short {
				continue
			}
			if o.long == "" {
				p.removeAt(i)
			} else {
				p.logger.Debug("shadowed short name",
					slog.String("name", intern.Short(o.short)),
					slog.String("kept", intern.Long(o.long)))
				o.short = 0
			}
			break
		}
	}

	if names.Long != "" {
		for i, o := range p.opts {
			if o.kind == KindCategory || o.long != names.Long {
				continue
			}
			if o.short == 0 {
				p.removeAt(i)
			} else {
				p.logger.Debug("shadowed long name",
					slog.String("name", intern.Long(o.long)),
					slog.String("kept", intern.Short(o.short)))
				o.long = ""
			}
			break
		}
	}
}

func (p *Parser) removeAt(i int) {
	p.logger.Debug("removed shadowed option", slog.String("name", Option{p.opts[i]}.DisplayName()))
	// The descriptor stays readable through outstanding handles
	p.opts = append(p.opts[:i], p.opts[i+1:]...)
}

func isShortName(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func quoteByte(c byte) string {
	return "'" + string([]byte{c}) + "'"
}
