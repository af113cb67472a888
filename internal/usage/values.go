package usage

import (
	"fmt"
	"math"
	"strconv"

	"github.com/redactyl/detect-secrets/internal/plugins"
)

// rawValuer is implemented by flag values whose raw form is not a plain
// string, or that must report nil when the flag was never given.
type rawValuer interface {
	Raw() any
}

// optionalString is a string flag that is nil until set.
type optionalString struct {
	set bool
	v   string
}

func (s *optionalString) String() string { return s.v }

func (s *optionalString) Set(v string) error {
	s.v, s.set = v, true
	return nil
}

func (s *optionalString) Type() string { return "string" }

func (s *optionalString) Raw() any {
	if !s.set {
		return nil
	}
	return s.v
}

// stringFromElsewhere is what a bare --string is recorded as by pflag.
const stringFromElsewhere = "-"

// adhocString backs --string: absent is nil, bare is true, and a value is
// the literal string to scan.
type adhocString struct {
	optionalString
}

func (s *adhocString) Raw() any {
	switch {
	case !s.set:
		return nil
	case s.v == stringFromElsewhere:
		return true
	}
	return s.v
}

// limitDefault is what a bare --hex-limit or --base64-limit is recorded as
// by pflag. It leaves the limit unset so the plugin default applies.
const limitDefault = "default"

// limitValue is an entropy limit constrained to [plugins.LimitMin, plugins.LimitMax].
type limitValue struct {
	v *float64
}

func (l *limitValue) String() string {
	if l.v == nil {
		return ""
	}
	return strconv.FormatFloat(*l.v, 'g', -1, 64)
}

func (l *limitValue) Set(s string) error {
	if s == limitDefault {
		l.v = nil
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%s is not a number", s)
	}
	if math.IsNaN(f) || f < plugins.LimitMin || f > plugins.LimitMax {
		return fmt.Errorf("%s must be between %.1f and %.1f", s, plugins.LimitMin, plugins.LimitMax)
	}
	l.v = &f
	return nil
}

func (l *limitValue) Type() string { return "float" }

func (l *limitValue) Raw() any {
	if l.v == nil {
		return nil
	}
	return *l.v
}
