// Package profile defines the primary analyses of ternary scales and their
// configuration.
//
// What:
//
//	– AnalyzeWord:        parse one scale word and report its canonical form,
//	                      chirality, monotone-MOS and MOS-substitution flags,
//	                      maximum variety, simplest lattice-compatible guide
//	                      frame with its unimodular basis, and quasi-parallelogram
//	                      shape.
//	– AnalyzeSignature:   enumerate every scale with a step signature (all
//	                      necklaces, or only MOS substitution scales), filter,
//	                      profile, and sort by the complexity of each scale's
//	                      simplest guide frame.
//	– QuasiParallelogram: the lattice shape of one word on its own.
//
// Options:
//
//	– Mode:      ModeAllNecklaces (default) or ModeMOSSubstitution.
//	– Filters:   monotone-MOS requirements and exact/at-most constraints on
//	             the first guide frame's GS length and complexity and on the
//	             maximum variety. A constraint with Value 0 is off.
//	– Limit:     stop after this many matching scales (0 = no limit).
//	– OnScale:   observer called for every enumerated scale.
//
// Errors (sentinel):
//
//	– ErrInvalidInput       umbrella for every rejected input; errors.Is matches it
//	                        for the sentinels below and for alphabet parse errors.
//	– ErrInvalidSignature   negative counts or a total above MaxScaleLen.
//	– ErrNotTernary         a word with more than three distinct step letters.
//	– ErrScaleTooLong       a word longer than MaxScaleLen.
//	– ErrBadConstraint      option constructors panic with this on negative values
//	                        or unknown constraint modes.
//	– ErrBadMode            option constructors panic with this on unknown modes.
//
// Cancellation: AnalyzeSignature checks its context between scales and
// returns the context error, wrapped, once it is done. AnalyzeWordContext
// and QuasiParallelogramContext check theirs before the guide frame search
// and inside the lattice classification.
//
// Example usage:
//
//	profiles, err := profile.AnalyzeSignature(ctx, [3]int{5, 2, 2},
//	    profile.WithMode(profile.ModeMOSSubstitution),
//	    profile.WithComplexity(profile.Constraint{Value: 2, Mode: profile.AtMost}),
//	)
package profile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ternary/guide"
	"github.com/katalvlaran/ternary/words"
)

// MaxScaleLen bounds the length of every analysed scale.
const MaxScaleLen = 256

var (
	// ErrInvalidInput is the umbrella for every rejected input.
	ErrInvalidInput = errors.New("profile: invalid input")

	// ErrInvalidSignature indicates a step signature with a negative count or a
	// total above MaxScaleLen.
	ErrInvalidSignature = fmt.Errorf("profile: invalid step signature: %w", ErrInvalidInput)

	// ErrNotTernary indicates a word over more than three step letters.
	ErrNotTernary = fmt.Errorf("profile: word is not ternary: %w", ErrInvalidInput)

	// ErrScaleTooLong indicates a word longer than MaxScaleLen.
	ErrScaleTooLong = fmt.Errorf("profile: scale longer than %d: %w", MaxScaleLen, ErrInvalidInput)

	// ErrBadConstraint indicates a negative constraint value or an unknown
	// constraint mode.
	ErrBadConstraint = errors.New("profile: constraint must be non-negative with a known mode")

	// ErrBadMode indicates an unknown enumeration mode.
	ErrBadMode = errors.New("profile: unknown enumeration mode")
)

// Mode selects which scales AnalyzeSignature enumerates.
type Mode int

const (
	// ModeAllNecklaces enumerates every necklace with the signature.
	ModeAllNecklaces Mode = iota

	// ModeMOSSubstitution enumerates only MOS substitution scales.
	ModeMOSSubstitution
)

var modeNames = map[Mode]string{
	ModeAllNecklaces:    "all_necklaces",
	ModeMOSSubstitution: "mos_substitution",
}

// String returns the configuration name of m.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrBadMode)
}

// MarshalText encodes m by name.
func (m Mode) MarshalText() ([]byte, error) {
	if _, ok := modeNames[m]; !ok {
		return nil, fmt.Errorf("Mode(%d): %w", int(m), ErrBadMode)
	}

	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// ConstraintMode says how a Constraint compares.
type ConstraintMode int

const (
	// AtMost accepts values ≤ the constraint value.
	AtMost ConstraintMode = iota

	// Exactly accepts only the constraint value.
	Exactly
)

// String returns "at_most" or "exactly".
func (c ConstraintMode) String() string {
	switch c {
	case AtMost:
		return "at_most"
	case Exactly:
		return "exactly"
	default:
		return fmt.Sprintf("ConstraintMode(%d)", int(c))
	}
}

// MarshalText encodes c by name.
func (c ConstraintMode) MarshalText() ([]byte, error) {
	if c != AtMost && c != Exactly {
		return nil, fmt.Errorf("%v: %w", c, ErrBadConstraint)
	}

	return []byte(c.String()), nil
}

// UnmarshalText accepts "at_most" and "exactly".
func (c *ConstraintMode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "at_most":
		*c = AtMost
	case "exactly":
		*c = Exactly
	default:
		return fmt.Errorf("ConstraintMode(%q): %w", b, ErrBadConstraint)
	}

	return nil
}

// Constraint bounds one integer property. Value 0 disables it.
type Constraint struct {
	Value int            `json:"value" yaml:"value" validate:"gte=0,lte=256"`
	Mode  ConstraintMode `json:"mode" yaml:"mode"`
}

// Off reports whether c is disabled.
func (c Constraint) Off() bool { return c.Value == 0 }

// Allows reports whether x passes c. present is false when the property
// does not exist for the scale (e.g. no guide frame), which fails every
// enabled constraint.
func (c Constraint) Allows(x int, present bool) bool {
	switch {
	case c.Off():
		return true
	case !present:
		return false
	case c.Mode == Exactly:
		return x == c.Value
	default:
		return x <= c.Value
	}
}

func (c Constraint) valid() bool {
	return c.Value >= 0 && (c.Mode == AtMost || c.Mode == Exactly)
}

// Filters select scales during AnalyzeSignature. The zero value keeps
// every scale.
type Filters struct {
	MonotoneLM bool       `json:"monotone_lm" yaml:"monotone_lm"`
	MonotoneMS bool       `json:"monotone_ms" yaml:"monotone_ms"`
	MonotoneS0 bool       `json:"monotone_s0" yaml:"monotone_s0"`
	GSLength   Constraint `json:"gs_length" yaml:"gs_length"`
	Complexity Constraint `json:"complexity" yaml:"complexity"`
	MaxVariety Constraint `json:"max_variety" yaml:"max_variety"`
}

// Match reports whether s passes f. frames must be guide.Frames(s); the GS
// length and complexity constraints look at the first (simplest) frame.
func (f Filters) Match(s words.Word, frames []guide.Frame) bool {
	if f.MonotoneLM && !words.MonotoneLM(s) {
		return false
	}
	if f.MonotoneMS && !words.MonotoneMS(s) {
		return false
	}
	if f.MonotoneS0 && !words.MonotoneS0(s) {
		return false
	}
	var gsLen, complexity int
	if len(frames) > 0 {
		gsLen, complexity = len(frames[0].GS), frames[0].Complexity()
	}
	if !f.GSLength.Allows(gsLen, len(frames) > 0) || !f.Complexity.Allows(complexity, len(frames) > 0) {
		return false
	}
	if !f.MaxVariety.Off() && !f.MaxVariety.Allows(words.MaximumVariety(s), true) {
		return false
	}

	return true
}

// Validate reports whether every constraint in f is well formed.
func (f Filters) Validate() error {
	for _, c := range []Constraint{f.GSLength, f.Complexity, f.MaxVariety} {
		if !c.valid() {
			return fmt.Errorf("Filters %+v: %w", f, ErrBadConstraint)
		}
	}

	return nil
}

// Options configures AnalyzeSignature.
type Options struct {
	Mode    Mode                          // which scales to enumerate
	Filters Filters                       // which scales to keep
	Limit   int                           // stop after this many kept scales; 0 = all
	OnScale func(s words.Word, kept bool) // observer for every enumerated scale
}

// Option represents a functional option for AnalyzeSignature.
type Option func(*Options)

// DefaultOptions enumerates all necklaces and keeps every scale.
func DefaultOptions() Options {
	return Options{Mode: ModeAllNecklaces}
}

// WithMode selects the enumeration. Panics with ErrBadMode on unknown modes.
func WithMode(m Mode) Option {
	if _, ok := modeNames[m]; !ok {
		panic(ErrBadMode.Error())
	}
	return func(o *Options) {
		o.Mode = m
	}
}

// WithFilters replaces all filters at once. Panics with ErrBadConstraint
// if any constraint is malformed.
func WithFilters(f Filters) Option {
	if err := f.Validate(); err != nil {
		panic(ErrBadConstraint.Error())
	}
	return func(o *Options) {
		o.Filters = f
	}
}

// WithMonotone requires the chosen monotone-MOS properties.
func WithMonotone(lm, ms, s0 bool) Option {
	return func(o *Options) {
		o.Filters.MonotoneLM, o.Filters.MonotoneMS, o.Filters.MonotoneS0 = lm, ms, s0
	}
}

// WithGSLength constrains the GS length of the simplest guide frame.
func WithGSLength(c Constraint) Option {
	mustConstraint(c)
	return func(o *Options) {
		o.Filters.GSLength = c
	}
}

// WithComplexity constrains the complexity of the simplest guide frame.
func WithComplexity(c Constraint) Option {
	mustConstraint(c)
	return func(o *Options) {
		o.Filters.Complexity = c
	}
}

// WithMaxVariety constrains the maximum variety.
func WithMaxVariety(c Constraint) Option {
	mustConstraint(c)
	return func(o *Options) {
		o.Filters.MaxVariety = c
	}
}

// WithLimit stops enumeration after n kept scales. Panics on negative n.
func WithLimit(n int) Option {
	if n < 0 {
		panic("profile: WithLimit(negative)")
	}
	return func(o *Options) {
		o.Limit = n
	}
}

// WithOnScale registers an observer called once per enumerated scale,
// kept or not. Panics on nil.
func WithOnScale(fn func(s words.Word, kept bool)) Option {
	if fn == nil {
		panic("profile: WithOnScale(nil)")
	}
	return func(o *Options) {
		o.OnScale = fn
	}
}

func mustConstraint(c Constraint) {
	if !c.valid() {
		panic(ErrBadConstraint.Error())
	}
}
