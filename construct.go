package ngexplorer

import (
	"strings"
)

// ConstructType identifies the kind of an Angular construct.
type ConstructType string

// ConstructType constants. TypeAll is only valid as a filter value.
const (
	TypeComponent  ConstructType = "component"
	TypeInjectable ConstructType = "injectable"
	TypeDirective  ConstructType = "directive"
	TypePipe       ConstructType = "pipe"
	TypeModule     ConstructType = "module"
	TypeClass      ConstructType = "class"
	TypeAll        ConstructType = "all"
)

// ConstructTypes lists every construct kind in collection order.
var ConstructTypes = []ConstructType{
	TypeComponent,
	TypeInjectable,
	TypeDirective,
	TypePipe,
	TypeModule,
	TypeClass,
}

// ParseConstructType validates a user-supplied type filter.
// Returns EINVALID for values outside the closed set.
func ParseConstructType(s string) (ConstructType, error) {
	t := ConstructType(s)
	if t == TypeAll {
		return t, nil
	}
	for _, known := range ConstructTypes {
		if t == known {
			return t, nil
		}
	}
	valid := make([]string, 0, len(ConstructTypes)+1)
	for _, known := range ConstructTypes {
		valid = append(valid, string(known))
	}
	valid = append(valid, string(TypeAll))
	return "", Errorf(EINVALID, "Invalid type: %s. Valid types: %s", s, strings.Join(valid, ", "))
}

// Matches reports whether a construct of type c passes filter f.
func (c ConstructType) Matches(f ConstructType) bool {
	return f == TypeAll || f == "" || c == f
}

// roleSuffixes are conventional Angular class name suffixes, checked in order.
var roleSuffixes = []string{"Component", "Directive", "Service", "Pipe", "Module"}

// NormalizeName strips a trailing Angular role suffix from name so that
// "User" matches UserComponent and UserService equally well. The name is
// returned unchanged when no suffix applies or nothing would remain.
func NormalizeName(name string) string {
	for _, suffix := range roleSuffixes {
		if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}

// Construct is a documented Angular code element. Exactly one of the
// kind-specific fields is set, matching Type.
type Construct struct {
	Name               string        `json:"name"`
	ID                 string        `json:"id"`
	File               string        `json:"file"`
	Type               ConstructType `json:"type"`
	Description        string        `json:"description,omitempty"`
	RawDescription     string        `json:"rawdescription,omitempty"`
	Deprecated         bool          `json:"deprecated"`
	DeprecationMessage string        `json:"deprecationMessage,omitempty"`

	Component  *Component  `json:"-"`
	Injectable *Injectable `json:"-"`
	Directive  *Directive  `json:"-"`
	Pipe       *Pipe       `json:"-"`
	Module     *Module     `json:"-"`
	Class      *Class      `json:"-"`
}

// Selector returns the element selector of a component or directive.
func (c *Construct) Selector() string {
	switch {
	case c.Component != nil:
		return c.Component.Selector
	case c.Directive != nil:
		return c.Directive.Selector
	}
	return ""
}

// Label returns the template-facing name of the construct: the selector of
// a component or directive, or the pipe name of a pipe.
func (c *Construct) Label() string {
	if c.Pipe != nil {
		return c.Pipe.PipeName
	}
	return c.Selector()
}

// RelativeFile returns File without a leading "./".
func (c *Construct) RelativeFile() string {
	return strings.TrimPrefix(c.File, "./")
}

// Component holds component-specific metadata.
type Component struct {
	Selector        string
	Standalone      bool
	TemplateURL     []string
	StyleURLs       []string
	ChangeDetection string
	Inputs          []*Property
	Outputs         []*Property
	Properties      []*Property
	Methods         []*Method
	Constructor     *Constructor
	Implements      []string
	Extends         []string
	Providers       []string
	Imports         []string
}

// Injectable holds service-specific metadata.
type Injectable struct {
	Properties  []*Property
	Methods     []*Method
	Constructor *Constructor
	Implements  []string
	Extends     []string
}

// Directive holds directive-specific metadata.
type Directive struct {
	Selector    string
	Standalone  bool
	Inputs      []*Property
	Outputs     []*Property
	Properties  []*Property
	Methods     []*Method
	Constructor *Constructor
	Implements  []string
	Extends     []string
	Providers   []string
}

// Pipe holds pipe-specific metadata.
type Pipe struct {
	PipeName   string
	Pure       bool
	Standalone bool
	Methods    []*Method
	Properties []*Property
}

// Module holds NgModule metadata.
type Module struct {
	Declarations []string
	Imports      []string
	Exports      []string
	Providers    []string
	Bootstrap    []string
}

// Class holds plain class metadata.
type Class struct {
	Properties  []*Property
	Methods     []*Method
	Constructor *Constructor
	Implements  []string
	Extends     []string
}

// Property describes a class property, input or output.
type Property struct {
	Name               string
	Type               string
	DefaultValue       string
	Line               int
	Deprecated         bool
	DeprecationMessage string
	Description        string
	RawDescription     string
}

// Method describes a class method.
type Method struct {
	Name               string
	Args               []*Arg
	ReturnType         string
	Line               int
	Deprecated         bool
	DeprecationMessage string
	Description        string
	RawDescription     string
}

// Arg is a method or constructor argument.
type Arg struct {
	Name       string
	Type       string
	Deprecated bool
}

// Constructor describes constructor dependencies.
type Constructor struct {
	Args        []*Arg
	Line        int
	Description string
}
