package compodoc

import (
	"encoding/json"

	"github.com/fwojciec/ngexplorer"
)

// document mirrors the parts of documentation.json this tool reads.
// Other top-level keys (interfaces, miscellaneous, routes, coverage) are
// ignored.
// Records stay raw so each one decodes on its own.
type document struct {
	Components  []json.RawMessage `json:"components"`
	Injectables []json.RawMessage `json:"injectables"`
	Directives  []json.RawMessage `json:"directives"`
	Pipes       []json.RawMessage `json:"pipes"`
	Modules     []json.RawMessage `json:"modules"`
	Classes     []json.RawMessage `json:"classes"`
}

// construct is the union of fields Compodoc emits across construct kinds.
type construct struct {
	Name               string `json:"name"`
	ID                 string `json:"id"`
	File               string `json:"file"`
	Type               string `json:"type"`
	Description        string `json:"description"`
	RawDescription     string `json:"rawdescription"`
	Deprecated         bool   `json:"deprecated"`
	DeprecationMessage string `json:"deprecationMessage"`

	Selector        string      `json:"selector"`
	Standalone      bool        `json:"standalone"`
	TemplateURL     stringList  `json:"templateUrl"`
	StyleURLs       stringList  `json:"styleUrls"`
	ChangeDetection string      `json:"changeDetection"`
	InputsClass     []property  `json:"inputsClass"`
	OutputsClass    []property  `json:"outputsClass"`
	PropertiesClass []property  `json:"propertiesClass"`
	MethodsClass    []method    `json:"methodsClass"`
	Properties      []property  `json:"properties"`
	Methods         []method    `json:"methods"`
	ConstructorObj  *ctor       `json:"constructorObj"`
	Implements      stringList  `json:"implements"`
	Extends         stringList  `json:"extends"`
	Providers       []reference `json:"providers"`
	Imports         []reference `json:"imports"`

	PipeName string `json:"pipeName"`
	Pure     *bool  `json:"pure"`

	Declarations []reference `json:"declarations"`
	Exports      []reference `json:"exports"`
	Bootstrap    []reference `json:"bootstrap"`
}

type property struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	DefaultValue       string `json:"defaultValue"`
	Line               int    `json:"line"`
	Deprecated         bool   `json:"deprecated"`
	DeprecationMessage string `json:"deprecationMessage"`
	Description        string `json:"description"`
	RawDescription     string `json:"rawdescription"`
}

type method struct {
	Name               string `json:"name"`
	Args               []arg  `json:"args"`
	ReturnType         string `json:"returnType"`
	Line               int    `json:"line"`
	Deprecated         bool   `json:"deprecated"`
	DeprecationMessage string `json:"deprecationMessage"`
	Description        string `json:"description"`
	RawDescription     string `json:"rawdescription"`
}

type arg struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Deprecated bool   `json:"deprecated"`
}

type ctor struct {
	Args        []arg  `json:"args"`
	Line        int    `json:"line"`
	Description string `json:"description"`
}

type reference struct {
	Name string `json:"name"`
}

// stringList decodes either a single string or an array of strings.
// Compodoc emits "extends" in both shapes depending on version.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*l = nil
		} else {
			*l = stringList{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

// toConstruct converts a decoded record to its tagged domain variant. The
// kind comes from the array the record was read from, never from the
// record itself.
func (c *construct) toConstruct(kind ngexplorer.ConstructType) *ngexplorer.Construct {
	out := &ngexplorer.Construct{
		Name:               c.Name,
		ID:                 c.ID,
		File:               c.File,
		Type:               kind,
		Description:        c.Description,
		RawDescription:     c.RawDescription,
		Deprecated:         c.Deprecated,
		DeprecationMessage: c.DeprecationMessage,
	}

	switch kind {
	case ngexplorer.TypeComponent:
		out.Component = &ngexplorer.Component{
			Selector:        c.Selector,
			Standalone:      c.Standalone,
			TemplateURL:     c.TemplateURL,
			StyleURLs:       c.StyleURLs,
			ChangeDetection: c.ChangeDetection,
			Inputs:          toProperties(c.InputsClass),
			Outputs:         toProperties(c.OutputsClass),
			Properties:      toProperties(c.PropertiesClass),
			Methods:         toMethods(c.MethodsClass),
			Constructor:     c.ConstructorObj.toConstructor(),
			Implements:      c.Implements,
			Extends:         c.Extends,
			Providers:       toNames(c.Providers),
			Imports:         toNames(c.Imports),
		}
	case ngexplorer.TypeInjectable:
		out.Injectable = &ngexplorer.Injectable{
			Properties:  toProperties(c.Properties),
			Methods:     toMethods(c.Methods),
			Constructor: c.ConstructorObj.toConstructor(),
			Implements:  c.Implements,
			Extends:     c.Extends,
		}
	case ngexplorer.TypeDirective:
		out.Directive = &ngexplorer.Directive{
			Selector:    c.Selector,
			Standalone:  c.Standalone,
			Inputs:      toProperties(c.InputsClass),
			Outputs:     toProperties(c.OutputsClass),
			Properties:  toProperties(c.PropertiesClass),
			Methods:     toMethods(c.MethodsClass),
			Constructor: c.ConstructorObj.toConstructor(),
			Implements:  c.Implements,
			Extends:     c.Extends,
			Providers:   toNames(c.Providers),
		}
	case ngexplorer.TypePipe:
		out.Pipe = &ngexplorer.Pipe{
			PipeName:   c.PipeName,
			Pure:       c.Pure == nil || *c.Pure,
			Standalone: c.Standalone,
			Methods:    toMethods(c.Methods),
			Properties: toProperties(c.Properties),
		}
	case ngexplorer.TypeModule:
		out.Module = &ngexplorer.Module{
			Declarations: toNames(c.Declarations),
			Imports:      toNames(c.Imports),
			Exports:      toNames(c.Exports),
			Providers:    toNames(c.Providers),
			Bootstrap:    toNames(c.Bootstrap),
		}
	case ngexplorer.TypeClass:
		out.Class = &ngexplorer.Class{
			Properties:  toProperties(c.Properties),
			Methods:     toMethods(c.Methods),
			Constructor: c.ConstructorObj.toConstructor(),
			Implements:  c.Implements,
			Extends:     c.Extends,
		}
	}
	return out
}

// toConstructs decodes the records of one kind. Records that cannot be
// read even leniently, or that have no name, are counted in skipped.
func toConstructs(records []json.RawMessage, kind ngexplorer.ConstructType) (out []*ngexplorer.Construct, skipped int) {
	out = make([]*ngexplorer.Construct, 0, len(records))
	for _, data := range records {
		c, ok := decodeRecord(data)
		if !ok || c.Name == "" {
			skipped++
			continue
		}
		out = append(out, c.toConstruct(kind))
	}
	return out, skipped
}

// decodeRecord decodes one construct record. A record whose members have
// unexpected types keeps its top-level identity fields and drops the
// rest. Anything other than a JSON object is rejected.
func decodeRecord(data json.RawMessage) (*construct, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, false
	}

	var c construct
	if err := json.Unmarshal(data, &c); err == nil {
		return &c, true
	}

	c = construct{
		Name:               lenientString(fields["name"]),
		ID:                 lenientString(fields["id"]),
		File:               lenientString(fields["file"]),
		Description:        lenientString(fields["description"]),
		RawDescription:     lenientString(fields["rawdescription"]),
		Deprecated:         lenientBool(fields["deprecated"]),
		DeprecationMessage: lenientString(fields["deprecationMessage"]),
		Selector:           lenientString(fields["selector"]),
		PipeName:           lenientString(fields["pipeName"]),
	}
	return &c, true
}

// lenientString returns data as a string, or "" when it is not one.
func lenientString(data json.RawMessage) string {
	var s string
	if len(data) == 0 || json.Unmarshal(data, &s) != nil {
		return ""
	}
	return s
}

// lenientBool returns data as a bool, or false when it is not one.
func lenientBool(data json.RawMessage) bool {
	var b bool
	if len(data) == 0 || json.Unmarshal(data, &b) != nil {
		return false
	}
	return b
}

func toProperties(props []property) []*ngexplorer.Property {
	if len(props) == 0 {
		return nil
	}
	out := make([]*ngexplorer.Property, 0, len(props))
	for _, p := range props {
		out = append(out, &ngexplorer.Property{
			Name:               p.Name,
			Type:               p.Type,
			DefaultValue:       p.DefaultValue,
			Line:               p.Line,
			Deprecated:         p.Deprecated,
			DeprecationMessage: p.DeprecationMessage,
			Description:        p.Description,
			RawDescription:     p.RawDescription,
		})
	}
	return out
}

func toMethods(methods []method) []*ngexplorer.Method {
	if len(methods) == 0 {
		return nil
	}
	out := make([]*ngexplorer.Method, 0, len(methods))
	for _, m := range methods {
		out = append(out, &ngexplorer.Method{
			Name:               m.Name,
			Args:               toArgs(m.Args),
			ReturnType:         m.ReturnType,
			Line:               m.Line,
			Deprecated:         m.Deprecated,
			DeprecationMessage: m.DeprecationMessage,
			Description:        m.Description,
			RawDescription:     m.RawDescription,
		})
	}
	return out
}

func toArgs(args []arg) []*ngexplorer.Arg {
	if len(args) == 0 {
		return nil
	}
	out := make([]*ngexplorer.Arg, 0, len(args))
	for _, a := range args {
		out = append(out, &ngexplorer.Arg{Name: a.Name, Type: a.Type, Deprecated: a.Deprecated})
	}
	return out
}

func (c *ctor) toConstructor() *ngexplorer.Constructor {
	if c == nil {
		return nil
	}
	return &ngexplorer.Constructor{
		Args:        toArgs(c.Args),
		Line:        c.Line,
		Description: c.Description,
	}
}

func toNames(refs []reference) []string {
	if len(refs) == 0 {
		return nil
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}
