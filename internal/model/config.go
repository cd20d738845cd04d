package model

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	pathpkg "path"
	"regexp"
	"strings"
	"unicode"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid declaration")

// Style selects the expansion strategy of a map.
type Style string

const (
	// Prefilled allocates the storage once and re-types a handler over it on
	// every transition.
	Prefilled Style = "prefilled"
	// Unfilled rebuilds the whole map value on every transition.
	Unfilled Style = "unfilled"
)

// EnsureClone is the only supported slot attribute: the slot gets owned reads.
const EnsureClone = "clone"

// File is one declaration file; it expands into one Go source file.
type File struct {
	Package string       `json:"package" yaml:"package"`
	Output  string       `json:"output,omitempty" yaml:"output,omitempty"`
	Imports []string     `json:"imports,omitempty" yaml:"imports,omitempty"`
	Maps    []*MapConfig `json:"maps" yaml:"maps"`
}

// MapConfig declares one map type.
type MapConfig struct {
	Name  string        `json:"name" yaml:"name"`
	Style Style         `json:"style,omitempty" yaml:"style,omitempty"`
	Empty string        `json:"empty,omitempty" yaml:"empty,omitempty"` // alias for the all-vacant handler
	Full  string        `json:"full,omitempty" yaml:"full,omitempty"`   // alias for the all-occupied handler
	Fork  bool          `json:"fork,omitempty" yaml:"fork,omitempty"`
	Slots []*SlotConfig `json:"slots" yaml:"slots"`
}

// SlotConfig declares one named, typed slot.
type SlotConfig struct {
	Name   string   `json:"name" yaml:"name"`
	Type   string   `json:"type" yaml:"type"`
	Ensure []string `json:"ensure,omitempty" yaml:"ensure,omitempty"`
}

// reservedParam matches the type parameter names used by generated code.
var reservedParam = regexp.MustCompile(`^S[0-9]+$`)

// reservedLocal lists the identifiers generated function bodies declare or
// import; a slot type naming one of them would be shadowed.
var reservedLocal = map[string]struct{}{
	"certainmap": {}, "errors": {}, "epoch": {}, "err": {}, "forked": {},
	"h": {}, "m": {}, "ok": {}, "p": {}, "s": {}, "v": {}, "zero": {},
}

// Validate validates the whole file:
// - Package is an identifier and at least one map is declared
// - Every map validates
// - No generated identifier is produced twice
func (f *File) Validate() error {
	if !isIdent(f.Package) {
		return fmt.Errorf("%w: package name %q is not an identifier", ErrInvalid, f.Package)
	}
	if len(f.Maps) == 0 {
		return fmt.Errorf("%w: no maps declared", ErrInvalid)
	}
	for i, imp := range f.Imports {
		name, path, err := SplitImport(imp)
		if err != nil {
			return fmt.Errorf("import %d: %w", i, err)
		}
		if name == "" {
			name = pathpkg.Base(path)
		}
		if _, ok := reservedLocal[name]; ok {
			return fmt.Errorf("%w: import %q clashes with a generated import", ErrInvalid, imp)
		}
	}

	owner := make(map[string]string)
	for i, m := range f.Maps {
		if m == nil {
			return fmt.Errorf("%w: map %d is empty", ErrInvalid, i)
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("map %q: %w", m.Name, err)
		}
		for _, id := range m.Identifiers() {
			if prev, ok := owner[id]; ok {
				return fmt.Errorf("%w: identifier %q generated by both %q and %q", ErrInvalid, id, prev, m.Name)
			}
			owner[id] = m.Name
		}
	}
	return nil
}

// Validate validates one map declaration.
func (m *MapConfig) Validate() error {
	if !isIdent(m.Name) || m.Name == "_" || reservedParam.MatchString(m.Name) {
		return fmt.Errorf("%w: map name %q is not usable", ErrInvalid, m.Name)
	}
	switch m.Style {
	case "", Prefilled, Unfilled:
	default:
		return fmt.Errorf("%w: unknown style %q", ErrInvalid, m.Style)
	}
	for _, alias := range []string{m.Empty, m.Full} {
		if alias != "" && !isIdent(alias) {
			return fmt.Errorf("%w: alias %q is not an identifier", ErrInvalid, alias)
		}
	}
	if m.Empty != "" && m.Empty == m.Full {
		return fmt.Errorf("%w: empty and full alias are both %q", ErrInvalid, m.Empty)
	}
	if len(m.Slots) == 0 {
		return fmt.Errorf("%w: at least one slot is required", ErrInvalid)
	}

	names := make(map[string]struct{}, len(m.Slots))
	exported := make(map[string]string, len(m.Slots))
	for i, s := range m.Slots {
		if s == nil {
			return fmt.Errorf("%w: slot %d is empty", ErrInvalid, i)
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("slot %d (%s): %w", i, s.Name, err)
		}
		if _, dup := names[s.Name]; dup {
			return fmt.Errorf("%w: duplicate slot %q", ErrInvalid, s.Name)
		}
		names[s.Name] = struct{}{}
		if prev, dup := exported[s.Exported()]; dup {
			return fmt.Errorf("%w: slots %q and %q both export as %q", ErrInvalid, prev, s.Name, s.Exported())
		}
		exported[s.Exported()] = s.Name
	}

	// Prefilled slots become fields of the store, unfilled slots fields of
	// the map value that also carries the per-slot methods.
	members := map[string]struct{}{}
	if m.StyleOrDefault() == Prefilled {
		members = map[string]struct{}{"guard": {}, "Handler": {}, "Clear": {}}
	}
	methods := make(map[string]struct{})
	for _, name := range m.Methods() {
		if _, dup := methods[name]; dup {
			return fmt.Errorf("%w: method %q generated twice", ErrInvalid, name)
		}
		methods[name] = struct{}{}
		if m.StyleOrDefault() == Unfilled {
			members[name] = struct{}{}
		}
	}
	for _, s := range m.Slots {
		if _, clash := members[s.Name]; clash {
			return fmt.Errorf("%w: slot name %q clashes with a generated member", ErrInvalid, s.Name)
		}
	}
	return nil
}

// Validate validates one slot declaration.
func (s *SlotConfig) Validate() error {
	if !isIdent(s.Name) || !isIdent(s.Exported()) {
		return fmt.Errorf("%w: slot name %q is not usable", ErrInvalid, s.Name)
	}
	if strings.TrimSpace(s.Type) == "" {
		return fmt.Errorf("%w: slot type is required", ErrInvalid)
	}
	expr, err := parser.ParseExpr(s.Type)
	if err != nil {
		return fmt.Errorf("%w: slot type %q: %v", ErrInvalid, s.Type, err)
	}
	for _, id := range typeIdents(expr) {
		if _, ok := reservedLocal[id]; ok || reservedParam.MatchString(id) {
			return fmt.Errorf("%w: slot type %q uses reserved identifier %q", ErrInvalid, s.Type, id)
		}
	}
	for _, e := range s.Ensure {
		if !strings.EqualFold(e, EnsureClone) {
			return fmt.Errorf("%w: slot attribute %q not supported, only %q", ErrInvalid, e, EnsureClone)
		}
	}
	return nil
}

// StyleOrDefault returns the map style, Prefilled when unset.
func (m *MapConfig) StyleOrDefault() Style {
	if m.Style == "" {
		return Prefilled
	}
	return m.Style
}

// Cloneable reports whether slot s of m gets owned reads. Fork on a
// prefilled map implies it for every slot.
func (m *MapConfig) Cloneable(s *SlotConfig) bool {
	if m.Fork && m.StyleOrDefault() == Prefilled {
		return true
	}
	return s.EnsuresClone()
}

// Identifiers lists the top-level names the expansion of m declares.
func (m *MapConfig) Identifiers() []string {
	ids := []string{m.Name, "New" + m.Name}
	if m.StyleOrDefault() == Prefilled {
		ids = append(ids, m.Name+"State", m.Name+"Handler")
	}
	if m.Empty != "" {
		ids = append(ids, m.Empty)
	}
	if m.Full != "" {
		ids = append(ids, m.Full)
	}
	for _, s := range m.Slots {
		x := m.Name + s.Exported()
		ids = append(ids, x, "Take"+x)
		if m.StyleOrDefault() == Prefilled {
			ids = append(ids, "Set"+x)
		}
		if m.Cloneable(s) {
			ids = append(ids, x+"Value")
		}
	}
	return ids
}

// Methods lists the method names the expansion of m declares on its handler
// (prefilled) or map value (unfilled).
func (m *MapConfig) Methods() []string {
	var names []string
	switch m.StyleOrDefault() {
	case Prefilled:
		names = append(names, "Release")
		if m.Fork {
			names = append(names, "Fork")
		}
	case Unfilled:
		if m.Fork {
			names = append(names, "Clone")
		}
	}
	for _, s := range m.Slots {
		x := s.Exported()
		names = append(names, "Remove"+x, "Maybe"+x)
		if m.StyleOrDefault() == Prefilled {
			names = append(names, "Replace"+x)
		} else {
			names = append(names, "Set"+x)
		}
		if m.Cloneable(s) {
			names = append(names, "Maybe"+x+"Value")
		}
	}
	return names
}

// EnsuresClone reports whether the slot carries the clone attribute.
func (s *SlotConfig) EnsuresClone() bool {
	for _, e := range s.Ensure {
		if strings.EqualFold(e, EnsureClone) {
			return true
		}
	}
	return false
}

// Exported returns the slot name in exported camel case:
// "raw_before_add" becomes "RawBeforeAdd".
func (s *SlotConfig) Exported() string {
	var b strings.Builder
	upper := true
	for _, r := range s.Name {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitImport splits an import entry of the form `path` or `name path`.
func SplitImport(entry string) (name, path string, err error) {
	fields := strings.Fields(entry)
	switch len(fields) {
	case 1:
		path = fields[0]
	case 2:
		name, path = fields[0], fields[1]
		if !isIdent(name) && name != "_" && name != "." {
			return "", "", fmt.Errorf("%w: import name %q", ErrInvalid, name)
		}
	default:
		return "", "", fmt.Errorf("%w: import %q", ErrInvalid, entry)
	}
	return name, strings.Trim(path, `"`), nil
}

// typeIdents returns the unqualified identifiers a type expression refers to.
func typeIdents(expr ast.Expr) []string {
	var ids []string
	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			// pkg.Type: only the package name resolves in local scope.
			if x, ok := n.X.(*ast.Ident); ok {
				ids = append(ids, x.Name)
			}
			return false
		case *ast.Field:
			// Skip parameter and field names, keep their types.
			ast.Inspect(n.Type, func(c ast.Node) bool {
				if sel, ok := c.(*ast.SelectorExpr); ok {
					if x, ok := sel.X.(*ast.Ident); ok {
						ids = append(ids, x.Name)
					}
					return false
				}
				if id, ok := c.(*ast.Ident); ok {
					ids = append(ids, id.Name)
				}
				return true
			})
			return false
		case *ast.Ident:
			ids = append(ids, n.Name)
		}
		return true
	})
	return ids
}

func isIdent(s string) bool {
	return token.IsIdentifier(s)
}
