package model

// NewMapConfig creates a map declaration with the given name and style.
func NewMapConfig(name string, style Style) *MapConfig {
	return &MapConfig{
		Name:  name,
		Style: style,
	}
}

// WithEmpty sets the alias of the all-vacant handler type.
func (m *MapConfig) WithEmpty(alias string) *MapConfig {
	m.Empty = alias
	return m
}

// WithFull sets the alias of the all-occupied handler type.
func (m *MapConfig) WithFull(alias string) *MapConfig {
	m.Full = alias
	return m
}

// WithFork enables Fork/Attach (prefilled) or Clone (unfilled).
func (m *MapConfig) WithFork() *MapConfig {
	m.Fork = true
	return m
}

// AddSlot appends a slot. Order matters: it fixes the type parameter position.
func (m *MapConfig) AddSlot(name, typ string, ensure ...string) *MapConfig {
	m.Slots = append(m.Slots, &SlotConfig{Name: name, Type: typ, Ensure: ensure})
	return m
}

// NewFile creates a declaration file for package pkg holding maps.
func NewFile(pkg string, maps ...*MapConfig) *File {
	return &File{Package: pkg, Maps: maps}
}

// WithImport adds an import entry (`path` or `name path`).
func (f *File) WithImport(entry string) *File {
	f.Imports = append(f.Imports, entry)
	return f
}

// Find returns the map declaration with the given name.
func (f *File) Find(name string) (*MapConfig, bool) {
	for _, m := range f.Maps {
		if m != nil && m.Name == name {
			return m, true
		}
	}
	return nil, false
}
