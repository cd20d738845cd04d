package gen

// fileTemplate renders one declaration file. Sub-templates are invoked with
// a mapView or a slotView.
const fileTemplate = `// Code generated by certainmap-gen{{with .Source}} from {{.}}{{end}}. DO NOT EDIT.
// digest: {{.Digest}}

package {{.Package}}

import (
{{- if .NeedErrors}}
	"errors"
{{- end}}

	certainmap "{{.CoreImport}}"
{{- range .Imports}}
	{{with .Name}}{{.}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .Maps}}
{{if .Prefilled}}{{template "prefilled" .}}{{else}}{{template "unfilled" .}}{{end}}
{{- end}}
{{- define "prefilled"}}
// {{.Name}} is the storage block of a prefilled certain-map. Obtain a
// handler with Handler.
type {{.Name}} struct {
{{- range .Slots}}
	{{.Name}} certainmap.Cell[{{.Type}}]
{{- end}}
	guard certainmap.Guard
}

// {{.Name}}State is the detached witness of a {{.Name}}Handler.
type {{.Name}}State[{{.Params}}] struct{}

// {{.Name}}Handler is a typed view of a {{.Name}}. Each type parameter
// records whether the slot at that position is occupied.
type {{.Name}}Handler[{{.Params}}] struct {
	inner *{{.Name}}
	epoch uint64
}
{{with .Empty}}
// {{.}} is the handler with every slot vacant.
type {{.}} = {{$.Name}}Handler[{{$.VacantArgs}}]
{{end}}
{{- with .Full}}
// {{.}} is the handler with every slot occupied.
type {{.}} = {{$.Name}}Handler[{{$.FullArgs}}]
{{end}}
// New{{.Name}} returns an empty {{.Name}}.
func New{{.Name}}() *{{.Name}} {
	return &{{.Name}}{}
}

// Handler clears m and returns its root handler.
func (m *{{.Name}}) Handler() {{.Name}}Handler[{{.VacantArgs}}] {
	m.Clear()
	return {{.Name}}Handler[{{.VacantArgs}}]{inner: m, epoch: m.guard.Acquire()}
}

// Clear drops every value held by m and invalidates its handlers.
func (m *{{.Name}}) Clear() {
{{- range .Slots}}
	m.{{.Name}}.Drop()
{{- end}}
	m.guard.Acquire()
}

// Attach binds s to m without checking m's contents. m is normally the
// store returned by the Fork that produced s.
func (s {{.Name}}State[{{.Args}}]) Attach(m *{{.Name}}) {{.Name}}Handler[{{.Args}}] {
	return {{.Name}}Handler[{{.Args}}]{inner: m, epoch: m.guard.Acquire()}
}

// AttachChecked binds s to m after checking that m holds exactly the slots
// s marks occupied. Mismatches match certainmap.ErrStateMismatch.
func (s {{.Name}}State[{{.Args}}]) AttachChecked(m *{{.Name}}) ({{.Name}}Handler[{{.Args}}], error) {
	if err := errors.Join(
{{- range .Slots}}
		certainmap.CheckCell[{{.Param}}]("{{.Name}}", m.{{.Name}}.Live()),
{{- end}}
	); err != nil {
		return {{.Name}}Handler[{{.Args}}]{}, err
	}
	return s.Attach(m), nil
}

// Release drops every occupied value and returns the empty handler.
func (h {{.Name}}Handler[{{.Args}}]) Release() {{.Name}}Handler[{{.VacantArgs}}] {
	epoch := h.inner.guard.Advance(h.epoch)
{{- range .Slots}}
	if certainmap.IsOccupied[{{.Param}}]() {
		h.inner.{{.Name}}.Drop()
	}
{{- end}}
	return {{.Name}}Handler[{{.VacantArgs}}]{inner: h.inner, epoch: epoch}
}
{{if .Fork}}
// Fork copies the occupied values into a new {{.Name}} and returns it with
// a token of the same witness. Bind them with Attach.
func (h {{.Name}}Handler[{{.Args}}]) Fork() (*{{.Name}}, {{.Name}}State[{{.Args}}]) {
	h.inner.guard.Check(h.epoch)
	forked := New{{.Name}}()
{{- range .Slots}}
	if certainmap.IsOccupied[{{.Param}}]() {
		forked.{{.Name}}.Write(h.inner.{{.Name}}.Copy())
	}
{{- end}}
	return forked, {{.Name}}State[{{.Args}}]{}
}
{{end}}
{{- range .Slots}}{{template "prefilledSlot" .}}{{end}}
{{- end}}
{{- define "prefilledSlot"}}
// Set{{.Map}}{{.Export}} stores v in the vacant {{.Name}} slot.
func Set{{.Map}}{{.Export}}{{with .Rest}}[{{.}}]{{end}}(h {{.Map}}Handler[{{.VacantArgs}}], v {{.Type}}) {{.Map}}Handler[{{.FilledArgs}}] {
	epoch := h.inner.guard.Advance(h.epoch)
	h.inner.{{.Name}}.Write(v)
	return {{.Map}}Handler[{{.FilledArgs}}]{inner: h.inner, epoch: epoch}
}

// {{.Map}}{{.Export}} returns a pointer to the value of the occupied {{.Name}} slot.
func {{.Map}}{{.Export}}{{with .Rest}}[{{.}}]{{end}}(h {{.Map}}Handler[{{.FilledArgs}}]) *{{.Type}} {
	h.inner.guard.Check(h.epoch)
	return h.inner.{{.Name}}.Ref()
}
{{if .Clone}}
// {{.Map}}{{.Export}}Value returns a copy of the value of the occupied {{.Name}} slot.
func {{.Map}}{{.Export}}Value{{with .Rest}}[{{.}}]{{end}}(h {{.Map}}Handler[{{.FilledArgs}}]) {{.Type}} {
	h.inner.guard.Check(h.epoch)
	return h.inner.{{.Name}}.Copy()
}
{{end}}
// Take{{.Map}}{{.Export}} moves the value out of the occupied {{.Name}} slot.
func Take{{.Map}}{{.Export}}{{with .Rest}}[{{.}}]{{end}}(h {{.Map}}Handler[{{.FilledArgs}}]) ({{.Map}}Handler[{{.VacantArgs}}], {{.Type}}) {
	epoch := h.inner.guard.Advance(h.epoch)
	return {{.Map}}Handler[{{.VacantArgs}}]{inner: h.inner, epoch: epoch}, h.inner.{{.Name}}.Take()
}

// Remove{{.Export}} empties the {{.Name}} slot, dropping its value if there is one.
func (h {{.Map}}Handler[{{.Args}}]) Remove{{.Export}}() {{.Map}}Handler[{{.VacantArgs}}] {
	epoch := h.inner.guard.Advance(h.epoch)
	if certainmap.IsOccupied[{{.Param}}]() {
		h.inner.{{.Name}}.Drop()
	}
	return {{.Map}}Handler[{{.VacantArgs}}]{inner: h.inner, epoch: epoch}
}

// Replace{{.Export}} stores v in the {{.Name}} slot, dropping the previous value if there is one.
func (h {{.Map}}Handler[{{.Args}}]) Replace{{.Export}}(v {{.Type}}) {{.Map}}Handler[{{.FilledArgs}}] {
	epoch := h.inner.guard.Advance(h.epoch)
	if certainmap.IsOccupied[{{.Param}}]() {
		h.inner.{{.Name}}.Drop()
	}
	h.inner.{{.Name}}.Write(v)
	return {{.Map}}Handler[{{.FilledArgs}}]{inner: h.inner, epoch: epoch}
}

// Maybe{{.Export}} returns a pointer to the value of the {{.Name}} slot, if it is occupied.
func (h {{.Map}}Handler[{{.Args}}]) Maybe{{.Export}}() (*{{.Type}}, bool) {
	h.inner.guard.Check(h.epoch)
	if !certainmap.IsOccupied[{{.Param}}]() {
		return nil, false
	}
	return h.inner.{{.Name}}.Ref(), true
}
{{if .Clone}}
// Maybe{{.Export}}Value returns a copy of the value of the {{.Name}} slot, if it is occupied.
func (h {{.Map}}Handler[{{.Args}}]) Maybe{{.Export}}Value() ({{.Type}}, bool) {
	h.inner.guard.Check(h.epoch)
	if !certainmap.IsOccupied[{{.Param}}]() {
		var zero {{.Type}}
		return zero, false
	}
	return h.inner.{{.Name}}.Copy(), true
}
{{end}}
{{- end}}
{{- define "unfilled"}}
// {{.Name}} is an unfilled-style certain-map. Each type parameter is
// certainmap.Vacant or certainmap.Filled of its slot type, and every
// operation returns a new value. Copies share slot values, so values are
// never dropped; a Dropper is left to the copy that took it.
type {{.Name}}[{{.Params}}] struct {
{{- range .Slots}}
	{{.Name}} {{.Param}}
{{- end}}
}
{{with .Empty}}
// {{.}} is the {{$.Name}} with every slot vacant.
type {{.}} = {{$.Name}}[{{$.VacantArgs}}]
{{end}}
{{- with .Full}}
// {{.}} is the {{$.Name}} with every slot filled.
type {{.}} = {{$.Name}}[{{$.FullArgs}}]
{{end}}
// New{{.Name}} returns an empty {{.Name}}.
func New{{.Name}}() {{.Name}}[{{.VacantArgs}}] {
	return {{.Name}}[{{.VacantArgs}}]{}
}
{{if .Fork}}
// Clone duplicates every filled slot of m.
func (m {{.Name}}[{{.Args}}]) Clone() {{.Name}}[{{.Args}}] {
	return {{.Name}}[{{.Args}}]{
{{- range .Slots}}
		{{.Name}}: certainmap.CloneSlot[{{.Type}}](m.{{.Name}}),
{{- end}}
	}
}
{{end}}
{{- range .Slots}}{{template "unfilledSlot" .}}{{end}}
{{- end}}
{{- define "unfilledSlot"}}
// Set{{.Export}} stores v in the {{.Name}} slot, replacing the previous value if there is one.
func (m {{.Map}}[{{.Args}}]) Set{{.Export}}(v {{.Type}}) {{.Map}}[{{.FilledArgs}}] {
	return {{.Map}}[{{.FilledArgs}}]{
		{{.Name}}: certainmap.Filled[{{.Type}}]{Value: v},
{{- range .Others}}
		{{.}}: m.{{.}},
{{- end}}
	}
}

// Remove{{.Export}} empties the {{.Name}} slot.
func (m {{.Map}}[{{.Args}}]) Remove{{.Export}}() {{.Map}}[{{.VacantArgs}}] {
	return {{.Map}}[{{.VacantArgs}}]{
		{{.Name}}: certainmap.Vacant{},
{{- range .Others}}
		{{.}}: m.{{.}},
{{- end}}
	}
}

// {{.Map}}{{.Export}} returns a pointer to the value of the filled {{.Name}} slot.
func {{.Map}}{{.Export}}{{with .Rest}}[{{.}}]{{end}}(m *{{.Map}}[{{.FilledArgs}}]) *{{.Type}} {
	return &m.{{.Name}}.Value
}
{{if .Clone}}
// {{.Map}}{{.Export}}Value returns a copy of the value of the filled {{.Name}} slot.
func {{.Map}}{{.Export}}Value{{with .Rest}}[{{.}}]{{end}}(m {{.Map}}[{{.FilledArgs}}]) {{.Type}} {
	return certainmap.Dup(m.{{.Name}}.Value)
}
{{end}}
// Take{{.Map}}{{.Export}} moves the value out of the filled {{.Name}} slot.
func Take{{.Map}}{{.Export}}{{with .Rest}}[{{.}}]{{end}}(m {{.Map}}[{{.FilledArgs}}]) ({{.Map}}[{{.VacantArgs}}], {{.Type}}) {
	return {{.Map}}[{{.VacantArgs}}]{
		{{.Name}}: certainmap.Vacant{},
{{- range .Others}}
		{{.}}: m.{{.}},
{{- end}}
	}, m.{{.Name}}.Value
}

// Maybe{{.Export}} returns a pointer to the value of the {{.Name}} slot, if it is filled.
func (m *{{.Map}}[{{.Args}}]) Maybe{{.Export}}() (*{{.Type}}, bool) {
	return certainmap.Lookup[{{.Type}}](&m.{{.Name}})
}
{{if .Clone}}
// Maybe{{.Export}}Value returns a copy of the value of the {{.Name}} slot, if it is filled.
func (m {{.Map}}[{{.Args}}]) Maybe{{.Export}}Value() ({{.Type}}, bool) {
	if p, ok := certainmap.Lookup[{{.Type}}](&m.{{.Name}}); ok {
		return certainmap.Dup(*p), true
	}
	var zero {{.Type}}
	return zero, false
}
{{end}}
{{- end}}
`
