package gen

import (
	"fmt"
	"strings"

	"github.com/ihciah/certain-map/internal/model"
)

// core is the name generated files give the runtime import.
const core = "certainmap"

// fileView is the template data of one generated file.
type fileView struct {
	Source     string
	Digest     string
	Package    string
	CoreImport string
	NeedErrors bool
	Imports    []importView
	Maps       []*mapView
}

type importView struct {
	Name string
	Path string
}

// mapView holds the pre-rendered type argument lists of one map. Templates
// never compute positions themselves.
type mapView struct {
	Name      string
	Empty     string
	Full      string
	Fork      bool
	Prefilled bool

	Params     string // type parameter declarations, e.g. "S0, S1 certainmap.State"
	Args       string // "S0, S1"
	VacantArgs string // every slot vacant
	FullArgs   string // every slot occupied
	Slots      []*slotView
}

type slotView struct {
	Map    string
	Name   string
	Export string
	Type   string
	Param  string
	Clone  bool

	Rest       string   // declarations of every other type parameter, may be empty
	Args       string   // the map's Args
	Others     []string // names of every other slot
	VacantArgs string // Args with this slot vacant
	FilledArgs string // Args with this slot occupied
}

func (g *Generator) buildFile(f *model.File, source, digest string) (*fileView, error) {
	v := &fileView{
		Source:     source,
		Digest:     digest,
		Package:    f.Package,
		CoreImport: g.coreImport,
	}
	for _, entry := range f.Imports {
		name, path, err := model.SplitImport(entry)
		if err != nil {
			return nil, err
		}
		v.Imports = append(v.Imports, importView{Name: name, Path: path})
	}
	for _, m := range f.Maps {
		mv := buildMap(m)
		if mv.Prefilled {
			v.NeedErrors = true
		}
		v.Maps = append(v.Maps, mv)
	}
	return v, nil
}

func buildMap(m *model.MapConfig) *mapView {
	prefilled := m.StyleOrDefault() == model.Prefilled
	n := len(m.Slots)

	params := make([]string, n)
	vacant := make([]string, n)
	filled := make([]string, n)
	constraints := make([]string, n)
	for i, s := range m.Slots {
		params[i] = fmt.Sprintf("S%d", i)
		vacant[i] = core + ".Vacant"
		if prefilled {
			filled[i] = core + ".Occupied"
			constraints[i] = core + ".State"
		} else {
			filled[i] = core + ".Filled[" + s.Type + "]"
			constraints[i] = core + ".Maybe[" + s.Type + "]"
		}
	}

	mv := &mapView{
		Name:       m.Name,
		Empty:      m.Empty,
		Full:       m.Full,
		Fork:       m.Fork,
		Prefilled:  prefilled,
		Params:     declare(params, constraints, -1, prefilled),
		Args:       strings.Join(params, ", "),
		VacantArgs: strings.Join(vacant, ", "),
		FullArgs:   strings.Join(filled, ", "),
	}
	for i, s := range m.Slots {
		var others []string
		for j, o := range m.Slots {
			if j != i {
				others = append(others, o.Name)
			}
		}
		mv.Slots = append(mv.Slots, &slotView{
			Map:        m.Name,
			Name:       s.Name,
			Export:     s.Exported(),
			Type:       s.Type,
			Param:      params[i],
			Clone:      m.Cloneable(s),
			Rest:       declare(params, constraints, i, prefilled),
			Args:       mv.Args,
			Others:     others,
			VacantArgs: strings.Join(replace(params, i, vacant[i]), ", "),
			FilledArgs: strings.Join(replace(params, i, filled[i]), ", "),
		})
	}
	return mv
}

// declare renders a type parameter list, skipping position skip. Prefilled
// parameters share one constraint and are grouped; unfilled ones each carry
// their slot type.
func declare(params, constraints []string, skip int, grouped bool) string {
	var names, decls []string
	for i, p := range params {
		if i == skip {
			continue
		}
		names = append(names, p)
		decls = append(decls, p+" "+constraints[i])
	}
	if len(names) == 0 {
		return ""
	}
	if grouped {
		return strings.Join(names, ", ") + " " + constraints[0]
	}
	return strings.Join(decls, ", ")
}

// replace returns a copy of items with position idx set to item.
func replace(items []string, idx int, item string) []string {
	out := append([]string(nil), items...)
	out[idx] = item
	return out
}
