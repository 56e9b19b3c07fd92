package params

import (
	"msforge/core/cv"
	"msforge/core/utils"
)

// ParamGroup is a named, shareable bag of parameters.
// Containers hold groups by pointer; a published group must not be mutated.
type ParamGroup struct {
	// ID names the group within its document.
	ID string `json:"id" msgpack:"id"`
	ParamContainer
}

// NewParamGroup creates an empty group with the given id.
func NewParamGroup(id string) *ParamGroup {
	return &ParamGroup{ID: id}
}

// Empty reports whether the group has no id and no parameters.
func (g *ParamGroup) Empty() bool {
	return g.ID == "" && g.ParamContainer.Empty()
}

// ParamContainer holds the annotations of an entity.
//
// Lookups search local CVParams first, then each referenced group in order,
// recursing into nested groups. The first match wins.
type ParamContainer struct {
	// ParamGroups are shared group references.
	ParamGroups []*ParamGroup `json:"param_groups,omitempty" msgpack:"param_groups,omitempty"`
	// CVParams are the local vocabulary annotations.
	CVParams []CVParam `json:"cv_params,omitempty" msgpack:"cv_params,omitempty"`
	// UserParams are the local free-form annotations.
	UserParams []UserParam `json:"user_params,omitempty" msgpack:"user_params,omitempty"`
}

// Empty reports whether the container holds no parameters and no group references.
func (c *ParamContainer) Empty() bool {
	return len(c.ParamGroups) == 0 && len(c.CVParams) == 0 && len(c.UserParams) == 0
}

// Clear drops every parameter and group reference.
func (c *ParamContainer) Clear() {
	c.ParamGroups = nil
	c.CVParams = nil
	c.UserParams = nil
}

// Clone returns a container with copied parameter slices.
// Group references are shared, not copied.
func (c *ParamContainer) Clone() ParamContainer {
	out := ParamContainer{}
	if c.ParamGroups != nil {
		out.ParamGroups = append([]*ParamGroup(nil), c.ParamGroups...)
	}
	if c.CVParams != nil {
		out.CVParams = append([]CVParam(nil), c.CVParams...)
	}
	if c.UserParams != nil {
		out.UserParams = append([]UserParam(nil), c.UserParams...)
	}
	return out
}

// CVParam returns the first parameter carrying id, or an empty CVParam.
func (c *ParamContainer) CVParam(id cv.CVID) CVParam {
	p, _ := c.find(func(p CVParam) bool { return p.CVID == id })
	return p
}

// CVParamChild returns the first parameter whose term is-a parent.
func (c *ParamContainer) CVParamChild(parent cv.CVID) CVParam {
	p, _ := c.find(func(p CVParam) bool { return cv.IsA(p.CVID, parent) })
	return p
}

// CVParamChildren returns every parameter whose term is-a parent, local ones first.
func (c *ParamContainer) CVParamChildren(parent cv.CVID) []CVParam {
	var out []CVParam
	for _, p := range c.CVParams {
		if cv.IsA(p.CVID, parent) {
			out = append(out, p)
		}
	}
	for _, g := range c.ParamGroups {
		if g != nil {
			out = append(out, g.CVParamChildren(parent)...)
		}
	}
	return out
}

// HasCVParam reports whether a parameter with id is reachable.
func (c *ParamContainer) HasCVParam(id cv.CVID) bool {
	_, ok := c.find(func(p CVParam) bool { return p.CVID == id })
	return ok
}

// HasCVParamChild reports whether a parameter whose term is-a parent is reachable.
func (c *ParamContainer) HasCVParamChild(parent cv.CVID) bool {
	_, ok := c.find(func(p CVParam) bool { return cv.IsA(p.CVID, parent) })
	return ok
}

func (c *ParamContainer) find(match func(CVParam) bool) (CVParam, bool) {
	for _, p := range c.CVParams {
		if match(p) {
			return p, true
		}
	}
	for _, g := range c.ParamGroups {
		if g == nil {
			continue
		}
		if p, ok := g.find(match); ok {
			return p, true
		}
	}
	return CVParam{}, false
}

// UserParam returns the first user parameter called name, or an empty UserParam.
func (c *ParamContainer) UserParam(name string) UserParam {
	for _, p := range c.UserParams {
		if p.Name == name {
			return p
		}
	}
	for _, g := range c.ParamGroups {
		if g == nil {
			continue
		}
		if p := g.UserParam(name); !p.Empty() {
			return p
		}
	}
	return UserParam{}
}

// Set updates the first local parameter carrying id, or appends a new one.
// Referenced groups are never modified.
func (c *ParamContainer) Set(id cv.CVID, value any, units ...cv.CVID) {
	p := NewCVParam(id, value, units...)
	for i := range c.CVParams {
		if c.CVParams[i].CVID == id {
			c.CVParams[i] = p
			return
		}
	}
	c.CVParams = append(c.CVParams, p)
}

// SetUserParam updates the first local user parameter called name, or appends one.
func (c *ParamContainer) SetUserParam(name string, value any, typ string) {
	p := UserParam{Name: name, Value: utils.ToString(value), Type: typ}
	for i := range c.UserParams {
		if c.UserParams[i].Name == name {
			c.UserParams[i] = p
			return
		}
	}
	c.UserParams = append(c.UserParams, p)
}

// Add appends CVParams without checking for existing terms.
func (c *ParamContainer) Add(ps ...CVParam) {
	c.CVParams = append(c.CVParams, ps...)
}

// AddUserParam appends a user parameter without checking for existing names.
func (c *ParamContainer) AddUserParam(name string, value any, typ string) {
	c.UserParams = append(c.UserParams, NewUserParam(name, value, typ))
}
