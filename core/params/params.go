package params

import (
	"fmt"

	"msforge/core/cv"
	"msforge/core/utils"
)

// CVParam is a controlled vocabulary annotation with an optional value and unit.
type CVParam struct {
	// CVID is the annotated term.
	CVID cv.CVID `json:"cvid" msgpack:"cvid"`
	// Value is the textual value, empty for flag terms.
	Value string `json:"value,omitempty" msgpack:"value,omitempty"`
	// Units is the unit term, Unknown when unitless.
	Units cv.CVID `json:"units,omitempty" msgpack:"units,omitempty"`
}

// NewCVParam builds a CVParam, rendering value with utils.ToString.
func NewCVParam(id cv.CVID, value any, units ...cv.CVID) CVParam {
	p := CVParam{CVID: id, Value: utils.ToString(value)}
	if len(units) > 0 {
		p.Units = units[0]
	}
	return p
}

// Empty reports whether no field is set.
func (p CVParam) Empty() bool {
	return p.CVID == cv.Unknown && p.Value == "" && p.Units == cv.Unknown
}

// Name returns the term name.
func (p CVParam) Name() string { return p.CVID.String() }

// UnitsName returns the unit term name, or "" when unitless.
func (p CVParam) UnitsName() string {
	if p.Units == cv.Unknown {
		return ""
	}
	return p.Units.String()
}

// ValueFloat parses the value as a float, 0 if it is not numeric.
func (p CVParam) ValueFloat() float64 { return utils.ToFloat64(p.Value) }

// ValueInt parses the value as an integer, 0 if it is not numeric.
func (p CVParam) ValueInt() int { return utils.ToInt(p.Value) }

// TimeInSeconds converts a time value carried in seconds or minutes.
// Any other unit yields 0.
func (p CVParam) TimeInSeconds() float64 {
	switch p.Units {
	case cv.UOSecond:
		return p.ValueFloat()
	case cv.UOMinute:
		return p.ValueFloat() * 60
	default:
		return 0
	}
}

func (p CVParam) String() string {
	s := p.Name()
	if p.Value != "" {
		s += ": " + p.Value
	}
	if u := p.UnitsName(); u != "" {
		s += " " + u
	}
	return s
}

// UserParam is a free-form annotation not bound to the vocabulary.
type UserParam struct {
	// Name identifies the annotation.
	Name string `json:"name" msgpack:"name"`
	// Value is the textual value.
	Value string `json:"value,omitempty" msgpack:"value,omitempty"`
	// Type is an optional datatype tag such as "xsd:float".
	Type string `json:"type,omitempty" msgpack:"type,omitempty"`
	// Units is the unit term, Unknown when unitless.
	Units cv.CVID `json:"units,omitempty" msgpack:"units,omitempty"`
}

// NewUserParam builds a UserParam, rendering value with utils.ToString.
func NewUserParam(name string, value any, typ string) UserParam {
	return UserParam{Name: name, Value: utils.ToString(value), Type: typ}
}

// Empty reports whether no field is set.
func (p UserParam) Empty() bool {
	return p.Name == "" && p.Value == "" && p.Type == "" && p.Units == cv.Unknown
}

// ValueFloat parses the value as a float, 0 if it is not numeric.
func (p UserParam) ValueFloat() float64 { return utils.ToFloat64(p.Value) }

func (p UserParam) String() string {
	s := p.Name
	if p.Value != "" {
		s += ": " + p.Value
	}
	if p.Type != "" {
		s += fmt.Sprintf(" (%s)", p.Type)
	}
	if p.Units != cv.Unknown {
		s += " " + p.Units.String()
	}
	return s
}
