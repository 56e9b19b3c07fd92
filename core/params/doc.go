// Package params implements the annotation model shared by every measurement entity.
//
// # Parameter Kinds
//
//   - CVParam: a controlled vocabulary term with an optional value and unit.
//   - UserParam: a free-form name/value/type/unit annotation.
//   - ParamGroup: a named bag of parameters shared by pointer between containers.
//
// # Lookup Precedence
//
// ParamContainer lookups search local CVParams first and only then descend into the
// referenced groups, in order. A local parameter therefore always shadows a group
// parameter for the same term. Set only ever touches local parameters.
//
// # Usage
//
//	var pc params.ParamContainer
//	pc.ParamGroups = append(pc.ParamGroups, shared)
//	pc.Set(cv.MSMSLevel, 2)
//	level := pc.CVParam(cv.MSMSLevel).ValueInt()
package params
