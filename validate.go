/*
Copyright © 2018 the nc-validate authors.
This file is part of nc-validate.

nc-validate is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

nc-validate is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with nc-validate.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package ncvalidate compares the schema of a NetCDF file against a
// template NetCDF file, reporting required global attributes,
// dimensions, variables, variable datatypes, variable dimension
// orderings, and variable attributes that are missing or mismatched.
// Only metadata is inspected; attribute values and data contents are
// not checked.
package ncvalidate

import (
	"fmt"
	"strings"
)

// Version is the version of this software.
const Version = "2.0.0"

// A DiscrepancyKind classifies a single schema mismatch between a
// template and a candidate file.
type DiscrepancyKind int

const (
	// MissingGlobalAttribute means a global attribute required by the
	// template is absent from the candidate.
	MissingGlobalAttribute DiscrepancyKind = iota
	// MissingDimension means a dimension required by the template is
	// absent from the candidate.
	MissingDimension
	// MissingVariable means a variable required by the template is
	// absent from the candidate.
	MissingVariable
	// DatatypeMismatch means a variable exists in both files but with
	// different datatypes.
	DatatypeMismatch
	// DimensionOrderMismatch means a variable exists in both files but
	// its dimension sequences differ in names, order, or length.
	DimensionOrderMismatch
	// MissingVariableAttribute means a variable attribute required by
	// the template is absent from the candidate's variable.
	MissingVariableAttribute
)

var kindStrings = [...]string{"MissingGlobalAttribute", "MissingDimension",
	"MissingVariable", "DatatypeMismatch", "DimensionOrderMismatch",
	"MissingVariableAttribute"}

func (k DiscrepancyKind) String() string {
	if k < MissingGlobalAttribute || k > MissingVariableAttribute {
		return fmt.Sprintf("<%d>", int(k))
	}
	return kindStrings[k]
}

// Label returns the diagnostic label used when reporting discrepancies
// of kind k: "GlobalAttributeError", "DimensionError", or
// "VariableError".
func (k DiscrepancyKind) Label() string {
	switch k {
	case MissingGlobalAttribute:
		return "GlobalAttributeError"
	case MissingDimension:
		return "DimensionError"
	default:
		return "VariableError"
	}
}

// A Discrepancy is a single recorded mismatch between the template and
// the candidate schema.
type Discrepancy struct {
	Kind DiscrepancyKind

	// Subject is the name of the entity the discrepancy concerns: the
	// global attribute, dimension, or variable name.
	Subject string

	// Detail is a human-readable description of the mismatch.
	Detail string
}

// A Report holds the outcome of validating one candidate file against
// a template.
type Report struct {
	// Valid is true if no discrepancy other than a missing global
	// attribute was found. Missing global attributes are recorded in
	// Discrepancies but do not mark the file invalid; this matches the
	// behavior of the original IOOS Glider DAC validator.
	Valid bool

	// Discrepancies lists every mismatch found, in the order the
	// template declares the entities involved.
	Discrepancies []Discrepancy

	GlobalAttributesMatched  int
	GlobalAttributesRequired int
	DimensionsMatched        int
	DimensionsRequired       int
}

func (r *Report) add(kind DiscrepancyKind, subject, detail string) {
	r.Discrepancies = append(r.Discrepancies, Discrepancy{
		Kind:    kind,
		Subject: subject,
		Detail:  detail,
	})
}

// Validate checks whether candidate conforms to the schema declared by
// template and returns a report of every discrepancy found. It walks
// the template's global attributes, dimensions, and variables in
// declaration order and never stops at the first mismatch. Neither
// argument is modified.
func Validate(template, candidate *DataFile) *Report {
	r := &Report{
		Valid:                    true,
		GlobalAttributesRequired: len(template.GlobalAttributes),
		DimensionsRequired:       len(template.Dimensions),
	}

	for _, att := range template.GlobalAttributes {
		if !candidate.HasGlobalAttribute(att) {
			r.add(MissingGlobalAttribute, att,
				fmt.Sprintf("Missing global attribute: %s", att))
			continue
		}
		r.GlobalAttributesMatched++
	}

	for _, dim := range template.Dimensions {
		if !candidate.HasDimension(dim.Name) {
			r.Valid = false
			r.add(MissingDimension, dim.Name,
				fmt.Sprintf("Missing dimension: %s", dim.Name))
			continue
		}
		r.DimensionsMatched++
	}

	for i := range template.Variables {
		tv := &template.Variables[i]
		cv := candidate.Variable(tv.Name)
		if cv == nil {
			r.Valid = false
			r.add(MissingVariable, tv.Name,
				fmt.Sprintf("Missing variable: %s", tv.Name))
			continue
		}
		if cv.Type != tv.Type {
			r.Valid = false
			r.add(DatatypeMismatch, tv.Name,
				fmt.Sprintf("Incorrect datatype for %s (%s != %s)",
					tv.Name, cv.Type, tv.Type))
		}
		if !sameDimensionOrder(cv.Dimensions, tv.Dimensions) {
			r.Valid = false
			r.add(DimensionOrderMismatch, tv.Name,
				fmt.Sprintf("Incorrect dimensions for %s ((%s) != (%s))",
					tv.Name, strings.Join(cv.Dimensions, ", "),
					strings.Join(tv.Dimensions, ", ")))
		}
		for _, att := range tv.Attributes {
			if !cv.HasAttribute(att) {
				r.Valid = false
				r.add(MissingVariableAttribute, tv.Name,
					fmt.Sprintf("Missing attribute for %s: %s", tv.Name, att))
			}
		}
	}

	return r
}

// sameDimensionOrder reports whether two dimension name sequences are
// identical in length, names, and order.
func sameDimensionOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
