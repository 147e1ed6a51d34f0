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

package ncvalidate

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
)

// A DataType is the NetCDF classic-format datatype of a variable.
// Comparison is exact: FLOAT and DOUBLE are not interchangeable.
type DataType int

const (
	Byte DataType = iota + 1
	Char
	Short
	Int
	Float
	Double
)

var dataTypeStrings = [...]string{"", "BYTE", "CHAR", "SHORT", "INT",
	"FLOAT", "DOUBLE"}

func (d DataType) String() string {
	if d < Byte || d > Double {
		return fmt.Sprintf("<%d>", int(d))
	}
	return dataTypeStrings[d]
}

// A Dimension is a named NetCDF dimension and its length.
type Dimension struct {
	Name   string
	Length int
}

// A Variable describes the schema of one NetCDF variable: its
// datatype, the ordered names of the dimensions it is defined over,
// and the names of its attributes.
type Variable struct {
	Name       string
	Type       DataType
	Dimensions []string
	Attributes []string
}

// HasAttribute reports whether the variable has an attribute named att.
func (v *Variable) HasAttribute(att string) bool {
	for _, a := range v.Attributes {
		if a == att {
			return true
		}
	}
	return false
}

// A DataFile is the schema of a NetCDF file: its global attribute
// names, its dimensions, and its variables, each in the order the file
// declares them. It carries no data values.
type DataFile struct {
	// Name identifies the file in reports, typically its path.
	Name string

	GlobalAttributes []string
	Dimensions       []Dimension
	Variables        []Variable
}

// HasGlobalAttribute reports whether the file has a global attribute
// named att.
func (f *DataFile) HasGlobalAttribute(att string) bool {
	for _, a := range f.GlobalAttributes {
		if a == att {
			return true
		}
	}
	return false
}

// HasDimension reports whether the file has a dimension named dim.
func (f *DataFile) HasDimension(dim string) bool {
	for _, d := range f.Dimensions {
		if d.Name == dim {
			return true
		}
	}
	return false
}

// Variable returns the variable named v, or nil if the file has no
// such variable.
func (f *DataFile) Variable(v string) *Variable {
	for i := range f.Variables {
		if f.Variables[i].Name == v {
			return &f.Variables[i]
		}
	}
	return nil
}

// OpenDataFile opens the NetCDF file at path and extracts its schema.
// The file is closed before returning; only the header is read.
func OpenDataFile(path string) (*DataFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cf, err := cdf.Open(f)
	if err != nil {
		return nil, fmt.Errorf("nc-validate: reading NetCDF file %s: %v", path, err)
	}
	return NewDataFile(path, cf), nil
}

// NewDataFile extracts the schema of the open NetCDF file f, using
// name to identify it in reports.
func NewDataFile(name string, f *cdf.File) *DataFile {
	h := f.Header
	d := &DataFile{
		Name:             name,
		GlobalAttributes: h.Attributes(""),
	}
	lengths := h.Lengths("")
	for i, dim := range h.Dimensions("") {
		d.Dimensions = append(d.Dimensions, Dimension{Name: dim, Length: lengths[i]})
	}
	for _, v := range h.Variables() {
		d.Variables = append(d.Variables, Variable{
			Name:       v,
			Type:       dataTypeOf(h.ZeroValue(v, 0)),
			Dimensions: h.Dimensions(v),
			Attributes: h.Attributes(v),
		})
	}
	return d
}

// dataTypeOf maps the dynamic type of a zero value returned by
// cdf.Header.ZeroValue to the corresponding DataType tag.
func dataTypeOf(zero interface{}) DataType {
	switch zero.(type) {
	case []uint8:
		return Byte
	case string:
		return Char
	case []int16:
		return Short
	case []int32:
		return Int
	case []float32:
		return Float
	case []float64:
		return Double
	}
	return 0
}
