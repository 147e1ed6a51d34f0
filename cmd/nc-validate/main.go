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

// Command nc-validate is a command-line interface for validating
// NetCDF files against a NetCDF template.
package main

import (
	"fmt"
	"os"

	"github.com/kerfoot/nc-validate/ncvalidateutil"
)

func main() {
	if err := ncvalidateutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
