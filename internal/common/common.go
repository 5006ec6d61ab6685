// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"
)

// Stringer is implemented by every scratch atom.
type Stringer = fmt.Stringer
