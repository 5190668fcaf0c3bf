package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// copyFields copies same-named fields. Views and responses share field
// types, so a failure is a programming error.
func copyFields(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		panic(fmt.Sprintf("response mapping %T -> %T: %v", src, dst, err))
	}
}
