package mvector

import (
	"fmt"
	"strings"
)

// String renders the elements in order as "[e0 e1 e2]", each formatted with
// fmt.Sprint. Empty and nil vectors render as "[]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.Data() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte(']')
	return b.String()
}
