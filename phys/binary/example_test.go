package binary_test

import (
	"fmt"

	"github.com/cwbudde/algo-gw/phys/binary"
)

func ExampleQToNu() {
	nu := binary.QToNu(2)
	fmt.Printf("nu=%.4f q=%.4f\n", nu, binary.NuToQ(nu))
	// Output: nu=0.2222 q=2.0000
}
