package integrate_test

import (
	"fmt"

	"github.com/cwbudde/algo-gw/wave/integrate"
)

func ExampleCutoff() {
	f0 := 0.01
	fmt.Println(integrate.Cutoff(f0, 0), integrate.Cutoff(f0, 2), integrate.Cutoff(f0, -4))
	// Output: 0.02 0.01 0.005
}
