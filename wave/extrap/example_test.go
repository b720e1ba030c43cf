package extrap_test

import (
	"fmt"

	"github.com/cwbudde/algo-gw/wave/extrap"
)

func ExampleRichardson() {
	t := []float64{0, 1, 2}
	coarse := extrap.Sample{H: 0.2, Time: t, Values: []float64{1.04, 1.04, 1.04}}
	fine := extrap.Sample{H: 0.1, Time: t, Values: []float64{1.01, 1.01, 1.01}}

	res, err := extrap.Richardson(2, []extrap.Sample{coarse, fine}, 0, false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f %.6f\n", res.Extrapolated[0][0], res.Residuals[0][0])
	// Output: 1.000000 -0.040000
}
