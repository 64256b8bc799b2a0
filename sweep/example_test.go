package sweep_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/bfield/bar"
	"github.com/katalvlaran/bfield/core"
	"github.com/katalvlaran/bfield/signal"
	"github.com/katalvlaran/bfield/sweep"
)

// ExampleRun wires the full pipeline: sweep the observation azimuth around
// a bar magnet, extract one component as a Signal and hand it to the
// diagnostics. The azimuthal trace of B_z at fixed radius and height is
// periodic, so THD is well defined.
func ExampleRun() {
	g := core.BarGeometry{XHalf: 5e-3, YHalf: 8e-3, ZHalf: 4e-3, Magnetization: 1e6, RelPermeability: 1}
	spec := sweep.Spec{
		Axis:    sweep.AxisPhi,
		Start:   0,
		Stop:    2 * math.Pi * 119 / 120, // one period, endpoint excluded
		Samples: 120,
		Base:    core.CylPoint{R: 2e-2, Z: 1e-2},
	}

	eval := func(p core.CylPoint, _ float64) (core.FieldVector, error) {
		return bar.Evaluate(p.Cart(), g, core.CartPoint{})
	}

	res, err := sweep.Run(context.Background(), spec, eval, sweep.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	bz, _ := res.Component(2)
	fmt.Println("samples:", len(bz))
	fmt.Println("skipped:", len(res.Skipped))
	fmt.Println("peak-to-peak defined:", !signal.IsUndefined(signal.Amplitude(bz)))
	fmt.Println("thd defined:", !signal.IsUndefined(signal.THD(bz)))
	// Output:
	// samples: 120
	// skipped: 0
	// peak-to-peak defined: true
	// thd defined: true
}
