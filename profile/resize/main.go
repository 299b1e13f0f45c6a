// Profiling:
// go build ./profile/resize
// go tool pprof -http=":8000" -nodefraction=0.001 ./resize mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/gridlab/cartesian/grid"
)

func main() {
	rounds := 50
	iters := 2000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters)
	p.Stop()
}

func run(rounds, iters int) {
	for r := 0; r < rounds; r++ {
		g, err := grid.New[int64]("Profile.Resize", 0, 15, 0, 15)
		if err != nil {
			panic(err)
		}

		for x := 0; x <= 15; x++ {
			for y := 0; y <= 15; y++ {
				if err := g.Add(x, y, int64(x*16+y)); err != nil {
					panic(err)
				}
			}
		}

		for i := 0; i < iters; i++ {
			grow := i%2 == 0
			var err error
			if grow {
				err = g.Resize(-16, 31, -16, 31)
			} else {
				err = g.Resize(0, 15, 0, 15)
			}
			if err != nil {
				panic(err)
			}
		}
	}
}
