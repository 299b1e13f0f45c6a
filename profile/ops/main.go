// Profiling:
// go build ./profile/ops
// go tool pprof -http=":8000" -nodefraction=0.001 ./ops cpu.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/gridlab/cartesian/grid"
)

type payload struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters)
	p.Stop()
}

func run(rounds, iters int) {
	g, err := grid.New[payload]("Profile.Ops", -64, 63, -64, 63)
	if err != nil {
		panic(err)
	}

	b := g.Bounds()
	for r := 0; r < rounds; r++ {
		for it := 0; it < iters; it++ {
			for x := b.MinX; x <= b.MaxX; x++ {
				for y := b.MinY; y <= b.MaxY; y++ {
					if err := g.Add(x, y, payload{V: int64(x), W: int64(y)}); err != nil {
						panic(err)
					}
				}
			}
			for x := b.MinX; x <= b.MaxX; x++ {
				for y := b.MinY; y <= b.MaxY; y++ {
					v, ok, err := g.Get(x, y)
					if err != nil || !ok {
						panic("missing element")
					}
					if _, err := g.Remove(x, y); err != nil {
						panic(err)
					}
					_ = v
				}
			}
		}
	}
}
