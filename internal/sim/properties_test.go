package sim_test

import (
	"context"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rollsim/internal/grid"
	"github.com/san-kum/rollsim/internal/sim"
)

func randomGrid(seed int64, w, h int, density float64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := grid.New(w, h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if rng.Float64() < density {
				g.Set(r, c, grid.Active)
			}
		}
	}
	return g
}

func run(g *grid.Grid, mode sim.Mode) *sim.Result {
	result, err := sim.New(g).Run(context.Background(), sim.Config{Mode: mode})
	Expect(err).NotTo(HaveOccurred())
	return result
}

var _ = Describe("Simulator", func() {
	var g *grid.Grid

	BeforeEach(func() {
		g = randomGrid(7, 24, 16, 0.7)
	})

	It("is deterministic", func() {
		a := run(g, sim.MultiRound)
		b := run(g, sim.MultiRound)

		Expect(a.TotalRemoved).To(Equal(b.TotalRemoved))
		Expect(a.Frames.Len()).To(Equal(b.Frames.Len()))
		for i := 0; i < a.Frames.Len(); i++ {
			Expect(a.Frames.At(i).Equal(b.Frames.At(i))).To(BeTrue(), "frame %d differs", i)
		}
	})

	It("stays within the round bound", func() {
		for seed := int64(0); seed < 10; seed++ {
			g := randomGrid(seed, 12, 12, 0.8)
			result := run(g, sim.MultiRound)
			Expect(result.Rounds).To(BeNumerically("<=", sim.MaxRounds(g)))
		}
	})

	It("ends multi-round runs fully settled", func() {
		result := run(g, sim.MultiRound)
		last := result.Frames.Last()

		Expect(last.Count(grid.KindDecaying)).To(BeZero())
		Expect(result.Stats[len(result.Stats)-1].Stuck).To(Equal(sim.StuckLimit))
		Expect(uint64(g.Count(grid.KindActive) - last.Count(grid.KindActive))).To(Equal(result.TotalRemoved))
	})

	It("walks every removed cell through each decay stage in order", func() {
		result := run(g, sim.MultiRound)
		frames := result.Frames.Frames()

		for r := 0; r < g.Height(); r++ {
			for c := 0; c < g.Width(); c++ {
				entered := -1
				for k, f := range frames {
					if f.At(r, c) == grid.Decaying(1) {
						entered = k
						break
					}
				}
				if entered < 0 {
					continue
				}
				for i := 0; i < grid.DecayStages && entered+i < len(frames); i++ {
					Expect(frames[entered+i].At(r, c)).To(Equal(grid.Decaying(1 + i)))
				}
				for k := entered + grid.DecayStages; k < len(frames); k++ {
					Expect(frames[k].At(r, c)).To(Equal(grid.Empty))
				}
			}
		}
	})

	It("never increases the active count", func() {
		result := run(g, sim.MultiRound)
		prev := g.Count(grid.KindActive)
		for _, st := range result.Stats {
			Expect(st.Active).To(BeNumerically("<=", prev))
			Expect(prev - st.Active).To(Equal(st.Removed))
			prev = st.Active
		}
	})

	It("keeps frame snapshots independent of later rounds", func() {
		result := run(g, sim.SingleRound)
		Expect(result.Frames.Len()).To(Equal(2))
		Expect(result.Frames.At(0).Equal(g)).To(BeTrue())
		Expect(result.Frames.At(1).Equal(result.Final)).To(BeTrue())
	})

	Context("on a 3x3 block", func() {
		BeforeEach(func() {
			var err error
			g, err = grid.ParseString("@@@\n@@@\n@@@\n", grid.ParseOptions{})
			Expect(err).NotTo(HaveOccurred())
		})

		It("removes only the corners in a single round", func() {
			result := run(g, sim.SingleRound)
			Expect(result.TotalRemoved).To(Equal(uint64(4)))
			Expect(result.Rounds).To(Equal(1))
		})

		It("cascades further in multi-round mode", func() {
			result := run(g, sim.MultiRound)
			Expect(result.TotalRemoved).To(BeNumerically(">=", 4))
			Expect(result.Stats[len(result.Stats)-1].Stuck).To(Equal(sim.StuckLimit))
		})
	})
})
