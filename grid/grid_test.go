package grid

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Grid", func() {

	var g *Grid[string]

	BeforeEach(func() {
		var err error
		g, err = New[string]("Board", 0, 2, 0, 2)
		Expect(err).ToNot(HaveOccurred())
	})

	Context("when newly created", func() {
		It("should have correct name", func() {
			Expect(g.Name()).To(Equal("Board"))
		})

		It("should have a unique instance ID", func() {
			other, err := New[string]("Board", 0, 2, 0, 2)
			Expect(err).ToNot(HaveOccurred())
			Expect(g.ID()).ToNot(BeEmpty())
			Expect(g.ID()).ToNot(Equal(other.ID()))
		})

		It("should cover the requested bounds", func() {
			Expect(g.Bounds()).To(Equal(
				Bounds{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2}))
			Expect(g.Capacity()).To(Equal(9))
		})

		It("should have every cell empty", func() {
			Expect(g.Size()).To(Equal(0))

			for x := 0; x <= 2; x++ {
				for y := 0; y <= 2; y++ {
					_, ok, err := g.Get(x, y)
					Expect(err).ToNot(HaveOccurred())
					Expect(ok).To(BeFalse())
				}
			}
		})
	})

	It("should fail to construct with min greater than max", func() {
		_, err := New[string]("Bad", 2, 1, 0, 0)

		var invalidBounds *InvalidBoundsError
		Expect(errors.As(err, &invalidBounds)).To(BeTrue())
		Expect(invalidBounds.Lost).To(BeNil())
	})

	It("should panic when constructed with a malformed name", func() {
		Expect(func() {
			_, _ = New[string]("bad_name", 0, 1, 0, 1)
		}).To(Panic())
	})

	Context("when adding and getting", func() {
		It("should return what was added", func() {
			Expect(g.Add(1, 1, "A")).To(Succeed())

			v, ok, err := g.Get(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("A"))
			Expect(g.Size()).To(Equal(1))
		})

		It("should overwrite an occupied cell", func() {
			Expect(g.Add(1, 1, "A")).To(Succeed())
			Expect(g.Add(1, 1, "B")).To(Succeed())

			v, ok, err := g.Get(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("B"))
			Expect(g.Size()).To(Equal(1))
		})

		It("should support negative coordinates after construction", func() {
			neg, err := New[string]("Quadrant", -2, 2, -2, 2)
			Expect(err).ToNot(HaveOccurred())

			Expect(neg.Add(-2, -2, "corner")).To(Succeed())

			v, ok, err := neg.Get(-2, -2)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("corner"))
		})
	})

	Context("when coordinates are out of bounds", func() {
		coords := []Coord{
			{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 3, Y: 0}, {X: 0, Y: 3},
		}

		It("should fail to add", func() {
			for _, c := range coords {
				err := g.Add(c.X, c.Y, "A")

				var outOfBounds *OutOfBoundsError
				Expect(errors.As(err, &outOfBounds)).To(BeTrue())
				Expect(outOfBounds.Coord).To(Equal(c))
			}

			Expect(g.Size()).To(Equal(0))
		})

		It("should fail to get", func() {
			for _, c := range coords {
				_, _, err := g.Get(c.X, c.Y)

				var outOfBounds *OutOfBoundsError
				Expect(errors.As(err, &outOfBounds)).To(BeTrue())
			}
		})

		It("should fail to remove", func() {
			for _, c := range coords {
				_, err := g.Remove(c.X, c.Y)

				var outOfBounds *OutOfBoundsError
				Expect(errors.As(err, &outOfBounds)).To(BeTrue())
			}
		})

		It("should fail even when the grid is occupied", func() {
			Expect(g.Add(1, 1, "A")).To(Succeed())

			_, _, err := g.Get(3, 3)
			var outOfBounds *OutOfBoundsError
			Expect(errors.As(err, &outOfBounds)).To(BeTrue())
		})
	})

	Context("when removing", func() {
		It("should empty an occupied cell and report true", func() {
			Expect(g.Add(1, 1, "A")).To(Succeed())

			removed, err := g.Remove(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeTrue())

			_, ok, err := g.Get(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeFalse())
			Expect(g.Size()).To(Equal(0))
		})

		It("should report false on an already empty cell", func() {
			removed, err := g.Remove(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(removed).To(BeFalse())
		})
	})

	Context("when clearing", func() {
		BeforeEach(func() {
			Expect(g.Add(0, 0, "A")).To(Succeed())
			Expect(g.Add(2, 2, "B")).To(Succeed())
			g.Clear()
		})

		It("should empty every cell", func() {
			Expect(g.Size()).To(Equal(0))

			for x := 0; x <= 2; x++ {
				for y := 0; y <= 2; y++ {
					_, ok, err := g.Get(x, y)
					Expect(err).ToNot(HaveOccurred())
					Expect(ok).To(BeFalse())
				}
			}
		})

		It("should preserve the bounds", func() {
			Expect(g.Bounds()).To(Equal(
				Bounds{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2}))
			Expect(g.Capacity()).To(Equal(9))
		})
	})

	Context("when resizing", func() {
		BeforeEach(func() {
			Expect(g.Add(1, 1, "A")).To(Succeed())
		})

		It("should keep elements at their coordinates when growing", func() {
			Expect(g.Resize(-1, 3, -1, 3)).To(Succeed())

			Expect(g.Bounds()).To(Equal(
				Bounds{MinX: -1, MaxX: 3, MinY: -1, MaxY: 3}))

			v, ok, err := g.Get(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("A"))

			_, ok, err = g.Get(-1, -1)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("should shrink as long as occupied cells survive", func() {
			Expect(g.Resize(0, 1, 0, 1)).To(Succeed())

			Expect(g.Capacity()).To(Equal(4))

			v, ok, err := g.Get(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("A"))
		})

		It("should refuse to drop an occupied cell", func() {
			err := g.Resize(0, 0, 0, 0)

			var invalidBounds *InvalidBoundsError
			Expect(errors.As(err, &invalidBounds)).To(BeTrue())
			Expect(invalidBounds.Lost).ToNot(BeNil())
			Expect(*invalidBounds.Lost).To(Equal(Coord{X: 1, Y: 1}))

			Expect(g.Bounds()).To(Equal(
				Bounds{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2}))

			v, ok, getErr := g.Get(1, 1)
			Expect(getErr).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("A"))
		})

		It("should refuse malformed bounds", func() {
			err := g.Resize(3, 0, 0, 2)

			var invalidBounds *InvalidBoundsError
			Expect(errors.As(err, &invalidBounds)).To(BeTrue())
			Expect(invalidBounds.Lost).To(BeNil())

			Expect(g.Bounds()).To(Equal(
				Bounds{MinX: 0, MaxX: 2, MinY: 0, MaxY: 2}))
		})

		It("should grow one axis while shrinking the other", func() {
			Expect(g.Resize(1, 5, 0, 1)).To(Succeed())

			Expect(g.Bounds()).To(Equal(
				Bounds{MinX: 1, MaxX: 5, MinY: 0, MaxY: 1}))

			v, ok, err := g.Get(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("A"))
		})
	})
})
