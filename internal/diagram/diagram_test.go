package diagram_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vortex/internal/diagram"
	"github.com/san-kum/vortex/internal/geom"
	"github.com/san-kum/vortex/internal/orbit"
)

var quartet = []string{"#264653", "#2a9d8f", "#e9c46a", "#e76f51"}

var _ = Describe("Build", func() {
	Context("with an invalid config", func() {
		DescribeTable("rejects it before computing anything",
			func(cfg diagram.Config, sentinel error, kind diagram.Kind) {
				d, err := diagram.Build(cfg)
				Expect(d).To(BeNil())
				Expect(err).To(MatchError(sentinel))
				Expect(diagram.KindOf(err)).To(Equal(kind))
			},
			Entry("modulus 1", diagram.Config{Multiplier: 2, Modulus: 1, Palette: quartet},
				diagram.ErrInvalidModulus, diagram.InvalidModulus),
			Entry("modulus 0", diagram.Config{Multiplier: 2, Modulus: 0, Palette: quartet},
				diagram.ErrInvalidModulus, diagram.InvalidModulus),
			Entry("negative multiplier", diagram.Config{Multiplier: -3, Modulus: 9, Palette: quartet},
				diagram.ErrInvalidMultiplier, diagram.InvalidMultiplier),
			Entry("nil palette", diagram.Config{Multiplier: 2, Modulus: 9},
				diagram.ErrEmptyPalette, diagram.EmptyPalette),
			Entry("empty palette", diagram.Config{Multiplier: 2, Modulus: 9, Palette: []string{}},
				diagram.ErrEmptyPalette, diagram.EmptyPalette),
		)

		It("reports the offending value", func() {
			_, err := diagram.Build(diagram.Config{Multiplier: 2, Modulus: 1, Palette: quartet})
			var de *diagram.Error
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Value).To(Equal(1))
			Expect(err.Error()).To(ContainSubstring("got 1"))
		})

		It("checks the modulus before the palette", func() {
			_, err := diagram.Build(diagram.Config{Multiplier: 2, Modulus: 1})
			Expect(err).To(MatchError(diagram.ErrInvalidModulus))
		})
	})

	Context("doubling mod 5", func() {
		var d *diagram.Diagram

		BeforeEach(func() {
			var err error
			d, err = diagram.Build(diagram.Config{Multiplier: 2, Modulus: 5, Palette: quartet})
			Expect(err).NotTo(HaveOccurred())
		})

		It("has a single orbit through every residue", func() {
			Expect(d.Orbits).To(Equal([]orbit.Orbit{{1, 2, 4, 3}}))
		})

		It("closes the orbit into four segments", func() {
			Expect(d.Segments).To(HaveLen(4))
			Expect(d.Segments[0].Start).To(Equal(geom.ToPoint(1, 5)))
			Expect(d.Segments[3].End).To(Equal(geom.ToPoint(1, 5)))
		})

		It("keeps buckets inside the palette", func() {
			for _, s := range d.Segments {
				Expect(s.Bucket).To(BeNumerically(">=", 0))
				Expect(s.Bucket).To(BeNumerically("<", len(quartet)))
				Expect(quartet).To(ContainElement(d.Color(s)))
			}
		})

		It("returns one cutoff per colour", func() {
			Expect(d.Cutoffs).To(HaveLen(len(quartet)))
			Expect(d.Cutoffs[0]).To(BeZero())
		})

		It("outlines the circle with the last colour", func() {
			Expect(d.CircleColor()).To(Equal("#e76f51"))
		})
	})

	Context("degenerate diagrams", func() {
		It("draws zero-length segments for the identity multiplier", func() {
			d, err := diagram.Build(diagram.Config{Multiplier: 1, Modulus: 4, Palette: quartet})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Segments).To(HaveLen(3))
			for _, s := range d.Segments {
				Expect(s.Start).To(Equal(s.End))
			}
		})

		It("handles modulus 2", func() {
			d, err := diagram.Build(diagram.Config{Multiplier: 3, Modulus: 2, Palette: quartet})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Orbits).To(Equal([]orbit.Orbit{{1}}))
			Expect(d.Segments).To(HaveLen(1))
			Expect(d.Segments[0].Magnitude()).To(BeZero())
		})

		It("reproduces the zero multiplier", func() {
			d, err := diagram.Build(diagram.Config{Multiplier: 0, Modulus: 6, Palette: quartet})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Orbits).To(HaveLen(5))
			for _, o := range d.Orbits {
				Expect(o).To(HaveLen(2))
				Expect(o[1]).To(Equal(0))
			}
		})

		It("puts everything in bucket 0 with a single colour", func() {
			d, err := diagram.Build(diagram.Config{Multiplier: 7, Modulus: 200, Palette: []string{"#ffffff"}})
			Expect(err).NotTo(HaveOccurred())
			for _, s := range d.Segments {
				Expect(s.Bucket).To(Equal(0))
			}
		})
	})

	It("is deterministic", func() {
		cfg := diagram.Config{Multiplier: 37, Modulus: 1000, Palette: quartet, DrawCircle: true}
		a, err := diagram.Build(cfg)
		Expect(err).NotTo(HaveOccurred())
		b, err := diagram.Build(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("does not alias the caller's palette", func() {
		palette := []string{"#000000", "#ffffff"}
		d, err := diagram.Build(diagram.Config{Multiplier: 2, Modulus: 9, Palette: palette})
		Expect(err).NotTo(HaveOccurred())
		palette[0] = "#ff0000"
		Expect(d.Config.Palette[0]).To(Equal("#000000"))
	})

	It("covers every residue once for coprime multipliers", func() {
		d, err := diagram.Build(diagram.Config{Multiplier: 10, Modulus: 99 * 7, Palette: quartet})
		Expect(err).NotTo(HaveOccurred())
		Expect(d.Segments).To(HaveLen(99*7 - 1))
	})
})

var _ = Describe("Sweep", func() {
	base := diagram.Config{Modulus: 101, Palette: quartet}

	It("builds diagrams in multiplier order", func() {
		ks := []int{2, 3, 5, 7, 11, 13, 17, 19}
		ds, err := diagram.Sweep(context.Background(), base, ks)
		Expect(err).NotTo(HaveOccurred())
		Expect(ds).To(HaveLen(len(ks)))
		for i, d := range ds {
			Expect(d.Config.Multiplier).To(Equal(ks[i]))
			single, err := diagram.Build(d.Config)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(single))
		}
	})

	It("fails on an invalid multiplier", func() {
		_, err := diagram.Sweep(context.Background(), base, []int{2, -1, 3})
		Expect(err).To(MatchError(diagram.ErrInvalidMultiplier))
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := diagram.Sweep(ctx, base, []int{2, 3})
		Expect(err).To(MatchError(context.Canceled))
	})
})
