package interact_test

import (
	"math"
	"math/cmplx"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/grapher/internal/interact"
	"github.com/san-kum/grapher/internal/plot"
)

var _ = Describe("Controller", func() {
	var (
		frames []*plot.Framebuffer
		c      *interact.Controller
	)

	BeforeEach(func() {
		frames = nil
		sink := interact.ImageWriterFunc(func(_ string, fb *plot.Framebuffer) error {
			cp := plot.NewFramebuffer(fb.Width, fb.Height)
			copy(cp.Pix, fb.Pix)
			frames = append(frames, cp)
			return nil
		})
		d := plot.NewComplexDrawer(func(t float64) complex128 {
			return cmplx.Exp(complex(0, t))
		}, 500, &plot.Window{Min: 0, Max: 2 * math.Pi})
		c = interact.New(plot.NewViewport(40), plot.NewRenderer(d), sink, interact.Options{Output: "a.png"})
	})

	press := func(keys string) {
		for _, k := range keys {
			quit, err := c.Handle(k)
			Expect(err).NotTo(HaveOccurred())
			Expect(quit).To(BeFalse())
		}
	}

	It("returns to the initial view after z, z, r regardless of pans", func() {
		press("zzwwdasr")
		v := c.State()
		Expect(v.Zoom).To(Equal(1.0))
		Expect(v.Center).To(Equal(plot.Point{}))
	})

	It("redraws identical frames for an unchanged viewport", func() {
		press("z?")
		Expect(frames).To(HaveLen(2))
		Expect(frames[0].Equal(frames[1])).To(BeTrue())
	})

	It("grows the circle as it zooms in", func() {
		press("z")
		small := frames[0].Count(plot.Black)
		press("zz")
		Expect(frames[2].Count(plot.Black)).To(BeNumerically(">", small))
	})

	It("overlays the axis on top of the curve", func() {
		press("zzze")
		fb := frames[len(frames)-1]
		for y := 0; y < 40; y++ {
			Expect(fb.RGBAt(20, y)).To(Equal(plot.Black))
		}
		press("e")
		Expect(frames[len(frames)-1].RGBAt(20, 0)).To(Equal(plot.White))
	})

	It("keeps the horizontal axis after panning far along x", func() {
		press("e" + strings.Repeat("x", 40) + "d" + strings.Repeat("z", 40))
		v := c.State()
		Expect(v.Zoom).To(Equal(1.0))
		Expect(v.Center.Y).To(Equal(0.0))
		last := frames[len(frames)-1]
		for x := 0; x < v.Dim; x++ {
			Expect(last.RGBAt(x, v.Dim/2)).To(Equal(plot.Black))
		}
	})

	It("keeps the zoom positive under repeated zoom-out", func() {
		press(strings.Repeat("x", 100))
		Expect(c.State().Zoom).To(BeNumerically(">", 0))
		Expect(c.State().Zoom).To(Equal(plot.MinZoom))
	})

	It("pans a constant number of pixels at any zoom", func() {
		press("zzzd")
		Expect(c.State().Center.X).To(BeNumerically("~", 10.0/8, 1e-12))
		Expect(c.Status()).To(ContainSubstring("ZOOM: 8"))
	})
})
