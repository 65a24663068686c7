package polyline_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/mgnsk/polyline"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func segmentLine(points ...gg.Point) *polyline.Line {
	if len(points) == 0 {
		points = []gg.Point{gg.Pt(0, 0), gg.Pt(1, 1)}
	}
	return polyline.NewLine(polyline.DefaultStyle(), points...)
}

var _ = Describe("adding lines", func() {
	var layer *polyline.Layer

	BeforeEach(func() {
		layer = polyline.New()
	})

	Specify("names are unique", func() {
		Expect(layer.Add("route", segmentLine())).To(Succeed())

		err := layer.Add("route", segmentLine())
		Expect(err).To(MatchError(polyline.ErrExists))
		Expect(layer.Len()).To(Equal(1))
	})

	Specify("nil lines are rejected", func() {
		Expect(layer.Add("route", nil)).To(MatchError(polyline.ErrNilLine))
		Expect(layer.Len()).To(BeZero())
	})

	Specify("invalid styles are rejected", func() {
		line := polyline.NewLine(polyline.NewStyle(polyline.WithWidth(0)))

		Expect(layer.Add("route", line)).To(MatchError(polyline.ErrInvalidStyle))
		Expect(layer.Len()).To(BeZero())
	})

	Specify("lines are stored by name", func() {
		line := segmentLine()
		Expect(layer.Add("route", line)).To(Succeed())

		got, ok := layer.Line("route")
		Expect(ok).To(BeTrue())
		Expect(got).To(BeIdenticalTo(line))

		_, ok = layer.Line("missing")
		Expect(ok).To(BeFalse())
	})

	Specify("concurrent adds all succeed", func() {
		var wg sync.WaitGroup

		for i := range 50 {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				Expect(layer.Add(fmt.Sprint(i), segmentLine())).To(Succeed())
			}()
		}

		wg.Wait()

		Expect(layer.Len()).To(Equal(50))
		Expect(layer.Names()).To(HaveLen(50))
	})
})

var _ = Describe("draw order", func() {
	var layer *polyline.Layer

	BeforeEach(func() {
		layer = polyline.New()
		for _, name := range []string{"a", "b", "c"} {
			Expect(layer.Add(name, segmentLine())).To(Succeed())
		}
	})

	Specify("new lines are drawn on top", func() {
		Expect(layer.Names()).To(Equal([]string{"a", "b", "c"}))
	})

	Specify("lines can be raised and lowered", func() {
		Expect(layer.Raise("a")).To(BeTrue())
		Expect(layer.Names()).To(Equal([]string{"b", "c", "a"}))

		Expect(layer.Lower("c")).To(BeTrue())
		Expect(layer.Names()).To(Equal([]string{"c", "b", "a"}))

		Expect(layer.Raise("missing")).To(BeFalse())
		Expect(layer.Lower("missing")).To(BeFalse())
	})

	Specify("batches are submitted in draw order", func() {
		layer.Raise("a")

		sink := &recordingSink{}
		n, err := layer.Flush(context.Background(), sink)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(3))
		Expect(sink.names()).To(Equal([]string{"b", "c", "a"}))
	})
})

var _ = Describe("flushing", func() {
	var (
		layer *polyline.Layer
		sink  *recordingSink
		ctx   context.Context
	)

	BeforeEach(func() {
		layer = polyline.New()
		sink = &recordingSink{}
		ctx = context.Background()
	})

	AfterEach(func() {
		layer.Clear()
		Expect(layer.Len()).To(BeZero())
	})

	When("a line changes", func() {
		Specify("it is submitted once", func() {
			line := segmentLine()
			Expect(layer.Add("route", line)).To(Succeed())

			n, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
			Expect(sink.batches[0].Segments).To(Equal(line.Segments()))
			Expect(sink.batches[0].Version).To(Equal(line.Version()))

			n, err = layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())

			line.Append(gg.Pt(2, 2))

			n, err = layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
			Expect(sink.batches).To(HaveLen(2))
			Expect(sink.batches[1].Segments).To(HaveLen(2))
		})
	})

	When("a line has no segments", func() {
		Specify("it is skipped until it has some", func() {
			line := polyline.NewLine(polyline.DefaultStyle(), gg.Pt(0, 0))
			Expect(layer.Add("route", line)).To(Succeed())

			n, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())

			line.Append(gg.Pt(1, 0))

			n, err = layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})

		Specify("it is submitted empty after being drawn", func() {
			line := segmentLine()
			Expect(layer.Add("route", line)).To(Succeed())

			_, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())

			line.Clear()

			n, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
			Expect(sink.batches[1].Segments).To(BeEmpty())
		})
	})

	When("a line is restyled", func() {
		Specify("the new style is submitted", func() {
			Expect(layer.Add("route", segmentLine())).To(Succeed())

			_, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())

			Expect(layer.SetStyle("route", polyline.ArrowStyle())).To(Succeed())
			Expect(layer.SetStyle("missing", polyline.ArrowStyle())).To(MatchError(polyline.ErrNotFound))
			Expect(layer.SetStyle("route", polyline.NewStyle(polyline.WithWidth(-1)))).To(MatchError(polyline.ErrInvalidStyle))

			n, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
			Expect(sink.batches[1].Style.Material).To(Equal(polyline.Arrow))
		})

		Specify("an invalid style set on the line is never submitted", func() {
			Expect(layer.Add("route", segmentLine())).To(Succeed())

			_, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())

			line, ok := layer.Line("route")
			Expect(ok).To(BeTrue())
			Expect(line.SetStyle(polyline.NewStyle(polyline.WithWidth(-5)))).To(MatchError(polyline.ErrInvalidStyle))

			n, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
			Expect(sink.batches).To(HaveLen(1))
			Expect(sink.batches[0].Style.Width).To(Equal(8.0))
		})
	})

	When("a line is removed", func() {
		Specify("the sink drops it if it was drawn", func() {
			Expect(layer.Add("drawn", segmentLine())).To(Succeed())

			_, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())

			Expect(layer.Add("hidden", segmentLine())).To(Succeed())

			Expect(layer.Remove("drawn")).To(BeTrue())
			Expect(layer.Remove("hidden")).To(BeTrue())
			Expect(layer.Remove("hidden")).To(BeFalse())

			n, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
			Expect(sink.removed).To(Equal([]string{"drawn"}))
			Expect(layer.Len()).To(BeZero())
		})

		Specify("a replacement is submitted after the removal", func() {
			Expect(layer.Add("route", segmentLine())).To(Succeed())

			_, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())

			Expect(layer.Remove("route")).To(BeTrue())
			Expect(layer.Add("route", segmentLine(gg.Pt(5, 5), gg.Pt(6, 6)))).To(Succeed())

			sink.reset()

			n, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
			Expect(sink.removed).To(Equal([]string{"route"}))
			Expect(sink.batches[0].Segments[0].From).To(Equal(gg.Pt(5, 5)))
		})

		Specify("a line removed while being submitted is dropped on the next flush", func() {
			Expect(layer.Add("route", segmentLine())).To(Succeed())

			sink.onSubmit = func(b polyline.Batch) {
				Expect(layer.Remove(b.Name)).To(BeTrue())
			}

			n, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
			Expect(sink.removed).To(BeEmpty())
			Expect(layer.Len()).To(BeZero())

			sink.onSubmit = nil

			n, err = layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())
			Expect(sink.removed).To(Equal([]string{"route"}))
		})
	})

	When("the layer is cleared", func() {
		Specify("drawn lines are removed from the sink", func() {
			Expect(layer.Add("a", segmentLine())).To(Succeed())
			Expect(layer.Add("b", segmentLine())).To(Succeed())

			_, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())

			layer.Clear()
			Expect(layer.Names()).To(BeEmpty())

			_, err = layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink.removed).To(ConsistOf("a", "b"))
		})
	})

	When("the sink fails", func() {
		Specify("submissions are retried on the next flush", func() {
			Expect(layer.Add("route", segmentLine())).To(Succeed())

			sink.submitErr = errEngine

			n, err := layer.Flush(ctx, sink)
			Expect(err).To(MatchError(errEngine))
			Expect(n).To(BeZero())

			sink.submitErr = nil

			n, err = layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})

		Specify("removals are retried on the next flush", func() {
			Expect(layer.Add("route", segmentLine())).To(Succeed())

			_, err := layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())

			layer.Remove("route")
			sink.removeErr = errEngine

			_, err = layer.Flush(ctx, sink)
			Expect(err).To(MatchError(errEngine))
			Expect(sink.removed).To(BeEmpty())

			sink.removeErr = nil

			_, err = layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink.removed).To(Equal([]string{"route"}))
		})
	})

	When("the context is canceled", func() {
		Specify("nothing is submitted", func() {
			Expect(layer.Add("route", segmentLine())).To(Succeed())

			canceled, cancel := context.WithCancel(ctx)
			cancel()

			n, err := layer.Flush(canceled, sink)
			Expect(err).To(MatchError(context.Canceled))
			Expect(n).To(BeZero())
			Expect(sink.batches).To(BeEmpty())

			n, err = layer.Flush(ctx, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(1))
		})
	})
})
