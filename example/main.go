package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/mgnsk/polyline"
)

// logSink stands in for the globe engine and prints what it would draw.
type logSink struct {
	log *slog.Logger
}

func (s logSink) Submit(_ context.Context, b polyline.Batch) error {
	s.log.Info("draw", "line", b.Name, "segments", len(b.Segments), "material", b.Style.Material.String())
	return nil
}

func (s logSink) Remove(_ context.Context, name string) error {
	s.log.Info("erase", "line", name)
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	layer := polyline.New(polyline.WithLogger(logger))

	route := polyline.NewLine(polyline.ArrowStyle(),
		gg.Pt(116.39, 39.90),
		gg.Pt(121.47, 31.23),
	)

	if err := layer.Add("route", route); err != nil {
		panic(err)
	}

	// Insert a waypoint between the two ends.
	ids := route.IDs()
	if _, ok := route.InsertAfter(ids[0], gg.Pt(117.20, 34.26)); !ok {
		panic("missing route start")
	}

	boundary := polyline.NewLine(polyline.DashedStyle(gg.Red),
		gg.Pt(115, 30),
		gg.Pt(123, 30),
		gg.Pt(123, 41),
	)

	if err := layer.Add("boundary", boundary); err != nil {
		panic(err)
	}

	ctx := context.Background()
	sink := logSink{log: logger}

	if _, err := layer.Flush(ctx, sink); err != nil {
		panic(err)
	}

	// Highlight the second boundary segment.
	if err := layer.SetStyle("boundary", polyline.GlowStyle().With(polyline.WithHighlight(1))); err != nil {
		panic(err)
	}

	if _, err := layer.Flush(ctx, sink); err != nil {
		panic(err)
	}

	logger.Info("route", "points", route.Len(), "length", route.Length())

	layer.Remove("route")

	if _, err := layer.Flush(ctx, sink); err != nil {
		panic(err)
	}
}
