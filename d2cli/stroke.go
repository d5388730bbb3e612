package d2cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/xjson"

	"oss.terrastruct.com/d2paint/d2style"
	"oss.terrastruct.com/d2paint/lib/color"
	"oss.terrastruct.com/d2paint/lib/go2"
	"oss.terrastruct.com/d2paint/lib/xmain"
)

func strokeCmd(ctx context.Context, ms *xmain.State) error {
	colorFlag := ms.Opts.String("", "color", "", "000000", `stroke color as rrggbb or rrggbbaa, or "none" for no stroke`)
	weightFlag, err := ms.Opts.Float64("", "weight", "", 1, "stroke width")
	if err != nil {
		return err
	}
	dashFlag := ms.Opts.String("", "dash", "", "0", "dash lengths separated by commas or spaces")
	dashOffsetFlag, err := ms.Opts.Float64("", "dash-offset", "", 0, "offset into the dash pattern")
	if err != nil {
		return err
	}
	capFlag := ms.Opts.String("", "cap", "", "butt", "line cap: butt, round or square")
	joinFlag := ms.Opts.String("", "join", "", "miter", "line join: miter, bevel or round")
	miterLimitFlag, err := ms.Opts.Float64("", "miter-limit", "", 4, "miter limit for miter joins")
	if err != nil {
		return err
	}
	jsonFlag, err := ms.Opts.Bool("", "json", "", false, "print the stroke as JSON instead of SVG attributes")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		strokeHelp(ms)
		return nil
	}
	if len(ms.Opts.Flags.Args()) > 0 {
		return xmain.UsageErrorf("stroke subcommand accepts no arguments")
	}

	lineCap, err := d2style.ParseLineCap(*capFlag)
	if err != nil {
		return xmain.UsageErrorf("--cap: %v", err)
	}
	lineJoin, err := d2style.ParseLineJoin(*joinFlag)
	if err != nil {
		return xmain.UsageErrorf("--join: %v", err)
	}

	var c *string
	if *colorFlag != color.None {
		c = go2.Pointer(*colorFlag)
	}
	s, err := d2style.DefaultStroke().WithColor(c)
	if err != nil {
		return xmain.UsageErrorf("--color: %v", err)
	}
	s, err = s.WithDashLengths(*dashFlag)
	if err != nil {
		return xmain.UsageErrorf("--dash: %v", err)
	}
	s = s.WithWeight(*weightFlag).
		WithDashOffset(*dashOffsetFlag).
		WithLineCap(lineCap).
		WithLineJoin(lineJoin).
		WithLineJoinMiterLimit(*miterLimitFlag)

	if *jsonFlag {
		_, err = fmt.Fprintf(ms.Stdout, "%s\n", xjson.MarshalIndent(s))
		return err
	}
	_, err = fmt.Fprintln(ms.Stdout, s.Render())
	return err
}
