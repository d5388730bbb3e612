package d2cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xjson"

	"oss.terrastruct.com/d2paint/d2scene"
	"oss.terrastruct.com/d2paint/d2style"
	"oss.terrastruct.com/d2paint/lib/log"
	"oss.terrastruct.com/d2paint/lib/version"
	"oss.terrastruct.com/d2paint/lib/xmain"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	if len(ms.Opts.Args) > 0 && ms.Opts.Args[0] == "stroke" {
		ms.Opts.Args = ms.Opts.Args[1:]
		return strokeCmd(ctx, ms)
	}

	// These should be kept up-to-date with help.go
	viewModeFlag := ms.Opts.String("D2PAINT_VIEW_MODE", "view-mode", "m", "", "override the view mode stored in the scene: normal, outline or pixels")
	watchFlag, err := ms.Opts.Bool("D2PAINT_WATCH", "watch", "w", false, "watch for changes to input and re-render on every change")
	if err != nil {
		return err
	}
	jsonFlag, err := ms.Opts.Bool("", "json", "", false, "write the defs and per shape attributes as JSON instead of an SVG document")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		return err
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if len(ms.Opts.Flags.Args()) > 0 {
		switch ms.Opts.Flags.Arg(0) {
		case "version":
			if len(ms.Opts.Flags.Args()) > 1 {
				return xmain.UsageErrorf("version subcommand accepts no arguments")
			}
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}

	var inputPath string
	var outputPath string

	if len(ms.Opts.Flags.Args()) == 0 {
		if versionFlag != nil && *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	} else if len(ms.Opts.Flags.Args()) >= 3 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	inputPath = ms.Opts.Flags.Arg(0)
	if len(ms.Opts.Flags.Args()) >= 2 {
		outputPath = ms.Opts.Flags.Arg(1)
	} else {
		if inputPath == "-" {
			outputPath = "-"
		} else if *jsonFlag {
			outputPath = renameExt(inputPath, ".attrs.json")
		} else {
			outputPath = renameExt(inputPath, ".svg")
		}
	}

	renderOpts := &d2scene.RenderOpts{}
	if *viewModeFlag != "" {
		mode, err := d2style.ParseViewMode(*viewModeFlag)
		if err != nil {
			return xmain.UsageErrorf("-m[view-mode]: %v", err)
		}
		renderOpts.ViewMode = &mode
	}

	if *watchFlag {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		if outputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with writing output to stdout")
		}
		w, err := newWatcher(ctx, ms, watcherOpts{
			renderOpts: renderOpts,
			json:       *jsonFlag,
			inputPath:  inputPath,
			outputPath: outputPath,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	err = render(ctx, ms, renderOpts, *jsonFlag, inputPath, outputPath)
	if err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully rendered %v to %v", ms.HumanPath(inputPath), ms.HumanPath(outputPath))
	}
	return nil
}

func render(ctx context.Context, ms *xmain.State, opts *d2scene.RenderOpts, asJSON bool, inputPath, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to render %s", ms.HumanPath(inputPath))

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	s, err := d2scene.Parse(input)
	if err != nil {
		return err
	}

	var out []byte
	if asJSON {
		frags, err := d2scene.RenderFragments(ctx, s, opts)
		if err != nil {
			return err
		}
		out = append([]byte(xjson.MarshalIndent(frags)), '\n')
	} else {
		out, err = d2scene.Render(ctx, s, opts)
		if err != nil {
			return err
		}
	}
	return ms.WritePath(outputPath, out)
}

func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
