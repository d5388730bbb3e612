package d2cli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/d2paint/lib/version"
	"oss.terrastruct.com/d2paint/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--view-mode=normal] [--watch=false] [--json=false] scene.json [scene.svg]
  %[1]s stroke [--color=000000] [--weight=1] [--dash=0] [--cap=butt] [--join=miter]

%[1]s renders the styled paths of scene.json to scene.svg.
It defaults to scene.svg if an output path is not provided.

Use - to have %[1]s read from stdin or write to stdout.

Flags:
%[3]s

Subcommands:
  %[1]s stroke - Prints the SVG attributes of a stroke built from flags
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}

func strokeHelp(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %[1]s stroke [flags]

%[1]s stroke prints the SVG stroke attributes of the stroke described by flags.
Dash lengths are separated by commas or spaces, e.g. --dash="4, 2".

Flags:
%[2]s
`, filepath.Base(ms.Name), ms.Opts.Defaults())
}
