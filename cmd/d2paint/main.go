package main

import (
	"oss.terrastruct.com/d2paint/d2cli"
	"oss.terrastruct.com/d2paint/lib/xmain"
)

func main() {
	xmain.Main(d2cli.Run)
}
