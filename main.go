package main

import (
	"github.com/Gtd232/AerfuckyingExtensions/cmd"
	_ "github.com/Gtd232/AerfuckyingExtensions/extensions/pen"
	_ "github.com/Gtd232/AerfuckyingExtensions/extensions/textblocks"
)

var version = "v0.1.0"

func main() {
	cmd.Execute(version)
}
