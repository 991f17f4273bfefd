package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/Gtd232/AerfuckyingExtensions/cast"
	"github.com/Gtd232/AerfuckyingExtensions/colors"
	"github.com/Gtd232/AerfuckyingExtensions/extensions"
	"github.com/Gtd232/AerfuckyingExtensions/uid"
)

// Execute runs the extension inspector CLI with the given version string.
// Import extension packages via blank imports before calling this function
// so they register via init().
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "blockext",
		Usage:                  "Inspect and exercise the block extension set",
		Version:                version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:   "extensions",
				Usage:  "List registered extensions",
				Action: extensionsAction,
			},
			{
				Name:      "blocks",
				Usage:     "Show an extension's block metadata",
				ArgsUsage: "<extension-id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Emit the host-export JSON document",
					},
				},
				Action: blocksAction,
			},
			{
				Name:      "color",
				Usage:     "Convert a color between its encodings",
				ArgsUsage: "<#hex | decimal>",
				Action:    colorAction,
			},
			{
				Name:  "uid",
				Usage: "Mint identifiers",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Number of identifiers",
						Value:   1,
					},
				},
				Action: uidAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func extensionsAction(ctx context.Context, cmd *cli.Command) error {
	decorate := term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	for _, id := range extensions.Names() {
		ext, _ := extensions.Get(id)
		info := ext.Info()
		if decorate {
			fmt.Printf("\033[1m%-12s\033[0m %s (%d blocks)\n", info.ID, info.Name, len(info.Blocks))
		} else {
			fmt.Printf("%-12s %s (%d blocks)\n", info.ID, info.Name, len(info.Blocks))
		}
	}
	return nil
}

func blocksAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: blocks <extension-id>")
	}
	id := cmd.Args().First()
	if cmd.Bool("json") {
		data, err := extensions.ExportJSON(id)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	ext, ok := extensions.Get(id)
	if !ok {
		return fmt.Errorf("unknown extension %q (have: %s)", id, strings.Join(extensions.Names(), ", "))
	}
	fmt.Print(formatExtension(ext.Info()))
	return nil
}

func colorAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: color <#hex | decimal>")
	}
	c := cast.ToRGBColorObject(cmd.Args().First())
	hsv := colors.RGBToHSV(c.RGB)
	fmt.Printf("hex      %s\n", colors.RGBToHex(c.RGB))
	fmt.Printf("decimal  %d\n", colors.RGBToDecimal(c.RGB))
	fmt.Printf("rgb      %d, %d, %d (alpha %d)\n", c.R, c.G, c.B, c.A)
	fmt.Printf("hsv      %.1f, %.3f, %.3f\n", hsv.H, hsv.S, hsv.V)
	return nil
}

func uidAction(ctx context.Context, cmd *cli.Command) error {
	count := cmd.Int("count")
	if count < 1 {
		count = 1
	}
	for range count {
		fmt.Println(uid.New())
	}
	return nil
}
