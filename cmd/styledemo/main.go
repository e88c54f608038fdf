// Command styledemo applies one of several visual treatments to a small
// demo widget set (button, line edit, combo box) and prints the result,
// mirroring a style-switching controller without any rendering.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/glintlab/glint/internal/appearance"
	"github.com/glintlab/glint/internal/infrastructure/logging"
)

// sampleSheet stands in for the stylesheet resource shipped with the demo.
const sampleSheet = `*[hasError="true"] { border: 1px solid #ff5555; background: #2a1515; }
#ErrorWidget { color: #ff5555; }
QPushButton { padding: 4px 12px; }
QLineEdit { selection-background-color: #3b82f6; }
`

func main() {
	styleName := flag.String("style", "default", "style to apply: default, qss, palette, native, custompaint")
	markError := flag.Bool("error", false, "apply error styling to individual widgets")
	sheetPath := flag.String("sheet", "", "stylesheet file for the qss style (optional)")
	flag.Parse()

	logger := logging.NewDevelopment()
	defer logger.Sync()

	ctx := appearance.NewContext(logger)
	registerStyles(ctx, *sheetPath, logger)

	if err := ctx.Activate(*styleName); err != nil {
		fmt.Fprintf(os.Stderr, "unknown style %q (have: %v)\n", *styleName, ctx.Names())
		os.Exit(1)
	}

	widgets := demoWidgets()
	if *markError {
		for _, w := range widgets {
			ctx.MarkError(w.ID)
		}
	}
	for i := range widgets {
		ctx.Apply(&widgets[i])
	}

	printWidgets(ctx, widgets)
}

func registerStyles(ctx *appearance.Context, sheetPath string, logger *logging.Logger) {
	sheet := sampleSheet
	if sheetPath != "" {
		text, err := appearance.LoadSheet(sheetPath)
		if err != nil {
			logger.Warn("falling back to built-in stylesheet", zap.Error(err))
		} else {
			sheet = text
		}
	}

	ctx.Register("qss", appearance.StyleSheet(sheet))
	ctx.Register("palette", appearance.PaletteStyle(appearance.Dark()))
	ctx.Register("native", appearance.Native("fusion"))
	ctx.Register("custompaint", appearance.CustomPaint(paintDemo))
}

func demoWidgets() []appearance.Widget {
	return []appearance.Widget{
		{ID: "button", Kind: "button", Properties: map[string]any{"text": "Button"}},
		{ID: "line", Kind: "lineedit", Properties: map[string]any{"text": "Demo text."}},
		{ID: "combo", Kind: "combobox", Properties: map[string]any{
			"choices": []string{"Choice 1", "Choice 2", "Choice 3"},
		}},
	}
}

// paintDemo is the custom paint routine: background, border, label.
func paintDemo(c *appearance.Canvas, w appearance.Widget) {
	c.Fill(w.ID, "#252525")
	c.Stroke(w.ID, "#3b82f6")
	if text, ok := w.Properties["text"].(string); ok {
		c.Text(w.ID, text)
	}
}

func printWidgets(ctx *appearance.Context, widgets []appearance.Widget) {
	name, style := ctx.Current()

	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)
	errTint := color.New(color.FgRed)

	header.Printf("active style: %s (%s)\n", name, style.Kind())

	for _, w := range widgets {
		label.Printf("  %-10s", w.Kind)
		fmt.Printf(" id=%s", w.ID)
		if w.ObjectName != "" {
			errTint.Printf(" objectName=%s", w.ObjectName)
		}
		for k, v := range w.Properties {
			if k == "stylesheet" {
				fmt.Printf(" stylesheet=<%d bytes>", len(v.(string)))
				continue
			}
			fmt.Printf(" %s=%v", k, v)
		}
		fmt.Println()
	}

	if style.Kind() == appearance.KindCustomPaint {
		header.Println("paint ops:")
		fmt.Print(ctx.Render(widgets...).String())
	}
}
