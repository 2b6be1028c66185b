package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/esimov/placer"
	"github.com/esimov/placer/utils"
)

const HelpBanner = `
┌─┐┬  ┌─┐┌─┐┌─┐┬─┐
├─┘│  ├─┤│  ├┤ ├┬┘
┴  ┴─┘┴ ┴└─┘└─┘┴└─

Deterministic image to template placement library.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	source         = flag.String("in", pipeName, "Source")
	destination    = flag.String("out", pipeName, "Destination")
	width          = flag.Int("width", 0, "Template width")
	height         = flag.Int("height", 0, "Template height")
	backgroundBlur = flag.Bool("blur", true, "Blur the background of composed images")
	blurRadius     = flag.Int("radius", 75, "Background blur radius")
	border         = flag.Bool("border", true, "Add a border to the foreground of composed images")
	borderWidth    = flag.Int("bwidth", 1, "Foreground border width")
	borderColor    = flag.String("bcolor", "#ffffff", "Foreground border color (#RRGGBB or #RRGGBBAA)")
	forceFit       = flag.Bool("forcefit", true, "Crop the image to fill the template instead of preserving its proportions")
	workers        = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide a positive template width and height!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	col, hasAlpha, err := utils.HexToRGBA(*borderColor)
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid border color: %v", utils.ErrorMessage), err)
	}

	proc := placer.NewProcessor(*width, *height)
	proc.BackgroundBlur = *backgroundBlur
	proc.BlurRadius = *blurRadius
	proc.ForegroundBorder = *border
	proc.BorderWidth = *borderWidth
	proc.BorderColor = col
	proc.BorderAlpha = hasAlpha
	proc.ForceFit = *forceFit

	proc.Execute(&placer.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	})
}
