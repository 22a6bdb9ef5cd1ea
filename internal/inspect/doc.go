// Package inspect implements the image color inspector.
//
// An inspection is a straight pipeline over one image file:
//
//  1. Load and decode the image (the file handle is released before sampling)
//  2. Sample the pixel at the configured coordinate, (0,0) by default
//  3. Convert the sample to a "#rrggbb" hex string
//  4. Count distinct colors up to the configured cap
//  5. Sort the palette and keep the most common entries
//
// Inspect returns either a *Report or an *InspectionError; there is no other
// error kind. Render and RenderError turn those into the console lines the
// CLI prints, and Run combines both steps the way the CLI does:
//
//	cfg := inspect.DefaultConfig()
//	cfg.Path = "icon.png"
//	if err := inspect.Run(os.Stdout, cfg); err != nil {
//	    log.Fatal(err) // only write errors reach here
//	}
//
// # Palette Cap
//
// When the image has more distinct colors than Config.MaxColors the report
// carries no palette. Render then omits the palette lines, or prints an
// explicit "more than N" line when Config.ReportOverflow is set.
package inspect
