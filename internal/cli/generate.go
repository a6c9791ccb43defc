package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rkohler/quadsheet/pkg/config"
	"github.com/rkohler/quadsheet/pkg/errors"
	"github.com/rkohler/quadsheet/pkg/input"
	"github.com/rkohler/quadsheet/pkg/layout"
	"github.com/rkohler/quadsheet/pkg/preset"
)

// quadrantCount is the number of slots on the output sheet.
const quadrantCount = 4

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	preset      string                // preset name (optional)
	quadSpecs   [quadrantCount]string // --q1..--q4 values, file[:page[:rotation]]
	output      string                // output PDF path
	margin      float64               // quadrant margin in inches
	noGrid      bool                  // suppress grid lines
	dpi         int                   // PDF rasterization DPI
	interactive bool                  // prompt for preset/input file

	marginSet bool // --margin given explicitly
	dpiSet    bool // --dpi given explicitly
}

// newGenerateCmd creates the generate command for composing quadrant sheets.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [input-file]",
		Short: "Generate a quadrant label sheet PDF",
		Long: `Generate a letter-size PDF with up to four quadrants filled from PDF
pages or image files.

Quadrant flags take the form file[:page[:rotation]]:

  page:      "last", "second-last", a 1-indexed page number, or a negative
             index counting from the end (-1 = last)
  rotation:  degrees, counter-clockwise positive (0, 90, -90, 180, ...)

Relative file arguments are looked up in the Downloads folder first, then
the working directory.`,
		Example: `  # Use a preset with an input file (output: input_output.pdf)
  quadsheet generate input.pdf --preset standard

  # Manual quadrant configuration
  quadsheet generate --q1 label.pdf:last --q3 notes.pdf:2:-90 -o sheet.pdf

  # Preset with a quadrant override
  quadsheet generate input.pdf --preset label-only-q1-q2 --q3 notes.pdf:-2:-90

  # Custom margin, no grid, high-quality rasterization
  quadsheet generate input.pdf --preset standard --margin 0.5 --no-grid --dpi 600

  # Pick a preset interactively
  quadsheet generate --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := ""
			if len(args) > 0 {
				inputFile = args[0]
			}
			opts.marginSet = cmd.Flags().Changed("margin")
			opts.dpiSet = cmd.Flags().Changed("dpi")
			return runGenerate(cmd.Context(), inputFile, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "layout preset (see 'quadsheet presets')")
	cmd.Flags().StringVar(&opts.quadSpecs[0], "q1", "", "top-left quadrant: file[:page[:rotation]]")
	cmd.Flags().StringVar(&opts.quadSpecs[1], "q2", "", "top-right quadrant: file[:page[:rotation]]")
	cmd.Flags().StringVar(&opts.quadSpecs[2], "q3", "", "bottom-left quadrant: file[:page[:rotation]]")
	cmd.Flags().StringVar(&opts.quadSpecs[3], "q4", "", "bottom-right quadrant: file[:page[:rotation]]")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path (default <input>_output.pdf)")
	cmd.Flags().Float64VarP(&opts.margin, "margin", "m", config.DefaultMargin, "quadrant margin in inches")
	cmd.Flags().BoolVar(&opts.noGrid, "no-grid", false, "don't draw grid lines between quadrants")
	cmd.Flags().IntVar(&opts.dpi, "dpi", config.DefaultDPI, "DPI for PDF page rasterization")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the preset and input file interactively")

	return cmd
}

// runGenerate resolves configuration, presets, and inputs, then renders the
// sheet. Errors carry the failing quadrant where one is known.
func runGenerate(ctx context.Context, inputFile string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	cfgDir, err := config.Dir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(filepath.Join(cfgDir, config.FileName))
	if err != nil {
		return err
	}
	if !opts.marginSet {
		opts.margin = cfg.MarginOrDefault()
	}
	if !opts.dpiSet {
		opts.dpi = cfg.DPIOrDefault()
	}
	showGrid := cfg.GridOrDefault() && !opts.noGrid
	downloads := downloadsDir(cfg)
	logger.Debugf("Config: margin=%gin dpi=%d grid=%v downloads=%s",
		opts.margin, opts.dpi, showGrid, downloads)

	presets, err := preset.Load(filepath.Join(cfgDir, config.PresetsFileName))
	if err != nil {
		return err
	}

	presetName := opts.preset
	if opts.interactive && presetName == "" {
		if presetName, err = pickPreset(presets); err != nil {
			return err
		}
		if presetName == "" {
			return errors.New(errors.ErrCodeInvalidInput, "no preset selected")
		}
	}

	// Manual --qN flags become overrides (with a preset) or the whole
	// configuration (without one).
	overrides := make(map[int]preset.Source)
	for i, spec := range opts.quadSpecs {
		if spec == "" {
			continue
		}
		parsed, err := parseQuadrantSpec(spec)
		if err != nil {
			return err
		}
		path, err := resolveFilePath(parsed.file, downloads)
		if err != nil {
			return err
		}
		overrides[i+1] = preset.Source{Source: path, Page: parsed.page, Rotation: parsed.rotation}
	}

	var quadrants map[int]preset.Source
	var resolvedInput string
	if presetName != "" {
		if inputFile == "" && opts.interactive {
			printInfo("Using preset: %s", presetName)
			if inputFile, err = promptLine("Enter input file location: "); err != nil {
				return err
			}
		}
		if inputFile == "" {
			return errors.New(errors.ErrCodeInvalidInput,
				"input file is required when using a preset")
		}
		if resolvedInput, err = resolveFilePath(inputFile, downloads); err != nil {
			return err
		}
		if quadrants, err = presets.Resolve(presetName, resolvedInput, overrides); err != nil {
			return err
		}
	} else {
		quadrants = overrides
		if inputFile != "" {
			if resolvedInput, err = resolveFilePath(inputFile, downloads); err != nil {
				return err
			}
		}
	}

	if len(quadrants) == 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"no quadrants specified: use --preset or --q1/--q2/--q3/--q4")
	}

	output := opts.output
	if output == "" {
		output = deriveOutputPath(resolvedInput)
	}

	printInfo("Loading inputs...")
	loaded := make(map[int]*layout.Quadrant, len(quadrants))
	for quad := 1; quad <= quadrantCount; quad++ {
		src, ok := quadrants[quad]
		if !ok {
			continue
		}
		printDetail("Q%d: %s (page %s, rotation %d°)",
			quad, filepath.Base(src.Source), src.Page, src.Rotation)

		img, err := input.Load(src.Source, src.Page, opts.dpi)
		if err != nil {
			printError("failed to load Q%d", quad)
			return fmt.Errorf("Q%d: %w", quad, err)
		}
		loaded[quad] = &layout.Quadrant{Image: img, Rotation: src.Rotation}
	}

	engine, err := layout.New(opts.margin, showGrid)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, "Rendering PDF...")
	spinner.Start()
	err = engine.Render(output, loaded[1], loaded[2], loaded[3], loaded[4])
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d quadrant(s)", len(loaded)))

	printSuccess("Created label sheet")
	printFile(output)
	return nil
}

// deriveOutputPath places the output next to the resolved input as
// <stem>_output.pdf, or falls back to output.pdf in the working directory.
func deriveOutputPath(resolvedInput string) string {
	if resolvedInput == "" {
		return "output.pdf"
	}
	ext := filepath.Ext(resolvedInput)
	return strings.TrimSuffix(resolvedInput, ext) + "_output.pdf"
}

// promptLine reads one trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read input file location")
	}
	return strings.TrimSpace(line), nil
}
