package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/csscolors"
	"github.com/jsvensson/csscolors/internal/engine"
	"github.com/jsvensson/csscolors/internal/format"
	"github.com/jsvensson/csscolors/palette"
	"github.com/spf13/cobra"
)

var (
	flagPalette   string
	flagOut       string
	flagTemplates string
	flagApp       []string
	flagCheck     bool
	version       = "dev" // Injected at build time via ldflags
)

var rootCmd = &cobra.Command{
	Use:     "csscolors",
	Short:   "Generate application color configuration from a single palette file",
	Version: version,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render template files against a palette",
	RunE:  runRender,
}

var convertCmd = &cobra.Command{
	Use:   "convert <hex>...",
	Short: "Print the CSS forms of one or more hex colors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format .cpal files",
	Long:  "Format one or more .cpal files in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagPalette, "palette", "palette.cpal", "path to palette file")
	renderCmd.Flags().StringVar(&flagOut, "out", "output", "output directory")
	renderCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	renderCmd.Flags().StringArrayVar(&flagApp, "app", nil, "render only specific apps (can be repeated)")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := palette.Load(flagPalette)
	if err != nil {
		return fmt.Errorf("loading palette: %w", err)
	}

	e := &engine.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOut,
		Targets:      flagApp,
	}

	if err := e.Run(p); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered palette files in %s\n", flagOut)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		c, err := csscolors.ParseHex(arg)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", arg, err)
		}

		out := cmd.OutOrStdout()
		if c.A.Byte() == 255 {
			rgb := c.ToRGB()
			fmt.Fprintf(out, "%s\t%s\t%s\n", rgb.Hex(), rgb.ToCSS(), rgb.ToHSL().ToCSS())
		} else {
			fmt.Fprintf(out, "%s\t%s\t%s\n", c.Hex(), c.ToCSS(), c.ToHSLA().ToCSS())
		}
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
