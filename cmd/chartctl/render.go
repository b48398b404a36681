package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/carson-networks/budget-dashboard/internal/chart"
	"github.com/carson-networks/budget-dashboard/internal/logging"
)

const defaultCanvasID = "chart"

func newRenderCommand() *cobra.Command {
	var kind string
	var in string
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a props file (YAML or JSON) to an SVG document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger(cmd.ErrOrStderr(), logrus.WarnLevel)
			if out == "-" {
				return runRender(kind, in, cmd.OutOrStdout(), logger)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := runRender(kind, in, f, logger); err != nil {
				_ = f.Close()
				_ = os.Remove(out)
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&kind, "kind", chart.KindBar, "chart kind: bar or circular")
	cmd.Flags().StringVar(&in, "in", "", "props file (required)")
	_ = cmd.MarkFlagRequired("in")
	cmd.Flags().StringVar(&out, "out", "-", "output SVG file, - for stdout")

	return cmd
}

// loadProps reads chart props. JSON files parse as YAML.
func loadProps(path string) (chart.Props, error) {
	var props chart.Props
	data, err := os.ReadFile(path)
	if err != nil {
		return props, fmt.Errorf("reading props: %w", err)
	}
	if err := yaml.Unmarshal(data, &props); err != nil {
		return props, fmt.Errorf("parsing props: %w", err)
	}
	if props.CanvasID == "" {
		props.CanvasID = defaultCanvasID
	}
	return props, nil
}

func runRender(kind, in string, w io.Writer, logger *logrus.Logger) error {
	render, ok := chart.RendererFor(kind)
	if !ok {
		return fmt.Errorf("unknown chart kind %q", kind)
	}

	props, err := loadProps(in)
	if err != nil {
		return err
	}

	canvas := chart.NewCanvas(logger)
	render(canvas, props)

	drawn, err := canvas.WriteSVG(props.CanvasID, w)
	if err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	if !drawn {
		return fmt.Errorf("nothing to draw: data is empty or has non-finite counts")
	}
	return nil
}
