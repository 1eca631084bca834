package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/nodeui/internal/debug"
	"github.com/grindlemire/nodeui/internal/layout"
	"github.com/grindlemire/nodeui/internal/nodetree"
	"github.com/grindlemire/nodeui/internal/scene"
)

type computeOptions struct {
	width      float32
	height     float32
	fontSize   float32
	showHidden bool
	noData     bool
	absolute   bool
}

func newComputeCmd(a *app) *cobra.Command {
	var opts computeOptions

	cmd := &cobra.Command{
		Use:   "compute <scene.yaml>",
		Short: "Compute a scene and print the layout tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			debug.Log("loaded scene %q from %s: %d nodes", doc.Name, args[0], len(doc.Nodes))
			if cmd.Flags().Changed("width") {
				doc.Viewport.Width = opts.width
			}
			if cmd.Flags().Changed("height") {
				doc.Viewport.Height = opts.height
			}
			if err := doc.Validate(); err != nil {
				return err
			}

			layoutOpts := []layout.Option{layout.WithLogger(a.logger)}
			if cmd.Flags().Changed("font-size") {
				layoutOpts = append(layoutOpts, layout.WithFontSize(opts.fontSize))
			}

			a.logger.Info("computing scene",
				zap.String("file", args[0]),
				zap.Int("nodes", len(doc.Nodes)),
				zap.Stringer("viewport", layout.RectFromSize(doc.Viewport.Vec2())))

			tree, err := doc.Compute(layoutOpts...)
			if err != nil {
				return err
			}

			if opts.absolute {
				return printAbsolute(cmd, tree, opts.showHidden)
			}
			fmt.Fprint(cmd.OutOrStdout(), tree.Tree(opts.params()))
			return nil
		},
	}

	cmd.Flags().Float32Var(&opts.width, "width", 0, "Viewport width (overrides the scene)")
	cmd.Flags().Float32Var(&opts.height, "height", 0, "Viewport height (overrides the scene)")
	cmd.Flags().Float32Var(&opts.fontSize, "font-size", layout.DefaultFontSize, "Base font size (overrides the scene)")
	cmd.Flags().BoolVar(&opts.showHidden, "show-hidden", false, "Include nodes whose name starts with '.'")
	cmd.Flags().BoolVar(&opts.noData, "no-data", false, "Omit node data from the output")
	cmd.Flags().BoolVar(&opts.absolute, "absolute", false, "Print one line per node with its rectangle in viewport coordinates")
	return cmd
}

func (o computeOptions) params() string {
	var params []string
	if o.showHidden {
		params = append(params, nodetree.ParamShowHidden)
	}
	if o.noData {
		params = append(params, nodetree.ParamNoData)
	}
	return strings.Join(params, " ")
}

// printAbsolute lists every computed node with its rectangle translated into
// viewport coordinates. Hidden nodes are listed only with showHidden.
func printAbsolute(cmd *cobra.Command, tree *layout.Tree[scene.Payload], showHidden bool) error {
	out := cmd.OutOrStdout()
	var err error
	tree.Walk(func(n *layout.Node[scene.Payload]) bool {
		if err != nil || !n.HasData() || (n.IsHidden() && !showHidden) {
			return false
		}
		path := strings.TrimPrefix(n.Path(), tree.Name()+nodetree.Separator)
		var rect layout.Rect
		if rect, err = layout.AbsoluteRect(tree.Node, path); err != nil {
			return false
		}
		fmt.Fprintf(out, "%s %v\n", path, rect)
		return true
	})
	return err
}
