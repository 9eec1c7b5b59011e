package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dolink/pkg/install"
	"github.com/arthur-debert/dolink/pkg/linker"
	"github.com/arthur-debert/dolink/pkg/types"
	"github.com/arthur-debert/dolink/pkg/ui"
	"github.com/arthur-debert/dolink/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// linkStateInvalid marks mappings that cannot be split or resolved
const linkStateInvalid = "invalid"

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "list [items...]",
		Short:             MsgListShort,
		Long:              MsgListLong,
		ValidArgsFunction: itemNamesCompletion(root),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := root.outputFormat()
			if err != nil {
				return err
			}

			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			names, invalid := install.ValidateSelection(cfg, args)
			if invalid != nil {
				return invalid
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				_, _ = fmt.Fprintln(out, MsgNoItems)
				return nil
			}

			p := painter{enabled: paintable(out, format)}
			lnk := linker.New(linker.Options{})
			for _, name := range names {
				renderItem(out, p, lnk, name, cfg.Items[name])
			}
			return nil
		},
	}
}

func renderItem(out io.Writer, p painter, lnk *linker.Linker, name string, item types.ConfigItem) {
	_, _ = fmt.Fprintf(out, MsgItemHeader, p.paint("Item", name))

	for _, mapping := range item.Mappings {
		source, destination, err := linker.SplitMapping(mapping)
		if err != nil {
			_, _ = fmt.Fprintf(out, MsgBadMapping, mapping, p.paint("Invalid", linkStateInvalid))
			continue
		}

		state := linkStateInvalid
		style := "Invalid"
		if s, err := lnk.Inspect(source, destination); err == nil {
			state = string(s)
			style = stateStyle(s)
		}
		_, _ = fmt.Fprintf(out, MsgMappingLine,
			p.paint("FilePath", source), p.paint("FilePath", destination), p.paint(style, state))
	}

	_, _ = fmt.Fprintf(out, MsgHooksLine, len(item.Before), len(item.After))
}

func stateStyle(state linker.LinkState) string {
	switch state {
	case linker.LinkStateLinked:
		return "Linked"
	case linker.LinkStateMissing:
		return "Missing"
	default:
		return "Conflict"
	}
}

// painter applies styles only when writing to a color terminal
type painter struct {
	enabled bool
}

func (p painter) paint(style, s string) string {
	if !p.enabled {
		return s
	}
	return styles.Render(style, s)
}

func paintable(out io.Writer, format ui.Format) bool {
	switch format {
	case ui.FormatTerminal:
		return true
	case ui.FormatText:
		return false
	}
	file, ok := out.(*os.File)
	return ok && ui.DetectFormat(file) == ui.FormatTerminal
}
