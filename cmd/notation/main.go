package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/glyphmath/notation"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	markStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Underline(true)
	treeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func main() {
	log.SetFlags(0)
	var funcsFile string
	root := &cobra.Command{
		Use:   "notation [layout ...]",
		Short: "Parse math notation layouts into expression trees",
		Long: `Parse math notation layouts into expression trees.

Layouts use the compact linear syntax: \frac{a}{b}, \sqrt{x}, |x|,
^{…} for superscripts, _{…} for subscripts. With no arguments an
interactive prompt is started.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := notation.DefaultFuncs()
			if funcsFile != "" {
				f, err := os.Open(funcsFile)
				if err != nil {
					return err
				}
				table, err = notation.LoadFuncs(f)
				f.Close()
				if err != nil {
					return err
				}
			}
			if len(args) > 0 {
				for _, a := range args {
					show(a, table)
				}
				return nil
			}
			return repl(table)
		},
	}
	root.Flags().StringVar(&funcsFile, "funcs", "", "YAML function-name table overriding the default")
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func repl(table notation.FuncTable) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	for {
		src, err := ln.Prompt("> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return nil
			}
			return err
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(src)
		show(src, table)
	}
}

func show(src string, table notation.FuncTable) {
	c, err := notation.ParseLayout(src)
	if err != nil {
		fmt.Println(errStyle.Render(err.Error()))
		return
	}
	var rec notation.Recorder
	n := notation.Parse(c, notation.ParseFuncs(table), notation.ReportTo(&rec))
	fmt.Println(treeStyle.Render(n.String()))
	for _, d := range rec.Diags {
		fmt.Println(errStyle.Render(d.Error()))
		if h := highlight(src, d.Range()); h != "" {
			fmt.Println(h)
		}
	}
}

// highlight marks a diagnostic's anchor span inside the source line. Anchor
// indices coincide with rune indices only for layouts without fractions or
// scripts, so highlighting is skipped when the span falls outside the text.
func highlight(src string, sp notation.Span) string {
	rs := []rune(src)
	if sp.Start < 0 || sp.End > len(rs) || sp.Start >= sp.End {
		return ""
	}
	return "  " + string(rs[:sp.Start]) + markStyle.Render(string(rs[sp.Start:sp.End])) + string(rs[sp.End:])
}
