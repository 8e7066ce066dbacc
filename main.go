package main

import (
	"fmt"
	"os"

	"gridview/internal/app"
	"gridview/internal/engine"
	"gridview/internal/storage"
	"gridview/internal/tracks"

	"github.com/gdamore/tcell/v2"
	"github.com/olekukonko/errors"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
	"github.com/spf13/cobra"
)

type options struct {
	rows, cols   int
	freezeRows   int
	freezeCols   int
	sheet        string
	noGrid       bool
	logFile      string
	printingEdit bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	defaults := engine.DefaultSettings()

	cmd := &cobra.Command{
		Use:          "gridview [file]",
		Short:        "Terminal spreadsheet grid with frozen panes, merges and filters",
		Long:         "gridview shows a sheet in the terminal. FILE may be a .csv, .xlsx or .xlsm file.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return run(opts, file)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.rows, "rows", defaults.RowCount, "number of rows")
	f.IntVar(&opts.cols, "cols", defaults.ColCount, "number of columns")
	f.IntVar(&opts.freezeRows, "freeze-rows", 0, "rows pinned at the top")
	f.IntVar(&opts.freezeCols, "freeze-cols", 0, "columns pinned at the left")
	f.StringVar(&opts.sheet, "sheet", "", "worksheet to open (xlsx, default the active one)")
	f.BoolVar(&opts.noGrid, "no-grid", false, "hide grid lines")
	f.StringVar(&opts.logFile, "log", "", "write a debug log to this file")
	f.BoolVar(&opts.printingEdit, "type-to-edit", false, "start editing when a printable key is pressed")
	return cmd
}

func run(opts options, file string) error {
	logger := ll.New("gridview").Handler(lh.NewTextHandler(os.Stderr))
	logger.Disable()
	if opts.logFile != "" {
		out, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Newf("open log %s", opts.logFile).Wrap(err)
		}
		defer out.Close()
		logger = ll.New("gridview").Handler(lh.NewTextHandler(out))
		logger.Enable()
	}

	settings := engine.DefaultSettings()
	settings.RowCount = opts.rows
	settings.ColCount = opts.cols
	settings.ShowGrid = !opts.noGrid

	sheet := engine.New(settings)
	sheet.Logger(logger)
	if file != "" {
		seed, err := storage.Load(file, opts.sheet)
		if err != nil {
			return err
		}
		sheet.Load(seed)
	}
	if opts.freezeRows > 0 || opts.freezeCols > 0 {
		if err := sheet.SetFreezeBoundary(opts.freezeRows, opts.freezeCols); err != nil {
			return errors.Newf("freeze %d,%d", opts.freezeRows, opts.freezeCols).Wrap(err)
		}
	}

	a := app.NewApp(sheet)
	a.Logger(logger)
	a.PrintableStartsEdit = opts.printingEdit

	s, err := tcell.NewScreen()
	if err != nil {
		return errors.Newf("create screen").Wrap(err)
	}
	if err := s.Init(); err != nil {
		return errors.Newf("init screen").Wrap(err)
	}
	defer s.Fini()

	s.EnableMouse()
	s.Clear()
	logger.Infof("started with %d rows, %d cols", sheet.Count(tracks.Rows), sheet.Count(tracks.Cols))

	for !a.Quit {
		a.Frame(s)
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			a.HandleKeyEvent(s, ev)
		case *tcell.EventMouse:
			a.HandleMouseEvent(s, ev)
		case *tcell.EventResize:
			s.Sync()
		}
	}
	return nil
}
