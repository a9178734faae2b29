package ui

import (
	"dex-chunker/dex/dchunk"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(paths []string, outputDir string, splitter *dchunk.Splitter) error {
	selector := CreateDexSelector(paths, outputDir, splitter)
	if err := tea.NewProgram(selector).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
