package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"dex-chunker/dex"
	"dex-chunker/dex/dchunk"
	"dex-chunker/ds"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	StateIdle       = ""
	StateProcessing = "processing"
	StateDone       = "done"
	StateFailed     = "failed"
)

type (
	DexSelector struct {
		paths     []string
		outputDir string
		splitter  *dchunk.Splitter
		cursor    int
		state     string
		result    dex.Result
	}
	processedMsg struct {
		result dex.Result
	}
)

func CreateDexSelector(paths []string, outputDir string, splitter *dchunk.Splitter) DexSelector {
	return DexSelector{
		paths:     paths,
		outputDir: outputDir,
		splitter:  splitter,
		state:     StateIdle,
	}
}

func (s DexSelector) process(path string) tea.Cmd {
	return func() tea.Msg {
		return processedMsg{
			result: dex.ProcessFile(path, s.outputDir, s.splitter, nil),
		}
	}
}

func (s DexSelector) Init() tea.Cmd {
	return nil
}

func (s DexSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case processedMsg:
		s.result = msg.result
		if msg.result.Err != nil {
			s.state = StateFailed
		} else {
			s.state = StateDone
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return s, tea.Quit
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.paths)-1 {
				s.cursor++
			}
		case "enter":
			if len(s.paths) == 0 || s.state == StateProcessing {
				return s, nil
			}
			s.state = StateProcessing
			return s, s.process(s.paths[s.cursor])
		}
	}
	return s, nil
}

func (s DexSelector) View() string {
	output := "DEX CHUNKER\n\n"
	output += "Output directory: " + s.outputDir + "\n\n"

	if len(s.paths) == 0 {
		return output + "No classes.dex files found. Press q to quit.\n"
	}
	for i, path := range s.paths {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		output += marker + filepath.Base(path) + "\n"
	}
	output += "\n"

	switch s.state {
	case StateIdle:
		output += "Press enter to split the selected file, q to quit."
	case StateProcessing:
		output += "Splitting..."
	case StateDone:
		output += fmt.Sprintf(
			"%s: %d chunk(s) written, data_size %d",
			filepath.Base(s.result.Path), len(s.result.Chunks), s.result.Header.DataSize,
		)
	case StateFailed:
		output += fmt.Sprintf("%s: %v", filepath.Base(s.result.Path), s.result.Err)
	default:
		panic(ds.ErrUnreachableCode{Caller: fmt.Sprintf(`DexSelector.View with state "%s"`, s.state)})
	}

	return strings.TrimRight(output, "\n") + "\n"
}
