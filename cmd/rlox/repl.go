package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Socksonme/rlox/internal"
	"github.com/Socksonme/rlox/internal/config"
	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

const banner = "rlox REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

func runPrompt(in *internal.Interpreter, cfg *config.Config, logger *logrus.Logger) int {
	fmt.Println(color.Green(banner))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		code, ok := readByParseProbe(ln, cfg.REPL.Prompt, cfg.REPL.ContinuationPrompt)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" {
			break
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if err := in.Run(code); err != nil {
			logger.WithError(err).Debug("repl input failed")
		}
	}

	return exitOK
}

// readByParseProbe keeps reading continuation lines while the input only
// fails because it ended too early
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if internal.IsIncomplete(src) {
			continue
		}
		return src, true
	}
}
