package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testPrinter struct {
	printed string
	errors  string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	t.printed += fmt.Sprintln(a...)
	return 0, nil
}

func (t *testPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	t.errors += fmt.Sprintf(format, a...)
	return 0, nil
}

func (t *testPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	t.errors += fmt.Sprintln(a...)
	return 0, nil
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	// Keep a config in the real home directory out of the way
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "script.lox")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func checkRun(t *testing.T, args []string, code int) *testPrinter {
	t.Helper()
	tp := &testPrinter{}
	if got := run(args, tp); got != code {
		t.Errorf("rlox %s: expected exit code %d, got %d\n%s", strings.Join(args, " "), code, got, tp.errors)
	}
	return tp
}

func TestRunScript(t *testing.T) {
	path := writeScript(t, "var a = 1;\nprint a + 2;\n")
	tp := checkRun(t, []string{"-no-color", path}, exitOK)
	if tp.printed != "3\n" {
		t.Errorf("Unexpected output %q", tp.printed)
	}
}

func TestRunStaticError(t *testing.T) {
	path := writeScript(t, "print 1;\nprint ;\n")
	tp := checkRun(t, []string{"-no-color", path}, exitStatic)
	if tp.printed != "" {
		t.Errorf("Nothing should run, got %q", tp.printed)
	}
	if tp.errors != "[line 2] Error at ';': Expect expression\n" {
		t.Errorf("Unexpected diagnostics %q", tp.errors)
	}
}

func TestRunRuntimeError(t *testing.T) {
	path := writeScript(t, "print -nil;\nprint x;\nprint 2;\n")
	tp := checkRun(t, []string{"-no-color", path}, exitRuntime)
	if tp.printed != "nil\n" {
		t.Errorf("Unexpected output %q", tp.printed)
	}
	if tp.errors != "[line 2] Runtime error at 'x': Undefined variable 'x'\n" {
		t.Errorf("Unexpected diagnostics %q", tp.errors)
	}
}

func TestRunUsage(t *testing.T) {
	path := writeScript(t, "print 1;")
	checkRun(t, []string{path, path}, exitUsage)
	checkRun(t, []string{"-unknown-flag", path}, exitUsage)
	checkRun(t, []string{"-log-level", "loud", path}, exitUsage)
	checkRun(t, []string{"-config", filepath.Join(t.TempDir(), "missing.yaml"), path}, exitUsage)
	checkRun(t, []string{filepath.Join(t.TempDir(), "missing.lox")}, exitIO)

	// Dump modes need a script instead of falling back to the prompt
	checkRun(t, []string{"-tokens"}, exitUsage)
	checkRun(t, []string{"-ast", "-no-color"}, exitUsage)
}

func TestRunWithConfig(t *testing.T) {
	path := writeScript(t, "print 1;")
	cfgPath := filepath.Join(t.TempDir(), "rlox.yaml")
	if err := os.WriteFile(cfgPath, []byte("log_level: error\ncolor: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tp := checkRun(t, []string{"-config", cfgPath, path}, exitOK)
	if tp.printed != "1\n" {
		t.Errorf("Unexpected output %q", tp.printed)
	}
}

func TestDumpTree(t *testing.T) {
	path := writeScript(t, "for (var i = 0; i < 2; i = i + 1) print i;")
	tp := checkRun(t, []string{"-ast", path}, exitOK)
	expected := "(block (var i 0) (while (< i 2) (block (print i) (; (= i (+ i 1))))))\n"
	if tp.printed != expected {
		t.Errorf("Expected %q, got %q", expected, tp.printed)
	}

	path = writeScript(t, "print ;")
	checkRun(t, []string{"-ast", path}, exitStatic)
}

func TestDumpTokens(t *testing.T) {
	path := writeScript(t, "var x = \"s\";")
	tp := checkRun(t, []string{"-tokens", path}, exitOK)
	expected := strings.Join([]string{
		"VAR var ",
		"IDENTIFIER x ",
		"EQUAL = ",
		`STRING "s" s`,
		"SEMICOLON ; ",
		"EOF  ",
	}, "\n") + "\n"
	if tp.printed != expected {
		t.Errorf("Expected %q, got %q", expected, tp.printed)
	}

	path = writeScript(t, "var @;")
	checkRun(t, []string{"-tokens", path}, exitStatic)
}

func TestExitCode(t *testing.T) {
	if exitCode(nil) != exitOK {
		t.Errorf("nil error should exit with %d", exitOK)
	}
	if exitCode(fmt.Errorf("wrapped: %w", os.ErrClosed)) != exitIO {
		t.Errorf("unknown errors should exit with %d", exitIO)
	}
}
