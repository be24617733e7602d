// Package util provides common utility functions used across the codebase.
package util

import (
	"runtime"
	"strings"
)

// ShellArgs returns the program and arguments that run command through the
// platform shell: "cmd.exe /c <command>" on Windows, "sh -c <command>"
// everywhere else. The command string is passed through untouched.
func ShellArgs(command string) (string, []string) {
	return shellArgsFor(runtime.GOOS, command)
}

func shellArgsFor(goos, command string) (string, []string) {
	if goos == "windows" {
		return "cmd.exe", []string{"/c", command}
	}
	return "sh", []string{"-c", command}
}

// ShellQuote wraps a string in single quotes, escaping any existing single quotes.
// This is safe for use in shell commands where the string should be treated literally.
func ShellQuote(s string) string {
	// Replace ' with '\'' (end quote, escaped quote, start quote)
	escaped := strings.ReplaceAll(s, "'", "'\\''")
	return "'" + escaped + "'"
}
