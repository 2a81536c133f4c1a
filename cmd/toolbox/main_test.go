package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"

	toolbox "github.com/grc-cohort-21/midterm-toolbox-333"
)

var tests = []struct {
	args   string
	output string
}{
	{args: "length 3 1 4 1 5", output: "5\n"},
	{args: "tail 19 42 7", output: "7\n"},
	{args: "nth 1 7 19 3 4", output: "19\n"},
	{args: "nth 9 7 19", output: "<nil>\n"},
	{args: "count 5 12 5 3 5 12", output: "3=1\n5=3\n12=2\n"},
	{args: "giants 5 7 6 20 4 4", output: "[5 6 4 4]\n"},
	{args: "giants 10 1 2", output: "[10 1 2]\n"},
	{args: "insert 1 7 10 5 19", output: "[10 5 7 19]\n"},
	{args: "remove 1 8 99 13 23", output: "[8 13 23]\n"},
	{args: "remove 0 8 99", output: "[99]\n"},
	{args: "remove 1 8 99", output: "[8]\n"},
	{args: "remove 0 42", output: "[]\n"},
	{args: "triple 5 3 2 7", output: "[15 9 6 21]\n"},
	{args: "triple", output: "[]\n"},
	{args: "rotate -k 2 1 2 3 4 5", output: "[3 4 5 1 2]\n"},
	{args: "rotate -k 7 3 9 1 14 8", output: "[1 14 8 3 9]\n"},
	{args: "rotate -k 3", output: "[]\n"},
	{args: "parens (()())", output: "true\n"},
	{args: "parens ())", output: "false (offset 2)\n"},
}

func TestRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	for _, tt := range tests {
		var out bytes.Buffer
		err := run(&out, strings.NewReader(""), dbPath, strings.Fields(tt.args))
		assert.NotError(t, err)
		if out.String() != tt.output {
			t.Errorf("TestRun failed: %q printed %q, want %q", tt.args, out.String(), tt.output)
		}
	}
}

func TestRunParensStdin(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, strings.NewReader("(a\n(b)\n)"), "", []string{"parens"})
	assert.NotError(t, err)
	check.Equal(t, out.String(), "true\n")

	out.Reset()
	err = run(&out, strings.NewReader(")("), "", []string{"parens"})
	assert.NotError(t, err)
	check.Equal(t, out.String(), "false\n")
}

func TestRunScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	var out bytes.Buffer
	err := run(&out, nil, dbPath, []string{"top"})
	check.ErrorIs(t, err, toolbox.ErrInvalidArgument)

	for _, args := range [][]string{
		{"score", "Alice", "50"},
		{"score", "Bob", "50"},
		{"score", "Charlie", "40"},
	} {
		assert.NotError(t, run(&out, nil, dbPath, args))
	}

	out.Reset()
	assert.NotError(t, run(&out, nil, dbPath, []string{"top"}))
	check.Equal(t, out.String(), "Alice 50\n")

	assert.NotError(t, run(&out, nil, dbPath, []string{"score", "Charlie", "51"}))
	out.Reset()
	assert.NotError(t, run(&out, nil, dbPath, []string{"top"}))
	check.Equal(t, out.String(), "Charlie 51\n")
}

func TestRunErrors(t *testing.T) {
	for _, tt := range []struct {
		args  string
		usage bool
		inval bool
	}{
		{args: "", usage: true},
		{args: "frobnicate", usage: true},
		{args: "length 1 x 3", usage: true},
		{args: "nth", usage: true},
		{args: "score Alice", usage: true},
		{args: "length", inval: true},
		{args: "giants", inval: true},
		{args: "nth -1 1 2", inval: true},
		{args: "rotate -k -1 1 2", inval: true},
		{args: "insert 5 1 1 2"},
		{args: "remove 3 1 2"},
	} {
		var out bytes.Buffer
		err := run(&out, nil, filepath.Join(t.TempDir(), "scores.db"), strings.Fields(tt.args))
		if err == nil {
			t.Errorf("TestRunErrors failed: %q returned no error", tt.args)
			continue
		}
		check.Equal(t, errors.Is(err, errUsage), tt.usage)
		check.Equal(t, errors.Is(err, toolbox.ErrInvalidArgument), tt.inval)
		check.Equal(t, out.Len(), 0)
	}
}
