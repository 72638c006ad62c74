package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-wordsearch/internal/games/wordsearch/puzzle"
)

func TestRenderGridPlain(t *testing.T) {
	g, err := puzzle.ParseGrid("AB", "CD")
	if err != nil {
		t.Fatal(err)
	}
	got := renderGrid(puzzle.Result{Grid: g}, false)
	if got != "A B\nC D" {
		t.Errorf("renderGrid = %q", got)
	}
}

func TestRenderGridAnswersKeepsLetters(t *testing.T) {
	g, err := puzzle.ParseGrid("AB", "CD")
	if err != nil {
		t.Fatal(err)
	}
	res := puzzle.Result{
		Grid:   g,
		Placed: []puzzle.PlacedWord{{Word: "AB", Cells: []puzzle.Cell{puzzle.At(0, 0), puzzle.At(0, 1)}}},
	}
	got := renderGrid(res, true)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "A") || !strings.Contains(lines[1], "C D") {
		t.Errorf("renderGrid = %q", got)
	}
}

func TestGenerateCommand(t *testing.T) {
	t.Cleanup(func() {
		flagGenWords = nil
		flagGenSize = 0
		flagSeed = 0
	})
	flagGenWords = []string{" go", "rust ", "TOOLONGFORTHISGRID"}
	flagGenSize = 6
	flagGenAttempts = puzzle.DefaultMaxAttempts
	flagSeed = 7

	var out bytes.Buffer
	generateCmd.SetOut(&out)
	if err := runGenerate(generateCmd, nil); err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Custom (6x6, seed 7)") {
		t.Errorf("missing header in %q", text)
	}
	for _, w := range []string{"GO", "RUST"} {
		if !strings.Contains(text, "  "+w+"\n") {
			t.Errorf("word %s not listed in %q", w, text)
		}
	}
	if strings.Contains(text, "TOOLONG") {
		t.Error("skipped words go to stderr, not the word list")
	}

	// Same seed, same output.
	var again bytes.Buffer
	generateCmd.SetOut(&again)
	if err := runGenerate(generateCmd, nil); err != nil {
		t.Fatal(err)
	}
	if again.String() != text {
		t.Error("generate is not deterministic for a fixed seed")
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	t.Cleanup(func() { flagGenSize = 0 })
	flagGenSize = 2
	if err := runGenerate(generateCmd, nil); err == nil {
		t.Error("size below the minimum should fail")
	}
}

func TestGenerateRejectsBadWords(t *testing.T) {
	t.Cleanup(func() {
		flagGenWords = nil
		flagGenSize = 0
	})
	flagGenSize = 6
	flagGenAttempts = puzzle.DefaultMaxAttempts

	for _, words := range [][]string{{"CAT", "cat"}, {"R2D2"}, {"ICE CREAM"}} {
		flagGenWords = words
		var out bytes.Buffer
		generateCmd.SetOut(&out)
		if err := runGenerate(generateCmd, nil); err == nil {
			t.Errorf("--words %q should fail", words)
		}
		if out.Len() != 0 {
			t.Errorf("--words %q printed a grid: %q", words, out.String())
		}
	}
}
