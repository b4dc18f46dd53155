package script

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	src := `
# mask the top left corner
open My Pictures/photo 1.png
zoom 50
down 10 12
move 20 22
up 30 32

UNDO
alpha 80
save
save out/result.png
preview view.png
`
	cmds, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []Command{
		{Op: OpOpen, Line: 3, Arg: "My Pictures/photo 1.png"},
		{Op: OpZoom, Line: 4, Zoom: 50},
		{Op: OpDown, Line: 5, X: 10, Y: 12},
		{Op: OpMove, Line: 6, X: 20, Y: 22},
		{Op: OpUp, Line: 7, X: 30, Y: 32},
		{Op: OpUndo, Line: 9},
		{Op: OpAlpha, Line: 10, Arg: "80"},
		{Op: OpSave, Line: 11},
		{Op: OpSave, Line: 12, Arg: "out/result.png"},
		{Op: OpPreview, Line: 13, Arg: "view.png"},
	}
	if len(cmds) != len(want) {
		t.Fatalf("Parse returned %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Fatalf("command %d = %+v, want %+v", i, cmds[i], want[i])
		}
	}
}

func TestParseAlphaKeepsRawText(t *testing.T) {
	cmds, err := Parse(strings.NewReader("alpha abc"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cmds[0].Arg != "abc" {
		t.Fatalf("alpha arg = %q, want raw text", cmds[0].Arg)
	}
}

func TestParseErrorsCarryLineNumber(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"open a.png\nrotate 90", "第 2 行"},
		{"down 1", "第 1 行"},
		{"zoom\n", "zoom"},
		{"\n\nup a b", "第 3 行"},
		{"open", "open"},
		{"undo now", "undo"},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.src))
		if err == nil {
			t.Fatalf("Parse(%q) should fail", tt.src)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("Parse(%q) error = %q, want it to mention %q", tt.src, err, tt.want)
		}
	}
}

func TestOpString(t *testing.T) {
	if OpPreview.String() != "preview" || Op(99).String() != "unknown" {
		t.Fatalf("unexpected op names")
	}
}
