package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/grindlemire/nodeui/internal/nodetree"
	"github.com/grindlemire/nodeui/internal/unit"
)

type widget struct {
	Kind string
}

func ptr[T any](v T) *T { return &v }

// newSceneTree builds:
//
//	root              default layout
//	├── panel         window at (10,10), half the parent
//	│   ├── icon      solid 1:1, centered
//	│   └── label     font size 10, 2rem x 1rem
//	│       └── glyph 1rem square, inherits font size
//	├── ghost         no data
//	│   └── child     default layout
//	└── hint          solid without size, content size 200x100
func newSceneTree(t *testing.T) *Tree[widget] {
	t.Helper()
	tree := NewTree[widget]("root")

	set := func(path string, l Layout) *NodeData[widget] {
		t.Helper()
		d, err := SetLayout(tree.Node, path, l)
		if err != nil {
			t.Fatalf("SetLayout(%q): %v", path, err)
		}
		return d
	}

	set("panel", Window{
		Pos:  unit.Abs(unit.V2(10, 10)),
		Size: unit.Prc(unit.V2(50, 50)),
	})
	set("panel/icon", Solid{Size: unit.Abs(unit.V2(1, 1))})
	label := set("panel/label", Window{Size: unit.Rem(unit.V2(2, 1))})
	label.FontSize = ptr[float32](10)
	label.Data = &widget{Kind: "text"}
	set("panel/label/glyph", Window{Size: unit.Rem(unit.V2(1, 1))})

	if _, err := tree.CreateNode("ghost"); err != nil {
		t.Fatalf("CreateNode(ghost): %v", err)
	}
	ghostChild, err := tree.BorrowOrCreateNode("ghost/child")
	if err != nil {
		t.Fatalf("BorrowOrCreateNode(ghost/child): %v", err)
	}
	EnsureData(ghostChild)

	hint := set("hint", Solid{AlignX: AlignStart, AlignY: AlignEnd})
	hint.ContentSize = &mgl32.Vec2{200, 100}

	return tree
}

func rectAt(t *testing.T, tree *Tree[widget], path string) Rect {
	t.Helper()
	d, err := tree.BorrowData(path)
	if err != nil {
		t.Fatalf("BorrowData(%q): %v", path, err)
	}
	if d == nil {
		t.Fatalf("BorrowData(%q) = nil", path)
	}
	return d.Rect
}

func TestCalculateTree(t *testing.T) {
	tree := newSceneTree(t)
	if err := CalculateTree(tree, mgl32.Vec2{800, 600}); err != nil {
		t.Fatalf("CalculateTree: %v", err)
	}

	type tc struct {
		path string
		want Rect
	}

	tests := map[string]tc{
		"root fills viewport":     {path: ".", want: NewRect(0, 0, 800, 600)},
		"window inside root":      {path: "panel", want: NewRect(10, 10, 400, 300)},
		"solid inside window":     {path: "panel/icon", want: NewRect(50, 0, 300, 300)},
		"font size override":      {path: "panel/label", want: NewRect(0, 0, 20, 10)},
		"font size inherited":     {path: "panel/label/glyph", want: NewRect(0, 0, 10, 10)},
		"content size hint":       {path: "hint", want: NewRect(0, 200, 800, 400)},
		"dataless parent skipped": {path: "ghost/child", want: Rect{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, rectAt(t, tree, tt.path), approx); diff != "" {
				t.Errorf("Rect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateTree_FontSize(t *testing.T) {
	type tc struct {
		settings *Settings
		opts     []Option
		want     float32
	}

	tests := map[string]tc{
		"tree settings":          {settings: &Settings{FontSize: 20}, want: 20},
		"option overrides tree":  {settings: &Settings{FontSize: 20}, opts: []Option{WithFontSize(8)}, want: 8},
		"missing settings":       {want: DefaultFontSize},
		"zero settings fallback": {settings: &Settings{}, want: DefaultFontSize},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := NewTree[widget]("root")
			tree.TakeTopData()
			if tt.settings != nil {
				tree.SetTopData(*tt.settings)
			}
			if _, err := SetLayout(tree.Node, "box", Window{Size: unit.Rem(unit.V2(1, 1))}); err != nil {
				t.Fatalf("SetLayout: %v", err)
			}

			if err := CalculateTree(tree, mgl32.Vec2{100, 100}, tt.opts...); err != nil {
				t.Fatalf("CalculateTree: %v", err)
			}
			got := rectAt(t, tree, "box").Size
			if diff := cmp.Diff(mgl32.Vec2{tt.want, tt.want}, got, approx); diff != "" {
				t.Errorf("size mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_Subtree(t *testing.T) {
	tree := newSceneTree(t)
	if err := CalculateTree(tree, mgl32.Vec2{800, 600}); err != nil {
		t.Fatalf("CalculateTree: %v", err)
	}

	panel, err := tree.BorrowNode("panel")
	if err != nil {
		t.Fatalf("BorrowNode: %v", err)
	}
	if err := Calculate(panel, NewRect(0, 0, 200, 200)); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if diff := cmp.Diff(NewRect(10, 10, 100, 100), rectAt(t, tree, "panel"), approx); diff != "" {
		t.Errorf("panel mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewRect(0, 0, 100, 100), rectAt(t, tree, "panel/icon"), approx); diff != "" {
		t.Errorf("icon mismatch (-want +got):\n%s", diff)
	}
	// Outside the recomputed subtree nothing changes.
	if diff := cmp.Diff(NewRect(0, 200, 800, 400), rectAt(t, tree, "hint"), approx); diff != "" {
		t.Errorf("hint mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_NestedPositionsAreRelative(t *testing.T) {
	tree := NewTree[widget]("root")
	if _, err := SetLayout(tree.Node, "a", Window{
		Pos:  unit.Abs(unit.V2(100, 100)),
		Size: unit.Abs(unit.V2(200, 200)),
	}); err != nil {
		t.Fatalf("SetLayout(a): %v", err)
	}
	if _, err := SetLayout(tree.Node, "a/b", Window{
		Pos:  unit.Abs(unit.V2(10, 10)),
		Size: unit.Abs(unit.V2(20, 20)),
	}); err != nil {
		t.Fatalf("SetLayout(a/b): %v", err)
	}

	if err := CalculateTree(tree, mgl32.Vec2{800, 600}); err != nil {
		t.Fatalf("CalculateTree: %v", err)
	}

	if diff := cmp.Diff(NewRect(100, 100, 200, 200), rectAt(t, tree, "a"), approx); diff != "" {
		t.Errorf("a mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewRect(10, 10, 20, 20), rectAt(t, tree, "a/b"), approx); diff != "" {
		t.Errorf("a/b mismatch (-want +got):\n%s", diff)
	}
}

func TestAbsoluteRect(t *testing.T) {
	tree := newSceneTree(t)
	if err := CalculateTree(tree, mgl32.Vec2{800, 600}); err != nil {
		t.Fatalf("CalculateTree: %v", err)
	}

	type tc struct {
		path string
		want Rect
	}

	tests := map[string]tc{
		"root":              {path: ".", want: NewRect(0, 0, 800, 600)},
		"top level":         {path: "panel", want: NewRect(10, 10, 400, 300)},
		"nested solid":      {path: "panel/icon", want: NewRect(60, 10, 300, 300)},
		"two levels deep":   {path: "panel/label/glyph", want: NewRect(10, 10, 10, 10)},
		"self segments":     {path: "./panel/./icon", want: NewRect(60, 10, 300, 300)},
		"content size hint": {path: "hint", want: NewRect(0, 200, 800, 400)},
		"dataless ancestor": {path: "ghost/child", want: Rect{}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := AbsoluteRect(tree.Node, tt.path)
			if err != nil {
				t.Fatalf("AbsoluteRect(%q): %v", tt.path, err)
			}
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("AbsoluteRect(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestAbsoluteRect_Errors(t *testing.T) {
	tree := newSceneTree(t)

	type tc struct {
		path    string
		wantErr error
	}

	tests := map[string]tc{
		"missing node":  {path: "panel/missing", wantErr: nodetree.ErrNoNode},
		"empty segment": {path: "panel//icon", wantErr: nodetree.ErrInvalidPath},
		"no data":       {path: "ghost", wantErr: ErrNoData},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := AbsoluteRect(tree.Node, tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AbsoluteRect(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestCalculate_NilLayoutFillsParent(t *testing.T) {
	tree := NewTree[widget]("root")
	tree.ObtainData().Layout = nil

	if err := CalculateTree(tree, mgl32.Vec2{640, 480}); err != nil {
		t.Fatalf("CalculateTree: %v", err)
	}
	if diff := cmp.Diff(NewRect(0, 0, 640, 480), tree.ObtainData().Rect, approx); diff != "" {
		t.Errorf("root mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculate_Nil(t *testing.T) {
	if err := Calculate[widget](nil, Rect{}); err != nil {
		t.Errorf("Calculate(nil) = %v, want nil", err)
	}
	if err := CalculateTree[widget](nil, mgl32.Vec2{}); err != nil {
		t.Errorf("CalculateTree(nil) = %v, want nil", err)
	}
}

func TestCalculate_Options(t *testing.T) {
	type tc struct {
		opt     Option
		wantErr bool
	}

	tests := map[string]tc{
		"valid logger":       {opt: WithLogger(zap.NewNop())},
		"nil logger":         {opt: WithLogger(nil), wantErr: true},
		"valid font size":    {opt: WithFontSize(12)},
		"zero font size":     {opt: WithFontSize(0), wantErr: true},
		"negative font size": {opt: WithFontSize(-4), wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := CalculateTree(NewTree[widget]("root"), mgl32.Vec2{10, 10}, tt.opt)
			if (err != nil) != tt.wantErr {
				t.Errorf("CalculateTree() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCalculate_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tree := newSceneTree(t)

	if err := CalculateTree(tree, mgl32.Vec2{800, 600}, WithLogger(zap.New(core))); err != nil {
		t.Fatalf("CalculateTree: %v", err)
	}

	skipped := logs.FilterMessage("skipping subtree without data").All()
	if len(skipped) != 1 {
		t.Fatalf("got %d skip entries, want 1", len(skipped))
	}
	if got := skipped[0].ContextMap()["path"]; got != "root/ghost" {
		t.Errorf("skipped path = %v, want root/ghost", got)
	}

	// root, panel, icon, label, glyph, hint
	if got := logs.FilterMessage("computed node").Len(); got != 6 {
		t.Errorf("got %d computed entries, want 6", got)
	}
}

func TestSetLayout(t *testing.T) {
	tree := NewTree[widget]("root")
	tree.TakeData()

	d, err := SetLayout(tree.Node, "a/b", Solid{})
	if err != nil {
		t.Fatalf("SetLayout: %v", err)
	}
	if _, ok := d.Layout.(Solid); !ok {
		t.Errorf("Layout = %T, want Solid", d.Layout)
	}

	for _, path := range []string{".", "a", "a/b"} {
		n, err := tree.BorrowNode(path)
		if err != nil {
			t.Fatalf("BorrowNode(%q): %v", path, err)
		}
		if !n.HasData() {
			t.Errorf("node %q has no data after SetLayout", path)
		}
	}

	if _, err := SetLayout(tree.Node, "a//c", Solid{}); err == nil {
		t.Error("SetLayout with an empty segment should fail")
	}
}

func TestNodeData_String(t *testing.T) {
	d := NewNodeData(&widget{Kind: "button"})
	d.Rect = NewRect(0, 0, 10, 20)

	got := d.String()
	for _, want := range []string{"[0,0 10x20]", "Window(", "button"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}
