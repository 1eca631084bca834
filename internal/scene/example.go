package scene

// Example returns a small menu scene used by `nodeui init` and in tests.
func Example() *Document {
	doc := DefaultScene()
	doc.Name = "menu"
	doc.Nodes = []NodeSpec{
		{
			Path: "panel",
			Layout: &LayoutSpec{Window: &WindowSpec{
				Pos:  UnitSpec{Abs: []float32{20, 20}},
				Size: UnitSpec{Prc: []float32{50, 100}, Abs: []float32{0, -40}},
			}},
		},
		{
			Path: "panel/logo",
			Layout: &LayoutSpec{Solid: &SolidSpec{
				Size:   UnitSpec{Abs: []float32{16, 9}},
				AlignY: -1,
			}},
			Data: Payload{"label": "logo"},
		},
		{
			Path: "panel/play",
			Layout: &LayoutSpec{Window: &WindowSpec{
				Pos:  UnitSpec{Prc: []float32{0, 50}},
				Size: UnitSpec{Prc: []float32{100, 0}, Rem: []float32{0, 3}},
			}},
			Data: Payload{"label": "Play"},
		},
		{
			Path:     "panel/play/.caption",
			FontSize: ptr[float32](24),
			Layout: &LayoutSpec{Window: &WindowSpec{
				Size: UnitSpec{Rem: []float32{4, 1}},
			}},
		},
		{
			Path:        "background",
			ContentSize: []float32{1920, 1080},
			Layout: &LayoutSpec{Solid: &SolidSpec{
				Scaling: "fill",
			}},
		},
	}
	return doc
}

func ptr[T any](v T) *T { return &v }
