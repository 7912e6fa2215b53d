// Package slider renders horizontal and vertical slider widgets for terminal
// user interfaces.
//
// A Slider is declared with builder methods and drawn into a Canvas, a grid of
// styled cells, or straight to a string with View for use in a bubbletea
// program:
//
//	s := slider.New(75, 0, 100).
//		Label("Volume").
//		ShowValue(true).
//		ApplyStyle(slider.Blocks())
//	fmt.Println(s.View(40, 2))
//
// State holds a value with its bounds and step and is what interactive code
// mutates. Model wires a State and a Slider into a bubbletea component with
// keyboard bindings.
package slider
