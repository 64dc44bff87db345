// Command export writes the drawing scenarios and the segments they must
// produce to JSON, for use by external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sketch/testcases"
)

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenarios = append(out.Scenarios, toJSON(category, sc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenarios.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScenario struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	BrushWidth float64       `json:"brush_width"`
	Events     []jsonEvent   `json:"events"`
	Segments   []jsonSegment `json:"segments"`
	LineCap    string        `json:"line_cap"`
	LineJoin   string        `json:"line_join"`
}

type jsonEvent struct {
	Type  string  `json:"type"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type jsonSegment struct {
	A     []float64 `json:"a"`
	B     []float64 `json:"b"`
	Width float64   `json:"width"`
}

func toJSON(category string, sc testcases.Scenario) jsonScenario {
	js := jsonScenario{
		Name:       category + "_" + sc.Name,
		Width:      sc.Width,
		Height:     sc.Height,
		BrushWidth: sc.BrushWidth,
		LineCap:    "round",
		LineJoin:   "round",
	}
	for _, ev := range sc.Events {
		js.Events = append(js.Events, eventToJSON(ev))
	}
	for _, seg := range testcases.Segments(sc.BrushWidth, sc.Events) {
		js.Segments = append(js.Segments, jsonSegment{
			A:     []float64{seg.A.X, seg.A.Y},
			B:     []float64{seg.B.X, seg.B.Y},
			Width: seg.Width,
		})
	}
	return js
}

func eventToJSON(ev testcases.Event) jsonEvent {
	switch ev := ev.(type) {
	case testcases.Down:
		return jsonEvent{Type: "down"}
	case testcases.Up:
		return jsonEvent{Type: "up"}
	case testcases.Leave:
		return jsonEvent{Type: "leave"}
	case testcases.Move:
		return jsonEvent{Type: "move", X: ev.X, Y: ev.Y}
	case testcases.SetWidth:
		return jsonEvent{Type: "width", Width: ev.Width}
	}
	panic("unknown event type")
}
