package nodelink_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/circos/pkg/core/render/chord"
	"github.com/matzehuels/circos/pkg/core/render/nodelink"
	"github.com/matzehuels/circos/pkg/scene"
)

func ExampleToDOT() {
	s := &scene.Scene{
		Sectors: []scene.Sector{{ID: "a", Size: 10}, {ID: "b", Size: 10}},
		Links:   []chord.Link{{From: "a", To: "b", Count: 3}},
	}
	g, _ := nodelink.FromScene(s)
	fmt.Print(nodelink.ToDOT(g, nodelink.Options{}))
	// Output:
	// graph G {
	//   layout=circo;
	//   bgcolor="transparent";
	//   node [shape=circle, style=filled, fillcolor=white, fontsize=14, fontname="Helvetica"];
	//   edge [color="#30303080"];
	//
	//   "a" [label="a"];
	//   "b" [label="b"];
	//
	//   "a" -- "b" [label="3", penwidth=8.00];
	// }
}

func ExampleRenderSVG() {
	s := &scene.Scene{
		Sectors: []scene.Sector{{ID: "web"}, {ID: "api"}, {ID: "db"}},
		Links: []chord.Link{
			{From: "api", To: "web", Count: 2},
			{From: "api", To: "db", Count: 5},
		},
	}
	g, _ := nodelink.FromScene(s)

	// Render to SVG (requires Graphviz)
	svg, err := nodelink.RenderSVG(context.Background(), nodelink.ToDOT(g, nodelink.Options{}))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Generated SVG (%d bytes)\n", len(svg))
	// Output varies based on Graphviz installation
}
