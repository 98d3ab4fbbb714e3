// Package viz renders graphs, traversals, and shortest-path results as
// styled ASCII for the terminal. It is presentation scaffolding: it only
// reads core/traverse/shortest outputs and never mutates them.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkravets/graphkit/core"
	"github.com/mkravets/graphkit/shortest"
)

var (
	colorCyan  = lipgloss.Color("36")  // titles and numbers
	colorGreen = lipgloss.Color("35")  // current vertex
	colorDim   = lipgloss.Color("240") // rules and unvisited
	colorWhite = lipgloss.Color("255") // values
)

var (
	// StyleTitle for section headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleDim for rules and secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleCurrent = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

const ruleWidth = 70

// rule returns a dim horizontal line.
func rule() string {
	return StyleDim.Render(strings.Repeat("─", ruleWidth))
}

// header renders a titled section opener.
func header(title string) string {
	return rule() + "\n" + StyleTitle.Render(title) + "\n" + rule() + "\n"
}

// Graph renders the structure of g: vertex list, edge list, and adjacency
// relationships.
func Graph(g core.Graph, title string) string {
	var b strings.Builder
	b.WriteString(header(title))

	vertices := g.Vertices()
	if len(vertices) == 0 {
		b.WriteString("empty graph\n")

		return b.String()
	}

	fmt.Fprintf(&b, "Vertices: %s\n", StyleValue.Render(strings.Join(vertices, ", ")))
	fmt.Fprintf(&b, "Total: %s vertices, %s edges\n",
		StyleNumber.Render(fmt.Sprint(len(vertices))),
		StyleNumber.Render(fmt.Sprint(g.EdgeCount())))

	pos := make(map[string]int, len(vertices))
	for i, v := range vertices {
		pos[v] = i
	}

	arrow := "<->"
	if g.Directed() {
		arrow = "->"
	}
	b.WriteString("\nEdges:\n")
	for _, v := range vertices {
		nbs, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		for _, nb := range nbs {
			// For undirected graphs emit each edge once.
			if !g.Directed() && pos[nb.ID] < pos[v] {
				continue
			}
			if g.Weighted() {
				fmt.Fprintf(&b, "  %s %s %s [%s]\n", v, arrow, nb.ID,
					StyleNumber.Render(fmt.Sprint(nb.Weight)))
			} else {
				fmt.Fprintf(&b, "  %s %s %s\n", v, arrow, nb.ID)
			}
		}
	}

	b.WriteString("\nAdjacency:\n")
	for _, v := range vertices {
		nbs, _ := g.Neighbors(v)
		if len(nbs) == 0 {
			fmt.Fprintf(&b, "  %5s -> %s\n", v, StyleDim.Render("{ isolated }"))

			continue
		}
		parts := make([]string, 0, len(nbs))
		for _, nb := range nbs {
			if g.Weighted() {
				parts = append(parts, fmt.Sprintf("%s(%d)", nb.ID, nb.Weight))
			} else {
				parts = append(parts, nb.ID)
			}
		}
		fmt.Fprintf(&b, "  %5s -> { %s }\n", v, strings.Join(parts, ", "))
	}

	return b.String()
}

// Traversal renders the visitation order of a traversal step by step, with
// per-step vertex states: [v*] current, [v+] visited, [v ] unvisited.
func Traversal(g core.Graph, order []string, algorithm, start string) string {
	var b strings.Builder
	b.WriteString(header(algorithm + " traversal"))
	fmt.Fprintf(&b, "Start: %s\n", StyleValue.Render(start))
	fmt.Fprintf(&b, "Order: %s\n\n", StyleValue.Render(strings.Join(order, " -> ")))

	vertices := g.Vertices()
	visited := make(map[string]bool, len(order))
	for step, cur := range order {
		visited[cur] = true
		cells := make([]string, 0, len(vertices))
		for _, v := range vertices {
			switch {
			case v == cur:
				cells = append(cells, styleCurrent.Render("["+v+"*]"))
			case visited[v]:
				cells = append(cells, StyleValue.Render("["+v+"+]"))
			default:
				cells = append(cells, StyleDim.Render("["+v+" ]"))
			}
		}
		fmt.Fprintf(&b, "Step %2d: %s\n", step+1, strings.Join(cells, " "))
	}
	b.WriteString(StyleDim.Render("legend: [*] current  [+] visited  [ ] unvisited") + "\n")

	return b.String()
}

// Distances renders a distance table for a shortest-path run: per vertex,
// the distance from source and the reconstructed path, with ∞ marking
// unreachable vertices.
func Distances(g core.Graph, source string, dist map[string]int64, prev map[string]string) string {
	var b strings.Builder
	b.WriteString(header("shortest paths from " + source))
	fmt.Fprintf(&b, "%-10s %-10s %s\n", "Vertex", "Distance", "Path")
	b.WriteString(rule() + "\n")

	for _, v := range g.Vertices() {
		d, ok := dist[v]
		if !ok || d == shortest.Inf {
			fmt.Fprintf(&b, "%-10s %-10s %s\n", v, "∞", StyleDim.Render("no path"))

			continue
		}
		path, err := shortest.Path(prev, source, v)
		if err != nil || path == nil {
			fmt.Fprintf(&b, "%-10s %-10s %s\n", v, "∞", StyleDim.Render("no path"))

			continue
		}
		fmt.Fprintf(&b, "%-10s %-10s %s\n", v,
			StyleNumber.Render(fmt.Sprint(d)),
			StyleValue.Render(strings.Join(path, " -> ")))
	}

	return b.String()
}

// PathLine renders a single path with its total weight over g.
func PathLine(g core.Graph, path []string) string {
	if len(path) == 0 {
		return StyleDim.Render("no path") + "\n"
	}

	var total int64
	for i := 0; i+1 < len(path); i++ {
		if w, err := g.Weight(path[i], path[i+1]); err == nil {
			total += w
		}
	}
	line := StyleValue.Render(strings.Join(path, " -> "))
	if g.Weighted() {
		return fmt.Sprintf("%s %s\n", line,
			StyleDim.Render(fmt.Sprintf("(total %d)", total)))
	}

	return fmt.Sprintf("%s %s\n", line,
		StyleDim.Render(fmt.Sprintf("(%d edges)", len(path)-1)))
}
