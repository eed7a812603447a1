package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/circos/pkg/figure"
	"github.com/matzehuels/circos/pkg/pipeline"
	"github.com/matzehuels/circos/pkg/scene"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	detailBoxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// inspectCommand creates the inspect command for browsing a solved layout.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		plain   bool
		noCache bool
		lf      layoutFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "inspect [figure.toml | layout.json]",
		Short: "Browse the solved sector table",
		Long: `Browse the solved sector table.

Shows each sector's size and angular span in degrees. Use the arrow keys to
move, enter to toggle the detail pane and q to quit. Scene files
(*.layout.json) are shown as written; figures are solved first.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeFiles("toml", "json"),
		RunE: func(cmd *cobra.Command, args []string) error {
			lf.apply(cmd, &opts)
			s, err := c.loadScene(cmd.Context(), args[0], opts, noCache)
			if err != nil {
				return err
			}
			m := newInspectModel(args[0], s)
			if plain {
				fmt.Println(m.table(false).Render())
				return nil
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the table and exit")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	lf.register(cmd, &opts)

	return cmd
}

// loadScene reads a scene file, or solves a figure.
func (c *CLI) loadScene(ctx context.Context, input string, opts pipeline.Options, noCache bool) (scene.Scene, error) {
	if strings.HasSuffix(input, ".layout.json") {
		return scene.ReadSceneFile(input)
	}
	fig, err := figure.ReadFile(input)
	if err != nil {
		return scene.Scene{}, fmt.Errorf("load figure %s: %w", input, err)
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return scene.Scene{}, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = loggerFromContext(ctx)
	return runner.GenerateLayout(ctx, fig, opts)
}

// =============================================================================
// inspectModel - Interactive sector table
// =============================================================================

// sectorRow is one sector with its angles in degrees.
type sectorRow struct {
	scene.Sector
	StartDeg, EndDeg, WidthDeg float64
	// Partners lists linked sectors with their chord counts.
	Partners []string
	Links    int
}

type inspectModel struct {
	title    string
	rows     []sectorRow
	cursor   int
	offset   int
	height   int
	detail   bool
	quitting bool
}

func newInspectModel(title string, s scene.Scene) inspectModel {
	rows := make([]sectorRow, len(s.Sectors))
	for i, sec := range s.Sectors {
		rows[i] = sectorRow{
			Sector:   sec,
			StartDeg: degrees(sec.Start),
			EndDeg:   degrees(sec.End),
			WidthDeg: degrees(sec.Width()),
		}
		for _, l := range s.Links {
			switch sec.ID {
			case l.From:
				rows[i].Links += l.Count
				rows[i].Partners = append(rows[i].Partners, fmt.Sprintf("%s ×%d", l.To, l.Count))
			case l.To:
				rows[i].Links += l.Count
				rows[i].Partners = append(rows[i].Partners, fmt.Sprintf("%s ×%d", l.From, l.Count))
			}
		}
	}
	return inspectModel{title: title, rows: rows, height: 15}
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.detail = !m.detail
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.detail {
			m.height -= 6
		}
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.table(true).Render())
	b.WriteString("\n")

	if m.detail && len(m.rows) > 0 {
		b.WriteString(detailBoxStyle.Render(m.detailView(m.rows[m.cursor])))
		b.WriteString("\n")
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.rows))))
	return b.String()
}

// table renders the visible rows; without a cursor every row is shown.
func (m inspectModel) table(withCursor bool) *table.Table {
	start, end := 0, len(m.rows)
	if withCursor {
		start = m.offset
		end = min(m.offset+m.height, len(m.rows))
	}

	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		r := m.rows[i]
		cursor := "  "
		if withCursor && i == m.cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			r.ID,
			fmt.Sprintf("%d", r.Size),
			fmt.Sprintf("%.2f°", r.StartDeg),
			fmt.Sprintf("%.2f°", r.EndDeg),
			fmt.Sprintf("%.2f°", r.WidthDeg),
			fmt.Sprintf("%d", r.Links),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Sector", "Size", "Start", "End", "Width", "Links").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			base := lipgloss.NewStyle()
			if col >= 2 {
				base = base.Foreground(colorGray)
			}
			if withCursor && start+row == m.cursor {
				return base.Foreground(colorCyan).Bold(true)
			}
			return base
		})
}

func (m inspectModel) detailView(r sectorRow) string {
	var b strings.Builder
	label := r.Label
	if label == "" {
		label = r.ID
	}
	b.WriteString(StyleHighlight.Render(label))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", listDimStyle.Render("band "), StyleNumber.Render(fmt.Sprintf("%g – %g", r.Band.Bottom(), r.Band.Top())))
	fmt.Fprintf(&b, "%s %s\n", listDimStyle.Render("fill "), StyleValue.Render(r.Fill))
	fmt.Fprintf(&b, "%s %s\n", listDimStyle.Render("span "), StyleNumber.Render(fmt.Sprintf("%.4f – %.4f rad", r.Start, r.End)))
	partners := "none"
	if len(r.Partners) > 0 {
		partners = strings.Join(r.Partners, ", ")
	}
	fmt.Fprintf(&b, "%s %s", listDimStyle.Render("links"), StyleValue.Render(partners))
	return b.String()
}
