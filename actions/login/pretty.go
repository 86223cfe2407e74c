package login

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/rezapahlevi/go-mlbb-cli/internal/platform/mlbb"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// renderProfile draws the account fields in a framed table for --pretty.
func renderProfile(p *mlbb.Profile) string {
	rows := []string{titleStyle.Render("Account Information"), ""}

	for _, f := range []struct{ label, value string }{
		{"Name", p.Name},
		{"Level", strconv.Itoa(p.Level)},
		{"Rank Level", p.RankLevel},
		{"Country", p.Country},
		{"Role ID", p.RoleID},
		{"Zone ID", p.ZoneID},
		{"Avatar", p.Avatar},
	} {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(f.label),
			valueStyle.Render(f.value),
		))
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
