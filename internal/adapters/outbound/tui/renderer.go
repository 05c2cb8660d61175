package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/slicegen/slicegen/internal/domain"
	"github.com/slicegen/slicegen/internal/domain/generator"
	"github.com/slicegen/slicegen/internal/domain/schema"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	categoryColors = map[domain.Category]lipgloss.Color{
		domain.CategoryApiClient:  lipgloss.Color("#38BDF8"), // sky
		domain.CategoryEntity:     lipgloss.Color("#A78BFA"), // violet
		domain.CategoryRepository: lipgloss.Color("#F472B6"), // pink
		domain.CategoryService:    success,
		domain.CategoryModel:      lipgloss.Color("#A3E635"), // lime
		domain.CategoryEndpoint:   accent,
		domain.CategoryMapping:    dim,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(fg)
	dirStyle      = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult formats a generation run: header, per-category counts, the
// file tree grouped by directory and any name warnings.
func RenderResult(cfg domain.EntityConfig, result *domain.GeneratorResult, warnings []string) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("slicegen")
	subtitle := dimStyle.Render(cfg.RootNamespace() + "." + cfg.ModuleName + " / " + cfg.EntityName)
	total := passStyle.Bold(true).Render(fmt.Sprintf("%d files", result.Summary.TotalFiles))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + total))
	b.WriteString("\n\n")

	// ── Categories ──
	peak := 0
	for _, c := range domain.AllCategories {
		peak = max(peak, result.Summary.Count(c))
	}
	for _, c := range domain.AllCategories {
		n := result.Summary.Count(c)
		if n == 0 {
			continue
		}
		name := catNameStyle.Render(padRight(string(c), 14))
		fmt.Fprintf(&b, "  %s %s  %s\n", name, coloredBar(c, n, peak, 20), dimStyle.Render(fmt.Sprintf("%d", n)))
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Files ──
	renderTree(&b, result.Files)

	if len(warnings) > 0 {
		b.WriteString("\n")
		for _, w := range warnings {
			fmt.Fprintf(&b, "  %s %s\n", warnTagStyle.Render("warn"), dimStyle.Render(w))
		}
	}

	b.WriteString("\n")
	return b.String()
}

// renderTree lists files under their directory in first-seen order.
func renderTree(b *strings.Builder, files []domain.GeneratedFile) {
	var dirs []string
	byDir := map[string][]domain.GeneratedFile{}
	for _, f := range files {
		if _, ok := byDir[f.Path]; !ok {
			dirs = append(dirs, f.Path)
		}
		byDir[f.Path] = append(byDir[f.Path], f)
	}

	for _, d := range dirs {
		b.WriteString("  " + dirStyle.Render(d+"/") + "\n")
		entries := byDir[d]
		for i, f := range entries {
			branch := "├─"
			if i == len(entries)-1 {
				branch = "└─"
			}
			tag := lipgloss.NewStyle().Foreground(categoryColor(f.Category)).Render(string(f.Category))
			fmt.Fprintf(b, "    %s %s %s\n", faintStyle.Render(branch), fileStyle.Render(padRight(f.FileName, 44)), tag)
		}
	}
}

// RenderProperties formats imported properties and the lines the importer skipped.
func RenderProperties(report schema.Report) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Imported properties") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	if len(report.Properties) == 0 {
		b.WriteString("  " + dimStyle.Render("No properties found.") + "\n")
	}
	for _, p := range report.Properties {
		req := dimStyle.Render("optional")
		if p.IsRequired {
			req = passStyle.Render("required")
		}
		line := fmt.Sprintf("  %s %s %s", fileStyle.Render(padRight(p.Name, 24)), catNameStyle.Render(padRight(string(p.Type), 10)), req)
		if p.MaxLength > 0 {
			line += "  " + dimStyle.Render(fmt.Sprintf("max %d", p.MaxLength))
		}
		if domain.IsAuditField(p.Name) {
			line += "  " + faintStyle.Render("audit field, ignored by generators")
		}
		b.WriteString(line + "\n")
	}

	if len(report.Skipped) > 0 {
		b.WriteString("\n")
		for _, s := range report.Skipped {
			fmt.Fprintf(&b, "  %s %s\n", faintStyle.Render(fmt.Sprintf("line %d", s.Line)), dimStyle.Render("skipped: "+s.Reason))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderRoutes formats the route table of an entity.
func RenderRoutes(routes []generator.Route) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, r := range routes {
		method := lipgloss.NewStyle().Bold(true).Foreground(methodColor(r.Method)).Render(padRight(r.Method, 7))
		fmt.Fprintf(&b, "  %s %s %s\n", method, fileStyle.Render(padRight(r.Path, 48)), dimStyle.Render(r.Constant))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderTypes lists the supported property types, identifier types and endpoints.
func RenderTypes(c domain.Catalog) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Property types") + "\n")
	for _, t := range c.PropertyTypes {
		if t.IsNullable() {
			continue
		}
		fmt.Fprintf(&b, "    %s %s\n", fileStyle.Render(padRight(string(t), 10)), dimStyle.Render(string(t.Nullable())))
	}

	b.WriteString("\n  " + titleStyle.Render("Id types") + "\n")
	for _, id := range c.IdTypes {
		fmt.Fprintf(&b, "    %s\n", fileStyle.Render(string(id)))
	}

	b.WriteString("\n  " + titleStyle.Render("Endpoints") + "\n")
	for _, e := range c.Endpoints {
		fmt.Fprintf(&b, "    %s %s %s\n",
			fileStyle.Render(padRight(string(e.Name), 10)),
			lipgloss.NewStyle().Foreground(methodColor(e.Method)).Render(padRight(e.Method, 7)),
			dimStyle.Render(e.Label))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderValidation formats every field failure of a rejected config.
func RenderValidation(err *domain.ValidationError) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + failStyle.Bold(true).Render("Invalid entity") + "\n\n")
	for _, fe := range err.Errors {
		fmt.Fprintf(&b, "    %s %s %s\n", errorTagStyle.Render("error"), fileStyle.Render(fe.Field), dimStyle.Render(fe.Message))
	}
	b.WriteString("\n")
	return b.String()
}

func coloredBar(c domain.Category, n, peak, width int) string {
	filled := 0
	if peak > 0 {
		filled = max(1, min(n*width/peak, width))
	}
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(categoryColor(c)).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func categoryColor(c domain.Category) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return fg
}

func methodColor(method string) lipgloss.Color {
	switch method {
	case "POST":
		return success
	case "PUT":
		return warning
	case "DELETE":
		return danger
	default:
		return lipgloss.Color("#38BDF8")
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
