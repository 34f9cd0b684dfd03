package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	cardWidth      = 52
	keyColumnWidth = 36
	emptyMessage   = "Ничего не найдено"
	noTags         = "Без тегов"
	noData         = "Нет данных"
)

// Renderer draws pages and detail views as styled terminal text.
type Renderer struct {
	out    io.Writer
	logger *zap.Logger

	card  lipgloss.Style
	name  lipgloss.Style
	muted lipgloss.Style
	head  lipgloss.Style
	key   lipgloss.Style
	tones map[Tone]lipgloss.Style
}

// NewRenderer creates a Renderer writing to out. Colour support is detected
// from out, so plain buffers get unstyled text.
func NewRenderer(out io.Writer, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := lipgloss.NewRenderer(out)

	return &Renderer{
		out:    out,
		logger: logger.Named("renderer"),
		card:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(cardWidth),
		name:   r.NewStyle().Bold(true),
		muted:  r.NewStyle().Faint(true),
		head:   r.NewStyle().Bold(true).Underline(true),
		key:    r.NewStyle().Width(keyColumnWidth),
		tones: map[Tone]lipgloss.Style{
			ToneNone: r.NewStyle(),
			ToneGood: r.NewStyle().Foreground(lipgloss.Color("42")),
			ToneMid:  r.NewStyle().Foreground(lipgloss.Color("214")),
			ToneBad:  r.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}

// RenderPage writes the header counters followed by one card per professor.
func (r *Renderer) RenderPage(p Page) error {
	var b strings.Builder

	b.WriteString(r.name.Render(fmt.Sprintf("Отзывов: %d · Преподавателей: %d", p.TotalResponses, p.TotalProfessors)))
	b.WriteString("\n")
	if p.FormURL != "" {
		b.WriteString(r.muted.Render("Оставить отзыв: " + p.FormURL))
		b.WriteString("\n")
	}
	if p.ReportURL != "" {
		b.WriteString(r.muted.Render("Сообщить об ошибке: " + p.ReportURL))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(p.Cards) == 0 {
		b.WriteString(emptyMessage)
		b.WriteString("\n")
	}
	for _, c := range p.Cards {
		b.WriteString(r.renderCard(c))
		b.WriteString("\n")
	}

	r.logger.Debug("page rendered", zap.Int("cards", len(p.Cards)))
	_, err := io.WriteString(r.out, b.String())
	return err
}

// RenderDetail writes the expanded view of one professor.
func (r *Renderer) RenderDetail(d Detail) error {
	parts := []string{
		r.name.Render(d.Title),
		r.muted.Render(d.Subtitle),
		"",
		r.scoreLine("Общее качество", d.Quality),
		r.scoreLine("Строгость", d.Strict),
	}
	for _, t := range d.Tables {
		parts = append(parts, "", r.head.Render(t.Title), r.renderTable(t))
	}

	_, err := io.WriteString(r.out, r.card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))+"\n")
	return err
}

func (r *Renderer) renderCard(c Card) string {
	pills := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		pills = append(pills, fmt.Sprintf("[%s · %d]", t.Key, t.Count))
	}
	tags := noTags
	if len(pills) > 0 {
		tags = strings.Join(pills, " ")
	}

	return r.card.Render(lipgloss.JoinVertical(lipgloss.Left,
		r.name.Render(c.Name),
		r.muted.Render(fmt.Sprintf("Отзывов: %d · Снова бы взяли: %s", c.Responses, c.Retake)),
		r.scoreLine("Общее качество", c.Quality),
		r.scoreLine("Строгость", c.Strict),
		tags,
	))
}

func (r *Renderer) scoreLine(label string, s Score) string {
	value := s.Value + " / 5"
	if s.Dot != ToneNone {
		value = r.tones[s.Dot].Render("●") + " " + r.tones[s.Tone].Render(value)
	}
	return fmt.Sprintf("%s: %s %s", label, value, r.muted.Render("(оценок: "+strconv.Itoa(s.Samples)+")"))
}

func (r *Renderer) renderTable(t Table) string {
	if len(t.Rows) == 0 {
		return r.muted.Render(noData)
	}
	lines := []string{r.muted.Render(r.key.Render(t.KeyHeader) + t.CountHeader)}
	for _, row := range t.Rows {
		lines = append(lines, r.key.Render(row.Key)+strconv.Itoa(row.Count))
	}
	return strings.Join(lines, "\n")
}
