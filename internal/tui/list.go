package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/mkarpenko/gonotes/models"
)

const cardBodyLimit = 120

type listModel struct {
	state     *uiState
	loading   bool
	searching bool
	search    textinput.Model
	spinner   spinner.Model
	status    string
}

func newListModel(state *uiState) listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "title or tag"
	search.Width = 40

	return listModel{state: state, search: search, spinner: s, loading: true}
}

// cardBody picks the text shown under a note's title: the summary
// when present, otherwise the elaboration, otherwise the content.
func cardBody(note models.Note) string {
	body := note.Summary
	if body == "" {
		body = note.Elaboration
	}
	if body == "" {
		body = note.Content
	}

	body = strings.Join(strings.Fields(body), " ")
	if len(body) > cardBodyLimit {
		body = body[:cardBodyLimit] + "…"
	}
	return body
}

func untitled(note models.Note) string {
	if note.Title == "" {
		return "(untitled)"
	}
	return note.Title
}

func (m listModel) View() string {
	header := titleStyle.Render("gonotes")
	if m.state.offline {
		header += "  " + helpStyle.Render("[offline, showing cached notes]")
	}
	out := header + "\n\n"

	if m.searching || m.state.query != "" {
		out += "search: " + m.search.View() + "\n\n"
	}

	visible := m.state.visible()

	switch {
	case m.loading:
		out += m.spinner.View() + " loading...\n"
	case len(visible) == 0 && m.state.query != "":
		out += "no notes match the search\n"
	case len(visible) == 0:
		out += "no notes yet, press n to create one\n"
	default:
		for i, note := range visible {
			cursor := "  "
			if i == m.state.idx {
				cursor = "> "
			}

			line := cursor + titleStyle.Render(untitled(note))
			if action, running := m.state.busyAction(note.ID); running {
				line += " " + m.spinner.View() + " " + helpStyle.Render(action+"...")
			}
			out += line + "\n"

			if body := cardBody(note); body != "" {
				out += "    " + body + "\n"
			}
			if len(note.Tags) > 0 {
				out += "    " + tagStyle.Render("#"+strings.Join(note.Tags, " #")) + "\n"
			}
			out += "\n"
		}
		out = strings.TrimRight(out, "\n") + "\n"
	}

	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}

	out += "\n" + helpStyle.Render(fmt.Sprintf(
		"%d notes  ·  n new  t title-only  e edit  d delete  s summarize  g gen title  x elaborate  c copy  / search  r refresh  q quit",
		len(visible)))
	return out
}
