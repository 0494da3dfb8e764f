package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gungnir/cli/style"
	"gungnir/kube"
)

// pickPods runs the interactive picker and returns the chosen pods.
func pickPods(namespace string, client *kube.Client) ([]kube.Pod, error) {
	final, err := tea.NewProgram(newPickerModel(namespace, client)).Run()
	if err != nil {
		return nil, err
	}
	m := final.(pickerModel)
	if m.err != nil {
		return nil, m.err
	}
	if m.aborted {
		return nil, errors.New("selection aborted")
	}
	return m.chosen(), nil
}

// --- Messages ---

type podsLoaded struct {
	pods []kube.Pod
}

type podsError struct {
	err error
}

// --- Model ---

type pickerModel struct {
	namespace string
	client    *kube.Client
	spinner   spinner.Model
	pods      []kube.Pod
	cursor    int
	selected  map[int]bool
	loading   bool
	aborted   bool
	err       error
}

func newPickerModel(namespace string, client *kube.Client) pickerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Primary)

	return pickerModel{
		namespace: namespace,
		client:    client,
		spinner:   s,
		selected:  map[int]bool{},
		loading:   true,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadPods(m.client, m.namespace))
}

func loadPods(client *kube.Client, namespace string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		pods, err := client.ListPods(ctx, namespace, "")
		if err != nil {
			return podsError{err: err}
		}
		return podsLoaded{pods: pods}
	}
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.pods)-1 {
				m.cursor++
			}
		case " ", "space":
			if len(m.pods) > 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}
		case "a":
			for i := range m.pods {
				m.selected[i] = true
			}
		case "enter":
			if !m.loading && len(m.pods) > 0 {
				// enter with nothing toggled runs the cursor pod
				if len(m.chosen()) == 0 {
					m.selected[m.cursor] = true
				}
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case podsLoaded:
		m.loading = false
		m.pods = msg.pods
		return m, nil

	case podsError:
		m.loading = false
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m pickerModel) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		style.Banner.Render("➤ PICK PODS"),
		"  ",
		style.Subtitle.Render(m.namespace),
	)

	if m.err != nil {
		return header + "\n" + style.ErrorBox.Render(fmt.Sprintf("Error: %s", m.err)) + "\n"
	}
	if m.loading {
		return header + "\n\n  " + m.spinner.View() + style.DimText.Render("Loading pods...") + "\n"
	}
	if len(m.pods) == 0 {
		return header + "\n\n" + style.DimText.Render("  No pods in this namespace.") + "\n"
	}

	var b strings.Builder
	b.WriteString(header + "\n\n")
	for i, p := range m.pods {
		cursor := "  "
		if i == m.cursor {
			cursor = style.Cursor.Render("❯ ")
		}
		mark := "[ ]"
		if m.selected[i] {
			mark = style.Selected.Render("[x]")
		}
		name := p.Name
		if i == m.cursor {
			name = style.Bold.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s  %s\n",
			cursor, mark, style.PhaseDot(p.Phase), name,
			style.DimText.Render(fmt.Sprintf("%s  %s", p.Ready, humanAge(p.Age))),
		))
	}
	b.WriteString("\n" + style.DimText.Render("  ↑↓ move • space toggle • a all • enter run • q abort") + "\n")
	return b.String()
}

func (m pickerModel) chosen() []kube.Pod {
	var picked []kube.Pod
	for i, p := range m.pods {
		if m.selected[i] {
			picked = append(picked, p)
		}
	}
	return picked
}
