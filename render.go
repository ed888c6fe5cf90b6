package comando

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Rendering bounds, matching the classic man-page habit of capping line
// width well below wide terminals.
const (
	maxRenderCols = 70
	minRenderCols = 30
)

const indentUnit = "    "

// Render writes a help model to w as NAME / SYNOPSIS / COMMANDS /
// DESCRIPTION / OPTIONS sections, wrapped to the terminal width when w is a
// terminal. Section headings are bold on terminals and plain otherwise.
func Render(w io.Writer, model *HelpModel) {
	r := &renderer{w: w, cols: maxRenderCols}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.ansi = true
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			if cols > maxRenderCols {
				cols = maxRenderCols
			}
			if cols < minRenderCols {
				cols = minRenderCols
			}
			r.cols = cols
		}
	}

	r.nameSection(model)
	r.synopsisSection(model)
	r.commandsSection(model)
	r.descriptionSection(model)
	r.optionsSection(model)
}

type renderer struct {
	w        io.Writer
	cols     int
	ansi     bool
	sections int
}

func (r *renderer) heading(text string) {
	if r.sections > 0 {
		fmt.Fprint(r.w, "\n")
	}
	r.sections++
	text = strings.ToUpper(text)
	if r.ansi {
		text = "\x1b[1m" + text + "\x1b[0m"
	}
	fmt.Fprintln(r.w, text)
}

func (r *renderer) nameSection(model *HelpModel) {
	if model.Brief == "" {
		return
	}
	name := model.Name
	if len(model.Path) > 0 {
		name = strings.Join(model.Path, " ")
	}
	r.heading("name")
	r.paragraph(name+" - "+model.Brief, indentUnit, indentUnit)
}

func (r *renderer) synopsisSection(model *HelpModel) {
	if model.Synopsis == "" {
		return
	}
	r.heading("synopsis")
	r.paragraph(model.Synopsis, indentUnit, indentUnit+indentUnit)
}

func (r *renderer) commandsSection(model *HelpModel) {
	if len(model.Commands) == 0 {
		return
	}
	width := 0
	for _, cmd := range model.Commands {
		if len(cmd.Name) > width {
			width = len(cmd.Name)
		}
	}

	r.heading("commands")
	for _, cmd := range model.Commands {
		entry := fmt.Sprintf("%-*s", width, cmd.Name)
		if cmd.Brief != "" {
			aligned := indentUnit + entry + indentUnit + "# "
			r.paragraph(cmd.Brief, aligned, strings.Repeat(" ", len(aligned)))
			continue
		}
		fmt.Fprintln(r.w, indentUnit+entry)
	}
}

func (r *renderer) descriptionSection(model *HelpModel) {
	if model.Description == "" {
		return
	}
	r.heading("description")
	for i, block := range strings.Split(model.Description, "\n\n") {
		if i > 0 {
			fmt.Fprint(r.w, "\n")
		}
		r.paragraph(strings.TrimSpace(block), indentUnit, indentUnit)
	}
}

func (r *renderer) optionsSection(model *HelpModel) {
	if len(model.Options) == 0 {
		return
	}
	r.heading("options")
	for i, opt := range model.Options {
		if i > 0 {
			fmt.Fprint(r.w, "\n")
		}
		fmt.Fprintln(r.w, indentUnit+opt.Synopsis)
		text := opt.Description
		if !opt.Flag && opt.Default != nil {
			suffix := fmt.Sprintf("(defaults to: %v)", opt.Default)
			if text == "" {
				text = suffix
			} else {
				text = text + " " + suffix
			}
		}
		if text != "" {
			r.paragraph(text, indentUnit+indentUnit, indentUnit+indentUnit)
		}
	}
}

// paragraph writes text wrapped to the render width. Explicit newlines in
// text are preserved; each resulting line wraps with the subsequent indent.
func (r *renderer) paragraph(text, initialIndent, subsequentIndent string) {
	indent := initialIndent
	for _, line := range strings.Split(text, "\n") {
		for _, wrapped := range wrap(line, r.cols-len(indent)) {
			fmt.Fprintln(r.w, indent+wrapped)
			indent = subsequentIndent
		}
	}
}

// wrap splits text into lines of at most width characters on word
// boundaries. Words longer than width stand alone.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
