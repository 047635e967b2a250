package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zerohunger/internal/yield"
)

type field int

const (
	cropField field = iota
	soilField
	areaField
	rainfallField
	fertilizerField
	fieldCount
)

var numericLabels = [...]string{
	"Enter Land Area (in acres)",
	"Enter Rainfall (in mm)",
	"Fertilizer Used (kg)",
}

// form collects yield inputs: two selectors followed by three numeric fields.
type form struct {
	crops   []yield.Crop
	soils   []yield.Soil
	crop    int
	soil    int
	inputs  [3]textinput.Model
	focused field
	result  string
	err     string
}

func newForm() form {
	f := form{crops: yield.Crops(), soils: yield.Soils()}
	defaults := [...]string{"0.5", "0.0", "0.0"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "  "
		ti.CharLimit = 12
		ti.SetValue(defaults[i])
		f.inputs[i] = ti
	}
	return f
}

func (f *form) focus() {
	if f.focused >= areaField {
		f.inputs[f.focused-areaField].Focus()
	}
}

func (f *form) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *form) move(delta int) {
	f.blur()
	f.focused = field((int(f.focused) + delta + int(fieldCount)) % int(fieldCount))
	f.focus()
}

func (f form) update(msg tea.Msg, svc AssistantPort) (form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyUp:
			f.move(-1)
			return f, nil
		case tea.KeyDown:
			f.move(1)
			return f, nil
		case tea.KeyEnter:
			f.submit(svc)
			return f, nil
		case tea.KeyLeft, tea.KeyRight:
			step := 1
			if key.Type == tea.KeyLeft {
				step = -1
			}
			switch f.focused {
			case cropField:
				f.crop = (f.crop + step + len(f.crops)) % len(f.crops)
				return f, nil
			case soilField:
				f.soil = (f.soil + step + len(f.soils)) % len(f.soils)
				return f, nil
			}
		}
	}
	if f.focused < areaField {
		return f, nil
	}
	var cmd tea.Cmd
	i := f.focused - areaField
	f.inputs[i], cmd = f.inputs[i].Update(msg)
	return f, cmd
}

// submit validates through the assistant; out-of-range values are reported, never clamped.
func (f *form) submit(svc AssistantPort) {
	f.result, f.err = "", ""
	values := make([]float64, len(f.inputs))
	for i := range f.inputs {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.inputs[i].Value()), 64)
		if err != nil {
			f.err = fmt.Sprintf("%s: %q is not a number", numericLabels[i], f.inputs[i].Value())
			return
		}
		values[i] = v
	}
	in := yield.Inputs{
		Crop:       f.crops[f.crop],
		Soil:       f.soils[f.soil],
		Area:       values[0],
		Rainfall:   values[1],
		Fertilizer: values[2],
	}
	tons, err := svc.EstimateYield(in)
	if err != nil {
		f.err = "Error: " + err.Error()
		return
	}
	f.result = "🧑‍🌾 " + yield.Format(in, tons)
}

func (f form) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🌱 Simple Crop Yield Predictor") + "\n")
	b.WriteString(captionStyle.Render("Estimate expected crop yield based on basic inputs.") + "\n\n")
	b.WriteString(f.selector("Select Crop", string(f.crops[f.crop]), cropField))
	b.WriteString(f.selector("Select Soil Type", string(f.soils[f.soil]), soilField))
	for i, label := range numericLabels {
		marker := "  "
		if f.focused == areaField+field(i) {
			marker = selectedStyle.Render("> ")
		}
		b.WriteString(marker + label + "\n" + f.inputs[i].View() + "\n")
	}
	b.WriteString("\n")
	switch {
	case f.err != "":
		b.WriteString(errorStyle.Render(f.err))
	case f.result != "":
		b.WriteString(statusStyle.Render(f.result))
	default:
		b.WriteString(captionStyle.Render("↑/↓ move • ←/→ change • enter predict • tab switch"))
	}
	return b.String()
}

func (f form) selector(label, value string, fd field) string {
	if f.focused == fd {
		return selectedStyle.Render("> ") + label + ": " + selectedStyle.Render("‹ "+value+" ›") + "\n"
	}
	return "  " + label + ": " + value + "\n"
}
