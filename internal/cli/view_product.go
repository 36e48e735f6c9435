package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// productLoadedMsg carries a product and the ordered product IDs of its
// value stream.
type productLoadedMsg struct {
	id       string
	detail   *app.ProductDetail
	siblings []string
	err      error
}

// productView shows one product with a tab per section: roadmap, risks,
// stakeholders and the RACI matrix.
type productView struct {
	state     *SharedState
	productID string
	detail    *app.ProductDetail
	siblings  []string
	loading   bool
	err       error

	section int
	vp      viewport.Model
}

func newProductView(state *SharedState, productID string) *productView {
	vp := viewport.New(0, 0)
	vp.KeyMap = scrollKeyMap()
	return &productView{
		state:     state,
		productID: productID,
		loading:   true,
		vp:        vp,
	}
}

func (v *productView) ID() ViewID { return ViewProduct }

func (v *productView) Title() string {
	if v.detail != nil {
		return v.detail.Product.Name
	}
	return v.productID
}

func (v *productView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "sections")),
		key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "prev/next product")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "back")),
	}
}

func (v *productView) Init() tea.Cmd {
	app := v.state.App
	id := v.productID
	return func() tea.Msg {
		ctx := context.Background()
		svc, err := app.portfolio(ctx)
		if err != nil {
			return productLoadedMsg{id: id, err: err}
		}
		d, err := svc.Product(ctx, id)
		if err != nil {
			return productLoadedMsg{id: id, err: err}
		}
		var siblings []string
		if vs, err := svc.ValueStream(ctx, d.ValueStreamID, app.overviewRequest(false).TopN); err == nil {
			for _, ps := range vs.Products {
				siblings = append(siblings, ps.Product.ID)
			}
		}
		return productLoadedMsg{id: id, detail: d, siblings: siblings}
	}
}

func (v *productView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case productLoadedMsg:
		if msg.id != v.productID {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		v.detail = msg.detail
		v.siblings = msg.siblings
		v.refresh(true)
		return v, nil

	case tea.WindowSizeMsg:
		v.refresh(false)
		return v, nil

	case tea.KeyMsg:
		if d := tabKey(msg); d != 0 {
			v.section = nextTab(v.section, d, len(formatter.ProductSections()))
			v.refresh(true)
			return v, nil
		}
		switch msg.String() {
		case "b", "backspace":
			return v, popView()
		case "]":
			return v, v.step(1)
		case "[":
			return v, v.step(-1)
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

// step replaces this view with the neighbouring product of the same value
// stream, wrapping at either end.
func (v *productView) step(delta int) tea.Cmd {
	if len(v.siblings) < 2 {
		return nil
	}
	pos := 0
	for i, id := range v.siblings {
		if id == v.productID {
			pos = i
			break
		}
	}
	next := newProductView(v.state, v.siblings[nextTab(pos, delta, len(v.siblings))])
	next.section = v.section
	return replaceView(next)
}

func (v *productView) refresh(top bool) {
	v.vp.Width = v.state.Width
	v.vp.Height = max(v.state.ContentHeight(), 1)
	v.vp.SetContent(v.body())
	if top {
		v.vp.GotoTop()
	}
}

func (v *productView) body() string {
	if v.detail == nil {
		return ""
	}
	sections := formatter.ProductSections()
	labels := make([]string, 0, len(sections))
	for _, s := range sections {
		labels = append(labels, s.String())
	}

	var b strings.Builder
	b.WriteString(formatter.ProductHeader(v.detail))
	b.WriteString("\n")
	b.WriteString(formatter.ProductMetrics(v.detail))
	b.WriteString("\n\n")
	b.WriteString(renderTabs(labels, v.section))
	if n := len(v.siblings); n > 1 {
		pos := 0
		for i, id := range v.siblings {
			if id == v.productID {
				pos = i
			}
		}
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("(%d/%d in %s)", pos+1, n, v.detail.ValueStreamName)))
	}
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatSection(v.detail, sections[v.section], v.state.App.now()))
	return b.String()
}

func (v *productView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading product...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.state.Height == 0 {
		return v.body()
	}
	return v.vp.View()
}
