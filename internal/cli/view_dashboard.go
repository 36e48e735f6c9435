package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardLoadedMsg signals that the overview has been computed.
type dashboardLoadedMsg struct {
	overview *app.PortfolioOverview
	err      error
}

// dashboardView is the home screen of the TUI. Tab 0 is the portfolio
// overview; each further tab is one value stream with a product cursor.
type dashboardView struct {
	state    *SharedState
	overview *app.PortfolioOverview
	loading  bool
	err      error

	tab    int
	cursor int
	vp     viewport.Model
}

func newDashboardView(state *SharedState) *dashboardView {
	vp := viewport.New(0, 0)
	vp.KeyMap = scrollKeyMap()
	return &dashboardView{
		state:   state,
		loading: true,
		vp:      vp,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "tabs")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "layout")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find product")),
	}
	if v.stream() != nil {
		bindings = append(bindings,
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		)
	}
	return bindings
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

func (v *dashboardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		svc, err := app.portfolio(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		o, err := svc.Overview(ctx, app.overviewRequest(false))
		return dashboardLoadedMsg{overview: o, err: err}
	}
}

// tabLabels returns "Overview" followed by each stream's short name.
func (v *dashboardView) tabLabels() []string {
	labels := []string{"Overview"}
	if v.overview == nil {
		return labels
	}
	for _, vs := range v.overview.ValueStreams {
		labels = append(labels, vs.ShortName)
	}
	return labels
}

// stream returns the value stream of the active tab, or nil on the
// overview tab.
func (v *dashboardView) stream() *app.ValueStreamSummary {
	if v.overview == nil || v.tab == 0 || v.tab > len(v.overview.ValueStreams) {
		return nil
	}
	return &v.overview.ValueStreams[v.tab-1]
}

// selectedProductID returns the product under the cursor on a stream tab.
func (v *dashboardView) selectedProductID() string {
	vs := v.stream()
	if vs == nil || v.cursor >= len(vs.Products) {
		return ""
	}
	return vs.Products[v.cursor].Product.ID
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.overview = msg.overview
		v.refresh(true)
		return v, nil

	case tea.WindowSizeMsg:
		v.refresh(false)
		return v, nil

	case tea.KeyMsg:
		if v.overview == nil {
			return v, nil
		}
		if d := tabKey(msg); d != 0 {
			v.tab = nextTab(v.tab, d, len(v.tabLabels()))
			v.cursor = 0
			v.refresh(true)
			return v, nil
		}
		switch msg.String() {
		case "v":
			v.state.ToggleMode()
			v.refresh(true)
			return v, nil
		case "/":
			return v, v.findProduct()
		case "enter":
			if id := v.selectedProductID(); id != "" {
				return v, pushView(newProductView(v.state, id))
			}
			return v, nil
		case "up", "k":
			if vs := v.stream(); vs != nil {
				if v.cursor > 0 {
					v.cursor--
				}
				v.refresh(false)
				return v, nil
			}
		case "down", "j":
			if vs := v.stream(); vs != nil {
				if v.cursor < len(vs.Products)-1 {
					v.cursor++
				}
				v.refresh(false)
				return v, nil
			}
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

// findProduct opens a picker over every product and opens the chosen one.
func (v *dashboardView) findProduct() tea.Cmd {
	picked := new(string)
	form := wizardSelectProduct(picked, v.overview.ValueStreams...)
	state := v.state
	return startWizardCmd(state, "Find product", form, func() tea.Cmd {
		if *picked == "" {
			return nil
		}
		return pushView(newProductView(state, *picked))
	})
}

// refresh re-renders the body into the viewport. top resets the scroll
// position.
func (v *dashboardView) refresh(top bool) {
	v.vp.Width = v.state.Width
	v.vp.Height = max(v.state.ContentHeight()-2, 1)
	v.vp.SetContent(v.body())
	if top {
		v.vp.GotoTop()
	}
}

func (v *dashboardView) body() string {
	if v.overview == nil {
		return ""
	}
	vs := v.stream()
	if vs == nil {
		return formatter.FormatOverview(v.overview, v.state.Mode)
	}

	var b strings.Builder
	b.WriteString(formatter.ValueStreamHeader(vs))
	if len(vs.Products) == 0 {
		b.WriteString(formatter.Dim("No products in this value stream") + "\n")
		return b.String()
	}
	b.WriteString(formatter.ProductTable(vs.Products, v.cursor))
	b.WriteString("\n" + formatter.Dim("Top products: "))
	names := make([]string, 0, len(vs.TopProducts))
	for _, p := range vs.TopProducts {
		names = append(names, p.Name)
	}
	b.WriteString(formatter.Dim(strings.Join(names, ", ")) + "\n")
	return b.String()
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading portfolio...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	tabs := renderTabs(v.tabLabels(), v.tab)
	if v.state.Height == 0 {
		return tabs + "\n\n" + v.body()
	}
	return tabs + "\n\n" + v.vp.View()
}
