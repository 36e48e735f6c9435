package cli

import (
	"testing"

	"github.com/alexanderramin/horizon/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals (view
// stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size and drains
// Init(), which computes the overview synchronously.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(160, 60))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Dashboard returns the bottom dashboard view.
func (d *TestDriver) Dashboard() *dashboardView {
	return d.appModel().viewStack[0].(*dashboardView)
}

// Product returns the active product view, or nil.
func (d *TestDriver) Product() *productView {
	m := d.appModel()
	pv, _ := m.activeView().(*productView)
	return pv
}

// Plain returns the rendered view with ANSI codes removed.
func (d *TestDriver) Plain() string {
	return stripANSI(d.View())
}
