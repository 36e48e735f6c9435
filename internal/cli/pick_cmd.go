package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newPickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a value stream and product interactively, then show it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !app.interactive() {
				return errors.New("pick needs an interactive terminal; use 'horizon product <id>'")
			}
			svc, err := app.portfolio(cmd.Context())
			if err != nil {
				return err
			}
			o, err := svc.Overview(cmd.Context(), app.overviewRequest(false))
			if err != nil {
				return err
			}

			var streamID string
			form := wizardSelectStream(o.ValueStreams, &streamID)
			if form == nil {
				return errors.New("the portfolio has no value streams")
			}
			if err := runForm(form); err != nil {
				return err
			}
			vs, err := svc.ValueStream(cmd.Context(), streamID, app.overviewRequest(false).TopN)
			if err != nil {
				return err
			}

			var productID string
			form = wizardSelectProduct(&productID, *vs)
			if form == nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValueStreamDetail(vs))
				return nil
			}
			if err := runForm(form); err != nil {
				return err
			}
			d, err := svc.Product(cmd.Context(), productID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProductDetail(d, app.now()))
			return nil
		},
	}
}

func runForm(form *huh.Form) error {
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("cancelled")
		}
		return err
	}
	return nil
}
