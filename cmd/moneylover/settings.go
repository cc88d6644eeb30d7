package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/cli"
	"github.com/buisynguyen2008-lgtm/AppQuanLyTaiChinhCaNhan/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change application settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			settings := s.Settings()
			pin := "off"
			if settings.PinEnabled {
				pin = "on"
			}

			fmt.Println(cli.FormatTitle("Settings"))
			fmt.Printf("currency: %s\n", settings.Currency)
			fmt.Printf("theme: %s\n", settings.Theme)
			fmt.Printf("pin: %s\n", pin)
			fmt.Printf("onboarding seen: %v\n", settings.SeenOnboarding)
			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	var (
		currency   string
		theme      string
		pinEnabled bool
		pinCode    string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long: `Change one or more settings. Only the flags you pass are updated;
everything else keeps its current value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var patch model.SettingsPatch
			if cmd.Flags().Changed("currency") {
				patch.Currency = &currency
			}
			if cmd.Flags().Changed("theme") {
				t := model.Theme(theme)
				switch t {
				case model.ThemeLight, model.ThemeDark, model.ThemeSystem:
				default:
					return fmt.Errorf("invalid theme %q, expected light, dark, or system", theme)
				}
				patch.Theme = &t
			}
			if cmd.Flags().Changed("pin-enabled") {
				patch.PinEnabled = &pinEnabled
			}
			if cmd.Flags().Changed("pin") {
				patch.PinCode = &pinCode
			}

			s, closeStore, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			s.UpdateSettings(patch)
			fmt.Println(cli.FormatSuccess("Settings updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "display currency (VND, USD, ...)")
	cmd.Flags().StringVar(&theme, "theme", "", "light, dark, or system")
	cmd.Flags().BoolVar(&pinEnabled, "pin-enabled", false, "require a PIN on launch")
	cmd.Flags().StringVar(&pinCode, "pin", "", "PIN code")

	return cmd
}
