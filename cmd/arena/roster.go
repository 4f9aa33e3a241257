package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/garsondee/blade-arena/internal/roster"
)

var (
	rosterHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	rosterNameStyle   = lipgloss.NewStyle().Bold(true)
	rosterMetaStyle   = lipgloss.NewStyle().Faint(true)
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List saved players",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		recs, err := store.List()
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println(rosterMetaStyle.Render("No saved players."))
			return nil
		}

		fmt.Println(rosterHeaderStyle.Render(fmt.Sprintf("%d saved player(s)", len(recs))))
		for _, r := range recs {
			portrait := r.Portrait
			if portrait == "" {
				portrait = "(no portrait)"
			}
			fmt.Printf("%s  %s  %s\n",
				rosterNameStyle.Render(fmt.Sprintf("%-18s", r.Name)),
				rosterMetaStyle.Render(r.CreatedAt.Format("2006-01-02")),
				portrait)
		}
		return nil
	},
}

var rosterRmCmd = &cobra.Command{
	Use:   "rm <portrait-ref>",
	Short: "Delete a saved player by portrait reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteByPortrait(args[0]); err != nil {
			return err
		}
		fmt.Println("deleted records with portrait", args[0])
		return nil
	},
}

func init() {
	rosterCmd.AddCommand(rosterRmCmd)
}

func openStore() (*roster.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return roster.Open(cfg.DatabasePath)
}
