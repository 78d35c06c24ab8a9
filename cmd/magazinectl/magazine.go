package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"magazine-press/internal/domain/entity"
	magUC "magazine-press/internal/usecase/magazine"
)

var magazineCmd = &cobra.Command{
	Use:   "magazine",
	Short: "Create, rename and query magazines",
}

var magazineCreateCmd = &cobra.Command{
	Use:   "create ID NAME CATEGORY",
	Short: "Load the magazine with ID, creating it when absent",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("id", args[0])
		if err != nil {
			return err
		}
		m, err := app.magazines.LoadOrCreate(cmd.Context(), magUC.CreateInput{ID: id, Name: args[1], Category: args[2]})
		if err != nil {
			return err
		}
		return printMagazine(cmd.OutOrStdout(), m)
	},
}

var magazineShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one magazine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMagazine(cmd, args[0])
		if err != nil {
			return err
		}
		return printMagazine(cmd.OutOrStdout(), m)
	},
}

var magazineRenameCmd = &cobra.Command{
	Use:   "rename ID",
	Short: "Change a magazine's name and/or category",
	Example: `  magazinectl magazine rename 1 --name Wired
  magazinectl magazine rename 1 --category Science`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		category, _ := cmd.Flags().GetString("category")
		if name == "" && category == "" {
			return fmt.Errorf("at least one of --name or --category is required")
		}

		m, err := loadMagazine(cmd, args[0])
		if err != nil {
			return err
		}
		if name != "" {
			if err := m.SetName(name); err != nil {
				return err
			}
		}
		if category != "" {
			if err := m.SetCategory(category); err != nil {
				return err
			}
		}
		if err := app.magazines.Save(cmd.Context(), m); err != nil {
			return err
		}
		return printMagazine(cmd.OutOrStdout(), m)
	},
}

var magazineArticlesCmd = &cobra.Command{
	Use:   "articles ID",
	Short: "List the articles published in a magazine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("magazine_id", args[0])
		if err != nil {
			return err
		}
		articles, err := app.magazines.Articles(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printArticles(cmd.OutOrStdout(), articles)
	},
}

var magazineContributorsCmd = &cobra.Command{
	Use:   "contributors ID",
	Short: "List the distinct authors who wrote for a magazine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("magazine_id", args[0])
		if err != nil {
			return err
		}
		authors, err := app.magazines.Contributors(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printAuthors(cmd.OutOrStdout(), authors)
	},
}

var magazineTitlesCmd = &cobra.Command{
	Use:   "titles ID",
	Short: "Print the titles of a magazine's articles, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("magazine_id", args[0])
		if err != nil {
			return err
		}
		titles, err := app.magazines.ArticleTitles(cmd.Context(), id)
		if err != nil {
			return err
		}
		if outputFormat == outputJSON {
			// null when the magazine has no articles
			return writeJSON(cmd.OutOrStdout(), titles)
		}
		for _, title := range titles {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), title); err != nil {
				return err
			}
		}
		return nil
	},
}

var magazineContributingAuthorsCmd = &cobra.Command{
	Use:   "contributing-authors ID",
	Short: fmt.Sprintf("List authors with more than %d articles in a magazine", magUC.ContributingAuthorThreshold),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("magazine_id", args[0])
		if err != nil {
			return err
		}
		counts, err := app.magazines.ContributingAuthors(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printContributors(cmd.OutOrStdout(), counts)
	},
}

func loadMagazine(cmd *cobra.Command, raw string) (*entity.Magazine, error) {
	id, err := entity.ParseID("id", raw)
	if err != nil {
		return nil, err
	}
	return app.magazines.Get(cmd.Context(), id)
}

func init() {
	rootCmd.AddCommand(magazineCmd)
	magazineCmd.AddCommand(
		magazineCreateCmd,
		magazineShowCmd,
		magazineRenameCmd,
		magazineArticlesCmd,
		magazineContributorsCmd,
		magazineTitlesCmd,
		magazineContributingAuthorsCmd,
	)

	magazineRenameCmd.Flags().String("name", "", "new name (2-16 characters)")
	magazineRenameCmd.Flags().String("category", "", "new category")
}
