package main

import (
	"github.com/spf13/cobra"

	"magazine-press/internal/domain/entity"
	authorUC "magazine-press/internal/usecase/author"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Create and inspect authors",
}

var authorCreateCmd = &cobra.Command{
	Use:   "create ID NAME",
	Short: "Load the author with ID, creating it when absent",
	Long: `Load the author with ID, creating it when absent.

An existing row is never overwritten: the stored author is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("id", args[0])
		if err != nil {
			return err
		}
		a, err := app.authors.LoadOrCreate(cmd.Context(), authorUC.CreateInput{ID: id, Name: args[1]})
		if err != nil {
			return err
		}
		return printAuthor(cmd.OutOrStdout(), a)
	},
}

var authorShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("id", args[0])
		if err != nil {
			return err
		}
		a, err := app.authors.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printAuthor(cmd.OutOrStdout(), a)
	},
}

var authorArticlesCmd = &cobra.Command{
	Use:   "articles ID",
	Short: "List the articles written by an author",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("author_id", args[0])
		if err != nil {
			return err
		}
		articles, err := app.authors.Articles(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printArticles(cmd.OutOrStdout(), articles)
	},
}

var authorMagazinesCmd = &cobra.Command{
	Use:   "magazines ID",
	Short: "List the magazines an author has written for",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("author_id", args[0])
		if err != nil {
			return err
		}
		magazines, err := app.authors.Magazines(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printMagazines(cmd.OutOrStdout(), magazines)
	},
}

func init() {
	rootCmd.AddCommand(authorCmd)
	authorCmd.AddCommand(authorCreateCmd, authorShowCmd, authorArticlesCmd, authorMagazinesCmd)
}
