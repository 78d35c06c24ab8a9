package main

import (
	"github.com/spf13/cobra"

	"magazine-press/internal/domain/entity"
	artUC "magazine-press/internal/usecase/article"
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Publish and inspect articles",
}

var articleCreateCmd = &cobra.Command{
	Use:   "create AUTHOR_ID MAGAZINE_ID TITLE",
	Short: "Insert a new article",
	Long: `Insert a new article. Every call inserts a new row, even for identical input.

The title must be 5-50 characters long.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		authorID, err := entity.ParseID("author_id", args[0])
		if err != nil {
			return err
		}
		magazineID, err := entity.ParseID("magazine_id", args[1])
		if err != nil {
			return err
		}
		content, _ := cmd.Flags().GetString("content")

		a, err := app.articles.Create(cmd.Context(), artUC.CreateInput{
			Title:      args[2],
			Content:    content,
			AuthorID:   authorID,
			MagazineID: magazineID,
		})
		if err != nil {
			return err
		}
		return printArticle(cmd.OutOrStdout(), a)
	},
}

var articleShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadArticle(cmd, args[0])
		if err != nil {
			return err
		}
		return printArticle(cmd.OutOrStdout(), a)
	},
}

var articleAuthorCmd = &cobra.Command{
	Use:   "author ID",
	Short: "Show the author of an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadArticle(cmd, args[0])
		if err != nil {
			return err
		}
		author, err := app.articles.Author(cmd.Context(), a)
		if err != nil {
			return err
		}
		return printAuthor(cmd.OutOrStdout(), author)
	},
}

var articleMagazineCmd = &cobra.Command{
	Use:   "magazine ID",
	Short: "Show the magazine an article was published in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadArticle(cmd, args[0])
		if err != nil {
			return err
		}
		m, err := app.articles.Magazine(cmd.Context(), a)
		if err != nil {
			return err
		}
		return printMagazine(cmd.OutOrStdout(), m)
	},
}

var articleDetailCmd = &cobra.Command{
	Use:   "detail ID",
	Short: "Show an article with its author and magazine",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := entity.ParseID("id", args[0])
		if err != nil {
			return err
		}
		d, err := app.articles.Detail(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printArticleDetail(cmd.OutOrStdout(), d)
	},
}

func loadArticle(cmd *cobra.Command, raw string) (*entity.Article, error) {
	id, err := entity.ParseID("id", raw)
	if err != nil {
		return nil, err
	}
	return app.articles.Get(cmd.Context(), id)
}

func init() {
	rootCmd.AddCommand(articleCmd)
	articleCmd.AddCommand(articleCreateCmd, articleShowCmd, articleAuthorCmd, articleMagazineCmd, articleDetailCmd)

	articleCreateCmd.Flags().String("content", "", "article body")
}
