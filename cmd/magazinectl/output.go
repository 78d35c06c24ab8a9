package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"magazine-press/internal/domain/entity"
	"magazine-press/internal/handler/http/dto"
	"magazine-press/internal/repository"
	artUC "magazine-press/internal/usecase/article"
)

const (
	outputText = "text"
	outputJSON = "json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := newTable(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func printEntity(w io.Writer, v fmt.Stringer, jsonForm any) error {
	if outputFormat == outputJSON {
		return writeJSON(w, jsonForm)
	}
	_, err := fmt.Fprintln(w, v.String())
	return err
}

func printAuthor(w io.Writer, a *entity.Author) error {
	return printEntity(w, a, dto.FromAuthor(a))
}

func printMagazine(w io.Writer, m *entity.Magazine) error {
	return printEntity(w, m, dto.FromMagazine(m))
}

func printArticle(w io.Writer, a *entity.Article) error {
	return printEntity(w, a, dto.FromArticle(a))
}

func printAuthors(w io.Writer, authors []*entity.Author) error {
	if outputFormat == outputJSON {
		return writeJSON(w, dto.FromAuthors(authors))
	}
	rows := make([][]string, 0, len(authors))
	for _, a := range authors {
		rows = append(rows, []string{itoa(a.ID), a.Name})
	}
	return renderTable(w, []string{"id", "name"}, rows)
}

func printMagazines(w io.Writer, magazines []*entity.Magazine) error {
	if outputFormat == outputJSON {
		return writeJSON(w, dto.FromMagazines(magazines))
	}
	rows := make([][]string, 0, len(magazines))
	for _, m := range magazines {
		rows = append(rows, []string{itoa(m.ID), m.Name, m.Category})
	}
	return renderTable(w, []string{"id", "name", "category"}, rows)
}

func printArticles(w io.Writer, articles []*entity.Article) error {
	if outputFormat == outputJSON {
		return writeJSON(w, dto.FromArticles(articles))
	}
	rows := make([][]string, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []string{itoa(a.ID), a.Title, itoa(a.AuthorID), itoa(a.MagazineID)})
	}
	return renderTable(w, []string{"id", "title", "author id", "magazine id"}, rows)
}

// printContributors writes null in JSON mode when no author qualifies, as the API does.
func printContributors(w io.Writer, counts []repository.AuthorArticleCount) error {
	if outputFormat == outputJSON {
		return writeJSON(w, dto.FromContributors(counts))
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{itoa(c.Author.ID), c.Author.Name, itoa(c.ArticleCount)})
	}
	return renderTable(w, []string{"id", "name", "articles"}, rows)
}

func printArticleDetail(w io.Writer, d *artUC.Detail) error {
	if outputFormat == outputJSON {
		return writeJSON(w, dto.FromArticleDetail(d.Article, d.Author, d.Magazine))
	}
	_, err := fmt.Fprintf(w, "%s\nby %s\nin %s\n", d.Article, d.Author, d.Magazine)
	return err
}
