package handlers

import (
	"html/template"
	"strconv"

	"cheese-api/internal/adapters/primary/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// Descriptions are already stored with <br /> markup; they are escaped here
// like every other field.
var htmlTemplate = template.Must(template.New("cheeses").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Heading}}</title></head>
<body>
<h1>{{.Heading}}</h1>
{{if .Total}}<p>{{.Total}} cheese listings</p>{{end}}
<table>
<thead><tr><th>id</th><th>title</th><th>shortDescription</th><th>price</th><th>createdAt</th><th>isPublished</th><th>createdAtAgo</th></tr></thead>
<tbody>
{{range .Items}}<tr><td><a href="{{.IRI}}">{{.ID}}</a></td><td>{{.Title}}</td><td>{{.ShortDescription}}</td><td>{{.PriceText}}</td><td>{{.CreatedAt}}</td><td>{{.IsPublished}}</td><td>{{.CreatedAtAgo}}</td></tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type htmlRow struct {
	dto.CheeseListingResponse
	IRI       string
	PriceText string
}

type htmlPage struct {
	Heading string
	Total   int
	Items   []htmlRow
}

func writeHTML(c *gin.Context, status int, heading string, total int, items []dto.CheeseListingResponse) {
	rows := make([]htmlRow, 0, len(items))
	for _, it := range items {
		row := htmlRow{CheeseListingResponse: it, IRI: dto.IRI(it.ID)}
		if it.Price != nil {
			row.PriceText = strconv.Itoa(*it.Price)
		}
		rows = append(rows, row)
	}
	c.Render(status, render.HTML{
		Template: htmlTemplate,
		Name:     "cheeses",
		Data:     htmlPage{Heading: heading, Total: total, Items: rows},
	})
}
