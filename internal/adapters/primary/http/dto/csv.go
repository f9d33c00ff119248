package dto

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"id", "title", "description", "price", "createdAt", "isPublished", "shortDescription", "createdAtAgo",
}

// WriteCSV writes a header row followed by one row per listing.
func WriteCSV(w io.Writer, items []CheeseListingResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, it := range items {
		price := ""
		if it.Price != nil {
			price = strconv.Itoa(*it.Price)
		}
		row := []string{
			strconv.FormatInt(it.ID, 10),
			it.Title,
			it.Description,
			price,
			it.CreatedAt,
			strconv.FormatBool(it.IsPublished),
			it.ShortDescription,
			it.CreatedAtAgo,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
