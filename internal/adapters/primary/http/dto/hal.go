package dto

import (
	"net/url"
	"time"

	"cheese-api/internal/core/domain"
	"cheese-api/internal/core/services"
)

type HALLink struct {
	Href string `json:"href"`
}

type HALItemLinks struct {
	Self HALLink `json:"self"`
}

// HALCheeseListing is a listing in application/hal+json.
type HALCheeseListing struct {
	Links HALItemLinks `json:"_links"`
	CheeseListingResponse
}

type HALCollectionLinks struct {
	Self  HALLink   `json:"self"`
	First *HALLink  `json:"first,omitempty"`
	Last  *HALLink  `json:"last,omitempty"`
	Prev  *HALLink  `json:"prev,omitempty"`
	Next  *HALLink  `json:"next,omitempty"`
	Item  []HALLink `json:"item"`
}

type HALEmbedded struct {
	Item []HALCheeseListing `json:"item"`
}

type HALCollection struct {
	Links        HALCollectionLinks `json:"_links"`
	TotalItems   int                `json:"totalItems"`
	ItemsPerPage int                `json:"itemsPerPage"`
	Embedded     HALEmbedded        `json:"_embedded"`
}

func ToHALCheeseListing(l *domain.CheeseListing, now time.Time) HALCheeseListing {
	return HALCheeseListing{
		Links:                 HALItemLinks{Self: HALLink{Href: IRI(l.ID())}},
		CheeseListingResponse: ToCheeseListingResponse(l, now),
	}
}

// ToHALCollection renders a page. Paging links follow the same rule as the
// Hydra view: they appear when there is more than one page or a page was asked for.
func ToHALCollection(page *services.Page, query url.Values, now time.Time) HALCollection {
	embedded := make([]HALCheeseListing, 0, len(page.Items))
	links := make([]HALLink, 0, len(page.Items))
	for _, l := range page.Items {
		embedded = append(embedded, ToHALCheeseListing(l, now))
		links = append(links, HALLink{Href: IRI(l.ID())})
	}

	coll := HALCollection{
		Links: HALCollectionLinks{
			Self: HALLink{Href: collectionIRI(query)},
			Item: links,
		},
		TotalItems:   page.TotalItems,
		ItemsPerPage: page.ItemsPerPage,
		Embedded:     HALEmbedded{Item: embedded},
	}

	last := page.LastPage()
	if last > 1 || query.Has("page") {
		coll.Links.Self = HALLink{Href: pageIRI(query, page.CurrentPage)}
		coll.Links.First = &HALLink{Href: pageIRI(query, 1)}
		coll.Links.Last = &HALLink{Href: pageIRI(query, last)}
		if page.CurrentPage > 1 {
			coll.Links.Prev = &HALLink{Href: pageIRI(query, page.CurrentPage-1)}
		}
		if page.CurrentPage < last {
			coll.Links.Next = &HALLink{Href: pageIRI(query, page.CurrentPage+1)}
		}
	}

	return coll
}

func collectionIRI(query url.Values) string {
	if len(query) == 0 {
		return ResourcePath
	}
	return ResourcePath + "?" + query.Encode()
}
