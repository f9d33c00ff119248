package dto

import (
	"net/url"
	"strconv"
	"time"

	"cheese-api/internal/core/domain"
	"cheese-api/internal/core/services"
)

const (
	ResourceType = "cheeses"
	ResourcePath = "/api/cheeses"
	ContextPath  = "/api/contexts/cheeses"

	violationContextPath = "/api/contexts/ConstraintViolationList"
)

// JSONLDCheeseListing is a listing with its linked-data identity.
type JSONLDCheeseListing struct {
	LDContext string `json:"@context,omitempty"`
	LDID      string `json:"@id"`
	LDType    string `json:"@type"`
	CheeseListingResponse
}

func ToJSONLDCheeseListing(l *domain.CheeseListing, now time.Time) JSONLDCheeseListing {
	return JSONLDCheeseListing{
		LDContext:             ContextPath,
		LDID:                  IRI(l.ID()),
		LDType:                ResourceType,
		CheeseListingResponse: ToCheeseListingResponse(l, now),
	}
}

type HydraCollection struct {
	LDContext  string                `json:"@context"`
	LDID       string                `json:"@id"`
	LDType     string                `json:"@type"`
	Member     []JSONLDCheeseListing `json:"hydra:member"`
	TotalItems int                   `json:"hydra:totalItems"`
	View       *HydraView            `json:"hydra:view,omitempty"`
	Search     HydraSearch           `json:"hydra:search"`
}

type HydraView struct {
	LDID     string `json:"@id"`
	LDType   string `json:"@type"`
	First    string `json:"hydra:first,omitempty"`
	Last     string `json:"hydra:last,omitempty"`
	Previous string `json:"hydra:previous,omitempty"`
	Next     string `json:"hydra:next,omitempty"`
}

type HydraSearch struct {
	LDType                 string         `json:"@type"`
	Template               string         `json:"hydra:template"`
	VariableRepresentation string         `json:"hydra:variableRepresentation"`
	Mapping                []HydraMapping `json:"hydra:mapping"`
}

type HydraMapping struct {
	LDType   string `json:"@type"`
	Variable string `json:"variable"`
	Property string `json:"property"`
	Required bool   `json:"required"`
}

// SearchVariables are the filter query parameters the collection accepts.
var SearchVariables = []HydraMapping{
	{LDType: "IriTemplateMapping", Variable: "title", Property: "title"},
	{LDType: "IriTemplateMapping", Variable: "price[between]", Property: "price"},
	{LDType: "IriTemplateMapping", Variable: "price[gt]", Property: "price"},
	{LDType: "IriTemplateMapping", Variable: "price[gte]", Property: "price"},
	{LDType: "IriTemplateMapping", Variable: "price[lt]", Property: "price"},
	{LDType: "IriTemplateMapping", Variable: "price[lte]", Property: "price"},
}

func searchTemplate() HydraSearch {
	template := ResourcePath + "{?"
	for i, m := range SearchVariables {
		if i > 0 {
			template += ","
		}
		template += m.Variable
	}
	template += "}"

	return HydraSearch{
		LDType:                 "hydra:IriTemplate",
		Template:               template,
		VariableRepresentation: "BasicRepresentation",
		Mapping:                SearchVariables,
	}
}

// ToHydraCollection renders a page. query is the request's query string; its
// filters are carried into the view links.
func ToHydraCollection(page *services.Page, query url.Values, now time.Time) HydraCollection {
	members := make([]JSONLDCheeseListing, 0, len(page.Items))
	for _, l := range page.Items {
		m := ToJSONLDCheeseListing(l, now)
		m.LDContext = ""
		members = append(members, m)
	}

	coll := HydraCollection{
		LDContext:  ContextPath,
		LDID:       ResourcePath,
		LDType:     "hydra:Collection",
		Member:     members,
		TotalItems: page.TotalItems,
		Search:     searchTemplate(),
	}

	last := page.LastPage()
	if last > 1 || query.Has("page") {
		view := &HydraView{
			LDID:   pageIRI(query, page.CurrentPage),
			LDType: "hydra:PartialCollectionView",
			First:  pageIRI(query, 1),
			Last:   pageIRI(query, last),
		}
		if page.CurrentPage > 1 {
			view.Previous = pageIRI(query, page.CurrentPage-1)
		}
		if page.CurrentPage < last {
			view.Next = pageIRI(query, page.CurrentPage+1)
		}
		coll.View = view
	}

	return coll
}

func pageIRI(query url.Values, page int) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("page", strconv.Itoa(page))
	return ResourcePath + "?" + q.Encode()
}

// ConstraintViolationList is the body returned for validation failures.
type ConstraintViolationList struct {
	LDContext   string             `json:"@context"`
	LDType      string             `json:"@type"`
	Title       string             `json:"hydra:title"`
	Description string             `json:"hydra:description"`
	Violations  []domain.Violation `json:"violations"`
}

func ToConstraintViolationList(err *domain.ValidationError) ConstraintViolationList {
	return ConstraintViolationList{
		LDContext:   violationContextPath,
		LDType:      "ConstraintViolationList",
		Title:       "An error occurred",
		Description: err.Error(),
		Violations:  err.Violations,
	}
}

// CheeseContext is the JSON-LD context document served at ContextPath.
func CheeseContext() map[string]interface{} {
	return map[string]interface{}{
		"@context": map[string]interface{}{
			"@vocab":           "/api/docs.jsonld#",
			"hydra":            "http://www.w3.org/ns/hydra/core#",
			"title":            "cheeses/title",
			"description":      "cheeses/description",
			"price":            "cheeses/price",
			"createdAt":        "cheeses/createdAt",
			"isPublished":      "cheeses/isPublished",
			"shortDescription": "cheeses/shortDescription",
			"createdAtAgo":     "cheeses/createdAtAgo",
		},
	}
}
