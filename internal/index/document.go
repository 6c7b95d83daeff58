package index

import (
	"encoding/json"
	"strings"
)

// Document is one entry in the search index. The Search* projections are
// derived lower-cased copies of the source fields, computed once on
// ingestion so ranking never re-folds case. They are pure functions of the
// source fields and are never mutated after normalization.
type Document struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Section     string `json:"section"`
	Permalink   string `json:"permalink"`
	Date        string `json:"date"`

	SearchTitle       string `json:"-"`
	SearchDescription string `json:"-"`
	SearchSection     string `json:"-"`
}

// UnmarshalJSON accepts both the long "description" key and the short
// "desc" key the static-site index generator emits.
func (d *Document) UnmarshalJSON(data []byte) error {
	type document Document
	aux := struct {
		*document
		Desc string `json:"desc"`
	}{document: (*document)(d)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if d.Description == "" {
		d.Description = aux.Desc
	}
	return nil
}

func (d *Document) normalize() {
	d.SearchTitle = strings.ToLower(d.Title)
	d.SearchDescription = strings.ToLower(d.Description)
	d.SearchSection = strings.ToLower(d.Section)
}
