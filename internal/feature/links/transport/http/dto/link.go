// Package dto defines data transfer objects for the links feature's HTTP transport layer.
package dto

import "url_shortener/internal/feature/links/domain/entity"

// CreateLinkReq is accepted as a JSON body or as query/form parameters.
type CreateLinkReq struct {
	LongURL     string  `form:"long_url" json:"long_url" binding:"required"`
	Description *string `form:"description" json:"description" binding:"omitempty,max=200"`
}

// UpdateLinkReq carries the fields to change; omitted fields are kept.
type UpdateLinkReq struct {
	LongURL     *string `json:"long_url"`
	Description *string `json:"description" binding:"omitempty,max=200"`
}

// ListLinksQuery is the pagination of GET /urls/.
type ListLinksQuery struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=10"`
}

// LinkRes is the public representation of a link.
type LinkRes struct {
	ID          uint    `json:"id"`
	ShortURL    string  `json:"short_url"`
	LongURL     string  `json:"long_url"`
	Description *string `json:"description"`
}

// NewLinkRes converts a stored link into its public form.
func NewLinkRes(l *entity.Link) LinkRes {
	return LinkRes{
		ID:          l.ID,
		ShortURL:    l.ShortURL,
		LongURL:     l.LongURL,
		Description: l.Description,
	}
}

// NewLinkListRes converts a page of links, never returning nil.
func NewLinkListRes(links []entity.Link) []LinkRes {
	res := make([]LinkRes, 0, len(links))
	for i := range links {
		res = append(res, NewLinkRes(&links[i]))
	}
	return res
}
