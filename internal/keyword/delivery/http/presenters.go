package http

import (
	"ttiring-notification-srv/internal/keyword"
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/pkg/response"
)

type listReq struct {
	Active bool `form:"active"`
}

func (r listReq) toInput() keyword.ListInput {
	return keyword.ListInput{ActiveOnly: r.Active}
}

type createReq struct {
	Keyword    string `json:"keyword" binding:"required"`
	CategoryID *int64 `json:"categoryId"`
}

func (r createReq) toInput() keyword.CreateInput {
	return keyword.CreateInput{Keyword: r.Keyword, CategoryID: r.CategoryID}
}

// updateReq leaves absent fields untouched. clearCategory removes the category filter.
type updateReq struct {
	Keyword       *string `json:"keyword"`
	CategoryID    *int64  `json:"categoryId"`
	ClearCategory bool    `json:"clearCategory"`
	IsActive      *bool   `json:"isActive"`
}

func (r updateReq) toInput(id int64) keyword.UpdateInput {
	return keyword.UpdateInput{
		ID:            id,
		Keyword:       r.Keyword,
		CategoryID:    r.CategoryID,
		ClearCategory: r.ClearCategory,
		IsActive:      r.IsActive,
	}
}

type keywordResp struct {
	ID             int64              `json:"id"`
	Keyword        string             `json:"keyword"`
	CategoryID     *int64             `json:"categoryId,omitempty"`
	IsActive       bool               `json:"isActive"`
	MatchedCount   int64              `json:"matchedCount"`
	LastNotifiedAt *response.DateTime `json:"lastNotifiedAt,omitempty"`
	CreatedAt      response.DateTime  `json:"createdAt"`
}

func (h *Handler) newKeywordResp(k model.Keyword) keywordResp {
	return keywordResp{
		ID:             k.ID,
		Keyword:        k.Keyword,
		CategoryID:     k.CategoryID,
		IsActive:       k.IsActive,
		MatchedCount:   k.MatchedCount,
		LastNotifiedAt: response.NewDateTime(k.LastNotifiedAt),
		CreatedAt:      response.DateTime(k.CreatedAt),
	}
}

type listResp struct {
	Keywords []keywordResp `json:"keywords"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
}

func (h *Handler) newListResp(kws []model.Keyword) listResp {
	items := make([]keywordResp, 0, len(kws))
	for _, k := range kws {
		items = append(items, h.newKeywordResp(k))
	}
	return listResp{Keywords: items, Total: len(items), Limit: keyword.MaxKeywordsPerUser}
}
