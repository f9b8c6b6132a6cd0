package http

import (
	"ttiring-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List keywords
// @Description List the caller's keyword filters.
// @Tags Keyword
// @Security Bearer
// @Param active query bool false "Only active keywords"
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 401 {object} response.Resp
// @Router /api/v1/keywords [GET]
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	kws, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.keyword.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(kws))
}

// @Summary Create keyword
// @Description Register a keyword filter. A user may hold at most 20.
// @Tags Keyword
// @Security Bearer
// @Param body body createReq true "Keyword"
// @Success 201 {object} response.Resp{data=keywordResp}
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/keywords [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	k, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "internal.keyword.delivery.http.Create: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, h.newKeywordResp(k))
}

// @Summary Update keyword
// @Tags Keyword
// @Security Bearer
// @Param id path int true "Keyword ID"
// @Param body body updateReq true "Changes"
// @Success 200 {object} response.Resp{data=keywordResp}
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/keywords/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, id, sc, err := h.processUpdateRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	k, err := h.uc.Update(ctx, sc, req.toInput(id))
	if err != nil {
		h.l.Warnf(ctx, "internal.keyword.delivery.http.Update: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newKeywordResp(k))
}

// @Summary Toggle keyword
// @Description Flip the active flag of a keyword.
// @Tags Keyword
// @Security Bearer
// @Param id path int true "Keyword ID"
// @Success 200 {object} response.Resp{data=keywordResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/keywords/{id}/toggle [PATCH]
func (h *Handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	k, err := h.uc.Toggle(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "internal.keyword.delivery.http.Toggle: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newKeywordResp(k))
}

// @Summary Delete keyword
// @Tags Keyword
// @Security Bearer
// @Param id path int true "Keyword ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/keywords/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "internal.keyword.delivery.http.Delete: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
