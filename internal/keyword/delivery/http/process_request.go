package http

import (
	"strconv"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *Handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, errUnauth
	}
	return sc, nil
}

func (h *Handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errWrongID
	}
	return id, nil
}

func (h *Handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return listReq{}, model.Scope{}, err
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.keyword.delivery.http.processListRequest: %v", err)
		return listReq{}, model.Scope{}, errWrongQuery
	}
	return req, sc, nil
}

func (h *Handler) processCreateRequest(c *gin.Context) (createReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return createReq{}, model.Scope{}, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.keyword.delivery.http.processCreateRequest: %v", err)
		return createReq{}, model.Scope{}, errWrongBody
	}
	return req, sc, nil
}

func (h *Handler) processUpdateRequest(c *gin.Context) (updateReq, int64, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return updateReq{}, 0, model.Scope{}, err
	}
	id, err := h.processID(c)
	if err != nil {
		return updateReq{}, 0, model.Scope{}, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.keyword.delivery.http.processUpdateRequest: %v", err)
		return updateReq{}, 0, model.Scope{}, errWrongBody
	}
	return req, id, sc, nil
}

func (h *Handler) processIDRequest(c *gin.Context) (int64, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return 0, model.Scope{}, err
	}
	id, err := h.processID(c)
	if err != nil {
		return 0, model.Scope{}, err
	}
	return id, sc, nil
}
