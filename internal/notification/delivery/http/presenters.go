package http

import (
	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/pkg/paginator"
	"ttiring-notification-srv/pkg/response"
)

type listHistoryReq struct {
	paginator.PaginateQuery
}

func (r listHistoryReq) toInput() notification.ListHistoryInput {
	return notification.ListHistoryInput{PaginateQuery: r.PaginateQuery}
}

type sendTestResp struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

const (
	testSentMessage    = "테스트 알림을 전송했습니다"
	testNotSentMessage = "테스트 알림을 전송하지 못했습니다. 푸시 토큰을 확인하세요"
)

func (h *Handler) newSendTestResp(sent bool) sendTestResp {
	if sent {
		return sendTestResp{Sent: true, Message: testSentMessage}
	}
	return sendTestResp{Message: testNotSentMessage}
}

type historyResp struct {
	ID           int64             `json:"id"`
	NoticeID     int64             `json:"noticeId"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	SentAt       response.DateTime `json:"sentAt"`
}

type listHistoryResp struct {
	Items     []historyResp               `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *Handler) newListHistoryResp(out notification.ListHistoryOutput) listHistoryResp {
	items := make([]historyResp, 0, len(out.Histories))
	for _, hs := range out.Histories {
		items = append(items, newHistoryResp(hs))
	}
	return listHistoryResp{Items: items, Paginator: out.Paginator.ToResponse()}
}

func newHistoryResp(hs model.NotificationHistory) historyResp {
	return historyResp{
		ID:           hs.ID,
		NoticeID:     hs.NoticeID,
		Title:        hs.Title,
		Body:         hs.Body,
		Status:       string(hs.Status),
		ErrorMessage: hs.ErrorMessage,
		SentAt:       response.DateTime(hs.SentAt),
	}
}
