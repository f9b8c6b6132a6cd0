package http

import "ttiring-notification-srv/internal/webhook"

const (
	processedMessage = "웹훅 처리 완료"
	duplicateMessage = "이미 처리된 공지사항"
)

type newNoticeReq struct {
	NoticeID          int64  `json:"noticeId" binding:"required"`
	Title             string `json:"title"`
	Broadcast         bool   `json:"broadcast"`
	CategoryBroadcast bool   `json:"categoryBroadcast"`
}

func (r newNoticeReq) toInput() webhook.NewNoticeInput {
	return webhook.NewNoticeInput{
		NoticeID:          r.NoticeID,
		Title:             r.Title,
		Broadcast:         r.Broadcast,
		CategoryBroadcast: r.CategoryBroadcast,
	}
}

type newNoticeResp struct {
	NoticeID          int64  `json:"noticeId"`
	Title             string `json:"title"`
	NotificationsSent int    `json:"notificationsSent"`
	Message           string `json:"message"`
	Duplicate         bool   `json:"duplicate"`
}

func (h *Handler) newNewNoticeResp(out webhook.NewNoticeOutput) newNoticeResp {
	msg := processedMessage
	if out.Duplicate {
		msg = duplicateMessage
	}
	return newNoticeResp{
		NoticeID:          out.NoticeID,
		Title:             out.Title,
		NotificationsSent: out.NotificationsSent,
		Message:           msg,
		Duplicate:         out.Duplicate,
	}
}

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
