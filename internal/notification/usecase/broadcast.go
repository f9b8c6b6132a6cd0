package usecase

import (
	"context"
	"fmt"
	"strconv"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/pkg/fcm"
)

func (uc *usecase) SendImportantBroadcast(ctx context.Context, notice model.Notice) (bool, error) {
	if !notice.IsImportant {
		uc.l.Infof(ctx, "internal.notification.usecase.SendImportantBroadcast: notice=%d is not important, skipped", notice.ID)
		return false, nil
	}

	msg := fcm.Message{
		Title: notification.ImportantNoticeTitle,
		Body:  truncateBody(notice.Title),
		Data:  noticeData(notice, notification.TypeImportantNotice),
	}
	if err := uc.sender.SendTopic(ctx, notification.TopicAllUsers, msg); err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.SendImportantBroadcast: notice=%d: %v", notice.ID, err)
		return false, nil
	}

	uc.l.Infof(ctx, "internal.notification.usecase.SendImportantBroadcast: notice=%d sent to %s", notice.ID, notification.TopicAllUsers)
	return true, nil
}

func (uc *usecase) SendCategoryNotification(ctx context.Context, notice model.Notice) (bool, error) {
	if notice.CategoryID == nil {
		return false, nil
	}

	name := notice.CategoryName
	if name == "" {
		name = strconv.FormatInt(*notice.CategoryID, 10)
	}
	data := noticeData(notice, notification.TypeCategoryNotice)
	data["categoryName"] = name

	topic := notification.CategoryTopicPrefix + strconv.FormatInt(*notice.CategoryID, 10)
	msg := fcm.Message{
		Title: fmt.Sprintf(notification.CategoryTitleFormat, name),
		Body:  truncateBody(notice.Title),
		Data:  data,
	}
	if err := uc.sender.SendTopic(ctx, topic, msg); err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.SendCategoryNotification: topic=%s: %v", topic, err)
		return false, nil
	}
	return true, nil
}
