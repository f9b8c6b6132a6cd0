package usecase

import (
	"strconv"
	"unicode/utf8"

	"ttiring-notification-srv/internal/model"
	"ttiring-notification-srv/internal/notification"
	"ttiring-notification-srv/pkg/fcm"
)

func truncateBody(s string) string {
	if utf8.RuneCountInString(s) <= notification.BodyMaxRunes {
		return s
	}
	return string([]rune(s)[:notification.BodyMaxRunes]) + "..."
}

func noticeData(n model.Notice, kind string) map[string]string {
	data := map[string]string{
		"type":        kind,
		"noticeId":    strconv.FormatInt(n.ID, 10),
		"noticeTitle": n.Title,
		"noticeUrl":   n.URL,
	}
	if n.CategoryID != nil {
		data["categoryId"] = strconv.FormatInt(*n.CategoryID, 10)
	}
	return data
}

func newNoticeMessage(n model.Notice) fcm.Message {
	return fcm.Message{
		Title: notification.NewNoticeTitle,
		Body:  truncateBody(n.Title),
		Data:  noticeData(n, notification.TypeNewNotice),
	}
}

// ownerTarget is the device one matched owner is reached on.
type ownerTarget struct {
	UserID int64
	Token  string
}

type targets struct {
	owners []ownerTarget
	// tokens holds each distinct token once, in first-seen order.
	tokens []string
}

// resolveTargets keeps one entry per owner and drops owners that cannot receive a push.
func resolveTargets(matches []model.KeywordMatch) targets {
	var t targets
	seenOwner := make(map[int64]bool, len(matches))
	seenToken := make(map[string]bool, len(matches))

	for _, m := range matches {
		if seenOwner[m.UserID] || !m.Deliverable() {
			continue
		}
		seenOwner[m.UserID] = true
		t.owners = append(t.owners, ownerTarget{UserID: m.UserID, Token: m.PushToken})

		if !seenToken[m.PushToken] {
			seenToken[m.PushToken] = true
			t.tokens = append(t.tokens, m.PushToken)
		}
	}
	return t
}

func matchedIDs(matches []model.KeywordMatch) []int64 {
	ids := make([]int64, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids
}

// chunk splits tokens into consecutive slices of at most size elements.
func chunk(tokens []string, size int) [][]string {
	var out [][]string
	for start := 0; start < len(tokens); start += size {
		out = append(out, tokens[start:min(start+size, len(tokens))])
	}
	return out
}
