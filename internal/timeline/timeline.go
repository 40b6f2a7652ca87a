// Package timeline holds the pure ordering and grouping rules for
// rendering a conversation: when a message starts a new visual group,
// where day separators go, how replies resolve, and how the chat list is
// ordered by recency. Everything here is a pure function of its inputs.
package timeline

import (
	"sort"
	"time"

	"github.com/fontcraft/chat-core/internal/models"
)

// GroupWindow is the maximum gap between two messages from the same
// sender that still renders as one visual group.
const GroupWindow = 5 * time.Minute

// ShouldGroupWithPrevious reports whether cur renders in the same visual
// group as prev. A nil prev, a different sender, or a gap above
// GroupWindow all start a new group.
func ShouldGroupWithPrevious(cur, prev *models.Message) bool {
	if prev == nil {
		return false
	}
	if cur.SenderID != prev.SenderID {
		return false
	}
	return cur.CreatedAt.Sub(prev.CreatedAt) <= GroupWindow
}

// SameDay reports whether a and b fall on the same calendar day.
// Days are compared on local wall-clock components, matching what the
// user sees above a day separator.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// ResolveReply finds the message a reply points at within the same chat's
// history. Unknown or nil ids resolve to nil; a reply to a missing
// message renders as a plain message.
func ResolveReply(msgs []models.Message, id *models.MessageID) *models.Message {
	if id == nil {
		return nil
	}
	for i := range msgs {
		if msgs[i].ID == *id {
			m := msgs[i]
			return &m
		}
	}
	return nil
}

// ThreadItem is one rendered message with its presentation flags.
type ThreadItem struct {
	Message      models.Message  `json:"message"`
	ReplyTo      *models.Message `json:"reply_to,omitempty"`
	FirstInGroup bool            `json:"first_in_group"`
	LastInGroup  bool            `json:"last_in_group"`
	ShowAvatar   bool            `json:"show_avatar"`
	NewDay       bool            `json:"new_day"`
}

// BuildThread walks a chronological message sequence once and assigns
// grouping flags. A message starts a group when ShouldGroupWithPrevious
// says so or when it crosses a day boundary; it is last in its group when
// the next message starts a new one or it is the final message.
func BuildThread(msgs []models.Message) []ThreadItem {
	items := make([]ThreadItem, len(msgs))
	for i := range msgs {
		var prev *models.Message
		if i > 0 {
			prev = &msgs[i-1]
		}
		newDay := prev == nil || !SameDay(msgs[i].CreatedAt, prev.CreatedAt)
		first := newDay || !ShouldGroupWithPrevious(&msgs[i], prev)
		items[i] = ThreadItem{
			Message:      msgs[i],
			ReplyTo:      ResolveReply(msgs, msgs[i].ReplyToID),
			FirstInGroup: first,
			ShowAvatar:   first,
			NewDay:       newDay,
		}
		if i > 0 && first {
			items[i-1].LastInGroup = true
		}
	}
	if len(items) > 0 {
		items[len(items)-1].LastInGroup = true
	}
	return items
}

// SortChatsByActivity orders chats in place, most recent activity first.
// The sort is stable: chats with equal activity times keep their relative
// order, which makes the list deterministic for a fixed transition
// sequence.
func SortChatsByActivity(chats []models.Chat) {
	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].ActivityTime().After(chats[j].ActivityTime())
	})
}
