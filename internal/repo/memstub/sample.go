package memstub

import (
	"time"

	"github.com/fontcraft/chat-core/internal/models"
	"github.com/fontcraft/chat-core/pkg/util"
)

// Seed data for the FontCraft demo backend. The first user is the local
// user; every seeded conversation includes them.

func sampleUsers() []models.User {
	return []models.User{
		{ID: "user-1", DisplayName: "You", IsOnline: true},
		{
			ID:          "user-2",
			DisplayName: "FontCraft Assistant",
			AvatarRef:   "🤖",
			IsOnline:    true,
			LastSeenAt:  util.Ptr(time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)),
		},
		{ID: "user-3", DisplayName: "Typography Expert", AvatarRef: "✨", IsOnline: true},
		{ID: "user-4", DisplayName: "Font Advisor", AvatarRef: "🎨", IsOnline: true},
		{ID: "user-5", DisplayName: "Custom Type Designer", AvatarRef: "📝", IsOnline: true},
		{
			ID:          "user-6",
			DisplayName: "Brand Identity Bot",
			AvatarRef:   "🏢",
			IsOnline:    false,
			LastSeenAt:  util.Ptr(time.Date(2024, 1, 15, 9, 45, 0, 0, time.UTC)),
		},
	}
}

func textMsg(id string, chat models.ChatID, sender models.UserID, content string, at time.Time) models.Message {
	return models.Message{
		ID:        models.MessageID(id),
		ChatID:    chat,
		SenderID:  sender,
		Content:   content,
		Kind:      models.MessageKindText,
		CreatedAt: at,
	}
}

func sampleChats(users []models.User) []models.Chat {
	at := func(hour, min int) time.Time {
		return time.Date(2024, 1, 15, hour, min, 0, 0, time.UTC)
	}

	welcome := []models.Message{
		textMsg("msg-bot-1", "chat-1", "user-2",
			"👋 Welcome to FontCraft! I'm here to help you discover the perfect typeface for your project. What kind of design are you working on?", at(10, 30)),
		textMsg("msg-you-1", "chat-1", "user-1",
			"Hi! I'm designing a logo for a modern tech startup. Looking for something clean and professional.", at(10, 32)),
		textMsg("msg-bot-2", "chat-1", "user-2",
			"Perfect choice! For tech startups, I'd recommend exploring our geometric sans-serif collection. Would you like to see some samples?", at(10, 33)),
		textMsg("msg-you-2", "chat-1", "user-1",
			"Yes, that sounds great! I'd especially like to see the TechForward family.", at(10, 35)),
		textMsg("msg-bot-3", "chat-1", "user-2",
			"Excellent! TechForward comes in 8 weights from Thin to Black. I'll prepare a sample sheet for you right away! 🎨", at(10, 36)),
	}

	typography := []models.Message{
		textMsg("msg-expert-1", "chat-2", "user-3",
			"🌟 Hello! I'm your Typography Expert. Let me help you create a harmonious typographic hierarchy!", at(9, 0)),
		textMsg("msg-you-3", "chat-2", "user-1",
			"That would be amazing! I'm working on an e-commerce site for handmade jewelry.", at(9, 15)),
		textMsg("msg-expert-2", "chat-2", "user-3",
			"How lovely! For jewelry brands, I suggest pairing an elegant serif for headings with a clean sans-serif for body text.", at(9, 30)),
		textMsg("msg-you-4", "chat-2", "user-1",
			"That combination sounds perfect! How do I ensure good contrast and readability?", at(9, 45)),
	}

	custom := []models.Message{
		textMsg("msg-designer-1", "chat-3", "user-5",
			"✨ Greetings! I'm here to discuss custom typeface creation. Looking to create something unique for your brand?", at(8, 0)),
		textMsg("msg-you-5", "chat-3", "user-1",
			"Yes! I represent a luxury hotel chain and we want a signature typeface that reflects our premium brand.", at(8, 15)),
		textMsg("msg-designer-2", "chat-3", "user-5",
			"Wonderful! We can create a bespoke font family that embodies sophistication and your brand values. Shall we schedule a consultation?", at(8, 20)),
	}

	return []models.Chat{
		{
			ID:           "chat-1",
			Name:         "FontCraft Assistant",
			Kind:         models.ChatKindDirect,
			Participants: []models.User{users[0], users[1]},
			Messages:     welcome,
			UnreadCount:  1,
			CreatedAt:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    at(10, 36),
		},
		{
			ID:           "chat-2",
			Name:         "Typography Expert",
			Kind:         models.ChatKindDirect,
			Participants: []models.User{users[0], users[2]},
			Messages:     typography,
			CreatedAt:    time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    at(9, 45),
			Description:  "Font pairing and typography guidance",
		},
		{
			ID:           "chat-3",
			Name:         "Custom Type Designer",
			Kind:         models.ChatKindDirect,
			Participants: []models.User{users[0], users[4]},
			Messages:     custom,
			CreatedAt:    time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			UpdatedAt:    at(8, 20),
		},
	}
}
