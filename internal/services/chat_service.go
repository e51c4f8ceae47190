package services

import "strings"

type ChatServiceInterface interface {
	Reply(message string, quick bool) string
}

// ChatService answers with fixed scripted replies keyed on message
// keywords. No model call is made; replies are deterministic.
type ChatService struct{}

func NewChatService() ChatServiceInterface {
	return &ChatService{}
}

func (s *ChatService) Reply(message string, quick bool) string {
	lower := strings.ToLower(message)
	if quick {
		return quickReply(lower)
	}
	return fullReply(lower)
}

// quickReply is the floating-widget response set: short answers for the
// most common topics.
func quickReply(lower string) string {
	if strings.Contains(lower, "beach") {
		return "🏖️ Tarkarli and Malvan beaches are must-visits! Crystal clear waters perfect for water sports. Would you like specific recommendations?"
	}
	if strings.Contains(lower, "food") {
		return "🍽️ Try the famous Malvani fish curry, koliwada prawns, and sol kadhi! I can suggest great restaurants too."
	}
	if strings.Contains(lower, "hello") || strings.Contains(lower, "hi") {
		return "Hello! 😊 I'm here to help you explore Konkan. What would you like to know about?"
	}
	return "That's interesting! For detailed information, check out our full AI chat assistant. I can help with quick questions about Konkan travel! 🌊"
}

func fullReply(lower string) string {
	if strings.Contains(lower, "beach") || strings.Contains(lower, "tarkarli") || strings.Contains(lower, "malvan") {
		return "🏖️ The Konkan coast has some of India's most pristine beaches! Tarkarli Beach is famous for its crystal-clear waters and water sports. Malvan Beach offers excellent scuba diving opportunities. For a peaceful experience, try Vengurla or Devbagh beaches. The best time to visit is October to March when the weather is pleasant."
	}
	if strings.Contains(lower, "food") || strings.Contains(lower, "cuisine") || strings.Contains(lower, "malvani") {
		return "🍽️ Malvani cuisine is a treat for seafood lovers! Must-try dishes include Koliwada prawns, fish curry with coconut, sol kadhi (kokum drink), and modak. Don't miss the famous Malvani fish thali. Popular restaurants include Chaitanya Restaurant in Malvan and Athithi Bamboo in Tarkarli."
	}
	if strings.Contains(lower, "fort") || strings.Contains(lower, "sindhudurg") || strings.Contains(lower, "history") {
		return "🏰 Sindhudurg Fort is a magnificent sea fort built by Chhatrapati Shivaji Maharaj in 1664. It's located on a rocky island and showcases brilliant Maratha architecture. The fort has temples, freshwater wells, and offers stunning sea views. Entry fee is ₹25 for Indians. Best visited during early morning or evening."
	}
	if strings.Contains(lower, "time") || strings.Contains(lower, "when") || strings.Contains(lower, "season") {
		return "🌤️ The best time to visit Konkan is from October to March when the weather is pleasant and ideal for beach activities. Monsoon season (June-September) offers lush greenery and waterfalls but heavy rains. Summer (April-May) can be hot and humid. Winter months are perfect for water sports and sightseeing."
	}
	if strings.Contains(lower, "budget") || strings.Contains(lower, "cost") || strings.Contains(lower, "price") {
		return "💰 Konkan can be budget-friendly! Accommodation ranges from ₹800-3000 per night. Local food costs ₹200-500 per meal. Transportation by bus is economical (₹100-300). Water sports cost ₹500-2000. A 3-day trip can cost ₹5000-15000 per person depending on your choices. Homestays are great budget options!"
	}
	if strings.Contains(lower, "activity") || strings.Contains(lower, "sports") || strings.Contains(lower, "adventure") {
		return "🏄‍♂️ Konkan offers amazing water activities! Scuba diving at Tarkarli (₹2500-4000), parasailing, jet skiing, banana boat rides, and dolphin watching. You can also try backwater cruises, fort trekking, waterfall rappelling at Amboli, and fishing with local fishermen. Book water sports in advance during peak season!"
	}
	return "🤔 That's an interesting question! I'd love to help you explore the Konkan coast. Could you be more specific about what you'd like to know? I can provide information about beaches, food, historical places, activities, travel tips, or anything else about the beautiful Konkan region!"
}
